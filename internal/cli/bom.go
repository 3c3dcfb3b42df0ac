package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"print-bom/internal/app"
)

func newBOMCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bom <package.3mf>",
		Short: "Print the bill of materials for a 3MF package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBOM(cmd.Context(), args[0])
		},
	}
	return cmd
}

func runBOM(ctx context.Context, packagePath string) error {
	service := newAppService()
	result, err := service.Extract(ctx, app.ExtractRequest{PackagePath: packagePath})
	if err != nil {
		return err
	}
	fmt.Print(renderReport(result))
	return nil
}
