package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"print-bom/internal/app"
)

type importOptions struct {
	Output string
}

func newImportCommand() *cobra.Command {
	opts := importOptions{}
	cmd := &cobra.Command{
		Use:   "import <job-file>",
		Short: "Download model sources and merge them into a 3MF package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd.Context(), cmd, args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output 3MF path (overrides the job file)")
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runImport(ctx context.Context, cmd *cobra.Command, jobPath string, opts importOptions) error {
	service := newAppService()
	result, err := service.Import(ctx, app.ImportRequest{
		JobPath: jobPath,
		Output:  resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	for _, warning := range result.Warnings {
		fmt.Println(warning)
	}
	fmt.Printf("merged %d files (%d downloaded) into %s\n", result.Inputs, result.Downloaded, result.OutputPath)
	return nil
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || name == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}
