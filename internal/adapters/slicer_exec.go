package adapters

import (
	"context"
	"errors"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"print-bom/internal/ports"
	"print-bom/internal/shared"
)

type SlicerExecAdapter struct{}

func NewSlicerExecAdapter() SlicerExecAdapter {
	return SlicerExecAdapter{}
}

func (a SlicerExecAdapter) Merge(ctx context.Context, command string, inputs []string, output string) error {
	if len(inputs) == 0 {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("no input files for slicer merge")
	}
	args := append([]string{"--export-3mf", output}, inputs...)
	log.Ctx(ctx).Debug().Str("command", command).Strs("args", args).Msg("running slicer")

	cmd := exec.CommandContext(ctx, command, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("slicer executable not found").
				WithCause(err)
		}
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("slicer export failed").
			WithCause(shared.CommandError(out, err))
	}
	return nil
}

var _ ports.SlicerPort = SlicerExecAdapter{}
