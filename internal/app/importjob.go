package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"print-bom/internal/shared"
)

const defaultSlicerCommand = "prusa-slicer"

// Import runs a merge job: load the job file, download remote sources
// into a temporary directory, and hand the combined file list to the
// slicer. Individual source failures are warnings; the run only fails
// when nothing is left to merge or the slicer itself fails.
func (s Service) Import(ctx context.Context, req ImportRequest) (ImportResult, error) {
	job, err := s.JobFile.Load(req.JobPath)
	if err != nil {
		return ImportResult{}, err
	}

	output := req.Output
	if output == "" {
		output = job.Output
	}
	if output == "" {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}

	command := job.SlicerCommand
	if command == "" {
		command = defaultSlicerCommand
	}
	assert.NotEmpty(ctx, command, "slicer command must be set")

	result := ImportResult{OutputPath: output}

	var remote []string
	var inputs []string
	for _, source := range job.Sources {
		if shared.IsRemoteSource(source) {
			remote = append(remote, source)
			continue
		}
		if abs, err := filepath.Abs(source); err == nil {
			source = abs
		}
		if _, err := os.Stat(source); err != nil {
			log.Ctx(ctx).Warn().Str("path", source).Msg("local source not found, skipping")
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Warning: Local file not found and will be skipped: %s", source))
			continue
		}
		inputs = append(inputs, source)
	}

	if len(remote) == 0 && len(inputs) == 0 {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("job contains no valid urls or existing local file paths")
	}

	if len(remote) > 0 {
		tmpDir, err := os.MkdirTemp("", "print-bom-")
		if err != nil {
			return ImportResult{}, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create download directory").
				WithCause(err)
		}
		defer os.RemoveAll(tmpDir)

		for _, url := range remote {
			localPath, err := s.Fetcher.Fetch(ctx, url, tmpDir)
			if err != nil {
				log.Ctx(ctx).Warn().Str("url", url).Err(err).Msg("download failed, skipping")
				result.Warnings = append(result.Warnings,
					fmt.Sprintf("Warning: Failed to download %s: %v", url, err))
				continue
			}
			inputs = append(inputs, localPath)
			result.Downloaded++
		}
	}

	if len(inputs) == 0 {
		return ImportResult{}, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("no input files could be prepared for the slicer")
	}
	if err := s.Slicer.Merge(ctx, command, inputs, output); err != nil {
		return ImportResult{}, err
	}
	result.Inputs = len(inputs)
	return result, nil
}
