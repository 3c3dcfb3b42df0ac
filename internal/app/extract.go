package app

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"print-bom/internal/core"
)

// Extract opens a 3MF package and produces its aggregated bill of
// materials. Fatal conditions (missing package, corrupt archive, missing
// or malformed model document) return an error and no partial result; a
// malformed configuration entry degrades to resource-attribute names with
// a warning, and a missing build section yields an empty BOM.
func (s Service) Extract(ctx context.Context, req ExtractRequest) (ExtractResult, error) {
	if req.PackagePath == "" {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("package path is required")
	}

	payload, err := s.Container.Open(req.PackagePath)
	if err != nil {
		return ExtractResult{}, err
	}

	model, err := core.ParseDocument(payload.Model)
	if err != nil {
		return ExtractResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse model document").
			WithCause(err)
	}

	result := ExtractResult{
		PackageName: filepath.Base(req.PackagePath),
		ConfigEntry: payload.ConfigEntry,
	}

	configNames := map[string][]string{}
	if payload.Config != nil {
		configDoc, err := core.ParseDocument(payload.Config)
		if err != nil {
			log.Ctx(ctx).Warn().Str("entry", payload.ConfigEntry).Err(err).Msg("configuration entry is malformed")
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Warning: Found %s but failed to parse it: %v", payload.ConfigEntry, err))
		} else {
			configNames = core.ConfigNames(ctx, configDoc)
		}
	}

	resourceNames := core.ResourceNames(model)
	resolutions, buildFound := core.ResolveBuildItems(ctx, model, configNames, resourceNames)
	if !buildFound && core.FirstChild(model, "resources") != nil {
		result.Warnings = append(result.Warnings,
			"Warning: Found resources but could not find '<build>' section.")
	}

	entries := core.Aggregate(resolutions)
	for i := range entries {
		if url, ok := core.SearchLink(entries[i].Name); ok {
			entries[i].SearchURL = url
		}
	}
	result.Entries = entries
	return result, nil
}
