package core

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"print-bom/internal/types"
)

// ResolveBuildItems walks the model document's build list and resolves
// each referenced object id to its names. The returned bool reports
// whether a build section was present at all.
//
// Resolution precedence per item: the configuration name list (all names,
// in order), then the resources name attribute, then a synthesized
// placeholder. Items without an objectid attribute are skipped.
func ResolveBuildItems(ctx context.Context, model *types.Node, configNames map[string][]string, resourceNames map[string]string) ([]types.Resolution, bool) {
	build := FirstChild(model, "build")
	if build == nil {
		return nil, false
	}

	var resolutions []types.Resolution
	for _, item := range AllChildren(build, "item") {
		objID := item.Attr("objectid")
		if objID == "" {
			continue
		}
		resolutions = append(resolutions, resolveItem(objID, configNames, resourceNames))
	}

	log.Ctx(ctx).Debug().Int("items", len(resolutions)).Msg("build items resolved")
	return resolutions, true
}

func resolveItem(objID string, configNames map[string][]string, resourceNames map[string]string) types.Resolution {
	if names, ok := configNames[objID]; ok {
		return types.Resolution{
			ObjectID: objID,
			Source:   types.ResolutionSourceConfig,
			Names:    append([]string(nil), names...),
		}
	}
	if name, ok := resourceNames[objID]; ok && name != "" {
		return types.Resolution{
			ObjectID: objID,
			Source:   types.ResolutionSourceResource,
			Names:    []string{name},
		}
	}
	return types.Resolution{
		ObjectID: objID,
		Source:   types.ResolutionSourceNone,
		Names:    []string{fmt.Sprintf("Unnamed Object (ID: %s)", objID)},
	}
}
