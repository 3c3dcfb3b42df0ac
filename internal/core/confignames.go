package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"print-bom/internal/types"
)

// CleanPartName strips a trailing .stl extension, case-insensitively.
// Names are always stored and compared in cleaned form.
func CleanPartName(name string) string {
	if len(name) >= 4 && strings.EqualFold(name[len(name)-4:], ".stl") {
		return name[:len(name)-4]
	}
	return name
}

// ConfigNames walks a slicer configuration document and maps each object
// id to its resolved name list.
//
// The precedence rule: an object with zero or one part children resolves a
// single name from its own metadata; an object with two or more part
// children resolves one name per part from each part's metadata, with a
// placeholder substituted for parts that carry none. Objects yielding no
// names are omitted from the map.
func ConfigNames(ctx context.Context, doc *types.Node) map[string][]string {
	idToNames := map[string][]string{}
	if doc == nil {
		return idToNames
	}

	// Some exporters wrap everything in a config element, others make it
	// the document root.
	searchRoot := FirstChild(doc, "config")
	if searchRoot == nil {
		searchRoot = doc
	}

	visitObjects(searchRoot, func(obj *types.Node) {
		objID := obj.Attr("id")
		if objID == "" {
			return
		}
		parts := AllChildren(obj, "part")

		var names []string
		if len(parts) <= 1 {
			if name, ok := MetadataValue(obj, "name"); ok {
				names = append(names, CleanPartName(name))
			}
		} else {
			for _, part := range parts {
				if name, ok := MetadataValue(part, "name"); ok {
					names = append(names, CleanPartName(name))
				} else {
					names = append(names, fmt.Sprintf("Unnamed Component of Object %s", objID))
				}
			}
		}

		if len(names) > 0 {
			idToNames[objID] = names
		}
	})

	log.Ctx(ctx).Debug().Int("objects", len(idToNames)).Msg("configuration names collected")
	return idToNames
}

// visitObjects calls fn for every descendant element named object, in
// document order, the root included.
func visitObjects(node *types.Node, fn func(*types.Node)) {
	if node == nil {
		return
	}
	if node.LocalName() == "object" {
		fn(node)
	}
	for i := range node.Children {
		visitObjects(&node.Children[i], fn)
	}
}
