package core

import "print-bom/internal/types"

// ResourceNames extracts the fallback name map from the model document's
// resources section: object id to the cleaned name attribute. Objects
// without an id or with an absent or empty name are omitted. No metadata
// search happens here; only the declared attributes count.
func ResourceNames(model *types.Node) map[string]string {
	names := map[string]string{}
	resources := FirstChild(model, "resources")
	if resources == nil {
		return names
	}
	for _, obj := range AllChildren(resources, "object") {
		objID := obj.Attr("id")
		if objID == "" {
			continue
		}
		if name := CleanPartName(obj.Attr("name")); name != "" {
			names[objID] = name
		}
	}
	return names
}
