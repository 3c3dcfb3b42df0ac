package core

import (
	"sort"
	"strings"

	"print-bom/internal/types"
)

// Aggregate counts resolved name occurrences across all build items and
// returns the entries sorted case-insensitively by name. Entries whose
// names differ only in case stay distinct and keep their first-appearance
// order, which the explicit insertion-ordered counter guarantees
// independently of map iteration order.
func Aggregate(resolutions []types.Resolution) []types.BOMEntry {
	index := map[string]int{}
	var entries []types.BOMEntry

	for _, resolution := range resolutions {
		for _, name := range resolution.Names {
			if at, ok := index[name]; ok {
				entries[at].Quantity++
				continue
			}
			index[name] = len(entries)
			entries = append(entries, types.BOMEntry{Name: name, Quantity: 1})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})
	return entries
}
