package core

import (
	"net/url"
	"regexp"
)

// Stacking-tile names are generated utility geometry; searching the
// marketplace for them is pointless.
var tileStackPattern = regexp.MustCompile(`Tile.* Stack`)

const searchBaseURL = "https://thangs.com/search/"

// SearchLink derives a marketplace search URL for a resolved part name.
// The name is wrapped in literal double quotes and percent-encoded with
// spaces as %20, not +. Empty names and stacking-tile names yield no link.
func SearchLink(name string) (string, bool) {
	if name == "" || tileStackPattern.MatchString(name) {
		return "", false
	}
	encoded := url.PathEscape(`"` + name + `"`)
	return searchBaseURL + encoded + "?searchScope=thangs&view=list", true
}
