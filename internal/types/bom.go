package types

// ResolutionSource identifies which naming source produced the names for a
// build item.
type ResolutionSource string

const (
	// ResolutionSourceConfig means the names came from the slicer
	// configuration document (per-object or per-part metadata).
	ResolutionSourceConfig ResolutionSource = "config"

	// ResolutionSourceResource means the name came from the object's name
	// attribute in the model document's resources section.
	ResolutionSourceResource ResolutionSource = "resource"

	// ResolutionSourceNone means neither source knew the object and a
	// placeholder name was synthesized.
	ResolutionSourceNone ResolutionSource = "none"
)

// Resolution is the outcome of resolving one build item. A single build
// item expands to several names when the referenced object is an assembly
// of multiple parts.
type Resolution struct {
	ObjectID string
	Source   ResolutionSource
	Names    []string
}

// BOMEntry is one aggregated row of the bill of materials.
type BOMEntry struct {
	Name      string
	Quantity  int
	SearchURL string
}

// PackagePayload carries the raw entries read from a 3MF container.
// Config is nil when the package ships no slicer configuration entry.
type PackagePayload struct {
	Model       []byte
	Config      []byte
	ConfigEntry string
}
