package ports

import "print-bom/internal/types"

// ContainerPort opens a 3MF package and returns its raw model and
// configuration entries.
type ContainerPort interface {
	Open(path string) (types.PackagePayload, error)
}
