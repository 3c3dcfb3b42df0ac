package ports

import "print-bom/internal/types"

// JobFilePort loads an import job description from disk.
type JobFilePort interface {
	Load(path string) (types.ImportJob, error)
}
