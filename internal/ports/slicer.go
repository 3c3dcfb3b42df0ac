package ports

import "context"

// SlicerPort merges a list of model files into a single 3MF package by
// invoking an external slicer executable.
type SlicerPort interface {
	Merge(ctx context.Context, command string, inputs []string, output string) error
}
