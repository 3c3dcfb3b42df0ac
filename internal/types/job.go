package types

// ImportJob describes one merge run: which model sources to collect and
// how to combine them into a single 3MF package. The slicer command lives
// here rather than in a package-level constant so the orchestration layer
// receives its full configuration up front.
type ImportJob struct {
	// Sources are URLs or local file paths, in the order they should be
	// passed to the slicer.
	Sources []string `yaml:"sources"`

	// Output is the path of the merged 3MF package. A command-line
	// override takes precedence.
	Output string `yaml:"output,omitempty"`

	// SlicerCommand is the slicer executable to invoke. Empty means the
	// default command name.
	SlicerCommand string `yaml:"slicer_command,omitempty"`
}
