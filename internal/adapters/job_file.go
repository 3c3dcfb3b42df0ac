package adapters

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"print-bom/internal/ports"
	"print-bom/internal/types"
)

type JobFileAdapter struct{}

func NewJobFileAdapter() JobFileAdapter {
	return JobFileAdapter{}
}

// Load reads an import job from disk. A .yaml/.yml file is parsed as a
// manifest; anything else is treated as a plain list with one URL or
// local path per line, blank lines and #-comments ignored.
func (a JobFileAdapter) Load(path string) (types.ImportJob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ImportJob{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("job file not found").
			WithCause(err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return parseJobManifest(data)
	default:
		return parseJobLines(data), nil
	}
}

func parseJobManifest(data []byte) (types.ImportJob, error) {
	var job types.ImportJob
	if err := yaml.Unmarshal(data, &job); err != nil {
		return types.ImportJob{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse job manifest").
			WithCause(err)
	}
	return job, nil
}

func parseJobLines(data []byte) types.ImportJob {
	job := types.ImportJob{}
	for _, line := range strings.Split(string(data), "\n") {
		item := strings.TrimSpace(line)
		if item == "" || strings.HasPrefix(item, "#") {
			continue
		}
		job.Sources = append(job.Sources, item)
	}
	return job
}

var _ ports.JobFilePort = JobFileAdapter{}
