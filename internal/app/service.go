package app

import (
	"print-bom/internal/adapters"
	"print-bom/internal/ports"
)

type Service struct {
	Container ports.ContainerPort
	Fetcher   ports.FetcherPort
	Slicer    ports.SlicerPort
	JobFile   ports.JobFilePort
}

func NewService() Service {
	return Service{
		Container: adapters.NewZipContainerAdapter(),
		Fetcher:   adapters.NewHTTPFetcherAdapter(),
		Slicer:    adapters.NewSlicerExecAdapter(),
		JobFile:   adapters.NewJobFileAdapter(),
	}
}
