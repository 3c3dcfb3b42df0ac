package app

import "print-bom/internal/types"

type ExtractRequest struct {
	PackagePath string
}

type ExtractResult struct {
	PackageName string
	ConfigEntry string
	Entries     []types.BOMEntry
	Warnings    []string
}

type ImportRequest struct {
	JobPath string
	Output  string
}

type ImportResult struct {
	OutputPath string
	Inputs     int
	Downloaded int
	Warnings   []string
}
