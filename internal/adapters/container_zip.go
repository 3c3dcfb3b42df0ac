package adapters

import (
	"archive/zip"
	"fmt"
	"io"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"print-bom/internal/ports"
	"print-bom/internal/types"
)

// 3MF archives are case-sensitive and both spellings of the model folder
// appear in the wild.
var modelEntryNames = []string{
	"3D/3dmodel.model",
	"3d/3dmodel.model",
}

var configEntryNames = []string{
	"Metadata/model_settings.config",
	"Metadata/model_settings.xml",
}

type ZipContainerAdapter struct{}

func NewZipContainerAdapter() ZipContainerAdapter {
	return ZipContainerAdapter{}
}

func (a ZipContainerAdapter) Open(path string) (types.PackagePayload, error) {
	if _, err := os.Stat(path); err != nil {
		return types.PackagePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("package file not found").
			WithCause(err)
	}
	reader, err := zip.OpenReader(path)
	if err != nil {
		return types.PackagePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to open package archive").
			WithCause(err)
	}
	defer reader.Close()

	payload := types.PackagePayload{}
	model, _, err := readFirstEntry(&reader.Reader, modelEntryNames)
	if err != nil {
		return types.PackagePayload{}, err
	}
	if model == nil {
		return types.PackagePayload{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("package is missing the required %q or %q entry", modelEntryNames[0], modelEntryNames[1]))
	}
	payload.Model = model

	// The configuration entry is optional; its absence just means no
	// metadata names are available downstream.
	config, name, err := readFirstEntry(&reader.Reader, configEntryNames)
	if err != nil {
		return types.PackagePayload{}, err
	}
	payload.Config = config
	payload.ConfigEntry = name

	return payload, nil
}

func readFirstEntry(reader *zip.Reader, names []string) ([]byte, string, error) {
	for _, name := range names {
		for _, file := range reader.File {
			if file.Name != name {
				continue
			}
			data, err := readZipFile(file)
			if err != nil {
				return nil, "", err
			}
			return data, name, nil
		}
	}
	return nil, "", nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open package entry").
			WithCause(err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read package entry").
			WithCause(err)
	}
	return data, nil
}

var _ ports.ContainerPort = ZipContainerAdapter{}
