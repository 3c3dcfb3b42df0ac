// Package testutil provides shared test helpers used across unit and
// integration test packages.
package testutil

import (
	"archive/zip"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

// WritePackage writes a zip archive to path with the given entries in
// order. Entries are (name, content) pairs so tests control entry order.
func WritePackage(t *testing.T, path string, entries []PackageEntry) {
	t.Helper()
	file, err := os.Create(path)
	require.NoError(t, err)
	writer := zip.NewWriter(file)
	for _, entry := range entries {
		w, err := writer.Create(entry.Name)
		require.NoError(t, err)
		_, err = w.Write([]byte(entry.Content))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	require.NoError(t, file.Close())
}

type PackageEntry struct {
	Name    string
	Content string
}
