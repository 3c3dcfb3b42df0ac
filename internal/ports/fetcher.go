package ports

import "context"

// FetcherPort retrieves a remote model file into destDir and returns the
// local path of the downloaded file. Marketplace search URLs are resolved
// to direct download links on a best-effort basis.
type FetcherPort interface {
	Fetch(ctx context.Context, url string, destDir string) (string, error)
}
