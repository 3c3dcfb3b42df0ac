package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"print-bom/internal/ports"
	"print-bom/internal/shared"
)

const defaultFetchTimeout = 30 * time.Second
const defaultFetchRetries = 2
const defaultFetchRetryDelay = 500 * time.Millisecond

// Some hosts refuse requests without a browser-looking agent.
const fetchUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Marketplace pages are scraped with anchor-href patterns. The page
// structure is explicitly best-effort: these break whenever the site
// changes and callers must treat failures as skippable.
var modelPageLinkPattern = regexp.MustCompile(`href="(/3d-model/[^"]+)"`)
var downloadButtonPattern = regexp.MustCompile(`<a\b[^>]*data-testid="download-file-button"[^>]*>`)
var downloadHrefPattern = regexp.MustCompile(`href="([^"]*/download/[^"]*)"`)
var hrefPattern = regexp.MustCompile(`href="([^"]+)"`)

var modelFileExtensions = map[string]struct{}{
	".stl": {},
	".amf": {},
	".obj": {},
	".3mf": {},
}

type HTTPFetcherAdapter struct {
	BaseURL    string
	Client     *http.Client
	Retries    int
	RetryDelay time.Duration
}

func NewHTTPFetcherAdapter() *HTTPFetcherAdapter {
	return &HTTPFetcherAdapter{
		BaseURL:    "https://thangs.com",
		Client:     &http.Client{Timeout: defaultFetchTimeout},
		Retries:    defaultFetchRetries,
		RetryDelay: defaultFetchRetryDelay,
	}
}

func (a *HTTPFetcherAdapter) Fetch(ctx context.Context, rawURL string, destDir string) (string, error) {
	downloadURL := rawURL
	if a.isMarketplaceURL(rawURL) {
		resolved, err := a.resolveMarketplaceURL(ctx, rawURL)
		if err != nil {
			return "", err
		}
		downloadURL = resolved
	}
	return a.download(ctx, downloadURL, destDir)
}

func (a *HTTPFetcherAdapter) isMarketplaceURL(rawURL string) bool {
	return strings.Contains(strings.ToLower(rawURL), "thangs.com") ||
		(a.BaseURL != "" && strings.HasPrefix(rawURL, a.BaseURL))
}

// resolveMarketplaceURL turns a marketplace search or model page URL into
// a direct download link: search page -> first model page -> download
// anchor.
func (a *HTTPFetcherAdapter) resolveMarketplaceURL(ctx context.Context, rawURL string) (string, error) {
	modelURL := rawURL
	if strings.Contains(rawURL, "/search/") {
		page, err := a.get(ctx, rawURL)
		if err != nil {
			return "", err
		}
		match := modelPageLinkPattern.FindSubmatch(page)
		if match == nil {
			return "", errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no model link found on marketplace search page")
		}
		modelURL = a.BaseURL + string(match[1])
		log.Ctx(ctx).Debug().Str("url", modelURL).Msg("resolved search page to model page")
	}

	page, err := a.get(ctx, modelURL)
	if err != nil {
		return "", err
	}
	href := extractDownloadHref(page)
	if href == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no download link found on marketplace model page")
	}
	if strings.HasPrefix(href, "/") {
		href = a.BaseURL + href
	}
	log.Ctx(ctx).Debug().Str("url", href).Msg("resolved model page to download link")
	return href, nil
}

func extractDownloadHref(page []byte) string {
	if tag := downloadButtonPattern.Find(page); tag != nil {
		if match := hrefPattern.FindSubmatch(tag); match != nil {
			return string(match[1])
		}
	}
	if match := downloadHrefPattern.FindSubmatch(page); match != nil {
		return string(match[1])
	}
	return ""
}

func (a *HTTPFetcherAdapter) download(ctx context.Context, rawURL string, destDir string) (string, error) {
	resp, err := a.request(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("download request failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, rawURL))
	}

	localPath := uniquePath(destDir, downloadFileName(rawURL))
	out, err := os.Create(localPath)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create download file").
			WithCause(err)
	}
	defer out.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write download file").
			WithCause(err)
	}
	return localPath, nil
}

// get fetches a page with bounded retries and returns its body.
func (a *HTTPFetcherAdapter) get(ctx context.Context, rawURL string) ([]byte, error) {
	resp, err := a.request(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("marketplace request failed").
			WithCause(shared.HTTPStatusError(resp.StatusCode, rawURL))
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read response body").
			WithCause(err)
	}
	return body, nil
}

func (a *HTTPFetcherAdapter) request(ctx context.Context, rawURL string) (*http.Response, error) {
	retries := a.Retries
	if retries < 0 {
		retries = 0
	}
	delay := a.RetryDelay
	if delay <= 0 {
		delay = defaultFetchRetryDelay
	}

	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid download url").
				WithCause(err)
		}
		req.Header.Set("User-Agent", fetchUserAgent)
		resp, err := a.Client.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		log.Ctx(ctx).Debug().Str("url", rawURL).Int("attempt", attempt+1).Err(err).Msg("fetch attempt failed")
	}
	return nil, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to fetch url").
		WithCause(lastErr)
}

// downloadFileName derives a local file name from the URL tail, falling
// back to a generic name when the tail is unusable, and forces a model
// file extension because the slicer refuses anything else.
func downloadFileName(rawURL string) string {
	trimmed := strings.SplitN(rawURL, "?", 2)[0]
	name := trimmed[strings.LastIndex(trimmed, "/")+1:]
	if name == "" || !strings.Contains(name, ".") || len(name) > 50 {
		name = "model.stl"
	}
	ext := strings.ToLower(filepath.Ext(name))
	if _, ok := modelFileExtensions[ext]; !ok {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".stl"
	}
	return name
}

func uniquePath(dir string, name string) string {
	candidate := filepath.Join(dir, name)
	for i := 1; ; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		ext := filepath.Ext(name)
		stem := strings.TrimSuffix(name, ext)
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d%s", stem, i, ext))
	}
}

var _ ports.FetcherPort = (*HTTPFetcherAdapter)(nil)
