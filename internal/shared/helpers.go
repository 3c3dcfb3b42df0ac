// Package shared provides common utility functions used across multiple
// packages in the print-bom codebase.
package shared

import (
	"fmt"
	"strings"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// CommandError wraps a command execution error with its trimmed output
// for cleaner error messages.
func CommandError(output []byte, err error) error {
	return fmt.Errorf("%s: %w", strings.TrimSpace(string(output)), err)
}

// IsRemoteSource reports whether an import source is a URL rather than a
// local file path.
func IsRemoteSource(item string) bool {
	lower := strings.ToLower(item)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
