// Package fetcher downloads registry pages and input extracts over HTTP and
// FTP with per-host rate limiting and retry.
package fetcher

import (
	"context"
	"io"
)

// Fetcher defines the interface for downloading remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body. Non-success
	// statuses are errors.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// Get fetches the URL and returns the full body.
	Get(ctx context.Context, url string) ([]byte, error)
}
