package fetcher

import (
	"context"
	"io"
)

// Downloader fetches a remote export.
type Downloader interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)
}
