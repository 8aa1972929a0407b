package promos

import "context"

// Fetcher retrieves raw HTML from article URLs.
type Fetcher interface {
	// Fetch performs a single best-effort request for the URL and
	// returns the response body. Network failures, timeouts, and
	// non-success statuses are errors; there is no retry.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
