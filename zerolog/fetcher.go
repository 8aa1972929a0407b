// Package zerolog provides logging decorators for promos interfaces.
package zerolog

import (
	"context"
	"time"

	"github.com/fwojciec/promos"
	"github.com/rs/zerolog"
)

// Ensure Fetcher implements promos.Fetcher.
var _ promos.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a promos.Fetcher with structured request logging.
type Fetcher struct {
	next   promos.Fetcher
	logger zerolog.Logger
}

// NewFetcher creates a new logging Fetcher wrapping next.
func NewFetcher(next promos.Fetcher, logger zerolog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()

	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error().
			Err(err).
			Str("url", url).
			Dur("duration", time.Since(begin)).
			Msg("fetch failed")
		return "", err
	}

	f.logger.Debug().
		Str("url", url).
		Int("bytes", len(html)).
		Dur("duration", time.Since(begin)).
		Msg("fetch completed")
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
