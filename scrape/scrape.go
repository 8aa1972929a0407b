// Package scrape orchestrates promotion extraction across news sources.
// It coordinates fetching, fragment splitting, relevance filtering,
// attribute extraction, and record assembly behind a single pipeline
// shared by all sources.
package scrape

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/promos"
	"golang.org/x/sync/errgroup"
)

// SourceError reports a failed source together with its cause. Unless
// the scraper runs in fail-fast mode, a failed source is isolated and
// the remaining sources still contribute to the aggregate.
type SourceError struct {
	Source string
	Err    error
}

// Error implements the error interface.
func (e *SourceError) Error() string {
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SourceError) Unwrap() error { return e.Err }

// Scraper runs every registered source and aggregates their promotions.
type Scraper struct {
	Fetcher   promos.Fetcher
	Fragments promos.FragmentExtractor
	Builder   *promos.Builder
	Sources   []Source

	// RateLimiter, when set, throttles fetches per host.
	RateLimiter *HostLimiter

	// Concurrency limits how many sources run at once.
	// Defaults to running all sources concurrently.
	Concurrency int

	// FailFast aborts the whole run on the first source failure instead
	// of isolating it.
	FailFast bool
}

// Run executes all sources and returns the aggregate promotion list.
// The aggregate preserves registration order, and each source's
// promotions keep their article order, regardless of which source
// finishes first. Failed sources are returned as SourceErrors; the
// returned error is non-nil only in fail-fast mode or when the run
// itself is canceled.
func (s *Scraper) Run(ctx context.Context) ([]promos.Promotion, []*SourceError, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = len(s.Sources)
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	// Collect per-source outcomes positionally so the aggregate order
	// matches registration order.
	results := make([][]promos.Promotion, len(s.Sources))
	failures := make([]error, len(s.Sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, src := range s.Sources {
		g.Go(func() error {
			list, err := s.runSource(gctx, src)
			if err != nil {
				if s.FailFast {
					return &SourceError{Source: src.Name, Err: err}
				}
				failures[i] = err
				return nil
			}
			results[i] = list
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var all []promos.Promotion
	var srcErrs []*SourceError
	for i, src := range s.Sources {
		if failures[i] != nil {
			srcErrs = append(srcErrs, &SourceError{Source: src.Name, Err: failures[i]})
			continue
		}
		all = append(all, results[i]...)
	}

	return all, srcErrs, nil
}

// runSource applies the host rate limit and executes one source's
// pipeline.
func (s *Scraper) runSource(ctx context.Context, src Source) ([]promos.Promotion, error) {
	if s.RateLimiter != nil {
		if err := s.RateLimiter.Wait(ctx, hostOf(src.URL)); err != nil {
			return nil, fmt.Errorf("rate limit %s: %w", src.URL, err)
		}
	}
	return src.run(ctx, s.Fetcher, s.Fragments, s.Builder)
}

// hostOf extracts the host component of a URL, falling back to the raw
// string when it doesn't parse.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
