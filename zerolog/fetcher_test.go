package zerolog_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/promos"
	"github.com/fwojciec/promos/mock"
	promoszerolog "github.com/fwojciec/promos/zerolog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("delegates and returns the HTML", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>ok</html>", nil
			},
		}

		var buf bytes.Buffer
		logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
		fetcher := promoszerolog.NewFetcher(next, logger)

		html, err := fetcher.Fetch(context.Background(), "https://example.com/article")
		require.NoError(t, err)
		assert.Equal(t, "<html>ok</html>", html)
		assert.Contains(t, buf.String(), "fetch completed")
		assert.Contains(t, buf.String(), "https://example.com/article")
	})

	t.Run("logs and propagates errors", func(t *testing.T) {
		t.Parallel()

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		var buf bytes.Buffer
		logger := zerolog.New(&buf)
		fetcher := promoszerolog.NewFetcher(next, logger)

		_, err := fetcher.Fetch(context.Background(), "https://example.com/article")
		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
		assert.Contains(t, buf.String(), "connection refused")
	})

	t.Run("delegates Close", func(t *testing.T) {
		t.Parallel()

		var closed bool
		next := &mock.Fetcher{
			CloseFn: func() error {
				closed = true
				return nil
			},
		}

		fetcher := promoszerolog.NewFetcher(next, zerolog.Nop())

		require.NoError(t, fetcher.Close())
		assert.True(t, closed)
	})
}

// Compile-time verification that Fetcher implements promos.Fetcher
var _ promos.Fetcher = (*promoszerolog.Fetcher)(nil)
