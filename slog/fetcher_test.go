package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ksiska/prospekt/mock"
	prospektslog "github.com/ksiska/prospekt/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher(t *testing.T) {
	t.Parallel()

	t.Run("logs the fetch and delegates", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))

		next := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
			CloseFn: func() error { return nil },
		}

		fetcher := prospektslog.NewLoggingFetcher(next, logger)
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", html)
		assert.Contains(t, buf.String(), "msg=fetch")
		assert.Contains(t, buf.String(), "url=https://example.com")
		assert.Contains(t, buf.String(), "bytes=13")
	})
}
