package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ksiska/prospekt"
	prospekthttp "github.com/ksiska/prospekt/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns the page body on success", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html><body>ok</body></html>"))
		}))
		defer srv.Close()

		fetcher := prospekthttp.NewFetcher()
		defer fetcher.Close()

		html, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>ok</body></html>", html)
	})

	t.Run("sends the user agent header", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
		}))
		defer srv.Close()

		fetcher := prospekthttp.NewFetcher(prospekthttp.WithUserAgent("test-agent/1.0"))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "test-agent/1.0", gotUA)
	})

	t.Run("fails with EUNAVAILABLE on non-success status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		fetcher := prospekthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, prospekt.EUNAVAILABLE, prospekt.ErrorCode(err))
	})

	t.Run("fails with EUNAVAILABLE on connection failure", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // no listener left behind

		fetcher := prospekthttp.NewFetcher()
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, prospekt.EUNAVAILABLE, prospekt.ErrorCode(err))
	})

	t.Run("respects context cancellation while rate limited", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		defer srv.Close()

		// One request per minute; the second fetch must wait and
		// should abort as soon as the context is cancelled.
		fetcher := prospekthttp.NewFetcher(prospekthttp.WithRateLimit(1.0 / 60.0))
		defer fetcher.Close()

		_, err := fetcher.Fetch(context.Background(), srv.URL)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		_, err = fetcher.Fetch(ctx, srv.URL)
		require.Error(t, err)
	})
}
