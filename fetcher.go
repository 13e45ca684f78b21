package prospekt

import "context"

// Fetcher retrieves raw HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the page content at the URL and returns it as
	// HTML. The context controls timeout and cancellation. A
	// non-success status or network failure is fatal (EUNAVAILABLE);
	// the fetch is not retried.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
