package sitescrape

import "context"

// Fetcher retrieves the raw body of a URL as text.
// A Fetcher owns its session (connection pool or browser) and is shared
// by every fetch of a run; it must be safe for concurrent use.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its body.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases the session.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
