package stylebook

import "context"

// Fetcher retrieves page HTML from URLs.
type Fetcher interface {
	// Fetch issues a single request for url and returns the body decoded
	// as UTF-8. Returns EUNAVAILABLE on a non-success response.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
