// Package http provides HTTP implementations of stylebook.SitemapService
// and stylebook.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/stylebook"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements stylebook.Fetcher at compile time.
var _ stylebook.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page HTML with plain HTTP GET requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for each HTTP request.
// Zero, the default, leaves requests bounded only by the context.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the HTTP client used for requests. The client's own
// timeout is replaced when WithTimeout is also given.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{}
	}
	if f.timeout > 0 {
		client := *f.client
		client.Timeout = f.timeout
		f.client = &client
	}

	return f
}

// Fetch retrieves the page at url and returns its body as UTF-8, decoding
// from the charset declared by the response when it is not UTF-8.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", stylebook.Errorf(stylebook.EINVALID, "invalid page URL: %v", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", stylebook.Errorf(stylebook.EUNAVAILABLE, "fetching %s: %v", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", stylebook.Errorf(stylebook.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", stylebook.Errorf(stylebook.EUNAVAILABLE, "decoding %s: %v", url, err)
	}

	html, err := io.ReadAll(body)
	if err != nil {
		return "", stylebook.Errorf(stylebook.EUNAVAILABLE, "reading %s: %v", url, err)
	}

	return string(html), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
