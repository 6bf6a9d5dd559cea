package stylebook

import "context"

// SitemapService reads page URLs from a sitemap.
type SitemapService interface {
	// FetchURLs returns the text of every <loc> element in the sitemap at
	// sitemapURL, in document order.
	//
	// Returns EUNAVAILABLE if the sitemap cannot be retrieved and EINVALID
	// if the response is not well-formed XML.
	FetchURLs(ctx context.Context, sitemapURL string) ([]string, error)
}
