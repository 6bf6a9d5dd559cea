package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/stylebook"
	"golang.org/x/net/html/charset"
)

// Ensure SitemapService implements stylebook.SitemapService.
var _ stylebook.SitemapService = (*SitemapService)(nil)

// SitemapService reads page URLs from an XML sitemap over HTTP.
type SitemapService struct {
	client *http.Client
}

// NewSitemapService creates a new SitemapService with the given HTTP client.
// If client is nil, http.DefaultClient is used.
func NewSitemapService(client *http.Client) *SitemapService {
	if client == nil {
		client = http.DefaultClient
	}
	return &SitemapService{client: client}
}

// FetchURLs fetches the sitemap and returns the text of every <loc>
// element in document order. Sitemap indexes are not followed; the <loc>
// entries of an index are returned like any other.
func (s *SitemapService) FetchURLs(ctx context.Context, sitemapURL string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, sitemapURL, nil)
	if err != nil {
		return nil, stylebook.Errorf(stylebook.EINVALID, "invalid sitemap URL: %v", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, stylebook.Errorf(stylebook.EUNAVAILABLE, "fetching sitemap %s: %v", sitemapURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, stylebook.Errorf(stylebook.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, sitemapURL)
	}

	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(resp.Body); err != nil {
		return nil, stylebook.Errorf(stylebook.EINVALID, "parsing sitemap XML: %v", err)
	}
	if doc.Root() == nil {
		// An empty body lists no pages.
		return []string{}, nil
	}

	return parseLocs(doc), nil
}

// parseLocs returns the trimmed text of every unprefixed <loc> element,
// whatever its parent. Prefixed extensions such as <image:loc> are not
// page URLs.
func parseLocs(doc *etree.Document) []string {
	locs := doc.FindElements("//loc")
	urls := make([]string, 0, len(locs))
	for _, loc := range locs {
		if loc.Space != "" {
			continue
		}
		urls = append(urls, strings.TrimSpace(loc.Text()))
	}
	return urls
}
