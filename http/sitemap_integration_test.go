//go:build integration

package http_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/stylebook"
	stylehttp "github.com/fwojciec/stylebook/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Integration_StyleManual(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	svc := stylehttp.NewSitemapService(nil)

	urls, err := svc.FetchURLs(ctx, "https://www.stylemanual.gov.au/sitemap.xml")
	require.NoError(t, err)
	require.NotEmpty(t, urls, "expected URLs from the Style Manual sitemap")

	// Most pages should classify under the default table when the key
	// sits directly under the host.
	classifier := stylebook.NewClassifier(stylebook.DefaultCategories())
	classifier.Segment = 1
	var classified int
	for _, u := range urls {
		if _, ok := classifier.Classify(u); ok {
			classified++
		}
	}
	assert.Positive(t, classified)
}
