package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stylebook"
)

// CleanHTML removes inline emphasis tags (em, strong, b, i) from an HTML
// fragment while keeping their text. Other markup is left in place.
// Cleaning an already clean fragment returns it unchanged.
func CleanHTML(fragment string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", stylebook.Errorf(stylebook.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	unwrapEmphasis(body)

	html, err := body.Html()
	if err != nil {
		return "", stylebook.Errorf(stylebook.EINTERNAL, "failed to render HTML: %v", err)
	}
	return html, nil
}

// unwrapEmphasis replaces every emphasis element under sel with its children.
func unwrapEmphasis(sel *goquery.Selection) {
	sel.Find(emphasisSelector).Each(func(_ int, s *goquery.Selection) {
		s.ReplaceWithSelection(s.Contents())
	})
}

// collapseWhitespace joins the whitespace-separated fields of s with single
// spaces, trimming both ends.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
