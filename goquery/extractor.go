// Package goquery implements stylebook.Extractor with CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/stylebook"
)

// DefaultSkipMarkers are phrases that mark an element as page boilerplate.
var DefaultSkipMarkers = []string{"References", "Help us improve", "Release notes", "Last updated"}

// contentSelector matches the elements converted into items. Cascadia
// evaluates a selector group in a single pre-order walk, so matches come
// back in document order regardless of tag.
const contentSelector = "h1, h2, h3, p, ul, ol"

// emphasisSelector matches inline tags that are unwrapped before text is read.
const emphasisSelector = "em, strong, b, i"

// Ensure Extractor implements stylebook.Extractor at compile time.
var _ stylebook.Extractor = (*Extractor)(nil)

// Extractor converts the main region of a page into content items.
type Extractor struct {
	skipMarkers []string
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSkipMarkers replaces the boilerplate marker phrases.
func WithSkipMarkers(markers ...string) Option {
	return func(e *Extractor) {
		e.skipMarkers = markers
	}
}

// NewExtractor creates a new Extractor using DefaultSkipMarkers.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{skipMarkers: DefaultSkipMarkers}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the headings, paragraphs and lists of the page's <main>
// region, or its <article> region when there is no <main>.
//
// An element whose text contains a skip marker is dropped on its own; its
// siblings are unaffected. Returns ENOTFOUND if neither region exists.
func (e *Extractor) Extract(html string) ([]stylebook.Item, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, stylebook.Errorf(stylebook.EINVALID, "failed to parse HTML: %v", err)
	}

	region := doc.Find("main").First()
	if region.Length() == 0 {
		region = doc.Find("article").First()
	}
	if region.Length() == 0 {
		return nil, stylebook.Errorf(stylebook.ENOTFOUND, "no main or article region")
	}

	unwrapEmphasis(region)

	items := []stylebook.Item{}
	region.Find(contentSelector).Each(func(_ int, sel *goquery.Selection) {
		if e.isBoilerplate(sel.Text()) {
			return
		}

		switch name := goquery.NodeName(sel); name {
		case "ul", "ol":
			var entries []string
			sel.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
				if text := collapseWhitespace(li.Text()); text != "" {
					entries = append(entries, text)
				}
			})
			if len(entries) > 0 {
				items = append(items, stylebook.List(entries...))
			}
		case "p":
			if text := collapseWhitespace(sel.Text()); text != "" {
				items = append(items, stylebook.Paragraph(text))
			}
		default:
			if text := collapseWhitespace(sel.Text()); text != "" {
				items = append(items, stylebook.Heading(headingLevel(name), text))
			}
		}
	})

	return items, nil
}

func (e *Extractor) isBoilerplate(text string) bool {
	for _, marker := range e.skipMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// headingLevel returns the level of an h1-h6 tag name.
func headingLevel(name string) int {
	if len(name) == 2 && name[0] == 'h' && name[1] >= '1' && name[1] <= '6' {
		return int(name[1] - '0')
	}
	return 1
}
