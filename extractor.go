package stylebook

// Extractor converts a page's main content region into structured items.
type Extractor interface {
	// Extract locates the page's <main> (or, failing that, <article>)
	// region and returns its headings, paragraphs and lists in document
	// order. Boilerplate elements are dropped.
	//
	// Returns ENOTFOUND if the page has neither region.
	Extract(html string) ([]Item, error)
}
