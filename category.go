package stylebook

import (
	"net/url"
	"strings"
)

// DefaultSegment is the index of the path component holding the category
// key, counting the empty component before the leading slash. For
// https://site/x/y/structuring-content/z it selects "structuring-content".
const DefaultSegment = 3

// Category describes one output document and the URL key that selects it.
type Category struct {
	Key    string `json:"key" yaml:"key"`
	Name   string `json:"name" yaml:"name"`
	Output string `json:"output" yaml:"output"`
}

// Categories is an ordered category table. Order defines render order.
type Categories []Category

// DefaultCategories returns the category table of the Australian
// Government Style Manual.
func DefaultCategories() Categories {
	return Categories{
		{Key: "accessible-and-inclusive-content", Name: "Accessible and inclusive content", Output: "Accessible_and_Inclusive_Content.pdf"},
		{Key: "writing-and-designing-content", Name: "Writing and designing content", Output: "Writing_and_Designing_Content.pdf"},
		{Key: "grammar-punctuation-and-conventions", Name: "Grammar, punctuation and conventions", Output: "Grammar_Punctuation_and_Conventions.pdf"},
		{Key: "structuring-content", Name: "Structuring content", Output: "Structuring_Content.pdf"},
		{Key: "referencing-and-attribution", Name: "Referencing and attribution", Output: "Referencing_and_Attribution.pdf"},
	}
}

// Lookup returns the category with the given key.
func (c Categories) Lookup(key string) (Category, bool) {
	for _, cat := range c {
		if cat.Key == key {
			return cat, true
		}
	}
	return Category{}, false
}

// Validate returns an error if the table is empty, has blank fields, or
// reuses a key or output path.
func (c Categories) Validate() error {
	if len(c) == 0 {
		return Errorf(EINVALID, "at least one category required")
	}
	keys := make(map[string]bool, len(c))
	outputs := make(map[string]bool, len(c))
	for i, cat := range c {
		if cat.Key == "" {
			return Errorf(EINVALID, "category %d: key required", i)
		}
		if cat.Output == "" {
			return Errorf(EINVALID, "category %q: output required", cat.Key)
		}
		if strings.Contains(cat.Key, "/") {
			return Errorf(EINVALID, "category %q: key must not contain '/'", cat.Key)
		}
		if keys[cat.Key] {
			return Errorf(EINVALID, "duplicate category key %q", cat.Key)
		}
		if outputs[cat.Output] {
			return Errorf(EINVALID, "duplicate category output %q", cat.Output)
		}
		keys[cat.Key] = true
		outputs[cat.Output] = true
	}
	return nil
}

// Classifier maps page URLs to categories by a positional path component.
type Classifier struct {
	Categories Categories
	Segment    int
}

// NewClassifier returns a Classifier reading the key at DefaultSegment.
func NewClassifier(categories Categories) *Classifier {
	return &Classifier{Categories: categories, Segment: DefaultSegment}
}

// CandidateKey returns the path component that would be used as category
// key, and false when the path is too short to hold one.
func (c *Classifier) CandidateKey(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}
	parts := strings.Split(u.EscapedPath(), "/")
	if c.Segment < 0 || len(parts) <= c.Segment {
		return "", false
	}
	key, err := url.PathUnescape(parts[c.Segment])
	if err != nil {
		return "", false
	}
	return key, true
}

// Classify returns the category for rawURL. It returns false when the path
// has too few components or the candidate key is not in the table.
func (c *Classifier) Classify(rawURL string) (Category, bool) {
	key, ok := c.CandidateKey(rawURL)
	if !ok {
		return Category{}, false
	}
	return c.Categories.Lookup(key)
}

// Buckets accumulates content items per category, preserving both the
// category order of the table and the insertion order within a category.
type Buckets struct {
	categories Categories
	items      map[string][]Item
}

// NewBuckets returns an empty bucket for every category in the table.
func NewBuckets(categories Categories) *Buckets {
	items := make(map[string][]Item, len(categories))
	for _, cat := range categories {
		items[cat.Key] = nil
	}
	return &Buckets{categories: categories, items: items}
}

// Append adds items to the bucket for key. It returns false if key is not
// a known category.
func (b *Buckets) Append(key string, items ...Item) bool {
	existing, ok := b.items[key]
	if !ok {
		return false
	}
	b.items[key] = append(existing, items...)
	return true
}

// Items returns the accumulated items for key.
func (b *Buckets) Items(key string) []Item {
	return b.items[key]
}

// Documents returns one document per category in table order, including
// categories whose bucket is empty.
func (b *Buckets) Documents() []*Document {
	docs := make([]*Document, 0, len(b.categories))
	for _, cat := range b.categories {
		docs = append(docs, &Document{Category: cat, Items: b.items[cat.Key]})
	}
	return docs
}
