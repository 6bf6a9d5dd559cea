package mock

import "github.com/fwojciec/stylebook"

var _ stylebook.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of stylebook.Extractor.
type Extractor struct {
	ExtractFn func(html string) ([]stylebook.Item, error)
}

func (e *Extractor) Extract(html string) ([]stylebook.Item, error) {
	return e.ExtractFn(html)
}
