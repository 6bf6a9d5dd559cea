package mock

import (
	"context"

	"github.com/fwojciec/stylebook"
)

var _ stylebook.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of stylebook.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *stylebook.Document) (*stylebook.RenderResult, error)
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *stylebook.Document) (*stylebook.RenderResult, error) {
	return w.WriteDocumentFn(ctx, doc)
}
