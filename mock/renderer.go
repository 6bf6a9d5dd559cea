package mock

import (
	"context"
	"io"

	"github.com/fwojciec/stylebook"
)

var _ stylebook.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of stylebook.Renderer.
type Renderer struct {
	RenderFn func(ctx context.Context, w io.Writer, doc *stylebook.Document) (*stylebook.RenderResult, error)
}

func (r *Renderer) Render(ctx context.Context, w io.Writer, doc *stylebook.Document) (*stylebook.RenderResult, error) {
	return r.RenderFn(ctx, w, doc)
}
