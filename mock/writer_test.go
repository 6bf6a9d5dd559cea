package mock_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/stylebook"
	"github.com/fwojciec/stylebook/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentWriter_WriteDocument(t *testing.T) {
	t.Parallel()

	t.Run("delegates to WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *stylebook.Document
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, doc *stylebook.Document) (*stylebook.RenderResult, error) {
				calledWith = doc
				return &stylebook.RenderResult{Path: doc.Category.Output}, nil
			},
		}

		doc := &stylebook.Document{
			Category: stylebook.Category{Key: "structuring-content", Output: "Structuring_Content.pdf"},
			Items:    []stylebook.Item{stylebook.Paragraph("text")},
		}

		result, err := w.WriteDocument(context.Background(), doc)

		require.NoError(t, err)
		assert.Same(t, doc, calledWith)
		assert.Equal(t, "Structuring_Content.pdf", result.Path)
	})

	t.Run("returns error from WriteDocumentFn", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("disk full")
		w := &mock.DocumentWriter{
			WriteDocumentFn: func(_ context.Context, _ *stylebook.Document) (*stylebook.RenderResult, error) {
				return nil, expectedErr
			},
		}

		_, err := w.WriteDocument(context.Background(), &stylebook.Document{})

		assert.ErrorIs(t, err, expectedErr)
	})
}
