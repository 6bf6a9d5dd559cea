// Package fs writes rendered documents to the local filesystem.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/stylebook"
)

// Ensure Writer implements stylebook.DocumentWriter at compile time.
var _ stylebook.DocumentWriter = (*Writer)(nil)

// Writer renders documents into files under a base directory.
type Writer struct {
	baseDir  string
	renderer stylebook.Renderer
}

// NewWriter creates a new Writer that renders with renderer into baseDir.
func NewWriter(baseDir string, renderer stylebook.Renderer) *Writer {
	return &Writer{baseDir: baseDir, renderer: renderer}
}

// Path returns the destination file for a category.
func (w *Writer) Path(cat stylebook.Category) string {
	return filepath.Join(w.baseDir, cat.Output)
}

// WriteDocument renders doc to a temporary file beside its destination and
// renames it into place, replacing any existing file.
func (w *Writer) WriteDocument(ctx context.Context, doc *stylebook.Document) (*stylebook.RenderResult, error) {
	if doc.Category.Output == "" {
		return nil, stylebook.Errorf(stylebook.EINVALID, "category %q: output required", doc.Category.Key)
	}

	finalPath := w.Path(doc.Category)
	dir := filepath.Dir(finalPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(finalPath)+".*.tmp")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()

	result, err := w.renderer.Render(ctx, tmp, doc)
	if closeErr := tmp.Close(); err == nil && closeErr != nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("rendering %s: %w", finalPath, err)
	}

	if err := os.Chmod(tmpPath, 0644); err != nil {
		_ = os.Remove(tmpPath)
		return nil, err
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		_ = os.Remove(tmpPath)
		return nil, err
	}

	result.Path = finalPath
	return result, nil
}
