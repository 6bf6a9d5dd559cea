package stylebook

import (
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Document is the accumulated content of one category.
type Document struct {
	Category Category
	Items    []Item
}

// SkippedItem records an item the renderer could not represent.
type SkippedItem struct {
	Index  int
	Item   Item
	Reason string
}

// RenderResult describes a rendered document.
type RenderResult struct {
	// Path is the destination file. Set by DocumentWriter implementations.
	Path string

	// Bytes is the size of the rendered output.
	Bytes int64

	// Rendered is the number of items that made it into the document.
	Rendered int

	// Skipped lists items dropped because the renderer rejected them.
	Skipped []SkippedItem
}

// Renderer produces a paginated A4 document from a category's items.
type Renderer interface {
	// Render writes doc to w. Items are laid out in order: headings after
	// a large spacer in a style chosen by level, paragraphs after a small
	// spacer as body text, lists as indented bullets.
	//
	// A paragraph that fails CheckRenderable is skipped and reported in
	// the result; rendering continues. An error means no usable document
	// was produced.
	Render(ctx context.Context, w io.Writer, doc *Document) (*RenderResult, error)
}

// DocumentWriter renders documents to their category's output file.
type DocumentWriter interface {
	// WriteDocument renders doc to the category's output path, replacing
	// any existing file. No partial file is left behind on failure.
	WriteDocument(ctx context.Context, doc *Document) (*RenderResult, error)
}

// CheckRenderable returns EINVALID if text cannot be represented in a
// document: invalid UTF-8 or control characters other than tab and newline.
func CheckRenderable(text string) error {
	if !utf8.ValidString(text) {
		return Errorf(EINVALID, "text is not valid UTF-8")
	}
	for _, r := range text {
		if r == '\t' || r == '\n' {
			continue
		}
		if unicode.IsControl(r) {
			return Errorf(EINVALID, "text contains control character %U", r)
		}
	}
	return nil
}

// SanitizeText returns text with invalid UTF-8 sequences and control
// characters removed. Renderers use it for headings and list entries,
// which are never skipped.
func SanitizeText(text string) string {
	if CheckRenderable(text) == nil {
		return text
	}
	text = strings.ToValidUTF8(text, "")
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if unicode.IsControl(r) && r != '\t' && r != '\n' {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
