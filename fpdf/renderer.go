// Package fpdf implements stylebook.Renderer with the pure-Go fpdf library.
// Text is set in the PDF core fonts, which use the Windows-1252 encoding.
package fpdf

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/stylebook"
	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Layout constants in millimetres.
const (
	margin         = 20.0
	headingSpacer  = 5.0 // 0.5 cm
	paragraphSpace = 2.0 // 0.2 cm
	listIndent     = 10.0
	bulletWidth    = 5.0
	bodySize       = 10.0
	fontFamily     = "Helvetica"
)

// headingSizes holds the font size per heading style; level 3 and deeper
// share the last entry.
var headingSizes = []float64{18, 14, 12}

// Ensure Renderer implements stylebook.Renderer at compile time.
var _ stylebook.Renderer = (*Renderer)(nil)

// Renderer lays out documents as A4 PDFs.
type Renderer struct {
	creator  string
	compress bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithCreator sets the creator recorded in the PDF metadata.
func WithCreator(creator string) Option {
	return func(r *Renderer) {
		r.creator = creator
	}
}

// WithoutCompression disables stream compression, leaving page content
// readable in the output.
func WithoutCompression() Option {
	return func(r *Renderer) {
		r.compress = false
	}
}

// NewRenderer creates a new Renderer.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{creator: "stylebook", compress: true}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes doc to w as a PDF.
func (r *Renderer) Render(ctx context.Context, w io.Writer, doc *stylebook.Document) (*stylebook.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(r.compress)
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.SetTitle(doc.Category.Name, true)
	pdf.SetCreator(r.creator, true)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(fontFamily, "I", 8)
		pdf.CellFormat(0, 10, fmt.Sprintf("%s - page %d of {nb}", encodeText(doc.Category.Name), pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	sections := stylebook.Outline(doc.Items)
	depths := stylebook.OutlineDepths(sections)
	bookmarkDepth := make(map[int]int, len(sections))
	for i, s := range sections {
		bookmarkDepth[s.Index] = depths[i]
	}

	_, pageHeight := pdf.GetPageSize()

	result := &stylebook.RenderResult{}
	for i, item := range doc.Items {
		switch item.Kind {
		case stylebook.KindHeading:
			text := encodeText(stylebook.SanitizeText(item.Text))
			size := headingSize(item.Level)
			pdf.Ln(headingSpacer)
			// Break before bookmarking so the bookmark lands on the
			// heading's page.
			if pdf.GetY()+lineHeight(size) > pageHeight-margin {
				pdf.AddPage()
			}
			pdf.Bookmark(text, bookmarkDepth[i], -1)
			pdf.SetFont(fontFamily, "B", size)
			pdf.MultiCell(0, lineHeight(size), text, "", "L", false)
		case stylebook.KindParagraph:
			if err := stylebook.CheckRenderable(item.Text); err != nil {
				result.Skipped = append(result.Skipped, stylebook.SkippedItem{
					Index:  i,
					Item:   item,
					Reason: stylebook.ErrorMessage(err),
				})
				continue
			}
			pdf.Ln(paragraphSpace)
			pdf.SetFont(fontFamily, "", bodySize)
			pdf.MultiCell(0, lineHeight(bodySize), encodeText(item.Text), "", "L", false)
		case stylebook.KindList:
			pdf.SetFont(fontFamily, "", bodySize)
			r.renderList(pdf, item.Entries)
		default:
			result.Skipped = append(result.Skipped, stylebook.SkippedItem{
				Index:  i,
				Item:   item,
				Reason: fmt.Sprintf("unknown item kind %q", item.Kind),
			})
			continue
		}
		result.Rendered++
	}

	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("laying out PDF: %w", err)
	}

	cw := &countingWriter{w: w}
	if err := pdf.Output(cw); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	result.Bytes = cw.n

	return result, nil
}

// renderList writes entries as bullets indented from the left margin.
// Continuation lines align with the entry text, not the bullet.
func (r *Renderer) renderList(pdf *fpdf.Fpdf, entries []string) {
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	textWidth := pageWidth - left - right - listIndent
	h := lineHeight(bodySize)

	for _, entry := range entries {
		pdf.SetX(left + listIndent - bulletWidth)
		pdf.CellFormat(bulletWidth, h, encodeText("•"), "", 0, "L", false, 0, "")
		pdf.MultiCell(textWidth, h, encodeText(stylebook.SanitizeText(entry)), "", "L", false)
	}
}

func headingSize(level int) float64 {
	idx := level - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(headingSizes) {
		idx = len(headingSizes) - 1
	}
	return headingSizes[idx]
}

// lineHeight converts a font size in points to a line height in millimetres.
func lineHeight(size float64) float64 {
	return size * 25.4 / 72 * 1.25
}

// encodeText converts s to the Windows-1252 bytes expected by the core
// fonts. Runes outside the code page are replaced by their base letter when
// they have one (ā becomes a) and by '?' otherwise.
func encodeText(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		if c, ok := baseLetter(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}

// baseLetter returns the Windows-1252 encoding of the first rune of r's
// canonical decomposition, if that differs from r and is encodable.
func baseLetter(r rune) (byte, bool) {
	decomposed := []rune(norm.NFD.String(string(r)))
	if len(decomposed) < 2 {
		return 0, false
	}
	return charmap.Windows1252.EncodeRune(decomposed[0])
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
