// Package rod implements stylebook.Renderer by printing HTML to PDF in
// headless Chrome.
package rod

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/stylebook"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Renderer implements stylebook.Renderer at compile time.
var _ stylebook.Renderer = (*Renderer)(nil)

// Renderer prints documents to PDF using Chrome browser automation.
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// NewRenderer creates a new Renderer that launches a headless Chrome browser.
// Close must be called when the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer() (*Renderer, error) {
	// Launch browser using rod's launcher (finds or downloads Chrome)
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Renderer{browser: browser, launcher: l}, nil
}

// Render lays doc out as HTML, loads it into a fresh tab and writes the
// printed PDF to w. Page size and margins come from the document's CSS.
func (r *Renderer) Render(ctx context.Context, w io.Writer, doc *stylebook.Document) (*stylebook.RenderResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	html, result, err := BuildHTML(doc)
	if err != nil {
		return nil, fmt.Errorf("building HTML: %w", err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("loading HTML: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return nil, fmt.Errorf("waiting for load: %w", err)
	}

	pdf, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:     true,
		PreferCSSPageSize:   true,
		DisplayHeaderFooter: true,
		HeaderTemplate:      "<span></span>",
		FooterTemplate:      footerTemplate,
	})
	if err != nil {
		return nil, fmt.Errorf("printing PDF: %w", err)
	}

	n, err := io.Copy(w, pdf)
	if err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	result.Bytes = n

	return result, nil
}

// Close shuts down the browser.
func (r *Renderer) Close() error {
	err := r.browser.Close()
	r.launcher.Kill()
	return err
}
