package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/stylebook/crawl"
)

// DefaultSitemapURL is the sitemap of the Australian Government Style Manual.
const DefaultSitemapURL = "https://www.stylemanual.gov.au/sitemap.xml"

// Renderer names accepted by --renderer.
const (
	RendererPDF    = "pdf"
	RendererChrome = "chrome"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Out         string        `short:"o" default:"." type:"path" help:"Directory for the generated PDFs"`
	Categories  string        `type:"existingfile" help:"YAML category table (default: built-in Style Manual categories)"`
	Renderer    string        `short:"r" enum:"pdf,chrome" default:"pdf" help:"PDF renderer: pdf (built-in) or chrome (headless Chrome)"`
	Concurrency int           `short:"c" default:"1" help:"Pages fetched at once"`
	Timeout     time.Duration `short:"t" default:"0s" help:"Per-request timeout (0 disables)"`
	Segment     int           `help:"Path component holding the category key (default 3; use 1 for the default Style Manual sitemap)"`
	Preview     bool          `short:"p" help:"List each URL with its category without fetching pages"`
	Verbose     bool          `short:"v" help:"Log every request with timings"`
	SitemapURL  string        `arg:"" optional:"" default:"${sitemap_url}" help:"Sitemap to crawl (default: ${default})"`
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Runner *crawl.Runner
}

// BuildCmd handles the main build operation.
type BuildCmd struct {
	SitemapURL string
	Preview    bool
}
