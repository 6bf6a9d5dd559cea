package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/stylebook"
	"github.com/fwojciec/stylebook/crawl"
	"github.com/fwojciec/stylebook/fpdf"
	"github.com/fwojciec/stylebook/fs"
	"github.com/fwojciec/stylebook/goquery"
	stylehttp "github.com/fwojciec/stylebook/http"
	"github.com/fwojciec/stylebook/rod"
	styleslog "github.com/fwojciec/stylebook/slog"
	"github.com/fwojciec/stylebook/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// NewChromeRenderer starts the Chrome renderer. Tests replace it.
	NewChromeRenderer func() (ClosingRenderer, error)
}

// ClosingRenderer is a renderer holding resources that must be released.
type ClosingRenderer interface {
	stylebook.Renderer
	Close() error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewChromeRenderer: func() (ClosingRenderer, error) {
			return rod.NewRenderer()
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("stylebook"),
		kong.Description("Render a style guide's sitemap into one PDF per category"),
		kong.Writers(stdout, stderr),
		kong.Vars{"sitemap_url": DefaultSitemapURL},
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	classifier, err := cli.classifier()
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", stylebook.ErrorMessage(err))
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	var fetcherOpts []stylehttp.Option
	if cli.Timeout > 0 {
		fetcherOpts = append(fetcherOpts, stylehttp.WithTimeout(cli.Timeout))
	}
	fetcher := stylehttp.NewFetcher(fetcherOpts...)
	defer fetcher.Close()

	runner := &crawl.Runner{
		Sitemaps:    styleslog.NewLoggingSitemapService(stylehttp.NewSitemapService(nil), logger),
		Fetcher:     styleslog.NewLoggingFetcher(fetcher, logger),
		Extractor:   styleslog.NewLoggingExtractor(goquery.NewExtractor(), logger),
		Classifier:  classifier,
		Concurrency: cli.Concurrency,
		Logger:      logger,
	}
	deps.Runner = runner

	if !cli.Preview {
		renderer, closeRenderer, err := m.renderer(cli.Renderer)
		if err != nil {
			if cli.Renderer == RendererChrome {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
			}
			return fmt.Errorf("failed to start renderer: %w", err)
		}
		defer closeRenderer()

		runner.Writer = styleslog.NewLoggingDocumentWriter(fs.NewWriter(cli.Out, renderer), logger)
	}

	cmd := &BuildCmd{
		SitemapURL: cli.SitemapURL,
		Preview:    cli.Preview,
	}

	return cmd.Run(deps)
}

func (m *Main) renderer(name string) (stylebook.Renderer, func(), error) {
	switch name {
	case RendererChrome:
		r, err := m.NewChromeRenderer()
		if err != nil {
			return nil, nil, err
		}
		return r, func() { _ = r.Close() }, nil
	default:
		return fpdf.NewRenderer(fpdf.WithCreator("stylebook")), func() {}, nil
	}
}

// classifier builds the category classifier from the flags and the
// optional category file.
func (c *CLI) classifier() (*stylebook.Classifier, error) {
	classifier := stylebook.NewClassifier(stylebook.DefaultCategories())
	if c.Categories != "" {
		cfg, err := yaml.LoadConfig(c.Categories)
		if err != nil {
			return nil, err
		}
		classifier = cfg.Classifier()
	}
	if c.Segment > 0 {
		classifier.Segment = c.Segment
	}
	return classifier, nil
}
