package main

import (
	"fmt"

	"github.com/fwojciec/stylebook"
	"github.com/fwojciec/stylebook/crawl"
)

// Run executes the build command.
func (c *BuildCmd) Run(deps *Dependencies) error {
	// Preview mode: classify URLs without fetching pages
	if c.Preview {
		return c.runPreview(deps)
	}

	return c.runBuild(deps)
}

func (c *BuildCmd) runPreview(deps *Dependencies) error {
	report, err := deps.Runner.Preview(deps.Ctx, c.SitemapURL, func(url string, cat stylebook.Category, ok bool) {
		key := "-"
		if ok {
			key = cat.Key
		}
		fmt.Fprintf(deps.Stdout, "%s\t%s\n", key, url)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylebook.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "%d URLs, %d unclassified\n", report.Discovered, report.Unclassified)
	return nil
}

func (c *BuildCmd) runBuild(deps *Dependencies) error {
	progress := func(e crawl.ProgressEvent) {
		switch e.Type {
		case crawl.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Fetching %d pages\n", e.Total)
		case crawl.ProgressCompleted, crawl.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "\r[%d/%d] %s", e.Completed, e.Total, crawl.TruncateURL(e.URL, 50))
		case crawl.ProgressFinished:
			// Clear progress line
			fmt.Fprintf(deps.Stdout, "\r%80s\r", "")
		}
	}

	report, err := deps.Runner.Run(deps.Ctx, c.SitemapURL, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", stylebook.ErrorMessage(err))
		return err
	}

	for _, path := range report.Paths {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", path)
	}

	keys := make([]string, 0, len(deps.Runner.Classifier.Categories))
	for _, cat := range deps.Runner.Classifier.Categories {
		keys = append(keys, cat.Key)
	}
	return crawl.WriteSummary(deps.Stdout, report, keys)
}
