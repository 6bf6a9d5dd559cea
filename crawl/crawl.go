// Package crawl provides the stylebook pipeline orchestration.
// It coordinates sitemap reading, fetching, extraction, classification,
// and rendering of category documents.
package crawl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/fwojciec/stylebook"
	"golang.org/x/sync/errgroup"
)

// Runner orchestrates one pass over a sitemap.
type Runner struct {
	Sitemaps   stylebook.SitemapService
	Fetcher    stylebook.Fetcher
	Extractor  stylebook.Extractor
	Writer     stylebook.DocumentWriter
	Classifier *stylebook.Classifier

	// Concurrency is the number of pages processed at once. Values below
	// two process pages strictly one after another.
	Concurrency int

	// Logger receives skip diagnostics. Nil discards them.
	Logger *slog.Logger
}

// Report summarizes a run.
type Report struct {
	Discovered   int
	Unclassified int
	Fetched      int
	Failed       int
	NoContent    int
	Items        int

	// Counts holds the number of items per category key.
	Counts map[string]int

	Written      int
	WriteFailed  int
	Empty        int
	SkippedItems int
	Bytes        int64
	Paths        []string
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Category  string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	category stylebook.Category
	items    []stylebook.Item
	err      error
}

// Run reads the sitemap, collects content per category, and writes one
// document per non-empty category. The progress callback, if provided,
// receives events as pages are processed.
//
// Only a malformed sitemap or context cancellation abort the run. An
// unreachable sitemap yields an empty run; page and document failures are
// logged and counted.
func (r *Runner) Run(ctx context.Context, sitemapURL string, progress ProgressFunc) (*Report, error) {
	logger := r.logger()
	report := &Report{Counts: make(map[string]int)}

	urls, err := r.Sitemaps.FetchURLs(ctx, sitemapURL)
	switch {
	case err == nil:
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case stylebook.ErrorCode(err) == stylebook.EUNAVAILABLE:
		logger.Warn("sitemap unavailable", "url", sitemapURL, "err", err)
		urls = nil
	default:
		return nil, fmt.Errorf("reading sitemap: %w", err)
	}
	report.Discovered = len(urls)

	// Classify first: pages outside every category are never fetched.
	var jobs []pageResult
	for _, u := range urls {
		cat, ok := r.Classifier.Classify(u)
		if !ok {
			report.Unclassified++
			logger.Info("page not classified", "url", u)
			continue
		}
		jobs = append(jobs, pageResult{position: len(jobs), url: u, category: cat})
	}

	results, err := r.processPages(ctx, jobs, progress)
	if err != nil {
		return nil, err
	}

	buckets := stylebook.NewBuckets(r.Classifier.Categories)
	for _, res := range results {
		switch {
		case res.err == nil:
			report.Fetched++
		case stylebook.ErrorCode(res.err) == stylebook.ENOTFOUND:
			report.Fetched++
			report.NoContent++
			logger.Info("no content region", "url", res.url)
			continue
		default:
			report.Failed++
			logger.Warn("page failed", "url", res.url, "err", res.err)
			continue
		}
		buckets.Append(res.category.Key, res.items...)
		report.Items += len(res.items)
		report.Counts[res.category.Key] += len(res.items)
	}

	for _, doc := range buckets.Documents() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(doc.Items) == 0 {
			report.Empty++
			logger.Info("no content for category", "category", doc.Category.Key)
			continue
		}

		result, err := r.Writer.WriteDocument(ctx, doc)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			report.WriteFailed++
			logger.Error("document failed", "category", doc.Category.Key, "output", doc.Category.Output, "err", err)
			continue
		}

		for _, s := range result.Skipped {
			logger.Warn("item skipped", "category", doc.Category.Key, "index", s.Index, "kind", s.Item.Kind, "reason", s.Reason)
		}
		report.Written++
		report.SkippedItems += len(result.Skipped)
		report.Bytes += result.Bytes
		report.Paths = append(report.Paths, result.Path)
	}

	return report, nil
}

// Preview classifies every sitemap URL without fetching pages. The callback
// receives each URL with its category; unclassified URLs get a zero
// Category.
func (r *Runner) Preview(ctx context.Context, sitemapURL string, fn func(url string, cat stylebook.Category, ok bool)) (*Report, error) {
	urls, err := r.Sitemaps.FetchURLs(ctx, sitemapURL)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if stylebook.ErrorCode(err) != stylebook.EUNAVAILABLE {
			return nil, fmt.Errorf("reading sitemap: %w", err)
		}
		r.logger().Warn("sitemap unavailable", "url", sitemapURL, "err", err)
		urls = nil
	}

	report := &Report{Discovered: len(urls), Counts: make(map[string]int)}
	for _, u := range urls {
		cat, ok := r.Classifier.Classify(u)
		if ok {
			report.Counts[cat.Key]++
		} else {
			report.Unclassified++
		}
		fn(u, cat, ok)
	}
	return report, nil
}

// processPages fetches and extracts every job. Results are returned in job
// order regardless of how many workers ran.
func (r *Runner) processPages(ctx context.Context, jobs []pageResult, progress ProgressFunc) ([]pageResult, error) {
	total := len(jobs)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	results := make([]pageResult, total)
	var completed atomic.Int64
	report := func(res pageResult) {
		n := int(completed.Add(1))
		if progress == nil {
			return
		}
		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: n,
			Total:     total,
			URL:       res.url,
			Category:  res.category.Key,
		}
		if res.err != nil && stylebook.ErrorCode(res.err) != stylebook.ENOTFOUND {
			event.Type = ProgressFailed
			event.Error = res.err
		}
		progress(event)
	}

	if r.Concurrency <= 1 {
		for _, job := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			res := r.processURL(ctx, job)
			results[res.position] = res
			report(res)
		}
	} else {
		resultCh := make(chan pageResult, total)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.Concurrency)

		go func() {
			for _, job := range jobs {
				g.Go(func() error {
					resultCh <- r.processURL(gctx, job)
					return nil
				})
			}
			_ = g.Wait()
			close(resultCh)
		}()

		// Collect results in order
		for res := range resultCh {
			results[res.position] = res
			report(res)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results, nil
}

// processURL fetches and extracts a single page.
func (r *Runner) processURL(ctx context.Context, job pageResult) pageResult {
	html, err := r.Fetcher.Fetch(ctx, job.url)
	if err != nil {
		job.err = err
		return job
	}

	items, err := r.Extractor.Extract(html)
	if err != nil {
		job.err = err
		return job
	}

	job.items = items
	return job
}

func (r *Runner) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
