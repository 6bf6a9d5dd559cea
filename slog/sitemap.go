// Package slog provides logging decorators for stylebook services.
// Every operation is logged at debug level with its duration and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stylebook"
)

// Ensure LoggingSitemapService implements stylebook.SitemapService.
var _ stylebook.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   stylebook.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next stylebook.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// FetchURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) FetchURLs(ctx context.Context, sitemapURL string) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("sitemap fetch",
			"url", sitemapURL,
			"count", len(urls),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FetchURLs(ctx, sitemapURL)
}
