package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/stylebook"
)

// Ensure LoggingDocumentWriter implements stylebook.DocumentWriter.
var _ stylebook.DocumentWriter = (*LoggingDocumentWriter)(nil)

// LoggingDocumentWriter wraps a DocumentWriter with debug logging.
type LoggingDocumentWriter struct {
	next   stylebook.DocumentWriter
	logger *slog.Logger
}

// NewLoggingDocumentWriter creates a new LoggingDocumentWriter.
func NewLoggingDocumentWriter(next stylebook.DocumentWriter, logger *slog.Logger) *LoggingDocumentWriter {
	return &LoggingDocumentWriter{next: next, logger: logger}
}

// WriteDocument delegates to the wrapped writer and logs the operation.
func (w *LoggingDocumentWriter) WriteDocument(ctx context.Context, doc *stylebook.Document) (result *stylebook.RenderResult, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"category", doc.Category.Key,
			"items", len(doc.Items),
			"duration", time.Since(begin),
			"err", err,
		}
		if result != nil {
			attrs = append(attrs, "path", result.Path, "bytes", result.Bytes, "skipped", len(result.Skipped))
		}
		w.logger.Debug("write document", attrs...)
	}(time.Now())
	return w.next.WriteDocument(ctx, doc)
}
