package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmstxt"
)

// Compile-time interface verification.
var (
	_ llmstxt.PageLister = (*LoggingPageLister)(nil)
	_ llmstxt.PageSource = (*LoggingPageSource)(nil)
)

// LoggingPageLister wraps a PageLister with logging.
type LoggingPageLister struct {
	next   llmstxt.PageLister
	logger *slog.Logger
}

// NewLoggingPageLister creates a new LoggingPageLister.
func NewLoggingPageLister(next llmstxt.PageLister, logger *slog.Logger) *LoggingPageLister {
	return &LoggingPageLister{next: next, logger: logger}
}

// ListPages delegates to the wrapped lister and logs the operation.
func (l *LoggingPageLister) ListPages(ctx context.Context) (ids []string, err error) {
	defer func(begin time.Time) {
		l.logger.Info("page discovery",
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.ListPages(ctx)
}

// LoggingPageSource wraps a PageSource with debug logging.
type LoggingPageSource struct {
	next   llmstxt.PageSource
	logger *slog.Logger
}

// NewLoggingPageSource creates a new LoggingPageSource.
func NewLoggingPageSource(next llmstxt.PageSource, logger *slog.Logger) *LoggingPageSource {
	return &LoggingPageSource{next: next, logger: logger}
}

// ReadPage delegates to the wrapped source and logs the operation.
func (s *LoggingPageSource) ReadPage(ctx context.Context, id string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("page read",
			"page", id,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ReadPage(ctx, id)
}
