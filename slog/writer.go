package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/llmstxt"
)

// Ensure LoggingArtifactWriter implements llmstxt.ArtifactWriter.
var _ llmstxt.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   llmstxt.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next llmstxt.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// WriteArtifact delegates to the wrapped writer and logs the operation.
func (w *LoggingArtifactWriter) WriteArtifact(ctx context.Context, path string, content string) (err error) {
	defer func(begin time.Time) {
		w.logger.Info("artifact written",
			"path", path,
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.WriteArtifact(ctx, path, content)
}
