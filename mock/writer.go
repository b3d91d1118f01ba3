package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

var _ llmstxt.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of llmstxt.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(ctx context.Context, path string, content string) error
}

func (w *ArtifactWriter) WriteArtifact(ctx context.Context, path string, content string) error {
	return w.WriteArtifactFn(ctx, path, content)
}
