package mock

import (
	"context"

	"github.com/fwojciec/llmstxt"
)

// Compile-time interface verification.
var (
	_ llmstxt.PageLister = (*PageLister)(nil)
	_ llmstxt.PageSource = (*PageSource)(nil)
)

// PageLister is a mock implementation of llmstxt.PageLister.
type PageLister struct {
	ListPagesFn func(ctx context.Context) ([]string, error)
}

func (l *PageLister) ListPages(ctx context.Context) ([]string, error) {
	return l.ListPagesFn(ctx)
}

// PageSource is a mock implementation of llmstxt.PageSource.
type PageSource struct {
	ReadPageFn func(ctx context.Context, id string) (string, error)
}

func (s *PageSource) ReadPage(ctx context.Context, id string) (string, error) {
	return s.ReadPageFn(ctx, id)
}
