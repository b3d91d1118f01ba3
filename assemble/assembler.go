// Package assemble builds document sets and the llms.txt index from the
// rendered pages of a site. It coordinates page selection, ordering,
// extraction, flattening and writing.
package assemble

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/llmstxt"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of pages processed in parallel.
const DefaultConcurrency = 4

// Assembler renders one document set from the rendered pages of a site.
type Assembler struct {
	Matcher     llmstxt.Matcher
	Comparator  llmstxt.Comparator
	Pages       llmstxt.PageSource
	Extractor   llmstxt.Extractor
	Flattener   llmstxt.Flattener
	Compactor   llmstxt.Compactor
	Logger      *slog.Logger
	Site        string
	Concurrency int
}

// pageResult holds the outcome of rendering a single page.
type pageResult struct {
	id    string
	entry string
	err   error
}

// Order returns the pages belonging to set in output order.
func (a *Assembler) Order(set *llmstxt.DocumentSet, pages []string) []string {
	selected := llmstxt.SelectPages(a.Matcher, pages, set.Include, set.Exclude)
	return llmstxt.OrderPages(a.Matcher, a.Comparator, selected, set.Promote, set.Demote)
}

// Assemble renders the artifact for set. Pages that cannot be read or have
// no main content are logged and left out; only context cancellation and
// configuration problems fail the set.
func (a *Assembler) Assemble(ctx context.Context, set *llmstxt.DocumentSet, pages []string) (*llmstxt.Artifact, error) {
	url, err := llmstxt.ResolveURL(a.Site, set.Path)
	if err != nil {
		return nil, err
	}

	ordered := a.Order(set, pages)
	logger := a.logger().With("set", set.Path)

	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	opts := set.ExtractOptions()
	results := make([]pageResult, len(ordered))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, id := range ordered {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entry, err := a.renderPage(gctx, set, opts, id)
			if err != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
				return err
			}
			results[i] = pageResult{id: id, entry: entry, err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifact := &llmstxt.Artifact{
		Path: set.Path,
		Summary: llmstxt.Summary{
			Title:       set.Title,
			URL:         url,
			Description: set.Description,
		},
	}

	entries := make([]string, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			logger.Warn("skipping page",
				"page", result.id,
				"code", llmstxt.ErrorCode(result.err),
				"err", llmstxt.ErrorMessage(result.err),
			)
			artifact.Skipped = append(artifact.Skipped, llmstxt.SkippedPage{ID: result.id, Err: result.err})
			continue
		}
		entries = append(entries, result.entry)
		artifact.Pages = append(artifact.Pages, result.id)
	}

	separator := set.PageSeparator
	if separator == "" {
		separator = llmstxt.DefaultPageSeparator
	}

	artifact.Content = llmstxt.FormatArtifact(set.Description, entries, separator)

	logger.Info("document set assembled",
		"selected", len(ordered),
		"pages", len(artifact.Pages),
		"skipped", len(artifact.Skipped),
		"bytes", len(artifact.Content),
	)

	return artifact, nil
}

// renderPage reads, extracts and flattens one page into its entry.
func (a *Assembler) renderPage(ctx context.Context, set *llmstxt.DocumentSet, opts llmstxt.ExtractOptions, id string) (string, error) {
	html, err := a.Pages.ReadPage(ctx, id)
	if err != nil {
		return "", err
	}

	page, err := a.Extractor.Extract(html, opts)
	if err != nil {
		return "", err
	}

	body, err := a.Flattener.Flatten(page.ContentHTML, set.OnlyStructure)
	if err != nil {
		return "", err
	}

	if set.Minify != nil && set.Minify.Whitespace {
		body = a.Compactor.Compact(body)
	}

	return llmstxt.FormatPage(page, body), nil
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return a.Logger
}
