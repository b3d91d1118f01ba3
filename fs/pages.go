// Package fs reads rendered pages from and writes artifacts to a site's
// build output directory.
package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/fwojciec/llmstxt"
)

// Compile-time interface verification.
var (
	_ llmstxt.PageLister = (*PageSource)(nil)
	_ llmstxt.PageSource = (*PageSource)(nil)
)

// PageSource serves rendered pages from a build output directory.
type PageSource struct {
	dir string
}

// NewPageSource creates a new PageSource rooted at dir.
func NewPageSource(dir string) *PageSource {
	return &PageSource{dir: dir}
}

// PathToID converts an HTML file path relative to the output directory to a
// page id. Example: docs/api/index.html → docs/api, docs/faq.html → docs/faq
func PathToID(rel string) string {
	rel = filepath.ToSlash(rel)
	if path.Base(rel) == "index.html" {
		dir := path.Dir(rel)
		if dir == "." {
			return llmstxt.RootPageID
		}
		return dir
	}
	return strings.TrimSuffix(rel, ".html")
}

// ListPages walks the output directory and returns the ids of all rendered
// HTML pages, sorted.
func (s *PageSource) ListPages(ctx context.Context) ([]string, error) {
	var ids []string
	err := filepath.WalkDir(s.dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(p) != ".html" {
			return nil
		}

		rel, err := filepath.Rel(s.dir, p)
		if err != nil {
			return err
		}
		ids = append(ids, PathToID(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// ReadPage returns the HTML of the page id. Both directory-style
// (id/index.html) and file-style (id.html) output is supported.
// Returns ENOTFOUND if neither file exists.
func (s *PageSource) ReadPage(ctx context.Context, id string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	id = llmstxt.NormalizePageID(id)
	if !filepath.IsLocal(filepath.FromSlash(id)) {
		return "", llmstxt.Errorf(llmstxt.EINVALID, "page id %q escapes the output directory", id)
	}

	candidates := []string{
		filepath.Join(s.dir, filepath.FromSlash(id), "index.html"),
		filepath.Join(s.dir, filepath.FromSlash(id)+".html"),
	}
	if id == llmstxt.RootPageID {
		candidates = append(candidates, filepath.Join(s.dir, "index.html"))
	}

	for _, candidate := range candidates {
		b, err := os.ReadFile(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return "", err
		}
		return string(b), nil
	}

	return "", llmstxt.Errorf(llmstxt.ENOTFOUND, "page %q not rendered", id)
}
