// Package etree discovers rendered pages from the sitemap XML files a site
// build writes to its output directory.
package etree

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/llmstxt"
)

// Ensure SitemapLister implements llmstxt.PageLister at compile time.
var _ llmstxt.PageLister = (*SitemapLister)(nil)

// DefaultSitemap is the entry point checked when none is given.
const DefaultSitemap = "sitemap-index.xml"

// SitemapLister lists pages from sitemap files on disk. Sitemap indexes are
// resolved recursively; locations outside the site URL are ignored.
type SitemapLister struct {
	dir     string
	site    string
	sitemap string
}

// NewSitemapLister creates a SitemapLister reading sitemap (relative to dir)
// for a site deployed at site.
func NewSitemapLister(dir, site, sitemap string) *SitemapLister {
	if sitemap == "" {
		sitemap = DefaultSitemap
	}
	return &SitemapLister{dir: dir, site: site, sitemap: sitemap}
}

// ListPages returns the sorted ids of all pages listed in the sitemap.
func (l *SitemapLister) ListPages(ctx context.Context) ([]string, error) {
	base, err := url.Parse(l.site)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid site URL: %v", err)
	}

	ids, err := l.processSitemap(ctx, base, l.sitemap, make(map[string]bool))
	if err != nil {
		return nil, err
	}

	slices.Sort(ids)
	return slices.Compact(ids), nil
}

// processSitemap parses a sitemap file, handling both urlset and sitemapindex.
func (l *SitemapLister) processSitemap(ctx context.Context, base *url.URL, name string, seen map[string]bool) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Avoid processing the same sitemap twice
	if seen[name] {
		return nil, nil
	}
	seen[name] = true

	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "sitemap %q escapes the output directory", name)
	}

	f, err := os.Open(filepath.Join(l.dir, filepath.FromSlash(name)))
	if os.IsNotExist(err) {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "sitemap %q not found", name)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("parsing sitemap XML %s: %w", name, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("empty sitemap XML %s", name)
	}

	// Check if this is a sitemap index
	if root.Tag == "sitemapindex" {
		var ids []string
		for _, loc := range locations(root, "sitemap") {
			rel, ok := relativePath(base, loc)
			if !ok {
				continue
			}
			nested, err := l.processSitemap(ctx, base, rel, seen)
			if err != nil {
				return nil, err
			}
			ids = append(ids, nested...)
		}
		return ids, nil
	}

	// Otherwise treat as urlset
	var ids []string
	for _, loc := range locations(root, "url") {
		if rel, ok := relativePath(base, loc); ok {
			ids = append(ids, llmstxt.NormalizePageID(rel))
		}
	}
	return ids, nil
}

// locations returns the trimmed <loc> text of each child element named tag.
func locations(root *etree.Element, tag string) []string {
	var locs []string
	for _, el := range root.SelectElements(tag) {
		loc := el.SelectElement("loc")
		if loc == nil {
			continue
		}
		if text := strings.TrimSpace(loc.Text()); text != "" {
			locs = append(locs, text)
		}
	}
	return locs
}

// relativePath returns loc's path relative to the site base URL.
// Returns false for locations on another host or outside the base path.
func relativePath(base *url.URL, loc string) (string, bool) {
	u, err := url.Parse(loc)
	if err != nil {
		return "", false
	}
	if u.Host != "" && u.Host != base.Host {
		return "", false
	}

	basePath := strings.TrimSuffix(base.Path, "/")
	if u.Path != basePath && !strings.HasPrefix(u.Path, basePath+"/") {
		return "", false
	}

	return strings.TrimPrefix(strings.TrimPrefix(u.Path, basePath), "/"), true
}
