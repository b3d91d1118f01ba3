package llmstxt

import (
	"context"
	"strings"
)

// PageLister lists the ids of all rendered pages of a site.
// A page id is the page's route without leading or trailing slashes,
// e.g. "guides/setup". The site root is "index".
type PageLister interface {
	ListPages(ctx context.Context) ([]string, error)
}

// PageSource retrieves the rendered HTML of a page.
type PageSource interface {
	// ReadPage returns the HTML for the page id.
	// Returns ENOTFOUND if the page was not rendered.
	ReadPage(ctx context.Context, id string) (string, error)
}

// ArtifactWriter persists generated artifacts.
type ArtifactWriter interface {
	// WriteArtifact writes content to the path relative to the output root.
	WriteArtifact(ctx context.Context, path string, content string) error
}

// RootPageID is the id of the site's top-level page.
const RootPageID = "index"

// NormalizePageID converts a route to a page id by stripping surrounding
// slashes. The empty route is the root page.
func NormalizePageID(route string) string {
	id := strings.Trim(route, "/")
	if id == "" {
		return RootPageID
	}
	return id
}
