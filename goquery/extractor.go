package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/llmstxt"
)

// Ensure Extractor implements llmstxt.Extractor at compile time.
var _ llmstxt.Extractor = (*Extractor)(nil)

// alwaysIgnored are removed from every content root.
var alwaysIgnored = []string{"header", "footer"}

// Extractor extracts the main content root of rendered pages using CSS selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses html and returns the page title, meta description and the
// cleaned main content. The first level-one heading inside the main root
// becomes the title and is removed from the content.
func (e *Extractor) Extract(html string, opts llmstxt.ExtractOptions) (*llmstxt.ExtractedPage, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	mainSelector := opts.MainSelector
	if mainSelector == "" {
		mainSelector = llmstxt.DefaultMainSelector
	}

	root := doc.Find(mainSelector).First()
	if root.Length() == 0 {
		return nil, llmstxt.Errorf(llmstxt.ENOCONTENT, "no element matches main content selector %q", mainSelector)
	}

	page := &llmstxt.ExtractedPage{Title: llmstxt.DefaultTitle}

	// Headings outside the root, such as a site name in the page header,
	// never become the title.
	heading := root.Find("h1").First()
	if heading.Length() > 0 {
		if title := normalizeText(heading.Text()); title != "" {
			page.Title = title
		}
		heading.Remove()
	}

	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok {
		page.Description = strings.TrimSpace(desc)
	}

	for _, selector := range alwaysIgnored {
		root.Find(selector).Remove()
	}
	for _, selector := range opts.IgnoreSelectors {
		root.Find(selector).Remove()
	}

	// Inner HTML only: attributes on the root element itself are dropped.
	content, err := root.Html()
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINTERNAL, "failed to render content: %v", err)
	}
	page.ContentHTML = strings.TrimSpace(content)

	return page, nil
}

// ValidateOptions returns EINVALID if the main selector or any ignore
// selector cannot be compiled.
func (e *Extractor) ValidateOptions(opts llmstxt.ExtractOptions) error {
	selectors := append([]string{opts.MainSelector}, opts.IgnoreSelectors...)
	for _, selector := range selectors {
		if selector == "" {
			continue
		}
		if _, err := cascadia.Compile(selector); err != nil {
			return llmstxt.Errorf(llmstxt.EINVALID, "invalid selector %q: %v", selector, err)
		}
	}
	return nil
}

// normalizeText collapses all whitespace runs to single spaces.
func normalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
