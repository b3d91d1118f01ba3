package llmstxt

// DefaultTitle is used for pages without a level-one heading.
const DefaultTitle = "Untitled"

// ExtractOptions controls which part of a page is treated as content.
type ExtractOptions struct {
	// MainSelector locates the main content root. Defaults to DefaultMainSelector.
	MainSelector string

	// IgnoreSelectors are removed from the content root in addition to
	// header and footer landmarks.
	IgnoreSelectors []string
}

// ExtractedPage holds the semantic content of one rendered page.
type ExtractedPage struct {
	// Title is the text of the page's first level-one heading.
	Title string

	// Description is the page's meta description, if any.
	Description string

	// ContentHTML is the cleaned main content root as HTML.
	// The title heading and ignored substructures have been removed.
	ContentHTML string
}

// Extractor extracts the main content of a rendered page.
type Extractor interface {
	// Extract parses a full HTML document and returns its content.
	// Returns ENOCONTENT if the document has no main content root.
	Extract(html string, opts ExtractOptions) (*ExtractedPage, error)

	// ValidateOptions returns EINVALID if any selector in opts is malformed.
	ValidateOptions(opts ExtractOptions) error
}
