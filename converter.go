package llmstxt

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Returns the Markdown representation of the content.
	Convert(html string) (string, error)
}

// Flattener renders a page's cleaned content as text for a document set.
type Flattener interface {
	// Flatten prunes content hidden from assistive technology and renders
	// the rest either as full Markdown or, when structureOnly is set, as an
	// outline of headings and lists only.
	Flatten(contentHTML string, structureOnly bool) (string, error)
}

// Compactor tightens the whitespace of rendered Markdown.
type Compactor interface {
	// Compact strips trailing spaces and reduces runs of blank lines to a
	// single blank line. Code block content is left unchanged.
	Compact(markdown string) string
}
