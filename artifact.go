package llmstxt

// Summary describes a generated document set for the llms.txt index.
type Summary struct {
	Title       string
	URL         string
	Description string
}

// SkippedPage records a selected page that did not make it into an artifact.
type SkippedPage struct {
	ID  string
	Err error
}

// Artifact is the generated output for one document set.
type Artifact struct {
	// Path is the output path relative to the site root.
	Path string

	// Content is the full artifact text.
	Content string

	// Pages lists the ids included in the artifact, in output order.
	Pages []string

	// Skipped lists selected pages that were left out and why.
	Skipped []SkippedPage

	Summary Summary
}
