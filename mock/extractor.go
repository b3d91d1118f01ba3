package mock

import "github.com/fwojciec/llmstxt"

var _ llmstxt.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of llmstxt.Extractor.
type Extractor struct {
	ExtractFn         func(html string, opts llmstxt.ExtractOptions) (*llmstxt.ExtractedPage, error)
	ValidateOptionsFn func(opts llmstxt.ExtractOptions) error
}

func (e *Extractor) Extract(html string, opts llmstxt.ExtractOptions) (*llmstxt.ExtractedPage, error) {
	return e.ExtractFn(html, opts)
}

func (e *Extractor) ValidateOptions(opts llmstxt.ExtractOptions) error {
	return e.ValidateOptionsFn(opts)
}
