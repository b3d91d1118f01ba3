package mock

import "github.com/fwojciec/llmstxt"

// Compile-time interface verification.
var (
	_ llmstxt.Converter = (*Converter)(nil)
	_ llmstxt.Flattener = (*Flattener)(nil)
	_ llmstxt.Compactor = (*Compactor)(nil)
)

// Converter is a mock implementation of llmstxt.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

// Flattener is a mock implementation of llmstxt.Flattener.
type Flattener struct {
	FlattenFn func(contentHTML string, structureOnly bool) (string, error)
}

func (f *Flattener) Flatten(contentHTML string, structureOnly bool) (string, error) {
	return f.FlattenFn(contentHTML, structureOnly)
}

// Compactor is a mock implementation of llmstxt.Compactor.
type Compactor struct {
	CompactFn func(markdown string) string
}

func (c *Compactor) Compact(markdown string) string {
	return c.CompactFn(markdown)
}
