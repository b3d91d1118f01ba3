package mock

import "github.com/fwojciec/llmstxt"

// Compile-time interface verification.
var (
	_ llmstxt.Matcher    = (*Matcher)(nil)
	_ llmstxt.Comparator = (*Comparator)(nil)
)

// Matcher is a mock implementation of llmstxt.Matcher.
type Matcher struct {
	MatchFn           func(pattern, id string) bool
	ValidatePatternFn func(pattern string) error
}

func (m *Matcher) Match(pattern, id string) bool {
	return m.MatchFn(pattern, id)
}

func (m *Matcher) ValidatePattern(pattern string) error {
	return m.ValidatePatternFn(pattern)
}

// Comparator is a mock implementation of llmstxt.Comparator.
type Comparator struct {
	CompareFn func(a, b string) int
}

func (c *Comparator) Compare(a, b string) int {
	return c.CompareFn(a, b)
}
