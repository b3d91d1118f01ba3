// Package doublestar matches page ids against glob patterns with support
// for "**" across path segments.
package doublestar

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/llmstxt"
)

// Ensure Matcher implements llmstxt.Matcher at compile time.
var _ llmstxt.Matcher = (*Matcher)(nil)

// Matcher wraps doublestar pattern matching.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// Match reports whether id matches pattern.
// Malformed patterns match nothing; they are rejected earlier by ValidatePattern.
func (m *Matcher) Match(pattern, id string) bool {
	ok, err := doublestar.Match(pattern, id)
	if err != nil {
		return false
	}
	return ok
}

// ValidatePattern returns EINVALID if pattern is malformed.
func (m *Matcher) ValidatePattern(pattern string) error {
	if pattern == "" {
		return llmstxt.Errorf(llmstxt.EINVALID, "empty pattern")
	}
	if !doublestar.ValidatePattern(pattern) {
		return llmstxt.Errorf(llmstxt.EINVALID, "malformed pattern %q", pattern)
	}
	return nil
}
