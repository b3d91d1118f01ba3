// Package collate compares page sort keys using locale-aware collation.
package collate

import (
	"sync"

	"github.com/fwojciec/llmstxt"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Ensure Comparator implements llmstxt.Comparator at compile time.
var _ llmstxt.Comparator = (*Comparator)(nil)

// Comparator compares strings with the collation rules of a locale.
// It is safe for concurrent use.
type Comparator struct {
	mu  sync.Mutex
	col *collate.Collator
}

// NewComparator creates a Comparator for the given BCP 47 locale id.
// Returns EINVALID if the locale cannot be parsed.
func NewComparator(locale string) (*Comparator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid locale %q: %v", locale, err)
	}
	return &Comparator{col: collate.New(tag)}, nil
}

// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
func (c *Comparator) Compare(a, b string) int {
	// Collator keeps internal buffers between calls.
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.col.CompareString(a, b)
}
