package llmstxt

import (
	"slices"
	"strings"
)

// prioritySentinel prefixes sort keys. It must collate before any character
// used in page ids.
const prioritySentinel = "_"

// Comparator compares strings according to a locale's collation rules.
type Comparator interface {
	// Compare returns -1, 0 or 1 as a sorts before, equal to or after b.
	Compare(a, b string) int
}

// PriorityBias returns the number of sentinel characters prefixed to id's
// sort key. More sentinels sort earlier.
//
// A demote match takes precedence over any promote match. Pages matching no
// pattern get len(demote); a page demoted by pattern d gets len(demote)-d-1;
// a page promoted by pattern p gets len(demote)+len(promote)-p.
func PriorityBias(m Matcher, id string, promote, demote []string) int {
	d := matchIndex(m, demote, id)
	p := -1
	if d < 0 {
		p = matchIndex(m, promote, id)
	}

	bias := len(demote) - d - 1
	if p >= 0 {
		bias += len(promote) - p
	}
	return bias
}

// OrderPages returns pages sorted by their priority keys under cmp.
// The input slice is not modified. Keys the comparator considers equal are
// ordered bytewise so the result is deterministic.
func OrderPages(m Matcher, cmp Comparator, pages []string, promote, demote []string) []string {
	type priorityKey struct {
		id  string
		key string
	}

	keys := make([]priorityKey, len(pages))
	for i, id := range pages {
		bias := PriorityBias(m, id, promote, demote)
		keys[i] = priorityKey{
			id:  id,
			key: strings.Repeat(prioritySentinel, bias) + id,
		}
	}

	slices.SortStableFunc(keys, func(a, b priorityKey) int {
		if c := cmp.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.key, b.key)
	})

	ordered := make([]string, len(keys))
	for i, k := range keys {
		ordered[i] = k.id
	}
	return ordered
}
