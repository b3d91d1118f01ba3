package llmstxt

// Matcher matches page ids against glob patterns.
type Matcher interface {
	// Match reports whether id matches pattern. A malformed pattern
	// matches nothing.
	Match(pattern, id string) bool

	// ValidatePattern returns EINVALID if pattern is malformed.
	ValidatePattern(pattern string) error
}

// SelectPages returns the pages that match at least one include pattern
// and no exclude pattern, in input order.
// An empty include list selects nothing.
func SelectPages(m Matcher, pages []string, include, exclude []string) []string {
	if len(include) == 0 {
		return nil
	}

	var selected []string
	for _, id := range pages {
		// Page must match at least one include pattern
		if matchIndex(m, include, id) < 0 {
			continue
		}

		// Check exclude patterns
		if matchIndex(m, exclude, id) >= 0 {
			continue
		}

		selected = append(selected, id)
	}

	return selected
}

// matchIndex returns the index of the first pattern matching id, or -1.
func matchIndex(m Matcher, patterns []string, id string) int {
	for i, pattern := range patterns {
		if m.Match(pattern, id) {
			return i
		}
	}
	return -1
}
