package llmstxt_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/doublestar"
	"github.com/stretchr/testify/assert"
)

func TestSelectPages(t *testing.T) {
	t.Parallel()

	pages := []string{
		"index",
		"docs/intro",
		"docs/guides/setup",
		"docs/guides/deploy",
		"docs/reference/api",
		"blog/release",
	}

	tests := []struct {
		name    string
		include []string
		exclude []string
		want    []string
	}{
		{
			name:    "double star crosses segments",
			include: []string{"docs/**"},
			want:    []string{"docs/intro", "docs/guides/setup", "docs/guides/deploy", "docs/reference/api"},
		},
		{
			name:    "single star stays in one segment",
			include: []string{"docs/*"},
			want:    []string{"docs/intro"},
		},
		{
			name:    "exclude removes matches",
			include: []string{"docs/**"},
			exclude: []string{"docs/guides/**"},
			want:    []string{"docs/intro", "docs/reference/api"},
		},
		{
			name:    "any include pattern selects",
			include: []string{"index", "blog/*"},
			want:    []string{"index", "blog/release"},
		},
		{
			name:    "character class",
			include: []string{"docs/guides/[d]*"},
			want:    []string{"docs/guides/deploy"},
		},
		{
			name:    "empty include selects nothing",
			include: nil,
			want:    nil,
		},
		{
			name:    "no matches",
			include: []string{"changelog/**"},
			want:    nil,
		},
		{
			name:    "malformed pattern matches nothing",
			include: []string{"docs/[", "index"},
			want:    []string{"index"},
		},
	}

	m := doublestar.NewMatcher()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := llmstxt.SelectPages(m, pages, tt.include, tt.exclude)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectPages_KeepsInputOrder(t *testing.T) {
	t.Parallel()

	pages := []string{"b", "a", "c"}
	got := llmstxt.SelectPages(doublestar.NewMatcher(), pages, []string{"*"}, nil)

	assert.Equal(t, []string{"b", "a", "c"}, got)
}
