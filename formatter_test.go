package llmstxt_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPage(t *testing.T) {
	t.Parallel()

	t.Run("title, description and body", func(t *testing.T) {
		t.Parallel()

		page := &llmstxt.ExtractedPage{Title: "Setup", Description: "How to install."}
		got := llmstxt.FormatPage(page, "Run the installer.\n")

		assert.Equal(t, "# Setup\n\n> How to install.\n\nRun the installer.", got)
	})

	t.Run("omits empty description and body", func(t *testing.T) {
		t.Parallel()

		page := &llmstxt.ExtractedPage{Title: "Empty"}
		assert.Equal(t, "# Empty", llmstxt.FormatPage(page, "  "))
	})

	t.Run("falls back to default title", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.FormatPage(&llmstxt.ExtractedPage{}, "Body")
		assert.Equal(t, "# Untitled\n\nBody", got)
	})
}

func TestFormatArtifact(t *testing.T) {
	t.Parallel()

	t.Run("joins entries with separator", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.FormatArtifact("Docs for Example", []string{"# A", "# B"}, llmstxt.DefaultPageSeparator)
		assert.Equal(t, "<SYSTEM>Docs for Example</SYSTEM>\n\n# A\n\n---\n\n# B\n", got)
	})

	t.Run("no entries leaves only system line", func(t *testing.T) {
		t.Parallel()

		got := llmstxt.FormatArtifact("Docs", nil, llmstxt.DefaultPageSeparator)
		assert.Equal(t, "<SYSTEM>Docs</SYSTEM>\n", got)
	})
}

func TestResolveURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		site string
		path string
		want string
	}{
		{name: "root site", site: "https://example.com", path: "llms.txt", want: "https://example.com/llms.txt"},
		{name: "site with base path", site: "https://example.com/docs", path: "llms-full.txt", want: "https://example.com/docs/llms-full.txt"},
		{name: "trailing slash", site: "https://example.com/docs/", path: "llms-full.txt", want: "https://example.com/docs/llms-full.txt"},
		{name: "leading slash on path", site: "https://example.com/docs", path: "/sets/api.txt", want: "https://example.com/docs/sets/api.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := llmstxt.ResolveURL(tt.site, tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("relative site", func(t *testing.T) {
		t.Parallel()

		_, err := llmstxt.ResolveURL("example.com", "llms.txt")
		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}
