package yaml_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `site: https://example.com/docs
title: Example
description: Example is a toolkit.
details: Start with the complete set.
locale: de
notes:
  - Generated at build time.
optional:
  - label: GitHub
    url: https://github.com/example/example
    description: Source code
document_sets:
  - title: Guides
    path: llms-guides.txt
    include: ["guides/**"]
    exclude: ["guides/drafts/**"]
    promote: ["guides/start"]
    demote: ["guides/legacy/**"]
    main_selector: article
    ignore_selectors: [".toc"]
  - title: API outline
    path: api/llms.txt
    include: ["api/**"]
    only_structure: true
    minify:
      details: true
      whitespace: true
      selectors: [".badge"]
`

func TestDecodeConfig(t *testing.T) {
	t.Parallel()

	t.Run("decodes all fields", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.DecodeConfig(strings.NewReader(fullConfig))

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/docs", cfg.Site)
		assert.Equal(t, "Example", cfg.Title)
		assert.Equal(t, "de", cfg.Locale)
		assert.Equal(t, []string{"Generated at build time."}, cfg.Notes)
		assert.Equal(t, []llmstxt.Link{{
			Label:       "GitHub",
			URL:         "https://github.com/example/example",
			Description: "Source code",
		}}, cfg.Optional)

		require.Len(t, cfg.DocumentSets, 2)
		guides := cfg.DocumentSets[0]
		assert.Equal(t, []string{"guides/**"}, guides.Include)
		assert.Equal(t, []string{"guides/drafts/**"}, guides.Exclude)
		assert.Equal(t, []string{"guides/start"}, guides.Promote)
		assert.Equal(t, []string{"guides/legacy/**"}, guides.Demote)
		assert.Equal(t, "article", guides.MainSelector)
		assert.Equal(t, []string{".toc"}, guides.IgnoreSelectors)
		assert.Nil(t, guides.Minify)

		api := cfg.DocumentSets[1]
		assert.True(t, api.OnlyStructure)
		assert.Equal(t, &llmstxt.Minify{Details: true, Whitespace: true, Selectors: []string{".badge"}}, api.Minify)

		cfg.SetDefaults()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("empty document", func(t *testing.T) {
		t.Parallel()

		cfg, err := yaml.DecodeConfig(strings.NewReader(""))

		require.NoError(t, err)
		assert.Equal(t, &llmstxt.Config{}, cfg)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("site: https://example.com\ntitel: Typo\n"))

		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})

	t.Run("rejects wrong types", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.DecodeConfig(strings.NewReader("document_sets:\n  - include: guides\n"))

		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("expands environment variables", func(t *testing.T) {
		t.Setenv("LLMSTXT_TEST_SITE", "https://staging.example.com")

		path := filepath.Join(t.TempDir(), "llms.yaml")
		require.NoError(t, os.WriteFile(path, []byte("site: ${LLMSTXT_TEST_SITE}\ntitle: Example\n"), 0644))

		cfg, err := yaml.LoadConfig(path)

		require.NoError(t, err)
		assert.Equal(t, "https://staging.example.com", cfg.Site)
		assert.Equal(t, "Example", cfg.Title)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := yaml.LoadConfig(filepath.Join(t.TempDir(), "llms.yaml"))

		assert.Equal(t, llmstxt.ENOTFOUND, llmstxt.ErrorCode(err))
	})
}
