package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/llmstxt"
	main "github.com/fwojciec/llmstxt/cmd/llmstxt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// buildSite writes a small rendered site and returns its output directory.
func buildSite(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	pages := map[string]string{
		"index.html":               `<html><body><main><h1>Home</h1><p>Welcome.</p></main></body></html>`,
		"guides/setup/index.html":  `<html><head><meta name="description" content="Install the toolkit."></head><body><main><h1>Setup</h1><p>Run the installer.</p></main></body></html>`,
		"guides/deploy/index.html": `<html><body><main><h1>Deploy</h1><h2>Targets</h2><ul><li>Static</li></ul><p>Push it.</p></main></body></html>`,
		"404.html":                 `<html><body><div>Not found</div></body></html>`,
	}
	for name, content := range pages {
		p := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return dir
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "llms.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("generates index and document sets", func(t *testing.T) {
		t.Parallel()

		dir := buildSite(t)
		cfg := writeConfig(t, `site: https://example.com
title: Example
description: Example is a toolkit.
document_sets:
  - title: Guides
    path: llms-guides.txt
    include: ["guides/**"]
    promote: ["guides/setup"]
  - title: Outline
    path: llms-outline.txt
    include: ["**"]
    only_structure: true
`)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"generate", "--config", cfg, "--dir", dir}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "llms-guides.txt  2 pages")
		assert.Contains(t, stdout.String(), "llms-outline.txt  3 pages")
		assert.Contains(t, stdout.String(), "(1 skipped)")
		assert.Contains(t, stderr.String(), "build finished")

		guides, err := os.ReadFile(filepath.Join(dir, "llms-guides.txt"))
		require.NoError(t, err)
		assert.Equal(t, "<SYSTEM>This is the developer documentation for Example: Guides</SYSTEM>\n\n"+
			"# Setup\n\n> Install the toolkit.\n\nRun the installer.\n\n---\n\n"+
			"# Deploy\n\n## Targets\n\n- Static\n\nPush it.\n", string(guides))

		outline, err := os.ReadFile(filepath.Join(dir, "llms-outline.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(outline), "## Targets\n\n- Static")
		assert.NotContains(t, string(outline), "Push it.")

		index, err := os.ReadFile(filepath.Join(dir, llmstxt.IndexPath))
		require.NoError(t, err)
		assert.Contains(t, string(index), "# Example\n\n> Example is a toolkit.")
		assert.Contains(t, string(index), "- [Guides](https://example.com/llms-guides.txt)")
	})

	t.Run("flags override config", func(t *testing.T) {
		t.Parallel()

		dir := buildSite(t)
		cfg := writeConfig(t, "site: https://example.com\ntitle: Example\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{
			"generate", "--config", cfg, "--dir", dir,
			"--site", "https://docs.example.org/v2", "--title", "Example v2",
			"--log-format", "json",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), `"msg":"build finished"`)

		index, err := os.ReadFile(filepath.Join(dir, llmstxt.IndexPath))
		require.NoError(t, err)
		assert.Contains(t, string(index), "# Example v2")
		assert.Contains(t, string(index), "(https://docs.example.org/v2/llms-full.txt)")
		assert.Contains(t, string(index), "(https://docs.example.org/v2/llms-small.txt)")
	})

	t.Run("reports missing site", func(t *testing.T) {
		t.Parallel()

		cfg := writeConfig(t, "title: Example\n")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"generate", "--config", cfg, "--dir", t.TempDir()}, stdout, stderr)

		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: site URL required")
		assert.Contains(t, stderr.String(), "Hint:")
	})

	t.Run("reports missing explicit config", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"list", "--config", filepath.Join(t.TempDir(), "nope.yaml")}, stdout, stderr)

		assert.Equal(t, llmstxt.ENOTFOUND, llmstxt.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error: config file")
	})

	t.Run("rejects invalid locale", func(t *testing.T) {
		t.Parallel()

		cfg := writeConfig(t, "site: https://example.com\ntitle: Example\nlocale: \"not a locale!\"\n")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"list", "--config", cfg, "--dir", t.TempDir()}, stdout, stderr)

		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})

	t.Run("no command prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "generate")
	})

	t.Run("help flag", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(testContext(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "list")
	})
}
