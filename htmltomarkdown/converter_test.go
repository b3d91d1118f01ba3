package htmltomarkdown_test

import (
	"testing"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/fwojciec/llmstxt/htmltomarkdown"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverter_Convert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want []string
	}{
		{
			name: "paragraph with emphasis",
			html: `<p>Use <strong>strict</strong> mode, <em>always</em>.</p>`,
			want: []string{"Use **strict** mode, *always*."},
		},
		{
			name: "headings keep level",
			html: `<h2>Options</h2><h3>timeout</h3>`,
			want: []string{"## Options", "### timeout"},
		},
		{
			name: "links",
			html: `<p>See the <a href="https://example.com/api">API reference</a>.</p>`,
			want: []string{"[API reference](https://example.com/api)"},
		},
		{
			name: "inline code",
			html: `<p>Call <code>client.Close()</code> when done.</p>`,
			want: []string{"`client.Close()`"},
		},
		{
			name: "fenced code with language",
			html: `<pre><code class="language-yaml">site: https://example.com
title: Example
</code></pre>`,
			want: []string{"```yaml", "site: https://example.com", "title: Example"},
		},
		{
			name: "nested lists",
			html: `<ul><li>Install<ul><li>macOS</li><li>Linux</li></ul></li><li>Configure</li></ul>`,
			want: []string{"- Install", "  - macOS", "  - Linux", "- Configure"},
		},
		{
			name: "ordered list",
			html: `<ol><li>Build the site</li><li>Deploy it</li></ol>`,
			want: []string{"1. Build the site", "2. Deploy it"},
		},
		{
			name: "table",
			html: `<table><thead><tr><th>Flag</th><th>Default</th></tr></thead><tbody><tr><td>--dir</td><td>dist</td></tr></tbody></table>`,
			want: []string{"| Flag", "Default", "--dir", "dist", "---"},
		},
		{
			name: "blockquote",
			html: `<blockquote><p>Deprecated since 2.0.</p></blockquote>`,
			want: []string{"> Deprecated since 2.0."},
		},
	}

	conv := htmltomarkdown.NewConverter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			md, err := conv.Convert(tt.html)

			require.NoError(t, err)
			for _, want := range tt.want {
				assert.Contains(t, md, want)
			}
		})
	}

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := conv.Convert("  \n")

		assert.Equal(t, llmstxt.EINVALID, llmstxt.ErrorCode(err))
	})
}

func TestConverter_WithFlattener(t *testing.T) {
	t.Parallel()

	html := `<p>Intro with <a href="/guides/">a link</a>.</p>
<div aria-hidden="true"><a href="#top">Back to top</a></div>
<h2>Setup</h2>
<p>Install it.<img src="spacer.gif" alt=""></p>
<button aria-label="Copy to clipboard"><svg></svg></button>`

	md, err := goquery.NewFlattener(htmltomarkdown.NewConverter()).Flatten(html, false)

	require.NoError(t, err)
	assert.Contains(t, md, "Intro with [a link](/guides/).")
	assert.Contains(t, md, "## Setup")
	assert.Contains(t, md, "Install it.")
	assert.Contains(t, md, "Copy to clipboard")
	assert.NotContains(t, md, "Back to top")
	assert.NotContains(t, md, "spacer.gif")
}
