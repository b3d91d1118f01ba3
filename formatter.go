package llmstxt

import (
	"net/url"
	"strings"
)

// FormatPage renders one page entry of a document set: the title as a
// level-one heading, the description as a blockquote and the body.
// Parts are separated by blank lines; empty parts are left out.
func FormatPage(page *ExtractedPage, body string) string {
	title := page.Title
	if title == "" {
		title = DefaultTitle
	}

	parts := []string{"# " + title}
	if desc := strings.TrimSpace(page.Description); desc != "" {
		parts = append(parts, "> "+desc)
	}
	if body = strings.TrimSpace(body); body != "" {
		parts = append(parts, body)
	}

	return strings.Join(parts, "\n\n")
}

// FormatArtifact joins page entries with separator and prefixes the result
// with a system line carrying the set's description.
func FormatArtifact(description string, entries []string, separator string) string {
	var b strings.Builder
	b.WriteString("<SYSTEM>")
	b.WriteString(description)
	b.WriteString("</SYSTEM>\n")
	if len(entries) > 0 {
		b.WriteString("\n")
		b.WriteString(strings.Join(entries, separator))
		b.WriteString("\n")
	}
	return b.String()
}

// ResolveURL returns the absolute URL of p relative to the site URL.
// The site URL is treated as a directory even without a trailing slash.
func ResolveURL(site, p string) (string, error) {
	base, err := url.Parse(site)
	if err != nil {
		return "", Errorf(EINVALID, "invalid site URL: %v", err)
	}
	if !base.IsAbs() {
		return "", Errorf(EINVALID, "site URL %q must be absolute", site)
	}
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
	}

	ref, err := url.Parse(strings.TrimPrefix(p, "/"))
	if err != nil {
		return "", Errorf(EINVALID, "invalid path %q: %v", p, err)
	}

	return base.ResolveReference(ref).String(), nil
}
