package llmstxt

import (
	"path"
	"strings"
)

// Defaults applied by Config.SetDefaults.
const (
	DefaultLocale        = "en"
	DefaultMainSelector  = "main"
	DefaultPageSeparator = "\n\n---\n\n"
	IndexPath            = "llms.txt"
)

// Config represents the llms.txt generation settings for a site.
type Config struct {
	// Site is the absolute base URL the site is deployed to.
	Site string `yaml:"site"`

	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// Details is an optional paragraph of guidance shown below the description.
	Details string `yaml:"details"`

	Notes    []string `yaml:"notes"`
	Optional []Link   `yaml:"optional"`

	// Locale selects the collation used to order pages.
	Locale string `yaml:"locale"`

	// PageSeparator is the default separator between pages of a document set.
	PageSeparator string `yaml:"page_separator"`

	DocumentSets []DocumentSet `yaml:"document_sets"`
}

// Link is an entry of the index's Optional section.
type Link struct {
	Label       string `yaml:"label"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// DocumentSet configures one generated artifact.
type DocumentSet struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`

	// Path is the artifact's output path relative to the site root.
	Path string `yaml:"path"`

	// Include and Exclude select pages by glob pattern.
	Include []string `yaml:"include"`
	Exclude []string `yaml:"exclude"`

	// Promote and Demote bias page order. Earlier promote patterns sort
	// earlier; demotion overrides promotion.
	Promote []string `yaml:"promote"`
	Demote  []string `yaml:"demote"`

	// OnlyStructure renders headings and lists only.
	OnlyStructure bool `yaml:"only_structure"`

	MainSelector    string   `yaml:"main_selector"`
	IgnoreSelectors []string `yaml:"ignore_selectors"`
	PageSeparator   string   `yaml:"page_separator"`

	Minify *Minify `yaml:"minify"`
}

// Minify trims non-essential content from a document set.
type Minify struct {
	Details    bool     `yaml:"details"`
	Asides     bool     `yaml:"asides"`
	Whitespace bool     `yaml:"whitespace"`
	Selectors  []string `yaml:"selectors"`
}

// DefaultDocumentSets returns the sets generated when none are configured:
// the complete documentation and an abridged version of it.
func DefaultDocumentSets(title string) []DocumentSet {
	return []DocumentSet{
		{
			Title:       "Complete documentation",
			Description: "This is the full developer documentation for " + title,
			Path:        "llms-full.txt",
			Include:     []string{"**"},
		},
		{
			Title:       "Abridged documentation",
			Description: "This is the abridged developer documentation for " + title,
			Path:        "llms-small.txt",
			Include:     []string{"**"},
			Minify: &Minify{
				Details:    true,
				Asides:     true,
				Whitespace: true,
			},
		},
	}
}

// SetDefaults fills unset fields with their default values.
func (c *Config) SetDefaults() {
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	if c.PageSeparator == "" {
		c.PageSeparator = DefaultPageSeparator
	}
	if len(c.DocumentSets) == 0 {
		c.DocumentSets = DefaultDocumentSets(c.Title)
	}

	for i := range c.DocumentSets {
		set := &c.DocumentSets[i]
		if set.MainSelector == "" {
			set.MainSelector = DefaultMainSelector
		}
		if set.PageSeparator == "" {
			set.PageSeparator = c.PageSeparator
		}
		if set.Description == "" {
			set.Description = "This is the developer documentation for " + c.Title + ": " + set.Title
		}
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	if c.Site == "" {
		return Errorf(EINVALID, "site URL required")
	}
	if c.Title == "" {
		return Errorf(EINVALID, "site title required")
	}
	for _, link := range c.Optional {
		if link.Label == "" || link.URL == "" {
			return Errorf(EINVALID, "optional link requires label and url")
		}
	}

	paths := make(map[string]bool)
	for i := range c.DocumentSets {
		set := &c.DocumentSets[i]
		if err := set.Validate(); err != nil {
			return err
		}
		p := path.Clean(set.Path)
		if p == IndexPath {
			return Errorf(EINVALID, "document set %q: path %q is reserved for the index", set.Title, set.Path)
		}
		if paths[p] {
			return Errorf(EINVALID, "document set %q: duplicate path %q", set.Title, set.Path)
		}
		paths[p] = true
	}
	return nil
}

// Validate returns an error if the document set contains invalid fields.
func (s *DocumentSet) Validate() error {
	if s.Title == "" {
		return Errorf(EINVALID, "document set title required")
	}
	if s.Path == "" {
		return Errorf(EINVALID, "document set %q: path required", s.Title)
	}
	if path.IsAbs(s.Path) || strings.HasPrefix(path.Clean(s.Path), "..") {
		return Errorf(EINVALID, "document set %q: path %q must be relative to the site root", s.Title, s.Path)
	}
	if len(s.Include) == 0 {
		return Errorf(EINVALID, "document set %q: at least one include pattern required", s.Title)
	}
	return nil
}

// ValidatePatterns returns the first error reported by m for any of the
// set's selection or ordering patterns.
func (s *DocumentSet) ValidatePatterns(m Matcher) error {
	for _, patterns := range [][]string{s.Include, s.Exclude, s.Promote, s.Demote} {
		for _, pattern := range patterns {
			if err := m.ValidatePattern(pattern); err != nil {
				return Errorf(EINVALID, "document set %q: %s", s.Title, ErrorMessage(err))
			}
		}
	}
	return nil
}

// ExtractOptions returns the extraction settings for pages of the set,
// including selectors dropped by minification.
func (s *DocumentSet) ExtractOptions() ExtractOptions {
	opts := ExtractOptions{
		MainSelector:    s.MainSelector,
		IgnoreSelectors: append([]string(nil), s.IgnoreSelectors...),
	}
	if s.Minify != nil {
		if s.Minify.Details {
			opts.IgnoreSelectors = append(opts.IgnoreSelectors, "details")
		}
		if s.Minify.Asides {
			opts.IgnoreSelectors = append(opts.IgnoreSelectors, "aside")
		}
		opts.IgnoreSelectors = append(opts.IgnoreSelectors, s.Minify.Selectors...)
	}
	return opts
}
