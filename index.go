package llmstxt

import "strings"

// BuildIndex renders the llms.txt index from the site configuration and the
// summaries of the generated document sets.
func BuildIndex(cfg *Config, summaries []Summary) string {
	var sections []string

	sections = append(sections, "# "+cfg.Title)

	if desc := strings.TrimSpace(cfg.Description); desc != "" {
		sections = append(sections, "> "+desc)
	}

	if details := strings.TrimSpace(cfg.Details); details != "" {
		sections = append(sections, details)
	}

	if len(summaries) > 0 {
		lines := []string{"## Documentation Sets", ""}
		for _, s := range summaries {
			lines = append(lines, formatLink(s.Title, s.URL, s.Description))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(cfg.Notes) > 0 {
		lines := []string{"## Notes", ""}
		for _, note := range cfg.Notes {
			lines = append(lines, "- "+note)
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	if len(cfg.Optional) > 0 {
		lines := []string{"## Optional", ""}
		for _, link := range cfg.Optional {
			lines = append(lines, formatLink(link.Label, link.URL, link.Description))
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	return strings.Join(sections, "\n\n") + "\n"
}

func formatLink(label, url, description string) string {
	line := "- [" + label + "](" + url + ")"
	if description != "" {
		line += ": " + description
	}
	return line
}
