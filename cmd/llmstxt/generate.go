package main

import (
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	pages, err := deps.Lister.ListPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No rendered pages found. Build the site first or check --dir.")
	}

	result, err := deps.Generator.Generate(deps.Ctx, pages)
	if result != nil {
		for _, artifact := range result.Artifacts {
			line := fmt.Sprintf("%s  %d pages  %s", artifact.Path, len(artifact.Pages), FormatBytes(len(artifact.Content)))
			if n := len(artifact.Skipped); n > 0 {
				line += fmt.Sprintf("  (%d skipped)", n)
			}
			fmt.Fprintln(deps.Stdout, line)
		}
		fmt.Fprintf(deps.Stdout, "%s  %d sets\n", llmstxt.IndexPath, len(result.Artifacts))
	}
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	return nil
}

// FormatBytes formats bytes in human-readable form.
func FormatBytes(bytes int) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	switch {
	case bytes >= MB:
		return fmt.Sprintf("%.1f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.1f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}
