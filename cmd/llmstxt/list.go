package main

import (
	"fmt"

	"github.com/fwojciec/llmstxt"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	pages, err := deps.Lister.ListPages(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}

	found := false
	for _, plan := range deps.Generator.Plan(pages) {
		if c.Set != "" && plan.Set.Path != c.Set {
			continue
		}
		found = true

		fmt.Fprintf(deps.Stdout, "%s  %s  (%d pages)\n", plan.Set.Path, plan.Set.Title, len(plan.Pages))
		for _, id := range plan.Pages {
			fmt.Fprintf(deps.Stdout, "  %s\n", id)
		}
	}

	if !found && c.Set != "" {
		err := llmstxt.Errorf(llmstxt.ENOTFOUND, "document set %q not configured", c.Set)
		fmt.Fprintf(deps.Stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}

	return nil
}
