package main

import (
	"context"
	"io"

	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/assemble"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Lister    llmstxt.PageLister
	Generator *assemble.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config      string `short:"c" default:"llms.yaml" help:"Path to the YAML config file"`
	Dir         string `short:"d" default:"dist" help:"Build output directory of the site"`
	Site        string `help:"Absolute URL the site is deployed to (overrides config)"`
	Title       string `help:"Site title (overrides config)"`
	Locale      string `help:"Locale used to order pages (overrides config)"`
	Sitemap     string `help:"Discover pages from this sitemap file instead of walking the output directory"`
	Concurrency int    `short:"j" default:"4" help:"Pages processed in parallel"`
	Verbose     bool   `short:"v" help:"Enable debug logging"`
	LogFormat   string `default:"text" enum:"text,json" help:"Log format (text or json)"`

	Generate GenerateCmd `cmd:"" help:"Write llms.txt and all document sets"`
	List     ListCmd     `cmd:"" help:"Show the pages each document set would contain"`
}

// applyOverrides copies flag values that were set onto cfg.
func (c *CLI) applyOverrides(cfg *llmstxt.Config) {
	if c.Site != "" {
		cfg.Site = c.Site
	}
	if c.Title != "" {
		cfg.Title = c.Title
	}
	if c.Locale != "" {
		cfg.Locale = c.Locale
	}
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct{}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Set string `arg:"" optional:"" help:"Only show the document set with this output path"`
}
