package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/llmstxt"
	"github.com/fwojciec/llmstxt/assemble"
	"github.com/fwojciec/llmstxt/collate"
	"github.com/fwojciec/llmstxt/doublestar"
	"github.com/fwojciec/llmstxt/etree"
	"github.com/fwojciec/llmstxt/fs"
	"github.com/fwojciec/llmstxt/goldmark"
	"github.com/fwojciec/llmstxt/goquery"
	"github.com/fwojciec/llmstxt/htmltomarkdown"
	llmslog "github.com/fwojciec/llmstxt/slog"
	"github.com/fwojciec/llmstxt/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defaultConfigPath is read when present; its absence is not an error.
const defaultConfigPath = "llms.yaml"

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("llmstxt"),
		kong.Description("Generate llms.txt files from a built documentation site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'llmstxt --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose, cli.LogFormat)

	cfg, err := loadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}
	cli.applyOverrides(cfg)

	locale := cfg.Locale
	if locale == "" {
		locale = llmstxt.DefaultLocale
	}
	comparator, err := collate.NewComparator(locale)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		return err
	}

	// Wire page discovery
	pages := fs.NewPageSource(cli.Dir)
	var lister llmstxt.PageLister = pages
	if cli.Sitemap != "" {
		lister = etree.NewSitemapLister(cli.Dir, cfg.Site, cli.Sitemap)
	}
	deps.Lister = llmslog.NewLoggingPageLister(lister, logger)

	assembler := &assemble.Assembler{
		Matcher:     doublestar.NewMatcher(),
		Comparator:  comparator,
		Pages:       llmslog.NewLoggingPageSource(pages, logger),
		Extractor:   goquery.NewExtractor(),
		Flattener:   goquery.NewFlattener(htmltomarkdown.NewConverter()),
		Compactor:   goldmark.NewCompactor(),
		Logger:      logger,
		Concurrency: cli.Concurrency,
	}
	writer := llmslog.NewLoggingArtifactWriter(fs.NewWriter(cli.Dir), logger)

	deps.Generator, err = assemble.NewGenerator(*cfg, assembler, writer)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", llmstxt.ErrorMessage(err))
		if cfg.Site == "" {
			fmt.Fprintln(stderr, "Hint: set 'site' in the config file or pass --site")
		}
		return err
	}

	return kongCtx.Run(deps)
}

// loadConfig reads the config file at path. A missing file at the default
// path yields an empty configuration.
func loadConfig(path string) (*llmstxt.Config, error) {
	cfg, err := yaml.LoadConfig(path)
	if llmstxt.ErrorCode(err) == llmstxt.ENOTFOUND && path == defaultConfigPath {
		return &llmstxt.Config{}, nil
	}
	return cfg, err
}

// newLogger returns a logger writing to w in the given format ("text" or "json").
func newLogger(w io.Writer, verbose bool, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
