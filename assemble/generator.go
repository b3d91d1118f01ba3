package assemble

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/fwojciec/llmstxt"
	"github.com/google/uuid"
)

// Generator produces every configured document set and the index for a
// site. Configuration is captured and validated once by NewGenerator; each
// call to Generate performs a build over the pages rendered at that time.
type Generator struct {
	cfg       *llmstxt.Config
	assembler *Assembler
	writer    llmstxt.ArtifactWriter
	logger    *slog.Logger
}

// Result holds the outcome of a build.
type Result struct {
	Artifacts []*llmstxt.Artifact
	Index     string
}

// SetPlan lists the pages a document set would contain, in output order.
type SetPlan struct {
	Set   llmstxt.DocumentSet
	Pages []string
}

// NewGenerator applies defaults to a copy of cfg and validates it: config
// structure, glob patterns and CSS selectors. Returns EINVALID on the first
// problem found.
func NewGenerator(cfg llmstxt.Config, assembler *Assembler, writer llmstxt.ArtifactWriter) (*Generator, error) {
	cfg.DocumentSets = slices.Clone(cfg.DocumentSets)
	cfg.SetDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := llmstxt.ResolveURL(cfg.Site, llmstxt.IndexPath); err != nil {
		return nil, err
	}

	for i := range cfg.DocumentSets {
		set := &cfg.DocumentSets[i]
		if err := set.ValidatePatterns(assembler.Matcher); err != nil {
			return nil, err
		}
		if err := assembler.Extractor.ValidateOptions(set.ExtractOptions()); err != nil {
			return nil, llmstxt.Errorf(llmstxt.EINVALID, "document set %q: %s", set.Title, llmstxt.ErrorMessage(err))
		}
		if set.Minify != nil && set.Minify.Whitespace && assembler.Compactor == nil {
			return nil, llmstxt.Errorf(llmstxt.EINVALID, "document set %q: whitespace minification needs a compactor", set.Title)
		}
	}

	a := *assembler
	a.Site = cfg.Site

	return &Generator{
		cfg:       &cfg,
		assembler: &a,
		writer:    writer,
		logger:    a.logger(),
	}, nil
}

// Config returns the validated configuration with defaults applied.
func (g *Generator) Config() *llmstxt.Config {
	return g.cfg
}

// Plan returns the ordered pages of each document set without reading them.
func (g *Generator) Plan(pages []string) []SetPlan {
	plans := make([]SetPlan, 0, len(g.cfg.DocumentSets))
	for i := range g.cfg.DocumentSets {
		set := &g.cfg.DocumentSets[i]
		plans = append(plans, SetPlan{Set: *set, Pages: g.assembler.Order(set, pages)})
	}
	return plans
}

// Generate assembles and writes every document set, then the index.
// A set that fails is logged and left out of the index while the remaining
// sets are still produced; the failures are returned joined.
func (g *Generator) Generate(ctx context.Context, pages []string) (*Result, error) {
	begin := time.Now()
	logger := g.logger.With("build", uuid.NewString())

	result := &Result{}
	var summaries []llmstxt.Summary
	var errs []error

	for i := range g.cfg.DocumentSets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		set := &g.cfg.DocumentSets[i]
		artifact, err := g.assembler.Assemble(ctx, set, pages)
		if err == nil {
			err = g.writer.WriteArtifact(ctx, artifact.Path, artifact.Content)
		}
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			logger.Error("document set failed", "set", set.Path, "err", err)
			errs = append(errs, fmt.Errorf("document set %q: %w", set.Title, err))
			continue
		}

		result.Artifacts = append(result.Artifacts, artifact)
		summaries = append(summaries, artifact.Summary)
	}

	result.Index = llmstxt.BuildIndex(g.cfg, summaries)
	if err := g.writer.WriteArtifact(ctx, llmstxt.IndexPath, result.Index); err != nil {
		errs = append(errs, fmt.Errorf("index: %w", err))
	}

	logger.Info("build finished",
		"pages", len(pages),
		"sets", len(result.Artifacts),
		"failed", len(errs),
		"duration", time.Since(begin),
	)

	return result, errors.Join(errs...)
}
