// Package goldmark compacts rendered Markdown using the goldmark parser to
// locate code blocks.
package goldmark

import (
	"sort"
	"strings"

	"github.com/fwojciec/llmstxt"
	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Ensure Compactor implements llmstxt.Compactor at compile time.
var _ llmstxt.Compactor = (*Compactor)(nil)

// Compactor removes redundant whitespace outside code blocks.
// It is safe for concurrent use.
type Compactor struct{}

// NewCompactor creates a new Compactor.
func NewCompactor() *Compactor {
	return &Compactor{}
}

// Compact strips trailing spaces and collapses blank-line runs. Lines that
// belong to fenced or indented code blocks are kept byte for byte.
func (c *Compactor) Compact(markdown string) string {
	src := []byte(markdown)
	lines := strings.Split(markdown, "\n")
	code := codeLines(src, lineStarts(lines))

	out := make([]string, 0, len(lines))
	blank := false
	for i, line := range lines {
		if code[i] {
			out = append(out, line)
			blank = false
			continue
		}

		line = strings.TrimRight(line, " \t")
		if line == "" {
			if blank {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}

	return strings.Trim(strings.Join(out, "\n"), "\n")
}

// codeLines returns the indexes of lines holding code block content.
func codeLines(src []byte, starts []int) map[int]bool {
	code := make(map[int]bool)
	root := goldmark.New().Parser().Parse(text.NewReader(src))

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch n.Kind() {
		case gmast.KindFencedCodeBlock, gmast.KindCodeBlock:
			segments := n.Lines()
			for i := 0; i < segments.Len(); i++ {
				code[lineIndex(starts, segments.At(i).Start)] = true
			}
			return gmast.WalkSkipChildren, nil
		}
		return gmast.WalkContinue, nil
	})

	return code
}

// lineStarts returns the byte offset at which each line begins.
func lineStarts(lines []string) []int {
	starts := make([]int, len(lines))
	offset := 0
	for i, line := range lines {
		starts[i] = offset
		offset += len(line) + 1
	}
	return starts
}

// lineIndex returns the index of the line containing offset.
func lineIndex(starts []int, offset int) int {
	return sort.Search(len(starts), func(i int) bool { return starts[i] > offset }) - 1
}
