package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/llmstxt"
	"golang.org/x/net/html"
)

// Ensure Flattener implements llmstxt.Flattener at compile time.
var _ llmstxt.Flattener = (*Flattener)(nil)

// Flattener renders extracted page content as text. Full renders are
// delegated to a Markdown converter; outlines are produced here.
type Flattener struct {
	conv llmstxt.Converter
}

// NewFlattener creates a new Flattener that uses conv for full Markdown.
func NewFlattener(conv llmstxt.Converter) *Flattener {
	return &Flattener{conv: conv}
}

// Flatten prunes content hidden from assistive technology and renders the
// rest as Markdown, or as an outline of headings and lists when
// structureOnly is set.
func (f *Flattener) Flatten(contentHTML string, structureOnly bool) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return "", llmstxt.Errorf(llmstxt.EINVALID, "failed to parse HTML: %v", err)
	}

	body := doc.Find("body")
	PruneAccessibility(body)

	if structureOnly {
		return Outline(body), nil
	}

	content, err := body.Html()
	if err != nil {
		return "", llmstxt.Errorf(llmstxt.EINTERNAL, "failed to render content: %v", err)
	}
	if strings.TrimSpace(content) == "" {
		return "", nil
	}

	md, err := f.conv.Convert(content)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(md), nil
}

// Outline renders only the headings and lists under sel, in document order.
// Headings keep their level; list items keep their nesting. Everything else
// is dropped. Blocks are separated by blank lines.
func Outline(sel *goquery.Selection) string {
	var blocks []string
	for _, n := range sel.Nodes {
		blocks = outlineNode(n, blocks)
	}
	return strings.Join(blocks, "\n\n")
}

func outlineNode(n *html.Node, blocks []string) []string {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}

		switch c.Data {
		case "h1", "h2", "h3", "h4", "h5", "h6":
			level := int(c.Data[1] - '0')
			if text := normalizeText(nodeText(c, false)); text != "" {
				blocks = append(blocks, strings.Repeat("#", level)+" "+text)
			}
		case "ul", "ol":
			if lines := outlineList(c, "", nil); len(lines) > 0 {
				blocks = append(blocks, strings.Join(lines, "\n"))
			}
		default:
			blocks = outlineNode(c, blocks)
		}
	}
	return blocks
}

// outlineList appends one line per item of list, indenting nested lists
// under their parent item's text.
func outlineList(list *html.Node, indent string, lines []string) []string {
	ordered := list.Data == "ol"
	number := 1
	if start, err := strconv.Atoi(attr(list, "start")); err == nil {
		number = start
	}

	for li := list.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}

		childIndent := indent
		if text := normalizeText(nodeText(li, true)); text != "" {
			marker := "-"
			if ordered {
				marker = strconv.Itoa(number) + "."
				number++
			}
			lines = append(lines, indent+marker+" "+text)
			childIndent = indent + strings.Repeat(" ", len(marker)+1)
		}

		for _, nested := range nestedLists(li) {
			lines = outlineList(nested, childIndent, lines)
		}
	}
	return lines
}

// nodeText returns the text under n. With skipLists set, nested lists are
// left out so an item's text excludes its sub-items.
func nodeText(n *html.Node, skipLists bool) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				b.WriteString(c.Data)
			case html.ElementNode:
				if c.Data == "script" || c.Data == "style" || (skipLists && isList(c)) {
					continue
				}
				if c.Data == "br" {
					b.WriteString(" ")
					continue
				}
				block := blockElements[c.Data]
				if block {
					b.WriteString(" ")
				}
				walk(c)
				if block {
					b.WriteString(" ")
				}
			}
		}
	}
	walk(n)
	return b.String()
}

// blockElements are set apart from surrounding text by spaces.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "details": true, "dialog": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hgroup": true,
	"hr": true, "li": true, "main": true, "nav": true, "ol": true, "p": true,
	"pre": true, "section": true, "summary": true, "table": true,
	"tbody": true, "td": true, "tfoot": true, "th": true, "thead": true,
	"tr": true, "ul": true,
}

// nestedLists returns the outermost lists below n.
func nestedLists(n *html.Node) []*html.Node {
	var lists []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if isList(c) {
			lists = append(lists, c)
			continue
		}
		lists = append(lists, nestedLists(c)...)
	}
	return lists
}

func isList(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.Data == "ul" || n.Data == "ol")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
