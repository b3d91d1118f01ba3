package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// voidElements cannot hold children, so an aria-label cannot replace their content.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"source": true, "track": true, "wbr": true,
}

// PruneAccessibility rewrites sel and its descendants the way assistive
// technology presents them:
//
//  1. elements with aria-hidden="true" are removed with their subtree,
//  2. images with an empty alt attribute are removed as decorative,
//  3. elements with a non-empty aria-label have their children replaced
//     by the label text.
//
// The rewrite happens in place and is idempotent.
func PruneAccessibility(sel *goquery.Selection) {
	withSelf := func(selector string) *goquery.Selection {
		return sel.Filter(selector).AddSelection(sel.Find(selector))
	}

	withSelf("[aria-hidden]").Each(func(_ int, s *goquery.Selection) {
		if isTrue(s.AttrOr("aria-hidden", "")) {
			s.Remove()
		}
	})

	withSelf(`img[alt=""]`).Remove()

	// Outer labels are applied first; they detach any labelled descendants.
	withSelf("[aria-label]").Each(func(_ int, s *goquery.Selection) {
		label := s.AttrOr("aria-label", "")
		if strings.TrimSpace(label) == "" || isVoid(s.Get(0)) {
			return
		}
		s.SetText(label)
	})
}

func isTrue(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

func isVoid(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode && voidElements[n.Data]
}
