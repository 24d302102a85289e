// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dom parses rendered HTML and provides the small set of tree
// predicates the extractor is built from: heading detection, direct text,
// nearest-preceding-sibling search and first-descendant search.
//
// Everything here works on the sibling axis or in document order. Nothing
// infers section containment from heading levels.
package dom

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Predicate reports whether a single-node selection matches.
type Predicate func(s *goquery.Selection) bool

// Parse reads HTML from r into a normalized document tree.
func Parse(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return doc, nil
}

var headingTag = regexp.MustCompile(`^h[1-6]$`)

// IsHeading matches h1 through h6 elements.
func IsHeading(s *goquery.Selection) bool {
	return headingTag.MatchString(goquery.NodeName(s))
}

// IsTag returns a predicate matching elements with the given tag name.
func IsTag(name string) Predicate {
	return func(s *goquery.Selection) bool {
		return goquery.NodeName(s) == name
	}
}

// HeadingTitled returns a predicate matching headings of any level whose
// direct text, trimmed, equals title ignoring case.
func HeadingTitled(title string) Predicate {
	return func(s *goquery.Selection) bool {
		return IsHeading(s) && strings.EqualFold(strings.TrimSpace(DirectText(s)), title)
	}
}

// DirectText concatenates the text-node children of the first node in s.
// Text inside child elements is not included.
func DirectText(s *goquery.Selection) string {
	if s.Length() == 0 {
		return ""
	}
	var b strings.Builder
	for c := s.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
	}
	return b.String()
}

// PrevElement returns the element sibling immediately before s, or an empty
// selection.
func PrevElement(s *goquery.Selection) *goquery.Selection {
	return s.First().Prev()
}

// NearestPrecedingSibling scans the element siblings before s, nearest
// first, and returns the first one matching pred. The result is empty when
// nothing matches.
func NearestPrecedingSibling(s *goquery.Selection, pred Predicate) *goquery.Selection {
	p := PrevElement(s)
	for ; p.Length() > 0; p = p.Prev() {
		if pred(p) {
			return p
		}
	}
	return p
}

// FirstDescendant returns the first element below s, in document order,
// matching pred. Subtrees rooted at an element matching skip are not
// entered; skip may be nil. The result is empty when nothing matches.
func FirstDescendant(s *goquery.Selection, pred, skip Predicate) *goquery.Selection {
	found := s.Slice(0, 0)
	s.First().Children().EachWithBreak(func(_ int, c *goquery.Selection) bool {
		if pred(c) {
			found = c
			return false
		}
		if skip != nil && skip(c) {
			return true
		}
		if d := FirstDescendant(c, pred, skip); d.Length() > 0 {
			found = d
			return false
		}
		return true
	})
	return found
}

// Class returns the class attribute of s. The boolean is false when the
// element carries no class attribute at all.
func Class(s *goquery.Selection) (string, bool) {
	return s.Attr("class")
}
