// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hchiba1/sparqlet-runner/internal/dom"
	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

var (
	isCode      = dom.IsTag("code")
	isParagraph = dom.IsTag("p")
	isListItem  = dom.IsTag("li")

	isParametersHeading = dom.HeadingTitled("parameters")

	defaultPrefix = regexp.MustCompile(`^default:\s*`)
	examplePrefix = regexp.MustCompile(`^example:\s*`)
)

func isList(s *goquery.Selection) bool {
	name := goquery.NodeName(s)
	return name == "ul" || name == "ol"
}

// Parameters returns the items of the parameters list: the first ul whose
// nearest preceding heading sibling reads "Parameters". Items without an
// inline code span are skipped. The result is empty, not nil, when the
// document declares no parameters.
func Parameters(tree *goquery.Document) []types.Parameter {
	params := []types.Parameter{}

	list := tree.Find("ul").FilterFunction(func(_ int, ul *goquery.Selection) bool {
		return isParametersHeading(dom.NearestPrecedingSibling(ul, dom.IsHeading))
	}).First()
	if list.Length() == 0 {
		return params
	}

	list.ChildrenFiltered("li").Each(func(_ int, li *goquery.Selection) {
		if p, ok := parameterFromItem(li); ok {
			params = append(params, p)
		}
	})
	return params
}

func parameterFromItem(li *goquery.Selection) (types.Parameter, bool) {
	content := itemContent(li)

	code := dom.FirstDescendant(content, isCode, isList)
	if code.Length() == 0 {
		return types.Parameter{}, false
	}

	return types.Parameter{
		Name:        strings.TrimSpace(code.Text()),
		Description: strings.TrimSpace(dom.DirectText(content)),
		Default:     nestedValue(li, "default:", defaultPrefix),
		Example:     nestedValue(li, "example:", examplePrefix),
	}, true
}

// itemContent returns the node holding a list item's own inline content.
// Items of a loose list wrap it in a paragraph.
func itemContent(li *goquery.Selection) *goquery.Selection {
	if first := li.Children().First(); isParagraph(first) {
		return first
	}
	return li
}

// nestedValue finds the first li below item whose text starts with prefix
// and returns that text with the prefix removed.
func nestedValue(item *goquery.Selection, prefix string, strip *regexp.Regexp) string {
	match := dom.FirstDescendant(item, func(s *goquery.Selection) bool {
		return isListItem(s) && strings.HasPrefix(strings.TrimLeft(s.Text(), " \t\r\n"), prefix)
	}, nil)
	if match.Length() == 0 {
		return ""
	}
	return strip.ReplaceAllString(strings.TrimSpace(match.Text()), "")
}
