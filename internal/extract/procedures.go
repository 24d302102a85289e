// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hchiba1/sparqlet-runner/internal/dom"
	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// recognizedClasses is the class vocabulary of code blocks that count as
// procedures. Values are compared whole, not split into tokens.
var recognizedClasses = map[string]bool{
	"language-js":         true,
	"language-javascript": true,
	"language-sparql":     true,
}

var isEndpointHeading = dom.HeadingTitled("endpoint")

// classification is the language class read from a code block. When the
// block has no class attribute, present is false.
type classification struct {
	class   string
	present bool
}

func classify(code *goquery.Selection) classification {
	class, ok := dom.Class(code)
	return classification{class: class, present: ok}
}

func (c classification) recognized() bool {
	return c.present && recognizedClasses[c.class]
}

// procedureType maps a classification to a ProcedureType. Unknown and
// missing classes both give TypeNone.
func (c classification) procedureType() types.ProcedureType {
	if !c.present {
		return types.TypeNone
	}
	switch strings.TrimPrefix(c.class, "language-") {
	case "js", "javascript":
		return types.TypeJavaScript
	case "sparql":
		return types.TypeSPARQL
	default:
		return types.TypeNone
	}
}

// Procedures returns one Procedure per qualifying code block, in document
// order. Without cfg.AllBlocks only blocks in the recognized class
// vocabulary qualify; with it every pre > code block does.
func Procedures(tree *goquery.Document, cfg types.ExtractConfig) []types.Procedure {
	procs := []types.Procedure{}

	tree.Find("pre > code").Each(func(_ int, code *goquery.Selection) {
		c := classify(code)
		if !cfg.AllBlocks && !c.recognized() {
			return
		}
		procs = append(procs, procedureFromBlock(code, c.procedureType()))
	})
	return procs
}

func procedureFromBlock(code *goquery.Selection, typ types.ProcedureType) types.Procedure {
	pre := code.Parent()
	heading := dom.NearestPrecedingSibling(pre, dom.IsHeading)

	proc := types.Procedure{
		Data: strings.TrimSpace(dom.DirectText(code)),
		Type: typ,
	}
	if heading.Length() > 0 {
		proc.BindingName = strings.TrimSpace(dom.FirstDescendant(heading, isCode, nil).Text())
		proc.Name = strings.TrimSpace(dom.DirectText(heading))
	}
	if typ == types.TypeSPARQL {
		proc.Endpoint = endpointFor(pre)
	}
	return proc
}

// endpointFor returns the text of the nearest paragraph before pre that
// directly follows an "Endpoint" heading, or "" when there is none.
func endpointFor(pre *goquery.Selection) string {
	p := dom.NearestPrecedingSibling(pre, func(s *goquery.Selection) bool {
		return isParagraph(s) && isEndpointHeading(dom.PrevElement(s))
	})
	return strings.TrimSpace(dom.DirectText(p))
}
