// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract reads a procedure document (Markdown written to a fixed
// heading convention) and produces its title, parameters and procedures.
//
// The conventions are positional. A code block belongs to the nearest
// heading before it among its siblings, the parameters list is the first
// list whose nearest preceding heading reads "Parameters", and an endpoint
// is the paragraph right after an "Endpoint" heading.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hchiba1/sparqlet-runner/internal/dom"
	"github.com/hchiba1/sparqlet-runner/internal/render"
	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// StdinPath is the input path that selects standard input.
const StdinPath = "-"

// File extracts the document at path. StdinPath reads from os.Stdin.
// Diagnostics go to w.
func File(path string, r render.Renderer, cfg types.ExtractConfig, w io.Writer) (types.Document, error) {
	var src io.Reader = os.Stdin
	if path != StdinPath {
		f, err := os.Open(path)
		if err != nil {
			return types.Document{}, fmt.Errorf("reading %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	fmt.Fprintf(w, "reading %s\n", path)

	doc, err := Run(src, r, cfg, w)
	if err != nil {
		return types.Document{}, fmt.Errorf("extracting %s: %w", path, err)
	}
	return doc, nil
}

// Run reads Markdown from src, renders and parses it, and extracts the
// document. Missing sections yield empty values, never errors.
func Run(src io.Reader, r render.Renderer, cfg types.ExtractConfig, w io.Writer) (types.Document, error) {
	markdown, err := io.ReadAll(src)
	if err != nil {
		return types.Document{}, fmt.Errorf("read input: %w", err)
	}

	markup, err := r.Render(markdown)
	if err != nil {
		return types.Document{}, err
	}
	fmt.Fprintf(w, "rendered %d bytes of markdown into %d bytes of html\n", len(markdown), len(markup))

	tree, err := dom.Parse(bytes.NewReader(markup))
	if err != nil {
		return types.Document{}, err
	}

	doc := FromTree(tree, cfg)
	fmt.Fprintf(w, "extracted title %q, %d parameter(s), %d procedure(s)\n",
		doc.Title, len(doc.Parameters), len(doc.Procedures))
	return doc, nil
}

// FromTree runs the three extractors against an already parsed tree.
func FromTree(tree *goquery.Document, cfg types.ExtractConfig) types.Document {
	return types.Document{
		Title:      Title(tree),
		Parameters: Parameters(tree),
		Procedures: Procedures(tree, cfg),
	}
}

// Title returns the direct text of the first h1, or "" when there is none.
func Title(tree *goquery.Document) string {
	return strings.TrimSpace(dom.DirectText(tree.Find("h1").First()))
}
