// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package render turns Markdown source into HTML markup.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// Renderer converts Markdown to HTML. The extractor depends on this
// interface so tests can substitute a failing or canned renderer.
type Renderer interface {
	// Render returns the HTML for the given Markdown source.
	Render(markdown []byte) ([]byte, error)
}

// GoldmarkRenderer renders CommonMark with goldmark. It holds a configured
// engine and can be reused for any number of documents.
type GoldmarkRenderer struct {
	engine goldmark.Markdown
}

// NewGoldmarkRenderer builds a renderer from cfg. With no extensions the
// output follows plain CommonMark. Raw HTML is passed through unless
// cfg.SafeMode is set.
func NewGoldmarkRenderer(cfg types.MarkdownConfig) *GoldmarkRenderer {
	var opts []goldmark.Option

	if !cfg.SafeMode {
		opts = append(opts, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	if exts := collectExtensions(cfg.Extensions); len(exts) > 0 {
		opts = append(opts, goldmark.WithExtensions(exts...))
	}

	return &GoldmarkRenderer{engine: goldmark.New(opts...)}
}

// Render implements Renderer.
func (g *GoldmarkRenderer) Render(markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := g.engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}
	return buf.Bytes(), nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// collectExtensions maps extension names to goldmark extenders, ignoring
// blanks, unknown names and aliases of an extension already chosen.
func collectExtensions(names []string) []goldmark.Extender {
	var extenders []goldmark.Extender
	seen := map[goldmark.Extender]bool{}

	for _, name := range names {
		ext, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
		if !ok || seen[ext] {
			continue
		}
		seen[ext] = true
		extenders = append(extenders, ext)
	}

	return extenders
}
