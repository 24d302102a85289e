// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hchiba1/sparqlet-runner/internal/render"
	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// failingRenderer implements render.Renderer and always fails.
type failingRenderer struct {
	err error
}

func (f *failingRenderer) Render([]byte) ([]byte, error) {
	return nil, f.err
}

func newRenderer() render.Renderer {
	return render.NewGoldmarkRenderer(types.MarkdownConfig{})
}

func extractString(t *testing.T, markdown string, cfg types.ExtractConfig) types.Document {
	t.Helper()
	doc, err := Run(strings.NewReader(markdown), newRenderer(), cfg, io.Discard)
	require.NoError(t, err)
	return doc
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{name: "first h1", markdown: "# Gene Lookup\n\ntext\n\n# Second\n", want: "Gene Lookup"},
		{name: "no h1", markdown: "## Only a subheading\n\ntext\n", want: ""},
		{name: "empty document", markdown: "", want: ""},
		{name: "inline markup is not direct text", markdown: "# Run `query` now\n", want: "Run  now"},
		{name: "setext heading", markdown: "Setext Title\n============\n", want: "Setext Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := extractString(t, tt.markdown, types.ExtractConfig{})
			assert.Equal(t, tt.want, doc.Title)
		})
	}
}

func TestParameters(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     []types.Parameter
	}{
		{
			name:     "name description and default",
			markdown: "## Parameters\n\n- `x` the value\n  - default: 5\n",
			want:     []types.Parameter{{Name: "x", Description: "the value", Default: "5"}},
		},
		{
			name:     "default and example",
			markdown: "# Parameters\n\n- `limit` max rows\n  - example: 10\n  - default:   100\n",
			want:     []types.Parameter{{Name: "limit", Description: "max rows", Default: "100", Example: "10"}},
		},
		{
			name:     "heading match ignores case",
			markdown: "### PARAMETERS\n\n- `a` one\n- `b` two\n",
			want: []types.Parameter{
				{Name: "a", Description: "one"},
				{Name: "b", Description: "two"},
			},
		},
		{
			name:     "items without code are skipped",
			markdown: "## Parameters\n\n- plain item\n- `kept` yes\n",
			want:     []types.Parameter{{Name: "kept", Description: "yes"}},
		},
		{
			name:     "prefix match is case sensitive",
			markdown: "## Parameters\n\n- `x` value\n  - Default: 5\n",
			want:     []types.Parameter{{Name: "x", Description: "value"}},
		},
		{
			name:     "paragraph between heading and list is allowed",
			markdown: "## Parameters\n\nThese are the inputs.\n\n- `x` value\n",
			want:     []types.Parameter{{Name: "x", Description: "value"}},
		},
		{
			name:     "loose list",
			markdown: "## Parameters\n\n- `x` the value\n\n  - default: 5\n",
			want:     []types.Parameter{{Name: "x", Description: "the value", Default: "5"}},
		},
		{
			name:     "first qualifying list only",
			markdown: "## Parameters\n\n- `a` first\n\nSeparator.\n\n- `b` second\n",
			want:     []types.Parameter{{Name: "a", Description: "first"}},
		},
		{
			name:     "another heading in between",
			markdown: "## Parameters\n\n### Details\n\n- `x` value\n",
			want:     []types.Parameter{},
		},
		{
			name:     "no parameters heading",
			markdown: "## Inputs\n\n- `x` value\n",
			want:     []types.Parameter{},
		},
		{
			name:     "ordered lists do not count",
			markdown: "## Parameters\n\n1. `x` value\n",
			want:     []types.Parameter{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := extractString(t, tt.markdown, types.ExtractConfig{})
			assert.Equal(t, tt.want, doc.Parameters)
		})
	}
}

func TestProcedures(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		cfg      types.ExtractConfig
		want     []types.Procedure
	}{
		{
			name:     "javascript block under heading",
			markdown: "## ` myFunc` Compute Total\n\n```javascript\nreturn 1;\n```\n",
			want: []types.Procedure{
				{BindingName: "myFunc", Name: "Compute Total", Data: "return 1;", Type: types.TypeJavaScript},
			},
		},
		{
			name:     "js shorthand",
			markdown: "# `f` F\n\n```js\n1\n```\n",
			want: []types.Procedure{
				{BindingName: "f", Name: "F", Data: "1", Type: types.TypeJavaScript},
			},
		},
		{
			name: "sparql with endpoint",
			markdown: "### Endpoint\n\nhttps://example.org/sparql\n\n### Query\n\n" +
				"```sparql\nSELECT * WHERE { ?s ?p ?o }\n```\n",
			want: []types.Procedure{
				{
					Name:     "Query",
					Data:     "SELECT * WHERE { ?s ?p ?o }",
					Type:     types.TypeSPARQL,
					Endpoint: "https://example.org/sparql",
				},
			},
		},
		{
			name:     "sparql without endpoint",
			markdown: "## Query\n\n```sparql\nASK {}\n```\n",
			want: []types.Procedure{
				{Name: "Query", Data: "ASK {}", Type: types.TypeSPARQL},
			},
		},
		{
			name:     "endpoint only applies to sparql",
			markdown: "## Endpoint\n\nhttps://example.org/sparql\n\n## Script\n\n```js\nx()\n```\n",
			want: []types.Procedure{
				{Name: "Script", Data: "x()", Type: types.TypeJavaScript},
			},
		},
		{
			name:     "block without heading",
			markdown: "```sparql\nASK {}\n```\n",
			want: []types.Procedure{
				{Data: "ASK {}", Type: types.TypeSPARQL},
			},
		},
		{
			name:     "nearest heading wins regardless of level",
			markdown: "# `outer` Outer\n\n###### `inner` Inner\n\n```js\n1\n```\n",
			want: []types.Procedure{
				{BindingName: "inner", Name: "Inner", Data: "1", Type: types.TypeJavaScript},
			},
		},
		{
			name:     "other languages are skipped",
			markdown: "## A\n\n```python\nprint(1)\n```\n\n    indented\n\n```\nplain\n```\n",
			want:     []types.Procedure{},
		},
		{
			name:     "all blocks includes unrecognized and unclassified blocks",
			markdown: "## A\n\n```python\nprint(1)\n```\n\n```\nplain\n```\n",
			cfg:      types.ExtractConfig{AllBlocks: true},
			want: []types.Procedure{
				{Name: "A", Data: "print(1)", Type: types.TypeNone},
				{Name: "A", Data: "plain", Type: types.TypeNone},
			},
		},
		{
			name:     "inline code is not a block",
			markdown: "## A\n\nCall `x()` here.\n",
			cfg:      types.ExtractConfig{AllBlocks: true},
			want:     []types.Procedure{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := extractString(t, tt.markdown, tt.cfg)
			assert.Equal(t, tt.want, doc.Procedures)
		})
	}
}

func TestProceduresKeepDocumentOrder(t *testing.T) {
	markdown := "### a\n\n```js\n1\n```\n\n# b\n\n```sparql\n2\n```\n\n#### c\n\n```javascript\n3\n```\n"
	doc := extractString(t, markdown, types.ExtractConfig{})

	var data []string
	for _, p := range doc.Procedures {
		data = append(data, p.Data)
	}
	assert.Equal(t, []string{"1", "2", "3"}, data)
}

func TestParameterValueKeepsNestedList(t *testing.T) {
	doc := extractString(t, "## Parameters\n\n- `x` value\n  - default: a\n    - note: deep\n", types.ExtractConfig{})
	require.Len(t, doc.Parameters, 1)

	got := doc.Parameters[0].Default
	assert.True(t, strings.HasPrefix(got, "a\n"), "default %q", got)
	assert.True(t, strings.HasSuffix(got, "note: deep"), "default %q", got)
}

func TestFile(t *testing.T) {
	doc, err := File(filepath.Join("testdata", "procedure.md"), newRenderer(), types.ExtractConfig{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "Gene Lookup", doc.Title)
	assert.Equal(t, []types.Parameter{
		{Name: "symbol", Description: "The gene symbol to look up", Default: "BRCA1", Example: "TP53"},
		{Name: "taxon", Description: "NCBI taxonomy identifier", Example: "9606"},
	}, doc.Parameters)
	assert.Equal(t, []types.Procedure{
		{
			BindingName: "genes",
			Name:        "Find Genes",
			Data:        `SELECT ?gene WHERE { ?gene rdfs:label "{{symbol}}" }`,
			Type:        types.TypeSPARQL,
			Endpoint:    "https://example.org/sparql",
		},
		{
			BindingName: "format",
			Name:        "Format Result",
			Data:        "return genes.results.bindings;",
			Type:        types.TypeJavaScript,
		},
	}, doc.Procedures)
}

func TestFileFromStdin(t *testing.T) {
	f, err := os.Open(filepath.Join("testdata", "procedure.md"))
	require.NoError(t, err)
	defer f.Close()

	stdin := os.Stdin
	os.Stdin = f
	t.Cleanup(func() { os.Stdin = stdin })

	var diag bytes.Buffer
	doc, err := File(StdinPath, newRenderer(), types.ExtractConfig{}, &diag)
	require.NoError(t, err)

	assert.Equal(t, "Gene Lookup", doc.Title)
	assert.Len(t, doc.Parameters, 2)
	assert.Len(t, doc.Procedures, 2)
	assert.Contains(t, diag.String(), "reading -\n")
}

func TestFileAllBlocks(t *testing.T) {
	doc, err := File(filepath.Join("testdata", "procedure.md"), newRenderer(), types.ExtractConfig{AllBlocks: true}, io.Discard)
	require.NoError(t, err)

	require.Len(t, doc.Procedures, 4)
	assert.Equal(t, types.Procedure{Name: "Notes", Data: `print("not a procedure")`}, doc.Procedures[2])
	assert.Equal(t, types.Procedure{Name: "Notes", Data: "indented code"}, doc.Procedures[3])
}

func TestFileWithoutConventions(t *testing.T) {
	doc, err := File(filepath.Join("testdata", "empty.md"), newRenderer(), types.ExtractConfig{}, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "", doc.Title)
	assert.NotNil(t, doc.Parameters)
	assert.Empty(t, doc.Parameters)
	assert.NotNil(t, doc.Procedures)
	assert.Empty(t, doc.Procedures)
}

func TestFileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")
	_, err := File(path, newRenderer(), types.ExtractConfig{}, io.Discard)
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "reading "+path)
}

func TestFileIsIdempotent(t *testing.T) {
	path := filepath.Join("testdata", "procedure.md")
	first, err := File(path, newRenderer(), types.ExtractConfig{AllBlocks: true}, io.Discard)
	require.NoError(t, err)
	second, err := File(path, newRenderer(), types.ExtractConfig{AllBlocks: true}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRunRenderFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Run(strings.NewReader("# x"), &failingRenderer{err: boom}, types.ExtractConfig{}, io.Discard)
	assert.ErrorIs(t, err, boom)
}

func TestRunDiagnostics(t *testing.T) {
	var log bytes.Buffer
	_, err := Run(strings.NewReader("# T\n\n```js\n1\n```\n"), newRenderer(), types.ExtractConfig{}, &log)
	require.NoError(t, err)
	assert.Contains(t, log.String(), `extracted title "T", 0 parameter(s), 1 procedure(s)`)
}
