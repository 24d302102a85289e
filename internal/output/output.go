// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output writes an extracted Document in one of the supported
// formats: three JSON lines, a single JSON object, or YAML.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// ErrUnsupportedFormat is returned for a format name outside
// lines, json and yaml.
var ErrUnsupportedFormat = errors.New("unsupported format")

// ParseFormat validates a format name. The empty string selects
// types.OutputLines.
func ParseFormat(name string) (types.OutputFormat, error) {
	switch f := types.OutputFormat(name); f {
	case "":
		return types.OutputLines, nil
	case types.OutputLines, types.OutputJSON, types.OutputYAML:
		return f, nil
	default:
		return "", fmt.Errorf("%w %q: use lines, json or yaml", ErrUnsupportedFormat, name)
	}
}

// Write encodes doc to w in the given format.
func Write(w io.Writer, doc types.Document, format types.OutputFormat) error {
	switch format {
	case types.OutputLines, "":
		return writeLines(w, doc)
	case types.OutputJSON:
		return writeJSON(w, doc)
	case types.OutputYAML:
		return writeYAML(w, doc)
	default:
		return fmt.Errorf("%w %q: use lines, json or yaml", ErrUnsupportedFormat, format)
	}
}

// writeLines emits the title, the parameters and the procedures as three
// compact JSON values, one per line.
func writeLines(w io.Writer, doc types.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, v := range []any{doc.Title, nonNil(doc.Parameters), nonNil(doc.Procedures)} {
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding output: %w", err)
		}
	}
	return nil
}

func writeJSON(w io.Writer, doc types.Document) error {
	doc.Parameters = nonNil(doc.Parameters)
	doc.Procedures = nonNil(doc.Procedures)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, doc types.Document) error {
	doc.Parameters = nonNil(doc.Parameters)
	doc.Procedures = nonNil(doc.Procedures)

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("marshaling output: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// nonNil keeps empty sequences serialized as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
