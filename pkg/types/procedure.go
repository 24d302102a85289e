// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the data model shared by the extraction pipeline
// and its output formats.
package types

import "encoding/json"

// ProcedureType identifies how a procedure's data is meant to be executed.
// The zero value is TypeNone.
type ProcedureType string

const (
	TypeNone       ProcedureType = ""
	TypeJavaScript ProcedureType = "javascript"
	TypeSPARQL     ProcedureType = "sparql"
)

// MarshalJSON encodes TypeNone as null and every other type as its name.
func (t ProcedureType) MarshalJSON() ([]byte, error) {
	if t == TypeNone {
		return []byte("null"), nil
	}
	return json.Marshal(string(t))
}

// MarshalYAML encodes TypeNone as null and every other type as its name.
func (t ProcedureType) MarshalYAML() (any, error) {
	if t == TypeNone {
		return nil, nil
	}
	return string(t), nil
}

// Parameter is one declared input of a procedure document, taken from the
// list under the "Parameters" heading.
type Parameter struct {
	// Name is the inline code span that opens the list item.
	Name string `json:"name" yaml:"name"`

	// Description is the remaining text of the list item.
	Description string `json:"description" yaml:"description"`

	// Default comes from a nested "default: ..." item. Empty when absent.
	Default string `json:"default" yaml:"default"`

	// Example comes from a nested "example: ..." item. Empty when absent.
	Example string `json:"example" yaml:"example"`
}

// Procedure is one embedded code or query block together with the heading
// that introduces it.
type Procedure struct {
	// BindingName is the inline code span in the nearest preceding heading.
	BindingName string `json:"bindingName" yaml:"bindingName"`

	// Name is the heading text outside the inline code span.
	Name string `json:"name" yaml:"name"`

	// Data is the source text of the code block.
	Data string `json:"data" yaml:"data"`

	// Type is derived from the code block's language class.
	Type ProcedureType `json:"type" yaml:"type"`

	// Endpoint is the service address declared under an "Endpoint" heading.
	// Only set for SPARQL procedures.
	Endpoint string `json:"endpoint,omitempty" yaml:"endpoint,omitempty"`
}

// Document is the structured description extracted from one Markdown file.
type Document struct {
	Title      string      `json:"title" yaml:"title"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
	Procedures []Procedure `json:"procedures" yaml:"procedures"`
}
