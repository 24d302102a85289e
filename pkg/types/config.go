// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputFormat selects how an extracted Document is written.
type OutputFormat string

const (
	// OutputLines writes title, parameters and procedures as three lines,
	// each a compact JSON value.
	OutputLines OutputFormat = "lines"
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
)

// MarkdownConfig holds settings for the Markdown renderer.
type MarkdownConfig struct {
	// Extensions names optional goldmark extensions (e.g. "table", "footnote").
	// Unknown names are ignored. Empty means plain CommonMark.
	Extensions []string `json:"extensions,omitempty" yaml:"extensions,omitempty"`

	// SafeMode drops raw HTML from the rendered output instead of passing
	// it through.
	SafeMode bool `json:"safe_mode" yaml:"safe_mode"`
}

// ExtractConfig holds settings for the structural extractor.
type ExtractConfig struct {
	// AllBlocks includes code blocks of any language. Blocks outside the
	// recognized vocabulary get TypeNone.
	AllBlocks bool `json:"all_blocks" yaml:"all_blocks"`
}

// Config groups the settings resolved from flags, environment and the
// config file for one run.
type Config struct {
	// Format is the output format (default "lines").
	Format OutputFormat `json:"format" yaml:"format"`

	// Verbose enables diagnostics on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`

	ExtractConfig `yaml:",inline"`

	Markdown MarkdownConfig `json:"markdown" yaml:"markdown"`
}
