// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hchiba1/sparqlet-runner/internal/extract"
	"github.com/hchiba1/sparqlet-runner/internal/output"
	"github.com/hchiba1/sparqlet-runner/internal/render"
	"github.com/hchiba1/sparqlet-runner/pkg/types"
)

// errNoInput is returned, after the help text, when no file is given.
var errNoInput = errors.New("input file required")

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		_ = cmd.Help()
		return errNoInput
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	diag := io.Discard
	if cfg.Verbose {
		diag = cmd.ErrOrStderr()
	}

	doc, err := extract.File(args[0], render.NewGoldmarkRenderer(cfg.Markdown), cfg.ExtractConfig, diag)
	if err != nil {
		return err
	}
	return output.Write(cmd.OutOrStdout(), doc, cfg.Format)
}

// resolveConfig collects flags, SPARQLET_* environment variables and the
// config file, in that order of precedence, into a types.Config.
func resolveConfig() (types.Config, error) {
	format, err := output.ParseFormat(viper.GetString("format"))
	if err != nil {
		return types.Config{}, err
	}

	return types.Config{
		Format:  format,
		Verbose: viper.GetBool("verbose"),
		ExtractConfig: types.ExtractConfig{
			AllBlocks: viper.GetBool("all_blocks"),
		},
		Markdown: types.MarkdownConfig{
			Extensions: splitNames(viper.GetStringSlice("markdown.extensions")),
			SafeMode:   viper.GetBool("markdown.safe_mode"),
		},
	}, nil
}

// splitNames flattens comma-separated entries so the flag, the environment
// (which viper splits on whitespace only) and the config file accept the
// same "table,footnote" form.
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}

func init() {
	flags := rootCmd.Flags()
	flags.StringP("format", "f", string(types.OutputLines), "output format: lines, json or yaml")
	flags.Bool("all-blocks", false, "include code blocks of any language (unrecognized ones get a null type)")
	flags.StringSlice("extensions", nil, "goldmark extensions to enable: gfm, table, strikethrough, linkify, tasklist, definition, footnote")
	flags.Bool("safe-mode", false, "drop raw HTML embedded in the Markdown")

	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("all_blocks", flags.Lookup("all-blocks"))
	_ = viper.BindPFlag("markdown.extensions", flags.Lookup("extensions"))
	_ = viper.BindPFlag("markdown.safe_mode", flags.Lookup("safe-mode"))
}
