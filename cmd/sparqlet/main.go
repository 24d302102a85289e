// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the sparqlet CLI. It reads one
// procedure document written in Markdown and prints its title, parameters
// and procedures.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd extracts one document: sparqlet <file.md>.
var rootCmd = &cobra.Command{
	Use:   "sparqlet <file.md>",
	Short: "Extract procedures from a Markdown procedure document",
	Long: `sparqlet reads a Markdown procedure document and prints what it declares:
the title (first top-level heading), the parameters (the list under a
"Parameters" heading) and the procedures (JavaScript and SPARQL code blocks,
each named by the heading before it).

A SPARQL procedure takes its endpoint from the paragraph that follows an
"Endpoint" heading. Use "-" as the file to read standard input.

By default the output is three lines, each one JSON value: title,
parameters, procedures.`,
	Args:         cobra.MaximumNArgs(1),
	SilenceUsage: true,
	RunE:         runExtract,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./sparqlet.yaml or ~/.config/sparqlet/sparqlet.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print diagnostics to stderr")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("sparqlet")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "sparqlet"))
		}
	}

	viper.SetEnvPrefix("SPARQLET")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
