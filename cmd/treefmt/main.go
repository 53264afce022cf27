// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"log"
	"os"

	"github.com/cockroachdb/treefmt"
	"github.com/spf13/cobra"
)

var (
	inputFormat string
	verbose     bool
)

var logger treefmt.Logger = treefmt.DefaultLogger{}

var rootCmd = &cobra.Command{
	Use:   "treefmt [command] (flags)",
	Short: "render hierarchies as indented trees",
	Long: `
treefmt reads a hierarchy from a file (or stdin) and prints it as a tree.

Input formats:
  indent  one node per line; children are indented below their parent
  yaml    mappings become keyed children, sequences ordered children
  json    parsed as yaml
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		renderCmd,
		statsCmd,
	)

	for _, cmd := range []*cobra.Command{renderCmd, statsCmd} {
		cmd.Flags().StringVarP(
			&inputFormat, "format", "f", "", "input format: indent, yaml or json (default: by file extension)")
		cmd.Flags().BoolVarP(
			&verbose, "verbose", "v", false, "log input details")
	}

	renderCmd.Flags().BoolVar(
		&renderFancy, "fancy", false, "draw branches with Unicode box-drawing characters")
	renderCmd.Flags().IntVar(
		&renderWrap, "wrap", 0, "maximum width of a single node's text (0: no limit)")
	renderCmd.Flags().StringVar(
		&renderWidth, "width", "0", `maximum line width (0: no limit, "auto": terminal width)`)
	renderCmd.Flags().BoolVar(
		&renderKeepRoot, "keep-root-connector", false, "keep the branch glyph in front of the root")
	renderCmd.Flags().BoolVar(
		&renderRedact, "redact", false, "redact node text, keeping the tree structure")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
