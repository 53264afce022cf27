// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/cockroachdb/treefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "print the number of subtrees and leaves at each depth",
	Long:  ``,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

type levelStats struct {
	subtrees int
	leaves   int
	keyed    int
}

func runStats(cmd *cobra.Command, args []string) error {
	t, err := readTree(cmd.InOrStdin(), args, inputFormat)
	if err != nil {
		return err
	}
	writeStats(cmd.OutOrStdout(), collectStats(t))
	return nil
}

func collectStats(t *treefmt.Tree) []levelStats {
	var levels []levelStats
	t.Walk(func(depth int, v any) bool {
		for len(levels) <= depth {
			levels = append(levels, levelStats{})
		}
		if st, ok := v.(*treefmt.Tree); ok {
			levels[depth].subtrees++
			if st.IsKeyed() {
				levels[depth].keyed++
			}
		} else {
			levels[depth].leaves++
		}
		return true
	})
	return levels
}

func writeStats(w io.Writer, levels []levelStats) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Depth", "Subtrees", "Keyed", "Leaves"})
	var total levelStats
	for depth, l := range levels {
		tbl.Append([]string{
			fmt.Sprintf("%d", depth),
			fmt.Sprintf("%d", l.subtrees),
			fmt.Sprintf("%d", l.keyed),
			fmt.Sprintf("%d", l.leaves),
		})
		total.subtrees += l.subtrees
		total.keyed += l.keyed
		total.leaves += l.leaves
	}
	tbl.SetFooter([]string{
		"total",
		fmt.Sprintf("%d", total.subtrees),
		fmt.Sprintf("%d", total.keyed),
		fmt.Sprintf("%d", total.leaves),
	})
	tbl.Render()
}
