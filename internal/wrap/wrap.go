// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package wrap breaks text into lines that fit a column budget.
package wrap

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/cockroachdb/crlib/crstrings"
)

// Lines wraps s so that no returned line is wider than width terminal
// columns. Breaks happen at whitespace when possible; words wider than width
// are split. Trailing whitespace is removed from every line. Existing newlines
// in s are kept as line breaks.
//
// If width <= 0, s is returned as the only line.
func Lines(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	lines := crstrings.Lines(ansi.Wrap(s, width, ""))
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}
	return lines
}

// Width returns the number of terminal columns s occupies.
func Width(s string) int {
	return ansi.StringWidth(s)
}
