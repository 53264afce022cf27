// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"strings"

	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/treefmt/internal/invariants"
)

// RenderOptions configure a single render. The zero value is the default.
type RenderOptions struct {
	// KeepRootConnector keeps the branch glyph in front of the root's line (and
	// the matching indentation on the lines below it).
	KeepRootConnector bool
	// Logger receives reports about values that could not be stringified.
	// Defaults to DefaultLogger.
	Logger Logger
}

// String renders the tree with default options. Every line, including the
// last one, is terminated by a newline.
func (t *Tree) String() string {
	return t.RenderString(RenderOptions{})
}

// Lines renders the tree with default options and returns the lines without
// line terminators.
func (t *Tree) Lines() []string {
	return t.RenderLines(RenderOptions{})
}

// RenderString renders the tree as a single string in which every line is
// terminated by a newline.
func (t *Tree) RenderString(opts RenderOptions) string {
	var buf strings.Builder
	for _, l := range t.render(opts) {
		buf.WriteString(l.prefix)
		buf.WriteString(l.text)
		buf.WriteByte('\n')
	}
	return buf.String()
}

// RenderLines renders the tree and returns the lines without line
// terminators.
func (t *Tree) RenderLines(opts RenderOptions) []string {
	lines := t.render(opts)
	res := make([]string, len(lines))
	for i := range lines {
		res[i] = lines[i].String()
	}
	return res
}

// SafeFormat implements redact.SafeFormatter. Branch glyphs are safe; the text
// of nodes is redactable unless the value implements redact.SafeValue.
func (t *Tree) SafeFormat(w redact.SafePrinter, _ rune) {
	for _, l := range t.render(RenderOptions{Logger: NoopLogger{}}) {
		w.SafeString(redact.SafeString(l.prefix))
		if l.safe {
			w.SafeString(redact.SafeString(l.text))
		} else {
			w.UnsafeString(l.text)
		}
		w.SafeRune('\n')
	}
}

// render lays out t as the only child of a nameless container that shares
// t's settings. The container gives the root line a connector like any other
// line, which is then removed. t itself is not modified.
func (t *Tree) render(opts RenderOptions) []line {
	if invariants.Enabled {
		t.checkInvariants()
	}
	logger := opts.Logger
	if logger == nil {
		logger = DefaultLogger{}
	}
	container := &Tree{fancy: t.fancy, wrap: t.wrap, width: t.width}
	container.children.append(t)

	l := layout{logger: logger}
	lines := l.generate(container, true /* last */, 0 /* prior */, true /* root */)
	if !opts.KeepRootConnector {
		stripRootConnector(lines, Glyphs(t.fancy))
	}
	return lines
}

// stripRootConnector removes the container's end glyph from the first line
// and the container's indentation, up to the width of that glyph, from the
// remaining lines.
func stripRootConnector(lines []line, g GlyphSet) {
	if len(lines) == 0 {
		return
	}
	lines[0].prefix = strings.TrimPrefix(lines[0].prefix, g.End)
	n := glyphWidth(g.End)
	for i := 1; i < len(lines); i++ {
		p := lines[i].prefix
		j := 0
		for j < n && j < len(p) && p[j] == ' ' {
			j++
		}
		lines[i].prefix = p[j:]
	}
}
