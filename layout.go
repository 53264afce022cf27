// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"strings"

	"github.com/cockroachdb/treefmt/internal/wrap"
)

// line is a rendered line. The prefix holds glyphs and indentation; text
// holds (part of) the text of a single node.
type line struct {
	prefix string
	text   string
	// safe is set if text can be reported without redaction.
	safe bool
}

func (l line) String() string {
	return l.prefix + l.text
}

type layout struct {
	logger Logger
}

// generate returns the lines for t and its descendants.
//
// last is set if t is the last child of its parent. prior is the width of the
// glyphs that ancestors place in front of every line of t. A root tree with
// an empty name does not get a line of its own.
func (l *layout) generate(t *Tree, last bool, prior int, root bool) []line {
	g := Glyphs(t.fancy)
	connector := g.connector(last)
	childPrior := prior + glyphWidth(connector)

	var lines []line
	text, safe := t.label.resolve(l.logger)
	if text != "" || !root {
		if text == "" {
			text, safe = g.Nameless, true
		}
		// A tree's own name is wrapped at its wrap width only; the line width
		// budget applies to leaves.
		lines = l.appendText(lines, &g, text, safe, t.wrap, connector, g.SplitLine)
	}

	entries := t.children.entries
	for i := range entries {
		e := &entries[i]
		childLast := i == len(entries)-1
		switch {
		case e.tree != nil:
			sub := l.generate(e.tree, childLast, childPrior, false)
			cont := g.continuation(childLast)
			for j := 1; j < len(sub); j++ {
				p := cont
				if !strings.HasPrefix(sub[j].prefix, g.SplitLine) {
					p += g.Space
				}
				sub[j].prefix = p + sub[j].prefix
			}
			lines = append(lines, sub...)

		case e.leaf != nil:
			text, safe := stringify(e.leaf, l.logger)
			if text == "" {
				text, safe = g.Nameless, true
			}
			leafConnector := g.connector(childLast)
			width := wrapWidth(t.wrap, t.width, prior+glyphWidth(leafConnector))
			lines = l.appendText(lines, &g, text, safe, width, leafConnector, g.continuation(childLast)+g.SplitLine)
		}
	}
	return lines
}

// appendText appends the lines for the text of a single node. If width > 0
// the text is wrapped: the first line is prefixed by connector and the
// following ones by split. Lines that are blank after wrapping are dropped.
func (l *layout) appendText(
	lines []line, g *GlyphSet, text string, safe bool, width int, connector, split string,
) []line {
	if width <= 0 {
		return append(lines, line{prefix: connector, text: text, safe: safe})
	}
	first := true
	for _, s := range wrap.Lines(text, width) {
		if strings.TrimSpace(s) == "" {
			continue
		}
		prefix := split
		if first {
			prefix = connector
			first = false
		}
		lines = append(lines, line{prefix: prefix, text: s, safe: safe})
	}
	if first {
		// Nothing but whitespace; keep the node visible.
		lines = append(lines, line{prefix: connector, text: g.Nameless, safe: true})
	}
	return lines
}

// wrapWidth returns the width at which the text of a node is wrapped, given
// the node's wrap setting, its line width budget and the width already taken
// by glyphs on the line. It returns 0 if the text should not be wrapped.
func wrapWidth(nodeWrap, lineWidth, used int) int {
	w := 0
	if nodeWrap > 0 {
		w = nodeWrap
	}
	if lineWidth > 0 {
		remaining := max(lineWidth-used, 1)
		if w == 0 || remaining < w {
			w = remaining
		}
	}
	return w
}
