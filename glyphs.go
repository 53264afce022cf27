// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import "github.com/mattn/go-runewidth"

// GlyphSet is the set of strings used to draw the branches of a tree.
type GlyphSet struct {
	// Pipe continues a branch past a sibling that is not the last one.
	Pipe string
	// Branch connects a node that has further siblings below it.
	Branch string
	// End connects the last node of a child collection.
	End string
	// Space pads indentation where no branch continues.
	Space string
	// Nameless is shown in place of an empty name.
	Nameless string
	// SplitLine starts the continuation lines of wrapped text.
	SplitLine string
}

var asciiGlyphs = GlyphSet{
	Pipe:      "|",
	Branch:    "|->",
	End:       "|->",
	Space:     "  ",
	Nameless:  `\`,
	SplitLine: "~",
}

var fancyGlyphs = GlyphSet{
	Pipe:      "│",
	Branch:    "├─",
	End:       "└─",
	Space:     " ",
	Nameless:  "┐",
	SplitLine: "~",
}

// Glyphs returns the Unicode box-drawing palette if fancy is set and the
// 7-bit ASCII palette otherwise.
func Glyphs(fancy bool) GlyphSet {
	if fancy {
		return fancyGlyphs
	}
	return asciiGlyphs
}

// connector returns the glyph that prefixes a node's own line.
func (g *GlyphSet) connector(last bool) string {
	if last {
		return g.End
	}
	return g.Branch
}

// continuation returns the glyph that prefixes the lines below a node's own
// line, keeping the parent's branch visible while siblings follow.
func (g *GlyphSet) continuation(last bool) string {
	if last {
		return g.Space
	}
	return g.Pipe
}

// Ambiguous-width box drawing characters are a single column wide regardless
// of the process locale.
var widthCondition = &runewidth.Condition{StrictEmojiNeutral: true}

func glyphWidth(s string) int {
	return widthCondition.StringWidth(s)
}
