// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Settings are the display settings of a single Tree.
type Settings struct {
	// Fancy selects the Unicode box-drawing palette instead of 7-bit ASCII.
	Fancy bool
	// Wrap is the maximum width of the text of a single node. Values <= 0
	// disable per-node wrapping.
	Wrap int
	// Width is the maximum width of a rendered line, including branch glyphs.
	// Values <= 0 mean there is no limit.
	Width int
}

// Settings returns the display settings of the tree.
func (t *Tree) Settings() Settings {
	return Settings{Fancy: t.fancy, Wrap: t.wrap, Width: t.width}
}

// SetFancy selects the glyph palette of this tree only.
func (t *Tree) SetFancy(fancy bool) {
	t.fancy = fancy
}

// SetWrap sets the per-node wrap width of this tree only.
func (t *Tree) SetWrap(wrap int) {
	t.wrap = wrap
}

// SetWidth sets the line width budget of this tree only.
func (t *Tree) SetWidth(width int) {
	t.width = width
}

type settingKind uint8

const (
	settingFancy settingKind = iota + 1
	settingWrap
	settingWidth
)

// Setting is a single display setting change, created by Fancy, Wrap or
// Width and applied with Tree.Apply.
type Setting struct {
	kind  settingKind
	fancy bool
	n     int
}

// Fancy returns a Setting that selects the glyph palette.
func Fancy(fancy bool) Setting {
	return Setting{kind: settingFancy, fancy: fancy}
}

// Wrap returns a Setting that sets the per-node wrap width.
func Wrap(wrap int) Setting {
	return Setting{kind: settingWrap, n: wrap}
}

// Width returns a Setting that sets the line width budget.
func Width(width int) Setting {
	return Setting{kind: settingWidth, n: width}
}

// String implements fmt.Stringer.
func (s Setting) String() string {
	switch s.kind {
	case settingFancy:
		return fmt.Sprintf("fancy=%t", s.fancy)
	case settingWrap:
		return fmt.Sprintf("wrap=%d", s.n)
	case settingWidth:
		return fmt.Sprintf("width=%d", s.n)
	default:
		return fmt.Sprintf("invalid(%d)", s.kind)
	}
}

// Apply changes the display settings of the tree. If cascade is set, the
// changes are first applied to every descendant Tree (children before their
// parents) and then to t itself; otherwise only t changes. Leaf values carry
// no settings and are left alone.
//
// Apply returns an error, and changes nothing, if no settings are given or a
// setting was not created by Fancy, Wrap or Width.
func (t *Tree) Apply(cascade bool, changes ...Setting) error {
	if len(changes) == 0 {
		return errors.AssertionFailedf("treefmt: no settings to apply")
	}
	for _, s := range changes {
		switch s.kind {
		case settingFancy, settingWrap, settingWidth:
		default:
			return errors.AssertionFailedf("treefmt: malformed setting %s", errors.Safe(s.String()))
		}
	}
	t.apply(cascade, changes)
	return nil
}

func (t *Tree) apply(cascade bool, changes []Setting) {
	if cascade {
		for i := range t.children.entries {
			if c := t.children.entries[i].tree; c != nil {
				c.apply(cascade, changes)
			}
		}
	}
	for _, s := range changes {
		switch s.kind {
		case settingFancy:
			t.fancy = s.fancy
		case settingWrap:
			t.wrap = s.n
		case settingWidth:
			t.width = s.n
		}
	}
}
