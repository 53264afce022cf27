// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treefmt renders hierarchies as indented text with branch glyphs,
// similar to the output of the tree command:
//
//	t := treefmt.New("root",
//		treefmt.New("child", "x"),
//		"y",
//	)
//	if err := t.Apply(true /* cascade */, treefmt.Fancy(true)); err != nil {
//		return err
//	}
//	fmt.Print(t)
//
// prints
//
//	root
//	├─child
//	│ └─x
//	└─y
//
// Names longer than a tree's wrap width, and leaves longer than the wrap width
// or than what remains of the line width after the branch glyphs, are wrapped
// onto continuation lines that start with "~".
package treefmt
