// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package indenttree parses a hierarchy defined using indentation; see Parse.
package indenttree

import (
	"strings"

	"github.com/cockroachdb/crlib/crstrings"
	"github.com/cockroachdb/errors"
)

// Node in a hierarchy returned by Parse.
type Node struct {
	// Value is the contents of the line, without indentation or trailing
	// whitespace.
	Value string
	// Line is the 1-based input line the node was parsed from.
	Line     int
	Children []*Node
}

// Parse a multi-line input string into trees of nodes. For example:
//
//	a
//	 a1
//	  a11
//	 a2
//	b
//	 b1
//
// is parsed into two Nodes (a and b). Node a has two children (a1, a2), and a1
// has one child (a11); node b has one child (b1).
//
// A node is a child of the closest preceding line with a smaller indentation.
// Dedenting must return to the indentation of an enclosing node; the
// following is not valid because a2 lines up with neither a nor a1:
//
//	a
//	   a1
//	  a2
//
// Blank lines are ignored. Tabs cannot be used for indentation (they can cause
// confusion if editor settings vary).
func Parse(input string) ([]*Node, error) {
	type frame struct {
		indent int
		node   *Node
	}
	var roots []*Node
	var stack []frame
	rootIndent := -1
	for i, line := range crstrings.Lines(input) {
		trimmed := strings.TrimLeft(line, " ")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}
		if trimmed[0] == '\t' {
			return nil, errors.Errorf("line %d: tab indentation", i+1)
		}
		indent := len(line) - len(trimmed)
		n := &Node{Value: strings.TrimRight(trimmed, " \t"), Line: i + 1}

		popped := false
		for len(stack) > 0 && stack[len(stack)-1].indent > indent {
			stack = stack[:len(stack)-1]
			popped = true
		}
		switch {
		case len(stack) == 0:
			if rootIndent >= 0 && indent != rootIndent {
				return nil, errors.Errorf("line %d: inconsistent indentation", i+1)
			}
			rootIndent = indent
			roots = append(roots, n)
		case stack[len(stack)-1].indent == indent:
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				roots = append(roots, n)
			} else {
				parent := stack[len(stack)-1].node
				parent.Children = append(parent.Children, n)
			}
		default:
			if popped {
				return nil, errors.Errorf("line %d: inconsistent indentation", i+1)
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, n)
		}
		stack = append(stack, frame{indent: indent, node: n})
	}
	if len(roots) == 0 {
		return nil, errors.Errorf("empty input")
	}
	return roots, nil
}
