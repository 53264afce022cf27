// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/text/cases"
)

// Tree is a node of a hierarchy that can be rendered as indented text. A Tree
// has a name and children. Children are either an ordered sequence or a keyed
// mapping (never both); each child is either a nested *Tree or a plain leaf
// value that is displayed through its string form.
//
// Display settings (glyph palette, wrap width, line width) belong to each
// Tree and are not inherited by its subtrees; use Apply with cascade set to
// change a whole hierarchy.
//
// A Tree must not appear more than once in a hierarchy, and a hierarchy must
// not contain cycles: rendering a cyclic hierarchy does not terminate.
//
// Trees are not safe for concurrent use.
type Tree struct {
	label    Label
	children childSet

	fancy bool
	// wrap is the maximum width of a single node's text; <= 0 disables
	// per-node wrapping.
	wrap int
	// width is the maximum width of a rendered line; <= 0 means unlimited.
	width int
}

// New returns a Tree with the given name and an ordered sequence of children.
// The name may be a Label. Children that are *Tree values become subtrees; all
// other values are leaves. Nil leaves are not displayed but still count
// towards the position of their siblings. Empty names and leaves are drawn as
// the nameless glyph.
func New(name any, children ...any) *Tree {
	t := &Tree{}
	t.SetName(name)
	t.SetChildren(children...)
	return t
}

// NewKeyed returns a Tree with the given name and keyed children. Children are
// displayed in the order of their first insertion; a repeated key replaces the
// earlier value.
func NewKeyed(name any, children ...Keyed) *Tree {
	t := &Tree{}
	t.SetName(name)
	for _, c := range children {
		t.children.put(c.Key, c.Value)
	}
	return t
}

// SetName replaces the name of the tree. A Label controls the resolution of
// the displayed text; any other value is used as the label's Name.
func (t *Tree) SetName(name any) {
	switch n := name.(type) {
	case Label:
		t.label = n
	case *Label:
		if n == nil {
			t.label = Label{}
		} else {
			t.label = *n
		}
	default:
		t.label = Label{Name: name}
	}
}

// Label returns the label of the tree.
func (t *Tree) Label() Label {
	return t.label
}

// SetChildren replaces the children of the tree with an ordered sequence.
// Calling SetChildren without arguments removes all children.
func (t *Tree) SetChildren(children ...any) {
	t.children.reset()
	for _, c := range children {
		t.children.append(c)
	}
}

// AddChild appends a child to a tree with no children or with an ordered
// sequence of children. It returns ErrKeyRequired if the children are keyed.
func (t *Tree) AddChild(value any) error {
	if t.children.shape == mappingChildren {
		return errors.Wrapf(ErrKeyRequired, "adding child to %q", t.label.String())
	}
	t.children.append(value)
	return nil
}

// AddKeyedChild sets the child stored under key, replacing any previous value
// for the key. A tree without children becomes keyed. It returns
// ErrKeyedSequence if the children are an ordered sequence; the tree is left
// unchanged in that case.
func (t *Tree) AddKeyedChild(key string, value any) error {
	if t.children.shape == sequenceChildren {
		return errors.Wrapf(ErrKeyedSequence, "adding child %q to %q", key, t.label.String())
	}
	t.children.put(key, value)
	return nil
}

// FindChild returns the child stored under key. For keyed children the key
// must match exactly. For an ordered sequence, key is compared against the
// displayed text of each child ignoring case, and the first match is
// returned. The returned value is a *Tree for subtrees and the leaf value
// otherwise.
func (t *Tree) FindChild(key string) (any, bool) {
	switch t.children.shape {
	case mappingChildren:
		e, ok := t.children.lookup(key)
		if !ok {
			return nil, false
		}
		return e.value(), true
	case sequenceChildren:
		fold := cases.Fold()
		want := fold.String(key)
		for i := range t.children.entries {
			e := &t.children.entries[i]
			if e.tree == nil && e.leaf == nil {
				continue
			}
			if fold.String(e.text(NoopLogger{})) == want {
				return e.value(), true
			}
		}
	}
	return nil, false
}

// ChildAt returns the i-th child, in display order. It panics if i is out of
// range.
func (t *Tree) ChildAt(i int) any {
	return t.children.entries[i].value()
}

// NumChildren returns the number of children, including nil leaves.
func (t *Tree) NumChildren() int {
	return len(t.children.entries)
}

// IsKeyed returns true if the children of the tree are keyed.
func (t *Tree) IsKeyed() bool {
	return t.children.shape == mappingChildren
}

// Keys returns the keys of keyed children in display order, or nil if the
// children are not keyed.
func (t *Tree) Keys() []string {
	if t.children.shape != mappingChildren {
		return nil
	}
	keys := make([]string, len(t.children.entries))
	for i := range t.children.entries {
		keys[i] = t.children.entries[i].key
	}
	return keys
}

// Walk calls fn for t and then for each of its descendants in pre-order.
// Subtrees are passed as *Tree and leaves as their value; nil leaves are
// skipped. depth is 0 for t. If fn returns false for a subtree, its children
// are not visited.
func (t *Tree) Walk(fn func(depth int, v any) bool) {
	t.walk(0, fn)
}

func (t *Tree) walk(depth int, fn func(depth int, v any) bool) {
	if !fn(depth, t) {
		return
	}
	for i := range t.children.entries {
		e := &t.children.entries[i]
		switch {
		case e.tree != nil:
			e.tree.walk(depth+1, fn)
		case e.leaf != nil:
			fn(depth+1, e.leaf)
		}
	}
}

// checkInvariants verifies the child index of t and all its subtrees.
func (t *Tree) checkInvariants() {
	t.Walk(func(_ int, v any) bool {
		if st, ok := v.(*Tree); ok {
			if err := st.children.check(); err != nil {
				panic(err)
			}
		}
		return true
	})
}
