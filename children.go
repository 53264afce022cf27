// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

var (
	// ErrKeyRequired is returned when an unkeyed child is added to a tree whose
	// children are keyed.
	ErrKeyRequired = errors.New("treefmt: children are keyed")
	// ErrKeyedSequence is returned when a keyed child is added to a tree whose
	// children form an ordered sequence.
	ErrKeyedSequence = errors.New("treefmt: children are an ordered sequence")
)

// Keyed is a child value together with its key, used to build trees with
// keyed children.
type Keyed struct {
	Key   string
	Value any
}

type childShape uint8

const (
	noChildren childShape = iota
	sequenceChildren
	mappingChildren
)

// entry is a single child slot: either a subtree or a leaf value.
type entry struct {
	// key is only set for keyed children.
	key  string
	tree *Tree
	leaf any
}

func makeEntry(v any) entry {
	if t, ok := v.(*Tree); ok {
		if t == nil {
			return entry{}
		}
		return entry{tree: t}
	}
	return entry{leaf: v}
}

func (e *entry) value() any {
	if e.tree != nil {
		return e.tree
	}
	return e.leaf
}

// text resolves the display text of the child.
func (e *entry) text(logger Logger) string {
	if e.tree != nil {
		s, _ := e.tree.label.resolve(logger)
		return s
	}
	s, _ := stringify(e.leaf, logger)
	return s
}

var keyIndexOptions = []swiss.Option[string, int]{
	swiss.WithHash[string, int](func(k *string, seed uintptr) uintptr {
		return uintptr(xxhash.Sum64String(*k) ^ uint64(seed))
	}),
}

// childSet holds the children of a Tree. Children are either an ordered
// sequence or a keyed mapping. Keyed children are kept in insertion order
// with index mapping each key to its position in entries.
type childSet struct {
	shape   childShape
	entries []entry
	index   swiss.Map[string, int]
}

func (c *childSet) reset() {
	*c = childSet{}
}

func (c *childSet) append(v any) {
	c.shape = sequenceChildren
	c.entries = append(c.entries, makeEntry(v))
}

// put sets the child stored under key. An existing key keeps its position.
func (c *childSet) put(key string, v any) {
	if c.shape != mappingChildren {
		c.shape = mappingChildren
		c.index.Init(4, keyIndexOptions...)
	}
	e := makeEntry(v)
	e.key = key
	if i, ok := c.index.Get(key); ok {
		c.entries[i] = e
		return
	}
	c.index.Put(key, len(c.entries))
	c.entries = append(c.entries, e)
}

func (c *childSet) lookup(key string) (*entry, bool) {
	if c.shape != mappingChildren {
		return nil, false
	}
	i, ok := c.index.Get(key)
	if !ok {
		return nil, false
	}
	return &c.entries[i], true
}

// check verifies that the key index agrees with the entries.
func (c *childSet) check() error {
	if c.shape != mappingChildren {
		if c.shape == noChildren && len(c.entries) != 0 {
			return errors.AssertionFailedf("treefmt: %d children without a shape", len(c.entries))
		}
		return nil
	}
	if n := c.index.Len(); n != len(c.entries) {
		return errors.AssertionFailedf("treefmt: key index has %d keys for %d children", n, len(c.entries))
	}
	for i := range c.entries {
		if j, ok := c.index.Get(c.entries[i].key); !ok || j != i {
			return errors.AssertionFailedf("treefmt: key %q indexed at %d, stored at %d", c.entries[i].key, j, i)
		}
	}
	return nil
}
