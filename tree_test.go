// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestAddChildSequence(t *testing.T) {
	tree := New("r")
	require.False(t, tree.IsKeyed())
	require.Equal(t, 0, tree.NumChildren())

	require.NoError(t, tree.AddChild("a"))
	require.NoError(t, tree.AddChild(New("b")))
	require.Equal(t, 2, tree.NumChildren())
	require.Equal(t, "a", tree.ChildAt(0))
	require.IsType(t, &Tree{}, tree.ChildAt(1))
	require.Nil(t, tree.Keys())

	err := tree.AddKeyedChild("k", "v")
	require.True(t, errors.Is(err, ErrKeyedSequence), "%v", err)
	require.Contains(t, err.Error(), `adding child "k" to "r"`)
	require.Equal(t, 2, tree.NumChildren())
}

func TestAddChildMapping(t *testing.T) {
	tree := New("r")
	require.NoError(t, tree.AddKeyedChild("k1", "v1"))
	require.True(t, tree.IsKeyed())
	require.NoError(t, tree.AddKeyedChild("k2", "v2"))
	require.NoError(t, tree.AddKeyedChild("k1", "v1'"))
	require.Equal(t, []string{"k1", "k2"}, tree.Keys())
	require.Equal(t, "v1'", tree.ChildAt(0))

	err := tree.AddChild("x")
	require.True(t, errors.Is(err, ErrKeyRequired), "%v", err)
	require.Equal(t, 2, tree.NumChildren())
	require.NoError(t, tree.children.check())
}

func TestManyKeys(t *testing.T) {
	tree := New("r")
	const n = 500
	for i := 0; i < n; i++ {
		require.NoError(t, tree.AddKeyedChild(fmt.Sprintf("key%03d", i), i))
	}
	for i := 0; i < n; i += 7 {
		require.NoError(t, tree.AddKeyedChild(fmt.Sprintf("key%03d", i), -i))
	}
	require.NoError(t, tree.children.check())
	require.Equal(t, n, tree.NumChildren())
	for i := 0; i < n; i++ {
		v, ok := tree.FindChild(fmt.Sprintf("key%03d", i))
		require.True(t, ok)
		if i%7 == 0 {
			require.Equal(t, -i, v)
		} else {
			require.Equal(t, i, v)
		}
	}
}

func TestSetChildren(t *testing.T) {
	tree := NewKeyed("r", Keyed{Key: "a", Value: 1})
	tree.SetChildren("x", "y")
	require.False(t, tree.IsKeyed())
	require.Equal(t, 2, tree.NumChildren())

	tree.SetChildren()
	require.Equal(t, 0, tree.NumChildren())
	// Without children the tree can become keyed again.
	require.NoError(t, tree.AddKeyedChild("a", 1))
	require.True(t, tree.IsKeyed())
	require.Equal(t, []string{"r", " |->1"}, tree.Lines())
}

func TestFindChild(t *testing.T) {
	sub := New("Beta", "x")
	seq := New("r", "Alpha", sub, nil, Label{Name: "École"}, 7)

	v, ok := seq.FindChild("alpha")
	require.True(t, ok)
	require.Equal(t, "Alpha", v)

	v, ok = seq.FindChild("BETA")
	require.True(t, ok)
	require.Same(t, sub, v)

	v, ok = seq.FindChild("école")
	require.True(t, ok)
	require.Equal(t, Label{Name: "École"}, v)

	v, ok = seq.FindChild("7")
	require.True(t, ok)
	require.Equal(t, 7, v)

	v, ok = seq.FindChild("gamma")
	require.False(t, ok)
	require.Nil(t, v)

	keyed := NewKeyed("r", Keyed{Key: "Key", Value: sub})
	v, ok = keyed.FindChild("Key")
	require.True(t, ok)
	require.Same(t, sub, v)
	// Keys must match exactly.
	_, ok = keyed.FindChild("key")
	require.False(t, ok)

	_, ok = New("empty").FindChild("x")
	require.False(t, ok)
}

func TestWalk(t *testing.T) {
	tree := New("r",
		"a",
		New("b", "b1", New("b2", "b21")),
		nil,
		"c",
	)
	var buf strings.Builder
	tree.Walk(func(depth int, v any) bool {
		name := fmt.Sprint(v)
		if st, ok := v.(*Tree); ok {
			name = st.Label().String()
		}
		fmt.Fprintf(&buf, "%s%s\n", strings.Repeat("  ", depth), name)
		return name != "b2"
	})
	require.Equal(t, "r\n  a\n  b\n    b1\n    b2\n  c\n", buf.String())
}

func TestChildSetCheck(t *testing.T) {
	tree := NewKeyed("r", Keyed{Key: "a", Value: 1}, Keyed{Key: "b", Value: 2})
	require.NoError(t, tree.children.check())

	tree.children.entries[0].key = "z"
	require.Error(t, tree.children.check())
	require.Panics(t, func() { tree.checkInvariants() })
}
