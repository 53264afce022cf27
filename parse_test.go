// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cockroachdb/treefmt/internal/testutils"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tree := testutils.CheckErr(Parse("root\n a\n b\n  b1\n"))
	require.Equal(t, "root", tree.Label().String())
	require.Equal(t, 2, tree.NumChildren())
	require.Equal(t, "a", tree.ChildAt(0))
	b, ok := tree.ChildAt(1).(*Tree)
	require.True(t, ok)
	require.Equal(t, "b", b.Label().String())
	require.Equal(t, "b1", b.ChildAt(0))

	tree = testutils.CheckErr(Parse("solo"))
	require.Equal(t, []string{"solo"}, tree.Lines())

	tree = testutils.CheckErr(Parse("x\ny\n"))
	require.Nil(t, tree.Label().Name)
	require.Equal(t, 2, tree.NumChildren())

	_, err := Parse("")
	require.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	tree := testutils.CheckErr(FromYAML([]byte(`
zeta: 1
alpha:
  - x
  - nested: true
empty:
base: &b
  k: v
copy: *b
`)))
	require.True(t, tree.IsKeyed())
	require.Nil(t, tree.Label().Name)
	// Document order, not sorted order.
	require.Equal(t, []string{"zeta", "alpha", "empty", "base", "copy"}, tree.Keys())

	v, ok := tree.FindChild("zeta")
	require.True(t, ok)
	require.Equal(t, "zeta: 1", v)

	v, ok = tree.FindChild("empty")
	require.True(t, ok)
	require.Equal(t, "empty", v)

	v, ok = tree.FindChild("alpha")
	require.True(t, ok)
	alpha := v.(*Tree)
	require.False(t, alpha.IsKeyed())
	require.Equal(t, "x", alpha.ChildAt(0))
	item := alpha.ChildAt(1).(*Tree)
	require.Nil(t, item.Label().Name)
	require.Equal(t, []string{"nested"}, item.Keys())

	v, ok = tree.FindChild("copy")
	require.True(t, ok)
	cp := v.(*Tree)
	require.Equal(t, "copy", cp.Label().String())
	require.Equal(t, []string{"k"}, cp.Keys())

	tree = testutils.CheckErr(FromYAML([]byte("just a scalar")))
	require.Equal(t, []string{"just a scalar"}, tree.Lines())

	_, err := FromYAML([]byte(""))
	require.Error(t, err)
	_, err = FromYAML([]byte("a: [1"))
	require.Error(t, err)
}

func TestFromYAMLAliasExpansion(t *testing.T) {
	// Every level refers to the previous one nine times, so the document
	// expands to 9^8 leaves.
	var buf strings.Builder
	buf.WriteString("l0: &l0 [x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= 8; i++ {
		refs := strings.TrimSuffix(strings.Repeat(fmt.Sprintf("*l%d, ", i-1), 9), ", ")
		fmt.Fprintf(&buf, "l%d: &l%d [%s]\n", i, i, refs)
	}
	_, err := FromYAML([]byte(buf.String()))
	require.Error(t, err)
	require.Contains(t, err.Error(), "aliases expand to more than")

	// Moderate reuse of anchors is fine.
	tree := testutils.CheckErr(FromYAML([]byte("a: &a [x, y]\nb: [*a, *a, *a]\n")))
	v, ok := tree.FindChild("b")
	require.True(t, ok)
	require.Equal(t, 3, v.(*Tree).NumChildren())
}
