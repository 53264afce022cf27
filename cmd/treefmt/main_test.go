// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/treefmt"
	"github.com/stretchr/testify/require"
)

func resetFlags() {
	inputFormat = ""
	verbose = false
	renderFancy = false
	renderWrap = 0
	renderWidth = "0"
	renderKeepRoot = false
	renderRedact = false
}

func runRenderWith(t *testing.T, input string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	renderCmd.SetIn(strings.NewReader(input))
	renderCmd.SetOut(&out)
	require.NoError(t, runRender(renderCmd, args))
	return out.String()
}

func TestRender(t *testing.T) {
	defer resetFlags()

	resetFlags()
	require.Equal(t, "R\n |->a\n |->b\n", runRenderWith(t, "R\n a\n b\n"))

	renderFancy = true
	require.Equal(t, "R\n├─a\n└─b\n", runRenderWith(t, "R\n a\n b\n"))

	renderKeepRoot = true
	require.Equal(t, "└─R\n  └─a\n", runRenderWith(t, "R\n a\n"))

	resetFlags()
	inputFormat = "json"
	renderFancy = true
	require.Equal(t, "┐\n└─k: v\n", runRenderWith(t, `{"k": "v"}`))

	resetFlags()
	renderRedact = true
	require.Equal(t, "‹×›\n |->‹×›\n", runRenderWith(t, "R\n a\n"))
}

func TestRenderFile(t *testing.T) {
	defer resetFlags()
	resetFlags()

	path := filepath.Join(t.TempDir(), "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items:\n  - one\n"), 0644))
	require.Equal(t, "\\\n |->items\n     |->one\n", runRenderWith(t, "", path))

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	err := runRender(renderCmd, []string{filepath.Join(t.TempDir(), "missing")})
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading")
}

func TestRenderBadInput(t *testing.T) {
	defer resetFlags()
	resetFlags()

	renderCmd.SetIn(strings.NewReader("a\n   b\n  c\n"))
	err := runRender(renderCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "inconsistent indentation")

	inputFormat = "xml"
	renderCmd.SetIn(strings.NewReader("a"))
	err = runRender(renderCmd, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown input format "xml"`)

	resetFlags()
	renderWidth = "wide"
	renderCmd.SetIn(strings.NewReader("a"))
	require.Error(t, runRender(renderCmd, nil))
}

func TestParseWidth(t *testing.T) {
	w, err := parseWidth("12")
	require.NoError(t, err)
	require.Equal(t, 12, w)

	w, err = parseWidth("auto")
	require.NoError(t, err)
	require.GreaterOrEqual(t, w, 0)

	_, err = parseWidth("")
	require.Error(t, err)
}

func TestFormatForPath(t *testing.T) {
	require.Equal(t, "yaml", formatForPath("a/b.YML"))
	require.Equal(t, "yaml", formatForPath("b.yaml"))
	require.Equal(t, "json", formatForPath("b.json"))
	require.Equal(t, "indent", formatForPath("<stdin>"))
	require.Equal(t, "indent", formatForPath("tree.txt"))
}

func TestCollectStats(t *testing.T) {
	tree := treefmt.New("r",
		"a",
		treefmt.NewKeyed("k", treefmt.Keyed{Key: "x", Value: "1"}),
		treefmt.New("s", treefmt.New("t", "u")),
	)
	levels := collectStats(tree)
	require.Equal(t, []levelStats{
		{subtrees: 1},
		{subtrees: 2, keyed: 1, leaves: 1},
		{subtrees: 1, leaves: 1},
		{leaves: 1},
	}, levels)

	var buf bytes.Buffer
	writeStats(&buf, levels)
	require.Contains(t, buf.String(), "DEPTH")
	require.Contains(t, buf.String(), "TOTAL")
}
