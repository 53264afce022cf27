// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package testutils contains helpers shared by tests.
package testutils

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

// RequireLines fails the test with a unified diff if actual differs from
// expected.
func RequireLines(t testing.TB, expected, actual []string) {
	t.Helper()
	a := strings.Join(expected, "\n") + "\n"
	b := strings.Join(actual, "\n") + "\n"
	if a == b {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a),
		B:        difflib.SplitLines(b),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  2,
	})
	if err != nil {
		t.Fatal(err)
	}
	t.Fatalf("lines differ:\n%s", diff)
}

// CheckErr returns v, panicking if err is not nil. It shortens test setup
// code that is not expected to fail:
//
//	tree := testutils.CheckErr(treefmt.Parse(input))
func CheckErr[V any](v V, err error) V {
	if err != nil {
		panic(err)
	}
	return v
}
