// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treefmt

import (
	"fmt"

	"github.com/cockroachdb/redact"
)

// Label describes the text shown for a node. The text is resolved in the
// following order:
//
//  1. the result of Format, called with Args, if Format is set;
//  2. the string form of Data, if Data is not nil;
//  3. the string form of Name, if Name is not nil;
//  4. the empty string.
//
// A Label can be used as the name of a Tree or as a leaf value.
type Label struct {
	Name   any
	Data   any
	Format func(args ...any) string
	Args   []any
}

// String implements fmt.Stringer.
func (l Label) String() string {
	s, _ := l.resolve(NoopLogger{})
	return s
}

// resolve returns the text for the label and whether that text can be
// reported without redaction.
//
// A Format func that panics is reported to logger and skipped.
func (l Label) resolve(logger Logger) (text string, safe bool) {
	if l.Format != nil {
		if s, ok := callFormat(l.Format, l.Args, logger); ok {
			return s, false
		}
	}
	if l.Data != nil {
		return stringify(l.Data, logger)
	}
	if l.Name != nil {
		return stringify(l.Name, logger)
	}
	return "", true
}

func callFormat(fn func(args ...any) string, args []any, logger Logger) (s string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("treefmt: label formatter panicked: %v", r)
			s, ok = "", false
		}
	}()
	return fn(args...), true
}

// stringify returns the display text of a leaf or name value. Values whose
// String or Error method panics resolve to the empty string (which is drawn as
// the nameless glyph) and the panic is reported to logger.
func stringify(v any, logger Logger) (text string, safe bool) {
	_, safe = v.(redact.SafeValue)
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, safe
	case Label:
		return t.resolve(logger)
	case *Label:
		if t == nil {
			return "", true
		}
		return t.resolve(logger)
	case fmt.Stringer:
		return guardedString(v, t.String, logger), safe
	case error:
		return guardedString(v, t.Error, logger), safe
	default:
		return fmt.Sprint(v), safe
	}
}

func guardedString(v any, fn func() string, logger Logger) (s string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("treefmt: stringifying %T panicked: %v", v, r)
			s = ""
		}
	}()
	return fn()
}
