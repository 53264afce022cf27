// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package testutils

import (
	"fmt"
	"testing"
)

// Logger is a logger that writes to a testing.TB and remembers the messages it
// was given.
type Logger struct {
	T        testing.TB
	Messages []string
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.record(format, args...)
}

func (l *Logger) record(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.Messages = append(l.Messages, msg)
	if l.T != nil {
		l.T.Log(msg)
	}
}
