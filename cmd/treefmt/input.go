// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/treefmt"
)

// readTree reads the hierarchy named by args (stdin if args is empty) in the
// given format. An empty format is inferred from the file extension.
func readTree(stdin io.Reader, args []string, format string) (*treefmt.Tree, error) {
	var data []byte
	var err error
	name := "<stdin>"
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		data, err = os.ReadFile(name)
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	if format == "" {
		format = formatForPath(name)
	}
	if verbose {
		logger.Infof("read %d bytes from %s as %s", len(data), name, format)
	}

	var t *treefmt.Tree
	switch format {
	case "indent":
		t, err = treefmt.Parse(string(data))
	case "yaml", "json":
		t, err = treefmt.FromYAML(data)
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return t, nil
}

func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	default:
		return "indent"
	}
}
