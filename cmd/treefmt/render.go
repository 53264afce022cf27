// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/redact"
	"github.com/cockroachdb/treefmt"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	renderFancy    bool
	renderWrap     int
	renderWidth    string
	renderKeepRoot bool
	renderRedact   bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "print a hierarchy as a tree",
	Long:  ``,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	t, err := readTree(cmd.InOrStdin(), args, inputFormat)
	if err != nil {
		return err
	}
	width, err := parseWidth(renderWidth)
	if err != nil {
		return err
	}
	if err := t.Apply(true /* cascade */,
		treefmt.Fancy(renderFancy), treefmt.Wrap(renderWrap), treefmt.Width(width)); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if renderRedact {
		_, err = fmt.Fprint(out, string(redact.Sprint(t).Redact()))
		return err
	}
	_, err = fmt.Fprint(out, t.RenderString(treefmt.RenderOptions{
		KeepRootConnector: renderKeepRoot,
		Logger:            logger,
	}))
	return err
}

// parseWidth parses the --width flag. "auto" uses the width of the terminal
// attached to stdout, or no limit if stdout is not a terminal.
func parseWidth(s string) (int, error) {
	if s == "auto" {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return 0, nil
		}
		w, _, err := term.GetSize(fd)
		if err != nil {
			logger.Errorf("treefmt: terminal size unavailable: %v", err)
			return 0, nil
		}
		return w, nil
	}
	w, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid --width %q", s)
	}
	return w, nil
}
