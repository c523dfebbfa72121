// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tidytab/tidytab/table"
)

// readTable reads one CSV input. A path of "-" reads stdin.
func readTable(cmd *cobra.Command, path string) (*table.Table, error) {
	noCoerce, _ := cmd.Flags().GetBool("no-coerce")

	f := os.Stdin
	if path != "-" {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
	}
	t, err := table.ReadCSV(f, !noCoerce)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// withOutput runs fn with the output destination named by the -o
// flag, defaulting to stdout.
func withOutput(cmd *cobra.Command, fn func(w io.Writer) error) error {
	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		return fn(os.Stdout)
	}
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeTable writes t in the format selected by the --format flag.
func writeTable(cmd *cobra.Command, t *table.Table) error {
	format, _ := cmd.Flags().GetString("format")
	return withOutput(cmd, func(w io.Writer) error {
		switch format {
		case "", "csv":
			return table.WriteCSV(w, t)
		case "text":
			return table.Fprint(w, t)
		default:
			return fmt.Errorf("unknown format %q (want csv or text)", format)
		}
	})
}

// addFormatFlag registers --format on commands that emit tables.
func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().String("format", "csv", "output format: csv or text")
}
