// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/tidytab/tidytab/table"
)

func newPrintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "print <in.csv>",
		Short: "Print a CSV table as aligned text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}
			return withOutput(cmd, func(w io.Writer) error {
				return table.Fprint(w, t)
			})
		},
	}
	return cmd
}
