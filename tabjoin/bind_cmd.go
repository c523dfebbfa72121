// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidytab/tidytab/table"
)

func newBindCmd() *cobra.Command {
	var byRows, byCols bool

	cmd := &cobra.Command{
		Use:   "bind <a.csv> <b.csv> [more.csv...]",
		Short: "Stack CSV tables vertically or horizontally",
		Long: `Bind concatenates tables without a matching condition. --rows stacks
them vertically, filling missing cells for columns a table lacks.
--cols stacks them horizontally and requires equal row counts.`,
		Example: `  tabjoin bind --rows 2023.csv 2024.csv
  tabjoin bind --cols ids.csv measurements.csv`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if byRows && byCols {
				return fmt.Errorf("--rows and --cols are mutually exclusive")
			}

			tabs := make([]*table.Table, len(args))
			for i, path := range args {
				t, err := readTable(cmd, path)
				if err != nil {
					return err
				}
				tabs[i] = t
			}

			var res *table.Table
			var err error
			if byCols {
				res, err = table.BindCols(tabs...)
			} else {
				res, err = table.BindRows(tabs...)
			}
			if err != nil {
				return err
			}
			return writeTable(cmd, res)
		},
	}

	cmd.Flags().BoolVar(&byRows, "rows", false, "stack tables vertically (the default)")
	cmd.Flags().BoolVar(&byCols, "cols", false, "stack tables horizontally")
	addFormatFlag(cmd)
	return cmd
}
