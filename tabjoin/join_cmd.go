// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidytab/tidytab/table"
)

func newJoinCmd() *cobra.Command {
	var how string
	var on []string

	cmd := &cobra.Command{
		Use:   "join <left.csv> <right.csv>",
		Short: "Join two CSV tables on shared key columns",
		Long: `Join combines the rows of two tables on the equality of their key
columns. With no --on, the keys default to the columns the tables have
in common. Empty and "NA" cells are missing values and never match.`,
		Example: `  tabjoin join --how inner bands.csv instruments.csv
  tabjoin join --how left --on name bands.csv instruments.csv
  tabjoin join --how cross suits.csv ranks.csv`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}
			r, err := readTable(cmd, args[1])
			if err != nil {
				return err
			}

			var res *table.Table
			switch how {
			case "inner":
				res, err = table.InnerJoin(l, r, on...)
			case "left":
				res, err = table.LeftJoin(l, r, on...)
			case "right":
				res, err = table.RightJoin(l, r, on...)
			case "full":
				res, err = table.FullJoin(l, r, on...)
			case "semi":
				res, err = table.SemiJoin(l, r, on...)
			case "anti":
				res, err = table.AntiJoin(l, r, on...)
			case "cross":
				if len(on) > 0 {
					return fmt.Errorf("--on does not apply to a cross join")
				}
				res = table.CrossJoin(l, r)
			default:
				return fmt.Errorf("unknown join variant %q", how)
			}
			if err != nil {
				return err
			}
			return writeTable(cmd, res)
		},
	}

	cmd.Flags().StringVar(&how, "how", "inner", "join variant: inner, left, right, full, cross, semi, or anti")
	cmd.Flags().StringSliceVar(&on, "on", nil, "key `columns` (default: all shared columns)")
	addFormatFlag(cmd)
	return cmd
}
