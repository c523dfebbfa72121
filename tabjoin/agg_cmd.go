// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tidytab/tidytab/tabstat"
)

func newAggCmd() *cobra.Command {
	var by, mean, median, min, max []string
	var count bool

	cmd := &cobra.Command{
		Use:   "agg <in.csv>",
		Short: "Compute grouped summary statistics",
		Long: `Agg groups the table's rows by the --by columns and computes one
summary row per group. With no --by, it summarizes the whole table in
a single row. Missing cells are excluded from the statistics.`,
		Example: `  tabjoin agg --by band --mean plays --count members.csv
  tabjoin agg --median weight --min weight --max weight parts.csv`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}

			var aggs []tabstat.Aggregate
			if len(mean) > 0 {
				aggs = append(aggs, tabstat.Mean(mean...))
			}
			if len(median) > 0 {
				aggs = append(aggs, tabstat.Median(median...))
			}
			if len(min) > 0 {
				aggs = append(aggs, tabstat.Min(min...))
			}
			if len(max) > 0 {
				aggs = append(aggs, tabstat.Max(max...))
			}
			if count {
				aggs = append(aggs, tabstat.Count())
			}
			if len(aggs) == 0 {
				return fmt.Errorf("no statistics requested (use --mean, --median, --min, --max, or --count)")
			}

			res, err := tabstat.Agg(t, by, aggs...)
			if err != nil {
				return err
			}
			return writeTable(cmd, res)
		},
	}

	cmd.Flags().StringSliceVar(&by, "by", nil, "group by `columns`")
	cmd.Flags().StringSliceVar(&mean, "mean", nil, "`columns` to average")
	cmd.Flags().StringSliceVar(&median, "median", nil, "`columns` to take the median of")
	cmd.Flags().StringSliceVar(&min, "min", nil, "`columns` to take the minimum of")
	cmd.Flags().StringSliceVar(&max, "max", nil, "`columns` to take the maximum of")
	cmd.Flags().BoolVar(&count, "count", false, "count the rows in each group")
	addFormatFlag(cmd)
	return cmd
}
