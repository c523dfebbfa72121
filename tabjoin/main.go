// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tabjoin combines, summarizes, and plots CSV tables.
//
// tabjoin reads CSV files (with a header row; "-" means stdin) into
// column tables, applies a relational operation, and writes the
// result as CSV, aligned text, or SVG:
//
//	tabjoin join --how left --on name bands.csv instruments.csv
//	tabjoin bind --rows 2023.csv 2024.csv
//	tabjoin agg --by band --mean plays --count members.csv
//	tabjoin print result.csv
//	tabjoin plot --spec plot.yaml points.csv -o points.svg
package main

import (
	"log"

	"github.com/spf13/cobra"
)

func main() {
	log.SetPrefix("tabjoin: ")
	log.SetFlags(0)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabjoin",
		Short:         "Combine, summarize, and plot CSV tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("output", "o", "", "write output to `file` (default: stdout)")
	root.PersistentFlags().Bool("no-coerce", false, "keep all CSV columns as strings")

	root.AddCommand(newJoinCmd())
	root.AddCommand(newBindCmd())
	root.AddCommand(newAggCmd())
	root.AddCommand(newPrintCmd())
	root.AddCommand(newPlotCmd())
	return root
}
