// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tabstat computes grouped summary statistics over tables.
//
// An aggregation is described by a set of grouping columns and a list
// of Aggregates, and produces a table with one row per distinct group
// key and one column per requested statistic:
//
//	tabstat.Agg(tab, []string{"band"}, tabstat.Mean("plays"), tabstat.Count())
package tabstat

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-moremath/stats"

	"github.com/tidytab/tidytab/table"
)

// An Aggregate computes summary columns over groups of rows.
type Aggregate interface {
	// outputs returns the names of the result columns this
	// aggregate produces over the named input columns.
	outputs() []string

	// inputs returns the input column names this aggregate reads.
	inputs() []string

	// compute returns the statistic for one output column given
	// the group's non-missing values of the corresponding input
	// column. ok is false if the statistic is undefined for the
	// group (for example, no non-missing values).
	compute(col int, xs []float64, n int) (v float64, ok bool)
}

// Agg groups t by the given key columns and computes the requested
// statistics for each group. The result has the key columns followed
// by one column per statistic, one row per group, in first-seen group
// order. With no key columns, the result is a single row summarizing
// all of t.
//
// Aggregate input columns must hold ints or floats; missing cells are
// excluded from the statistics. A group with no usable values gets a
// missing cell.
func Agg(t *table.Table, by []string, aggs ...Aggregate) (*table.Table, error) {
	for _, a := range aggs {
		for _, c := range a.inputs() {
			col := t.Column(c)
			if col == nil {
				return nil, fmt.Errorf("tabstat: unknown column %q", c)
			}
			if !numeric(col) {
				return nil, fmt.Errorf("tabstat: column %q is not numeric", c)
			}
		}
	}
	for _, c := range by {
		if t.Column(c) == nil {
			return nil, fmt.Errorf("tabstat: unknown column %q", c)
		}
	}

	g := table.GroupBy(t, by...)

	b := table.NewBuilder(g.Labels())
	for _, a := range aggs {
		ins := a.inputs()
		for oi, out := range a.outputs() {
			vals := make([]float64, g.Len())
			var mask []bool
			for gi := 0; gi < g.Len(); gi++ {
				gt := g.Table(gi)
				var xs []float64
				if len(ins) > 0 {
					xs = floatColumn(gt, ins[oi])
				}
				v, ok := a.compute(oi, xs, gt.Len())
				if !ok {
					if mask == nil {
						mask = make([]bool, g.Len())
					}
					mask[gi] = true
					continue
				}
				vals[gi] = v
			}
			b.Add(out, vals).SetMissing(out, mask)
		}
	}
	return b.Done(), nil
}

// floatColumn returns the non-missing values of column c as floats.
func floatColumn(t *table.Table, c string) []float64 {
	rv := reflect.ValueOf(t.Column(c))
	miss := t.Missing(c)
	xs := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if miss != nil && miss[i] {
			continue
		}
		v := rv.Index(i)
		switch v.Kind() {
		case reflect.Float32, reflect.Float64:
			xs = append(xs, v.Float())
		default:
			xs = append(xs, float64(v.Int()))
		}
	}
	return xs
}

func numeric(col table.Slice) bool {
	switch reflect.TypeOf(col).Elem().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

// sampleAgg aggregates each input column independently with a
// function of its sample.
type sampleAgg struct {
	prefix string
	cols   []string
	fn     func(xs []float64) float64
}

func (a sampleAgg) inputs() []string { return a.cols }

func (a sampleAgg) outputs() []string {
	outs := make([]string, len(a.cols))
	for i, c := range a.cols {
		outs[i] = a.prefix + " " + c
	}
	return outs
}

func (a sampleAgg) compute(col int, xs []float64, n int) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	return a.fn(xs), true
}

// Mean returns an Aggregate that computes the arithmetic mean of each
// named column, producing columns named "mean <col>".
func Mean(cols ...string) Aggregate {
	return sampleAgg{"mean", cols, func(xs []float64) float64 {
		return stats.Sample{Xs: xs}.Mean()
	}}
}

// Median returns an Aggregate that computes the median of each named
// column, producing columns named "median <col>".
func Median(cols ...string) Aggregate {
	return Quantile(0.5, cols...)
}

// Quantile returns an Aggregate that computes the q'th quantile
// (0 ≤ q ≤ 1) of each named column, producing columns named
// "q<q> <col>" ("median <col>" for q = 0.5).
func Quantile(q float64, cols ...string) Aggregate {
	prefix := fmt.Sprintf("q%v", q)
	if q == 0.5 {
		prefix = "median"
	}
	return sampleAgg{prefix, cols, func(xs []float64) float64 {
		return stats.Sample{Xs: xs}.Quantile(q)
	}}
}

// Min returns an Aggregate that computes the minimum of each named
// column, producing columns named "min <col>".
func Min(cols ...string) Aggregate {
	return sampleAgg{"min", cols, func(xs []float64) float64 {
		min, _ := stats.Bounds(xs)
		return min
	}}
}

// Max returns an Aggregate that computes the maximum of each named
// column, producing columns named "max <col>".
func Max(cols ...string) Aggregate {
	return sampleAgg{"max", cols, func(xs []float64) float64 {
		_, max := stats.Bounds(xs)
		return max
	}}
}

// countAgg counts the rows of each group, missing or not.
type countAgg struct{}

func (countAgg) inputs() []string  { return nil }
func (countAgg) outputs() []string { return []string{"count"} }
func (countAgg) compute(col int, xs []float64, n int) (float64, bool) {
	return float64(n), true
}

// Count returns an Aggregate that counts the rows in each group,
// producing a column named "count".
func Count() Aggregate {
	return countAgg{}
}
