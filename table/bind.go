// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"strconv"

	"github.com/aclements/go-gg/generic/slice"
)

// BindRows stacks tables vertically. The result's column set is the
// union of the inputs' column sets, ordered by first appearance
// across the inputs; a table that lacks one of these columns
// contributes missing cells for it. Same-named columns must have the
// same element type in every input that has them; otherwise BindRows
// fails with *ColumnTypeError.
//
// Empty tables (no columns) are ignored.
func BindRows(tabs ...*Table) (*Table, error) {
	ts := tabs[:0:0]
	for _, t := range tabs {
		if t != nil && !t.isEmpty() {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return new(Table), nil
	}

	// Union of columns in first-seen order, with type agreement.
	var cols []string
	etype := make(map[string]reflect.Type)
	total := 0
	for _, t := range ts {
		total += t.Len()
		for _, c := range t.Columns() {
			et := reflect.TypeOf(t.Column(c)).Elem()
			if prev, ok := etype[c]; !ok {
				etype[c] = et
				cols = append(cols, c)
			} else if prev != et {
				return nil, &ColumnTypeError{c, prev, et}
			}
		}
	}

	b := new(Builder)
	for _, c := range cols {
		data, mask := stackColumn(ts, c, etype[c], total)
		b.Add(c, data).SetMissing(c, mask)
	}
	return b.Done(), nil
}

// stackColumn concatenates column c across tables, filling missing
// cells for tables that lack the column.
func stackColumn(ts []*Table, c string, etype reflect.Type, total int) (Slice, []bool) {
	// Common case: every table has the column and no cell is
	// missing.
	complete := true
	for _, t := range ts {
		if t.Column(c) == nil || t.Missing(c) != nil {
			complete = false
			break
		}
	}
	if complete {
		parts := make([]slice.T, len(ts))
		for i, t := range ts {
			parts[i] = t.Column(c)
		}
		return slice.Concat(parts...), nil
	}

	out := reflect.MakeSlice(reflect.SliceOf(etype), total, total)
	mask := make([]bool, total)
	any := false
	row := 0
	for _, t := range ts {
		col := t.Column(c)
		if col == nil {
			for i := 0; i < t.Len(); i++ {
				mask[row] = true
				any = true
				row++
			}
			continue
		}
		rv := reflect.ValueOf(col)
		miss := t.Missing(c)
		for i := 0; i < t.Len(); i++ {
			out.Index(row).Set(rv.Index(i))
			if miss != nil && miss[i] {
				mask[row] = true
				any = true
			}
			row++
		}
	}
	if !any {
		mask = nil
	}
	return out.Interface(), mask
}

// BindCols stacks tables horizontally. Every input must have the same
// number of rows; otherwise BindCols fails with
// *RowCountMismatchError. The result's columns are the concatenation
// of each input's columns; a column whose name already appeared in an
// earlier input is renamed with a "." suffix and its 1-based input
// position (for example, a colliding "x" from the second table
// becomes "x.2"), incrementing the suffix further if that name is
// taken too.
//
// Empty tables (no columns) are ignored.
func BindCols(tabs ...*Table) (*Table, error) {
	ts := tabs[:0:0]
	idxs := make([]int, 0, len(tabs))
	for i, t := range tabs {
		if t != nil && !t.isEmpty() {
			ts = append(ts, t)
			idxs = append(idxs, i)
		}
	}
	if len(ts) == 0 {
		return new(Table), nil
	}

	rows := ts[0].Len()
	for i, t := range ts[1:] {
		if t.Len() != rows {
			return nil, &RowCountMismatchError{rows, t.Len(), idxs[i+1]}
		}
	}

	b := new(Builder)
	for i, t := range ts {
		for _, c := range t.Columns() {
			name := c
			for n := i + 1; b.Has(name); n++ {
				name = c + "." + strconv.Itoa(n)
			}
			b.Add(name, t.Column(c)).SetMissing(name, t.Missing(c))
		}
	}
	return b.Done(), nil
}
