// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package table implements ordered, immutable, column-oriented tables
// and relational operations for combining them.
//
// A Table is a sequence of named columns, where each column is a
// sequence of values of a consistent type and every column has the
// same number of rows. Tables are combined with join operations
// (InnerJoin, LeftJoin, RightJoin, FullJoin, CrossJoin, SemiJoin,
// AntiJoin), which match rows on the equality of key columns, and
// bind operations (BindRows, BindCols), which concatenate tables
// without a matching condition.
//
// Cells may be missing. A missing cell carries its column's zero
// value plus a mark in the column's missing mask, and it never
// compares equal to anything during a join, including another missing
// cell.
package table

import (
	"fmt"
	"reflect"
)

// A Slice is a Go slice value.
//
// This is primarily a documentation type. Values of this type must be
// Go slices.
type Slice interface{}

func reflectSlice(s Slice) reflect.Value {
	rv := reflect.ValueOf(s)
	if rv.Kind() != reflect.Slice {
		panic(fmt.Sprintf("expected slice; got %T", s))
	}
	return rv
}

// A Table is an immutable, ordered set of named columns of equal
// length.
//
// The zero value of Table is the "empty table", which has no columns
// and no rows.
type Table struct {
	cols     map[string]Slice
	missing  map[string][]bool
	colNames []string
	len      int
}

// A Builder constructs a Table one column at a time.
type Builder struct {
	t Table
}

// NewBuilder returns a new Builder that starts with the columns of
// table t. If t is nil, it starts with no columns.
func NewBuilder(t *Table) *Builder {
	b := new(Builder)
	if t != nil {
		for _, col := range t.Columns() {
			b.Add(col, t.Column(col))
			if m := t.Missing(col); m != nil {
				b.SetMissing(col, m)
			}
		}
	}
	return b
}

// Add adds a column named "name" with the given data to Builder b and
// returns b. If b already has a column with this name, Add replaces
// it in place. If data is nil, Add removes the named column instead.
//
// Add panics if data is non-nil and not a slice, or if its length
// differs from the length of the table's other columns.
func (b *Builder) Add(name string, data Slice) *Builder {
	if data == nil {
		// Remove the column.
		if _, ok := b.t.cols[name]; !ok {
			return b
		}
		delete(b.t.cols, name)
		delete(b.t.missing, name)
		for i, n := range b.t.colNames {
			if n == name {
				copy(b.t.colNames[i:], b.t.colNames[i+1:])
				b.t.colNames = b.t.colNames[:len(b.t.colNames)-1]
				break
			}
		}
		return b
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Slice {
		panic(fmt.Sprintf("column %q is not a slice (kind %v)", name, rv.Kind()))
	}
	dlen := rv.Len()
	_, replacing := b.t.cols[name]
	alone := replacing && len(b.t.colNames) == 1
	if len(b.t.colNames) > 0 && !alone && dlen != b.t.len {
		panic(fmt.Sprintf("cannot add column %q with %d elements to table with %d rows", name, dlen, b.t.len))
	}

	if b.t.cols == nil {
		b.t.cols = make(map[string]Slice)
	}
	if _, ok := b.t.cols[name]; !ok {
		b.t.colNames = append(b.t.colNames, name)
	}
	b.t.cols[name] = data
	delete(b.t.missing, name)
	b.t.len = dlen
	return b
}

// SetMissing records which rows of column "name" are missing and
// returns b. A nil mask marks every cell present. SetMissing panics
// if the named column does not exist or if the mask's length differs
// from the table's row count.
func (b *Builder) SetMissing(name string, mask []bool) *Builder {
	if _, ok := b.t.cols[name]; !ok {
		panic(fmt.Sprintf("unknown column %q", name))
	}
	if mask == nil {
		delete(b.t.missing, name)
		return b
	}
	if len(mask) != b.t.len {
		panic(fmt.Sprintf("missing mask for column %q has %d elements; table has %d rows", name, len(mask), b.t.len))
	}
	any := false
	for _, m := range mask {
		if m {
			any = true
			break
		}
	}
	if !any {
		delete(b.t.missing, name)
		return b
	}
	if b.t.missing == nil {
		b.t.missing = make(map[string][]bool)
	}
	b.t.missing[name] = mask
	return b
}

// Has returns whether Builder b has a column named "name".
func (b *Builder) Has(name string) bool {
	_, ok := b.t.cols[name]
	return ok
}

// Done returns the constructed Table and resets b.
func (b *Builder) Done() *Table {
	if len(b.t.colNames) == 0 {
		b.t = Table{}
		return new(Table)
	}
	t := b.t
	b.t = Table{}
	return &t
}

// Len returns the number of rows in Table t.
func (t *Table) Len() int {
	return t.len
}

// Columns returns the names of t's columns in order. The returned
// slice must not be modified. Columns returns nil if t has no
// columns.
func (t *Table) Columns() []string {
	return t.colNames
}

// Column returns the data of the named column, or nil if there is no
// such column. The returned slice must not be modified.
func (t *Table) Column(name string) Slice {
	return t.cols[name]
}

// MustColumn is like Column, but panics if there is no such column.
func (t *Table) MustColumn(name string) Slice {
	if c := t.Column(name); c != nil {
		return c
	}
	panic(fmt.Sprintf("unknown column %q", name))
}

// Missing returns the missing mask of the named column, or nil if the
// column has no missing cells (or does not exist). mask[i] reports
// whether row i of the column is missing. The returned slice must not
// be modified.
func (t *Table) Missing(name string) []bool {
	return t.missing[name]
}

// isMissing reports whether cell (name, row) is missing.
func (t *Table) isMissing(name string, row int) bool {
	m := t.missing[name]
	return m != nil && m[row]
}

// isEmpty reports whether t is the empty table.
func (t *Table) isEmpty() bool {
	return len(t.colNames) == 0
}
