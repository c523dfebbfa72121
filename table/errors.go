// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
)

// An AmbiguousKeyError indicates that a join was given no key columns
// and the two tables have no column names in common, so the key set
// cannot be inferred.
type AmbiguousKeyError struct {
	Left, Right []string
}

func (e *AmbiguousKeyError) Error() string {
	return fmt.Sprintf("table: cannot infer join key: no common columns between %v and %v", e.Left, e.Right)
}

// An UnknownKeyError indicates that a join key column is absent from
// one of the tables being joined.
type UnknownKeyError struct {
	Key  string
	Side string // "left" or "right"
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("table: join key %q is not a column of the %s table", e.Key, e.Side)
}

// A ColumnTypeError indicates that two columns that must hold values
// of the same type do not: either a join key column with different
// element types on the two sides, or same-named columns of different
// element types passed to BindRows.
type ColumnTypeError struct {
	Col    string
	T1, T2 reflect.Type
}

func (e *ColumnTypeError) Error() string {
	return fmt.Sprintf("table: column %q has conflicting element types %s and %s", e.Col, e.T1, e.T2)
}

// A RowCountMismatchError indicates that BindCols was given tables
// with differing row counts.
type RowCountMismatchError struct {
	Want, Got int
	Arg       int // index of the offending table argument
}

func (e *RowCountMismatchError) Error() string {
	return fmt.Sprintf("table: cannot bind columns: table %d has %d rows; want %d", e.Arg, e.Got, e.Want)
}
