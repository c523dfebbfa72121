// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"
)

// ReadCSV reads a CSV document whose first record names the columns
// and returns it as a Table. Empty and "NA" cells become missing
// cells. If coerce is true, numeric-looking columns are converted as
// in TableFromStrings.
func ReadCSV(r io.Reader, coerce bool) (*Table, error) {
	recs, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return new(Table), nil
	}
	return TableFromStrings(recs[0], recs[1:], coerce), nil
}

// WriteCSV writes t as a CSV document with a header record. Missing
// cells are written as empty cells.
func WriteCSV(w io.Writer, t *Table) error {
	if t.isEmpty() {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns()); err != nil {
		return err
	}

	cols := make([]reflect.Value, len(t.Columns()))
	miss := make([][]bool, len(t.Columns()))
	for i, c := range t.Columns() {
		cols[i] = reflect.ValueOf(t.Column(c))
		miss[i] = t.Missing(c)
	}

	rec := make([]string, len(cols))
	for i := 0; i < t.Len(); i++ {
		for ci, col := range cols {
			if m := miss[ci]; m != nil && m[i] {
				rec[ci] = ""
				continue
			}
			rec[ci] = fmt.Sprint(col.Index(i).Interface())
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
