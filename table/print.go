// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
)

// Fprint writes t to w as aligned text. Each column is formatted with
// the corresponding format from formats, defaulting to %v for columns
// beyond len(formats). Numeric columns are right-aligned; all others
// are left-aligned. Missing cells print as "NA".
func Fprint(w io.Writer, t *Table, formats ...string) error {
	if t.isEmpty() {
		return nil
	}

	ncol := len(t.Columns())
	cells := make([][]string, ncol)
	rightAlign := make([]bool, ncol)
	for ci, name := range t.Columns() {
		format := "%v"
		if ci < len(formats) {
			format = formats[ci]
		}
		col := reflect.ValueOf(t.Column(name))
		miss := t.Missing(name)

		cells[ci] = make([]string, t.Len()+1)
		cells[ci][0] = name
		for i := 0; i < t.Len(); i++ {
			if miss != nil && miss[i] {
				cells[ci][i+1] = "NA"
				continue
			}
			cells[ci][i+1] = fmt.Sprintf(format, col.Index(i).Interface())
		}

		switch col.Type().Elem().Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
			reflect.Float32, reflect.Float64:
			rightAlign[ci] = true
		}
	}

	widths := make([]int, ncol)
	for ci := range cells {
		for _, cell := range cells[ci] {
			if len(cell) > widths[ci] {
				widths[ci] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i := 0; i <= t.Len(); i++ {
		b.Reset()
		for ci := range cells {
			if ci > 0 {
				b.WriteString("  ")
			}
			cell := cells[ci][i]
			pad := widths[ci] - len(cell)
			// Headers of right-aligned columns are still
			// left-aligned, matching the data width.
			right := rightAlign[ci] && i > 0
			if right {
				b.WriteString(strings.Repeat(" ", pad))
			}
			b.WriteString(cell)
			if !right && ci < ncol-1 {
				b.WriteString(strings.Repeat(" ", pad))
			}
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// Print writes t to standard output as aligned text. See Fprint.
func Print(t *Table, formats ...string) error {
	return Fprint(os.Stdout, t, formats...)
}
