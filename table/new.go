// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"reflect"
	"strconv"
)

// TableFromStructs converts a slice of structs into a Table whose
// columns correspond to the structs' exported fields. Exported
// anonymous struct fields are flattened into their promoted fields;
// unexported fields are ignored.
//
// TableFromStructs panics if ss is not a slice of structs.
func TableFromStructs(ss Slice) *Table {
	rv := reflect.ValueOf(ss)
	if rv.Kind() != reflect.Slice {
		panic("TableFromStructs: not a slice")
	}
	et := rv.Type().Elem()
	if et.Kind() != reflect.Struct {
		panic("TableFromStructs: not a slice of structs")
	}

	type field struct {
		name string
		typ  reflect.Type
		path []int
	}
	var fields []field
	var walk func(t reflect.Type, base []int)
	walk = func(t reflect.Type, base []int) {
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.PkgPath != "" {
				continue
			}
			path := append(append([]int(nil), base...), i)
			if f.Anonymous && f.Type.Kind() == reflect.Struct {
				walk(f.Type, path)
				continue
			}
			fields = append(fields, field{f.Name, f.Type, path})
		}
	}
	walk(et, nil)

	n := rv.Len()
	b := new(Builder)
	for _, f := range fields {
		col := reflect.MakeSlice(reflect.SliceOf(f.typ), n, n)
		for i := 0; i < n; i++ {
			col.Index(i).Set(rv.Index(i).FieldByIndex(f.path))
		}
		b.Add(f.name, col.Interface())
	}
	return b.Done()
}

// TableFromStrings converts a matrix of strings into a Table with the
// given column names. Cells that are empty or "NA" become missing
// cells. If coerce is true, columns whose non-missing cells all parse
// as ints become []int columns, and otherwise columns whose
// non-missing cells all parse as float64s become []float64 columns.
//
// TableFromStrings panics if any row's length differs from the number
// of column names.
func TableFromStrings(cols []string, rows [][]string, coerce bool) *Table {
	for _, r := range rows {
		if len(r) != len(cols) {
			panic("TableFromStrings: row length does not match column count")
		}
	}

	b := new(Builder)
	for ci, name := range cols {
		data := make([]string, len(rows))
		var mask []bool
		for i, r := range rows {
			data[i] = r[ci]
			if r[ci] == "" || r[ci] == "NA" {
				if mask == nil {
					mask = make([]bool, len(rows))
				}
				mask[i] = true
			}
		}
		b.Add(name, coerceColumn(data, mask, coerce)).SetMissing(name, mask)
	}
	return b.Done()
}

// coerceColumn converts a string column to []int or []float64 if
// every non-missing cell parses, and returns it unchanged otherwise.
func coerceColumn(data []string, mask []bool, coerce bool) Slice {
	if !coerce {
		return data
	}

	ints := make([]int, len(data))
	okInt := true
	for i, s := range data {
		if mask != nil && mask[i] {
			continue
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			okInt = false
			break
		}
		ints[i] = v
	}
	if okInt {
		return ints
	}

	floats := make([]float64, len(data))
	for i, s := range data {
		if mask != nil && mask[i] {
			continue
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return data
		}
		floats[i] = v
	}
	return floats
}
