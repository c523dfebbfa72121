// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"testing"
)

func ExampleTableFromStructs() {
	type member struct {
		Name string
		Band string
	}
	data := []member{{"Mick", "Stones"}, {"John", "Beatles"}, {"Paul", "Beatles"}}
	Print(TableFromStructs(data))
	// Output:
	// Name  Band
	// Mick  Stones
	// John  Beatles
	// Paul  Beatles
}

func TestTableFromStructs(t *testing.T) {
	shouldPanic(t, "not a slice", func() {
		TableFromStructs(42)
	})
	shouldPanic(t, "not a slice of struct", func() {
		TableFromStructs([]int{42})
	})
}

func TestTableFromStructsEmbedded(t *testing.T) {
	type T struct {
		A int
	}
	type U struct {
		T
		B string
	}
	data := []U{{T{1}, "x"}}
	tab := TableFromStructs(data)
	if want := []string{"A", "B"}; !de(want, tab.Columns()) {
		t.Errorf("columns should be %v; got %v", want, tab.Columns())
	}
	if want := []int{1}; !de(want, tab.Column("A")) {
		t.Errorf("column A should be %v; got %v", want, tab.Column("A"))
	}
}

func TestTableFromStructsUnexported(t *testing.T) {
	type T struct {
		a int
		A int
	}
	data := []T{{1, 2}}
	tab := TableFromStructs(data)
	if want := []string{"A"}; !de(want, tab.Columns()) {
		t.Errorf("columns should be %v; got %v", want, tab.Columns())
	}
	_ = data[0].a
}

func TestTableFromStrings(t *testing.T) {
	cols := []string{"a", "b", "c"}
	rows := [][]string{
		{"A", "1", "1.5"},
		{"B", "2", "2.5"},
	}

	// No coercion.
	tab := TableFromStrings(cols, rows, false)
	eqTables(t, tab, new(Builder).
		Add("a", []string{"A", "B"}).
		Add("b", []string{"1", "2"}).
		Add("c", []string{"1.5", "2.5"}).
		Done())

	// Coercion.
	tab = TableFromStrings(cols, rows, true)
	eqTables(t, tab, new(Builder).
		Add("a", []string{"A", "B"}).
		Add("b", []int{1, 2}).
		Add("c", []float64{1.5, 2.5}).
		Done())

	// Coercion inhibited by a non-numeric cell.
	rows = append(rows, []string{"C", "x", "x"})
	tab = TableFromStrings(cols, rows, true)
	eqTables(t, tab, new(Builder).
		Add("a", []string{"A", "B", "C"}).
		Add("b", []string{"1", "2", "x"}).
		Add("c", []string{"1.5", "2.5", "x"}).
		Done())

	shouldPanic(t, "row length", func() {
		TableFromStrings(cols, [][]string{{"too", "short"}}, false)
	})
}

func TestTableFromStringsMissing(t *testing.T) {
	cols := []string{"name", "plays", "age"}
	rows := [][]string{
		{"John", "guitar", "40"},
		{"Ringo", "NA", ""},
	}
	tab := TableFromStrings(cols, rows, true)
	eqTables(t, tab, new(Builder).
		Add("name", []string{"John", "Ringo"}).
		Add("plays", []string{"guitar", "NA"}).
		SetMissing("plays", []bool{false, true}).
		Add("age", []int{40, 0}).
		SetMissing("age", []bool{false, true}).
		Done())
}
