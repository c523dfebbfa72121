// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"regexp"
	"testing"
)

func de(x, y interface{}) bool {
	return reflect.DeepEqual(x, y)
}

func shouldPanic(t *testing.T, re string, f func()) {
	t.Helper()
	r := regexp.MustCompile(re)
	defer func() {
		err := recover()
		if err == nil {
			t.Fatalf("want panic matching %q; got no panic", re)
		} else if !r.MatchString(fmt.Sprintf("%s", err)) {
			t.Fatalf("panic %q does not match %q", err, re)
		}
	}()
	f()
}

// eqTables fails the test unless got and want have the same columns,
// data, and missing masks.
func eqTables(t *testing.T, got, want *Table) {
	t.Helper()
	if !de(got.Columns(), want.Columns()) {
		t.Fatalf("columns should be %v; got %v", want.Columns(), got.Columns())
	}
	for _, c := range want.Columns() {
		if !de(got.Column(c), want.Column(c)) {
			t.Errorf("column %q should be %v; got %v", c, want.Column(c), got.Column(c))
		}
		if !de(got.Missing(c), want.Missing(c)) {
			t.Errorf("missing mask of %q should be %v; got %v", c, want.Missing(c), got.Missing(c))
		}
	}
}

func TestEmptyTable(t *testing.T) {
	tab := new(Table)
	if v := tab.Len(); v != 0 {
		t.Fatalf("Table{}.Len() should be 0; got %v", v)
	}
	if v := tab.Columns(); v != nil {
		t.Fatalf("Table{}.Columns() should be nil; got %v", v)
	}
	if v := tab.Column("x"); v != nil {
		t.Fatalf("Table{}.Column(\"x\") should be nil; got %v", v)
	}
	shouldPanic(t, "unknown column", func() {
		tab.MustColumn("x")
	})
}

func TestBuilder(t *testing.T) {
	if v := new(Builder).Done(); v.Len() != 0 || v.Columns() != nil {
		t.Fatalf("empty builder should give the empty table; got %v", v)
	}

	shouldPanic(t, "not a slice", func() {
		new(Builder).Add("x", 1)
	})
	shouldPanic(t, `column "y" with 1 elements to table with 0 rows`, func() {
		new(Builder).Add("x", []int{}).Add("y", []int{1})
	})

	tab := new(Builder).Add("x", []int{1, 2}).Add("y", []string{"a", "b"}).Done()
	if v := tab.Len(); v != 2 {
		t.Fatalf("Len() should be 2; got %v", v)
	}
	if v, w := tab.Columns(), []string{"x", "y"}; !de(v, w) {
		t.Fatalf("Columns() should be %v; got %v", w, v)
	}
	if v, w := tab.Column("x"), []int{1, 2}; !de(v, w) {
		t.Fatalf("Column(\"x\") should be %v; got %v", w, v)
	}
	if v := tab.Column("z"); v != nil {
		t.Fatalf("Column(\"z\") should be nil; got %v", v)
	}

	// Removing a column.
	tab = NewBuilder(tab).Add("x", nil).Done()
	if v, w := tab.Columns(), []string{"y"}; !de(v, w) {
		t.Fatalf("Columns() should be %v; got %v", w, v)
	}

	// The only column may be replaced with a different length.
	tab = new(Builder).Add("x", []int{1, 2}).Add("x", []int{1, 2, 3}).Done()
	if v := tab.Len(); v != 3 {
		t.Fatalf("Len() should be 3; got %v", v)
	}
}

func TestColumnOrder(t *testing.T) {
	// Test that columns stay in order.
	cols := []string{"a", "b", "c", "d"}
	for iter := 0; iter < 10; iter++ {
		b := new(Builder)
		for _, col := range cols {
			b.Add(col, []int{})
		}
		tab := b.Done()
		if !de(cols, tab.Columns()) {
			t.Fatalf("want %v; got %v", cols, tab.Columns())
		}
	}

	// Test that re-adding a column keeps it in place.
	tab := new(Builder).Add("a", []int{1}).Add("b", []int{2}).Add("a", []int{3}).Done()
	if want := []string{"a", "b"}; !de(want, tab.Columns()) {
		t.Fatalf("want %v; got %v", want, tab.Columns())
	}
	if want := []int{3}; !de(want, tab.Column("a")) {
		t.Fatalf("want %v; got %v", want, tab.Column("a"))
	}
}

func TestSetMissing(t *testing.T) {
	tab := new(Builder).
		Add("x", []int{1, 0, 3}).
		SetMissing("x", []bool{false, true, false}).
		Done()
	if v, w := tab.Missing("x"), []bool{false, true, false}; !de(v, w) {
		t.Fatalf("Missing(\"x\") should be %v; got %v", w, v)
	}
	if v := tab.Missing("y"); v != nil {
		t.Fatalf("Missing(\"y\") should be nil; got %v", v)
	}

	// An all-false mask is dropped.
	tab = new(Builder).
		Add("x", []int{1}).
		SetMissing("x", []bool{false}).
		Done()
	if v := tab.Missing("x"); v != nil {
		t.Fatalf("all-false mask should be dropped; got %v", v)
	}

	shouldPanic(t, "unknown column", func() {
		new(Builder).SetMissing("x", []bool{true})
	})
	shouldPanic(t, "2 elements; table has 1 rows", func() {
		new(Builder).Add("x", []int{1}).SetMissing("x", []bool{true, false})
	})

	// Replacing a column clears its mask.
	tab = new(Builder).
		Add("x", []int{1}).
		SetMissing("x", []bool{true}).
		Add("x", []int{2}).
		Done()
	if v := tab.Missing("x"); v != nil {
		t.Fatalf("replacing a column should clear its mask; got %v", v)
	}
}

func TestNewBuilderCopies(t *testing.T) {
	tab := new(Builder).
		Add("x", []int{1, 2}).
		Add("y", []string{"a", ""}).
		SetMissing("y", []bool{false, true}).
		Done()
	tab2 := NewBuilder(tab).Add("z", []float64{1, 2}).Done()

	if v, w := tab.Columns(), []string{"x", "y"}; !de(v, w) {
		t.Fatalf("source table changed: columns %v; want %v", v, w)
	}
	if v, w := tab2.Columns(), []string{"x", "y", "z"}; !de(v, w) {
		t.Fatalf("columns should be %v; got %v", w, v)
	}
	if v, w := tab2.Missing("y"), []bool{false, true}; !de(v, w) {
		t.Fatalf("mask should carry over; got %v want %v", v, w)
	}
}
