// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"bytes"
	"strings"
	"testing"
)

func TestReadCSV(t *testing.T) {
	const data = `name,band,plays
Mick,Stones,
John,Beatles,guitar
`
	tab, err := ReadCSV(strings.NewReader(data), true)
	if err != nil {
		t.Fatal(err)
	}
	eqTables(t, tab, new(Builder).
		Add("name", []string{"Mick", "John"}).
		Add("band", []string{"Stones", "Beatles"}).
		Add("plays", []string{"", "guitar"}).
		SetMissing("plays", []bool{true, false}).
		Done())
}

func TestReadCSVEmpty(t *testing.T) {
	tab, err := ReadCSV(strings.NewReader(""), true)
	if err != nil {
		t.Fatal(err)
	}
	if tab.Len() != 0 || tab.Columns() != nil {
		t.Fatalf("empty input should give the empty table; got %v", tab)
	}
}

func TestWriteCSV(t *testing.T) {
	tab := new(Builder).
		Add("name", []string{"Mick", "John"}).
		Add("terms", []int{2, 0}).
		SetMissing("terms", []bool{false, true}).
		Done()

	var b bytes.Buffer
	if err := WriteCSV(&b, tab); err != nil {
		t.Fatal(err)
	}
	want := "name,terms\nMick,2\nJohn,\n"
	if b.String() != want {
		t.Fatalf("want %q; got %q", want, b.String())
	}
}

func TestCSVRoundTrip(t *testing.T) {
	tab := new(Builder).
		Add("x", []int{1, 0, 3}).
		SetMissing("x", []bool{false, true, false}).
		Add("s", []string{"a", "b", "c"}).
		Done()

	var b bytes.Buffer
	if err := WriteCSV(&b, tab); err != nil {
		t.Fatal(err)
	}
	got, err := ReadCSV(&b, true)
	if err != nil {
		t.Fatal(err)
	}
	eqTables(t, got, tab)
}
