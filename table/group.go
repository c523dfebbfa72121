// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"strings"
)

// A Grouped is a partition of a table's rows into groups that share
// the same values in a set of key columns.
type Grouped struct {
	keys   []string
	labels *Table
	groups []*Table
}

// GroupBy partitions the rows of t by the distinct value tuples of
// the named key columns. Groups appear in the order their key tuple
// first appears in t, and the rows within a group keep their original
// order. Unlike in a join, missing key cells do group together: rows
// whose keys are missing in the same positions and equal elsewhere
// form one group.
//
// GroupBy panics if any named column does not exist.
func GroupBy(t *Table, cols ...string) *Grouped {
	kcols := make([]reflect.Value, len(cols))
	kmiss := make([][]bool, len(cols))
	for i, c := range cols {
		kcols[i] = reflect.ValueOf(t.MustColumn(c))
		kmiss[i] = t.Missing(c)
	}

	var order []string
	idx := make(map[string][]int)
	for i := 0; i < t.Len(); i++ {
		var b strings.Builder
		for ci, col := range kcols {
			if m := kmiss[ci]; m != nil && m[i] {
				b.WriteString("?;")
				continue
			}
			s := fmt.Sprint(col.Index(i).Interface())
			fmt.Fprintf(&b, "%d;%s", len(s), s)
		}
		key := b.String()
		if _, ok := idx[key]; !ok {
			order = append(order, key)
		}
		idx[key] = append(idx[key], i)
	}

	g := &Grouped{keys: cols}
	first := make([]int, 0, len(order))
	for _, key := range order {
		rows := idx[key]
		first = append(first, rows[0])
		g.groups = append(g.groups, selectRows(t, rows))
	}

	// One row of key values per group, for labeling.
	lb := new(Builder)
	for _, c := range cols {
		data, mask := gather(t.Column(c), t.Missing(c), first)
		lb.Add(c, data).SetMissing(c, mask)
	}
	g.labels = lb.Done()
	return g
}

// Len returns the number of groups.
func (g *Grouped) Len() int {
	return len(g.groups)
}

// Keys returns the names of the key columns the grouping was made on.
func (g *Grouped) Keys() []string {
	return g.keys
}

// Labels returns a table with one row per group giving the group's
// key column values, in group order.
func (g *Grouped) Labels() *Table {
	return g.labels
}

// Table returns the i'th group's rows.
func (g *Grouped) Table(i int) *Table {
	return g.groups[i]
}

// Tables returns all groups in order. The returned slice must not be
// modified.
func (g *Grouped) Tables() []*Table {
	return g.groups
}
