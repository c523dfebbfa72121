// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package table

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/aclements/go-gg/generic/slice"
)

// Join operations combine the rows of two tables based on the
// equality of their values in a set of shared key columns.
//
// If no key columns are given, the keys default to the columns the
// two tables have in common, in the left table's column order. A join
// with no given keys and no common columns fails with
// *AmbiguousKeyError.
//
// Missing cells in key columns never match, including against other
// missing cells, following SQL null semantics.
//
// When both tables have a non-key column with the same name, the
// result keeps both, renamed with a ".x" suffix for the left table's
// column and ".y" for the right table's.

// InnerJoin returns a table with one row for every pair of rows in l
// and r whose key columns are equal. Rows with no counterpart on the
// other side are dropped.
func InnerJoin(l, r *Table, by ...string) (*Table, error) {
	return join(l, r, by, false, false)
}

// LeftJoin returns a table that retains every row of l. Rows of r
// with equal key columns are attached, one result row per matching
// pair. Rows of l with no match are kept with missing cells filling
// r's non-key columns.
func LeftJoin(l, r *Table, by ...string) (*Table, error) {
	return join(l, r, by, true, false)
}

// RightJoin is symmetric to LeftJoin: it retains every row of r,
// filling l's non-key columns with missing cells where no row of l
// matches. The result's columns are laid out as in LeftJoin; its rows
// follow r's order.
func RightJoin(l, r *Table, by ...string) (*Table, error) {
	return join(l, r, by, false, true)
}

// FullJoin returns a table that retains every row of both l and r:
// matching pairs appear once, and unmatched rows of either side are
// kept with missing cells filling the other side's non-key columns.
// Rows of l (matched or not) come first, in l's order, followed by
// the unmatched rows of r in r's order.
func FullJoin(l, r *Table, by ...string) (*Table, error) {
	return join(l, r, by, true, true)
}

// SemiJoin returns the rows of l that have at least one match in r on
// the key columns. The result has exactly l's columns, and each
// matching row of l appears exactly once regardless of how many rows
// of r it matches.
func SemiJoin(l, r *Table, by ...string) (*Table, error) {
	idx, err := filterMatches(l, r, by, true)
	if err != nil {
		return nil, err
	}
	return selectRows(l, idx), nil
}

// AntiJoin returns the rows of l that have no match in r on the key
// columns. The result has exactly l's columns. AntiJoin's rows are
// the complement of SemiJoin's within l; rows of l with missing key
// cells match nothing and are always included.
func AntiJoin(l, r *Table, by ...string) (*Table, error) {
	idx, err := filterMatches(l, r, by, false)
	if err != nil {
		return nil, err
	}
	return selectRows(l, idx), nil
}

// CrossJoin returns the Cartesian product of l and r: every row of l
// paired with every row of r, with no matching condition. The result
// has |l| × |r| rows and the columns of both tables, renamed with
// ".x"/".y" suffixes on name collision.
func CrossJoin(l, r *Table) *Table {
	n := l.Len() * r.Len()
	lIdx := make([]int, 0, n)
	rIdx := make([]int, 0, n)
	for i := 0; i < l.Len(); i++ {
		for j := 0; j < r.Len(); j++ {
			lIdx = append(lIdx, i)
			rIdx = append(rIdx, j)
		}
	}
	return assembleJoin(l, r, nil, lIdx, rIdx)
}

// joinKeys resolves and checks the key column set for joining l and r.
func joinKeys(l, r *Table, by []string) ([]string, error) {
	if len(by) == 0 {
		for _, c := range l.Columns() {
			if r.Column(c) != nil {
				by = append(by, c)
			}
		}
		if len(by) == 0 {
			return nil, &AmbiguousKeyError{l.Columns(), r.Columns()}
		}
	}
	for _, k := range by {
		lc, rc := l.Column(k), r.Column(k)
		if lc == nil {
			return nil, &UnknownKeyError{k, "left"}
		}
		if rc == nil {
			return nil, &UnknownKeyError{k, "right"}
		}
		lt, rt := reflect.TypeOf(lc).Elem(), reflect.TypeOf(rc).Elem()
		if lt != rt {
			return nil, &ColumnTypeError{k, lt, rt}
		}
	}
	return by, nil
}

// keyer encodes the key columns of one table's rows as strings so
// they can be hashed and compared across tables.
type keyer struct {
	cols []reflect.Value
	miss [][]bool
}

func newKeyer(t *Table, keys []string) keyer {
	k := keyer{
		cols: make([]reflect.Value, len(keys)),
		miss: make([][]bool, len(keys)),
	}
	for i, c := range keys {
		k.cols[i] = reflect.ValueOf(t.Column(c))
		k.miss[i] = t.Missing(c)
	}
	return k
}

// row returns the encoded key of row i. ok is false if any key cell
// of the row is missing, in which case the row matches nothing.
func (k keyer) row(i int) (key string, ok bool) {
	var b strings.Builder
	for ci, col := range k.cols {
		if m := k.miss[ci]; m != nil && m[i] {
			return "", false
		}
		s := fmt.Sprint(col.Index(i).Interface())
		fmt.Fprintf(&b, "%d;%s", len(s), s)
	}
	return b.String(), true
}

// index maps each distinct key to the rows that carry it, in row
// order. Rows with missing key cells are omitted.
func (k keyer) index(n int) map[string][]int {
	idx := make(map[string][]int, n)
	for i := 0; i < n; i++ {
		if key, ok := k.row(i); ok {
			idx[key] = append(idx[key], i)
		}
	}
	return idx
}

// join implements the inner, left, right, and full joins. keepL
// retains unmatched rows of l; keepR retains unmatched rows of r.
func join(l, r *Table, by []string, keepL, keepR bool) (*Table, error) {
	keys, err := joinKeys(l, r, by)
	if err != nil {
		return nil, err
	}

	lk, rk := newKeyer(l, keys), newKeyer(r, keys)

	if !keepL && keepR {
		// Right join: the same computation with the sides
		// swapped, except that the result's columns keep the
		// left-table-first layout, so reuse the pair lists
		// with l and r exchanged.
		lIdx, rIdx := joinPairs(r, l, rk, lk, true, false)
		return assembleJoin(l, r, keys, rIdx, lIdx), nil
	}

	lIdx, rIdx := joinPairs(l, r, lk, rk, keepL, keepR)
	return assembleJoin(l, r, keys, lIdx, rIdx), nil
}

// joinPairs returns parallel row index lists describing the join
// result: row i of the result combines row lIdx[i] of l with row
// rIdx[i] of r, where -1 means missing-value fill.
func joinPairs(l, r *Table, lk, rk keyer, keepL, keepR bool) (lIdx, rIdx []int) {
	rIndex := rk.index(r.Len())
	var matchedR []bool
	if keepR {
		matchedR = make([]bool, r.Len())
	}
	for i := 0; i < l.Len(); i++ {
		key, ok := lk.row(i)
		var ms []int
		if ok {
			ms = rIndex[key]
		}
		if len(ms) == 0 {
			if keepL {
				lIdx = append(lIdx, i)
				rIdx = append(rIdx, -1)
			}
			continue
		}
		for _, j := range ms {
			lIdx = append(lIdx, i)
			rIdx = append(rIdx, j)
			if keepR {
				matchedR[j] = true
			}
		}
	}
	if keepR {
		for j, m := range matchedR {
			if !m {
				lIdx = append(lIdx, -1)
				rIdx = append(rIdx, j)
			}
		}
	}
	return lIdx, rIdx
}

// filterMatches returns the rows of l that do (want=true) or do not
// (want=false) have a match in r, for SemiJoin and AntiJoin.
func filterMatches(l, r *Table, by []string, want bool) ([]int, error) {
	keys, err := joinKeys(l, r, by)
	if err != nil {
		return nil, err
	}
	lk, rk := newKeyer(l, keys), newKeyer(r, keys)
	rIndex := rk.index(r.Len())
	var idx []int
	for i := 0; i < l.Len(); i++ {
		key, ok := lk.row(i)
		matched := false
		if ok {
			_, matched = rIndex[key]
		}
		if matched == want {
			idx = append(idx, i)
		}
	}
	return idx, nil
}

// assembleJoin builds the join result table from the pair lists. The
// result has l's columns in order (key columns merged across sides),
// then r's non-key columns. keys may be nil for a cross join.
func assembleJoin(l, r *Table, keys []string, lIdx, rIdx []int) *Table {
	keySet := make(map[string]bool, len(keys))
	for _, k := range keys {
		keySet[k] = true
	}

	b := new(Builder)
	for _, c := range l.Columns() {
		if keySet[c] {
			data, mask := gatherMerge(l.Column(c), r.Column(c), l.Missing(c), r.Missing(c), lIdx, rIdx)
			b.Add(c, data).SetMissing(c, mask)
			continue
		}
		name := c
		if r.Column(c) != nil {
			name = c + ".x"
		}
		data, mask := gather(l.Column(c), l.Missing(c), lIdx)
		b.Add(name, data).SetMissing(name, mask)
	}
	for _, c := range r.Columns() {
		if keySet[c] {
			continue
		}
		name := c
		if l.Column(c) != nil {
			name = c + ".y"
		}
		data, mask := gather(r.Column(c), r.Missing(c), rIdx)
		b.Add(name, data).SetMissing(name, mask)
	}
	return b.Done()
}

// gather builds a result column by picking the rows of col named by
// idx. An index of -1 yields a missing cell. The returned mask is nil
// if no result cell is missing.
func gather(col Slice, miss []bool, idx []int) (Slice, []bool) {
	fill := false
	for _, i := range idx {
		if i < 0 {
			fill = true
			break
		}
	}
	if !fill {
		data := slice.Select(col, idx)
		if miss == nil {
			return data, nil
		}
		mask := make([]bool, len(idx))
		any := false
		for oi, i := range idx {
			if miss[i] {
				mask[oi] = true
				any = true
			}
		}
		if !any {
			return data, nil
		}
		return data, mask
	}

	rv := reflectSlice(col)
	out := reflect.MakeSlice(rv.Type(), len(idx), len(idx))
	mask := make([]bool, len(idx))
	for oi, i := range idx {
		if i < 0 {
			mask[oi] = true
			continue
		}
		out.Index(oi).Set(rv.Index(i))
		if miss != nil && miss[i] {
			mask[oi] = true
		}
	}
	return out.Interface(), mask
}

// gatherMerge builds a key column of a join result, taking the value
// from l when the result row retains a row of l and from r otherwise.
func gatherMerge(lcol, rcol Slice, lmiss, rmiss []bool, lIdx, rIdx []int) (Slice, []bool) {
	lv, rv := reflectSlice(lcol), reflectSlice(rcol)
	out := reflect.MakeSlice(lv.Type(), len(lIdx), len(lIdx))
	var mask []bool
	setMissing := func(i int) {
		if mask == nil {
			mask = make([]bool, len(lIdx))
		}
		mask[i] = true
	}
	for oi := range lIdx {
		if i := lIdx[oi]; i >= 0 {
			out.Index(oi).Set(lv.Index(i))
			if lmiss != nil && lmiss[i] {
				setMissing(oi)
			}
		} else {
			j := rIdx[oi]
			out.Index(oi).Set(rv.Index(j))
			if rmiss != nil && rmiss[j] {
				setMissing(oi)
			}
		}
	}
	return out.Interface(), mask
}

// selectRows returns a table with the same columns as t containing
// the rows named by idx, in order.
func selectRows(t *Table, idx []int) *Table {
	if idx == nil {
		idx = []int{}
	}
	b := new(Builder)
	for _, c := range t.Columns() {
		data, mask := gather(t.Column(c), t.Missing(c), idx)
		b.Add(c, data).SetMissing(c, mask)
	}
	return b.Done()
}
