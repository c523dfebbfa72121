// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"reflect"

	"github.com/aclements/go-moremath/stats"

	"github.com/tidytab/tidytab/table"
)

// A scale maps the values of the columns bound to one aesthetic onto
// [0, 1]. It is linear if every trained column is numeric and ordinal
// otherwise. An ordinal scale assigns positions by first-seen value
// order.
type scale struct {
	trained bool
	ordinal bool

	spanned  bool
	min, max float64

	levels map[string]int
	order  []string
}

func (s *scale) train(t *table.Table, col string) {
	rv := reflect.ValueOf(t.MustColumn(col))
	miss := t.Missing(col)

	if !s.trained {
		s.ordinal = !numericKind(rv.Type().Elem().Kind())
		s.trained = true
	} else if !s.ordinal && !numericKind(rv.Type().Elem().Kind()) {
		// A non-numeric column joined a numeric scale; fall
		// back to treating all values as discrete.
		s.becomeOrdinal()
	}

	if s.ordinal {
		if s.levels == nil {
			s.levels = make(map[string]int)
		}
		for i := 0; i < rv.Len(); i++ {
			if miss != nil && miss[i] {
				continue
			}
			v := fmt.Sprint(rv.Index(i).Interface())
			if _, ok := s.levels[v]; !ok {
				s.levels[v] = len(s.order)
				s.order = append(s.order, v)
			}
		}
		return
	}

	xs := make([]float64, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		if miss != nil && miss[i] {
			continue
		}
		xs = append(xs, toFloat(rv.Index(i)))
	}
	if len(xs) == 0 {
		return
	}
	min, max := stats.Bounds(xs)
	if !s.spanned {
		s.min, s.max = min, max
		s.spanned = true
		return
	}
	if min < s.min {
		s.min = min
	}
	if max > s.max {
		s.max = max
	}
}

func (s *scale) becomeOrdinal() {
	s.ordinal = true
	s.spanned = false
	s.min, s.max = 0, 0
}

// pos maps one cell onto [0, 1]. ok is false for missing cells.
func (s *scale) pos(v reflect.Value, missing bool) (float64, bool) {
	if missing {
		return 0, false
	}
	if s.ordinal {
		i, ok := s.levels[fmt.Sprint(v.Interface())]
		if !ok {
			return 0, false
		}
		return (float64(i) + 0.5) / float64(len(s.order)), true
	}
	if s.max == s.min {
		return 0.5, true
	}
	return (toFloat(v) - s.min) / (s.max - s.min), true
}

func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return float64(v.Int())
	}
}
