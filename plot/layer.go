// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import "fmt"

// LayerPoints draws a point mark at each data point.
type LayerPoints struct {
	// X and Y name columns that give the position of each point.
	// If they are empty, they default to the plot's "x" and "y"
	// bindings, then to the first and second columns of the data.
	X, Y string

	// Color names a column that determines the color of each
	// point. If Color is "" and the plot has no "color" binding,
	// every point is black.
	Color string
}

func (l LayerPoints) apply(p *Plot, r *renderer) error {
	m, err := resolveMark(p, l.X, l.Y, l.Color)
	if err != nil {
		return err
	}
	m.typ = markPoints
	r.marks = append(r.marks, m)
	return nil
}

// LayerLines connects successive data points with lines, ordered by
// the "x" column and grouped by the "color" column.
type LayerLines struct {
	// X, Y, and Color are as in LayerPoints.
	X, Y, Color string
}

func (l LayerLines) apply(p *Plot, r *renderer) error {
	m, err := resolveMark(p, l.X, l.Y, l.Color)
	if err != nil {
		return err
	}
	m.typ = markLines
	r.marks = append(r.marks, m)
	return nil
}

func resolveMark(p *Plot, x, y, color string) (mark, error) {
	var m mark
	var err error
	if m.x, err = p.use("x", x, p.defaultCol(0)); err != nil {
		return m, err
	}
	if m.y, err = p.use("y", y, p.defaultCol(1)); err != nil {
		return m, err
	}
	if m.color, err = p.use("color", color, ""); err != nil {
		return m, err
	}
	if m.x == "" {
		return m, fmt.Errorf("plot: no columns to draw")
	}
	m.data = p.data
	return m, nil
}
