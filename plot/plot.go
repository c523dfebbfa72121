// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders tables as SVG plots using a small layered
// grammar.
//
// A Plot binds aesthetics ("x", "y", "color") to columns of a table
// and draws one or more layers (points, lines) using those bindings.
// Layers may name their own columns, which override the plot-level
// bindings. Binding an aesthetic to a column that does not exist in
// the data fails with *UnmatchedAestheticError when the plot is
// rendered.
package plot

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/tidytab/tidytab/table"
)

// Warning is a logger for conditions that don't prevent rendering a
// plot but may lead to unexpected results.
var Warning = log.New(os.Stderr, "[plot] ", log.Lshortfile)

// An UnmatchedAestheticError indicates that an aesthetic was bound to
// a column name that does not resolve to any column of the plot's
// data.
type UnmatchedAestheticError struct {
	Aesthetic string
	Column    string
	Columns   []string
}

func (e *UnmatchedAestheticError) Error() string {
	return fmt.Sprintf("plot: aesthetic %q is mapped to unknown column %q (columns are %v)", e.Aesthetic, e.Column, e.Columns)
}

// A Layer adds graphical marks to a plot.
type Layer interface {
	apply(p *Plot, r *renderer) error
}

// A Plot is a set of layers drawn over one table with shared
// aesthetic bindings and scales.
type Plot struct {
	data   *table.Table
	aes    map[string]string
	layers []Layer
}

// New returns an empty Plot over the given table.
func New(t *table.Table) *Plot {
	return &Plot{data: t, aes: make(map[string]string)}
}

// Data returns the plot's table.
func (p *Plot) Data() *table.Table {
	return p.data
}

// Bind binds an aesthetic to the named column for all layers that do
// not name their own. The binding is resolved when the plot is
// rendered.
func (p *Plot) Bind(aes, col string) *Plot {
	p.aes[aes] = col
	return p
}

// Add appends layers to the plot.
func (p *Plot) Add(layers ...Layer) *Plot {
	p.layers = append(p.layers, layers...)
	return p
}

// use resolves the column for an aesthetic: the layer's own column if
// set, else the plot-level binding, else the default. It returns an
// *UnmatchedAestheticError if the resolved name is not a column of
// the data. An empty resolution is allowed and returns "".
func (p *Plot) use(aes, layerCol, deflt string) (string, error) {
	col := layerCol
	if col == "" {
		col = p.aes[aes]
	}
	if col == "" {
		col = deflt
	}
	if col == "" {
		return "", nil
	}
	if p.data.Column(col) == nil {
		return "", &UnmatchedAestheticError{aes, col, p.data.Columns()}
	}
	return col, nil
}

// defaultCol returns the name of the i'th column of the data, or ""
// if there is no such column.
func (p *Plot) defaultCol(i int) string {
	cols := p.data.Columns()
	if i >= len(cols) {
		return ""
	}
	return cols[i]
}

// WriteSVG renders the plot as an SVG image of the given pixel
// dimensions. Rows whose bound cells are missing are skipped, not
// drawn.
func (p *Plot) WriteSVG(w io.Writer, width, height int) error {
	if len(p.layers) == 0 {
		return fmt.Errorf("plot: no layers to render")
	}
	r := newRenderer(width, height)
	for _, l := range p.layers {
		if err := l.apply(p, r); err != nil {
			return err
		}
	}
	return r.writeSVG(w)
}
