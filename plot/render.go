// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"fmt"
	"io"
	"reflect"
	"sort"

	svg "github.com/ajstarks/svgo"

	"github.com/tidytab/tidytab/table"
)

type markType int

const (
	markPoints markType = iota
	markLines
)

type mark struct {
	typ   markType
	data  *table.Table
	x, y  string
	color string // may be ""
}

// palette gives the stroke and fill colors assigned to the levels of
// the "color" aesthetic, in level order.
var palette = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2",
}

const (
	marginLeft   = 50
	marginRight  = 10
	marginTop    = 10
	marginBottom = 30
	pointRadius  = 3
)

type renderer struct {
	width, height int
	marks         []mark
}

func newRenderer(width, height int) *renderer {
	return &renderer{width: width, height: height}
}

// point is one drawable row: plot coordinates plus a color level.
type point struct {
	px, py int
	level  int
	xpos   float64 // unscaled position for line ordering
}

func (r *renderer) writeSVG(w io.Writer) error {
	// Train the shared scales over every mark's bound columns.
	// Color is always a discrete scale.
	var xs, ys, cs scale
	cs.trained, cs.ordinal = true, true
	for _, m := range r.marks {
		xs.train(m.data, m.x)
		if m.y != "" {
			ys.train(m.data, m.y)
		}
		if m.color != "" {
			cs.train(m.data, m.color)
		}
	}

	canvas := svg.New(w)
	canvas.Start(r.width, r.height)
	r.axes(canvas, &xs, &ys)
	for _, m := range r.marks {
		pts := r.project(m, &xs, &ys, &cs)
		if len(pts) == 0 && m.data.Len() > 0 {
			Warning.Printf("layer over %q has no drawable rows", m.x)
		}
		switch m.typ {
		case markPoints:
			for _, pt := range pts {
				canvas.Circle(pt.px, pt.py, pointRadius, "fill:"+levelColor(pt.level))
			}
		case markLines:
			r.polylines(canvas, pts)
		}
	}
	canvas.End()
	return nil
}

// project maps the rows of mark m into pixel coordinates, dropping
// rows with missing or unscalable cells.
func (r *renderer) project(m mark, xs, ys, cs *scale) []point {
	xv := reflect.ValueOf(m.data.MustColumn(m.x))
	xmiss := m.data.Missing(m.x)
	var yv reflect.Value
	var ymiss []bool
	if m.y != "" {
		yv = reflect.ValueOf(m.data.MustColumn(m.y))
		ymiss = m.data.Missing(m.y)
	}
	var cv reflect.Value
	var cmiss []bool
	if m.color != "" {
		cv = reflect.ValueOf(m.data.MustColumn(m.color))
		cmiss = m.data.Missing(m.color)
	}

	var pts []point
	for i := 0; i < m.data.Len(); i++ {
		xpos, ok := xs.pos(xv.Index(i), xmiss != nil && xmiss[i])
		if !ok {
			continue
		}
		ypos := 0.5
		if m.y != "" {
			ypos, ok = ys.pos(yv.Index(i), ymiss != nil && ymiss[i])
			if !ok {
				continue
			}
		}
		level := -1
		if m.color != "" {
			if cmiss != nil && cmiss[i] {
				continue
			}
			level = cs.levels[fmt.Sprint(cv.Index(i).Interface())]
		}
		pts = append(pts, point{
			px:    marginLeft + int(xpos*float64(r.width-marginLeft-marginRight)),
			py:    r.height - marginBottom - int(ypos*float64(r.height-marginTop-marginBottom)),
			level: level,
			xpos:  xpos,
		})
	}
	return pts
}

// polylines draws one polyline per color level, ordered by x.
func (r *renderer) polylines(canvas *svg.SVG, pts []point) {
	byLevel := make(map[int][]point)
	var levels []int
	for _, pt := range pts {
		if _, ok := byLevel[pt.level]; !ok {
			levels = append(levels, pt.level)
		}
		byLevel[pt.level] = append(byLevel[pt.level], pt)
	}
	sort.Ints(levels)
	for _, level := range levels {
		lp := byLevel[level]
		sort.SliceStable(lp, func(i, j int) bool { return lp[i].xpos < lp[j].xpos })
		px := make([]int, len(lp))
		py := make([]int, len(lp))
		for i, pt := range lp {
			px[i], py[i] = pt.px, pt.py
		}
		canvas.Polyline(px, py, "fill:none;stroke:"+levelColor(level))
	}
}

func (r *renderer) axes(canvas *svg.SVG, xs, ys *scale) {
	x0, x1 := marginLeft, r.width-marginRight
	y0, y1 := r.height-marginBottom, marginTop
	canvas.Line(x0, y0, x1, y0, "stroke:black")
	canvas.Line(x0, y0, x0, y1, "stroke:black")

	if xs.trained && !xs.ordinal {
		canvas.Text(x0, y0+15, fmt.Sprintf("%g", xs.min), "font-size:11px;text-anchor:start")
		canvas.Text(x1, y0+15, fmt.Sprintf("%g", xs.max), "font-size:11px;text-anchor:end")
	} else if xs.ordinal {
		for i, level := range xs.order {
			px := x0 + int((float64(i)+0.5)/float64(len(xs.order))*float64(x1-x0))
			canvas.Text(px, y0+15, level, "font-size:11px;text-anchor:middle")
		}
	}
	if ys.trained && !ys.ordinal {
		canvas.Text(x0-5, y0, fmt.Sprintf("%g", ys.min), "font-size:11px;text-anchor:end")
		canvas.Text(x0-5, y1+10, fmt.Sprintf("%g", ys.max), "font-size:11px;text-anchor:end")
	} else if ys.ordinal {
		for i, level := range ys.order {
			py := y0 - int((float64(i)+0.5)/float64(len(ys.order))*float64(y0-y1))
			canvas.Text(x0-5, py, level, "font-size:11px;text-anchor:end")
		}
	}
}

func levelColor(level int) string {
	if level < 0 {
		return "black"
	}
	return palette[level%len(palette)]
}
