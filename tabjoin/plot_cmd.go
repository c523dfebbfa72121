// Copyright 2018 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tidytab/tidytab/plot"
	"github.com/tidytab/tidytab/table"
)

// plotSpec is the YAML plot description read by "tabjoin plot". The
// top-level aesthetics apply to every layer that does not override
// them.
type plotSpec struct {
	X      string      `yaml:"x"`
	Y      string      `yaml:"y"`
	Color  string      `yaml:"color"`
	Width  int         `yaml:"width"`
	Height int         `yaml:"height"`
	Layers []layerSpec `yaml:"layers"`
}

type layerSpec struct {
	Mark  string `yaml:"mark"` // "points" or "lines"
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
	Color string `yaml:"color"`
}

func loadPlotSpec(path string) (*plotSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	spec := &plotSpec{}
	if err := yaml.Unmarshal(data, spec); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// build constructs the plot described by the spec over table t.
func (s *plotSpec) build(t *table.Table) (*plot.Plot, error) {
	p := plot.New(t)
	if s.X != "" {
		p.Bind("x", s.X)
	}
	if s.Y != "" {
		p.Bind("y", s.Y)
	}
	if s.Color != "" {
		p.Bind("color", s.Color)
	}

	layers := s.Layers
	if len(layers) == 0 {
		layers = []layerSpec{{Mark: "points"}}
	}
	for _, l := range layers {
		switch l.Mark {
		case "", "points":
			p.Add(plot.LayerPoints{X: l.X, Y: l.Y, Color: l.Color})
		case "lines":
			p.Add(plot.LayerLines{X: l.X, Y: l.Y, Color: l.Color})
		default:
			return nil, fmt.Errorf("unknown mark %q (want points or lines)", l.Mark)
		}
	}
	return p, nil
}

func newPlotCmd() *cobra.Command {
	var specPath string
	var width, height int

	cmd := &cobra.Command{
		Use:   "plot <in.csv>",
		Short: "Render a CSV table as an SVG plot",
		Long: `Plot renders a table with the layers and aesthetic mappings given in
a YAML spec file. Without a spec, it draws the first column against
the second as points.`,
		Example: `  tabjoin plot points.csv -o points.svg
  tabjoin plot --spec plot.yaml points.csv -o points.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := readTable(cmd, args[0])
			if err != nil {
				return err
			}

			spec := &plotSpec{}
			if specPath != "" {
				spec, err = loadPlotSpec(specPath)
				if err != nil {
					return err
				}
			}
			p, err := spec.build(t)
			if err != nil {
				return err
			}

			w, h := width, height
			if spec.Width > 0 {
				w = spec.Width
			}
			if spec.Height > 0 {
				h = spec.Height
			}
			return withOutput(cmd, func(out io.Writer) error {
				return p.WriteSVG(out, w, h)
			})
		},
	}

	cmd.Flags().StringVar(&specPath, "spec", "", "YAML plot spec `file`")
	cmd.Flags().IntVar(&width, "width", 640, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", 480, "output height in pixels")
	return cmd
}
