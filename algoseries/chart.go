// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algoseries renders per-family metric series as charts.
package algoseries

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/algoperf/algoperf/algoproc"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions.
const (
	chartWidth  = 6.4 * vg.Inch
	chartHeight = 4.8 * vg.Inch
)

// maxMajorTicks bounds the number of labeled ticks per axis.
const maxMajorTicks = 8

var gridColor = color.Gray{Y: 0xd8}

// PlotXY draws s as a line chart of metric value (labeled ylabel)
// against input size and saves it to path, replacing any existing
// file. The image format is chosen by the extension of path, as in
// plot.Plot.Save.
//
// Each family is one line with a marker at every point. Families are
// drawn and listed in the legend in alphabetical order. If s is empty,
// PlotXY does nothing.
func PlotXY(s algoproc.Series, ylabel, path string) error {
	if len(s) == 0 {
		return nil
	}
	p, err := newPlot(s, ylabel)
	if err != nil {
		return err
	}
	return p.Save(chartWidth, chartHeight, path)
}

func newPlot(s algoproc.Series, ylabel string) (*plot.Plot, error) {
	p := plot.New()
	p.X.Label.Text = "n"
	p.Y.Label.Text = ylabel
	p.X.Tick.Marker = niceTicks{}
	p.Y.Tick.Marker = niceTicks{}
	p.Legend.Top = true
	p.Legend.Left = true

	grid := plotter.NewGrid()
	grid.Vertical.Color = gridColor
	grid.Horizontal.Color = gridColor
	p.Add(grid)

	for i, fam := range s.Families() {
		pts := s[fam]
		xys := make(plotter.XYs, len(pts))
		for j, pt := range pts {
			xys[j].X = float64(pt.N)
			xys[j].Y = pt.Value
		}
		line, points, err := plotter.NewLinePoints(xys)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", fam, err)
		}
		line.Color = plotutil.Color(i)
		points.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		p.Add(line, points)
		p.Legend.Add(string(fam), line, points)
	}
	return p, nil
}

// niceTicks is a plot.Ticker that puts labeled ticks at round
// numbers, with unlabeled minor ticks one level below.
type niceTicks struct{}

func (niceTicks) Ticks(min, max float64) []plot.Tick {
	major, minor := scale.Linear{Min: min, Max: max}.Ticks(scale.TickOptions{Max: maxMajorTicks})
	ticks := make([]plot.Tick, 0, len(major)+len(minor))
	isMajor := make(map[float64]bool, len(major))
	for _, v := range major {
		isMajor[v] = true
		ticks = append(ticks, plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', 10, 64)})
	}
	for _, v := range minor {
		if !isMajor[v] {
			ticks = append(ticks, plot.Tick{Value: v})
		}
	}
	return ticks
}
