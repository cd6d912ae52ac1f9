// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algoseries

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/algoproc"
)

var testSeries = algoproc.Series{
	algofmt.Quicksort: {{N: 10, Value: 0.01}, {N: 100, Value: 0.07}, {N: 1000, Value: 0.8}},
	algofmt.Mergesort: {{N: 10, Value: 1}, {N: 100, Value: 3.2}, {N: 100, Value: 2.5}, {N: 1000, Value: 0.9}},
}

func TestPlotXY(t *testing.T) {
	path := filepath.Join(t.TempDir(), "time_ms.png")
	if err := os.WriteFile(path, []byte("stale"), 0666); err != nil {
		t.Fatal(err)
	}
	if err := PlotXY(testSeries, "time (ms)", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() <= b.Dy() {
		t.Errorf("image is %dx%d, want landscape", b.Dx(), b.Dy())
	}
}

func TestPlotXYEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "depth.png")
	if err := PlotXY(algoproc.Series{}, "max depth", path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("empty series wrote %s (stat err %v)", path, err)
	}
}

func TestPlotXYBadValue(t *testing.T) {
	s := algoproc.Series{algofmt.Select: {{N: 1, Value: math.NaN()}}}
	if err := PlotXY(s, "y", filepath.Join(t.TempDir(), "bad.png")); err == nil {
		t.Errorf("PlotXY with NaN value succeeded")
	}
}

func TestNewPlot(t *testing.T) {
	p, err := newPlot(testSeries, "y")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Y.Label.Text; got != "y" {
		t.Errorf("y label = %q", got)
	}
	if p.X.Min != 10 || p.X.Max != 1000 {
		t.Errorf("x range = [%v, %v], want [10, 1000]", p.X.Min, p.X.Max)
	}
}

func TestNiceTicks(t *testing.T) {
	for _, r := range [][2]float64{{0, 1000}, {10, 1000}, {0.01, 3.2}, {5, 5}, {-3, 17}} {
		min, max := r[0], r[1]
		ticks := niceTicks{}.Ticks(min, max)
		labeled := 0
		for _, tick := range ticks {
			if tick.Label == "" {
				continue
			}
			labeled++
			v, err := strconv.ParseFloat(tick.Label, 64)
			if err != nil {
				t.Errorf("[%v, %v]: label %q is not a number", min, max, tick.Label)
			} else if math.Abs(v-tick.Value) > 1e-9*math.Max(1, math.Abs(v)) {
				t.Errorf("[%v, %v]: label %q for tick at %v", min, max, tick.Label, tick.Value)
			}
		}
		if labeled == 0 || labeled > maxMajorTicks {
			t.Errorf("[%v, %v]: %d labeled ticks, want 1..%d", min, max, labeled, maxMajorTicks)
		}
	}
}
