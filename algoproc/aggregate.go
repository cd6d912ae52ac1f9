// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algoproc groups benchmark Records into per-family series
// suitable for plotting.
package algoproc

import (
	"math"
	"sort"

	"github.com/aclements/go-gg/table"
	"github.com/algoperf/algoperf/algofmt"
	"github.com/samber/lo"
)

// A Point is one measurement of a metric at an input size.
type Point struct {
	N     int
	Value float64
}

// A Series maps each algorithm family to its points, ordered by
// increasing input size.
type Series map[algofmt.Family][]Point

// Families returns the families in s in alphabetical order.
func (s Series) Families() []algofmt.Family {
	fams := lo.Keys(s)
	sort.Slice(fams, func(i, j int) bool { return fams[i] < fams[j] })
	return fams
}

// Aggregate builds the series of metric m over recs.
//
// Records that lack m, or whose value of m is infinite or NaN, are
// left out. Within a family, points are sorted by input size; points
// with equal input size keep the order in which their Records appear
// in recs.
func Aggregate(recs []*algofmt.Record, m algofmt.Metric) Series {
	var (
		algos  []algofmt.Family
		sizes  []int
		values []float64
	)
	for _, rec := range recs {
		v, ok := rec.Value(m)
		if !ok {
			continue
		}
		f := v.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			continue
		}
		algos = append(algos, rec.Algo)
		sizes = append(sizes, rec.N)
		values = append(values, f)
	}
	s := make(Series)
	if len(algos) == 0 {
		return s
	}

	tab := new(table.Builder).
		Add("algo", algos).
		Add("n", sizes).
		Add("value", values).
		Done()

	// SortBy is stable, so ties on n stay in input order.
	g := table.SortBy(table.GroupBy(tab, "algo"), "n")
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		ns := t.MustColumn("n").([]int)
		vs := t.MustColumn("value").([]float64)
		pts := make([]Point, len(ns))
		for i := range ns {
			pts[i] = Point{ns[i], vs[i]}
		}
		s[gid.Label().(algofmt.Family)] = pts
	}
	return s
}
