// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algobench runs instrumented sorting, selection and
// closest-pair algorithms and reports the work each one did as
// benchmark log Records.
package algobench

import (
	"time"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/algounit"
)

// Stats counts the work done by one run of an algorithm.
// Each algorithm fills in only the counters it measures.
type Stats struct {
	Compares   int64
	Copies     int64
	Merges     int64
	Pivots     int64
	Recursions int64
	MaxDepth   int
	Elapsed    time.Duration
}

// familyMetrics lists the metrics each family measures, besides
// time_ms.
var familyMetrics = map[algofmt.Family][]algofmt.Metric{
	algofmt.Mergesort: {algofmt.Compares, algofmt.Copies, algofmt.Merges, algofmt.MaxDepth},
	algofmt.Quicksort: {algofmt.Compares, algofmt.Pivots, algofmt.Recursions, algofmt.MaxDepth},
	algofmt.Select:    {algofmt.Compares, algofmt.Copies, algofmt.Recursions, algofmt.MaxDepth},
	algofmt.Closest:   {algofmt.Compares, algofmt.Copies, algofmt.MaxDepth},
}

func (s *Stats) counter(m algofmt.Metric) int64 {
	switch m {
	case algofmt.Compares:
		return s.Compares
	case algofmt.Copies:
		return s.Copies
	case algofmt.Merges:
		return s.Merges
	case algofmt.Pivots:
		return s.Pivots
	case algofmt.Recursions:
		return s.Recursions
	case algofmt.MaxDepth:
		return int64(s.MaxDepth)
	}
	panic("not a counter: " + m.String())
}

// Record returns s as the Record of a run labeled label on input size
// n. The family, and so the set of metrics reported, follows from the
// label.
func (s *Stats) Record(label string, n int) *algofmt.Record {
	rec := &algofmt.Record{Label: label, Algo: algofmt.FamilyOf(label), N: n}
	for _, m := range familyMetrics[rec.Algo] {
		rec.Values[m] = algounit.IntNumber(s.counter(m))
	}
	rec.Values[algofmt.TimeMS] = algounit.FloatNumber(float64(s.Elapsed) / float64(time.Millisecond))
	return rec
}

func (s *Stats) enter(depth int) {
	if depth > s.MaxDepth {
		s.MaxDepth = depth
	}
}
