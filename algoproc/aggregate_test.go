// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algoproc

import (
	"sort"
	"strings"
	"testing"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/google/go-cmp/cmp"
)

func parse(t *testing.T, log string) []*algofmt.Record {
	t.Helper()
	recs, err := algofmt.NewReader(strings.NewReader(log), "test").ReadAll()
	if err != nil {
		t.Fatal("parsing failed: ", err)
	}
	return recs
}

const testLog = `
ms_1000, n: 1000, compares: 8700, max_depth: 10, time_ms: 0,9
qs_100, n: 100, compares: 640, max depth: 9, time in ms: 0,07
ms_100, n: 100, compares: 521, time in ms: 3,2
select_100, n: 100, compares: 300, max_depth: 5
ms_100_again, n: 100, compares: 530, max_depth: 7, time_ms: 2.5
qs_10, n: 10, max_depth: 4, time_ms: 0.01
foo, x:1
ms_10, n: 10, max_depth: 3, time_ms: 1
`

func TestAggregate(t *testing.T) {
	recs := parse(t, testLog)

	got := Aggregate(recs, algofmt.TimeMS)
	want := Series{
		algofmt.Mergesort: {{10, 1}, {100, 3.2}, {100, 2.5}, {1000, 0.9}},
		algofmt.Quicksort: {{10, 0.01}, {100, 0.07}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("time_ms series (-want +got):\n%s", diff)
	}

	got = Aggregate(recs, algofmt.MaxDepth)
	want = Series{
		algofmt.Mergesort: {{10, 3}, {100, 7}, {1000, 10}},
		algofmt.Quicksort: {{10, 4}, {100, 9}},
		algofmt.Select:    {{100, 5}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("max_depth series (-want +got):\n%s", diff)
	}
}

func TestAggregateSorted(t *testing.T) {
	recs := parse(t, testLog)
	for _, m := range algofmt.Metrics() {
		for fam, pts := range Aggregate(recs, m) {
			if !sort.SliceIsSorted(pts, func(i, j int) bool { return pts[i].N < pts[j].N }) {
				t.Errorf("%s/%s not sorted by n: %v", m, fam, pts)
			}
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	if s := Aggregate(nil, algofmt.TimeMS); len(s) != 0 {
		t.Errorf("Aggregate(nil) = %v, want empty", s)
	}
	recs := parse(t, "ms_1, n: 1, compares: 1\n")
	if s := Aggregate(recs, algofmt.Pivots); len(s) != 0 {
		t.Errorf("Aggregate without pivots = %v, want empty", s)
	}
}

func TestAggregateNonFinite(t *testing.T) {
	recs := parse(t, "ms_1, n: 1, time_ms: 1e400\nms_2, n: 2, time_ms: nan\nms_3, n: 3, time_ms: 0,5\n")
	want := Series{algofmt.Mergesort: {{3, 0.5}}}
	if diff := cmp.Diff(want, Aggregate(recs, algofmt.TimeMS)); diff != "" {
		t.Errorf("time_ms series (-want +got):\n%s", diff)
	}
}

func TestFamilies(t *testing.T) {
	s := Series{
		algofmt.Unknown:   nil,
		algofmt.Quicksort: nil,
		algofmt.Closest:   nil,
		algofmt.Mergesort: nil,
	}
	want := []algofmt.Family{algofmt.Closest, algofmt.Mergesort, algofmt.Quicksort, algofmt.Unknown}
	if diff := cmp.Diff(want, s.Families()); diff != "" {
		t.Errorf("Families (-want +got):\n%s", diff)
	}
}
