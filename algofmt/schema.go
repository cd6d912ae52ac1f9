// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algofmt

import (
	"fmt"
	"strings"
)

// A Family is the coarse algorithm category of a benchmark run,
// inferred from its label.
type Family string

const (
	Mergesort Family = "mergesort"
	Quicksort Family = "quicksort"
	Select    Family = "select"
	Closest   Family = "closest" // closest pair of points
	Unknown   Family = "unknown"
)

// familyPrefixes maps label prefixes to families. The prefixes are
// mutually exclusive, but they are still checked in order.
var familyPrefixes = []struct {
	prefix string
	family Family
}{
	{"ms_", Mergesort},
	{"qs_", Quicksort},
	{"select_", Select},
	{"closest_", Closest},
}

// FamilyOf returns the family of the run labeled label, or Unknown.
func FamilyOf(label string) Family {
	for _, fp := range familyPrefixes {
		if strings.HasPrefix(label, fp.prefix) {
			return fp.family
		}
	}
	return Unknown
}

// A Metric identifies one of the fixed measured quantities of a run.
type Metric int

const (
	Compares Metric = iota
	Copies
	Merges
	Pivots
	Recursions
	MaxDepth
	TimeMS

	// NumMetrics is the number of metrics in the schema.
	NumMetrics int = iota
)

var metricNames = [NumMetrics]string{
	Compares:   "compares",
	Copies:     "copies",
	Merges:     "merges",
	Pivots:     "pivots",
	Recursions: "recursions",
	MaxDepth:   "max_depth",
	TimeMS:     "time_ms",
}

// Metrics returns all metrics in schema order.
func Metrics() []Metric {
	ms := make([]Metric, NumMetrics)
	for i := range ms {
		ms[i] = Metric(i)
	}
	return ms
}

// String returns the canonical name of m, which is also its column
// name in exported tables.
func (m Metric) String() string {
	if m < 0 || int(m) >= NumMetrics {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return metricNames[m]
}

// Keys returns the log keys that may carry m, in priority order.
func (m Metric) Keys() []string {
	name := m.String()
	keys := []string{name, strings.ReplaceAll(name, "_", " ")}
	if m == TimeMS {
		// Older harnesses wrote these.
		keys = append(keys, "time in ms", "time ms")
	}
	return keys
}

// LookupMetric returns the metric with canonical name name.
func LookupMetric(name string) (Metric, bool) {
	for i, n := range metricNames {
		if n == name {
			return Metric(i), true
		}
	}
	return 0, false
}

// sizeKeys are the log keys that may carry the input size, in
// priority order.
var sizeKeys = []string{"n", "array size"}
