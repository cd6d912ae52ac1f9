// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package algofmt reads and writes algorithm benchmark logs.
//
// A benchmark log has one run per line:
//
//	ms_rand_1000_seed42, n: 1000, compares: 8704, max_depth: 10, time_ms: 0,41
//
// The leading label names the run; its prefix selects the algorithm
// family. The remaining key: value fields are matched against a fixed
// schema of metrics, tolerating the different spellings used by
// various harnesses over time. Lines that do not look like this are
// ignored.
//
// Normalized runs are represented as Records, which can be written to
// and read back from a flat CSV table.
package algofmt

import (
	"errors"

	"github.com/algoperf/algoperf/algounit"
)

// A Record is one normalized benchmark run.
type Record struct {
	Label string
	Algo  Family
	N     int // input size

	// Values holds each metric, indexed by Metric. Absent metrics
	// are the zero algounit.Number.
	Values [NumMetrics]algounit.Number

	// fileName and line record where this Record was read from.
	fileName string
	line     int
}

// Pos returns the file name and 1-based line number this Record was
// read from, or "", 0 if it was not read by a Reader.
func (r *Record) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// Value returns metric m of r and whether it is present.
func (r *Record) Value(m Metric) (algounit.Number, bool) {
	v := r.Values[m]
	return v, v.Valid()
}

// ErrNoSize is returned by Normalize for a run that has no input size.
var ErrNoSize = errors.New("missing input size")

// Normalize builds a Record from a parsed log line.
//
// If the line carries no input size, Normalize returns ErrNoSize and
// the line should be skipped. If the input size or a metric is
// present but is not a number, it returns an *algounit.NumError.
func Normalize(label string, pairs Pairs) (*Record, error) {
	size, ok := pairs.First(sizeKeys...)
	if !ok {
		return nil, ErrNoSize
	}
	n, err := algounit.ParseInt(size)
	if err != nil {
		return nil, err
	}

	rec := &Record{Label: label, Algo: FamilyOf(label), N: n}
	for _, m := range Metrics() {
		raw, ok := pairs.First(m.Keys()...)
		if !ok {
			continue
		}
		v, err := algounit.Parse(raw)
		if err != nil {
			return nil, err
		}
		rec.Values[m] = v
	}
	return rec, nil
}
