// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Algoplot cleans a log of sorting and selection algorithm metrics and
// charts how the algorithms scale.
//
// Usage:
//
//	algoplot [file]
//
// The input, metrics.csv by default, holds one run per line:
//
//	ms_100, n: 100, compares: 521, max depth: 7, time in ms: 3,2
//
// Algoplot creates the results directory if needed and writes three
// files to it:
//
//	metrics_clean.csv  one normalized row per run
//	time_ms.png        time_ms against n, one line per algorithm family
//	depth.png          max_depth against n, one line per algorithm family
//
// Lines that do not name an input size are ignored. A malformed
// number stops algoplot with an error naming the file and line.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/algoproc"
	"github.com/algoperf/algoperf/algoseries"
)

const (
	defaultInput = "metrics.csv"
	resultsDir   = "results"
)

// charts lists the charts written for each run.
var charts = []struct {
	metric algofmt.Metric
	file   string
	ylabel string
}{
	{algofmt.TimeMS, "time_ms.png", "time (ms)"},
	{algofmt.MaxDepth, "depth.png", "max depth"},
}

func main() {
	log.SetPrefix("algoplot: ")
	log.SetFlags(0)

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(stdout io.Writer, args []string) error {
	src := defaultInput
	if len(args) > 0 {
		src = args[0]
	}

	if err := os.MkdirAll(resultsDir, 0777); err != nil {
		return err
	}

	files := algofmt.Files{Paths: []string{src}}
	recs, err := files.ReadAll()
	if err != nil {
		return err
	}
	if len(recs) == 0 {
		fmt.Fprintln(stdout, "No data parsed from", src)
		return nil
	}

	clean := filepath.Join(resultsDir, "metrics_clean.csv")
	if err := algofmt.WriteCSVFile(clean, recs); err != nil {
		return err
	}
	for _, c := range charts {
		s := algoproc.Aggregate(recs, c.metric)
		if err := algoseries.PlotXY(s, c.ylabel, filepath.Join(resultsDir, c.file)); err != nil {
			return fmt.Errorf("plotting %s: %w", c.metric, err)
		}
	}
	fmt.Fprintf(stdout, "Wrote: %s and PNGs in %s\n", clean, resultsDir)
	return nil
}
