// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/algoperf/algoperf/algofmt"
	"github.com/algoperf/algoperf/algoproc"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "metrics.csv")
	if err := os.WriteFile(out, []byte("earlier, n: 1\n"), 0666); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	args := []string{"-n", "300", "-seed", "5", "-runs", "2", "-out", out}
	if err := run(&stdout, args); err != nil {
		t.Fatal(err)
	}
	if want := "appended 8 runs to " + out + "\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}

	files := algofmt.Files{Paths: []string{out}}
	recs, err := files.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	var labels []string
	for _, rec := range recs {
		labels = append(labels, rec.Label)
	}
	want := []string{
		"earlier",
		"ms_rand_300_seed5", "qs_rand_300_seed5", "select_rand_300_seed5_k150", "closest_rand_300_seed5",
		"ms_rand_300_seed6", "qs_rand_300_seed6", "select_rand_300_seed6_k150", "closest_rand_300_seed6",
	}
	if len(labels) != len(want) {
		t.Fatalf("labels = %q, want %q", labels, want)
	}
	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("labels[%d] = %q, want %q", i, labels[i], want[i])
		}
	}

	// Every family shows up in both charts' series.
	for _, m := range []algofmt.Metric{algofmt.TimeMS, algofmt.MaxDepth} {
		s := algoproc.Aggregate(recs, m)
		for _, fam := range []algofmt.Family{algofmt.Mergesort, algofmt.Quicksort, algofmt.Select, algofmt.Closest} {
			if len(s[fam]) != 2 {
				t.Errorf("%s series for %s has %d points, want 2", m, fam, len(s[fam]))
			}
		}
	}
}

func TestRunOneAlgorithm(t *testing.T) {
	out := filepath.Join(t.TempDir(), "select.log")
	if err := run(new(bytes.Buffer), []string{"-algo", "select", "-n", "50", "-k", "3", "-out", out}); err != nil {
		t.Fatal(err)
	}
	files := algofmt.Files{Paths: []string{out}}
	recs, err := files.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].Label != "select_rand_50_seed123_k3" {
		t.Errorf("got %d records, first %v", len(recs), recs)
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"-algo", "bogosort"},
		{"-algo", "select", "-n", "10", "-k", "10"},
		{"extra"},
		{"-n", "ten"},
	} {
		out := filepath.Join(dir, "metrics.csv")
		if err := run(new(bytes.Buffer), append(args, "-out", out)); err == nil {
			t.Errorf("run(%q) succeeded", args)
		}
	}
}
