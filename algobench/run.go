// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algobench

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/algoperf/algoperf/algofmt"
)

// valueRange bounds the random inputs to [-valueRange, valueRange].
const valueRange = 1000000

// Families lists the families Run can benchmark, in the order they
// run for "all".
var Families = []algofmt.Family{algofmt.Mergesort, algofmt.Quicksort, algofmt.Select, algofmt.Closest}

// A Config describes one benchmark run.
type Config struct {
	Algo algofmt.Family
	N    int   // input size
	Seed int64 // seed for the input and any random choices
	K    int   // rank to select; only for Select
}

// Run benchmarks one algorithm on random input generated from
// cfg.Seed, checks its result, and returns the run's Record. The
// label records the algorithm, input size and seed, for example
// "ms_rand_1000_seed42".
func Run(cfg Config) (*algofmt.Record, error) {
	if cfg.N < 0 {
		return nil, fmt.Errorf("negative input size %d", cfg.N)
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	var (
		label string
		s     Stats
	)
	switch cfg.Algo {
	case algofmt.Mergesort:
		a := randInts(rng, cfg.N)
		s = MergeSort(a)
		if !sort.IntsAreSorted(a) {
			return nil, fmt.Errorf("mergesort: output not sorted")
		}
		label = fmt.Sprintf("ms_rand_%d_seed%d", cfg.N, cfg.Seed)

	case algofmt.Quicksort:
		a := randInts(rng, cfg.N)
		s = QuickSort(a, rng)
		if !sort.IntsAreSorted(a) {
			return nil, fmt.Errorf("quicksort: output not sorted")
		}
		label = fmt.Sprintf("qs_rand_%d_seed%d", cfg.N, cfg.Seed)

	case algofmt.Select:
		a := randInts(rng, cfg.N)
		sorted := append([]int(nil), a...)
		sort.Ints(sorted)
		v, st, err := Select(a, cfg.K)
		if err != nil {
			return nil, err
		}
		if v != sorted[cfg.K] {
			return nil, fmt.Errorf("select: got %d for k = %d, want %d", v, cfg.K, sorted[cfg.K])
		}
		s = st
		label = fmt.Sprintf("select_rand_%d_seed%d_k%d", cfg.N, cfg.Seed, cfg.K)

	case algofmt.Closest:
		pts := make([]Point, cfg.N)
		for i := range pts {
			pts[i] = Point{randInt(rng), randInt(rng)}
		}
		d, st := ClosestPair(pts)
		if d < 0 || math.IsNaN(d) {
			return nil, fmt.Errorf("closest: bad distance %v", d)
		}
		s = st
		label = fmt.Sprintf("closest_rand_%d_seed%d", cfg.N, cfg.Seed)

	default:
		return nil, fmt.Errorf("unknown algorithm %q", cfg.Algo)
	}
	return s.Record(label, cfg.N), nil
}

func randInt(rng *rand.Rand) int {
	return rng.Intn(2*valueRange+1) - valueRange
}

func randInts(rng *rand.Rand, n int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = randInt(rng)
	}
	return a
}
