// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algobench

import (
	"math/rand"
	"time"
)

// QuickSort sorts a in place with a randomized quicksort and reports
// compares, pivots chosen, recursive calls and recursion depth. Pivots
// are drawn from rng.
//
// QuickSort recurses into the smaller side of each partition and loops
// on the larger one, so its depth is logarithmic in len(a).
func QuickSort(a []int, rng *rand.Rand) Stats {
	var s Stats
	start := time.Now()
	if len(a) > 1 {
		s.quickSort(a, rng, 1)
	}
	s.Elapsed = time.Since(start)
	return s
}

func (s *Stats) quickSort(a []int, rng *rand.Rand, depth int) {
	s.enter(depth)
	for len(a) > 1 {
		p := s.partition(a, rng)
		left, right := a[:p], a[p+1:]
		if len(left) < len(right) {
			if len(left) > 1 {
				s.Recursions++
				s.quickSort(left, rng, depth+1)
			}
			a = right
		} else {
			if len(right) > 1 {
				s.Recursions++
				s.quickSort(right, rng, depth+1)
			}
			a = left
		}
	}
}

// partition partitions a around a random pivot (Lomuto scheme) and
// returns the pivot's final index.
func (s *Stats) partition(a []int, rng *rand.Rand) int {
	hi := len(a) - 1
	s.Pivots++
	pi := rng.Intn(len(a))
	a[pi], a[hi] = a[hi], a[pi]
	pivot := a[hi]

	i := 0
	for j := 0; j < hi; j++ {
		s.Compares++
		if a[j] <= pivot {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[hi] = a[hi], a[i]
	return i
}
