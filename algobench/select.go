// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algobench

import (
	"fmt"
	"sort"
	"time"
)

// groupSize is the size of the groups whose medians select the pivot.
const groupSize = 5

// Select returns the k'th smallest element of a (counting from 0)
// using the median-of-medians algorithm, which runs in worst-case
// linear time. It reports compares, element copies, calls and
// recursion depth. Select reorders a.
func Select(a []int, k int) (int, Stats, error) {
	var s Stats
	if k < 0 || k >= len(a) {
		return 0, s, fmt.Errorf("select: k = %d out of range for %d elements", k, len(a))
	}
	start := time.Now()
	v := s.selectK(a, k, 1)
	s.Elapsed = time.Since(start)
	return v, s, nil
}

func (s *Stats) selectK(a []int, k, depth int) int {
	s.Recursions++
	s.enter(depth)

	if len(a) <= groupSize {
		sort.Ints(a)
		s.Copies += int64(len(a))
		return a[k]
	}

	medians := make([]int, 0, (len(a)+groupSize-1)/groupSize)
	for lo := 0; lo < len(a); lo += groupSize {
		hi := lo + groupSize
		if hi > len(a) {
			hi = len(a)
		}
		g := a[lo:hi]
		sort.Ints(g)
		s.Copies += int64(len(g))
		medians = append(medians, g[len(g)/2])
	}
	pivot := s.selectK(medians, len(medians)/2, depth+1)

	lt, gt := s.partition3(a, pivot)
	switch {
	case k < lt:
		return s.selectK(a[:lt], k, depth+1)
	case k <= gt:
		return pivot
	default:
		return s.selectK(a[gt+1:], k-gt-1, depth+1)
	}
}

// partition3 rearranges a into elements less than, equal to and
// greater than pivot, and returns the bounds [lt, gt] of the equal
// run.
func (s *Stats) partition3(a []int, pivot int) (lt, gt int) {
	lt, i, gt := 0, 0, len(a)-1
	for i <= gt {
		switch {
		case a[i] < pivot:
			s.Compares++
			a[lt], a[i] = a[i], a[lt]
			s.Copies += 2
			lt++
			i++
		case a[i] > pivot:
			s.Compares += 2
			a[i], a[gt] = a[gt], a[i]
			s.Copies += 2
			gt--
		default:
			s.Compares += 2
			i++
		}
	}
	return lt, gt
}
