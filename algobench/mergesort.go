// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algobench

import "time"

// insertionCutoff is the subarray length at or below which MergeSort
// switches to insertion sort.
const insertionCutoff = 24

// MergeSort sorts a in place with a top-down merge sort and reports
// compares, element copies, merges and recursion depth.
//
// Adjacent runs that are already in order are not merged.
func MergeSort(a []int) Stats {
	var s Stats
	if len(a) <= 1 {
		return s
	}
	buf := make([]int, len(a))
	start := time.Now()
	s.mergeSort(a, buf, 1)
	s.Elapsed = time.Since(start)
	return s
}

func (s *Stats) mergeSort(a, buf []int, depth int) {
	s.enter(depth)
	if len(a) <= 1 {
		return
	}
	if len(a) <= insertionCutoff {
		s.insertionSort(a)
		return
	}
	mid := len(a) / 2
	s.mergeSort(a[:mid], buf, depth+1)
	s.mergeSort(a[mid:], buf, depth+1)

	s.Compares++
	if a[mid-1] <= a[mid] {
		return
	}
	s.merge(a, mid, buf)
	s.Merges++
}

// merge merges the sorted halves a[:mid] and a[mid:] through buf.
func (s *Stats) merge(a []int, mid int, buf []int) {
	i, j, k := 0, mid, 0
	for i < mid && j < len(a) {
		s.Compares++
		if a[i] <= a[j] {
			buf[k] = a[i]
			i++
		} else {
			buf[k] = a[j]
			j++
		}
		k++
	}
	k += copy(buf[k:], a[i:mid])
	k += copy(buf[k:], a[j:])
	// Every element goes into buf and back.
	s.Copies += int64(2 * k)
	copy(a, buf[:k])
}

func (s *Stats) insertionSort(a []int) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for ; j >= 0 && a[j] > x; j-- {
			s.Compares++
			a[j+1] = a[j]
			s.Copies++
		}
		if j >= 0 {
			s.Compares++
		}
		a[j+1] = x
		s.Copies++
	}
}
