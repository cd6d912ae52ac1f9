// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package algobench

import (
	"math"
	"sort"
	"time"
)

// A Point is a point in the integer plane.
type Point struct {
	X, Y int
}

// maxStripScan is how many following strip points are checked against
// each point near the dividing line.
const maxStripScan = 7

// ClosestPair returns the smallest distance between two of pts, or 0
// if there are fewer than two points. It uses the divide and conquer
// algorithm, merging by y as it returns, and reports distance
// compares, element copies and recursion depth. pts is not modified.
//
// Sorting the points by x before the timed part is not counted.
func ClosestPair(pts []Point) (float64, Stats) {
	var s Stats
	if len(pts) < 2 {
		return 0, s
	}
	px := append([]Point(nil), pts...)
	sort.Slice(px, func(i, j int) bool {
		if px[i].X != px[j].X {
			return px[i].X < px[j].X
		}
		return px[i].Y < px[j].Y
	})
	tmp := make([]Point, len(px))
	strip := make([]Point, 0, len(px))

	start := time.Now()
	best2 := s.closest(px, tmp, strip, 1)
	s.Elapsed = time.Since(start)
	return math.Sqrt(float64(best2)), s
}

// closest returns the smallest squared distance within a, which is
// sorted by x on entry and by y on return.
func (s *Stats) closest(a, tmp, strip []Point, depth int) int64 {
	s.enter(depth)
	if len(a) <= 3 {
		best2 := int64(math.MaxInt64)
		for i := range a {
			for j := i + 1; j < len(a); j++ {
				s.Compares++
				if d2 := dist2(a[i], a[j]); d2 < best2 {
					best2 = d2
				}
			}
		}
		sort.Slice(a, func(i, j int) bool { return a[i].Y < a[j].Y })
		return best2
	}

	m := len(a) / 2
	midX := a[m].X
	best2 := s.closest(a[:m], tmp, strip, depth+1)
	if r := s.closest(a[m:], tmp, strip, depth+1); r < best2 {
		best2 = r
	}

	// Merge the halves by y.
	i, j, k := 0, m, 0
	for i < m && j < len(a) {
		if a[i].Y <= a[j].Y {
			tmp[k] = a[i]
			i++
		} else {
			tmp[k] = a[j]
			j++
		}
		k++
	}
	k += copy(tmp[k:], a[i:m])
	k += copy(tmp[k:], a[j:])
	s.Copies += int64(k)
	copy(a, tmp[:k])

	strip = strip[:0]
	for _, p := range a {
		if dx := int64(p.X - midX); dx*dx < best2 {
			strip = append(strip, p)
		}
	}
	for p := range strip {
		for q := p + 1; q < len(strip) && q <= p+maxStripScan; q++ {
			s.Compares++
			if dy := int64(strip[q].Y - strip[p].Y); dy*dy >= best2 {
				break
			}
			if d2 := dist2(strip[p], strip[q]); d2 < best2 {
				best2 = d2
			}
		}
	}
	return best2
}

func dist2(p, q Point) int64 {
	dx, dy := int64(p.X-q.X), int64(p.Y-q.Y)
	return dx*dx + dy*dy
}
