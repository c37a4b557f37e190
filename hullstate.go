// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

// hullState is a doubly linked list over point ids representing the
// advancing convex hull, plus the per-hull-vertex incident triangle edge
// (tri). It is backed by contiguous integer buffers indexed by point id,
// not pointer-linked nodes, per the fast-path index arithmetic the rest of
// the mesh uses. A point id i is considered removed from the hull iff
// next[i] == i. Hull size is tracked by the caller (the Triangulation), not
// here.
type hullState struct {
	prev  []int
	next  []int
	tri   []int
	start int
}

// newHullState allocates hull-tracking arrays for n point ids.
func newHullState(n int) *hullState {
	return &hullState{
		prev: make([]int, n),
		next: make([]int, n),
		tri:  make([]int, n),
	}
}

// seed initializes the hull as the three mutual links of the seed triangle.
// It assumes the seed triangle was just appended to the mesh at triangle
// index 0, so its half-edges are 0, 1, 2 for i0, i1, i2 respectively.
func (h *hullState) seed(i0, i1, i2 int) {
	h.next[i0] = i1
	h.prev[i2] = i1
	h.next[i1] = i2
	h.prev[i0] = i2
	h.next[i2] = i0
	h.prev[i1] = i0

	h.tri[i0] = 0
	h.tri[i1] = 1
	h.tri[i2] = 2

	h.start = i0
}

// live reports whether point id x is currently on the hull.
func (h *hullState) live(x int) bool {
	return h.next[x] != x
}

// remove marks point id x as no longer on the hull.
func (h *hullState) remove(x int) {
	h.next[x] = x
}
