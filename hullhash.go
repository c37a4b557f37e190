// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import "math"

// hullHash is an angular bucket map from pseudo-angle (around a fixed
// origin) to a candidate hull vertex. It is a lossy acceleration structure:
// a hit must always be validated against the doubly linked hull, never
// trusted outright, since entries are overwritten on insert and stale
// entries are never evicted.
type hullHash struct {
	buckets []int
	cx, cy  float64
}

// newHullHash allocates a hash with ⌈√n⌉ buckets, all initially empty.
func newHullHash(n int, cx, cy float64) *hullHash {
	size := int(math.Ceil(math.Sqrt(float64(n))))
	if size < 1 {
		size = 1
	}
	h := &hullHash{buckets: make([]int, size)}
	h.reset(cx, cy)
	return h
}

// reset re-centers the hash on (cx, cy) and clears every bucket. Update
// calls it once the seed circumcenter is known, since that circumcenter
// (and therefore the pseudo-angle origin) can change between calls.
func (h *hullHash) reset(cx, cy float64) {
	h.cx, h.cy = cx, cy
	for i := range h.buckets {
		h.buckets[i] = -1
	}
}

// key returns the bucket index for point (x, y).
func (h *hullHash) key(x, y float64) int {
	n := len(h.buckets)
	k := int(pseudoAngle(x-h.cx, y-h.cy) * float64(n))
	if k >= n {
		k = n - 1
	}
	return k
}

// insert overwrites the bucket for (x, y) with vertex i.
func (h *hullHash) insert(x, y float64, i int) {
	h.buckets[h.key(x, y)] = i
}

// find starts at the bucket for (x, y) and forward-probes up to the full
// bucket count for a live hull vertex, returning -1 if none is found.
func (h *hullHash) find(x, y float64, hullNext []int) int {
	n := len(h.buckets)
	key := h.key(x, y)
	for k := 0; k < n; k++ {
		entry := h.buckets[(key+k)%n]
		if entry != -1 && hullNext[entry] != entry {
			return entry
		}
	}
	return -1
}
