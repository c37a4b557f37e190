// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"github.com/arl/assertgo"
)

// legalizer runs the iterative edge-flip loop that restores the local
// Delaunay property after a point is inserted. Recursion is eliminated in
// favor of a fixed-capacity work stack: at scale, a recursive legalize can
// blow the call stack on adversarial inputs, while a capped stack degrades
// to a documented, bounded loss of local legality instead.
type legalizer struct {
	mesh     *meshStore
	hull     *hullState
	pointAt  func(i int) (float64, float64)
	stack    []int
	capacity int
}

// newLegalizer builds a legalizer operating over mesh and hull, resolving
// point ids to coordinates via pointAt, with a flip stack of the given
// capacity.
func newLegalizer(mesh *meshStore, hull *hullState, pointAt func(int) (float64, float64), capacity int) *legalizer {
	return &legalizer{
		mesh:     mesh,
		hull:     hull,
		pointAt:  pointAt,
		stack:    make([]int, 0, capacity),
		capacity: capacity,
	}
}

// legalize checks half-edge a's opposite pair and flips illegal edges until
// none remain reachable from a within the stack's capacity. It returns the
// "outer" half-edge the caller should record as the new hull-incident edge
// for the point just inserted.
func (lg *legalizer) legalize(a int) int {
	stack := lg.stack[:0]
	var ar int

	for {
		b := lg.mesh.halfEdges[a]

		a0 := a - a%3
		ar = a0 + (a+2)%3

		if b == -1 {
			if len(stack) == 0 {
				break
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
			continue
		}

		b0 := b - b%3
		al := a0 + (a+1)%3
		bl := b0 + (b+2)%3

		p0 := lg.mesh.triangles[ar]
		pr := lg.mesh.triangles[a]
		pl := lg.mesh.triangles[al]
		p1 := lg.mesh.triangles[bl]

		p0x, p0y := lg.pointAt(p0)
		prx, pry := lg.pointAt(pr)
		plx, ply := lg.pointAt(pl)
		p1x, p1y := lg.pointAt(p1)

		if !inCircle(p0x, p0y, prx, pry, plx, ply, p1x, p1y) {
			if len(stack) == 0 {
				break
			}
			a, stack = stack[len(stack)-1], stack[:len(stack)-1]
			continue
		}

		lg.mesh.triangles[a] = p1
		lg.mesh.triangles[b] = p0

		hbl := lg.mesh.halfEdges[bl]
		if hbl == -1 {
			lg.relinkHullTri(bl, a)
		}

		lg.mesh.link(a, hbl)
		lg.mesh.link(b, lg.mesh.halfEdges[ar])
		lg.mesh.link(ar, bl)

		br := b0 + (b+1)%3
		if len(stack) < lg.capacity {
			stack = append(stack, br)
		}
		// Continue with the same a: after the flip it names the outer edge
		// from p1 to pl that bl used to hold, and the top of the loop
		// re-reads its new opposite.
	}

	lg.stack = stack[:0]
	return ar
}

// relinkHullTri is reached when a flip moves the hull edge bl (which has no
// twin) so that half-edge a takes its place on the hull. It walks the
// hullPrev chain looking for the vertex whose tri field still points at bl
// and repoints it at a.
//
// The spec this implements leaves unresolved what should happen if that
// scan fails to find bl: the reference behavior silently leaves hullTri
// stale. That would corrupt hull.tri for whichever vertex never gets
// updated, so here the scan is asserted to succeed; assert.True is a no-op
// unless built with -tags debug, so production behavior is unchanged from
// "silently move on" while any debug-tagged test run turns a failed scan
// into a hard failure instead of a latent corruption.
func (lg *legalizer) relinkHullTri(bl, a int) {
	e := lg.hull.start
	for {
		if lg.hull.tri[e] == bl {
			lg.hull.tri[e] = a
			return
		}
		e = lg.hull.prev[e]
		if e == lg.hull.start {
			break
		}
	}
	assert.True(false, "legalize: hullPrev scan from %d found no hullTri entry for half-edge %d", lg.hull.start, bl)
}
