// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package delaunay builds a Delaunay triangulation of a planar point set,
// represented as a compact half-edge mesh: a triangle index array, a
// half-edge twin array, and a counter-clockwise convex hull sequence. It
// supports in-place re-triangulation after callers mutate the coordinate
// array, for iterative algorithms such as Lloyd relaxation; computing a
// Voronoi dual from the resulting mesh is left to the caller.
package delaunay

import (
	"fmt"
	"math"
)

// Point is a planar coordinate pair.
type Point struct {
	X, Y float64
}

// Triangulation holds one build of a Delaunay triangulation over a
// caller-owned coordinate buffer, plus the working arrays Update reuses on
// every rebuild so repeated triangulation (e.g. inside a relaxation loop)
// is allocation-free after construction.
type Triangulation struct {
	coords []float64
	n      int

	epsilon      float64
	edgeStackCap int

	ids   []int
	dists []float64

	hull *hullState
	hash *hullHash
	mesh *meshStore
	lg   *legalizer

	hullBuf []int

	cx, cy float64

	// Triangles is the CCW-wound half-edge triangle array, length 3T.
	Triangles []int
	// HalfEdges is the twin array parallel to Triangles; -1 marks a hull
	// edge.
	HalfEdges []int
	// Hull is the convex hull in CCW order, starting from an
	// implementation-defined vertex.
	Hull []int
}

// New builds a Triangulation from a flat, interleaved x,y coordinate slice
// of length 2N, N >= 3. The slice is borrowed, not copied: the caller may
// mutate it and call Update to re-triangulate in place, which is the
// documented pattern for iterative algorithms such as Lloyd relaxation.
func New(coords []float64, opts ...Option) (*Triangulation, error) {
	if len(coords)%2 != 0 {
		return nil, wrapf(ErrInvalidInput, "coordinate slice length %d is not even", len(coords))
	}
	n := len(coords) / 2
	if n < 3 {
		return nil, wrapf(ErrInsufficientPoints, "got %d points, need at least 3", n)
	}
	for i, c := range coords {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, wrapf(ErrInvalidInput, "coordinate at index %d is %v", i, c)
		}
	}

	o := options{epsilon: defaultEpsilon, edgeStackCapacity: defaultEdgeStackCapacity}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	t := &Triangulation{
		coords:       coords,
		n:            n,
		epsilon:      o.epsilon,
		edgeStackCap: o.edgeStackCapacity,
		ids:          make([]int, n),
		dists:        make([]float64, n),
		hull:         newHullState(n),
		hash:         newHullHash(n, 0, 0),
		mesh:         newMeshStore(n),
		hullBuf:      make([]int, n),
	}
	t.lg = newLegalizer(t.mesh, t.hull, t.pointAt, t.edgeStackCap)

	if err := t.Update(); err != nil {
		return nil, err
	}
	return t, nil
}

// NewFromPoints builds a Triangulation from a slice of point records. The
// points are copied once into an internal flat buffer; callers that want to
// mutate coordinates between triangulations should use Coords to reach that
// buffer, or build with New against a slice they already own.
func NewFromPoints(points []Point, opts ...Option) (*Triangulation, error) {
	coords := make([]float64, 2*len(points))
	for i, p := range points {
		coords[2*i] = p.X
		coords[2*i+1] = p.Y
	}
	return New(coords, opts...)
}

// Coords returns the coordinate buffer this Triangulation reads from.
// Mutating it and calling Update is the supported way to re-triangulate a
// moved point set.
func (t *Triangulation) Coords() []float64 {
	return t.coords
}

func (t *Triangulation) pointAt(i int) (float64, float64) {
	return t.coords[2*i], t.coords[2*i+1]
}

// NumPoints returns the number of input points N.
func (t *Triangulation) NumPoints() int {
	return t.n
}

// SeedCircumcenter returns the circumcenter of the seed triangle chosen by
// the most recent Update. It is the origin used for pseudo-angle
// computation during that build, not a centroid of the input. It is
// unspecified when the input is all-collinear, since no seed triangle
// exists in that case.
func (t *Triangulation) SeedCircumcenter() Point {
	return Point{t.cx, t.cy}
}

// TriangleVertices returns the three corner points of triangle tIdx. It
// panics if tIdx is out of range.
func (t *Triangulation) TriangleVertices(tIdx int) (Point, Point, Point) {
	base := 3 * tIdx
	if tIdx < 0 || base+2 >= len(t.Triangles) {
		panic(fmt.Sprintf("TriangleVertices: tIdx %d out of range [0, %d)", tIdx, len(t.Triangles)/3))
	}
	a, b, c := t.Triangles[base], t.Triangles[base+1], t.Triangles[base+2]
	ax, ay := t.pointAt(a)
	bx, by := t.pointAt(b)
	cx, cy := t.pointAt(c)
	return Point{ax, ay}, Point{bx, by}, Point{cx, cy}
}

// Update re-runs the full build over the current contents of the
// coordinate buffer, overwriting Triangles, HalfEdges, and Hull in place.
// Calling it twice without mutating coordinates in between yields
// bit-identical outputs.
func (t *Triangulation) Update() error {
	n := t.n
	t.mesh.len = 0

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < n; i++ {
		x, y := t.pointAt(i)
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x > maxX {
			maxX = x
		}
		if y > maxY {
			maxY = y
		}
		t.ids[i] = i
	}
	bcx := (minX + maxX) / 2
	bcy := (minY + maxY) / 2

	i0 := 0
	minDist := math.Inf(1)
	for i := 0; i < n; i++ {
		x, y := t.pointAt(i)
		if d := distSquared(x, y, bcx, bcy); d < minDist {
			i0, minDist = i, d
		}
	}

	i0x, i0y := t.pointAt(i0)
	i1 := 0
	minDist = math.Inf(1)
	for i := 0; i < n; i++ {
		if i == i0 {
			continue
		}
		x, y := t.pointAt(i)
		d := distSquared(x, y, i0x, i0y)
		if d < minDist && d > 0 {
			i1, minDist = i, d
		}
	}

	if math.IsInf(minDist, 1) {
		// Every other point coincides with i0: fewer than 2 distinct points,
		// so the seed search cannot even reach the collinear fast path.
		return wrapf(ErrInsufficientPoints, "fewer than 2 distinct points among %d inputs", n)
	}

	i1x, i1y := t.pointAt(i1)
	i2 := 0
	minRadius := math.Inf(1)
	for i := 0; i < n; i++ {
		if i == i0 || i == i1 {
			continue
		}
		x, y := t.pointAt(i)
		if r := circumradius(i0x, i0y, i1x, i1y, x, y); r < minRadius {
			i2, minRadius = i, r
		}
	}

	if math.IsInf(minRadius, 1) {
		return t.buildCollinear()
	}

	i2x, i2y := t.pointAt(i2)
	if !orient(i0x, i0y, i1x, i1y, i2x, i2y) {
		i1, i2 = i2, i1
		i1x, i1y = t.pointAt(i1)
		i2x, i2y = t.pointAt(i2)
	}

	ccx, ccy := circumcenter(i0x, i0y, i1x, i1y, i2x, i2y)
	t.cx, t.cy = ccx, ccy

	for i := 0; i < n; i++ {
		x, y := t.pointAt(i)
		t.dists[i] = distSquared(x, y, ccx, ccy)
	}
	quicksort(t.ids, t.dists, 0, n-1)

	t.hash.reset(ccx, ccy)
	t.hull.seed(i0, i1, i2)
	t.mesh.addTriangle(i0, i1, i2, -1, -1, -1)
	t.hash.insert(i0x, i0y, i0)
	t.hash.insert(i1x, i1y, i1)
	t.hash.insert(i2x, i2y, i2)

	hullSize := 3
	var xp, yp float64
	for k := 0; k < n; k++ {
		i := t.ids[k]
		x, y := t.pointAt(i)

		if k > 0 && math.Abs(x-xp) <= t.epsilon && math.Abs(y-yp) <= t.epsilon {
			continue
		}
		xp, yp = x, y

		if i == i0 || i == i1 || i == i2 {
			continue
		}

		hint := t.hash.find(x, y, t.hull.next)
		if hint == -1 {
			continue // hash probe found no live hull vertex: treat as near-duplicate
		}
		e := t.walkToVisibleEdge(x, y, hint)
		if e == -1 {
			continue // walk cycled back to start: treat as near-duplicate
		}
		start := t.hull.prev[hint]

		n1 := t.hull.next[e]
		tri := t.mesh.addTriangle(e, i, n1, -1, -1, t.hull.tri[e])
		t.hull.tri[i] = t.lg.legalize(tri + 2)
		t.hull.tri[e] = tri
		hullSize++

		// Walk forward, absorbing hull vertices the new point sees.
		for {
			q := t.hull.next[n1]
			n1x, n1y := t.pointAt(n1)
			qx, qy := t.pointAt(q)
			if !orient(x, y, qx, qy, n1x, n1y) {
				break
			}
			tri = t.mesh.addTriangle(n1, i, q, t.hull.tri[i], -1, t.hull.tri[n1])
			t.hull.tri[i] = t.lg.legalize(tri + 2)
			t.hull.remove(n1)
			hullSize--
			n1 = q
		}

		// Walk backward only if the visible edge is the first one the
		// search examined; otherwise the edge before it was already found
		// not visible.
		if e == start {
			for {
				q := t.hull.prev[e]
				qx, qy := t.pointAt(q)
				ex, ey := t.pointAt(e)
				if !orient(x, y, ex, ey, qx, qy) {
					break
				}
				tri = t.mesh.addTriangle(q, i, e, -1, t.hull.tri[e], t.hull.tri[q])
				t.lg.legalize(tri + 2)
				t.hull.tri[q] = tri
				t.hull.remove(e)
				hullSize--
				e = q
			}
		}

		t.hull.start = e
		t.hull.prev[i] = e
		t.hull.next[e] = i
		t.hull.prev[n1] = i
		t.hull.next[i] = n1

		t.hash.insert(x, y, i)
		ex, ey := t.pointAt(e)
		t.hash.insert(ex, ey, e)
	}

	e := t.hull.start
	for k := 0; k < hullSize; k++ {
		t.hullBuf[k] = e
		e = t.hull.next[e]
	}
	t.Hull = t.hullBuf[:hullSize]
	t.Triangles = t.mesh.triangles[:t.mesh.len]
	t.HalfEdges = t.mesh.halfEdges[:t.mesh.len]
	return nil
}

// walkToVisibleEdge walks forward from a live hull vertex until it finds an
// edge the point (x, y) sees, i.e. lies strictly to the right of (outside
// the counter-clockwise hull), per spec.md's hull search: step back once
// from the hash hint, then advance while the point does not yet see the
// current edge.
func (t *Triangulation) walkToVisibleEdge(x, y float64, hint int) int {
	start := t.hull.prev[hint]
	e := start
	for {
		q := t.hull.next[e]
		ex, ey := t.pointAt(e)
		qx, qy := t.pointAt(q)
		if orient(x, y, qx, qy, ex, ey) {
			return e
		}
		e = q
		if e == start {
			return -1
		}
	}
}

// buildCollinear handles the degenerate all-collinear input: triangles and
// halfEdges are empty, and Hull is the collinear point order along the
// dominant axis with exact-duplicate points dropped.
func (t *Triangulation) buildCollinear() error {
	x0, y0 := t.pointAt(0)
	useX := false
	for i := 0; i < t.n; i++ {
		x, _ := t.pointAt(i)
		if x-x0 != 0 {
			useX = true
			break
		}
	}
	for i := 0; i < t.n; i++ {
		x, y := t.pointAt(i)
		if useX {
			t.dists[i] = x - x0
		} else {
			t.dists[i] = y - y0
		}
	}
	quicksort(t.ids, t.dists, 0, t.n-1)

	j := 0
	d0 := math.Inf(-1)
	for _, id := range t.ids {
		d := t.dists[id]
		if d > d0 {
			t.hullBuf[j] = id
			j++
			d0 = d
		}
	}

	t.Hull = t.hullBuf[:j]
	t.Triangles = t.mesh.triangles[:0]
	t.HalfEdges = t.mesh.halfEdges[:0]
	return nil
}
