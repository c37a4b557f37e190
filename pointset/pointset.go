// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package pointset provides utility functions for generating planar point
// sets used to exercise and benchmark Delaunay triangulation.

package pointset

import (
	"math"
	"math/rand"
)

// GenerateRandomPoints generates a flat, interleaved x,y coordinate slice of
// cnt uniformly random points in [0, side)^2. The seed parameter ensures
// reproducibility.
func GenerateRandomPoints(cnt int, side float64, seed int64) []float64 {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	coords := make([]float64, 2*cnt)

	for i := range cnt {
		coords[2*i] = random.Float64() * side
		coords[2*i+1] = random.Float64() * side
	}

	return coords
}

// GenerateGridPoints generates a flat, interleaved x,y coordinate slice for
// an n x n axis-aligned grid spanning [0, side)^2, n*n points in total.
func GenerateGridPoints(n int, side float64) []float64 {
	if n <= 0 {
		return nil
	}
	coords := make([]float64, 0, 2*n*n)
	step := side / float64(n)
	for i := range n {
		for j := range n {
			coords = append(coords, float64(i)*step, float64(j)*step)
		}
	}
	return coords
}

// GenerateRingPoints generates a flat, interleaved x,y coordinate slice
// with a single point at the origin followed by cnt points evenly spaced
// around a circle of the given radius. It is used to exercise the
// near-degenerate, large-radius case where the seed search must still
// converge on a well-conditioned triangle.
func GenerateRingPoints(cnt int, radius float64) []float64 {
	coords := make([]float64, 0, 2*(cnt+1))
	coords = append(coords, 0, 0)
	for i := range cnt {
		theta := 2 * math.Pi * float64(i) / float64(cnt)
		coords = append(coords, radius*math.Sin(theta), radius*math.Cos(theta))
	}
	return coords
}
