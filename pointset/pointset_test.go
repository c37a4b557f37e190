// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package pointset

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateRandomPoints_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed int64
	}{
		{"zero points", 0, 42},
		{"one point", 1, 42},
		{"ten points", 10, 0},
		{"hundred points", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords := GenerateRandomPoints(tt.cnt, 1000, tt.seed)
			if len(coords) != 2*tt.cnt {
				t.Errorf("GenerateRandomPoints(%v, ...) len = %v, want %v", tt.cnt,
					len(coords), 2*tt.cnt)
			}
		})
	}
}

func TestGenerateRandomPoints_WithinBounds(t *testing.T) {
	const (
		cnt  = 200
		side = 500.0
		seed = 0
	)
	coords := GenerateRandomPoints(cnt, side, seed)
	for i := 0; i < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if x < 0 || x >= side || y < 0 || y >= side {
			t.Errorf("point %d = (%v, %v) out of bounds [0, %v)", i/2, x, y, side)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, 100, seed)
	b := GenerateRandomPoints(cnt, 100, seed)
	if diff := cmp.Diff(b, a); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, ...) mismatch (-want +got):\n%v", cnt, diff)
	}
}

func TestGenerateGridPoints(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"3x3", 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coords := GenerateGridPoints(tt.n, 10)
			if got := len(coords) / 2; got != tt.want {
				t.Errorf("GenerateGridPoints(%v, ...) point count = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}

func TestGenerateRingPoints(t *testing.T) {
	const (
		cnt    = 16
		radius = 1e10
	)
	coords := GenerateRingPoints(cnt, radius)
	if got, want := len(coords)/2, cnt+1; got != want {
		t.Fatalf("GenerateRingPoints(%v, ...) point count = %v, want %v", cnt, got, want)
	}
	if coords[0] != 0 || coords[1] != 0 {
		t.Errorf("GenerateRingPoints(%v, ...)[0] = (%v, %v), want origin", cnt, coords[0], coords[1])
	}
	for i := 1; i <= cnt; i++ {
		x, y := coords[2*i], coords[2*i+1]
		dist := math.Hypot(x, y)
		if math.Abs(dist-radius) > radius*1e-9 {
			t.Errorf("GenerateRingPoints(%v, ...)[%d] distance = %v, want ≈%v", cnt, i, dist, radius)
		}
	}
}
