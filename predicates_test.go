// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"math"
	"testing"
)

func TestOrient_CCW(t *testing.T) {
	tests := []struct {
		name           string
		rx, ry         float64
		qx, qy         float64
		px, py         float64
		wantCCW        bool
	}{
		{"unit right triangle CCW", 0, 0, 1, 0, 0, 1, true},
		{"unit right triangle CW", 0, 0, 0, 1, 1, 0, false},
		{"collinear", 0, 0, 1, 1, 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orient(tt.rx, tt.ry, tt.qx, tt.qy, tt.px, tt.py)
			if got != tt.wantCCW {
				t.Errorf("orient(...) = %v, want %v", got, tt.wantCCW)
			}
		})
	}
}

func TestInCircle(t *testing.T) {
	// Unit circle quadrant triangle: (1,0), (0,1), (-1,0) on the unit circle.
	ax, ay := 1.0, 0.0
	bx, by := 0.0, 1.0
	cx, cy := -1.0, 0.0

	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"origin is inside", 0, 0, true},
		{"far point is outside", 10, 10, false},
		{"on the circle is not strictly inside", 0, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inCircle(ax, ay, bx, by, cx, cy, tt.px, tt.py)
			if got != tt.want {
				t.Errorf("inCircle(...) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCircumradius_Collinear(t *testing.T) {
	got := circumradius(0, 0, 1, 1, 2, 2)
	if !math.IsInf(got, 1) {
		t.Errorf("circumradius(collinear) = %v, want +Inf", got)
	}
}

func TestCircumcenter_UnitRightTriangle(t *testing.T) {
	x, y := circumcenter(0, 0, 2, 0, 0, 2)
	const want = 1.0
	const tol = 1e-9
	if math.Abs(x-want) > tol || math.Abs(y-want) > tol {
		t.Errorf("circumcenter(...) = (%v, %v), want (%v, %v)", x, y, want, want)
	}
}

func TestPseudoAngle_Monotonic(t *testing.T) {
	// Sample angles around the full circle, starting at -pi where
	// pseudoAngle wraps from 1 back to 0, and verify pseudoAngle increases
	// monotonically with true angle.
	const n = 64
	var prev float64
	for i := 0; i < n; i++ {
		theta := -math.Pi + 2*math.Pi*float64(i)/n
		pa := pseudoAngle(math.Cos(theta), math.Sin(theta))
		if pa < 0 || pa >= 1 {
			t.Fatalf("pseudoAngle at theta=%v = %v, want in [0, 1)", theta, pa)
		}
		if i > 0 && i < n && pa < prev {
			t.Errorf("pseudoAngle not monotonic at i=%v: prev=%v, got=%v", i, prev, pa)
		}
		prev = pa
	}
}

func TestDistSquared(t *testing.T) {
	got := distSquared(0, 0, 3, 4)
	if got != 25 {
		t.Errorf("distSquared(0,0,3,4) = %v, want 25", got)
	}
}
