// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package delaunay

import (
	"errors"
	"fmt"
)

// ErrInsufficientPoints is returned when fewer than three points are given
// to New or NewFromPoints.
var ErrInsufficientPoints = errors.New("delaunay: fewer than 3 points")

// ErrInvalidInput is returned when a coordinate is NaN, infinite, or the
// flat coordinate slice has odd length.
var ErrInvalidInput = errors.New("delaunay: non-finite or malformed coordinate")

// wrapf attaches a human-readable detail to a sentinel error while keeping
// it unwrappable via errors.Is.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
