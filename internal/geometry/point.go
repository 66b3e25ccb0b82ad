package geometry

import (
	"fmt"
	"math"
)

func Distance(p1, p2 Point) float64 {
	return math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
}

// Coord returns the component of p that varies along axis: X for a
// horizontal axis, Y for a vertical one.
func Coord(p Point, axis Orientation) (float64, error) {
	switch axis {
	case Horizontal:
		return p.X, nil
	case Vertical:
		return p.Y, nil
	}
	return 0, fmt.Errorf("coord %q: %w", axis, ErrInvalidAxis)
}

// WithCoord returns a copy of p with its axis component replaced by v.
func WithCoord(p Point, axis Orientation, v float64) (Point, error) {
	switch axis {
	case Horizontal:
		p.X = v
		return p, nil
	case Vertical:
		p.Y = v
		return p, nil
	}
	return p, fmt.Errorf("with coord %q: %w", axis, ErrInvalidAxis)
}

func between(v, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
