package geometry

import (
	"fmt"
	"math"
)

// LineTolerance is how far off a line segment's fixed coordinate a point may
// sit and still count as on the segment.
const LineTolerance = 9.0

type Kind uint8

const (
	KindCircle Kind = iota + 1
	KindLine
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	}
	return "unknown"
}

// Shape is a closed variant over circles and axis-aligned line segments.
// Geometry is owned by the shape and only changes through Reposition.
type Shape struct {
	kind Kind

	// circle
	center Point
	radius float64

	// line
	from        Point
	to          Point
	orientation Orientation
}

func NewCircle(cx, cy, r float64) *Shape {
	return &Shape{kind: KindCircle, center: Point{X: cx, Y: cy}, radius: r}
}

// NewLineSegment builds an axis-aligned segment. The coordinate that does not
// vary along the orientation must match at both ends.
func NewLineSegment(x1, y1, x2, y2 float64, orientation Orientation) (*Shape, error) {
	switch orientation {
	case Horizontal:
		if y1 != y2 {
			return nil, fmt.Errorf("horizontal segment (%g,%g)-(%g,%g): %w", x1, y1, x2, y2, ErrDiagonalSegment)
		}
	case Vertical:
		if x1 != x2 {
			return nil, fmt.Errorf("vertical segment (%g,%g)-(%g,%g): %w", x1, y1, x2, y2, ErrDiagonalSegment)
		}
	default:
		return nil, fmt.Errorf("line segment %q: %w", orientation, ErrInvalidAxis)
	}
	return &Shape{
		kind:        KindLine,
		from:        Point{X: x1, Y: y1},
		to:          Point{X: x2, Y: y2},
		orientation: orientation,
	}, nil
}

func (s *Shape) Kind() Kind { return s.kind }

// Center is the circle centre, or the segment midpoint for lines.
func (s *Shape) Center() Point {
	if s.kind == KindLine {
		return Point{X: (s.from.X + s.to.X) / 2, Y: (s.from.Y + s.to.Y) / 2}
	}
	return s.center
}

func (s *Shape) Radius() float64 { return s.radius }

func (s *Shape) Endpoints() (Point, Point) { return s.from, s.to }

func (s *Shape) Orientation() Orientation { return s.orientation }

// Contains reports whether (x, y) lies inside the shape. For circles the
// radius is reduced by shrink so an entity of radius shrink fits entirely
// inside. Line segments ignore shrink.
func (s *Shape) Contains(x, y, shrink float64) bool {
	switch s.kind {
	case KindCircle:
		r := s.radius - shrink
		if r <= 0 {
			return false
		}
		return Distance(Point{X: x, Y: y}, s.center) <= r
	case KindLine:
		if s.orientation == Horizontal {
			if math.Abs(y-s.from.Y) > LineTolerance {
				return false
			}
			return between(x, s.from.X, s.to.X)
		}
		if math.Abs(x-s.from.X) > LineTolerance {
			return false
		}
		return between(y, s.from.Y, s.to.Y)
	}
	return false
}

// Reposition moves a circle's centre to (x, y), or translates a segment so
// its first endpoint lands on (x, y).
func (s *Shape) Reposition(x, y float64) {
	switch s.kind {
	case KindCircle:
		s.center = Point{X: x, Y: y}
	case KindLine:
		dx, dy := x-s.from.X, y-s.from.Y
		s.from = Point{X: x, Y: y}
		s.to = Point{X: s.to.X + dx, Y: s.to.Y + dy}
	}
}
