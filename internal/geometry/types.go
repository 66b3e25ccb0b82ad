package geometry

import "errors"

type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Other returns the perpendicular orientation.
func (o Orientation) Other() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

var (
	ErrInvalidAxis     = errors.New("invalid axis")
	ErrDiagonalSegment = errors.New("segment is not axis-aligned")
)

// Point is a position in viewport coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the drawable area, origin at the top-left corner.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (v Viewport) Center() Point {
	return Point{X: v.Width / 2, Y: v.Height / 2}
}

// Extent returns the size of the viewport along the given axis.
func (v Viewport) Extent(axis Orientation) (float64, error) {
	switch axis {
	case Horizontal:
		return v.Width, nil
	case Vertical:
		return v.Height, nil
	}
	return 0, ErrInvalidAxis
}
