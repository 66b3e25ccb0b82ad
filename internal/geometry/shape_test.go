package geometry

import (
	"errors"
	"testing"
)

func TestDistance(t *testing.T) {
	if d := Distance(Point{X: 0, Y: 0}, Point{X: 3, Y: 4}); d != 5 {
		t.Fatalf("expected 5, got %v", d)
	}
	if d := Distance(Point{X: 2, Y: 2}, Point{X: 2, Y: 2}); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestCircleContains_ShrinkMonotonic(t *testing.T) {
	c := NewCircle(100, 100, 20)

	for _, shrink := range []float64{20, 20.5, 40} {
		if c.Contains(100, 100, shrink) {
			t.Errorf("shrink %v >= radius should never contain", shrink)
		}
	}

	points := []Point{{X: 100, Y: 100}, {X: 110, Y: 100}, {X: 100, Y: 118}, {X: 125, Y: 100}}
	for _, p := range points {
		prev := true
		for shrink := 0.0; shrink <= 25; shrink += 0.5 {
			got := c.Contains(p.X, p.Y, shrink)
			if got && !prev {
				t.Fatalf("containment of (%v,%v) grew when shrink increased to %v", p.X, p.Y, shrink)
			}
			prev = got
		}
	}
}

func TestCircleContains_Boundary(t *testing.T) {
	c := NewCircle(0, 0, 10)
	if !c.Contains(7, 0, 3) {
		t.Error("point exactly on the shrunk radius should be contained")
	}
	if c.Contains(7.01, 0, 3) {
		t.Error("point past the shrunk radius should not be contained")
	}
}

func TestLineContains_Tolerance(t *testing.T) {
	forward, err := NewLineSegment(10, 50, 90, 50, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	backward, err := NewLineSegment(90, 50, 10, 50, Horizontal)
	if err != nil {
		t.Fatal(err)
	}

	for _, seg := range []*Shape{forward, backward} {
		if !seg.Contains(40, 59, 0) || !seg.Contains(40, 41, 0) {
			t.Error("point 9 units off the line should be contained")
		}
		if seg.Contains(40, 60, 0) || seg.Contains(40, 40, 0) {
			t.Error("point 10 units off the line should not be contained")
		}
		if !seg.Contains(10, 50, 0) || !seg.Contains(90, 50, 0) {
			t.Error("endpoints should be contained")
		}
		if seg.Contains(9.5, 50, 0) || seg.Contains(90.5, 50, 0) {
			t.Error("points past the endpoints should not be contained")
		}
	}
}

func TestLineContains_Vertical(t *testing.T) {
	up, err := NewLineSegment(30, 200, 30, 20, Vertical)
	if err != nil {
		t.Fatal(err)
	}
	if !up.Contains(39, 100, 0) || !up.Contains(21, 100, 0) {
		t.Error("point 9 units off a vertical line should be contained")
	}
	if up.Contains(40, 100, 0) {
		t.Error("point 10 units off a vertical line should not be contained")
	}
	if up.Contains(30, 201, 0) {
		t.Error("point below the segment should not be contained")
	}
}

func TestLineContains_IgnoresShrink(t *testing.T) {
	seg, err := NewLineSegment(0, 0, 100, 0, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	if !seg.Contains(50, 0, 1000) {
		t.Error("line containment should not apply shrink")
	}
}

func TestNewLineSegment_Rejects(t *testing.T) {
	if _, err := NewLineSegment(0, 0, 10, 10, Horizontal); !errors.Is(err, ErrDiagonalSegment) {
		t.Errorf("expected ErrDiagonalSegment, got %v", err)
	}
	if _, err := NewLineSegment(0, 0, 10, 10, Vertical); !errors.Is(err, ErrDiagonalSegment) {
		t.Errorf("expected ErrDiagonalSegment, got %v", err)
	}
	if _, err := NewLineSegment(0, 0, 10, 0, Orientation("diagonal")); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
}

func TestReposition(t *testing.T) {
	c := NewCircle(0, 0, 10)
	c.Reposition(50, 50)
	if !c.Contains(55, 50, 0) || c.Contains(0, 0, 0) {
		t.Error("circle containment should follow Reposition")
	}

	seg, _ := NewLineSegment(0, 0, 100, 0, Horizontal)
	seg.Reposition(10, 30)
	from, to := seg.Endpoints()
	if from != (Point{X: 10, Y: 30}) || to != (Point{X: 110, Y: 30}) {
		t.Errorf("unexpected endpoints after reposition: %v %v", from, to)
	}
}

func TestAxisHelpers(t *testing.T) {
	p := Point{X: 3, Y: 7}
	if v, err := Coord(p, Horizontal); err != nil || v != 3 {
		t.Errorf("Coord horizontal = %v, %v", v, err)
	}
	if v, err := Coord(p, Vertical); err != nil || v != 7 {
		t.Errorf("Coord vertical = %v, %v", v, err)
	}
	if _, err := Coord(p, Orientation("z")); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
	q, err := WithCoord(p, Vertical, 1)
	if err != nil || q != (Point{X: 3, Y: 1}) {
		t.Errorf("WithCoord = %v, %v", q, err)
	}
	if _, err := WithCoord(p, Orientation(""), 1); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
	if _, err := (Viewport{Width: 1, Height: 2}).Extent(Orientation("z")); !errors.Is(err, ErrInvalidAxis) {
		t.Errorf("expected ErrInvalidAxis, got %v", err)
	}
}
