package mapgen

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

type constSource float64

func (c constSource) Float64() float64 { return float64(c) }

type MockLogger struct {
	messages []string
}

func (m *MockLogger) Printf(format string, v ...any) {
	m.messages = append(m.messages, format)
}

type segmentView struct {
	From, To    geometry.Point
	Orientation geometry.Orientation
}

func viewSegments(segs []*geometry.Shape) []segmentView {
	out := make([]segmentView, len(segs))
	for i, s := range segs {
		from, to := s.Endpoints()
		out[i] = segmentView{From: from, To: to, Orientation: s.Orientation()}
	}
	return out
}

func checkPolyline(t *testing.T, segs []*geometry.Shape, start, target geometry.Point) {
	t.Helper()
	if len(segs) == 0 {
		t.Fatal("expected at least one segment")
	}
	cursor := start
	for i, s := range segs {
		from, to := s.Endpoints()
		if from != cursor {
			t.Fatalf("segment %d starts at %v, expected %v", i, from, cursor)
		}
		switch s.Orientation() {
		case geometry.Horizontal:
			if from.Y != to.Y {
				t.Fatalf("segment %d is horizontal but not axis-aligned: %v -> %v", i, from, to)
			}
		case geometry.Vertical:
			if from.X != to.X {
				t.Fatalf("segment %d is vertical but not axis-aligned: %v -> %v", i, from, to)
			}
		default:
			t.Fatalf("segment %d has orientation %q", i, s.Orientation())
		}
		if i > 0 && s.Orientation() == segs[i-1].Orientation() {
			t.Fatalf("segments %d and %d share orientation %q", i-1, i, s.Orientation())
		}
		cursor = to
	}
	if cursor != target {
		t.Fatalf("path ends at %v, expected exactly %v", cursor, target)
	}
}

func TestBuildPath_ConnectsHubToTargetExactly(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	start := geometry.Point{X: 500, Y: 400}
	target := geometry.Point{X: 120, Y: 90}

	for seed := uint64(0); seed < 200; seed++ {
		g := New(vp, NewRand(seed), surface.NewScene())
		segs, err := g.BuildPath(start, target)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		checkPolyline(t, segs, start, target)
	}
}

func TestBuildPath_FractionalTarget(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	start := geometry.Point{X: 500, Y: 400}
	target := geometry.Point{X: 120.3, Y: 89.7}

	g := New(vp, NewRand(7), surface.NewScene())
	segs, err := g.BuildPath(start, target)
	if err != nil {
		t.Fatal(err)
	}
	checkPolyline(t, segs, start, target)
}

func TestBuildPath_TerminatesWithZeroIncrements(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	start := geometry.Point{X: 500, Y: 400}
	target := geometry.Point{X: 120, Y: 90}

	g := New(vp, constSource(0), surface.NewScene())
	segs, err := g.BuildPath(start, target)
	if err != nil {
		t.Fatal(err)
	}
	checkPolyline(t, segs, start, target)
	if len(segs) != MaxFreeSegments+2 {
		t.Errorf("expected %d segments, got %d", MaxFreeSegments+2, len(segs))
	}
}

func TestBuildPath_LargeIncrementsConvergeQuickly(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	start := geometry.Point{X: 500, Y: 400}
	target := geometry.Point{X: 120, Y: 90}

	// closeness reaches 1 after the second segment, so the third and fourth
	// pin both axes.
	g := New(vp, constSource(0.99), surface.NewScene())
	segs, err := g.BuildPath(start, target)
	if err != nil {
		t.Fatal(err)
	}
	checkPolyline(t, segs, start, target)
	if len(segs) != 4 {
		t.Errorf("expected 4 segments, got %d", len(segs))
	}
	if segs[0].Orientation() != geometry.Vertical {
		t.Errorf("coin flip of 0.99 should start vertical, got %q", segs[0].Orientation())
	}
}

func TestGenerate_EmptyInput(t *testing.T) {
	scene := surface.NewScene()
	calls := 0
	g := New(geometry.Viewport{Width: 640, Height: 480}, NewRand(1), scene,
		WithOnGenerated(func(*Map) { calls++ }))

	m, err := g.Generate(nil)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("expected completion to fire once, fired %d times", calls)
	}
	if n := len(scene.Elements()); n != 1 {
		t.Errorf("expected exactly one drawn shape, got %d", n)
	}
	if len(m.Zones) != 1 || m.Zones[0] != m.Hub {
		t.Errorf("expected the hub as the only zone, got %d zones", len(m.Zones))
	}
	if m.SegmentCount() != 0 {
		t.Errorf("expected no segments, got %d", m.SegmentCount())
	}
	if c := m.Hub.Center(); c != (geometry.Point{X: 320, Y: 240}) {
		t.Errorf("hub centre %v", c)
	}
	if r := m.Hub.Radius(); r != 48 {
		t.Errorf("hub radius %v, expected 48", r)
	}
}

func TestGenerate_SeededReproducible(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	points := []PointOfInterest{{Name: "Engineering"}}

	run := func() (*Map, []surface.Element) {
		scene := surface.NewScene()
		m, err := New(vp, NewRand(42), scene).Generate(points)
		if err != nil {
			t.Fatal(err)
		}
		return m, scene.Elements()
	}

	m1, els1 := run()
	m2, els2 := run()

	if diff := cmp.Diff(viewSegments(m1.Paths[0].Segments), viewSegments(m2.Paths[0].Segments)); diff != "" {
		t.Errorf("segments differ between runs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(els1, els2); diff != "" {
		t.Errorf("drawn elements differ between runs (-first +second):\n%s", diff)
	}

	checkPolyline(t, m1.Paths[0].Segments, vp.Center(), m1.Paths[0].Target)
}

func TestGenerate_PathsAndZones(t *testing.T) {
	vp := geometry.Viewport{Width: 1000, Height: 800}
	scene := surface.NewScene()
	var done *Map
	g := New(vp, NewRand(3), scene, WithOnGenerated(func(m *Map) { done = m }))

	points := []PointOfInterest{{Name: "Engineering"}, {Name: "Healthcare"}, {Name: "Education"}}
	m, err := g.Generate(points)
	if err != nil {
		t.Fatal(err)
	}
	if done != m {
		t.Fatal("completion callback should receive the generated map")
	}
	if len(m.Paths) != 3 {
		t.Fatalf("expected 3 paths, got %d", len(m.Paths))
	}
	if m.Zones[0] != m.Hub {
		t.Error("hub must be the first zone")
	}
	if len(m.Zones) != 1+m.SegmentCount() {
		t.Errorf("expected %d zones, got %d", 1+m.SegmentCount(), len(m.Zones))
	}

	pad := PaddingRatio * vp.Height
	for i, p := range m.Paths {
		if p.Name != points[i].Name {
			t.Errorf("path %d named %q, expected input order", i, p.Name)
		}
		if p.Target.X < pad || p.Target.X > vp.Width-pad || p.Target.Y < pad || p.Target.Y > vp.Height-pad {
			t.Errorf("target %v outside padded viewport", p.Target)
		}
		checkPolyline(t, p.Segments, vp.Center(), p.Target)
	}

	if n := scene.Count(surface.ElementCircle, surface.StyleMarker); n != 3 {
		t.Errorf("expected 3 markers, got %d", n)
	}
	if n := scene.Count(surface.ElementLabel, ""); n != 3 {
		t.Errorf("expected 3 labels, got %d", n)
	}
	if n := scene.Count(surface.ElementLine, surface.StylePath); n != m.SegmentCount() {
		t.Errorf("expected %d drawn segments, got %d", m.SegmentCount(), n)
	}
}

func TestGenerate_SkipsMalformedPoints(t *testing.T) {
	logger := &MockLogger{}
	calls := 0
	g := New(geometry.Viewport{Width: 1000, Height: 800}, NewRand(5), surface.NewScene(),
		WithLogger(logger), WithOnGenerated(func(*Map) { calls++ }))

	m, err := g.Generate([]PointOfInterest{{Name: "  "}, {Name: "Sales"}, {}})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{0, 2}, m.Skipped); diff != "" {
		t.Errorf("skipped (-want +got):\n%s", diff)
	}
	if len(m.Paths) != 1 || m.Paths[0].Name != "Sales" {
		t.Errorf("expected a single Sales path, got %+v", m.Paths)
	}
	if calls != 1 {
		t.Errorf("expected completion once, got %d", calls)
	}
	if len(logger.messages) < 2 {
		t.Errorf("expected skipped points to be logged, got %v", logger.messages)
	}
}

func TestGenerate_InvalidViewport(t *testing.T) {
	_, err := New(geometry.Viewport{Width: 0, Height: 800}, NewRand(1), surface.NewScene()).Generate(nil)
	if !errors.Is(err, ErrInvalidViewport) {
		t.Fatalf("expected ErrInvalidViewport, got %v", err)
	}
}

func TestPointOfInterest_Validate(t *testing.T) {
	if err := (PointOfInterest{}).Validate(); !errors.Is(err, ErrMalformedPoint) {
		t.Errorf("expected ErrMalformedPoint, got %v", err)
	}
	id := 4
	if err := (PointOfInterest{Name: "Legal", ID: &id}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestGenerate_TargetOnHubIsNudged(t *testing.T) {
	// 0.5 puts every draw exactly on the hub centre of a 1000x800 viewport.
	logger := &MockLogger{}
	g := New(geometry.Viewport{Width: 1000, Height: 800}, constSource(0.5), surface.NewScene(), WithLogger(logger))

	m, err := g.Generate([]PointOfInterest{{Name: "Actors"}})
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(m.Paths))
	}
	want := geometry.Point{X: 501, Y: 400}
	if got := m.Paths[0].Target; got != want {
		t.Errorf("expected nudged target %v, got %v", want, got)
	}
	checkPolyline(t, m.Paths[0].Segments, geometry.Point{X: 500, Y: 400}, want)
	if logger.messages[0] != "target draw kept landing on hub %v, nudging" {
		t.Errorf("expected the nudge to be logged first, got %q", logger.messages[0])
	}
}
