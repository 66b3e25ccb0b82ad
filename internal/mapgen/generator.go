// Package mapgen lays out the hub and a randomized orthogonal path from the
// hub to every point of interest, collecting each shape into a zone pool.
package mapgen

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

// Proportions of the viewport height.
const (
	HubRadiusRatio    = 0.10
	PaddingRatio      = 0.05
	MarkerRadiusRatio = 0.03
)

// MaxFreeSegments is how many segments a path may emit before closeness is
// pinned to 1, which lands the path on its target within two more segments.
const MaxFreeSegments = 64

var ErrInvalidViewport = errors.New("viewport must have positive width and height")

// RandomSource yields uniform values in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewRand returns a seeded source; equal seeds give equal maps.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Logger interface for logging abstraction
type Logger interface {
	Printf(format string, v ...any)
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}

type Option func(*Generator)

func WithLogger(l Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithOnGenerated sets the callback fired once per Generate call, after the
// last path is drawn.
func WithOnGenerated(fn func(*Map)) Option {
	return func(g *Generator) { g.onGenerated = fn }
}

type Generator struct {
	viewport    geometry.Viewport
	rng         RandomSource
	surface     surface.Surface
	logger      Logger
	onGenerated func(*Map)
}

func New(viewport geometry.Viewport, rng RandomSource, surf surface.Surface, opts ...Option) *Generator {
	g := &Generator{
		viewport: viewport,
		rng:      rng,
		surface:  surf,
		logger:   nopLogger{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate draws the hub and one path per valid point, in input order.
// Points without a name are skipped and their indexes recorded in
// Map.Skipped.
func (g *Generator) Generate(points []PointOfInterest) (*Map, error) {
	vp := g.viewport
	if vp.Width <= 0 || vp.Height <= 0 {
		return nil, fmt.Errorf("generate %gx%g: %w", vp.Width, vp.Height, ErrInvalidViewport)
	}

	center := vp.Center()
	hubRadius := HubRadiusRatio * vp.Height
	m := &Map{Viewport: vp}
	m.Hub = geometry.NewCircle(center.X, center.Y, hubRadius)
	m.HubHandle = g.surface.DrawCircle(center.X, center.Y, hubRadius, surface.StyleHub)
	m.addZone(m.Hub)

	if len(points) == 0 {
		g.finish(m)
		return m, nil
	}

	markerRadius := MarkerRadiusRatio * vp.Height
	for i, p := range points {
		if err := p.Validate(); err != nil {
			g.logger.Printf("skipping point %d: %v", i, err)
			m.Skipped = append(m.Skipped, i)
			continue
		}

		target := g.pickTarget(center)
		segments, err := g.BuildPath(center, target)
		if err != nil {
			return nil, fmt.Errorf("path to %q: %w", p.Name, err)
		}
		for _, s := range segments {
			m.addZone(s)
		}

		g.surface.DrawCircle(target.X, target.Y, markerRadius, surface.StyleMarker)
		g.surface.DrawLabel(p.Name, target.X+markerRadius*1.5, target.Y+markerRadius/2)

		m.Paths = append(m.Paths, Path{Name: p.Name, Target: target, Segments: segments})
	}

	g.finish(m)
	return m, nil
}

func (g *Generator) finish(m *Map) {
	g.logger.Printf("map generated: %d paths, %d zones, %d skipped", len(m.Paths), len(m.Zones), len(m.Skipped))
	if g.onGenerated != nil {
		g.onGenerated(m)
	}
}

// maxTargetDraws bounds how often pickTarget redraws before nudging.
const maxTargetDraws = 16

// pickTarget draws a point inside the padded viewport that is not the hub
// centre. A source that keeps landing on the hub gets its last draw moved
// one unit along x, back inside the padding if that overshoots.
func (g *Generator) pickTarget(hub geometry.Point) geometry.Point {
	pad := PaddingRatio * g.viewport.Height
	w := g.viewport.Width - 2*pad
	h := g.viewport.Height - 2*pad
	var t geometry.Point
	for range maxTargetDraws {
		t = geometry.Point{
			X: pad + g.rng.Float64()*w,
			Y: pad + g.rng.Float64()*h,
		}
		if t != hub {
			return t
		}
	}
	g.logger.Printf("target draw kept landing on hub %v, nudging", hub)
	if t.X+1 <= g.viewport.Width-pad {
		t.X++
	} else {
		t.X--
	}
	return t
}

// BuildPath walks from start to target with alternating horizontal and
// vertical segments. Each segment lands on a random coordinate whose range
// narrows toward the target as closeness grows; once closeness reaches 1 the
// coordinate is the target's, so the final segment ends exactly on target.
func (g *Generator) BuildPath(start, target geometry.Point) ([]*geometry.Shape, error) {
	direction := geometry.Vertical
	if g.rng.Float64() < 0.5 {
		direction = geometry.Horizontal
	}

	var segments []*geometry.Shape
	current := start
	closeness := 0.0
	for current != target {
		next, err := g.step(current, target, direction, closeness)
		if err != nil {
			return nil, err
		}
		seg, err := geometry.NewLineSegment(current.X, current.Y, next.X, next.Y, direction)
		if err != nil {
			return nil, err
		}
		g.surface.DrawLineSegment(current.X, current.Y, next.X, next.Y, surface.StylePath)
		segments = append(segments, seg)

		current = next
		direction = direction.Other()
		closeness = math.Min(1, closeness+g.rng.Float64())
		if len(segments) >= MaxFreeSegments {
			closeness = 1
		}
	}
	return segments, nil
}

func (g *Generator) step(current, target geometry.Point, axis geometry.Orientation, closeness float64) (geometry.Point, error) {
	goal, err := geometry.Coord(target, axis)
	if err != nil {
		return current, err
	}
	extent, err := g.viewport.Extent(axis)
	if err != nil {
		return current, err
	}

	v := goal
	if closeness < 1 {
		lo := closeness * goal
		hi := extent - closeness*(extent-goal)
		v = lo + g.rng.Float64()*(hi-lo)
	}
	return geometry.WithCoord(current, axis, v)
}
