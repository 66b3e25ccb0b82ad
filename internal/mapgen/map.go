package mapgen

import (
	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

// Path is the ordered polyline from the hub centre to one point's target.
type Path struct {
	Name     string
	Target   geometry.Point
	Segments []*geometry.Shape
}

// Map owns the hub and every path segment for its lifetime. Avatars hold
// references into Zones but never modify them.
type Map struct {
	Viewport  geometry.Viewport
	Hub       *geometry.Shape
	HubHandle surface.Handle
	Paths     []Path
	Zones     []*geometry.Shape
	Skipped   []int
}

func (m *Map) addZone(s *geometry.Shape) {
	m.Zones = append(m.Zones, s)
}

// Pool returns the navigable zones: the hub followed by every segment.
func (m *Map) Pool() []*geometry.Shape {
	if m == nil {
		return nil
	}
	return m.Zones
}

// SegmentCount is the number of path segments across all paths.
func (m *Map) SegmentCount() int {
	n := 0
	for _, p := range m.Paths {
		n += len(p.Segments)
	}
	return n
}
