// Package snap gates movement of an entity to a set of navigable zones.
package snap

import "github.com/Ko-stant/outlook-map/internal/geometry"

// Registry holds zone references by identity. It does not own the zones.
type Registry struct {
	zones []*geometry.Shape
	index map[*geometry.Shape]struct{}
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[*geometry.Shape]struct{})}
}

// AddZone registers shape. Adding the same shape twice is a no-op.
func (r *Registry) AddZone(shape *geometry.Shape) {
	if shape == nil {
		return
	}
	if r.index == nil {
		r.index = make(map[*geometry.Shape]struct{})
	}
	if _, ok := r.index[shape]; ok {
		return
	}
	r.index[shape] = struct{}{}
	r.zones = append(r.zones, shape)
}

func (r *Registry) AddZones(shapes ...*geometry.Shape) {
	for _, s := range shapes {
		r.AddZone(s)
	}
}

func (r *Registry) Len() int { return len(r.zones) }

// Zones returns the registered zones in insertion order.
func (r *Registry) Zones() []*geometry.Shape {
	out := make([]*geometry.Shape, len(r.zones))
	copy(out, r.zones)
	return out
}

// Reset drops every zone reference.
func (r *Registry) Reset() {
	r.zones = nil
	r.index = make(map[*geometry.Shape]struct{})
}

func (r *Registry) IsInsideAnyZone(x, y, ownRadius float64) bool {
	for _, z := range r.zones {
		if z.Contains(x, y, ownRadius) {
			return true
		}
	}
	return false
}

// ProposeMove reports whether an entity of radius ownRadius may move to
// (x, y). A false result is an ordinary outcome; the caller simply keeps its
// current position.
func (r *Registry) ProposeMove(x, y, ownRadius float64) bool {
	return r.IsInsideAnyZone(x, y, ownRadius)
}
