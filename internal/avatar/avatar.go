// Package avatar implements the draggable marker that may only move along the
// generated path network.
package avatar

import (
	"errors"
	"fmt"

	"github.com/Ko-stant/outlook-map/internal/geometry"
	"github.com/Ko-stant/outlook-map/internal/mapgen"
	"github.com/Ko-stant/outlook-map/internal/snap"
	"github.com/Ko-stant/outlook-map/internal/surface"
)

// Placement describes the initial move onto the hub, for the client to
// animate.
type Placement struct {
	From geometry.Point `json:"from"`
	To   geometry.Point `json:"to"`
}

type Avatar struct {
	id      string
	circle  *geometry.Shape
	zones   snap.Registry
	surface surface.Surface
	handle  surface.Handle
}

// Create draws the avatar at the origin and hooks its drag handler into the
// surface. It accepts no moves until Attach is called.
func Create(id string, radius float64, style string, surf surface.Surface) *Avatar {
	a := &Avatar{
		id:      id,
		circle:  geometry.NewCircle(0, 0, radius),
		surface: surf,
	}
	a.handle = surf.DrawCircle(0, 0, radius, style)
	surf.AttachDragHandler(a.handle, a.OnDragDelta)
	return a
}

func (a *Avatar) ID() string { return a.id }

func (a *Avatar) Handle() surface.Handle { return a.handle }

func (a *Avatar) Position() geometry.Point { return a.circle.Center() }

func (a *Avatar) Radius() float64 { return a.circle.Radius() }

// ErrNoRoomOnHub is returned by Attach when the avatar is too large to sit
// inside the hub.
var ErrNoRoomOnHub = errors.New("avatar does not fit on the hub")

// Attach points the avatar's snap zones at the map's zone pool and places it
// on the hub. The pool is referenced, not copied; the map must outlive the
// avatar. Attaching a nil map leaves the avatar with no zones. When the hub
// centre is not a legal position for the avatar's radius, the avatar keeps
// its position, holds no zones and ErrNoRoomOnHub is returned.
func (a *Avatar) Attach(m *mapgen.Map) (Placement, error) {
	a.zones.Reset()
	from := a.Position()
	if m == nil {
		return Placement{From: from, To: from}, nil
	}
	a.zones.AddZones(m.Pool()...)
	a.zones.AddZone(m.Hub)

	to := m.Hub.Center()
	if !a.zones.ProposeMove(to.X, to.Y, a.circle.Radius()) {
		a.zones.Reset()
		return Placement{From: from, To: from}, fmt.Errorf("attach %s (radius %g, hub radius %g): %w",
			a.id, a.circle.Radius(), m.Hub.Radius(), ErrNoRoomOnHub)
	}
	a.moveTo(to)
	return Placement{From: from, To: to}, nil
}

// ZoneCount is the number of zones the avatar may occupy.
func (a *Avatar) ZoneCount() int { return a.zones.Len() }

// OnDragDelta handles one drag-move event carrying an absolute position.
// Rejected moves leave the avatar untouched.
func (a *Avatar) OnDragDelta(x, y float64) bool {
	if !a.zones.ProposeMove(x, y, a.circle.Radius()) {
		return false
	}
	a.moveTo(geometry.Point{X: x, Y: y})
	return true
}

func (a *Avatar) moveTo(p geometry.Point) {
	a.circle.Reposition(p.X, p.Y)
	a.surface.MoveCircle(a.handle, p.X, p.Y)
}

// Detach removes the avatar from the surface and drops its zone references.
func (a *Avatar) Detach() {
	a.zones.Reset()
	a.surface.Remove(a.handle)
}
