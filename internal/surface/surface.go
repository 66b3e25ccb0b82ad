// Package surface defines the drawing and input capabilities the map core
// renders through, plus Scene, an in-memory implementation that the server
// turns into SVG and websocket snapshots.
package surface

// Handle identifies an element drawn on a surface.
type Handle int

const NoHandle Handle = 0

// Style tags understood by the page stylesheet.
const (
	StyleHub    = "hub"
	StylePath   = "path"
	StyleMarker = "marker"
	StyleAvatar = "avatar"
)

// DragHandler receives the absolute position of a drag-move event and
// reports whether the move was accepted.
type DragHandler func(x, y float64) bool

type Surface interface {
	DrawCircle(cx, cy, r float64, style string) Handle
	DrawLineSegment(x1, y1, x2, y2 float64, style string) Handle
	DrawLabel(text string, x, y float64)
	AttachDragHandler(h Handle, onDelta DragHandler)
	MoveCircle(h Handle, cx, cy float64)
	Remove(h Handle)
}
