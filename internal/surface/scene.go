package surface

import "sync"

type ElementKind string

const (
	ElementCircle ElementKind = "circle"
	ElementLine   ElementKind = "line"
	ElementLabel  ElementKind = "label"
)

// Element is one drawn primitive. Unused geometry fields are zero.
type Element struct {
	Handle Handle      `json:"handle"`
	Kind   ElementKind `json:"kind"`
	Style  string      `json:"style,omitempty"`
	CX     float64     `json:"cx,omitempty"`
	CY     float64     `json:"cy,omitempty"`
	R      float64     `json:"r,omitempty"`
	X1     float64     `json:"x1,omitempty"`
	Y1     float64     `json:"y1,omitempty"`
	X2     float64     `json:"x2,omitempty"`
	Y2     float64     `json:"y2,omitempty"`
	Text   string      `json:"text,omitempty"`
	X      float64     `json:"x,omitempty"`
	Y      float64     `json:"y,omitempty"`
}

// Scene records elements in draw order and dispatches drag input to the
// handlers attached to them.
type Scene struct {
	mu       sync.Mutex
	next     Handle
	order    []Handle
	elements map[Handle]*Element
	handlers map[Handle]DragHandler
}

func NewScene() *Scene {
	return &Scene{
		elements: make(map[Handle]*Element),
		handlers: make(map[Handle]DragHandler),
	}
}

func (s *Scene) add(e Element) Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	e.Handle = s.next
	s.elements[e.Handle] = &e
	s.order = append(s.order, e.Handle)
	return e.Handle
}

func (s *Scene) DrawCircle(cx, cy, r float64, style string) Handle {
	return s.add(Element{Kind: ElementCircle, Style: style, CX: cx, CY: cy, R: r})
}

func (s *Scene) DrawLineSegment(x1, y1, x2, y2 float64, style string) Handle {
	return s.add(Element{Kind: ElementLine, Style: style, X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func (s *Scene) DrawLabel(text string, x, y float64) {
	s.add(Element{Kind: ElementLabel, Text: text, X: x, Y: y})
}

func (s *Scene) AttachDragHandler(h Handle, onDelta DragHandler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[h]; !ok {
		return
	}
	s.handlers[h] = onDelta
}

func (s *Scene) MoveCircle(h Handle, cx, cy float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.elements[h]; ok && e.Kind == ElementCircle {
		e.CX, e.CY = cx, cy
	}
}

func (s *Scene) Remove(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.elements[h]; !ok {
		return
	}
	delete(s.elements, h)
	delete(s.handlers, h)
	for i, id := range s.order {
		if id == h {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Raise moves h to the end of the draw order so it renders on top.
func (s *Scene) Raise(h Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.order {
		if id == h {
			s.order = append(append(s.order[:i:i], s.order[i+1:]...), h)
			return
		}
	}
}

// Clear removes every element except those in keep.
func (s *Scene) Clear(keep ...Handle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := make(map[Handle]bool, len(keep))
	for _, h := range keep {
		kept[h] = true
	}
	order := s.order[:0]
	for _, h := range s.order {
		if kept[h] {
			order = append(order, h)
			continue
		}
		delete(s.elements, h)
		delete(s.handlers, h)
	}
	s.order = order
}

// Checkpoint is a saved copy of a scene's contents.
type Checkpoint struct {
	next     Handle
	order    []Handle
	elements map[Handle]Element
	handlers map[Handle]DragHandler
}

// Checkpoint saves the scene so a failed redraw can be undone with Restore.
func (s *Scene) Checkpoint() Checkpoint {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := Checkpoint{
		next:     s.next,
		order:    append([]Handle(nil), s.order...),
		elements: make(map[Handle]Element, len(s.elements)),
		handlers: make(map[Handle]DragHandler, len(s.handlers)),
	}
	for h, e := range s.elements {
		cp.elements[h] = *e
	}
	for h, fn := range s.handlers {
		cp.handlers[h] = fn
	}
	return cp
}

// Restore puts the scene back to the state saved in cp.
func (s *Scene) Restore(cp Checkpoint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next = cp.next
	s.order = append([]Handle(nil), cp.order...)
	s.elements = make(map[Handle]*Element, len(cp.elements))
	for h, e := range cp.elements {
		s.elements[h] = &e
	}
	s.handlers = make(map[Handle]DragHandler, len(cp.handlers))
	for h, fn := range cp.handlers {
		s.handlers[h] = fn
	}
}

// Drag delivers a drag-move event to the handler attached to h. ok is false
// when no handler is attached.
func (s *Scene) Drag(h Handle, x, y float64) (accepted, ok bool) {
	s.mu.Lock()
	handler, ok := s.handlers[h]
	s.mu.Unlock()
	if !ok {
		return false, false
	}
	// The handler may call back into MoveCircle, so the lock is released first.
	return handler(x, y), true
}

func (s *Scene) Element(h Handle) (Element, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.elements[h]
	if !ok {
		return Element{}, false
	}
	return *e, true
}

// Elements returns a copy of every element in draw order.
func (s *Scene) Elements() []Element {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Element, 0, len(s.order))
	for _, h := range s.order {
		out = append(out, *s.elements[h])
	}
	return out
}

// Count returns how many elements of the given kind and style are drawn.
// An empty style matches every style.
func (s *Scene) Count(kind ElementKind, style string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, e := range s.elements {
		if e.Kind == kind && (style == "" || e.Style == style) {
			n++
		}
	}
	return n
}
