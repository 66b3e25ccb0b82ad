package surface

import "testing"

func TestScene_DrawOrderAndCounts(t *testing.T) {
	s := NewScene()
	hub := s.DrawCircle(500, 400, 80, StyleHub)
	s.DrawLineSegment(500, 400, 120, 400, StylePath)
	s.DrawLineSegment(120, 400, 120, 90, StylePath)
	s.DrawLabel("Engineering", 150, 90)

	els := s.Elements()
	if len(els) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(els))
	}
	if els[0].Handle != hub || els[0].Kind != ElementCircle {
		t.Errorf("expected hub first, got %+v", els[0])
	}
	if n := s.Count(ElementLine, StylePath); n != 2 {
		t.Errorf("expected 2 path lines, got %d", n)
	}
	if n := s.Count(ElementLabel, ""); n != 1 {
		t.Errorf("expected 1 label, got %d", n)
	}
}

func TestScene_DragDispatch(t *testing.T) {
	s := NewScene()
	h := s.DrawCircle(0, 0, 5, StyleAvatar)

	if _, ok := s.Drag(h, 1, 1); ok {
		t.Fatal("drag without handler should report ok=false")
	}

	s.AttachDragHandler(h, func(x, y float64) bool {
		if x > 10 {
			return false
		}
		s.MoveCircle(h, x, y)
		return true
	})

	if accepted, ok := s.Drag(h, 3, 4); !ok || !accepted {
		t.Fatalf("expected accepted drag, got accepted=%v ok=%v", accepted, ok)
	}
	if e, _ := s.Element(h); e.CX != 3 || e.CY != 4 {
		t.Errorf("expected circle at (3,4), got (%v,%v)", e.CX, e.CY)
	}
	if accepted, _ := s.Drag(h, 20, 4); accepted {
		t.Fatal("expected rejected drag")
	}
	if e, _ := s.Element(h); e.CX != 3 || e.CY != 4 {
		t.Errorf("rejected drag moved the circle to (%v,%v)", e.CX, e.CY)
	}
}

func TestScene_RemoveAndClear(t *testing.T) {
	s := NewScene()
	a := s.DrawCircle(0, 0, 1, StyleHub)
	b := s.DrawCircle(1, 1, 1, StyleAvatar)
	s.AttachDragHandler(b, func(x, y float64) bool { return true })
	s.DrawLineSegment(0, 0, 1, 0, StylePath)

	s.Remove(b)
	if _, ok := s.Element(b); ok {
		t.Fatal("removed element still present")
	}
	if _, ok := s.Drag(b, 0, 0); ok {
		t.Fatal("removed element still has a drag handler")
	}

	c := s.DrawCircle(2, 2, 1, StyleAvatar)
	s.Raise(a)
	if els := s.Elements(); els[len(els)-1].Handle != a {
		t.Fatalf("expected raised element last, got %+v", els)
	}
	s.Clear(c)
	els := s.Elements()
	if len(els) != 1 || els[0].Handle != c {
		t.Fatalf("expected only the kept element, got %+v", els)
	}
	if _, ok := s.Element(a); ok {
		t.Fatal("cleared element still present")
	}
}

func TestScene_CheckpointRestore(t *testing.T) {
	s := NewScene()
	hub := s.DrawCircle(500, 400, 80, StyleHub)
	avatar := s.DrawCircle(500, 400, 12, StyleAvatar)
	s.AttachDragHandler(avatar, func(x, y float64) bool { return true })
	want := s.Elements()

	cp := s.Checkpoint()
	s.Clear(avatar)
	s.DrawLineSegment(0, 0, 10, 0, StylePath)
	s.MoveCircle(avatar, 1, 1)
	s.Restore(cp)

	got := s.Elements()
	if len(got) != len(want) {
		t.Fatalf("expected %d elements after restore, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("element %d: want %+v, got %+v", i, want[i], got[i])
		}
	}
	if _, ok := s.Element(hub); !ok {
		t.Error("hub missing after restore")
	}
	if _, ok := s.Drag(avatar, 2, 2); !ok {
		t.Error("drag handler missing after restore")
	}
	if next := s.DrawCircle(0, 0, 1, StyleMarker); next != avatar+1 {
		t.Errorf("expected handle numbering to resume at %d, got %d", avatar+1, next)
	}
}
