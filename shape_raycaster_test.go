package eventsystem

import "testing"

func rectElement(name string, x, y, w, h float64) *Element {
	e := NewElement(name)
	e.X, e.Y = x, y
	e.HitShape = HitRect{Width: w, Height: h}
	return e
}

func pointerAt(x, y float64) *PointerEventData {
	return &PointerEventData{Position: Vec2{x, y}}
}

func TestShapeRaycasterTopmostFirst(t *testing.T) {
	rc := NewShapeRaycaster(nil)
	rc.Add(rectElement("bottom", 0, 0, 100, 100))
	rc.Add(rectElement("top", 0, 0, 100, 100))
	rc.Add(rectElement("elsewhere", 500, 500, 10, 10))

	hits := rc.Raycast(pointerAt(10, 10), nil)
	if got := hitNames(hits); got != "top,bottom" {
		t.Errorf("hits = %s, want top,bottom", got)
	}
	for i, h := range hits {
		if h.Module != rc || h.Index != i {
			t.Errorf("hit %d: module %v index %d", i, h.Module, h.Index)
		}
	}
}

func TestShapeRaycasterSkips(t *testing.T) {
	rc := NewShapeRaycaster(nil)
	hidden := rectElement("hidden", 0, 0, 100, 100)
	hidden.Visible = false
	inert := rectElement("inert", 0, 0, 100, 100)
	inert.Interactable = false
	noShape := NewElement("no-shape")
	rc.Add(hidden)
	rc.Add(inert)
	rc.Add(noShape)

	if hits := rc.Raycast(pointerAt(10, 10), nil); len(hits) != 0 {
		t.Errorf("hits = %s, want none", hitNames(hits))
	}
}

func TestShapeRaycasterCopiesSortingKeys(t *testing.T) {
	rc := NewShapeRaycaster(nil)
	e := rectElement("e", 0, 0, 10, 10)
	e.SortingLayer, e.SortingOrder, e.Depth = 2, 3, 4
	rc.Add(e)

	hits := rc.Raycast(pointerAt(5, 6), nil)
	if len(hits) != 1 {
		t.Fatalf("got %d hits", len(hits))
	}
	h := hits[0]
	if h.SortingLayer != 2 || h.SortingOrder != 3 || h.Depth != 4 {
		t.Errorf("keys = %d/%d/%d", h.SortingLayer, h.SortingOrder, h.Depth)
	}
	if h.ScreenPosition != (Vec2{5, 6}) || h.WorldPosition != (Vec2{5, 6}) {
		t.Errorf("positions = %v %v", h.ScreenPosition, h.WorldPosition)
	}
}

func TestShapeRaycasterCamera(t *testing.T) {
	cam := NewCamera(Rect{Width: 200, Height: 200})
	cam.X, cam.Y = 1000, 1000 // world (1000,1000) appears at screen (100,100)
	rc := NewShapeRaycaster(cam)
	rc.Add(rectElement("far", 990, 990, 20, 20))

	hits := rc.Raycast(pointerAt(100, 100), nil)
	if len(hits) != 1 {
		t.Fatalf("got %d hits through the camera, want 1", len(hits))
	}
	if !approxEqual(hits[0].WorldPosition.X, 1000, 1e-9) {
		t.Errorf("world position = %v", hits[0].WorldPosition)
	}
	if hits := rc.Raycast(pointerAt(300, 100), nil); len(hits) != 0 {
		t.Error("points outside the viewport should not hit")
	}
	if rc.EventCamera() != cam {
		t.Error("EventCamera should expose the camera")
	}
}

func TestShapeRaycasterAddRemove(t *testing.T) {
	rc := NewShapeRaycaster(nil)
	a, b := rectElement("a", 0, 0, 1, 1), rectElement("b", 0, 0, 1, 1)
	rc.Add(a)
	rc.Add(a)
	rc.Add(b)
	if len(rc.Elements()) != 2 {
		t.Fatalf("len = %d, want 2", len(rc.Elements()))
	}
	rc.Remove(a)
	rc.Remove(a)
	if len(rc.Elements()) != 1 || rc.Elements()[0] != b {
		t.Error("Remove should leave only b")
	}
}

func TestShapeRaycasterDisabled(t *testing.T) {
	sys := newTestSystem(NewRegistry(), nil)
	rc := NewShapeRaycaster(nil)
	rc.Add(rectElement("a", 0, 0, 10, 10))
	sys.Raycasters().Add(rc)

	rc.Disabled = true
	if hits := sys.RaycastAll(pointerAt(5, 5), nil); len(hits) != 0 {
		t.Error("disabled raycaster should not contribute")
	}
	rc.Disabled = false
	if hits := sys.RaycastAll(pointerAt(5, 5), nil); len(hits) != 1 {
		t.Error("enabled raycaster should contribute")
	}
}
