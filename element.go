package eventsystem

// elementIDCounter is a plain counter; the event system is single-threaded.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Element is the stock [Target]: a positioned hit area with sorting keys and
// per-element callbacks. Any callback may be nil.
type Element struct {
	// Identity
	ID       uint32
	Name     string
	Entity   uint32 // ECS entity, 0 for none
	UserData any

	// Placement. HitShape is in local coordinates relative to (X, Y).
	X, Y     float64
	HitShape HitShape

	// Interaction
	Visible      bool
	Interactable bool
	// Selectable elements become the selected target when pressed.
	Selectable bool

	// Ordering, compared by CompareRaycastResults.
	SortingLayer int
	SortingOrder int
	Depth        int

	OnSelect       func(*BaseEventData)
	OnDeselect     func(*BaseEventData)
	OnPointerEnter func(*PointerEventData)
	OnPointerExit  func(*PointerEventData)
	OnPointerDown  func(*PointerEventData)
	OnPointerUp    func(*PointerEventData)
	OnClick        func(*PointerEventData)
	OnDragStart    func(*PointerEventData)
	OnDrag         func(*PointerEventData)
	OnDragEnd      func(*PointerEventData)
}

// NewElement creates a visible, interactable element with no hit shape.
func NewElement(name string) *Element {
	return &Element{
		ID:           nextElementID(),
		Name:         name,
		Visible:      true,
		Interactable: true,
	}
}

// TargetName implements Target.
func (e *Element) TargetName() string { return e.Name }

// EntityID implements EntityTarget.
func (e *Element) EntityID() uint32 { return e.Entity }

// WorldToLocal converts a world position into the element's local space.
func (e *Element) WorldToLocal(wx, wy float64) (float64, float64) {
	return wx - e.X, wy - e.Y
}

// ContainsWorld reports whether the world point lies in the element's hit
// shape. Elements without a HitShape are not hit-testable.
func (e *Element) ContainsWorld(wx, wy float64) bool {
	if e.HitShape == nil {
		return false
	}
	return e.HitShape.Contains(e.WorldToLocal(wx, wy))
}

func (e *Element) Select(d *BaseEventData) {
	if e.OnSelect != nil {
		e.OnSelect(d)
	}
}

func (e *Element) Deselect(d *BaseEventData) {
	if e.OnDeselect != nil {
		e.OnDeselect(d)
	}
}

func (e *Element) PointerEnter(d *PointerEventData) {
	if e.OnPointerEnter != nil {
		e.OnPointerEnter(d)
	}
}

func (e *Element) PointerExit(d *PointerEventData) {
	if e.OnPointerExit != nil {
		e.OnPointerExit(d)
	}
}

func (e *Element) PointerDown(d *PointerEventData) {
	if e.OnPointerDown != nil {
		e.OnPointerDown(d)
	}
}

func (e *Element) PointerUp(d *PointerEventData) {
	if e.OnPointerUp != nil {
		e.OnPointerUp(d)
	}
}

func (e *Element) Click(d *PointerEventData) {
	if e.OnClick != nil {
		e.OnClick(d)
	}
}

func (e *Element) DragStart(d *PointerEventData) {
	if e.OnDragStart != nil {
		e.OnDragStart(d)
	}
}

func (e *Element) Drag(d *PointerEventData) {
	if e.OnDrag != nil {
		e.OnDrag(d)
	}
}

func (e *Element) DragEnd(d *PointerEventData) {
	if e.OnDragEnd != nil {
		e.OnDragEnd(d)
	}
}
