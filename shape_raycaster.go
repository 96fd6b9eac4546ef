package eventsystem

// ShapeRaycaster hit tests a flat list of Elements against their HitShapes.
// Elements added later are treated as drawn on top of earlier ones.
type ShapeRaycaster struct {
	// Camera converts pointer positions to world space and limits hits to its
	// viewport. Nil means screen space equals world space.
	Camera *Camera
	// SortOrder and RenderOrder are reported as SortOrderPriority and
	// RenderOrderPriority.
	SortOrder   int
	RenderOrder int
	// Disabled removes the raycaster from RaycastAll.
	Disabled bool

	elements []*Element
}

// NewShapeRaycaster creates a raycaster seeing through cam (which may be nil).
func NewShapeRaycaster(cam *Camera) *ShapeRaycaster {
	return &ShapeRaycaster{Camera: cam}
}

// Add appends e on top of the existing elements. Duplicates are ignored.
func (r *ShapeRaycaster) Add(e *Element) {
	for _, cur := range r.elements {
		if cur == e {
			return
		}
	}
	r.elements = append(r.elements, e)
}

// Remove removes e. No-op if e was not added.
func (r *ShapeRaycaster) Remove(e *Element) {
	for i, cur := range r.elements {
		if cur == e {
			copy(r.elements[i:], r.elements[i+1:])
			r.elements[len(r.elements)-1] = nil
			r.elements = r.elements[:len(r.elements)-1]
			return
		}
	}
}

// Elements returns the elements in bottom-to-top order. The returned slice
// MUST NOT be mutated.
func (r *ShapeRaycaster) Elements() []*Element {
	return r.elements
}

func (r *ShapeRaycaster) IsActive() bool           { return !r.Disabled }
func (r *ShapeRaycaster) EventCamera() *Camera     { return r.Camera }
func (r *ShapeRaycaster) SortOrderPriority() int   { return r.SortOrder }
func (r *ShapeRaycaster) RenderOrderPriority() int { return r.RenderOrder }

// Raycast appends a result for every visible, interactable element whose hit
// shape contains the pointer. Hits are appended topmost first.
func (r *ShapeRaycaster) Raycast(data *PointerEventData, dst []RaycastResult) []RaycastResult {
	sx, sy := data.Position.X, data.Position.Y
	wx, wy := sx, sy
	if r.Camera != nil {
		if !r.Camera.ContainsScreen(sx, sy) {
			return dst
		}
		wx, wy = r.Camera.ScreenToWorld(sx, sy)
	}

	// Iterate backward (reverse painter order): topmost element first.
	for i := len(r.elements) - 1; i >= 0; i-- {
		e := r.elements[i]
		if !e.Visible || !e.Interactable || !e.ContainsWorld(wx, wy) {
			continue
		}
		dst = append(dst, RaycastResult{
			Module:         r,
			Target:         e,
			SortingLayer:   e.SortingLayer,
			SortingOrder:   e.SortingOrder,
			Depth:          e.Depth,
			Index:          len(dst),
			WorldPosition:  Vec2{wx, wy},
			ScreenPosition: Vec2{sx, sy},
		})
	}
	return dst
}
