package eventsystem

import (
	"cmp"
	"slices"
)

// Raycaster reports the targets under a pointer. Many raycasters can be active
// at once; RaycastAll merges their hits.
type Raycaster interface {
	IsActive() bool
	// Raycast appends the hits for data to dst and returns the extended slice.
	Raycast(data *PointerEventData, dst []RaycastResult) []RaycastResult
	// EventCamera returns the camera the raycaster sees through, or nil.
	EventCamera() *Camera
	SortOrderPriority() int
	RenderOrderPriority() int
}

// RaycastResult is one candidate hit. Results are created per query and are
// not retained by the event system.
type RaycastResult struct {
	Module Raycaster
	Target Target

	// SortingLayer is the resolved layer value, not a layer ID.
	SortingLayer int
	SortingOrder int
	Depth        int
	Distance     float64
	// Index is the position of the hit in the combined list before sorting.
	Index int

	WorldPosition  Vec2
	ScreenPosition Vec2
}

// IsValid reports whether the result refers to a raycaster and a target.
func (r RaycastResult) IsValid() bool {
	return r.Module != nil && r.Target != nil
}

// CompareRaycastResults orders a before b when a is the better (topmost) hit.
// Returns a negative number, zero, or a positive number like [cmp.Compare].
//
// Hits from different raycasters are ordered by event camera depth when both
// raycasters have a camera, then by sort order priority, then render order
// priority, all descending. Remaining keys, in order: sorting layer value
// ascending, sorting order descending, depth descending, distance ascending,
// index ascending.
func CompareRaycastResults(a, b RaycastResult) int {
	if a.Module != b.Module {
		ac, bc := a.Module.EventCamera(), b.Module.EventCamera()
		if ac != nil && bc != nil && ac.Depth != bc.Depth {
			return cmp.Compare(bc.Depth, ac.Depth)
		}
		if ap, bp := a.Module.SortOrderPriority(), b.Module.SortOrderPriority(); ap != bp {
			return cmp.Compare(bp, ap)
		}
		if ap, bp := a.Module.RenderOrderPriority(), b.Module.RenderOrderPriority(); ap != bp {
			return cmp.Compare(bp, ap)
		}
	}

	// Lower layer values win here, unlike sorting order and depth.
	if a.SortingLayer != b.SortingLayer {
		return cmp.Compare(a.SortingLayer, b.SortingLayer)
	}
	if a.SortingOrder != b.SortingOrder {
		return cmp.Compare(b.SortingOrder, a.SortingOrder)
	}
	if a.Depth != b.Depth {
		return cmp.Compare(b.Depth, a.Depth)
	}
	if a.Distance != b.Distance {
		return cmp.Compare(a.Distance, b.Distance)
	}
	return cmp.Compare(a.Index, b.Index)
}

// RaycastAll collects the hits of every active registered raycaster into dst
// (which is truncated first) and sorts them so the topmost hit comes first.
// Index is reassigned to each hit's position in the combined list, so it is
// unique within one call.
func (s *EventSystem) RaycastAll(data *PointerEventData, dst []RaycastResult) []RaycastResult {
	dst = dst[:0]
	for _, rc := range s.raycasters.Raycasters() {
		if rc == nil || !rc.IsActive() {
			continue
		}
		dst = rc.Raycast(data, dst)
	}
	for i := range dst {
		dst[i].Index = i
	}
	slices.SortFunc(dst, CompareRaycastResults)
	return dst
}

// IsPointerOverAnything reports whether the left mouse pointer is over a
// target, as judged by the current module.
func (s *EventSystem) IsPointerOverAnything() bool {
	return s.IsPointerOverTarget(PointerMouseLeft)
}

// IsPointerOverTarget asks the current module whether pointerID is over a
// target. Returns false when there is no current module.
func (s *EventSystem) IsPointerOverTarget(pointerID int) bool {
	if s.current == nil {
		return false
	}
	return s.current.IsPointerOverTarget(pointerID)
}

// --- Raycaster registry ---

// RaycasterRegistry is the ordered set of raycasters an EventSystem queries.
// It can be shared by several systems.
type RaycasterRegistry struct {
	raycasters []Raycaster
}

// NewRaycasterRegistry creates an empty registry.
func NewRaycasterRegistry() *RaycasterRegistry {
	return &RaycasterRegistry{}
}

// Add registers rc. Nil and already-registered raycasters are ignored.
func (r *RaycasterRegistry) Add(rc Raycaster) {
	if rc == nil || slices.Contains(r.raycasters, rc) {
		return
	}
	r.raycasters = append(r.raycasters, rc)
}

// Remove unregisters rc. No-op if rc is not registered.
func (r *RaycasterRegistry) Remove(rc Raycaster) {
	if i := slices.Index(r.raycasters, rc); i >= 0 {
		r.raycasters = slices.Delete(r.raycasters, i, i+1)
	}
}

// Raycasters returns the registered raycasters in registration order.
// The returned slice MUST NOT be mutated.
func (r *RaycasterRegistry) Raycasters() []Raycaster {
	return r.raycasters
}
