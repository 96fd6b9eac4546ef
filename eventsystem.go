package eventsystem

import "math"

// Vec2 is a 2D vector used for positions and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// SqrLen returns the squared length of v.
func (v Vec2) SqrLen() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Len returns the length of v.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.SqrLen())
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// EventType identifies a kind of notification sent to targets.
type EventType uint8

const (
	EventSelect       EventType = iota // target became the selected target
	EventDeselect                      // target stopped being the selected target
	EventPointerEnter                  // pointer moved onto the target
	EventPointerExit                   // pointer moved off the target
	EventPointerDown                   // pointer pressed over the target
	EventPointerUp                     // pointer released after pressing the target
	EventClick                         // press and release over the same target
	EventDragStart                     // movement exceeded the drag threshold
	EventDrag                          // fires each tick while dragging
	EventDragEnd                       // pointer released after dragging
)

var eventTypeNames = [...]string{
	EventSelect:       "select",
	EventDeselect:     "deselect",
	EventPointerEnter: "pointer_enter",
	EventPointerExit:  "pointer_exit",
	EventPointerDown:  "pointer_down",
	EventPointerUp:    "pointer_up",
	EventClick:        "click",
	EventDragStart:    "drag_start",
	EventDrag:         "drag",
	EventDragEnd:      "drag_end",
}

func (e EventType) String() string {
	if int(e) < len(eventTypeNames) {
		return eventTypeNames[e]
	}
	return "unknown"
}

// IsSelection reports whether e is EventSelect or EventDeselect.
func (e EventType) IsSelection() bool {
	return e == EventSelect || e == EventDeselect
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Pointer IDs for the mouse. Touches use their non-negative touch IDs.
const (
	PointerMouseLeft   = -1
	PointerMouseRight  = -2
	PointerMouseMiddle = -3
)

