package ecs

import (
	"github.com/phanxgames/eventsystem"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SelectionEvent reports a select or deselect of an entity.
type SelectionEvent struct {
	// Selected is true for select, false for deselect.
	Selected bool
	EntityID uint32
	// PreviousEntityID is the entity that lost selection, for select events.
	PreviousEntityID uint32
}

// PointerEvent reports a pointer interaction with an entity.
type PointerEvent struct {
	Type      eventsystem.EventType
	EntityID  uint32
	PointerID int
	X, Y      float64
	DeltaX    float64
	DeltaY    float64
	Button    eventsystem.MouseButton
}

// SelectionEventType is the Donburi event type for selection changes.
var SelectionEventType = events.NewEventType[SelectionEvent]()

// PointerEventType is the Donburi event type for pointer interactions.
var PointerEventType = events.NewEventType[PointerEvent]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world. Events are
// queued on the world and delivered by ProcessEvents on the matching event
// type.
func NewDonburiStore(world donburi.World) eventsystem.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(e eventsystem.InteractionEvent) {
	if e.Type.IsSelection() {
		SelectionEventType.Publish(s.world, SelectionEvent{
			Selected:         e.Type == eventsystem.EventSelect,
			EntityID:         e.EntityID,
			PreviousEntityID: e.PreviousEntityID,
		})
		return
	}
	PointerEventType.Publish(s.world, PointerEvent{
		Type:      e.Type,
		EntityID:  e.EntityID,
		PointerID: e.PointerID,
		X:         e.Position.X,
		Y:         e.Position.Y,
		DeltaX:    e.Delta.X,
		DeltaY:    e.Delta.Y,
		Button:    e.Button,
	})
}
