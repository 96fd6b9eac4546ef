package ecs

import (
	"testing"

	"github.com/phanxgames/eventsystem"

	"github.com/yohamta/donburi"
)

func TestDonburiStore_RoutesByType(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var selections []SelectionEvent
	var pointers []PointerEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e SelectionEvent) {
		selections = append(selections, e)
	})
	PointerEventType.Subscribe(world, func(w donburi.World, e PointerEvent) {
		pointers = append(pointers, e)
	})

	store.EmitEvent(eventsystem.InteractionEvent{
		Type:             eventsystem.EventSelect,
		EntityID:         7,
		PreviousEntityID: 3,
	})
	store.EmitEvent(eventsystem.InteractionEvent{
		Type:      eventsystem.EventPointerDown,
		EntityID:  42,
		PointerID: eventsystem.PointerMouseLeft,
		Position:  eventsystem.Vec2{X: 100, Y: 200},
		Button:    eventsystem.MouseButtonRight,
	})
	store.EmitEvent(eventsystem.InteractionEvent{Type: eventsystem.EventDeselect, EntityID: 7})

	// Events are queued until processed.
	if len(selections) != 0 || len(pointers) != 0 {
		t.Fatal("events should not be delivered before ProcessEvents")
	}
	SelectionEventType.ProcessEvents(world)
	PointerEventType.ProcessEvents(world)

	want := []SelectionEvent{
		{Selected: true, EntityID: 7, PreviousEntityID: 3},
		{Selected: false, EntityID: 7},
	}
	if len(selections) != len(want) {
		t.Fatalf("selections = %+v", selections)
	}
	for i := range want {
		if selections[i] != want[i] {
			t.Errorf("selection %d = %+v, want %+v", i, selections[i], want[i])
		}
	}

	if len(pointers) != 1 {
		t.Fatalf("pointers = %+v", pointers)
	}
	p := pointers[0]
	if p.Type != eventsystem.EventPointerDown || p.EntityID != 42 || p.X != 100 || p.Y != 200 {
		t.Errorf("pointer event = %+v", p)
	}
	if p.Button != eventsystem.MouseButtonRight || p.PointerID != eventsystem.PointerMouseLeft {
		t.Errorf("pointer event = %+v", p)
	}
}

func TestDonburiStore_FromEventSystem(t *testing.T) {
	world := donburi.NewWorld()
	sys := eventsystem.New(eventsystem.NewRegistry(), eventsystem.Options{})
	sys.SetEntityStore(NewDonburiStore(world))

	var got []SelectionEvent
	SelectionEventType.Subscribe(world, func(w donburi.World, e SelectionEvent) {
		got = append(got, e)
	})

	a := eventsystem.NewElement("a")
	a.Entity = 1
	b := eventsystem.NewElement("b")
	b.Entity = 2
	sys.SetSelected(a)
	sys.SetSelected(b)
	SelectionEventType.ProcessEvents(world)

	want := []SelectionEvent{
		{Selected: true, EntityID: 1},
		{Selected: false, EntityID: 1},
		{Selected: true, EntityID: 2, PreviousEntityID: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestDonburiStore_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var count1, count2 int
	PointerEventType.Subscribe(world, func(w donburi.World, e PointerEvent) { count1++ })
	PointerEventType.Subscribe(world, func(w donburi.World, e PointerEvent) { count2++ })

	store.EmitEvent(eventsystem.InteractionEvent{Type: eventsystem.EventClick, EntityID: 1})
	PointerEventType.ProcessEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("count1=%d count2=%d, want 1/1", count1, count2)
	}
}
