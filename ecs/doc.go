// Package ecs provides ECS adapters for eventsystem.
//
// The primary adapter is [NewDonburiStore], which forwards interaction events
// from an [eventsystem.EventSystem] into a [Donburi] world as typed events.
// Selection changes are published to [SelectionEventType]; pointer events
// (enter, exit, down, up, click, drag) are published to [PointerEventType].
//
// Usage:
//
//	store := ecs.NewDonburiStore(world)
//	sys.SetEntityStore(store)
//
//	ecs.SelectionEventType.Subscribe(world, onSelection)
//	// once per frame:
//	ecs.SelectionEventType.ProcessEvents(world)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
