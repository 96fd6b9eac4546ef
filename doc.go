// Package eventsystem routes UI input for [Ebitengine] games.
//
// An [EventSystem] owns the input modules attached to it, picks exactly one
// current module per tick, merges hits from every registered [Raycaster]
// into a single ordered list, and tracks the one selected [Target].
//
// # Quick start
//
//	reg := eventsystem.NewRegistry()
//	sys := eventsystem.New(reg, eventsystem.Options{})
//	sys.Enable()
//
//	rc := eventsystem.NewShapeRaycaster(nil)
//	sys.Raycasters().Add(rc)
//
//	button := eventsystem.NewElement("play")
//	button.HitShape = eventsystem.HitRect{Width: 120, Height: 40}
//	button.OnClick = func(d *eventsystem.PointerEventData) { start() }
//	rc.Add(button)
//
//	sys.AttachModule(eventsystem.NewPointerInputModule(sys, &eventsystem.EbitenPointerSource{}))
//
// Then call [EventSystem.Update] once per frame, or hand the registry to
// [Game] which does it for you. [Run] opens a window around a Game:
//
//	eventsystem.Run(reg, drawUI, eventsystem.RunConfig{
//		Title: "My Game", Width: 640, Height: 480,
//	})
//
// # Registries
//
// Every system belongs to a [Registry]. Only the head of the registry is
// current and does work in Update; [Registry.SetCurrent] promotes another
// system to the front. Raycasters are discovered through a
// [RaycasterRegistry], which may be shared between systems.
//
// # Modules
//
// Each tick the current system keeps the attached modules that report
// IsActive, calls UpdateModule on all of them, then activates the first one
// that is supported and wants activation. A module is never processed on the
// tick it was activated.
//
// # Raycast ordering
//
// [EventSystem.RaycastAll] sorts hits with [CompareRaycastResults]: camera depth and
// raycaster priorities first, then sorting layer, sorting order, depth,
// distance and finally insertion index. The first result is the topmost hit.
//
// # Selection
//
// [EventSystem.SetSelected] sends a deselect to the previous target and a
// select to the new one. Selection changes requested from inside those
// notifications are rejected and logged.
//
// # Configuration and testing
//
// Settings such as the drag threshold and log level load from TOML with
// [LoadConfig]. Input can be injected into a [PointerInputModule] directly or
// replayed from a JSON script with [LoadScript].
//
// Selection and pointer interactions can be forwarded to an ECS through
// [EntityStore]; see the eventsystem/ecs module for a [Donburi] adapter.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package eventsystem
