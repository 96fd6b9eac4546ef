package eventsystem

import (
	"log/slog"
	"os"
)

// EntityStore is the interface for optional ECS integration.
// When set on an EventSystem, selection and pointer events are forwarded to it.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries notification data for the ECS bridge.
type InteractionEvent struct {
	Type      EventType
	EntityID  uint32
	PointerID int
	Position  Vec2
	Delta     Vec2
	Button    MouseButton
	// PreviousEntityID is the entity that lost selection (EventSelect only).
	PreviousEntityID uint32
}

// Options configures a new EventSystem. The zero value is usable.
type Options struct {
	// Config holds the persisted settings. Nil means DefaultConfig().
	Config *Config
	// Logger receives diagnostics. Nil creates a JSON logger on stderr at
	// Config.LogLevel.
	Logger *slog.Logger
	// Raycasters is the raycaster set queried by RaycastAll. Nil creates a
	// private, empty registry.
	Raycasters *RaycasterRegistry
	// FirstSelected is selected when a module activates with nothing selected.
	FirstSelected Target
}

// EventSystem coordinates input modules, raycasters, and selection.
type EventSystem struct {
	registry   *Registry
	raycasters *RaycasterRegistry
	log        *slog.Logger
	store      EntityStore
	debug      bool
	enabled    bool

	// Modules
	attached []InputModule // everything attached, in attach order
	modules  []InputModule // attached modules that were active at the last refresh
	current  InputModule

	// Selection
	firstSelected Target
	selected      Target
	selecting     bool
	dummyData     *BaseEventData
	handlers      handlerRegistry

	// Settings
	focused              bool
	dragThreshold        int
	sendNavigationEvents bool
}

// New creates an event system bound to reg. The system is not registered
// until Enable is called.
func New(reg *Registry, opts Options) *EventSystem {
	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(os.Stderr, cfg.LogLevel)
	}
	raycasters := opts.Raycasters
	if raycasters == nil {
		raycasters = NewRaycasterRegistry()
	}
	return &EventSystem{
		registry:             reg,
		raycasters:           raycasters,
		log:                  logger,
		firstSelected:        opts.FirstSelected,
		focused:              true,
		dragThreshold:        cfg.PixelDragThreshold,
		sendNavigationEvents: cfg.SendNavigationEvents,
	}
}

// Registry returns the registry this system belongs to.
func (s *EventSystem) Registry() *Registry {
	return s.registry
}

// Raycasters returns the raycaster set queried by RaycastAll.
func (s *EventSystem) Raycasters() *RaycasterRegistry {
	return s.raycasters
}

// Logger returns the system's logger.
func (s *EventSystem) Logger() *slog.Logger {
	return s.log
}

// SetEntityStore sets the optional ECS bridge.
func (s *EventSystem) SetEntityStore(store EntityStore) {
	s.store = store
}

// --- Lifecycle ---

// Enable registers the system with its registry. Calling Enable on an
// enabled system does nothing.
func (s *EventSystem) Enable() {
	if s.enabled {
		return
	}
	s.enabled = true
	s.registry.Register(s)
}

// Disable deactivates the current module and removes the system from its
// registry.
func (s *EventSystem) Disable() {
	if !s.enabled {
		return
	}
	if s.current != nil {
		s.current.DeactivateModule()
		s.current = nil
	}
	s.enabled = false
	s.registry.Unregister(s)
}

// IsEnabled reports whether the system is registered.
func (s *EventSystem) IsEnabled() bool {
	return s.enabled
}

// IsCurrent reports whether s is the head of its registry.
func (s *EventSystem) IsCurrent() bool {
	return s.registry.Current() == s
}

// MakeCurrent promotes s to the head of its registry.
func (s *EventSystem) MakeCurrent() {
	s.registry.SetCurrent(s)
}

// SetFocused records whether the application window has focus.
func (s *EventSystem) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused reports whether the application window has focus. Defaults to true.
func (s *EventSystem) IsFocused() bool {
	return s.focused
}

// PixelDragThreshold returns the distance in pixels a pointer must move
// before a drag starts.
func (s *EventSystem) PixelDragThreshold() int {
	return s.dragThreshold
}

// SetPixelDragThreshold sets the drag threshold in pixels.
func (s *EventSystem) SetPixelDragThreshold(pixels int) {
	s.dragThreshold = pixels
}

// SendNavigationEvents reports whether modules should emit navigation events.
func (s *EventSystem) SendNavigationEvents() bool {
	return s.sendNavigationEvents
}

// SetSendNavigationEvents enables or disables navigation events.
func (s *EventSystem) SetSendNavigationEvents(enabled bool) {
	s.sendNavigationEvents = enabled
}

// --- Modules ---

// AttachModule adds m to the modules this system schedules. Attach order is
// priority order. Nil and already-attached modules are ignored.
func (s *EventSystem) AttachModule(m InputModule) {
	if m == nil {
		return
	}
	for _, cur := range s.attached {
		if cur == m {
			return
		}
	}
	s.attached = append(s.attached, m)
}

// DetachModule removes m. If m is the current module it is deactivated first.
func (s *EventSystem) DetachModule(m InputModule) {
	for i, cur := range s.attached {
		if cur != m {
			continue
		}
		if s.current == m {
			s.changeModule(nil)
		}
		s.attached = append(s.attached[:i], s.attached[i+1:]...)
		break
	}
	for i, cur := range s.modules {
		if cur == m {
			s.modules = append(s.modules[:i], s.modules[i+1:]...)
			break
		}
	}
}

// UpdateModules rebuilds the active module list from the attached modules,
// keeping attach order and dropping modules whose IsActive is false.
func (s *EventSystem) UpdateModules() {
	s.modules = s.modules[:0]
	for _, m := range s.attached {
		if m.IsActive() {
			s.modules = append(s.modules, m)
		}
	}
}

// Modules returns the active module list from the most recent refresh.
// The returned slice MUST NOT be mutated.
func (s *EventSystem) Modules() []InputModule {
	return s.modules
}

// CurrentModule returns the module driving event dispatch, or nil.
func (s *EventSystem) CurrentModule() InputModule {
	return s.current
}

// Update runs one tick. Systems that are not current return immediately.
//
// Every active module is updated, then the first module that is supported and
// wants activation becomes current. With no current module, the first
// supported one is used instead. The current module is processed only when
// no transition happened this tick.
func (s *EventSystem) Update() {
	if !s.IsCurrent() {
		return
	}
	s.UpdateModules()
	s.tickModules()

	changed := false
	for _, m := range s.modules {
		if m.IsModuleSupported() && m.ShouldActivateModule() {
			if s.current != m {
				s.changeModule(m)
				changed = true
			}
			break
		}
	}

	if s.current == nil {
		for _, m := range s.modules {
			if m.IsModuleSupported() {
				s.changeModule(m)
				changed = true
				break
			}
		}
	}

	if !changed && s.current != nil {
		s.current.Process()
	}
}

func (s *EventSystem) tickModules() {
	for _, m := range s.modules {
		m.UpdateModule()
	}
}

func (s *EventSystem) changeModule(m InputModule) {
	if s.current == m {
		return
	}
	prev := s.current
	if prev != nil {
		prev.DeactivateModule()
	}
	if m != nil {
		m.ActivateModule()
	}
	s.current = m
	s.debugModuleChange(prev, m)
}
