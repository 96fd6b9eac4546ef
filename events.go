package eventsystem

// SelectionContext carries selection change data to system-level callbacks.
type SelectionContext struct {
	// Target received the notification: the new target for select, the old
	// one for deselect. May be nil.
	Target Target
	// Other is the counterpart of the change: the old target for select, the
	// new one for deselect.
	Other Target
	Data  *BaseEventData
}

// --- Handler registry ---

type selectionHandler struct {
	id uint32
	fn func(SelectionContext)
}

type handlerRegistry struct {
	selectFns   []selectionHandler
	deselectFns []selectionHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered system-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventSelect:
		h.reg.selectFns = removeSelectionHandler(h.reg.selectFns, h.id)
	case EventDeselect:
		h.reg.deselectFns = removeSelectionHandler(h.reg.deselectFns, h.id)
	}
}

func removeSelectionHandler(s []selectionHandler, id uint32) []selectionHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = selectionHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

// OnSelect registers a system-level callback fired after a target is
// notified of selection. Fires for nil targets too.
func (s *EventSystem) OnSelect(fn func(SelectionContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.selectFns = append(s.handlers.selectFns, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventSelect}
}

// OnDeselect registers a system-level callback fired after a target is
// notified of deselection. Fires for nil targets too.
func (s *EventSystem) OnDeselect(fn func(SelectionContext)) CallbackHandle {
	s.handlers.nextID++
	id := s.handlers.nextID
	s.handlers.deselectFns = append(s.handlers.deselectFns, selectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventDeselect}
}

// --- Dispatch ---

func (s *EventSystem) fireDeselect(target, next Target, data *BaseEventData) {
	Execute(target, data, DeselectHandler.Deselect)
	ctx := SelectionContext{Target: target, Other: next, Data: data}
	for _, h := range s.handlers.deselectFns {
		h.fn(ctx)
	}
	if target != nil {
		s.emit(InteractionEvent{Type: EventDeselect, EntityID: entityOf(target)})
	}
}

func (s *EventSystem) fireSelect(target, prev Target, data *BaseEventData) {
	Execute(target, data, SelectHandler.Select)
	ctx := SelectionContext{Target: target, Other: prev, Data: data}
	for _, h := range s.handlers.selectFns {
		h.fn(ctx)
	}
	if target != nil {
		s.emit(InteractionEvent{
			Type:             EventSelect,
			EntityID:         entityOf(target),
			PreviousEntityID: entityOf(prev),
		})
	}
}

// --- ECS bridge ---

// EntityTarget is a Target that maps to an ECS entity.
type EntityTarget interface {
	Target
	EntityID() uint32
}

func entityOf(t Target) uint32 {
	if et, ok := t.(EntityTarget); ok {
		return et.EntityID()
	}
	return 0
}

// emit forwards an event to the entity store. Events without an entity are
// dropped.
func (s *EventSystem) emit(e InteractionEvent) {
	if s.store == nil || e.EntityID == 0 {
		return
	}
	s.store.EmitEvent(e)
}
