package eventsystem

import "errors"

// ErrAlreadySelecting is returned by SetSelectedWith when it is called while
// another selection change is still running.
var ErrAlreadySelecting = errors.New("eventsystem: already selecting a target")

// Target is anything that can be selected or hit by a raycast. Implementations
// must be comparable and are compared by identity, so use pointer types.
type Target interface {
	TargetName() string
}

// SelectHandler receives select notifications.
type SelectHandler interface {
	Select(data *BaseEventData)
}

// DeselectHandler receives deselect notifications.
type DeselectHandler interface {
	Deselect(data *BaseEventData)
}

// BaseEventData is the payload carried by every notification.
type BaseEventData struct {
	system *EventSystem
	used   bool
}

// NewBaseEventData creates a payload originating from s.
func NewBaseEventData(s *EventSystem) *BaseEventData {
	return &BaseEventData{system: s}
}

// System returns the event system that produced the payload.
func (d *BaseEventData) System() *EventSystem { return d.system }

// SelectedTarget returns the originating system's selected target.
func (d *BaseEventData) SelectedTarget() Target {
	if d.system == nil {
		return nil
	}
	return d.system.selected
}

// Use marks the payload as consumed.
func (d *BaseEventData) Use() { d.used = true }

// Used reports whether a handler consumed the payload.
func (d *BaseEventData) Used() bool { return d.used }

// Reset clears the used flag.
func (d *BaseEventData) Reset() { d.used = false }

// Execute delivers data to target if target implements H, by calling call.
// It reports whether delivery happened; a nil target is never delivered to.
//
//	eventsystem.Execute(target, data, eventsystem.SelectHandler.Select)
func Execute[H any, D any](target Target, data D, call func(H, D)) bool {
	if target == nil {
		return false
	}
	h, ok := target.(H)
	if !ok {
		return false
	}
	call(h, data)
	return true
}

// CurrentSelected returns the selected target, or nil.
func (s *EventSystem) CurrentSelected() Target {
	return s.selected
}

// FirstSelected returns the target selected when a module activates with no
// selection.
func (s *EventSystem) FirstSelected() Target {
	return s.firstSelected
}

// SetFirstSelected sets the target selected on module activation.
func (s *EventSystem) SetFirstSelected(t Target) {
	s.firstSelected = t
}

// AlreadySelecting reports whether a selection change is running.
func (s *EventSystem) AlreadySelecting() bool {
	return s.selecting
}

// SetSelected selects target using the system's shared placeholder payload.
// Rejected calls are logged; see SetSelectedWith.
func (s *EventSystem) SetSelected(target Target) {
	_ = s.SetSelectedWith(target, s.baseEventDataCache())
}

// SetSelectedWith makes target the selected target, sending a deselect to the
// previous target and a select to the new one, both with data.
//
// Calls made while a change is already running (for example from a deselect
// handler) are logged and rejected with ErrAlreadySelecting; the selection is
// left untouched. Selecting the already-selected target does nothing.
func (s *EventSystem) SetSelectedWith(target Target, data *BaseEventData) error {
	if s.selecting {
		s.log.Error("attempting to select while already selecting",
			"target", targetName(target),
			"selected", targetName(s.selected))
		return ErrAlreadySelecting
	}

	s.selecting = true
	defer func() { s.selecting = false }()

	if target == s.selected {
		return nil
	}

	prev := s.selected
	s.fireDeselect(prev, target, data)
	s.selected = target
	s.fireSelect(target, prev, data)
	return nil
}

func (s *EventSystem) baseEventDataCache() *BaseEventData {
	if s.dummyData == nil {
		s.dummyData = NewBaseEventData(s)
	}
	return s.dummyData
}

func targetName(t Target) string {
	if t == nil {
		return "<nil>"
	}
	return t.TargetName()
}
