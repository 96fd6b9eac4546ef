package eventsystem

// --- Pointer payload ---

// PointerEventData is the payload for pointer notifications. One instance is
// kept per pointer and reused across ticks.
type PointerEventData struct {
	BaseEventData

	PointerID     int
	Position      Vec2 // screen position this tick
	Delta         Vec2 // movement since the previous tick
	PressPosition Vec2 // screen position of the last press
	Button        MouseButton
	Dragging      bool

	// PointerEnter is the target currently under the pointer.
	PointerEnter Target
	// PointerPress is the target that received the last press.
	PointerPress Target
	// PointerDrag is the target receiving drag events.
	PointerDrag Target

	RaycastCurrent RaycastResult
	RaycastPress   RaycastResult
}

// --- Pointer handler capabilities ---

type PointerEnterHandler interface{ PointerEnter(*PointerEventData) }
type PointerExitHandler interface{ PointerExit(*PointerEventData) }
type PointerDownHandler interface{ PointerDown(*PointerEventData) }
type PointerUpHandler interface{ PointerUp(*PointerEventData) }
type ClickHandler interface{ Click(*PointerEventData) }
type DragStartHandler interface{ DragStart(*PointerEventData) }
type DragHandler interface{ Drag(*PointerEventData) }
type DragEndHandler interface{ DragEnd(*PointerEventData) }

// --- Pointer sources ---

// Touch is one active touch point in screen coordinates.
type Touch struct {
	ID   int
	X, Y float64
}

// PointerSource supplies raw pointer state to a PointerInputModule.
// EbitenPointerSource reads it from Ebitengine.
type PointerSource interface {
	MousePresent() bool
	CursorPosition() (x, y float64)
	IsMouseButtonPressed(b MouseButton) bool
	AppendTouches(dst []Touch) []Touch
}

// --- Per-pointer state ---

type pointerState struct {
	data     PointerEventData
	down     bool
	seen     bool // touch reported this tick
	hasPoint bool // Position holds a real sample
}

// PointerInputModule drives pointer (mouse and touch) interaction: hover
// enter/exit, press, release, click, drag, and press-to-select.
type PointerInputModule struct {
	BaseInputModule

	system *EventSystem
	source PointerSource

	pointers    map[int]*pointerState
	hitBuf      []RaycastResult
	touchBuf    []Touch
	injectQueue []syntheticPointerEvent

	mousePos     Vec2
	lastMousePos Vec2
}

// NewPointerInputModule creates a module that dispatches through sys and reads
// input from src. src may be nil when input is only injected.
func NewPointerInputModule(sys *EventSystem, src PointerSource) *PointerInputModule {
	return &PointerInputModule{
		system:   sys,
		source:   src,
		pointers: make(map[int]*pointerState),
	}
}

// String names the module in diagnostics.
func (m *PointerInputModule) String() string { return "PointerInputModule" }

// UpdateModule samples the mouse position so ShouldActivateModule can detect
// movement.
func (m *PointerInputModule) UpdateModule() {
	m.lastMousePos = m.mousePos
	if m.source != nil && m.source.MousePresent() {
		x, y := m.source.CursorPosition()
		m.mousePos = Vec2{x, y}
	}
}

// ShouldActivateModule reports pointer activity: movement, a pressed button,
// an active touch, or queued injected input.
func (m *PointerInputModule) ShouldActivateModule() bool {
	if !m.BaseInputModule.ShouldActivateModule() {
		return false
	}
	if len(m.injectQueue) > 0 {
		return true
	}
	if m.source == nil {
		return false
	}
	if m.source.MousePresent() {
		if m.mousePos != m.lastMousePos {
			return true
		}
		for _, b := range []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle} {
			if m.source.IsMouseButtonPressed(b) {
				return true
			}
		}
	}
	m.touchBuf = m.source.AppendTouches(m.touchBuf[:0])
	return len(m.touchBuf) > 0
}

// ActivateModule restores the selection: the current selection if any,
// otherwise the system's first selected target.
func (m *PointerInputModule) ActivateModule() {
	m.lastMousePos = m.mousePos
	toSelect := m.system.CurrentSelected()
	if toSelect == nil {
		toSelect = m.system.FirstSelected()
	}
	m.system.SetSelected(toSelect)
}

// DeactivateModule sends exit events for hovered targets, forgets all pointer
// state, and clears the selection.
func (m *PointerInputModule) DeactivateModule() {
	for _, ps := range m.pointers {
		if ps.data.PointerEnter != nil {
			m.fire(EventPointerExit, ps.data.PointerEnter, &ps.data)
		}
	}
	clear(m.pointers)
	m.injectQueue = m.injectQueue[:0]
	m.system.SetSelected(nil)
}

// IsPointerOverTarget reports whether the pointer's last raycast hit a target.
func (m *PointerInputModule) IsPointerOverTarget(pointerID int) bool {
	ps, ok := m.pointers[pointerID]
	return ok && ps.data.PointerEnter != nil
}

// Process handles one tick of input. Injected input takes precedence over the
// real mouse for as long as the queue is non-empty.
func (m *PointerInputModule) Process() {
	if m.processInjectedInput() {
		return
	}
	if m.source == nil {
		return
	}
	if m.source.MousePresent() {
		m.processMousePointer()
	}
	m.processTouchPointers()
}

func (m *PointerInputModule) processMousePointer() {
	x, y := m.source.CursorPosition()

	// While pressed, keep the button captured at press time.
	var pressed bool
	button := MouseButtonLeft
	switch {
	case m.source.IsMouseButtonPressed(MouseButtonLeft):
		pressed = true
	case m.source.IsMouseButtonPressed(MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case m.source.IsMouseButtonPressed(MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}
	m.processPointer(PointerMouseLeft, Vec2{x, y}, pressed, button)
}

func (m *PointerInputModule) processTouchPointers() {
	m.touchBuf = m.source.AppendTouches(m.touchBuf[:0])
	for id, ps := range m.pointers {
		if id >= 0 {
			ps.seen = false
		}
	}
	for _, t := range m.touchBuf {
		m.processPointer(t.ID, Vec2{t.X, t.Y}, true, MouseButtonLeft)
		m.pointers[t.ID].seen = true
	}
	// Release touches that ended, then forget them.
	for id, ps := range m.pointers {
		if id < 0 || ps.seen {
			continue
		}
		m.processPointer(id, ps.data.Position, false, MouseButtonLeft)
		if ps.data.PointerEnter != nil {
			m.fire(EventPointerExit, ps.data.PointerEnter, &ps.data)
		}
		delete(m.pointers, id)
	}
}

func (m *PointerInputModule) state(pointerID int) *pointerState {
	ps, ok := m.pointers[pointerID]
	if !ok {
		ps = &pointerState{}
		ps.data.BaseEventData = BaseEventData{system: m.system}
		ps.data.PointerID = pointerID
		m.pointers[pointerID] = ps
	}
	return ps
}

// processPointer runs the pointer state machine for a single pointer.
func (m *PointerInputModule) processPointer(pointerID int, pos Vec2, pressed bool, button MouseButton) {
	ps := m.state(pointerID)
	data := &ps.data
	data.Reset()
	if ps.hasPoint {
		data.Delta = pos.Sub(data.Position)
	}
	data.Position = pos
	ps.hasPoint = true

	m.hitBuf = m.system.RaycastAll(data, m.hitBuf)
	var hit RaycastResult
	if len(m.hitBuf) > 0 {
		hit = m.hitBuf[0]
	}
	data.RaycastCurrent = hit
	target := hit.Target

	// Fire enter/exit when the hovered target changes.
	if target != data.PointerEnter {
		if data.PointerEnter != nil {
			m.fire(EventPointerExit, data.PointerEnter, data)
		}
		data.PointerEnter = target
		if target != nil {
			m.fire(EventPointerEnter, target, data)
		}
	}

	switch {
	case pressed && !ps.down:
		// Just pressed: capture the button for the whole interaction.
		ps.down = true
		data.Button = button
		data.PressPosition = pos
		data.PointerPress = target
		data.RaycastPress = hit
		data.Dragging = false
		data.PointerDrag = nil

		m.updateSelectionOnPress(target)
		if target != nil {
			m.fire(EventPointerDown, target, data)
		}

	case !pressed && ps.down:
		if data.Dragging {
			m.fire(EventDragEnd, data.PointerDrag, data)
		} else if data.PointerPress != nil && data.PointerPress == target {
			m.fire(EventClick, target, data)
		}
		if data.PointerPress != nil {
			m.fire(EventPointerUp, data.PointerPress, data)
		}

		ps.down = false
		data.Dragging = false
		data.PointerPress = nil
		data.PointerDrag = nil

	case pressed && ps.down:
		if data.Delta == (Vec2{}) {
			return
		}
		if !data.Dragging && data.PointerPress != nil {
			threshold := float64(m.system.PixelDragThreshold())
			if pos.Sub(data.PressPosition).SqrLen() >= threshold*threshold {
				data.Dragging = true
				data.PointerDrag = data.PointerPress
				m.fire(EventDragStart, data.PointerDrag, data)
			}
		}
		if data.Dragging {
			m.fire(EventDrag, data.PointerDrag, data)
		}
	}
}

// updateSelectionOnPress selects a pressed Selectable element, and clears the
// selection when anything else is pressed.
func (m *PointerInputModule) updateSelectionOnPress(target Target) {
	if e, ok := target.(*Element); ok && e.Selectable {
		m.system.SetSelected(target)
		return
	}
	if target != m.system.CurrentSelected() {
		m.system.SetSelected(nil)
	}
}

// fire delivers a pointer notification to target and mirrors it to the
// system's entity store.
func (m *PointerInputModule) fire(event EventType, target Target, data *PointerEventData) {
	switch event {
	case EventPointerEnter:
		Execute(target, data, PointerEnterHandler.PointerEnter)
	case EventPointerExit:
		Execute(target, data, PointerExitHandler.PointerExit)
	case EventPointerDown:
		Execute(target, data, PointerDownHandler.PointerDown)
	case EventPointerUp:
		Execute(target, data, PointerUpHandler.PointerUp)
	case EventClick:
		Execute(target, data, ClickHandler.Click)
	case EventDragStart:
		Execute(target, data, DragStartHandler.DragStart)
	case EventDrag:
		Execute(target, data, DragHandler.Drag)
	case EventDragEnd:
		Execute(target, data, DragEndHandler.DragEnd)
	}
	m.system.emit(InteractionEvent{
		Type:      event,
		EntityID:  entityOf(target),
		PointerID: data.PointerID,
		Position:  data.Position,
		Delta:     data.Delta,
		Button:    data.Button,
	})
}
