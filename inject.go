package eventsystem

// syntheticPointerEvent represents a single injected mouse event in screen
// coordinates.
type syntheticPointerEvent struct {
	pos     Vec2
	pressed bool
	button  MouseButton
}

// InjectPress queues a left-button press at the given screen coordinates.
// Each queued event is consumed by one Process call, during which the real
// mouse is ignored.
func (m *PointerInputModule) InjectPress(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectMove queues a move with the button held down. Use this between
// InjectPress and InjectRelease to simulate a drag.
func (m *PointerInputModule) InjectMove(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectHover queues a move with no button held.
func (m *PointerInputModule) InjectHover(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos:    Vec2{x, y},
		button: MouseButtonLeft,
	})
}

// InjectRelease queues a release at the given screen coordinates.
func (m *PointerInputModule) InjectRelease(x, y float64) {
	m.injectQueue = append(m.injectQueue, syntheticPointerEvent{
		pos:     Vec2{x, y},
		pressed: false,
		button:  MouseButtonLeft,
	})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two ticks.
func (m *PointerInputModule) InjectClick(x, y float64) {
	m.InjectPress(x, y)
	m.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves over frames-2 intermediate ticks, and release at
// (toX, toY). Minimum frames is 2 (press + release).
func (m *PointerInputModule) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	m.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		m.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	m.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued synthetic events.
func (m *PointerInputModule) PendingInjected() int {
	return len(m.injectQueue)
}

// processInjectedInput pops one event from the queue and feeds it through
// processPointer as the mouse. Returns true if an event was consumed.
func (m *PointerInputModule) processInjectedInput() bool {
	if len(m.injectQueue) == 0 {
		return false
	}
	evt := m.injectQueue[0]
	copy(m.injectQueue, m.injectQueue[1:])
	m.injectQueue = m.injectQueue[:len(m.injectQueue)-1]

	m.processPointer(PointerMouseLeft, evt.pos, evt.pressed, evt.button)
	return true
}
