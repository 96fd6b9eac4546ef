package eventsystem

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"
)

// recordingTarget logs select/deselect notifications.
type recordingTarget struct {
	name  string
	calls *[]string
	data  []*BaseEventData
}

func (r *recordingTarget) TargetName() string { return r.name }
func (r *recordingTarget) Select(d *BaseEventData) {
	*r.calls = append(*r.calls, "select "+r.name)
	r.data = append(r.data, d)
}
func (r *recordingTarget) Deselect(d *BaseEventData) {
	*r.calls = append(*r.calls, "deselect "+r.name)
	r.data = append(r.data, d)
}

func TestSetSelectedNotifiesOldThenNew(t *testing.T) {
	var calls []string
	s := newTestSystem(NewRegistry(), nil)
	a := &recordingTarget{name: "a", calls: &calls}
	b := &recordingTarget{name: "b", calls: &calls}

	s.SetSelected(a)
	s.SetSelected(b)

	want := []string{"select a", "deselect a", "select b"}
	if !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if s.CurrentSelected() != b {
		t.Error("b should be selected")
	}
}

func TestSetSelectedSameTargetIsNoop(t *testing.T) {
	var calls []string
	s := newTestSystem(NewRegistry(), nil)
	x := &recordingTarget{name: "x", calls: &calls}

	s.SetSelected(x)
	s.SetSelected(x)

	if want := []string{"select x"}; !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	if s.AlreadySelecting() {
		t.Error("guard must be released on the no-op path")
	}
}

func TestSetSelectedNilDeselects(t *testing.T) {
	var calls []string
	s := newTestSystem(NewRegistry(), nil)
	x := &recordingTarget{name: "x", calls: &calls}
	s.SetSelected(x)
	s.SetSelected(nil)
	if s.CurrentSelected() != nil {
		t.Error("selection should be cleared")
	}
	if want := []string{"select x", "deselect x"}; !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
	s.SetSelected(nil) // nil to nil is a no-op
	if len(calls) != 2 {
		t.Error("no notifications expected for nil -> nil")
	}
}

func TestSetSelectedPayload(t *testing.T) {
	var calls []string
	s := newTestSystem(NewRegistry(), nil)
	a := &recordingTarget{name: "a", calls: &calls}
	b := &recordingTarget{name: "b", calls: &calls}

	// Default payload is cached and owned by the system.
	s.SetSelected(a)
	s.SetSelected(b)
	if len(a.data) != 2 || a.data[0] != a.data[1] || b.data[0] != a.data[0] {
		t.Fatal("SetSelected should reuse one cached payload")
	}
	if a.data[0].System() != s {
		t.Error("cached payload should reference its system")
	}

	// Explicit payload is passed to both notifications.
	custom := NewBaseEventData(s)
	if err := s.SetSelectedWith(a, custom); err != nil {
		t.Fatal(err)
	}
	if b.data[len(b.data)-1] != custom || a.data[len(a.data)-1] != custom {
		t.Error("explicit payload should reach both targets")
	}
}

func TestSetSelectedReentrantCallRejected(t *testing.T) {
	var buf bytes.Buffer
	s := newTestSystem(NewRegistry(), &buf)
	a := NewElement("a")
	b := NewElement("b")
	y := NewElement("y")

	var innerErr error
	var selectedDuringDeselect Target
	a.OnDeselect = func(d *BaseEventData) {
		innerErr = s.SetSelectedWith(y, d)
		selectedDuringDeselect = d.SelectedTarget()
	}

	s.SetSelected(a)
	if err := s.SetSelectedWith(b, NewBaseEventData(s)); err != nil {
		t.Fatalf("outer call failed: %v", err)
	}

	if !errors.Is(innerErr, ErrAlreadySelecting) {
		t.Errorf("inner error = %v, want ErrAlreadySelecting", innerErr)
	}
	if selectedDuringDeselect != a {
		t.Error("inner call must not change the selection")
	}
	if s.CurrentSelected() != b {
		t.Errorf("selected = %v, want b", targetName(s.CurrentSelected()))
	}
	if s.AlreadySelecting() {
		t.Error("guard should be released after the outer call")
	}
	out := buf.String()
	if !strings.Contains(out, `"level":"ERROR"`) || !strings.Contains(out, `"target":"y"`) {
		t.Errorf("expected an error record naming y, got %q", out)
	}
}

func TestSetSelectedReentrantFromSelectHandler(t *testing.T) {
	s := newTestSystem(NewRegistry(), nil)
	a := NewElement("a")
	other := NewElement("other")
	a.OnSelect = func(*BaseEventData) { s.SetSelected(other) }

	s.SetSelected(a)
	if s.CurrentSelected() != a {
		t.Error("select handler must not be able to redirect the selection")
	}
}

func TestSetSelectedGuardReleasedOnPanic(t *testing.T) {
	s := newTestSystem(NewRegistry(), nil)
	bad := NewElement("bad")
	bad.OnSelect = func(*BaseEventData) { panic("handler failure") }

	func() {
		defer func() {
			if recover() == nil {
				t.Error("panic should propagate to the caller")
			}
		}()
		s.SetSelected(bad)
	}()

	if s.AlreadySelecting() {
		t.Fatal("guard stuck after a panicking handler")
	}
	good := NewElement("good")
	s.SetSelected(good)
	if s.CurrentSelected() != good {
		t.Error("selection should work after a panic")
	}
}

func TestExecute(t *testing.T) {
	var calls []string
	rt := &recordingTarget{name: "r", calls: &calls}
	data := &BaseEventData{}

	if !Execute(rt, data, SelectHandler.Select) {
		t.Error("Execute should deliver to a SelectHandler")
	}
	if Execute(&namedTarget{"plain"}, data, SelectHandler.Select) {
		t.Error("Execute should skip targets without the capability")
	}
	if Execute(nil, data, SelectHandler.Select) {
		t.Error("Execute should skip nil targets")
	}
	if want := []string{"select r"}; !slices.Equal(calls, want) {
		t.Errorf("calls = %v, want %v", calls, want)
	}
}

func TestBaseEventData(t *testing.T) {
	s := newTestSystem(NewRegistry(), nil)
	d := NewBaseEventData(s)
	if d.Used() {
		t.Error("new payload should not be used")
	}
	d.Use()
	if !d.Used() {
		t.Error("Use should mark the payload")
	}
	d.Reset()
	if d.Used() {
		t.Error("Reset should clear the flag")
	}
	x := NewElement("x")
	s.SetSelected(x)
	if d.SelectedTarget() != x {
		t.Error("SelectedTarget should report the system's selection")
	}
	if (&BaseEventData{}).SelectedTarget() != nil {
		t.Error("payload without a system has no selection")
	}
}

func TestFirstSelectedAccessors(t *testing.T) {
	s := newTestSystem(NewRegistry(), nil)
	x := NewElement("x")
	s.SetFirstSelected(x)
	if s.FirstSelected() != x {
		t.Error("FirstSelected should return the set target")
	}
}
