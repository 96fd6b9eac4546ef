package eventsystem

import (
	"bytes"
	"fmt"
	"log/slog"
)

// newTestSystem returns an enabled system logging JSON into buf.
func newTestSystem(reg *Registry, buf *bytes.Buffer) *EventSystem {
	if buf == nil {
		buf = &bytes.Buffer{}
	}
	s := New(reg, Options{Logger: slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))})
	s.Enable()
	return s
}

// fakeModule records every lifecycle call into a shared log.
type fakeModule struct {
	BaseInputModule
	name      string
	supported bool
	should    bool
	overAll   bool
	calls     *[]string

	activated, deactivated, updated, processed int
}

func newFakeModule(name string, supported, should bool, calls *[]string) *fakeModule {
	return &fakeModule{name: name, supported: supported, should: should, calls: calls}
}

func (m *fakeModule) record(op string) {
	if m.calls != nil {
		*m.calls = append(*m.calls, m.name+"."+op)
	}
}

func (m *fakeModule) String() string             { return m.name }
func (m *fakeModule) IsModuleSupported() bool    { return m.supported }
func (m *fakeModule) ShouldActivateModule() bool { return m.should }
func (m *fakeModule) ActivateModule()            { m.activated++; m.record("activate") }
func (m *fakeModule) DeactivateModule()          { m.deactivated++; m.record("deactivate") }
func (m *fakeModule) UpdateModule()              { m.updated++; m.record("update") }
func (m *fakeModule) Process()                   { m.processed++; m.record("process") }
func (m *fakeModule) IsPointerOverTarget(id int) bool {
	return m.overAll
}

// fakeRaycaster returns preset hits.
type fakeRaycaster struct {
	name        string
	camera      *Camera
	sortOrder   int
	renderOrder int
	inactive    bool
	hits        []RaycastResult
	queries     int
}

func (r *fakeRaycaster) IsActive() bool           { return !r.inactive }
func (r *fakeRaycaster) EventCamera() *Camera     { return r.camera }
func (r *fakeRaycaster) SortOrderPriority() int   { return r.sortOrder }
func (r *fakeRaycaster) RenderOrderPriority() int { return r.renderOrder }
func (r *fakeRaycaster) Raycast(data *PointerEventData, dst []RaycastResult) []RaycastResult {
	r.queries++
	for _, h := range r.hits {
		h.Module = r
		dst = append(dst, h)
	}
	return dst
}

// namedTarget is a bare Target with no handler capabilities.
type namedTarget struct{ name string }

func (t *namedTarget) TargetName() string { return t.name }

func hitNames(results []RaycastResult) string {
	var b bytes.Buffer
	for i, r := range results {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprint(&b, targetName(r.Target))
	}
	return b.String()
}
