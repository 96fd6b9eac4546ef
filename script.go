package eventsystem

import (
	"encoding/json"
	"fmt"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a JSON input script through a PointerInputModule's
// injection queue, for automated UI tests and demos:
//
//	{"steps": [
//	  {"action": "click", "x": 50, "y": 50},
//	  {"action": "wait", "frames": 10},
//	  {"action": "drag", "fromX": 0, "fromY": 0, "toX": 90, "toY": 0, "frames": 6}
//	]}
//
// Actions are click, press, release, hover, drag, and wait.
type ScriptRunner struct {
	module    *PointerInputModule
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script that will drive m.
func LoadScript(jsonData []byte, m *PointerInputModule) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "click", "press", "release", "hover", "drag", "wait":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{module: m, steps: script.Steps}, nil
}

// Done reports whether every step has run and its input has been consumed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the script by one frame. Call it before the event systems
// update; [Game] does so when its Script field is set.
func (r *ScriptRunner) Step() {
	if r.done {
		return
	}
	// Let queued input drain before the next step.
	if r.module.PendingInjected() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "click":
		r.module.InjectClick(st.X, st.Y)
	case "press":
		r.module.InjectPress(st.X, st.Y)
	case "release":
		r.module.InjectRelease(st.X, st.Y)
	case "hover":
		r.module.InjectHover(st.X, st.Y)
	case "drag":
		r.module.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
