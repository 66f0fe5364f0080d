package camgesture

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in an input script.
type scriptStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	DeltaY float64 `json:"deltaY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Value  string  `json:"value,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

var scriptActions = map[string]bool{
	"press": true, "move": true, "release": true, "click": true,
	"drag": true, "wheel": true, "wait": true, "primary": true,
}

// ScriptRunner sequences injected input across frames, for replaying
// recorded gestures and for automated tests. Attach it with
// Controller.SetScriptRunner.
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON input script:
//
//	{"steps": [
//	    {"action": "drag", "fromX": 10, "fromY": 10, "toX": 80, "toY": 10, "frames": 6},
//	    {"action": "wheel", "x": 100, "y": 100, "deltaY": -120},
//	    {"action": "wait", "frames": 10},
//	    {"action": "primary", "value": "pan"}
//	]}
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		if !scriptActions[st.Action] {
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
		if st.Action == "primary" {
			var p PrimaryInteraction
			if err := p.UnmarshalText([]byte(st.Value)); err != nil {
				return nil, fmt.Errorf("parse input script: step %d: %w", i, err)
			}
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// SetScriptRunner attaches a runner. Its step method is called from Update
// before injected input is consumed.
func (c *Controller) SetScriptRunner(runner *ScriptRunner) {
	c.script = runner
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(c *Controller) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(c.injectQueue) > 0 {
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
	case "press":
		c.InjectPress(st.X, st.Y)
	case "move":
		c.InjectMove(st.X, st.Y)
	case "release":
		c.InjectRelease(st.X, st.Y)
	case "click":
		c.InjectClick(st.X, st.Y)
	case "drag":
		c.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wheel":
		c.InjectWheel(st.X, st.Y, st.DeltaY)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "primary":
		var p PrimaryInteraction
		if err := p.UnmarshalText([]byte(st.Value)); err == nil {
			c.SetPrimaryInteraction(p)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(c.injectQueue) == 0 {
		r.done = true
	}
}
