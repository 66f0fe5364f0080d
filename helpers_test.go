package camgesture

import (
	"math"
	"time"
)

const epsilon = 1e-9

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// apiCall is one recorded InteractionAPI call.
type apiCall struct {
	op     string
	delta  Vec2
	anchor Vec2
	mag    float64
	mods   KeyModifiers
}

// recordingAPI records every camera command in order.
type recordingAPI struct {
	calls []apiCall
}

func (r *recordingAPI) BeginInteraction() { r.calls = append(r.calls, apiCall{op: "begin"}) }
func (r *recordingAPI) EndInteraction()   { r.calls = append(r.calls, apiCall{op: "end"}) }

func (r *recordingAPI) RotateCamera(delta Vec2) {
	r.calls = append(r.calls, apiCall{op: "rotate", delta: delta})
}

func (r *recordingAPI) PanCamera(delta Vec2) {
	r.calls = append(r.calls, apiCall{op: "pan", delta: delta})
}

func (r *recordingAPI) ZoomCamera(anchor Vec2, magnitude float64) {
	r.calls = append(r.calls, apiCall{op: "zoom", anchor: anchor, mag: magnitude})
}

func (r *recordingAPI) Tap(pos Vec2, mods KeyModifiers) {
	r.calls = append(r.calls, apiCall{op: "tap", anchor: pos, mods: mods})
}

func (r *recordingAPI) ops() []string {
	out := make([]string, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.op
	}
	return out
}

func (r *recordingAPI) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func (r *recordingAPI) reset() {
	r.calls = r.calls[:0]
}

func equalOps(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// fakeClock is a manually advanced Clock.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func mouseDown(x, y float64, b Buttons) Sample {
	return Sample{Position: Vec2{x, y}, Device: DeviceMouse, Buttons: b, Phase: PhaseDown}
}

func mouseMove(x, y float64, b Buttons) Sample {
	return Sample{Position: Vec2{x, y}, Device: DeviceMouse, Buttons: b, Phase: PhaseMove}
}

func mouseUp(x, y float64, held Buttons) Sample {
	return Sample{Position: Vec2{x, y}, Device: DeviceMouse, Buttons: held, Phase: PhaseUp}
}

func touchSample(id PointerID, phase Phase, x, y float64) Sample {
	s := Sample{ID: id, Position: Vec2{x, y}, Device: DeviceTouch, Phase: phase}
	if phase == PhaseDown || phase == PhaseMove {
		s.Buttons = ButtonPrimary
	}
	return s
}
