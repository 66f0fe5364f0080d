package camgesture

import (
	"testing"
	"time"
)

func newTestMouse(cfg Config) (*MouseHandler, *Surface, *recordingAPI) {
	api := &recordingAPI{}
	surface := NewSurface()
	return NewMouseHandler(api, surface, cfg), surface, api
}

// press delivers an element-level press followed by surface samples.
func press(m *MouseHandler, surface *Surface, down Sample, rest ...Sample) {
	m.HandleDown(down)
	for _, s := range rest {
		surface.Dispatch(s)
	}
}

func TestMouseBelowThreshold(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(10, 10, ButtonPrimary),
		mouseMove(11, 10, ButtonPrimary),
		mouseMove(11, 11, ButtonPrimary),
		mouseUp(11, 11, 0),
	)
	if len(api.calls) != 0 {
		t.Errorf("calls = %v, want none", api.ops())
	}
	if surface.Len() != 0 {
		t.Errorf("surface listeners = %d, want 0", surface.Len())
	}
}

func TestMouseStartCarriesSubThresholdMotion(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(10, 10, ButtonPrimary),
		mouseMove(11, 10, ButtonPrimary),
		mouseMove(12, 10, ButtonPrimary),
	)
	if !equalOps(api.ops(), []string{"begin", "rotate"}) {
		t.Fatalf("ops = %v, want [begin rotate]", api.ops())
	}
	if d := api.calls[1].delta; d != (Vec2{2, 0}) {
		t.Errorf("rotate delta = %v, want (2,0)", d)
	}
}

func TestMouseRotateDrag(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(10, 10, ButtonPrimary), mouseMove(12, 11, ButtonPrimary))

	if !equalOps(api.ops(), []string{"begin", "rotate"}) {
		t.Fatalf("ops = %v, want [begin rotate]", api.ops())
	}
	if d := api.calls[1].delta; d != (Vec2{2, 1}) {
		t.Errorf("rotate delta = %v, want (2,1)", d)
	}
	if !m.Dragging() {
		t.Error("Dragging() = false")
	}

	surface.Dispatch(mouseMove(20, 11, ButtonPrimary))
	surface.Dispatch(mouseUp(20, 11, 0))
	if !equalOps(api.ops(), []string{"begin", "rotate", "rotate", "end"}) {
		t.Fatalf("ops = %v", api.ops())
	}
	if d := api.calls[2].delta; d != (Vec2{8, 0}) {
		t.Errorf("second rotate delta = %v, want (8,0)", d)
	}
	if m.Dragging() || surface.Len() != 0 {
		t.Errorf("Dragging/listeners after up = %v/%d", m.Dragging(), surface.Len())
	}
}

func TestMouseSecondaryAlwaysPans(t *testing.T) {
	for _, primary := range []PrimaryInteraction{InteractionRotate, InteractionPan, InteractionZoom} {
		t.Run(primary.String(), func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.PrimaryInteraction = primary
			m, surface, api := newTestMouse(cfg)
			press(m, surface, mouseDown(0, 0, ButtonSecondary),
				mouseMove(5, 0, ButtonSecondary),
				mouseUp(5, 0, 0),
			)
			if !equalOps(api.ops(), []string{"begin", "pan", "end"}) {
				t.Errorf("ops = %v, want [begin pan end]", api.ops())
			}
		})
	}
}

func TestMousePrimaryInteraction(t *testing.T) {
	tests := []struct {
		primary PrimaryInteraction
		op      string
	}{
		{InteractionRotate, "rotate"},
		{InteractionPan, "pan"},
		{InteractionZoom, "zoom"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			m, surface, api := newTestMouse(DefaultConfig())
			m.SetPrimaryInteraction(tt.primary)
			press(m, surface, mouseDown(10, 10, ButtonPrimary), mouseMove(10, 14, ButtonPrimary))
			if !equalOps(api.ops(), []string{"begin", tt.op}) {
				t.Fatalf("ops = %v", api.ops())
			}
			if tt.primary == InteractionZoom {
				c := api.calls[1]
				if c.anchor != (Vec2{10, 10}) || c.mag != -4 {
					t.Errorf("zoom anchor/mag = %v/%v, want (10,10)/-4", c.anchor, c.mag)
				}
			}
		})
	}
}

func TestMousePrimarySwitchMidDrag(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary))
	m.SetPrimaryInteraction(InteractionPan)
	surface.Dispatch(mouseMove(9, 0, ButtonPrimary))
	surface.Dispatch(mouseUp(9, 0, 0))

	if !equalOps(api.ops(), []string{"begin", "rotate", "rotate", "end"}) {
		t.Errorf("ops = %v, want rotate for the whole drag", api.ops())
	}

	api.reset()
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary), mouseUp(5, 0, 0))
	if !equalOps(api.ops(), []string{"begin", "pan", "end"}) {
		t.Errorf("next drag ops = %v, want pan", api.ops())
	}
}

func TestMouseReleaseOtherButtonKeepsDrag(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(0, 0, ButtonPrimary),
		mouseMove(5, 0, ButtonPrimary),
		mouseDown(5, 0, ButtonPrimary|ButtonSecondary),
		mouseUp(5, 0, ButtonPrimary),
	)
	if !m.Dragging() {
		t.Fatal("drag ended when the secondary button was released")
	}
	surface.Dispatch(mouseUp(5, 0, 0))
	if api.count("end") != 1 {
		t.Errorf("ops = %v, want one end", api.ops())
	}
}

func TestMouseCancel(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	press(m, surface, mouseDown(0, 0, ButtonPrimary),
		mouseMove(5, 0, ButtonPrimary),
		Sample{Position: Vec2{5, 0}, Device: DeviceMouse, Phase: PhaseCancel},
	)
	if !equalOps(api.ops(), []string{"begin", "rotate", "end"}) {
		t.Errorf("ops = %v", api.ops())
	}
}

func TestMouseIgnoresTouchAndTertiary(t *testing.T) {
	m, surface, _ := newTestMouse(DefaultConfig())
	m.HandleDown(touchSample(1, PhaseDown, 0, 0))
	m.HandleDown(mouseDown(0, 0, ButtonTertiary))
	if surface.Len() != 0 {
		t.Errorf("surface listeners = %d, want 0", surface.Len())
	}
}

func TestMousePixelRatioThreshold(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PixelRatio = 2
	m, surface, api := newTestMouse(cfg)
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(3, 0, ButtonPrimary))
	if len(api.calls) != 0 {
		t.Fatalf("ops = %v, want none below 4px", api.ops())
	}
	surface.Dispatch(mouseMove(4, 0, ButtonPrimary))
	if !equalOps(api.ops(), []string{"begin", "rotate"}) {
		t.Errorf("ops = %v", api.ops())
	}
}

func TestMouseWheelTinyTicksDiscarded(t *testing.T) {
	m, _, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	for range 3 {
		m.HandleWheel(WheelEvent{DeltaY: -0.02, Time: t0})
	}
	m.Update(t0.Add(AccumulationWindow))
	m.Update(t0.Add(time.Second))
	if len(api.calls) != 0 {
		t.Errorf("ops = %v, want none", api.ops())
	}
}

func TestMouseWheelZoomAndDebounce(t *testing.T) {
	m, _, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	m.HandleWheel(WheelEvent{Position: Vec2{50, 60}, DeltaY: -0.25, Time: t0})
	m.HandleWheel(WheelEvent{Position: Vec2{50, 60}, DeltaY: -0.25, Time: t0.Add(4 * time.Millisecond)})

	flushAt := t0.Add(AccumulationWindow)
	m.Update(flushAt)
	if !equalOps(api.ops(), []string{"begin", "zoom"}) {
		t.Fatalf("ops = %v, want [begin zoom]", api.ops())
	}
	if c := api.calls[1]; !approxEqual(c.mag, 0.5, epsilon) || c.anchor != (Vec2{50, 60}) {
		t.Errorf("zoom = %+v, want mag 0.5 at (50,60)", c)
	}

	m.Update(flushAt.Add(DefaultWheelEndDebounce - time.Millisecond))
	if api.count("end") != 0 {
		t.Fatal("wheel interaction ended before the debounce elapsed")
	}
	m.Update(flushAt.Add(DefaultWheelEndDebounce))
	if !equalOps(api.ops(), []string{"begin", "zoom", "end"}) {
		t.Errorf("ops = %v, want [begin zoom end]", api.ops())
	}
}

func TestMouseWheelBurstSharesInteraction(t *testing.T) {
	m, _, api := newTestMouse(DefaultConfig())
	now := newFakeClock().now
	for range 3 {
		m.HandleWheel(WheelEvent{DeltaY: -1, Time: now})
		now = now.Add(AccumulationWindow)
		m.Update(now)
		now = now.Add(50 * time.Millisecond)
		m.Update(now)
	}
	now = now.Add(DefaultWheelEndDebounce)
	m.Update(now)
	if !equalOps(api.ops(), []string{"begin", "zoom", "zoom", "zoom", "end"}) {
		t.Errorf("ops = %v", api.ops())
	}
}

func TestMouseWheelLineMode(t *testing.T) {
	m, _, api := newTestMouse(DefaultConfig())
	m.SetLineMetrics(fixedMetrics{h: 10, ok: true})
	t0 := newFakeClock().now
	m.HandleWheel(WheelEvent{DeltaY: 1, Mode: DeltaLine, Time: t0})
	m.Update(t0.Add(AccumulationWindow))
	if api.count("zoom") != 1 || api.calls[1].mag != -10 {
		t.Errorf("calls = %+v, want zoom -10", api.calls)
	}
}

func TestMouseWheelDuringDrag(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary))
	m.HandleWheel(WheelEvent{DeltaY: -1, Time: t0})
	m.Update(t0.Add(AccumulationWindow))
	surface.Dispatch(mouseUp(5, 0, 0))
	m.Update(t0.Add(time.Second))

	if !equalOps(api.ops(), []string{"begin", "rotate", "zoom", "end"}) {
		t.Errorf("ops = %v", api.ops())
	}
}

func TestMouseDragEndsWheelInteraction(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	m.HandleWheel(WheelEvent{DeltaY: -1, Time: t0})
	m.Update(t0.Add(AccumulationWindow))
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary), mouseUp(5, 0, 0))
	m.Update(t0.Add(time.Second))

	want := []string{"begin", "zoom", "end", "begin", "rotate", "end"}
	if !equalOps(api.ops(), want) {
		t.Errorf("ops = %v, want %v", api.ops(), want)
	}
}

func TestMouseDisposeTwice(t *testing.T) {
	m, surface, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary))
	m.HandleWheel(WheelEvent{DeltaY: -1, Time: t0})

	m.Dispose()
	m.Dispose()
	if !equalOps(api.ops(), []string{"begin", "rotate", "end"}) {
		t.Fatalf("ops = %v", api.ops())
	}
	if surface.Len() != 0 {
		t.Errorf("surface listeners = %d, want 0", surface.Len())
	}

	api.reset()
	m.Update(t0.Add(time.Second))
	press(m, surface, mouseDown(0, 0, ButtonPrimary), mouseMove(5, 0, ButtonPrimary))
	m.HandleWheel(WheelEvent{DeltaY: -1, Time: t0})
	m.Update(t0.Add(time.Hour))
	if len(api.calls) != 0 {
		t.Errorf("calls after Dispose = %v", api.ops())
	}
}

func TestMouseDisposeClosesWheelInteraction(t *testing.T) {
	m, _, api := newTestMouse(DefaultConfig())
	t0 := newFakeClock().now
	m.HandleWheel(WheelEvent{DeltaY: -1, Time: t0})
	m.Update(t0.Add(AccumulationWindow))
	m.Dispose()
	m.Update(t0.Add(time.Second))
	if !equalOps(api.ops(), []string{"begin", "zoom", "end"}) {
		t.Errorf("ops = %v", api.ops())
	}
}
