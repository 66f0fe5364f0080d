package camgesture

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// touchPoint is one active touch in a polled frame.
type touchPoint struct {
	id  PointerID
	pos Vec2
}

// frameInput is the raw device state read in one frame.
type frameInput struct {
	cursor  Vec2
	buttons Buttons
	touches []touchPoint
	wheelX  float64
	wheelY  float64
	mods    KeyModifiers
}

// inputDiffer turns successive frame snapshots into phase-tagged samples.
type inputDiffer struct {
	hasPrev     bool
	prevCursor  Vec2
	prevButtons Buttons
	prevTouches map[PointerID]Vec2
}

// diff appends the samples that take the previous frame to f. Mouse samples
// come first (move, releases, presses), then touch downs and moves in poll
// order, then touch ups by ascending ID.
func (d *inputDiffer) diff(f frameInput, out []Sample) []Sample {
	if d.prevTouches == nil {
		d.prevTouches = make(map[PointerID]Vec2)
	}

	mouse := func(phase Phase, b Buttons) Sample {
		return Sample{Position: f.cursor, Device: DeviceMouse, Buttons: b, Phase: phase, Modifiers: f.mods}
	}
	if d.hasPrev && f.cursor != d.prevCursor {
		out = append(out, mouse(PhaseMove, d.prevButtons))
	}
	if released := d.prevButtons &^ f.buttons; released != 0 {
		out = append(out, mouse(PhaseUp, d.prevButtons&f.buttons))
	}
	if pressed := f.buttons &^ d.prevButtons; pressed != 0 {
		out = append(out, mouse(PhaseDown, f.buttons))
	}
	d.prevCursor = f.cursor
	d.prevButtons = f.buttons
	d.hasPrev = true

	seen := make(map[PointerID]bool, len(f.touches))
	for _, tp := range f.touches {
		seen[tp.id] = true
		prev, ok := d.prevTouches[tp.id]
		touch := Sample{ID: tp.id, Position: tp.pos, Device: DeviceTouch, Buttons: ButtonPrimary, Modifiers: f.mods}
		switch {
		case !ok:
			touch.Phase = PhaseDown
		case prev != tp.pos:
			touch.Phase = PhaseMove
		default:
			continue
		}
		out = append(out, touch)
		d.prevTouches[tp.id] = tp.pos
	}

	var ended []PointerID
	for id := range d.prevTouches {
		if !seen[id] {
			ended = append(ended, id)
		}
	}
	sort.Slice(ended, func(i, j int) bool { return ended[i] < ended[j] })
	for _, id := range ended {
		out = append(out, Sample{ID: id, Position: d.prevTouches[id], Device: DeviceTouch, Phase: PhaseUp, Modifiers: f.mods})
		delete(d.prevTouches, id)
	}
	return out
}

// EbitenInput polls Ebitengine's input state each frame and feeds the
// resulting samples and wheel ticks to a Controller.
//
//	func (g *Game) Update() error {
//	    g.input.Poll(g.ctrl)
//	    g.ctrl.Update()
//	    return nil
//	}
type EbitenInput struct {
	// ScaleByDevice multiplies drag thresholds by the monitor's device
	// scale factor.
	ScaleByDevice bool

	differ   inputDiffer
	touchIDs []ebiten.TouchID
	samples  []Sample
	scale    float64
}

// Poll reads the current mouse, wheel, and touch state and routes every
// change through c.
func (in *EbitenInput) Poll(c *Controller) {
	if in.ScaleByDevice {
		if m := ebiten.Monitor(); m != nil {
			if s := m.DeviceScaleFactor(); s > 0 && s != in.scale {
				in.scale = s
				c.SetPixelRatio(s)
			}
		}
	}

	f := in.read()
	in.samples = in.differ.diff(f, in.samples[:0])
	for _, s := range in.samples {
		c.HandleSample(s)
	}
	if f.wheelX != 0 || f.wheelY != 0 {
		// Ebitengine reports wheel in lines, positive up.
		c.HandleWheel(WheelEvent{
			Position:  f.cursor,
			DeltaX:    -f.wheelX,
			DeltaY:    -f.wheelY,
			Mode:      DeltaLine,
			Modifiers: f.mods,
		})
	}
}

func (in *EbitenInput) read() frameInput {
	mx, my := ebiten.CursorPosition()
	f := frameInput{cursor: Vec2{float64(mx), float64(my)}, mods: readModifiers()}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		f.buttons |= ButtonPrimary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		f.buttons |= ButtonSecondary
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		f.buttons |= ButtonTertiary
	}
	f.wheelX, f.wheelY = ebiten.Wheel()

	in.touchIDs = ebiten.AppendTouchIDs(in.touchIDs[:0])
	for _, tid := range in.touchIDs {
		tx, ty := ebiten.TouchPosition(tid)
		// Offset so no touch shares the mouse's pointer ID.
		f.touches = append(f.touches, touchPoint{id: PointerID(tid) + 1, pos: Vec2{float64(tx), float64(ty)}})
	}
	return f
}

// readModifiers returns the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}
