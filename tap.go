package camgesture

// DefaultTapSlop is the maximum displacement, in pixels, a contact may
// travel between down and up and still count as a tap.
const DefaultTapSlop = 5.0

// TapRecognizer recognizes a single primary contact that lifts within Slop
// of where it went down. Moving beyond Slop, a second contact, or a cancel
// rejects it. Once accepted it emits the lifting sample as a GestureTap.
type TapRecognizer struct {
	Slop float64

	h         *Handle
	anchor    Vec2
	hasAnchor bool
	id        PointerID
	up        Sample
	hasUp     bool
	accepted  bool
	done      bool
}

// NewTapRecognizer creates a tap recognizer. A non-positive slop selects
// DefaultTapSlop.
func NewTapRecognizer(slop float64) *TapRecognizer {
	if slop <= 0 {
		slop = DefaultTapSlop
	}
	return &TapRecognizer{Slop: slop}
}

// Admit accepts primary-button contact-down samples.
func (t *TapRecognizer) Admit(s Sample) bool {
	return s.Phase == PhaseDown && s.Buttons&ButtonPrimary != 0
}

// Track records the anchor position.
func (t *TapRecognizer) Track(s Sample, h *Handle) {
	t.h = h
	t.anchor = s.Position
	t.hasAnchor = true
	t.id = s.ID
}

// SlopDistance returns how far s lies from the recorded anchor. It fails
// with ErrNoAnchor before Track.
func (t *TapRecognizer) SlopDistance(s Sample) (float64, error) {
	if !t.hasAnchor {
		return 0, ErrNoAnchor
	}
	return s.Position.Dist(t.anchor), nil
}

// HandleSample checks each sample against the slop radius.
func (t *TapRecognizer) HandleSample(s Sample) {
	if t.done {
		return
	}
	if s.ID != t.id {
		if s.Phase == PhaseDown {
			t.reject()
		}
		return
	}

	switch {
	case s.Phase == PhaseMove:
		if !t.withinSlop(s) {
			t.reject()
		}
	case s.Phase == PhaseCancel:
		t.reject()
	case s.released():
		if !t.withinSlop(s) {
			t.reject()
			return
		}
		t.up = s
		t.hasUp = true
		if t.accepted {
			t.fire()
			return
		}
		_ = t.h.Accept()
	}
}

func (t *TapRecognizer) withinSlop(s Sample) bool {
	d, err := t.SlopDistance(s)
	return err == nil && d <= t.Slop
}

// Accepted emits the tap if the contact has already lifted; otherwise the
// tap fires when it does.
func (t *TapRecognizer) Accepted() {
	t.accepted = true
	if t.hasUp {
		t.fire()
	}
}

// Rejected stops all further processing.
func (t *TapRecognizer) Rejected() {
	t.done = true
}

func (t *TapRecognizer) reject() {
	t.done = true
	if !t.accepted {
		_ = t.h.Reject()
	}
}

func (t *TapRecognizer) fire() {
	t.done = true
	t.h.Emit(GestureEvent{
		Kind:      GestureTap,
		Phase:     GestureEnd,
		Position:  t.up.Position,
		PointerID: t.up.ID,
		Modifiers: t.up.Modifiers,
		Time:      t.up.Time,
	})
}
