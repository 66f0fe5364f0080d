package camgesture

// PanRecognizer claims a session once its contact moves more than
// Threshold from where it went down. A zero Threshold claims on the first
// move. Until then it buffers the contact-down sample; on acceptance that
// sample is replayed as GestureStart, each move becomes a GestureUpdate and
// the release a GestureEnd.
//
// Registered next to a TapRecognizer, a Threshold equal to the tap slop
// splits the two cleanly: jitter inside the slop stays a tap.
type PanRecognizer struct {
	Threshold float64

	h        *Handle
	down     Sample
	last     Vec2
	accepted bool
	done     bool
}

// NewPanRecognizer creates a pan recognizer that claims the session once
// its contact travels more than threshold pixels. Negative values are
// treated as zero.
func NewPanRecognizer(threshold float64) *PanRecognizer {
	return &PanRecognizer{Threshold: max(threshold, 0)}
}

// Admit accepts any contact-down sample.
func (p *PanRecognizer) Admit(s Sample) bool {
	return s.Phase == PhaseDown
}

// Track buffers the down sample without emitting.
func (p *PanRecognizer) Track(s Sample, h *Handle) {
	p.h = h
	p.down = s
	p.last = s.Position
}

// HandleSample accepts once the contact leaves the threshold radius and
// forwards movement once accepted. The accepting update carries the whole
// displacement from the down position.
func (p *PanRecognizer) HandleSample(s Sample) {
	if p.done {
		return
	}
	if s.ID != p.down.ID {
		// A second contact makes this something other than a pan.
		if s.Phase == PhaseDown && !p.accepted {
			p.done = true
			_ = p.h.Reject()
		}
		return
	}

	switch {
	case s.Phase == PhaseMove:
		if !p.accepted {
			if !p.beyondThreshold(s.Position) {
				return
			}
			if err := p.h.Accept(); err != nil {
				return
			}
		}
		p.h.Emit(GestureEvent{
			Kind:      GesturePan,
			Phase:     GestureUpdate,
			Position:  s.Position,
			Delta:     s.Position.Sub(p.last),
			PointerID: s.ID,
			Modifiers: s.Modifiers,
			Time:      s.Time,
		})
		p.last = s.Position
	case s.released():
		p.done = true
		if !p.accepted {
			_ = p.h.Reject()
			return
		}
		p.h.Emit(GestureEvent{
			Kind:      GesturePan,
			Phase:     GestureEnd,
			Position:  s.Position,
			Delta:     s.Position.Sub(p.last),
			PointerID: s.ID,
			Modifiers: s.Modifiers,
			Cancelled: s.Phase == PhaseCancel,
			Time:      s.Time,
		})
	}
}

func (p *PanRecognizer) beyondThreshold(pos Vec2) bool {
	return p.Threshold <= 0 || pos.Dist(p.down.Position) > p.Threshold
}

// Accepted replays the buffered down sample as the gesture start.
func (p *PanRecognizer) Accepted() {
	p.accepted = true
	p.h.Emit(GestureEvent{
		Kind:      GesturePan,
		Phase:     GestureStart,
		Position:  p.down.Position,
		PointerID: p.down.ID,
		Modifiers: p.down.Modifiers,
		Time:      p.down.Time,
	})
}

// Rejected stops all further processing.
func (p *PanRecognizer) Rejected() {
	p.done = true
}
