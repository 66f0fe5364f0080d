package camgesture

// DragSession decides when continuous pointer movement becomes an
// intentional drag. It is created on pointer-down and owned by the handler
// that created it.
type DragSession struct {
	Anchor    Vec2
	Current   Vec2
	Threshold float64

	last     Vec2
	dragging bool
}

// newDragSession starts a session anchored at p.
func newDragSession(p Vec2, threshold float64) *DragSession {
	return &DragSession{Anchor: p, Current: p, last: p, Threshold: threshold}
}

// Dragging reports whether the threshold has been crossed.
func (d *DragSession) Dragging() bool {
	return d.dragging
}

// Move records a new position. started is true only for the move that
// first carries the pointer Threshold or further from the anchor; after
// that the session stays dragging. The starting move's delta is the whole
// displacement from the anchor, so motion below the threshold is not lost.
// Later deltas are the displacement since the previous move.
func (d *DragSession) Move(p Vec2) (delta Vec2, started bool) {
	d.Current = p
	if !d.dragging {
		if p.Dist(d.Anchor) < d.Threshold {
			return Vec2{}, false
		}
		d.dragging = true
		started = true
	}
	delta = p.Sub(d.last)
	d.last = p
	return delta, started
}

// Rebase re-anchors the session at p. A session that is already dragging
// keeps dragging and measures its next delta from p; one that is not yet
// dragging measures the threshold from p.
func (d *DragSession) Rebase(p Vec2) {
	d.Anchor = p
	d.last = p
	d.Current = p
}
