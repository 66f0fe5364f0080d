package camgesture

import "time"

type mouseState uint8

const (
	mouseIdle      mouseState = iota // no button held
	mouseCandidate                   // button held, threshold not reached
	mouseDragging                    // drag interaction in progress
)

// MouseHandler turns mouse and pen drags into camera interactions and wheel
// ticks into accumulated zooms.
//
// A primary-button drag runs the configured PrimaryInteraction; a
// secondary-button drag always pans. The operation is chosen once, when the
// pointer first travels the drag threshold from where it went down.
type MouseHandler struct {
	api     InteractionAPI
	surface *Surface

	threshold  float64
	primary    PrimaryInteraction
	normalizer WheelNormalizer
	debounce   time.Duration

	state    mouseState
	id       PointerID
	button   Buttons
	op       PrimaryInteraction
	drag     *DragSession
	listener ListenerHandle

	acc         *Accumulator
	wheelActive bool
	wheelEnd    deadline
	now         time.Time

	disposed bool
}

// NewMouseHandler creates a handler that attaches to surface while a button
// is held and sends camera commands to api.
func NewMouseHandler(api InteractionAPI, surface *Surface, cfg Config) *MouseHandler {
	cfg = cfg.withDefaults()
	m := &MouseHandler{
		api:       api,
		surface:   surface,
		threshold: cfg.fineThreshold(),
		primary:   cfg.PrimaryInteraction,
		normalizer: WheelNormalizer{
			LineHeight: cfg.LineHeight,
			PageHeight: cfg.PageHeight,
		},
		debounce: cfg.WheelEndDebounce,
	}
	m.acc = NewAccumulator(m.flushWheel)
	return m
}

// SetPrimaryInteraction selects the operation for future primary-button
// drags. A drag already in progress keeps its operation.
func (m *MouseHandler) SetPrimaryInteraction(p PrimaryInteraction) {
	m.primary = p
}

// PrimaryInteraction returns the operation bound to primary-button drag.
func (m *MouseHandler) PrimaryInteraction() PrimaryInteraction {
	return m.primary
}

// SetThreshold sets the drag-start distance in sample pixels for future drags.
func (m *MouseHandler) SetThreshold(px float64) {
	m.threshold = px
}

// SetLineMetrics sets the font metrics used for line-mode wheel deltas.
func (m *MouseHandler) SetLineMetrics(lm LineMetrics) {
	m.normalizer.Metrics = lm
}

// SetPageHeight sets the page size used for page-mode wheel deltas.
func (m *MouseHandler) SetPageHeight(h float64) {
	m.normalizer.PageHeight = h
}

// Dragging reports whether a drag interaction is in progress.
func (m *MouseHandler) Dragging() bool {
	return m.state == mouseDragging
}

// HandleDown starts a drag candidate for an element-level button press.
func (m *MouseHandler) HandleDown(s Sample) {
	if m.disposed || m.state != mouseIdle || s.Phase != PhaseDown || !s.fine() {
		return
	}
	switch {
	case s.Buttons&ButtonPrimary != 0:
		m.button = ButtonPrimary
	case s.Buttons&ButtonSecondary != 0:
		m.button = ButtonSecondary
	default:
		return
	}
	m.id = s.ID
	m.drag = newDragSession(s.Position, m.threshold)
	m.state = mouseCandidate
	m.listener = m.surface.Attach(m.handleSurface)
}

// handleSurface receives every sample while a button is held.
func (m *MouseHandler) handleSurface(s Sample) {
	if m.disposed || m.state == mouseIdle || !s.fine() || s.ID != m.id {
		return
	}
	switch s.Phase {
	case PhaseMove:
		m.move(s)
	case PhaseUp:
		if s.Buttons&m.button == 0 {
			m.finish()
		}
	case PhaseCancel:
		m.finish()
	}
}

func (m *MouseHandler) move(s Sample) {
	delta, started := m.drag.Move(s.Position)
	if started {
		m.op = m.primary
		if m.button == ButtonSecondary {
			m.op = InteractionPan
		}
		if m.wheelActive {
			m.endWheelInteraction()
		}
		m.state = mouseDragging
		Logger().Debug("drag begin", "op", m.op.String(), "x", s.Position.X, "y", s.Position.Y)
		m.api.BeginInteraction()
	}
	if m.state != mouseDragging {
		return
	}
	switch m.op {
	case InteractionRotate:
		m.api.RotateCamera(delta)
	case InteractionPan:
		m.api.PanCamera(delta)
	case InteractionZoom:
		m.api.ZoomCamera(m.drag.Anchor, -delta.Y)
	}
}

// finish closes the drag on release or cancel.
func (m *MouseHandler) finish() {
	m.listener.Release()
	wasDragging := m.state == mouseDragging
	m.state = mouseIdle
	m.drag = nil
	if wasDragging {
		Logger().Debug("drag end", "op", m.op.String())
		m.api.EndInteraction()
	}
}

// HandleWheel normalizes a wheel tick and feeds it to the accumulator.
// Scrolling up (negative DeltaY) zooms in.
func (m *MouseHandler) HandleWheel(ev WheelEvent) {
	if m.disposed {
		return
	}
	_, dy := m.normalizer.Normalize(ev)
	m.acc.Add(ev.Position, -dy, ev.Time)
}

func (m *MouseHandler) flushWheel(anchor Vec2, sum float64) {
	if m.state == mouseDragging {
		m.api.ZoomCamera(anchor, sum)
		return
	}
	if !m.wheelActive {
		m.wheelActive = true
		m.api.BeginInteraction()
	}
	m.api.ZoomCamera(anchor, sum)
	m.wheelEnd.arm(m.now.Add(m.debounce))
}

func (m *MouseHandler) endWheelInteraction() {
	m.wheelEnd.cancel()
	if m.wheelActive {
		m.wheelActive = false
		m.api.EndInteraction()
	}
}

// Update flushes a due accumulation window and closes a wheel interaction
// whose debounce has elapsed.
func (m *MouseHandler) Update(now time.Time) {
	if m.disposed {
		return
	}
	m.now = now
	m.acc.Update(now)
	if m.wheelEnd.expired(now) {
		m.endWheelInteraction()
	}
}

// Dispose releases the surface listener, cancels pending timers and closes
// any open interaction. Later input is ignored. Safe to call twice.
func (m *MouseHandler) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.listener.Release()
	m.acc.Dispose()
	if m.state == mouseDragging {
		m.api.EndInteraction()
	}
	m.state = mouseIdle
	m.drag = nil
	m.endWheelInteraction()
}
