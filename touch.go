package camgesture

// TouchHandler maps touch contacts to camera interactions: one contact
// rotates once it travels the coarse drag threshold; two contacts pan by
// their centroid and zoom by their spread, both from the same sample.
//
// A single interaction spans from the first camera command until every
// contact is lifted, even if the contact count changes in between.
type TouchHandler struct {
	api       InteractionAPI
	surface   *Surface
	threshold float64

	contacts map[PointerID]Vec2
	order    []PointerID
	drag     *DragSession
	listener ListenerHandle
	active   bool
	disposed bool
}

// NewTouchHandler creates a handler that attaches to surface while any
// contact is down and sends camera commands to api.
func NewTouchHandler(api InteractionAPI, surface *Surface, cfg Config) *TouchHandler {
	cfg = cfg.withDefaults()
	return &TouchHandler{
		api:       api,
		surface:   surface,
		threshold: cfg.coarseThreshold(),
		contacts:  make(map[PointerID]Vec2),
	}
}

// SetThreshold sets the single-contact drag-start distance in sample pixels.
func (t *TouchHandler) SetThreshold(px float64) {
	t.threshold = px
}

// Contacts returns the number of tracked contacts.
func (t *TouchHandler) Contacts() int {
	return len(t.order)
}

// Active reports whether an interaction is open.
func (t *TouchHandler) Active() bool {
	return t.active
}

// HandleDown starts tracking on the first element-level contact. Later
// contacts arrive through the surface listener.
func (t *TouchHandler) HandleDown(s Sample) {
	if t.disposed || s.Device != DeviceTouch || s.Phase != PhaseDown || len(t.order) > 0 {
		return
	}
	t.addContact(s)
	t.drag = newDragSession(s.Position, t.threshold)
	t.listener = t.surface.Attach(t.handleSurface)
}

func (t *TouchHandler) handleSurface(s Sample) {
	if t.disposed || s.Device != DeviceTouch || len(t.order) == 0 {
		return
	}
	_, tracked := t.contacts[s.ID]
	switch s.Phase {
	case PhaseDown:
		if tracked {
			return
		}
		t.addContact(s)
		t.contactsChanged()
	case PhaseMove:
		if tracked {
			t.move(s)
		}
	case PhaseUp, PhaseCancel:
		if !tracked {
			return
		}
		t.removeContact(s.ID)
		if len(t.order) == 0 {
			t.finish()
			return
		}
		t.contactsChanged()
	}
}

func (t *TouchHandler) addContact(s Sample) {
	t.contacts[s.ID] = s.Position
	t.order = append(t.order, s.ID)
}

func (t *TouchHandler) removeContact(id PointerID) {
	delete(t.contacts, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			return
		}
	}
}

// contactsChanged rebases the drag on the remaining contact when the count
// drops back to one, so it does not jump. A rotate already under way keeps
// going; otherwise the threshold is measured from the remaining contact.
func (t *TouchHandler) contactsChanged() {
	if len(t.order) == 1 {
		t.drag.Rebase(t.contacts[t.order[0]])
	}
}

// pair returns the centroid and spread of the first two contacts.
func (t *TouchHandler) pair() (centroid Vec2, spread float64) {
	a := t.contacts[t.order[0]]
	b := t.contacts[t.order[1]]
	return a.Add(b).Scale(0.5), a.Dist(b)
}

func (t *TouchHandler) move(s Sample) {
	switch len(t.order) {
	case 1:
		t.contacts[s.ID] = s.Position
		delta, _ := t.drag.Move(s.Position)
		if !t.drag.Dragging() {
			return
		}
		t.begin()
		t.api.RotateCamera(delta)
	case 2:
		prevCentroid, prevSpread := t.pair()
		t.contacts[s.ID] = s.Position
		centroid, spread := t.pair()
		t.begin()
		t.api.PanCamera(centroid.Sub(prevCentroid))
		t.api.ZoomCamera(centroid, spread-prevSpread)
	default:
		t.contacts[s.ID] = s.Position
	}
}

func (t *TouchHandler) begin() {
	if t.active {
		return
	}
	t.active = true
	Logger().Debug("touch interaction begin", "contacts", len(t.order))
	t.api.BeginInteraction()
}

// finish closes the interaction once every contact is lifted.
func (t *TouchHandler) finish() {
	t.listener.Release()
	t.reset()
	if t.active {
		t.active = false
		Logger().Debug("touch interaction end")
		t.api.EndInteraction()
	}
}

func (t *TouchHandler) reset() {
	clear(t.contacts)
	t.order = t.order[:0]
	t.drag = nil
}

// Dispose releases the surface listener and closes any open interaction.
// Later input is ignored. Safe to call twice.
func (t *TouchHandler) Dispose() {
	if t.disposed {
		return
	}
	t.disposed = true
	t.finish()
}
