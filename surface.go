package camgesture

// Surface is the host's top-level input surface. Handlers attach to it only
// while a drag or gesture is live, so they keep receiving moves and releases
// that land outside the element where the contact started.
//
// Each Attach returns a ListenerHandle; the owner releases it on every exit
// path of its state machine. Only the attaching owner holds the handle.
type Surface struct {
	listeners []*listener
	nextID    uint32
}

type listener struct {
	id     uint32
	fn     func(Sample)
	active bool
}

// ListenerHandle is the scoped acquisition returned by Surface.Attach.
// The zero value is a released handle.
type ListenerHandle struct {
	l       *listener
	surface *Surface
}

// NewSurface creates an empty input surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Attach registers fn to receive every sample dispatched on the surface
// until the returned handle is released.
func (s *Surface) Attach(fn func(Sample)) ListenerHandle {
	s.nextID++
	l := &listener{id: s.nextID, fn: fn, active: true}
	s.listeners = append(s.listeners, l)
	return ListenerHandle{l: l, surface: s}
}

// Len returns the number of attached listeners.
func (s *Surface) Len() int {
	return len(s.listeners)
}

// Dispatch delivers a sample to every attached listener in attach order.
// Listeners released during dispatch (including by an earlier listener in
// the same pass) are skipped. Listeners attached during dispatch first
// receive the next sample.
func (s *Surface) Dispatch(sample Sample) {
	if len(s.listeners) == 0 {
		return
	}
	snapshot := make([]*listener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		if l.active {
			l.fn(sample)
		}
	}
}

func (s *Surface) remove(id uint32) {
	for i := range s.listeners {
		if s.listeners[i].id == id {
			copy(s.listeners[i:], s.listeners[i+1:])
			s.listeners[len(s.listeners)-1] = nil
			s.listeners = s.listeners[:len(s.listeners)-1]
			return
		}
	}
}

// Active reports whether the handle still holds its listener.
func (h ListenerHandle) Active() bool {
	return h.l != nil && h.l.active
}

// Release detaches the listener. Releasing twice, or releasing the zero
// handle, is a no-op.
func (h ListenerHandle) Release() {
	if h.l == nil || !h.l.active {
		return
	}
	h.l.active = false
	h.surface.remove(h.l.id)
}

// --- Gesture callback registry ---

type gestureHandler struct {
	id     uint32
	fn     func(GestureEvent)
	active bool
}

type handlerRegistry struct {
	gesture []*gestureHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered gesture callback.
type CallbackHandle struct {
	id  uint32
	reg *handlerRegistry
}

// Remove unregisters this callback so it no longer fires. It may be called
// from inside any callback, including the one being removed. Removing twice
// is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	s := h.reg.gesture
	for i := range s {
		if s[i].id == h.id {
			s[i].active = false
			copy(s[i:], s[i+1:])
			s[len(s)-1] = nil
			h.reg.gesture = s[:len(s)-1]
			return
		}
	}
}

func (r *handlerRegistry) add(fn func(GestureEvent)) CallbackHandle {
	r.nextID++
	r.gesture = append(r.gesture, &gestureHandler{id: r.nextID, fn: fn, active: true})
	return CallbackHandle{id: r.nextID, reg: r}
}

// fire calls every callback registered before the event. Callbacks removed
// during the pass are skipped; callbacks added during it wait for the next
// event.
func (r *handlerRegistry) fire(ev GestureEvent) {
	if len(r.gesture) == 0 {
		return
	}
	snapshot := make([]*gestureHandler, len(r.gesture))
	copy(snapshot, r.gesture)
	for _, h := range snapshot {
		if h.active {
			h.fn(ev)
		}
	}
}
