package camgesture

import "fmt"

// MaxRecognizers bounds how many recognizers may race in one session. Every
// registered set must form a decidable race: for any sample sequence all but
// one recognizer must eventually reject.
const MaxRecognizers = 8

// RecognizerState is a recognizer's standing within one arbitration session.
type RecognizerState uint8

const (
	StatePending  RecognizerState = iota // still competing
	StateAccepted                        // won the session
	StateRejected                        // lost or gave up
)

func (s RecognizerState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateAccepted:
		return "accepted"
	case StateRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Recognizer interprets one input session as a single gesture kind.
//
// Admit decides whether a contact-down sample can start the gesture. An
// admitted recognizer receives Track with that sample and its Handle, then
// HandleSample for every later sample of the session until it is rejected.
// Through the Handle it calls Accept or Reject at most once.
//
// Accepted is called once when the recognizer wins. Rejected is called once
// when it loses, whether it rejected itself, another recognizer won, or the
// session ended undecided; it must release anything it acquired and emit
// nothing further.
type Recognizer interface {
	Admit(s Sample) bool
	Track(s Sample, h *Handle)
	HandleSample(s Sample)
	Accepted()
	Rejected()
}

// RecognizerFunc creates a fresh recognizer for a new session.
type RecognizerFunc func() Recognizer

type registration struct {
	name string
	fn   RecognizerFunc
}

// Arbiter runs winner-take-all selection among registered recognizers, one
// session per input sequence. It depends only on the Recognizer interface.
type Arbiter struct {
	surface  *Surface
	emit     func(GestureEvent)
	regs     []registration
	session  *Session
	disposed bool
	debug    bool
}

// NewArbiter creates an arbiter that attaches its session listeners to
// surface and forwards the accepted recognizer's events to emit.
func NewArbiter(surface *Surface, emit func(GestureEvent)) *Arbiter {
	return &Arbiter{surface: surface, emit: emit}
}

// Register adds a recognizer factory under name. Registration order is the
// order in which recognizers receive samples.
func (a *Arbiter) Register(name string, fn RecognizerFunc) error {
	if len(a.regs) >= MaxRecognizers {
		return fmt.Errorf("register %s: %w", name, ErrTooManyRecognizers)
	}
	a.regs = append(a.regs, registration{name: name, fn: fn})
	return nil
}

// SetDebug enables panics on arbitration defects such as a second
// acceptance. Defects are always logged and returned as errors.
func (a *Arbiter) SetDebug(enabled bool) {
	a.debug = enabled
}

// Session returns the open session, or nil.
func (a *Arbiter) Session() *Session {
	return a.session
}

// HandleDown starts a session for an element-level contact-down sample.
// It is ignored while a session is open; that session's surface listener
// already receives additional contacts.
func (a *Arbiter) HandleDown(s Sample) {
	if a.disposed || a.session != nil || s.Phase != PhaseDown {
		return
	}

	var members []*Handle
	for _, reg := range a.regs {
		r := reg.fn()
		if r.Admit(s) {
			members = append(members, &Handle{name: reg.name, r: r})
		}
	}
	if len(members) == 0 {
		return
	}

	sess := &Session{
		arbiter:  a,
		members:  members,
		contacts: map[PointerID]struct{}{s.ID: {}},
	}
	for _, h := range members {
		h.session = sess
	}
	a.session = sess
	sess.listener = a.surface.Attach(sess.handle)

	for _, h := range members {
		if sess.closed {
			break
		}
		if h.state == StatePending {
			h.r.Track(s, h)
		}
	}
}

// Dispose ends any open session and stops new ones from starting. Handles
// from the disposed session return ErrSessionClosed. Safe to call twice.
func (a *Arbiter) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	if a.session != nil {
		a.session.end()
	}
}

func (a *Arbiter) defect(err error) {
	Logger().Warn("gesture arbitration defect", "err", err)
	debugPanic(a.debug, err)
}

// Session owns the recognizers racing for one input sequence.
type Session struct {
	arbiter  *Arbiter
	members  []*Handle
	accepted *Handle
	contacts map[PointerID]struct{}
	listener ListenerHandle
	closed   bool
}

// Accepted returns the winning recognizer's handle, or nil.
func (s *Session) Accepted() *Handle {
	return s.accepted
}

// Closed reports whether the session has ended.
func (s *Session) Closed() bool {
	return s.closed
}

// handle is the session's surface listener.
func (s *Session) handle(sample Sample) {
	if s.closed {
		return
	}
	_, tracked := s.contacts[sample.ID]
	switch sample.Phase {
	case PhaseDown:
		s.contacts[sample.ID] = struct{}{}
	default:
		if !tracked {
			return
		}
	}

	for _, h := range s.members {
		if s.closed {
			return
		}
		if h.state != StateRejected {
			h.r.HandleSample(sample)
		}
	}

	if sample.released() {
		delete(s.contacts, sample.ID)
		if len(s.contacts) == 0 {
			s.end()
		}
	}
}

func (s *Session) pending() []*Handle {
	var out []*Handle
	for _, h := range s.members {
		if h.state == StatePending {
			out = append(out, h)
		}
	}
	return out
}

// end closes the session, rejects undecided members and releases the
// surface listener.
func (s *Session) end() {
	if s.closed {
		return
	}
	s.closed = true
	s.listener.Release()
	for _, h := range s.members {
		if h.state == StatePending {
			h.state = StateRejected
			h.r.Rejected()
		}
	}
	if s.arbiter.session == s {
		s.arbiter.session = nil
	}
}

// Handle is a recognizer's link to its arbitration session.
type Handle struct {
	session *Session
	name    string
	r       Recognizer
	state   RecognizerState
}

// Name returns the name the recognizer was registered under.
func (h *Handle) Name() string {
	return h.name
}

// State returns the recognizer's current standing.
func (h *Handle) State() RecognizerState {
	return h.state
}

// Accept claims the session. Every other pending recognizer is rejected
// before the caller is marked accepted. Only the first acceptance in a
// session has any effect; later ones return ErrAlreadyAccepted.
func (h *Handle) Accept() error {
	s := h.session
	if s.closed {
		return fmt.Errorf("accept %s: %w", h.name, ErrSessionClosed)
	}
	if s.accepted != nil {
		err := fmt.Errorf("accept %s: %w", h.name, ErrAlreadyAccepted)
		s.arbiter.defect(err)
		return err
	}
	if h.state != StatePending {
		return fmt.Errorf("accept %s: %w", h.name, ErrAlreadyResolved)
	}

	for _, o := range s.members {
		if o != h && o.state == StatePending {
			o.state = StateRejected
			o.r.Rejected()
		}
	}
	h.state = StateAccepted
	s.accepted = h
	Logger().Debug("gesture accepted", "recognizer", h.name)
	h.r.Accepted()
	return nil
}

// Reject withdraws the recognizer from the session. When exactly one
// recognizer is left pending and none has won, it is accepted.
func (h *Handle) Reject() error {
	s := h.session
	if s.closed {
		return fmt.Errorf("reject %s: %w", h.name, ErrSessionClosed)
	}
	if h.state != StatePending {
		return fmt.Errorf("reject %s: %w", h.name, ErrAlreadyResolved)
	}
	h.state = StateRejected
	h.r.Rejected()

	if s.accepted != nil {
		return nil
	}
	switch rest := s.pending(); len(rest) {
	case 0:
		// Nobody can win; free the surface now instead of at release.
		s.end()
	case 1:
		if err := rest[0].Accept(); err != nil {
			return fmt.Errorf("reject %s: %w", h.name, err)
		}
	}
	return nil
}

// Emit forwards a gesture event to the arbiter's sink. It reports false and
// drops the event unless this recognizer is the session's accepted one and
// the session is still open.
func (h *Handle) Emit(ev GestureEvent) bool {
	s := h.session
	if s.closed || s.accepted != h {
		return false
	}
	if s.arbiter.emit != nil {
		s.arbiter.emit(ev)
	}
	return true
}
