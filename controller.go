package camgesture

// EntityStore is the interface for optional ECS integration.
// When set on a Controller, accepted gesture events are forwarded to it.
type EntityStore interface {
	EmitEvent(event GestureEvent)
}

// Controller is the top-level object that owns the input surface, the
// device handlers, and the gesture arbiter for one camera view.
//
// Hosts feed it raw samples with HandleSample and HandleWheel and call
// Update once per frame to run timers. Everything happens on the caller's
// goroutine; a Controller is not safe for concurrent use.
type Controller struct {
	api   InteractionAPI
	cfg   Config
	clock Clock

	surface  *Surface
	mouse    *MouseHandler
	touch    *TouchHandler
	arbiter  *Arbiter
	handlers handlerRegistry
	store    EntityStore
	viewport Rect
	disposed bool

	injectQueue []syntheticEvent
	script      *ScriptRunner
}

// NewController creates a controller that drives api. Zero Config fields
// take their defaults. Pan and tap recognizers are registered by default.
func NewController(api InteractionAPI, cfg Config) *Controller {
	cfg = cfg.withDefaults()
	c := &Controller{
		api:     api,
		cfg:     cfg,
		clock:   systemClock{},
		surface: NewSurface(),
	}
	c.mouse = NewMouseHandler(api, c.surface, cfg)
	c.touch = NewTouchHandler(api, c.surface, cfg)
	c.arbiter = NewArbiter(c.surface, c.dispatchGesture)

	// Pan claims only beyond the tap slop so a jittery click stays a tap.
	slop := cfg.TapSlop
	_ = c.arbiter.Register("pan", func() Recognizer { return NewPanRecognizer(slop) })
	_ = c.arbiter.Register("tap", func() Recognizer { return NewTapRecognizer(slop) })
	return c
}

// Config returns the controller's effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Surface returns the controller's global input surface.
func (c *Controller) Surface() *Surface {
	return c.surface
}

// Arbiter returns the gesture arbiter.
func (c *Controller) Arbiter() *Arbiter {
	return c.arbiter
}

// RegisterRecognizer adds a recognizer to the gesture race. It takes effect
// from the next input session.
func (c *Controller) RegisterRecognizer(name string, fn RecognizerFunc) error {
	return c.arbiter.Register(name, fn)
}

// SetClock replaces the time source used by Update and injected input.
func (c *Controller) SetClock(clock Clock) {
	c.clock = clock
}

// SetEntityStore sets the optional ECS store for gesture events.
func (c *Controller) SetEntityStore(store EntityStore) {
	c.store = store
}

// SetDebug enables panics on arbitration defects.
func (c *Controller) SetDebug(enabled bool) {
	c.arbiter.SetDebug(enabled)
}

// SetViewport limits element-level presses and wheel ticks to r. An empty
// rect accepts input anywhere. The viewport height is also the page size
// for page-mode wheel deltas.
func (c *Controller) SetViewport(r Rect) {
	c.viewport = r
	if !r.Empty() {
		c.mouse.SetPageHeight(r.Height)
	}
}

// SetPixelRatio updates the device pixel density of sample coordinates.
// Drag thresholds of future drags scale with it.
func (c *Controller) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		ratio = 1
	}
	c.cfg.PixelRatio = ratio
	c.mouse.SetThreshold(c.cfg.fineThreshold())
	c.touch.SetThreshold(c.cfg.coarseThreshold())
}

// SetPrimaryInteraction selects the operation for the next primary-button drag.
func (c *Controller) SetPrimaryInteraction(p PrimaryInteraction) {
	c.cfg.PrimaryInteraction = p
	c.mouse.SetPrimaryInteraction(p)
}

// PrimaryInteraction returns the operation bound to primary-button drag.
func (c *Controller) PrimaryInteraction() PrimaryInteraction {
	return c.mouse.PrimaryInteraction()
}

// SetLineMetrics sets the font metrics used for line-mode wheel deltas.
func (c *Controller) SetLineMetrics(lm LineMetrics) {
	c.mouse.SetLineMetrics(lm)
}

// OnGesture registers a callback for events emitted by accepted recognizers.
func (c *Controller) OnGesture(fn func(GestureEvent)) CallbackHandle {
	return c.handlers.add(fn)
}

func (c *Controller) inViewport(p Vec2) bool {
	return c.viewport.Empty() || c.viewport.Contains(p.X, p.Y)
}

// HandleSample routes one raw sample. Listeners attached to the surface see
// it first; a press inside the viewport then reaches the device handler and
// the arbiter as an element-level press. A zero Time is stamped from the clock.
func (c *Controller) HandleSample(s Sample) {
	if c.disposed {
		return
	}
	if s.Time.IsZero() {
		s.Time = c.clock.Now()
	}
	c.surface.Dispatch(s)
	if s.Phase != PhaseDown || !c.inViewport(s.Position) {
		return
	}
	if s.fine() {
		c.mouse.HandleDown(s)
	} else {
		c.touch.HandleDown(s)
	}
	c.arbiter.HandleDown(s)
}

// HandleWheel routes one wheel tick that lands inside the viewport.
func (c *Controller) HandleWheel(ev WheelEvent) {
	if c.disposed || !c.inViewport(ev.Position) {
		return
	}
	if ev.Time.IsZero() {
		ev.Time = c.clock.Now()
	}
	c.mouse.HandleWheel(ev)
}

// Update advances the script runner, consumes one injected event, and runs
// the accumulation and debounce timers. Call it once per frame.
func (c *Controller) Update() {
	if c.disposed {
		return
	}
	now := c.clock.Now()
	if c.script != nil {
		c.script.step(c)
	}
	c.processInjectedInput(now)
	c.mouse.Update(now)
}

func (c *Controller) dispatchGesture(ev GestureEvent) {
	if ev.Kind == GestureTap {
		c.api.Tap(ev.Position, ev.Modifiers)
	}
	c.handlers.fire(ev)
	if c.store != nil {
		c.store.EmitEvent(ev)
	}
}

// Dispose tears down every handler: surface listeners are released, timers
// cancelled, open interactions closed and the arbitration session ended.
// Later input is ignored. Safe to call twice.
func (c *Controller) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.mouse.Dispose()
	c.touch.Dispose()
	c.arbiter.Dispose()
	c.injectQueue = nil
	c.script = nil
}
