package camgesture

import "time"

// syntheticEvent is a single injected input event: either a pointer sample
// or a wheel tick. Times are stamped when the event is consumed.
type syntheticEvent struct {
	sample  Sample
	wheel   WheelEvent
	isWheel bool
}

// InjectPress queues a primary-button mouse press at the given screen
// coordinates. The event is consumed on the next Update.
func (c *Controller) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{sample: Sample{
		Position: Vec2{x, y},
		Device:   DeviceMouse,
		Buttons:  ButtonPrimary,
		Phase:    PhaseDown,
	}})
}

// InjectMove queues a mouse move with the primary button held. Use this
// between InjectPress and InjectRelease to simulate a drag.
func (c *Controller) InjectMove(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{sample: Sample{
		Position: Vec2{x, y},
		Device:   DeviceMouse,
		Buttons:  ButtonPrimary,
		Phase:    PhaseMove,
	}})
}

// InjectRelease queues a mouse release at the given screen coordinates.
func (c *Controller) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{sample: Sample{
		Position: Vec2{x, y},
		Device:   DeviceMouse,
		Phase:    PhaseUp,
	}})
}

// InjectClick queues a press followed by a release at the same
// coordinates. Consumes two frames.
func (c *Controller) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The sequence consumes `frames` frames; the
// minimum is 2 (press + release).
func (c *Controller) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a pixel-mode wheel tick at the given coordinates.
func (c *Controller) InjectWheel(x, y, deltaY float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		wheel:   WheelEvent{Position: Vec2{x, y}, DeltaY: deltaY, Mode: DeltaPixel},
		isWheel: true,
	})
}

// Pending returns the number of injected events not yet consumed.
func (c *Controller) Pending() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one event from the inject queue, stamps it with
// now and routes it like real input. Returns true if an event was consumed.
func (c *Controller) processInjectedInput(now time.Time) bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	if evt.isWheel {
		evt.wheel.Time = now
		c.HandleWheel(evt.wheel)
		return true
	}
	evt.sample.Time = now
	c.HandleSample(evt.sample)
	return true
}
