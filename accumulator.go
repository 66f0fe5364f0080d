package camgesture

import (
	"math"
	"time"
)

const (
	// AccumulationWindow is how long wheel ticks are summed before flushing.
	AccumulationWindow = 16 * time.Millisecond
	// MinAccumulatedMagnitude is the smallest |sum| that is forwarded;
	// anything at or below it is discarded as jitter.
	MinAccumulatedMagnitude = 0.1
)

// Accumulator coalesces bursts of wheel ticks into one zoom per window.
//
// The first tick opens a window that closes AccumulationWindow later. Each
// tick adds to the running sum and moves the anchor to its position. When
// the window closes the sum is flushed if it exceeds MinAccumulatedMagnitude
// and is reset either way.
type Accumulator struct {
	flush    func(anchor Vec2, sum float64)
	anchor   Vec2
	sum      float64
	window   deadline
	disposed bool
}

// NewAccumulator creates an accumulator that reports flushed sums to flush.
func NewAccumulator(flush func(anchor Vec2, sum float64)) *Accumulator {
	return &Accumulator{flush: flush}
}

// Add accumulates one tick. now is the tick time.
func (a *Accumulator) Add(anchor Vec2, delta float64, now time.Time) {
	if a.disposed {
		return
	}
	a.sum += delta
	a.anchor = anchor
	if !a.window.armed() {
		a.window.arm(now.Add(AccumulationWindow))
	}
}

// Pending reports whether a window is open.
func (a *Accumulator) Pending() bool {
	return a.window.armed()
}

// Sum returns the running total of the open window.
func (a *Accumulator) Sum() float64 {
	return a.sum
}

// Update closes the window if its deadline has passed.
func (a *Accumulator) Update(now time.Time) {
	if a.disposed || !a.window.expired(now) {
		return
	}
	sum, anchor := a.sum, a.anchor
	a.sum = 0
	if math.Abs(sum) > MinAccumulatedMagnitude {
		Logger().Debug("wheel flush", "sum", sum)
		a.flush(anchor, sum)
	}
}

// Dispose cancels any open window without flushing. Safe to call twice.
func (a *Accumulator) Dispose() {
	a.disposed = true
	a.window.cancel()
	a.sum = 0
}
