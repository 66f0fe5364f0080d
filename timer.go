package camgesture

import "time"

// deadline is a single authoritative timer handle driven by Update calls.
// It moves closed -> open(at) -> closed and fires at most once per arm.
// Re-arming an open deadline moves it; it never fires twice.
type deadline struct {
	at   time.Time
	open bool
}

// arm opens the deadline (or moves an open one) to fire at t.
func (d *deadline) arm(t time.Time) {
	d.at = t
	d.open = true
}

// cancel closes the deadline without firing.
func (d *deadline) cancel() {
	d.open = false
	d.at = time.Time{}
}

// armed reports whether the deadline is open.
func (d *deadline) armed() bool {
	return d.open
}

// expired reports whether the deadline is open and due at now. A true
// result closes the deadline, so each arm yields at most one expiry.
func (d *deadline) expired(now time.Time) bool {
	if !d.open || now.Before(d.at) {
		return false
	}
	d.cancel()
	return true
}

// Clock supplies the current time to a Controller. Tests substitute a
// manual clock to drive timers deterministically.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }
