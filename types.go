package camgesture

import (
	"math"
	"time"
)

// Vec2 is a 2D vector used for positions, deltas, and directions
// throughout the API. Coordinates are screen pixels with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// PointerID identifies one contact. Mouse and pen samples use 0; touch
// contacts use a host-assigned identifier that is stable while the finger
// stays down.
type PointerID int

// Device identifies the kind of hardware that produced a sample.
type Device uint8

const (
	DeviceMouse Device = iota // mouse or trackpad cursor
	DeviceTouch               // finger on a touch surface
	DevicePen                 // stylus; treated as a fine pointer
)

// Phase is the lifecycle stage a sample reports for its contact.
type Phase uint8

const (
	PhaseDown   Phase = iota // contact pressed / button pressed
	PhaseMove                // contact moved
	PhaseUp                  // contact lifted / button released
	PhaseCancel              // host aborted the contact
)

// Buttons is a bitmask of pointer buttons.
type Buttons uint8

const (
	ButtonPrimary   Buttons = 1 << iota // left mouse button, touch contact, pen tip
	ButtonSecondary                     // right mouse button
	ButtonTertiary                      // middle mouse button
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// Sample is one immutable low-level input event.
//
// For PhaseDown, Buttons holds every pressed button including the one that
// just went down. For PhaseUp, Buttons holds the buttons still held.
type Sample struct {
	ID        PointerID
	Position  Vec2
	Device    Device
	Buttons   Buttons
	Phase     Phase
	Modifiers KeyModifiers
	Time      time.Time
}

// released reports whether the sample ends its contact: a cancel, or an up
// with no buttons left held.
func (s Sample) released() bool {
	return s.Phase == PhaseCancel || (s.Phase == PhaseUp && s.Buttons == 0)
}

// fine reports whether the sample comes from a precise pointing device.
func (s Sample) fine() bool {
	return s.Device != DeviceTouch
}

// DeltaMode is the unit a wheel delta is expressed in.
type DeltaMode uint8

const (
	DeltaPixel DeltaMode = iota // delta is in pixels
	DeltaLine                   // delta is in lines of text
	DeltaPage                   // delta is in pages
)

// WheelEvent is one wheel tick.
type WheelEvent struct {
	Position  Vec2
	DeltaX    float64
	DeltaY    float64
	Mode      DeltaMode
	Modifiers KeyModifiers
	Time      time.Time
}

// PrimaryInteraction selects the camera operation bound to primary-button drag.
type PrimaryInteraction uint8

const (
	InteractionRotate PrimaryInteraction = iota // orbit / rotate the camera
	InteractionPan                              // translate the camera
	InteractionZoom                             // zoom toward the drag anchor
)

// String returns the lowercase name used in config files.
func (p PrimaryInteraction) String() string {
	switch p {
	case InteractionRotate:
		return "rotate"
	case InteractionPan:
		return "pan"
	case InteractionZoom:
		return "zoom"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p PrimaryInteraction) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts
// "rotate", "pan", and "zoom".
func (p *PrimaryInteraction) UnmarshalText(b []byte) error {
	switch string(b) {
	case "rotate":
		*p = InteractionRotate
	case "pan":
		*p = InteractionPan
	case "zoom":
		*p = InteractionZoom
	default:
		return &InteractionTypeError{Value: string(b)}
	}
	return nil
}

// GestureKind identifies which recognizer produced a GestureEvent.
type GestureKind uint8

const (
	GestureTap GestureKind = iota // resolved tap
	GesturePan                    // continuous single-contact pan
)

// GesturePhase orders a recognizer's emissions.
type GesturePhase uint8

const (
	GestureStart  GesturePhase = iota // first emission after acceptance
	GestureUpdate                     // continuous movement
	GestureEnd                        // final emission
)

// GestureEvent is a high-level event emitted by an accepted recognizer.
// Pan gestures emit Start, Update..., End. A tap is a single GestureEnd.
type GestureEvent struct {
	Kind      GestureKind
	Phase     GesturePhase
	Position  Vec2
	Delta     Vec2
	PointerID PointerID
	Modifiers KeyModifiers
	// Cancelled is set on a GestureEnd caused by PhaseCancel.
	Cancelled bool
	Time      time.Time
}
