package camgesture

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Camera defaults.
const (
	DefaultRotateSpeed  = 0.01  // radians per pixel of horizontal drag
	DefaultZoomSpeed    = 0.005 // log-zoom per unit of zoom magnitude
	DefaultMinZoom      = 0.1
	DefaultMaxZoom      = 10.0
	DefaultZoomDuration = 0.12 // seconds
)

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// zoomAnim eases the zoom toward a target while keeping the world point
// under the anchor fixed on screen.
type zoomAnim struct {
	tween  *gween.Tween
	target float64
	screen Vec2
	world  Vec2
}

// Camera is a 2D view camera that implements InteractionAPI: rotate turns
// the view about its center, pan drags the world with the pointer, and zoom
// scales about the anchor with an eased transition.
type Camera struct {
	// X and Y are the world-space position the camera centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Rotation is the camera rotation in radians (clockwise).
	Rotation float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	RotateSpeed float64
	ZoomSpeed   float64
	MinZoom     float64
	MaxZoom     float64
	// ZoomDuration is the zoom easing time in seconds; 0 zooms immediately.
	ZoomDuration float32
	ZoomEase     ease.TweenFunc

	// BoundsEnabled clamps the camera position so the visible area stays
	// within Bounds.
	BoundsEnabled bool
	Bounds        Rect

	// OnTap is called for every resolved tap.
	OnTap func(pos Vec2, mods KeyModifiers)

	interacting  bool
	interactions int

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
	zoomTween   *zoomAnim
}

var _ InteractionAPI = (*Camera)(nil)

// NewCamera creates a Camera with default values and the given viewport.
func NewCamera(viewport Rect) *Camera {
	return &Camera{
		Zoom:         1.0,
		Viewport:     viewport,
		RotateSpeed:  DefaultRotateSpeed,
		ZoomSpeed:    DefaultZoomSpeed,
		MinZoom:      DefaultMinZoom,
		MaxZoom:      DefaultMaxZoom,
		ZoomDuration: DefaultZoomDuration,
		ZoomEase:     ease.OutQuad,
		dirty:        true,
	}
}

// BeginInteraction marks the start of a user interaction.
func (c *Camera) BeginInteraction() {
	c.interacting = true
	c.interactions++
}

// EndInteraction marks the end of a user interaction.
func (c *Camera) EndInteraction() {
	c.interacting = false
}

// Interacting reports whether an interaction is open.
func (c *Camera) Interacting() bool {
	return c.interacting
}

// Interactions returns how many interactions have begun.
func (c *Camera) Interactions() int {
	return c.interactions
}

// RotateCamera turns the view by the horizontal component of delta.
func (c *Camera) RotateCamera(delta Vec2) {
	c.Rotation += delta.X * c.RotateSpeed
	c.dirty = true
}

// PanCamera moves the camera so the world follows a screen-space drag.
func (c *Camera) PanCamera(delta Vec2) {
	sin, cos := math.Sincos(c.Rotation)
	wx := (cos*delta.X - sin*delta.Y) / c.Zoom
	wy := (sin*delta.X + cos*delta.Y) / c.Zoom
	c.X -= wx
	c.Y -= wy
	if c.zoomTween != nil {
		c.zoomTween.world.X -= wx
		c.zoomTween.world.Y -= wy
	}
	c.clamp()
	c.dirty = true
}

// ZoomCamera scales the view by exp(magnitude*ZoomSpeed) about anchor.
// Successive calls during an eased zoom compound on its target.
func (c *Camera) ZoomCamera(anchor Vec2, magnitude float64) {
	base := c.Zoom
	if c.zoomTween != nil {
		base = c.zoomTween.target
	}
	target := math.Max(c.MinZoom, math.Min(base*math.Exp(magnitude*c.ZoomSpeed), c.MaxZoom))
	wx, wy := c.ScreenToWorld(anchor.X, anchor.Y)
	world := Vec2{wx, wy}

	if c.ZoomDuration <= 0 || c.ZoomEase == nil {
		c.zoomTween = nil
		c.setZoomAt(target, anchor, world)
		return
	}
	c.zoomTween = &zoomAnim{
		tween:  gween.New(float32(c.Zoom), float32(target), c.ZoomDuration, c.ZoomEase),
		target: target,
		screen: anchor,
		world:  world,
	}
}

// Tap forwards a resolved tap to OnTap.
func (c *Camera) Tap(pos Vec2, mods KeyModifiers) {
	if c.OnTap != nil {
		c.OnTap(pos, mods)
	}
}

// setZoomAt applies zoom z and repositions the camera so that world maps
// to screen.
func (c *Camera) setZoomAt(z float64, screen, world Vec2) {
	c.Zoom = z
	center := c.Viewport.Center()
	sin, cos := math.Sincos(c.Rotation)
	dx := (screen.X - center.X) / z
	dy := (screen.Y - center.Y) / z
	c.X = world.X - (cos*dx - sin*dy)
	c.Y = world.Y - (sin*dx + cos*dy)
	c.clamp()
	c.dirty = true
}

// ScrollTo animates the camera to the given world position over duration seconds.
func (c *Camera) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), duration, easeFn),
	}
}

// Animating reports whether a zoom or scroll tween is running.
func (c *Camera) Animating() bool {
	return c.zoomTween != nil || c.scrollTween != nil
}

// SetBounds enables camera bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables camera bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// Update advances zoom and scroll tweens by dt seconds.
func (c *Camera) Update(dt float32) {
	if c.zoomTween != nil {
		z := c.zoomTween
		val, done := z.tween.Update(dt)
		zoom := float64(val)
		if done {
			zoom = z.target
			c.zoomTween = nil
		}
		c.setZoomAt(zoom, z.screen, z.world)
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(dt)
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(dt)
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
		c.dirty = true
	}

	if c.BoundsEnabled {
		c.clampToBounds()
		c.dirty = true
	}
}

func (c *Camera) clamp() {
	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds restricts camera position so the visible area stays within Bounds.
func (c *Camera) clampToBounds() {
	halfW := c.Viewport.Width / (2 * c.Zoom)
	halfH := c.Viewport.Height / (2 * c.Zoom)

	minX := c.Bounds.X + halfW
	maxX := c.Bounds.X + c.Bounds.Width - halfW
	minY := c.Bounds.Y + halfH
	maxY := c.Bounds.Y + c.Bounds.Height - halfH

	// If bounds are smaller than visible area, center the camera.
	if minX > maxX {
		c.X = c.Bounds.X + c.Bounds.Width/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + c.Bounds.Height/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// ViewMatrix returns the world-to-screen affine matrix [a, b, c, d, tx, ty].
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
// where cx, cy = viewport center.
func (c *Camera) ViewMatrix() [6]float64 {
	if !c.dirty {
		return c.viewMatrix
	}
	c.dirty = false

	center := c.Viewport.Center()
	sin, cos := math.Sincos(-c.Rotation)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := center.X + z*(-cos*c.X+sin*c.Y)
	ty := center.Y + z*(-sin*c.X-cos*c.Y)

	c.viewMatrix = [6]float64{a, cc, b, d, tx, ty}
	c.invViewMatrix = invertAffine(c.viewMatrix)
	return c.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewMatrix(), wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	c.ViewMatrix()
	return transformPoint(c.invViewMatrix, sx, sy)
}

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// invertAffine inverts an affine matrix; a singular matrix yields identity.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
