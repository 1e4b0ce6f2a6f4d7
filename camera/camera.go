// Package camera implements a free-look camera that drives the view and
// projection matrices of one or more viewports.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/input"
	"github.com/gogpu/g3d/scene"
)

// Projection parameters shared by every viewport the camera drives.
const (
	FieldOfView = 60 // degrees
	Near        = 0.1
	Far         = 1000
)

const (
	defaultMoveStep    = 0.1
	defaultSensitivity = 0.0025
)

// maxPitch keeps the forward vector away from the up axis. Pitch stays
// strictly inside (-maxPitch, maxPitch).
var maxPitch = g3d.Radians(89)

// Up is the fixed world up axis.
var Up = g3d.V3(0, 0, 1)

// Option configures a FreeCamera.
type Option func(*FreeCamera)

// WithMoveStep sets the distance travelled per key press.
func WithMoveStep(step float32) Option {
	return func(c *FreeCamera) {
		c.moveStep = step
	}
}

// WithSensitivity sets the radians turned per pixel of mouse motion.
func WithSensitivity(s float32) Option {
	return func(c *FreeCamera) {
		c.sensitivity = s
	}
}

// WithViewport attaches a viewport at construction time.
func WithViewport(vp *scene.Viewport) Option {
	return func(c *FreeCamera) {
		if vp != nil {
			c.viewports = append(c.viewports, vp)
		}
	}
}

// FreeCamera is a yaw/pitch camera with +Z up. Every state change rewrites
// the matrices of all attached viewports.
type FreeCamera struct {
	position    g3d.Vec3
	forward     g3d.Vec3
	yaw, pitch  float32
	moveStep    float32
	sensitivity float32
	viewports   []*scene.Viewport
	enabled     bool
}

// New creates a camera at position looking toward lookAt.
// Input starts enabled.
func New(position, lookAt g3d.Vec3, opts ...Option) *FreeCamera {
	c := &FreeCamera{
		position:    position,
		moveStep:    defaultMoveStep,
		sensitivity: defaultSensitivity,
		enabled:     true,
	}
	for _, opt := range opts {
		opt(c)
	}
	f := lookAt.Sub(position).Normalize()
	c.yaw = math32.Atan2(f.Y, f.X)
	c.pitch = math32.Asin(clamp(f.Z, -1, 1))
	c.clampPitch()
	c.update()
	return c
}

// AddViewport attaches a viewport and refreshes all matrices.
func (c *FreeCamera) AddViewport(vp *scene.Viewport) {
	if vp == nil {
		return
	}
	c.viewports = append(c.viewports, vp)
	c.update()
}

// Refresh recomputes the matrices, e.g. after a viewport was resized.
func (c *FreeCamera) Refresh() {
	c.update()
}

// Position returns the eye position.
func (c *FreeCamera) Position() g3d.Vec3 { return c.position }

// Forward returns the unit view direction.
func (c *FreeCamera) Forward() g3d.Vec3 { return c.forward }

// Yaw returns the heading around +Z in radians.
func (c *FreeCamera) Yaw() float32 { return c.yaw }

// Pitch returns the elevation in radians.
func (c *FreeCamera) Pitch() float32 { return c.pitch }

// InputEnabled reports whether Dispatch reacts to events.
func (c *FreeCamera) InputEnabled() bool { return c.enabled }

// SetInputEnabled turns event handling on or off.
func (c *FreeCamera) SetInputEnabled(on bool) { c.enabled = on }

// Dispatch applies a key press or mouse motion. Other events, and every
// event while input is disabled, are ignored.
func (c *FreeCamera) Dispatch(ev input.Event) {
	if !c.enabled {
		return
	}
	switch e := ev.(type) {
	case input.KeyPressed:
		c.handleKey(e.Code)
	case input.MouseMoved:
		c.handleMouse(float32(e.DX), float32(e.DY))
	}
}

func (c *FreeCamera) handleKey(code input.Scancode) {
	right := c.forward.Cross(Up).Normalize()
	switch code {
	case input.W, input.Up:
		c.position = c.position.Add(c.forward.Mul(c.moveStep))
	case input.S, input.Down:
		c.position = c.position.Sub(c.forward.Mul(c.moveStep))
	case input.A, input.Left:
		c.position = c.position.Sub(right.Mul(c.moveStep))
	case input.D, input.Right:
		c.position = c.position.Add(right.Mul(c.moveStep))
	case input.R:
		c.position.Z += c.moveStep
	case input.F:
		c.position.Z -= c.moveStep
	default:
		return
	}
	c.update()
}

// Mouse right turns right (yaw decreases), mouse up pitches up.
func (c *FreeCamera) handleMouse(dx, dy float32) {
	c.yaw -= dx * c.sensitivity
	c.pitch -= dy * c.sensitivity
	c.clampPitch()
	c.update()
}

func (c *FreeCamera) clampPitch() {
	lim := math32.Nextafter(maxPitch, 0)
	c.pitch = clamp(c.pitch, -lim, lim)
}

func (c *FreeCamera) update() {
	cp := math32.Cos(c.pitch)
	c.forward = g3d.V3(
		cp*math32.Cos(c.yaw),
		cp*math32.Sin(c.yaw),
		math32.Sin(c.pitch),
	).Normalize()

	view := g3d.LookAt(c.position, c.position.Add(c.forward), Up)
	for _, vp := range c.viewports {
		vp.SetView(view)
		vp.SetProjection(g3d.Perspective(g3d.Radians(FieldOfView), vp.AspectRatio(), Near, Far))
	}

	g3d.Logger().Debug("camera updated",
		"pos", c.position,
		"forward", c.forward,
		"yaw_deg", c.yaw*180/math32.Pi,
		"pitch_deg", c.pitch*180/math32.Pi,
	)
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
