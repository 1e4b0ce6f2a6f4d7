package scene

import (
	"slices"

	"github.com/gogpu/g3d"
)

// Viewport is a rectangular region rendered from one camera. It borrows
// its World and Overlays; the caller keeps them alive.
type Viewport struct {
	x, y          int
	width, height int
	world         *World
	view          g3d.Mat4
	projection    g3d.Mat4
	overlays      []*Overlay
}

// NewViewport creates a viewport of the given size at the origin with
// identity matrices.
func NewViewport(width, height int) *Viewport {
	return &Viewport{
		width:      width,
		height:     height,
		view:       g3d.Identity(),
		projection: g3d.Identity(),
	}
}

// Width returns the width in pixels.
func (v *Viewport) Width() int { return v.width }

// Height returns the height in pixels.
func (v *Viewport) Height() int { return v.height }

// Origin returns the top-left corner inside the host window.
func (v *Viewport) Origin() (x, y int) { return v.x, v.y }

// SetSize changes the pixel size.
func (v *Viewport) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetRect changes origin and size.
func (v *Viewport) SetRect(x, y, width, height int) {
	v.x, v.y = x, y
	v.SetSize(width, height)
}

// AspectRatio returns width/height, or 1 when the height is zero.
func (v *Viewport) AspectRatio() float32 {
	if v.height == 0 {
		return 1
	}
	return float32(v.width) / float32(v.height)
}

// World returns the attached world, which may be nil.
func (v *Viewport) World() *World { return v.world }

// SetWorld attaches a world. Pass nil to detach.
func (v *Viewport) SetWorld(w *World) { v.world = w }

// View returns the view matrix.
func (v *Viewport) View() g3d.Mat4 { return v.view }

// SetView sets the view matrix.
func (v *Viewport) SetView(m g3d.Mat4) { v.view = m }

// Projection returns the projection matrix.
func (v *Viewport) Projection() g3d.Mat4 { return v.projection }

// SetProjection sets the projection matrix.
func (v *Viewport) SetProjection(m g3d.Mat4) { v.projection = m }

// AddOverlay attaches an overlay. Adding the same overlay twice is a no-op.
func (v *Viewport) AddOverlay(o *Overlay) {
	if o == nil || slices.Contains(v.overlays, o) {
		return
	}
	v.overlays = append(v.overlays, o)
}

// RemoveOverlay detaches an overlay.
func (v *Viewport) RemoveOverlay(o *Overlay) {
	v.overlays = slices.DeleteFunc(v.overlays, func(x *Overlay) bool { return x == o })
}

// Overlays returns the attached overlays in draw order.
func (v *Viewport) Overlays() []*Overlay {
	return v.overlays
}
