package raster

import "github.com/gogpu/g3d"

// Target is a color buffer paired with a depth buffer of the same size.
type Target struct {
	color *g3d.Pixmap
	depth []float32
}

// NewTarget allocates a width×height target.
func NewTarget(width, height int) *Target {
	pm := g3d.NewPixmap(width, height)
	return &Target{
		color: pm,
		depth: make([]float32, pm.Width()*pm.Height()),
	}
}

// Width returns the target width.
func (t *Target) Width() int { return t.color.Width() }

// Height returns the target height.
func (t *Target) Height() int { return t.color.Height() }

// Empty reports whether the target has no pixels.
func (t *Target) Empty() bool { return t.color.Empty() }

// Pixmap returns the color buffer.
func (t *Target) Pixmap() *g3d.Pixmap { return t.color }

// Resize reallocates both buffers. Same-size calls keep the buffers.
func (t *Target) Resize(width, height int) {
	if width == t.Width() && height == t.Height() {
		return
	}
	t.color.Resize(width, height)
	t.depth = make([]float32, t.color.Width()*t.color.Height())
}

// Clear fills the color buffer with c and resets every depth to 1.
func (t *Target) Clear(c g3d.RGBA) {
	t.color.Clear(c)
	t.ClearDepth()
}

// ClearDepth resets every depth to 1 and leaves the colors untouched.
func (t *Target) ClearDepth() {
	for i := range t.depth {
		t.depth[i] = 1
	}
}

// Depth returns the stored depth at (x, y), or 1 outside the target.
func (t *Target) Depth(x, y int) float32 {
	if x < 0 || y < 0 || x >= t.Width() || y >= t.Height() {
		return 1
	}
	return t.depth[y*t.Width()+x]
}
