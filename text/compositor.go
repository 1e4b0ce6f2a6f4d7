package text

import (
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/raster"
	"github.com/gogpu/g3d/scene"
)

// Resolved is a label with its final draw origin. X, Y is the top-left
// corner of the line box in viewport pixels.
type Resolved struct {
	Content     string
	X, Y        int
	PixelHeight int
	Color       g3d.RGBA
}

// Baseline returns the y coordinate glyphs sit on.
func (r Resolved) Baseline() int {
	return r.Y + r.PixelHeight
}

// Compositor resolves and draws the text of a viewport. It only reads the
// scene model.
type Compositor struct {
	faces   *FaceCache
	measure *Measurer
}

// NewCompositor creates a compositor drawing with the faces of fc.
func NewCompositor(fc *FaceCache) *Compositor {
	return &Compositor{
		faces:   fc,
		measure: NewMeasurer(fc.Font()),
	}
}

// Faces returns the face cache.
func (c *Compositor) Faces() *FaceCache {
	return c.faces
}

// Measure returns the width of s at the given pixel height.
func (c *Compositor) Measure(s string, pixelHeight int) int {
	return c.measure.Width(s, pixelHeight)
}

// Resolve collects every label of vp in draw order: for each overlay its
// screen texts then its floating texts, then the floating texts of the
// viewport's world. Floating texts behind the eye or outside the depth
// range are dropped.
func (c *Compositor) Resolve(vp *scene.Viewport) []Resolved {
	var out []Resolved
	for _, o := range vp.Overlays() {
		for _, t := range o.Texts() {
			if t.Content == "" {
				continue
			}
			px := pixelHeightOr(t.PixelHeight)
			x := t.X
			if t.AlignRight {
				x -= c.measure.Width(t.Content, px)
			}
			out = append(out, Resolved{Content: t.Content, X: x, Y: t.Y, PixelHeight: px, Color: t.Color})
		}
		out = c.appendFloating(out, vp, o.FloatingTexts())
	}
	if w := vp.World(); w != nil {
		out = c.appendFloating(out, vp, w.FloatingTexts())
	}
	return out
}

func (c *Compositor) appendFloating(out []Resolved, vp *scene.Viewport, fts []*scene.FloatingText) []Resolved {
	for _, ft := range fts {
		if ft.Content == "" {
			continue
		}
		x, y, ok := raster.Project(ft.Anchor, vp.View(), vp.Projection(), vp.Width(), vp.Height())
		if !ok {
			continue
		}
		out = append(out, Resolved{
			Content:     ft.Content,
			X:           x,
			Y:           y,
			PixelHeight: pixelHeightOr(ft.PixelHeight),
			Color:       ft.Color,
		})
	}
	return out
}

// Draw resolves the labels of vp and rasterizes them onto dst.
func (c *Compositor) Draw(dst draw.Image, vp *scene.Viewport) error {
	for _, r := range c.Resolve(vp) {
		if err := c.DrawResolved(dst, r); err != nil {
			return err
		}
	}
	return nil
}

// DrawResolved rasterizes a single label.
func (c *Compositor) DrawResolved(dst draw.Image, r Resolved) error {
	face, err := c.faces.Face(r.PixelHeight)
	if err != nil {
		return fmt.Errorf("text: face for %dpx: %w", r.PixelHeight, err)
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(r.Color.NRGBA()),
		Face: face,
		Dot:  fixed.P(r.X, r.Baseline()),
	}
	d.DrawString(r.Content)
	return nil
}

func pixelHeightOr(px int) int {
	if px <= 0 {
		return scene.DefaultPixelHeight
	}
	return px
}
