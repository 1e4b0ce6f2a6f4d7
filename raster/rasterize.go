package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/g3d"
)

// degenerateArea is the twice-signed-area below which a triangle is skipped.
const degenerateArea = 1e-5

// Shading selects how fragment colors are computed.
type Shading uint8

const (
	// Flat paints every fragment with a single color.
	Flat Shading = iota
	// Smooth interpolates vertex colors barycentrically.
	Smooth
)

// TriangleResult reports what DrawTriangle did.
type TriangleResult struct {
	Degenerate bool
	Written    int
	Rejected   int
}

func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

// DrawTriangle rasterizes one screen-space triangle of either winding.
// A pixel is covered when its center lies on the inner side of all three
// edges; it is written only if its depth is strictly less than the stored
// depth. With Flat shading every fragment gets flat.
func (t *Target) DrawTriangle(v0, v1, v2 ScreenVertex, shading Shading, flat g3d.RGBA) TriangleResult {
	var res TriangleResult
	w, h := t.Width(), t.Height()
	if w == 0 || h == 0 {
		return res
	}

	area := edge(v0.X, v0.Y, v1.X, v1.Y, v2.X, v2.Y)
	if math32.Abs(area) < degenerateArea {
		res.Degenerate = true
		return res
	}
	invArea := 1 / area

	minX := clampPixel(math32.Floor(min(v0.X, v1.X, v2.X)), w)
	maxX := clampPixel(math32.Ceil(max(v0.X, v1.X, v2.X)), w)
	minY := clampPixel(math32.Floor(min(v0.Y, v1.Y, v2.Y)), h)
	maxY := clampPixel(math32.Ceil(max(v0.Y, v1.Y, v2.Y)), h)

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		row := y * w
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := edge(v1.X, v1.Y, v2.X, v2.Y, px, py)
			w1 := edge(v2.X, v2.Y, v0.X, v0.Y, px, py)
			w2 := edge(v0.X, v0.Y, v1.X, v1.Y, px, py)

			covered := (area > 0 && w0 >= 0 && w1 >= 0 && w2 >= 0) ||
				(area < 0 && w0 <= 0 && w1 <= 0 && w2 <= 0)
			if !covered {
				continue
			}
			w0 *= invArea
			w1 *= invArea
			w2 *= invArea

			z := v0.Depth*w0 + v1.Depth*w1 + v2.Depth*w2
			if !(z < t.depth[row+x]) {
				res.Rejected++
				continue
			}
			t.depth[row+x] = z

			c := flat
			if shading == Smooth {
				c = g3d.Weighted(v0.Color, v1.Color, v2.Color, w0, w1, w2)
			}
			t.color.SetPixel(x, y, c)
			res.Written++
		}
	}
	return res
}

func clampPixel(v float32, size int) int {
	if v < 0 {
		return 0
	}
	if hi := float32(size - 1); v > hi {
		return size - 1
	}
	return int(v)
}
