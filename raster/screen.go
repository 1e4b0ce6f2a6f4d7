package raster

import "github.com/gogpu/g3d"

// ScreenVertex is a vertex after perspective divide and viewport mapping.
// X and Y are pixels with y pointing down; Depth is in [0, 1].
type ScreenVertex struct {
	X, Y  float32
	Depth float32
	Color g3d.RGBA
}

// ToScreen divides every clipped vertex by w and maps it onto a
// width×height pixel grid, appending the result to dst.
func ToScreen(dst []ScreenVertex, poly []Vertex, width, height int) []ScreenVertex {
	w, h := float32(width), float32(height)
	for _, v := range poly {
		inv := 1 / v.Pos.W
		nx, ny, nz := v.Pos.X*inv, v.Pos.Y*inv, v.Pos.Z*inv
		dst = append(dst, ScreenVertex{
			X:     (nx*0.5 + 0.5) * w,
			Y:     (1 - (ny*0.5 + 0.5)) * h,
			Depth: nz*0.5 + 0.5,
			Color: v.Color,
		})
	}
	return dst
}

// Project maps a world point to integer pixel coordinates of a
// width×height viewport. ok is false when the point is behind the eye
// (clip w <= 0) or outside the near/far range.
func Project(p g3d.Vec3, view, proj g3d.Mat4, width, height int) (x, y int, ok bool) {
	clip := proj.Mul(view).MulPoint(p)
	if clip.W <= 0 {
		return 0, 0, false
	}
	nz := clip.Z / clip.W
	if nz < -1 || nz > 1 {
		return 0, 0, false
	}
	nx := clip.X / clip.W
	ny := clip.Y / clip.W
	x = int((nx*0.5 + 0.5) * float32(width))
	y = int((1 - (ny*0.5 + 0.5)) * float32(height))
	return x, y, true
}
