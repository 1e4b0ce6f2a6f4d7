package raster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/g3d"
)

// Plane is one of the six clip-space frustum planes.
type Plane uint8

// Frustum planes in clipping order.
const (
	Left Plane = iota
	Right
	Bottom
	Top
	Near
	Far
)

// Planes lists the frustum planes in the order polygons are clipped.
var Planes = [...]Plane{Left, Right, Bottom, Top, Near, Far}

func (p Plane) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Near:
		return "near"
	case Far:
		return "far"
	}
	return "unknown"
}

// parallelEpsilon is the denominator below which an edge is treated as
// parallel to a plane.
const parallelEpsilon = 1e-6

// Vertex is a clip-space position with its resolved color.
type Vertex struct {
	Pos   g3d.Vec4
	Color g3d.RGBA
}

// Inside reports whether v lies on the inner side of plane p.
func Inside(v g3d.Vec4, p Plane) bool {
	switch p {
	case Left:
		return v.X >= -v.W
	case Right:
		return v.X <= v.W
	case Bottom:
		return v.Y >= -v.W
	case Top:
		return v.Y <= v.W
	case Near:
		return v.Z >= -v.W
	case Far:
		return v.Z <= v.W
	}
	return false
}

// crossing returns the parameter t in [0, 1] where segment a→b meets plane p.
func crossing(a, b g3d.Vec4, p Plane) float32 {
	dw := b.W - a.W
	switch p {
	case Left:
		return safeDiv(-(a.W + a.X), dw+(b.X-a.X))
	case Right:
		return safeDiv(a.W-a.X, dw-(b.X-a.X))
	case Bottom:
		return safeDiv(-(a.W + a.Y), dw+(b.Y-a.Y))
	case Top:
		return safeDiv(a.W-a.Y, dw-(b.Y-a.Y))
	case Near:
		return safeDiv(-(a.W + a.Z), dw+(b.Z-a.Z))
	case Far:
		return safeDiv(a.W-a.Z, dw-(b.Z-a.Z))
	}
	return 0
}

func safeDiv(num, den float32) float32 {
	if math32.Abs(den) < parallelEpsilon {
		return 0
	}
	t := num / den
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

func lerpVertex(a, b Vertex, t float32) Vertex {
	return Vertex{
		Pos:   a.Pos.Lerp(b.Pos, t),
		Color: a.Color.Lerp(b.Color, t),
	}
}

// ClipPolygon clips a convex polygon against one plane (Sutherland–Hodgman)
// and appends the result to dst. Position and color are interpolated at
// every crossing.
func ClipPolygon(dst, poly []Vertex, p Plane) []Vertex {
	n := len(poly)
	for i := 0; i < n; i++ {
		cur := poly[i]
		next := poly[(i+1)%n]
		curIn := Inside(cur.Pos, p)
		nextIn := Inside(next.Pos, p)

		switch {
		case curIn && nextIn:
			dst = append(dst, next)
		case curIn:
			dst = append(dst, lerpVertex(cur, next, crossing(cur.Pos, next.Pos, p)))
		case nextIn:
			dst = append(dst, lerpVertex(cur, next, crossing(cur.Pos, next.Pos, p)), next)
		}
	}
	return dst
}

// ClipToFrustum clips poly against all six planes in order. It returns nil
// as soon as fewer than three vertices remain. poly is not modified.
func ClipToFrustum(poly []Vertex) []Vertex {
	var c Clipper
	return c.Clip(poly)
}

// Clipper clips polygons against the frustum while reusing two scratch
// buffers between calls. The zero value is ready to use.
type Clipper struct {
	a, b []Vertex
}

// Clip behaves like ClipToFrustum. The returned slice is owned by the
// Clipper and is only valid until the next call.
func (c *Clipper) Clip(poly []Vertex) []Vertex {
	if len(poly) < 3 {
		return nil
	}
	c.a = append(c.a[:0], poly...)
	for _, p := range Planes {
		c.b = ClipPolygon(c.b[:0], c.a, p)
		c.a, c.b = c.b, c.a
		if len(c.a) < 3 {
			return nil
		}
	}
	return c.a
}
