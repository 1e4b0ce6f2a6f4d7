package scene

import (
	"errors"

	"github.com/gogpu/g3d"
)

// ErrVertexColorCount is returned when a per-vertex color slice does not
// have exactly one color per vertex.
var ErrVertexColorCount = errors.New("scene: vertex color count does not match vertex count")

// Entity is a convex polygon in local space plus a world translation.
//
// Colors are either absent, in which case the uniform color is used for
// every fragment, or exactly one per vertex.
type Entity struct {
	vertices []g3d.Vec3
	colors   []g3d.RGBA
	color    g3d.RGBA
	position g3d.Vec3
}

// NewPolygon creates an entity from a convex polygon. The vertices are copied.
func NewPolygon(vertices ...g3d.Vec3) Entity {
	return Entity{
		vertices: append([]g3d.Vec3(nil), vertices...),
		color:    g3d.White,
	}
}

// NewTriangle creates a three vertex entity.
func NewTriangle(a, b, c g3d.Vec3) Entity {
	return NewPolygon(a, b, c)
}

// NewRectangle creates a w×h rectangle on the XY plane centered on the origin.
func NewRectangle(w, h float32) Entity {
	hw, hh := w/2, h/2
	return NewPolygon(
		g3d.V3(-hw, -hh, 0),
		g3d.V3(hw, -hh, 0),
		g3d.V3(hw, hh, 0),
		g3d.V3(-hw, hh, 0),
	)
}

// Vertices returns the local-space vertices. The slice must not be modified.
func (e *Entity) Vertices() []g3d.Vec3 {
	return e.vertices
}

// VertexColors returns the per-vertex colors, or nil when none are set.
func (e *Entity) VertexColors() []g3d.RGBA {
	return e.colors
}

// HasVertexColors reports whether every vertex carries its own color.
func (e *Entity) HasVertexColors() bool {
	return len(e.colors) != 0 && len(e.colors) == len(e.vertices)
}

// SetVertexColors sets one color per vertex. Passing no colors clears them.
// A slice of any other length is rejected and the entity is left unchanged.
func (e *Entity) SetVertexColors(colors ...g3d.RGBA) error {
	if len(colors) == 0 {
		e.colors = nil
		return nil
	}
	if len(colors) != len(e.vertices) {
		return ErrVertexColorCount
	}
	e.colors = append([]g3d.RGBA(nil), colors...)
	return nil
}

// VertexColor returns the resolved color of vertex i.
func (e *Entity) VertexColor(i int) g3d.RGBA {
	if e.HasVertexColors() {
		return e.colors[i]
	}
	return e.color
}

// Color returns the uniform color.
func (e *Entity) Color() g3d.RGBA {
	return e.color
}

// SetColor sets the uniform color used when no per-vertex colors are set.
func (e *Entity) SetColor(c g3d.RGBA) {
	e.color = c
}

// Position returns the world translation.
func (e *Entity) Position() g3d.Vec3 {
	return e.position
}

// SetPosition sets the world translation.
func (e *Entity) SetPosition(p g3d.Vec3) {
	e.position = p
}

// Model returns the model matrix (translation only).
func (e *Entity) Model() g3d.Mat4 {
	return g3d.Translate(e.position)
}

// Drawable reports whether the entity has enough vertices to form a polygon.
func (e *Entity) Drawable() bool {
	return len(e.vertices) >= 3
}
