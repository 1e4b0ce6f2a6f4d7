package raster

import (
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/scene"
)

// Stats counts the work done for one frame.
type Stats struct {
	Entities   int // entities that produced at least one triangle
	Culled     int // entities fully clipped away
	Triangles  int
	Degenerate int
	Fragments  int // fragments written
	DepthFail  int // fragments rejected by the depth test
}

// Add accumulates the result of one triangle.
func (s *Stats) Add(r TriangleResult) {
	s.Triangles++
	if r.Degenerate {
		s.Degenerate++
	}
	s.Fragments += r.Written
	s.DepthFail += r.Rejected
}

// Pipeline draws polygons and worlds onto a Target. It keeps scratch
// buffers between calls; the zero value is ready to use. A Pipeline is
// not safe for concurrent use.
type Pipeline struct {
	clipper Clipper
	in      []Vertex
	screen  []ScreenVertex
}

// DrawPolygon clips, projects and fills a convex clip-space polygon.
// It reports false when nothing survived clipping.
func (p *Pipeline) DrawPolygon(t *Target, poly []Vertex, shading Shading, flat g3d.RGBA, stats *Stats) bool {
	clipped := p.clipper.Clip(poly)
	if clipped == nil {
		return false
	}
	p.screen = ToScreen(p.screen[:0], clipped, t.Width(), t.Height())
	for _, tri := range FanTriangles(len(p.screen)) {
		r := t.DrawTriangle(p.screen[tri[0]], p.screen[tri[1]], p.screen[tri[2]], shading, flat)
		if stats != nil {
			stats.Add(r)
		}
	}
	return true
}

// DrawEntity transforms e by proj × view × model and draws it.
func (p *Pipeline) DrawEntity(t *Target, e *scene.Entity, viewProj g3d.Mat4, stats *Stats) {
	if !e.Drawable() {
		return
	}
	mvp := viewProj.Mul(e.Model())
	p.in = p.in[:0]
	for i, v := range e.Vertices() {
		p.in = append(p.in, Vertex{Pos: mvp.MulPoint(v), Color: e.VertexColor(i)})
	}

	shading := Flat
	if e.HasVertexColors() {
		shading = Smooth
	}
	drawn := p.DrawPolygon(t, p.in, shading, e.Color(), stats)
	if stats == nil {
		return
	}
	if drawn {
		stats.Entities++
	} else {
		stats.Culled++
	}
}

// DrawWorld draws every entity of w in insertion order. A nil world or an
// empty target draws nothing.
func (p *Pipeline) DrawWorld(t *Target, w *scene.World, view, proj g3d.Mat4) Stats {
	var stats Stats
	if w == nil || t.Empty() {
		return stats
	}
	viewProj := proj.Mul(view)
	for _, e := range w.Entities() {
		p.DrawEntity(t, e, viewProj, &stats)
	}
	return stats
}
