package opengl

import (
	"errors"
	"testing"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/raster"
)

func TestBeginEndErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func(gl *Context)
		want error
	}{
		{"vertex outside begin", func(gl *Context) { gl.Vertex3f(0, 0, 0) }, ErrInvalidOperation},
		{"end without begin", func(gl *Context) { gl.End() }, ErrInvalidOperation},
		{"nested begin", func(gl *Context) { gl.Begin(Triangles); gl.Begin(Triangles) }, ErrInvalidOperation},
		{"clear inside begin", func(gl *Context) { gl.Begin(TriangleFan); gl.Clear(ColorBufferBit) }, ErrInvalidOperation},
		{"load inside begin", func(gl *Context) { gl.Begin(TriangleFan); gl.LoadMatrix(g3d.Identity()) }, ErrInvalidOperation},
		{"partial triangle", func(gl *Context) {
			gl.Begin(Triangles)
			gl.Vertex3f(0, 0, 0)
			gl.Vertex3f(1, 0, 0)
			gl.End()
		}, ErrInvalidValue},
		{"ok", func(gl *Context) { gl.Begin(TriangleFan); gl.End() }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gl := NewContext(raster.NewTarget(8, 8))
			tt.run(gl)
			if err := gl.Err(); !errors.Is(err, tt.want) {
				t.Errorf("Err() = %v, want %v", err, tt.want)
			}
			if err := gl.Err(); err != nil {
				t.Errorf("second Err() = %v, want nil", err)
			}
		})
	}
}

func TestClear(t *testing.T) {
	target := raster.NewTarget(4, 4)
	gl := NewContext(target)
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(ColorBufferBit)
	if got := target.Pixmap().GetPixel(2, 2); got != g3d.Red {
		t.Errorf("pixel = %v, want red", got)
	}

	gl.ClearColor(0, 0, 1, 1)
	gl.Clear(DepthBufferBit)
	if got := target.Pixmap().GetPixel(2, 2); got != g3d.Red {
		t.Errorf("depth-only clear changed color to %v", got)
	}
	if d := target.Depth(2, 2); d < 1 {
		t.Errorf("Depth() = %v, want cleared", d)
	}
}

func TestFanCoversQuad(t *testing.T) {
	target := raster.NewTarget(16, 16)
	gl := NewContext(target)
	gl.Clear(ColorBufferBit | DepthBufferBit)
	gl.ShadeModel(Flat)

	gl.Begin(TriangleFan)
	gl.Color4f(0, 1, 0, 1)
	gl.Vertex3f(-0.5, -0.5, 0)
	gl.Vertex3f(0.5, -0.5, 0)
	gl.Vertex3f(0.5, 0.5, 0)
	gl.Vertex3f(-0.5, 0.5, 0)
	gl.End()

	if err := gl.Err(); err != nil {
		t.Fatal(err)
	}
	px := target.Pixmap()
	if got := px.GetPixel(8, 8); got != g3d.Green {
		t.Errorf("center = %v, want green", got)
	}
	if got := px.GetPixel(1, 1); got != g3d.Black {
		t.Errorf("corner = %v, want black", got)
	}
	if s := gl.Stats(); s.Entities != 1 || s.Triangles != 2 {
		t.Errorf("Stats() = %+v, want 1 entity, 2 triangles", s)
	}
}

func TestTrianglesBatch(t *testing.T) {
	gl := NewContext(raster.NewTarget(16, 16))
	gl.Begin(Triangles)
	for range 2 {
		gl.Vertex3f(-1, -1, 0)
		gl.Vertex3f(1, -1, 0)
		gl.Vertex3f(0, 1, 0)
	}
	gl.End()
	if s := gl.Stats(); s.Triangles != 2 {
		t.Errorf("Triangles = %d, want 2", s.Triangles)
	}
}

func TestModelViewCulls(t *testing.T) {
	gl := NewContext(raster.NewTarget(16, 16))
	gl.MatrixMode(ModelView)
	gl.LoadMatrix(g3d.Translate(g3d.V3(10, 0, 0)))
	gl.Begin(TriangleFan)
	gl.Vertex3f(-0.5, -0.5, 0)
	gl.Vertex3f(0.5, -0.5, 0)
	gl.Vertex3f(0, 0.5, 0)
	gl.End()
	if s := gl.Stats(); s.Culled != 1 || s.Fragments != 0 {
		t.Errorf("Stats() = %+v, want culled", s)
	}
}
