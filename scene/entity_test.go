package scene

import (
	"errors"
	"testing"

	"github.com/gogpu/g3d"
)

func TestNewRectangle(t *testing.T) {
	e := NewRectangle(2, 4)
	want := []g3d.Vec3{
		g3d.V3(-1, -2, 0),
		g3d.V3(1, -2, 0),
		g3d.V3(1, 2, 0),
		g3d.V3(-1, 2, 0),
	}
	got := e.Vertices()
	if len(got) != len(want) {
		t.Fatalf("len(Vertices()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vertices()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if e.Color() != g3d.White {
		t.Errorf("default Color() = %v, want white", e.Color())
	}
}

func TestNewPolygonCopiesInput(t *testing.T) {
	in := []g3d.Vec3{g3d.V3(0, 0, 0), g3d.V3(1, 0, 0), g3d.V3(0, 1, 0)}
	e := NewPolygon(in...)
	in[0] = g3d.V3(9, 9, 9)
	if e.Vertices()[0] != g3d.V3(0, 0, 0) {
		t.Error("NewPolygon() aliases the caller's slice")
	}
}

func TestSetVertexColors(t *testing.T) {
	e := NewTriangle(g3d.V3(0, 0, 0), g3d.V3(1, 0, 0), g3d.V3(0, 1, 0))
	e.SetColor(g3d.Yellow)

	if err := e.SetVertexColors(g3d.Red, g3d.Green); !errors.Is(err, ErrVertexColorCount) {
		t.Fatalf("SetVertexColors(2 colors) error = %v, want ErrVertexColorCount", err)
	}
	if e.HasVertexColors() {
		t.Fatal("rejected colors must leave the entity unchanged")
	}
	if got := e.VertexColor(1); got != g3d.Yellow {
		t.Errorf("VertexColor(1) = %v, want uniform yellow", got)
	}

	if err := e.SetVertexColors(g3d.Red, g3d.Green, g3d.Blue); err != nil {
		t.Fatalf("SetVertexColors(3 colors) error = %v", err)
	}
	if got := e.VertexColor(2); got != g3d.Blue {
		t.Errorf("VertexColor(2) = %v, want blue", got)
	}

	if err := e.SetVertexColors(); err != nil {
		t.Fatalf("SetVertexColors() error = %v", err)
	}
	if e.HasVertexColors() {
		t.Error("SetVertexColors() with no colors should clear them")
	}
}

func TestEntityModel(t *testing.T) {
	e := NewRectangle(1, 1)
	e.SetPosition(g3d.V3(0, 0, 2))
	got := e.Model().MulPoint(g3d.V3(0, 0, 0))
	if got != (g3d.Vec4{X: 0, Y: 0, Z: 2, W: 1}) {
		t.Errorf("Model() × origin = %v, want (0,0,2,1)", got)
	}
}

func TestDrawable(t *testing.T) {
	line := NewPolygon(g3d.V3(0, 0, 0), g3d.V3(1, 0, 0))
	if line.Drawable() {
		t.Error("two-vertex polygon reported drawable")
	}
	rect := NewRectangle(1, 1)
	if !rect.Drawable() {
		t.Error("rectangle reported not drawable")
	}
}
