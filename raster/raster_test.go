package raster

import (
	"testing"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/camera"
	"github.com/gogpu/g3d/scene"
)

func TestFanTriangles(t *testing.T) {
	tests := []struct {
		n    int
		want [][3]int
	}{
		{2, nil},
		{3, [][3]int{{0, 1, 2}}},
		{4, [][3]int{{0, 1, 2}, {0, 2, 3}}},
		{5, [][3]int{{0, 1, 2}, {0, 2, 3}, {0, 3, 4}}},
	}
	for _, tt := range tests {
		got := FanTriangles(tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("FanTriangles(%d) = %v, want %v", tt.n, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("FanTriangles(%d)[%d] = %v, want %v", tt.n, i, got[i], tt.want[i])
			}
		}
	}
}

func TestTargetResizeIdempotent(t *testing.T) {
	tg := NewTarget(32, 16)
	pix := &tg.Pixmap().Data()[0]
	depth := &tg.depth[0]
	tg.Resize(32, 16)
	if &tg.Pixmap().Data()[0] != pix || &tg.depth[0] != depth {
		t.Error("Resize() to the same size reallocated buffers")
	}
	tg.Resize(8, 8)
	if tg.Width() != 8 || tg.Height() != 8 || len(tg.depth) != 64 {
		t.Errorf("Resize(8,8) = %dx%d depth %d", tg.Width(), tg.Height(), len(tg.depth))
	}
}

func TestTargetClear(t *testing.T) {
	tg := NewTarget(4, 4)
	tg.Clear(g3d.Black)
	if got := tg.Depth(2, 2); got != 1 {
		t.Errorf("Depth() after Clear = %v, want 1", got)
	}
	if got := tg.Pixmap().GetPixel(0, 0); got != g3d.Black {
		t.Errorf("pixel after Clear = %v, want opaque black", got)
	}
}

func screenTri(z float32) (ScreenVertex, ScreenVertex, ScreenVertex) {
	return ScreenVertex{X: 0, Y: 0, Depth: z},
		ScreenVertex{X: 16, Y: 0, Depth: z},
		ScreenVertex{X: 0, Y: 16, Depth: z}
}

func TestDrawTriangleStrictDepth(t *testing.T) {
	tg := NewTarget(16, 16)
	tg.Clear(g3d.Black)

	a, b, c := screenTri(0.5)
	first := tg.DrawTriangle(a, b, c, Flat, g3d.Red)
	if first.Written == 0 {
		t.Fatal("first triangle wrote no fragments")
	}

	// Equal depth never passes.
	second := tg.DrawTriangle(a, b, c, Flat, g3d.Green)
	if second.Written != 0 || second.Rejected != first.Written {
		t.Errorf("equal depth: written %d rejected %d, want 0 and %d", second.Written, second.Rejected, first.Written)
	}
	if got := tg.Pixmap().GetPixel(1, 1); got != g3d.Red {
		t.Errorf("pixel after equal-depth draw = %v, want red", got)
	}

	// Farther loses, nearer wins.
	a, b, c = screenTri(0.7)
	if r := tg.DrawTriangle(a, b, c, Flat, g3d.Blue); r.Written != 0 {
		t.Errorf("farther triangle wrote %d fragments", r.Written)
	}
	a, b, c = screenTri(0.2)
	tg.DrawTriangle(a, b, c, Flat, g3d.Blue)
	if got := tg.Pixmap().GetPixel(1, 1); got != g3d.Blue {
		t.Errorf("pixel after nearer draw = %v, want blue", got)
	}
}

func TestDrawTriangleWindingAndDegenerate(t *testing.T) {
	tg := NewTarget(16, 16)
	tg.Clear(g3d.Black)
	a, b, c := screenTri(0.5)
	ccw := tg.DrawTriangle(a, b, c, Flat, g3d.Red)

	tg.Clear(g3d.Black)
	cw := tg.DrawTriangle(a, c, b, Flat, g3d.Red)
	if ccw.Written != cw.Written || cw.Written == 0 {
		t.Errorf("winding changed coverage: %d vs %d", ccw.Written, cw.Written)
	}

	line := tg.DrawTriangle(
		ScreenVertex{X: 0, Y: 0}, ScreenVertex{X: 5, Y: 5}, ScreenVertex{X: 10, Y: 10}, Flat, g3d.Red)
	if !line.Degenerate || line.Written != 0 {
		t.Errorf("collinear triangle = %+v, want degenerate", line)
	}
}

func TestDrawTriangleEmptyTarget(t *testing.T) {
	tg := NewTarget(0, 0)
	a, b, c := screenTri(0.5)
	if r := tg.DrawTriangle(a, b, c, Flat, g3d.Red); r.Written != 0 {
		t.Errorf("empty target wrote %d fragments", r.Written)
	}
}

func TestProjectCenter(t *testing.T) {
	view := g3d.LookAt(g3d.V3(0, -5, 0), g3d.V3(0, 0, 0), g3d.V3(0, 0, 1))
	proj := g3d.Perspective(g3d.Radians(60), 640.0/480.0, 0.1, 1000)

	x, y, ok := Project(g3d.V3(0, 0, 0), view, proj, 640, 480)
	if !ok || x != 320 || y != 240 {
		t.Errorf("Project(target) = (%d, %d, %v), want (320, 240, true)", x, y, ok)
	}

	if _, _, ok := Project(g3d.V3(0, -10, 0), view, proj, 640, 480); ok {
		t.Error("Project(point behind eye) ok = true, want false")
	}
	if _, _, ok := Project(g3d.V3(0, 2000, 0), view, proj, 640, 480); ok {
		t.Error("Project(point beyond far) ok = true, want false")
	}
}

func TestDrawWorldRGBTriangle(t *testing.T) {
	w := scene.NewWorld()
	tri := scene.NewTriangle(g3d.V3(-1, -1, 0), g3d.V3(1, -1, 0), g3d.V3(0, 1, 0))
	if err := tri.SetVertexColors(g3d.Red, g3d.Green, g3d.Blue); err != nil {
		t.Fatal(err)
	}
	w.AddEntity(tri)

	tg := NewTarget(64, 64)
	tg.Clear(g3d.Black)
	var p Pipeline
	stats := p.DrawWorld(tg, w, g3d.Identity(), g3d.Identity())
	if stats.Entities != 1 || stats.Triangles != 1 || stats.Fragments == 0 {
		t.Fatalf("stats = %+v", stats)
	}

	center := tg.Pixmap().GetPixel(32, 32)
	if center.R <= 0 || center.G <= 0 || center.B <= 0 {
		t.Errorf("center pixel = %v, want a blend of all three channels", center)
	}

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			c := tg.Pixmap().GetPixel(x, y)
			if c == g3d.Black {
				continue
			}
			if sum := c.R + c.G + c.B; sum < 0.98 || sum > 1.02 {
				t.Fatalf("pixel (%d,%d) = %v, channel sum %v outside the RGB gamut", x, y, c, sum)
			}
		}
	}
}

func rgbTriangleWorld(t *testing.T) *scene.World {
	t.Helper()
	w := scene.NewWorld()
	tri := scene.NewTriangle(g3d.V3(0, 0, 0), g3d.V3(5, 0, 0), g3d.V3(0, 0, 5))
	if err := tri.SetVertexColors(g3d.Red, g3d.Green, g3d.Blue); err != nil {
		t.Fatal(err)
	}
	w.AddEntity(tri)
	return w
}

func TestDrawWorldRGBTriangleFacingCamera(t *testing.T) {
	const width, height = 800, 600
	w := rgbTriangleWorld(t)
	vp := scene.NewViewport(width, height)
	camera.New(g3d.V3(0, -30, 0), g3d.V3(0, 0, 0)).AddViewport(vp)
	view, proj := vp.View(), vp.Projection()

	tg := NewTarget(width, height)
	tg.Clear(g3d.Black)
	var p Pipeline
	stats := p.DrawWorld(tg, w, view, proj)
	if stats.Triangles != 1 || stats.Degenerate != 0 || stats.Fragments == 0 {
		t.Fatalf("stats = %+v, want one filled triangle", stats)
	}

	cx, cy, ok := Project(g3d.V3(5.0/3, 0, 5.0/3), view, proj, width, height)
	if !ok {
		t.Fatal("centroid not visible")
	}
	if c := tg.Pixmap().GetPixel(cx, cy); c == g3d.Black {
		t.Errorf("centroid pixel (%d,%d) not covered", cx, cy)
	}

	lit := 0
	for y := 0; y < height; y++ {
		first, last, count := -1, -1, 0
		for x := 0; x < width; x++ {
			c := tg.Pixmap().GetPixel(x, y)
			if c == g3d.Black {
				continue
			}
			if first < 0 {
				first = x
			}
			last = x
			count++
			for _, ch := range []float32{c.R, c.G, c.B} {
				if ch < 0 || ch > 1 {
					t.Fatalf("pixel (%d,%d) = %v has a channel outside [0,1]", x, y, c)
				}
			}
			if sum := c.R + c.G + c.B; sum < 0.98 || sum > 1.02 {
				t.Fatalf("pixel (%d,%d) = %v, channel sum %v outside the RGB gamut", x, y, c, sum)
			}
		}
		if count > 0 && last-first+1 != count {
			t.Fatalf("row %d has a gap: %d lit pixels in span %d..%d", y, count, first, last)
		}
		lit += count
	}
	if lit != stats.Fragments {
		t.Errorf("lit pixels = %d, want %d fragments", lit, stats.Fragments)
	}
}

func TestDrawWorldRGBTriangleEdgeOn(t *testing.T) {
	// Looking down -Z with +Z up, the y = 0 triangle has no screen area.
	w := rgbTriangleWorld(t)
	vp := scene.NewViewport(800, 600)
	camera.New(g3d.V3(0, 0, 30), g3d.V3(0, 0, 0)).AddViewport(vp)

	tg := NewTarget(800, 600)
	tg.Clear(g3d.Black)
	var p Pipeline
	stats := p.DrawWorld(tg, w, vp.View(), vp.Projection())
	if stats.Fragments != 0 || stats.Degenerate != stats.Triangles {
		t.Errorf("stats = %+v, want only degenerate triangles", stats)
	}
}

func TestDrawWorldRectangleFan(t *testing.T) {
	w := scene.NewWorld()
	rect := scene.NewRectangle(1, 1)
	rect.SetColor(g3d.Green)
	w.AddEntity(rect)

	tg := NewTarget(64, 64)
	tg.Clear(g3d.Black)
	var p Pipeline
	stats := p.DrawWorld(tg, w, g3d.Identity(), g3d.Identity())
	if stats.Triangles != 2 {
		t.Fatalf("Triangles = %d, want 2", stats.Triangles)
	}

	// The rectangle spans pixels 16..47 on both axes.
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			in := x >= 16 && x < 48 && y >= 16 && y < 48
			got := tg.Pixmap().GetPixel(x, y)
			if in && got != g3d.Green {
				t.Fatalf("pixel (%d,%d) = %v, want green (gap)", x, y, got)
			}
			if !in && got != g3d.Black {
				t.Fatalf("pixel (%d,%d) = %v, want black (overdraw)", x, y, got)
			}
		}
	}
}

func TestDrawWorldCulled(t *testing.T) {
	w := scene.NewWorld()
	e := scene.NewRectangle(1, 1)
	e.SetPosition(g3d.V3(0, 0, 5)) // beyond z = w
	w.AddEntity(e)
	w.AddEntity(scene.NewPolygon(g3d.V3(0, 0, 0), g3d.V3(1, 0, 0)))

	tg := NewTarget(8, 8)
	tg.Clear(g3d.Black)
	var p Pipeline
	stats := p.DrawWorld(tg, w, g3d.Identity(), g3d.Identity())
	if stats.Culled != 1 || stats.Entities != 0 || stats.Fragments != 0 {
		t.Errorf("stats = %+v, want one culled entity and nothing drawn", stats)
	}
	if got := p.DrawWorld(tg, nil, g3d.Identity(), g3d.Identity()); got != (Stats{}) {
		t.Errorf("DrawWorld(nil world) = %+v, want zero stats", got)
	}
}
