package main

import (
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/scene"
)

// buildWorld creates the demo scene: a color-interpolated triangle
// standing on a floor of flat tiles, with a few labels in world space.
func buildWorld() *scene.World {
	w := scene.NewWorld()

	tri := scene.NewTriangle(g3d.V3(-1, 0, 0), g3d.V3(1, 0, 0), g3d.V3(0, 0, 1.6))
	_ = tri.SetVertexColors(g3d.Red, g3d.Green, g3d.Blue)
	w.AddEntity(tri)

	tiles := []g3d.RGBA{g3d.RGB(0.25, 0.25, 0.3), g3d.RGB(0.4, 0.4, 0.45)}
	for x := -3; x < 3; x++ {
		for y := -3; y < 3; y++ {
			tile := scene.NewRectangle(1, 1)
			tile.SetColor(tiles[(x+y)&1])
			tile.SetPosition(g3d.V3(float32(x)+0.5, float32(y)+0.5, 0))
			w.AddEntity(tile)
		}
	}

	quad := scene.NewPolygon(
		g3d.V3(-0.5, 0, -0.5), g3d.V3(0.5, 0, -0.5),
		g3d.V3(0.7, 0, 0), g3d.V3(0.5, 0, 0.5),
		g3d.V3(-0.5, 0, 0.5),
	)
	quad.SetColor(g3d.Yellow)
	quad.SetPosition(g3d.V3(2, 1.5, 0.8))
	w.AddEntity(quad)

	w.AddFloatingText(scene.NewFloatingText("origin", g3d.V3(0, 0, 0)))
	w.AddFloatingText(scene.NewFloatingText("pentagon", g3d.V3(2, 1.5, 1.5)))
	return w
}
