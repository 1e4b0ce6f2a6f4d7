// Package raster is the CPU triangle pipeline shared by the software
// backends: clip-space polygon clipping against the view frustum,
// perspective divide, fan triangulation and edge-function rasterization
// into a color buffer with a depth buffer.
//
// Conventions follow OpenGL: clip coordinates are inside the frustum when
// -w <= x, y, z <= w; NDC is mapped to pixels with y pointing down and to
// depth in [0, 1]. Pixels are sampled at their centers.
//
// Usage:
//
//	target := raster.NewTarget(640, 480)
//	var p raster.Pipeline
//	target.Clear(g3d.Black)
//	stats := p.DrawWorld(target, world, vp.View(), vp.Projection())
package raster
