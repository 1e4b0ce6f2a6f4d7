// Package g3d is a small real-time 3D renderer that draws one scene through
// several interchangeable graphics backends at once.
//
// # Overview
//
// The root package holds the shared vocabulary: float32 vectors and
// column-major matrices ([Vec3], [Vec4], [Mat4]), the [RGBA] color type and
// the [Pixmap] back buffer every CPU-side backend renders into.
//
// The rest of the engine is split into sub-packages:
//
//   - scene: entities, worlds, viewports and text overlays
//   - camera: free-look camera driving one or more viewports
//   - raster: clip-space triangle rasterizer with depth buffer
//   - text: font faces, shaping-based measurement and text compositing
//   - backend: the Renderer interface and backend registry
//   - backend/software, backend/opengl, backend/vulkan: renderer implementations
//   - window: host window contract and RenderWindow (backend hot-swap)
//   - stats: FPS counter and per-backend render timing
//   - config: application configuration (TOML file + environment)
//
// # Quick Start
//
//	world := scene.NewWorld()
//	world.AddEntity(scene.NewTriangle(
//	    g3d.V3(-1, 0, 0), g3d.V3(1, 0, 0), g3d.V3(0, 0, 1)))
//
//	vp := scene.NewViewport(800, 600)
//	vp.SetWorld(world)
//	cam := camera.New(g3d.V3(0, -5, 0.5), g3d.V3(0, 0, 0.5))
//	cam.AddViewport(vp)
//
//	r, _ := backend.New(backend.DirectX12)
//	_ = r.Initialize(surface.NewImageSurface(800, 600), 800, 600)
//	r.SetWorld(world)
//	r.Draw(vp)
//
// # Coordinate System
//
// World space is right-handed with +Z up. Projection follows the OpenGL
// convention: NDC x, y and z all span [-1, 1]; screen y grows downward.
//
// # Logging
//
// g3d is silent by default. Use [SetLogger] to route diagnostics from every
// sub-package into a [log/slog] logger.
package g3d
