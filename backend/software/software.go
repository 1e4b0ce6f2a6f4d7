// Package software provides the CPU renderer that backs the DirectX11 and
// DirectX12 backends, and that GPU backends fall back to.
//
// Each frame is cleared, rasterized with the raster package, overlaid with
// text and presented to the bound surface.
package software

import (
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/raster"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/surface"
	"github.com/gogpu/g3d/text"
)

func init() {
	backend.Register(backend.DirectX11, func() backend.Renderer { return New(backend.DirectX11.String()) })
	backend.Register(backend.DirectX12, func() backend.Renderer { return New(backend.DirectX12.String()) })
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithFaceCache draws text with fc instead of the shared face cache.
func WithFaceCache(fc *text.FaceCache) Option {
	return func(r *Renderer) {
		r.faces = fc
	}
}

// Renderer is the CPU implementation of backend.Renderer.
type Renderer struct {
	name     string
	faces    *text.FaceCache
	surf     surface.Surface
	target   *raster.Target
	pipeline raster.Pipeline
	text     *text.Compositor
	world    *scene.World
	stats    raster.Stats
	frames   int
}

// New creates an uninitialized renderer reporting name in logs.
func New(name string, opts ...Option) *Renderer {
	r := &Renderer{name: name}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns the display name.
func (r *Renderer) Name() string {
	return r.name
}

// Initialize binds the surface and allocates the back buffer.
func (r *Renderer) Initialize(s surface.Surface, width, height int) error {
	if s == nil {
		return backend.ErrNilSurface
	}
	if r.faces == nil {
		r.faces = text.SharedFaceCache()
	}
	r.surf = s
	r.target = raster.NewTarget(width, height)
	r.text = text.NewCompositor(r.faces)
	g3d.Logger().Info("software: renderer initialized", "backend", r.name, "width", width, "height", height)
	return nil
}

// Resize reallocates the back buffer when the size changes.
func (r *Renderer) Resize(width, height int) {
	if r.target == nil {
		return
	}
	r.target.Resize(width, height)
}

// SetWorld replaces the drawn world.
func (r *Renderer) SetWorld(w *scene.World) {
	r.world = w
}

// Draw renders vp and presents the frame.
func (r *Renderer) Draw(vp *scene.Viewport) {
	if !r.Ready() {
		return
	}

	r.target.Clear(backend.ClearColor)
	r.stats = r.pipeline.DrawWorld(r.target, r.world, vp.View(), vp.Projection())
	r.Finish(vp)
}

// Ready reports whether a frame can be drawn: the renderer is
// initialized and neither the surface nor the back buffer is empty.
func (r *Renderer) Ready() bool {
	if r.surf == nil || r.target == nil || r.target.Empty() {
		return false
	}
	w, h := r.surf.Size()
	return w > 0 && h > 0
}

// Target returns the back buffer, or nil before Initialize.
func (r *Renderer) Target() *raster.Target {
	return r.target
}

// Finish draws the text overlay of vp onto the back buffer and presents
// it. GPU renderers that read their frame back into Target use it to share
// the text and present path.
func (r *Renderer) Finish(vp *scene.Viewport) {
	log := g3d.Logger()
	if err := r.text.Draw(r.target.Pixmap(), vp); err != nil {
		log.Warn("software: text overlay failed", "backend", r.name, "err", err)
	}
	if err := r.surf.Present(r.target.Pixmap()); err != nil {
		log.Warn("software: present failed", "backend", r.name, "err", err)
		return
	}
	r.frames++
	log.Debug("software: frame",
		"backend", r.name,
		"triangles", r.stats.Triangles,
		"fragments", r.stats.Fragments,
		"culled", r.stats.Culled)
}

// SetStats records raster statistics for a frame produced elsewhere.
func (r *Renderer) SetStats(s raster.Stats) {
	r.stats = s
}

// Stats returns the raster statistics of the last frame.
func (r *Renderer) Stats() raster.Stats {
	return r.stats
}

// Frames returns how many frames were presented.
func (r *Renderer) Frames() int {
	return r.frames
}

// Snapshot returns the back buffer holding the last frame.
func (r *Renderer) Snapshot() *g3d.Pixmap {
	if r.target == nil || r.frames == 0 {
		return nil
	}
	return r.target.Pixmap()
}

// Shutdown drops the surface and back buffer.
func (r *Renderer) Shutdown() {
	if r.surf != nil {
		g3d.Logger().Info("software: renderer shut down", "backend", r.name)
	}
	r.surf = nil
	r.target = nil
	r.text = nil
	r.frames = 0
}
