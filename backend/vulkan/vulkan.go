package vulkan

import (
	"fmt"
	"time"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/backend/software"
	"github.com/gogpu/g3d/raster"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/surface"
	"github.com/gogpu/g3d/text"
)

// DefaultTimeout bounds the wait for one frame.
const DefaultTimeout = 5 * time.Second

func init() {
	backend.Register(backend.Vulkan, func() backend.Renderer { return New() })
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithTimeout sets how long a frame may take on the GPU.
func WithTimeout(d time.Duration) Option {
	return func(r *Renderer) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithOpener replaces the device opener used when the surface does not
// share a device. The default is OpenDefault.
func WithOpener(open Opener) Option {
	return func(r *Renderer) {
		r.open = open
	}
}

// WithFaceCache draws text with fc instead of the shared face cache.
func WithFaceCache(fc *text.FaceCache) Option {
	return func(r *Renderer) {
		r.faceOpts = append(r.faceOpts, software.WithFaceCache(fc))
	}
}

// Renderer is the Vulkan backend.
type Renderer struct {
	base     *software.Renderer
	faceOpts []software.Option
	open     Opener
	timeout  time.Duration

	dev      *Device
	pass     *scenePass
	vertices vertexBuilder
	fallback raster.Pipeline
	world    *scene.World
	reason   error // why the GPU path is off
	err      error // fatal frame error
}

// New creates an uninitialized Vulkan renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{open: OpenDefault, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(r)
	}
	r.base = software.New(backend.Vulkan.String(), r.faceOpts...)
	return r
}

// Name returns "Vulkan".
func (r *Renderer) Name() string {
	return r.base.Name()
}

// Initialize binds the surface and sets up the GPU pipeline. A missing or
// failing device is not an error: the renderer falls back to the software
// rasterizer and reports the cause through FallbackReason.
func (r *Renderer) Initialize(s surface.Surface, width, height int) error {
	if err := r.base.Initialize(s, width, height); err != nil {
		return err
	}
	r.reason, r.err = nil, nil

	dev, shared := sharedDevice(s)
	if !shared {
		var err error
		if dev, err = r.open(); err != nil {
			r.disable(err)
			return nil
		}
	}
	pass, err := newScenePass(dev.Device, dev.Queue)
	if err != nil {
		if dev.Release != nil {
			dev.Release()
		}
		r.disable(err)
		return nil
	}
	r.dev = dev
	r.pass = pass
	g3d.Logger().Info("vulkan: renderer initialized", "shared", shared, "width", width, "height", height)
	return nil
}

// disable records err and switches to the software path.
func (r *Renderer) disable(err error) {
	r.reason = err
	g3d.Logger().Warn("vulkan: falling back to software rendering", "err", err)
	r.release()
}

// FallbackReason returns why frames are drawn on the CPU, or nil while the
// GPU path is active.
func (r *Renderer) FallbackReason() error {
	return r.reason
}

// Err returns the fatal error of a frame that failed on the GPU, or nil.
// The failed frame and all later ones are drawn on the CPU.
func (r *Renderer) Err() error {
	return r.err
}

// GPU reports whether frames are drawn on the GPU.
func (r *Renderer) GPU() bool {
	return r.pass != nil
}

// Resize resizes the back buffer. GPU attachments follow on the next frame.
func (r *Renderer) Resize(width, height int) {
	r.base.Resize(width, height)
}

// SetWorld replaces the drawn world.
func (r *Renderer) SetWorld(w *scene.World) {
	r.world = w
}

// Draw renders vp on the GPU, or on the CPU after a failure, and presents.
func (r *Renderer) Draw(vp *scene.Viewport) {
	if !r.base.Ready() {
		return
	}
	t := r.base.Target()

	if r.pass != nil {
		data := r.vertices.build(r.world, vp.View(), vp.Projection())
		err := r.pass.render(data, r.vertices.count, backend.ClearColor,
			t.Pixmap().Data(), uint32(t.Width()), uint32(t.Height()), r.timeout) //nolint:gosec // target sizes are non-negative
		if err == nil {
			r.base.SetStats(r.vertices.stats)
			r.base.Finish(vp)
			return
		}
		r.err = fmt.Errorf("vulkan: frame failed: %w", err)
		r.disable(r.err)
	}

	t.Clear(backend.ClearColor)
	r.base.SetStats(r.fallback.DrawWorld(t, r.world, vp.View(), vp.Projection()))
	r.base.Finish(vp)
}

// Snapshot returns the last presented frame.
func (r *Renderer) Snapshot() *g3d.Pixmap {
	return r.base.Snapshot()
}

// Stats returns the statistics of the last frame. GPU frames count
// entities and triangles only.
func (r *Renderer) Stats() raster.Stats {
	return r.base.Stats()
}

func (r *Renderer) release() {
	if r.pass != nil {
		r.pass.destroy()
		r.pass = nil
	}
	if r.dev != nil {
		if r.dev.Release != nil {
			r.dev.Release()
		}
		r.dev = nil
	}
}

// Shutdown releases GPU objects, the device when owned, and the back buffer.
func (r *Renderer) Shutdown() {
	r.release()
	r.base.Shutdown()
}
