// Package opengl implements the OpenGL backend as an emulation of the
// fixed-function pipeline: every entity is submitted through
// Begin/Color4f/Vertex3f/End on a [Context], which rasterizes it on the
// CPU with the same rules as the software backend.
package opengl

import (
	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/backend/software"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/surface"
)

func init() {
	backend.Register(backend.OpenGL, func() backend.Renderer { return New() })
}

// Renderer is the OpenGL backend.
type Renderer struct {
	base  *software.Renderer
	ctx   *Context
	world *scene.World
}

// New creates an uninitialized OpenGL renderer.
func New(opts ...software.Option) *Renderer {
	return &Renderer{base: software.New(backend.OpenGL.String(), opts...)}
}

// Name returns "OpenGL".
func (r *Renderer) Name() string {
	return r.base.Name()
}

// Initialize creates the back buffer and the emulated GL context.
func (r *Renderer) Initialize(s surface.Surface, width, height int) error {
	if err := r.base.Initialize(s, width, height); err != nil {
		return err
	}
	r.ctx = NewContext(r.base.Target())
	c := backend.ClearColor
	r.ctx.ClearColor(c.R, c.G, c.B, c.A)
	return nil
}

// Resize resizes the back buffer.
func (r *Renderer) Resize(width, height int) {
	r.base.Resize(width, height)
}

// SetWorld replaces the drawn world.
func (r *Renderer) SetWorld(w *scene.World) {
	r.world = w
}

// Draw submits the world through the emulated GL context and presents.
func (r *Renderer) Draw(vp *scene.Viewport) {
	if r.ctx == nil || !r.base.Ready() {
		return
	}
	t := r.base.Target()

	gl := r.ctx
	gl.MakeCurrent(t)
	gl.Clear(ColorBufferBit | DepthBufferBit)

	gl.MatrixMode(Projection)
	gl.LoadMatrix(vp.Projection())
	gl.MatrixMode(ModelView)

	if r.world != nil {
		view := vp.View()
		for _, e := range r.world.Entities() {
			if !e.Drawable() {
				continue
			}
			gl.LoadMatrix(view.Mul(e.Model()))
			submit(gl, e)
		}
	}
	if err := gl.Err(); err != nil {
		g3d.Logger().Warn("opengl: draw error", "err", err)
	}

	r.base.SetStats(gl.Stats())
	r.base.Finish(vp)
}

func submit(gl *Context, e *scene.Entity) {
	verts := e.Vertices()
	prim := TriangleFan
	if len(verts) == 3 {
		prim = Triangles
	}
	if e.HasVertexColors() {
		gl.ShadeModel(Smooth)
	} else {
		gl.ShadeModel(Flat)
	}

	gl.Begin(prim)
	for i, v := range verts {
		c := e.VertexColor(i)
		gl.Color4f(c.R, c.G, c.B, c.A)
		gl.Vertex3f(v.X, v.Y, v.Z)
	}
	gl.End()
}

// Snapshot returns the last presented frame.
func (r *Renderer) Snapshot() *g3d.Pixmap {
	return r.base.Snapshot()
}

// Shutdown releases the context and back buffer.
func (r *Renderer) Shutdown() {
	r.ctx = nil
	r.base.Shutdown()
}
