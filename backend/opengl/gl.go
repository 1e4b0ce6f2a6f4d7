package opengl

import (
	"errors"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/raster"
)

// Errors reported by Context.Err, in the spirit of glGetError.
var (
	ErrInvalidOperation = errors.New("opengl: invalid operation")
	ErrInvalidValue     = errors.New("opengl: invalid value")
)

// Primitive is the topology passed to Begin.
type Primitive uint8

// Supported primitives.
const (
	Triangles Primitive = iota
	TriangleFan
)

// MatrixMode selects the matrix LoadMatrix writes.
type MatrixMode uint8

// Matrix modes.
const (
	ModelView MatrixMode = iota
	Projection
)

// ShadeModel selects flat or smooth color interpolation.
type ShadeModel uint8

// Shade models.
const (
	Smooth ShadeModel = iota
	Flat
)

// Clear bits.
const (
	ColorBufferBit = 1 << iota
	DepthBufferBit
)

// Context emulates the subset of fixed-function OpenGL the renderer needs.
// Calls between Begin and End record vertices; End rasterizes them into
// the bound target with the current matrices.
type Context struct {
	target     *raster.Target
	pipeline   raster.Pipeline
	clearColor g3d.RGBA

	mode       MatrixMode
	modelView  g3d.Mat4
	projection g3d.Mat4
	mvp        g3d.Mat4
	shade      ShadeModel

	inBegin   bool
	primitive Primitive
	color     g3d.RGBA
	verts     []raster.Vertex

	stats raster.Stats
	err   error
}

// NewContext creates a context drawing into target.
func NewContext(target *raster.Target) *Context {
	return &Context{
		target:     target,
		clearColor: g3d.Black,
		modelView:  g3d.Identity(),
		projection: g3d.Identity(),
		mvp:        g3d.Identity(),
		color:      g3d.White,
	}
}

// MakeCurrent rebinds the context to another target.
func (c *Context) MakeCurrent(target *raster.Target) {
	c.target = target
}

// Err returns and clears the first recorded error.
func (c *Context) Err() error {
	err := c.err
	c.err = nil
	return err
}

func (c *Context) setErr(err error) {
	if c.err == nil {
		c.err = err
	}
}

// ClearColor sets the color used by Clear.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = g3d.RGBA{R: r, G: g, B: b, A: a}
}

// Clear resets the buffers selected by mask and the frame statistics.
func (c *Context) Clear(mask int) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if mask&ColorBufferBit != 0 {
		c.target.Pixmap().Clear(c.clearColor)
	}
	if mask&DepthBufferBit != 0 {
		c.target.ClearDepth()
	}
	c.stats = raster.Stats{}
}

// MatrixMode selects the matrix LoadMatrix writes.
func (c *Context) MatrixMode(m MatrixMode) {
	c.mode = m
}

// LoadMatrix replaces the current matrix.
func (c *Context) LoadMatrix(m g3d.Mat4) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	if c.mode == Projection {
		c.projection = m
	} else {
		c.modelView = m
	}
	c.mvp = c.projection.Mul(c.modelView)
}

// ShadeModel selects color interpolation for subsequent primitives.
func (c *Context) ShadeModel(s ShadeModel) {
	c.shade = s
}

// Begin starts recording a primitive.
func (c *Context) Begin(p Primitive) {
	if c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.inBegin = true
	c.primitive = p
	c.verts = c.verts[:0]
}

// Color4f sets the current color for subsequent vertices.
func (c *Context) Color4f(r, g, b, a float32) {
	c.color = g3d.RGBA{R: r, G: g, B: b, A: a}
}

// Vertex3f records a vertex with the current color.
func (c *Context) Vertex3f(x, y, z float32) {
	if !c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.verts = append(c.verts, raster.Vertex{
		Pos:   c.mvp.MulPoint(g3d.V3(x, y, z)),
		Color: c.color,
	})
}

// End finishes the primitive and rasterizes it. With flat shading the
// last vertex of each primitive provides the color.
func (c *Context) End() {
	if !c.inBegin {
		c.setErr(ErrInvalidOperation)
		return
	}
	c.inBegin = false

	shading := raster.Smooth
	if c.shade == Flat {
		shading = raster.Flat
	}

	switch c.primitive {
	case Triangles:
		if len(c.verts)%3 != 0 {
			c.setErr(ErrInvalidValue)
		}
		for i := 0; i+2 < len(c.verts); i += 3 {
			tri := c.verts[i : i+3]
			c.draw(tri, shading, tri[2].Color)
		}
	case TriangleFan:
		if len(c.verts) >= 3 {
			c.draw(c.verts, shading, c.verts[len(c.verts)-1].Color)
		}
	}
}

func (c *Context) draw(poly []raster.Vertex, shading raster.Shading, flat g3d.RGBA) {
	if c.pipeline.DrawPolygon(c.target, poly, shading, flat, &c.stats) {
		c.stats.Entities++
	} else {
		c.stats.Culled++
	}
}

// Stats returns the raster statistics since the last Clear.
func (c *Context) Stats() raster.Stats {
	return c.stats
}
