package vulkan

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/raster"
	"github.com/gogpu/g3d/scene"
)

// vertexStride is the byte size of one vertex:
//
//	position (vec4<f32>, clip space) = 16 bytes (location 0)
//	color    (vec4<f32>)             = 16 bytes (location 1)
const vertexStride = 32

// vertexBuilder turns a world into a triangle list. It keeps its buffers
// between frames.
type vertexBuilder struct {
	data  []byte
	count uint32
	stats raster.Stats
}

// build encodes every drawable entity of w with proj × view × model.
// Clip-space z is remapped from [-w, w] to [0, w] for the GPU depth range.
func (b *vertexBuilder) build(w *scene.World, view, proj g3d.Mat4) []byte {
	b.data = b.data[:0]
	b.count = 0
	b.stats = raster.Stats{}
	if w == nil {
		return nil
	}

	viewProj := proj.Mul(view)
	for _, e := range w.Entities() {
		if !e.Drawable() {
			continue
		}
		mvp := viewProj.Mul(e.Model())
		verts := e.Vertices()
		smooth := e.HasVertexColors()
		tris := raster.FanTriangles(len(verts))
		for _, tri := range tris {
			for _, i := range tri {
				c := e.Color()
				if smooth {
					c = e.VertexColor(i)
				}
				b.put(mvp.MulPoint(verts[i]), c)
			}
		}
		b.stats.Entities++
		b.stats.Triangles += len(tris)
	}
	return b.data
}

func (b *vertexBuilder) put(p g3d.Vec4, c g3d.RGBA) {
	var v [vertexStride]byte
	z := (p.Z + p.W) * 0.5
	for i, f := range [8]float32{p.X, p.Y, z, p.W, c.R, c.G, c.B, c.A} {
		binary.LittleEndian.PutUint32(v[i*4:], math.Float32bits(f))
	}
	b.data = append(b.data, v[:]...)
	b.count++
}

// bgraToRGBA converts tightly packed BGRA rows into dst.
func bgraToRGBA(dst, src []byte) {
	for i := 0; i+3 < len(src) && i+3 < len(dst); i += 4 {
		dst[i+0] = src[i+2]
		dst[i+1] = src[i+1]
		dst[i+2] = src[i+0]
		dst[i+3] = src[i+3]
	}
}
