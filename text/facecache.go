package text

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/internal/cache"
)

const defaultFaceLimit = 32

// Option configures a FaceCache.
type Option func(*faceConfig)

type faceConfig struct {
	softLimit int
	hinting   font.Hinting
}

// WithSoftLimit sets how many pixel heights stay cached.
func WithSoftLimit(n int) Option {
	return func(c *faceConfig) {
		c.softLimit = n
	}
}

// WithHinting sets the glyph hinting mode. The default is full hinting.
func WithHinting(h font.Hinting) Option {
	return func(c *faceConfig) {
		c.hinting = h
	}
}

type faceEntry struct {
	face font.Face
	err  error
}

// FaceCache holds one rasterization face per pixel height of a Font.
// Faces are created on first use and reused across frames and renderers.
//
// The cache itself is safe for concurrent use, but the returned faces are
// not: draw with them from a single goroutine.
type FaceCache struct {
	font    *Font
	hinting font.Hinting
	faces   *cache.Cache[int, faceEntry]
	newFace func(*opentype.Font, *opentype.FaceOptions) (font.Face, error)
}

// NewFaceCache creates a face cache for f.
func NewFaceCache(f *Font, opts ...Option) *FaceCache {
	cfg := faceConfig{softLimit: defaultFaceLimit, hinting: font.HintingFull}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &FaceCache{
		font:    f,
		hinting: cfg.hinting,
		newFace: opentype.NewFace,
		faces: cache.New(cfg.softLimit, cache.WithEvictFunc(func(_ int, e faceEntry) {
			if e.face != nil {
				_ = e.face.Close()
			}
		})),
	}
}

// Font returns the font the faces are created from.
func (c *FaceCache) Font() *Font {
	return c.font
}

// Face returns the face for the given pixel height. A failed creation is
// not cached; the next call for that height tries again.
func (c *FaceCache) Face(pixelHeight int) (font.Face, error) {
	if pixelHeight <= 0 {
		return nil, ErrInvalidPixelHeight
	}
	e := c.faces.GetOrCreate(pixelHeight, func() faceEntry {
		face, err := c.newFace(c.font.glyphs, &opentype.FaceOptions{
			Size:    float64(pixelHeight),
			DPI:     72,
			Hinting: c.hinting,
		})
		if err != nil {
			return faceEntry{err: err}
		}
		g3d.Logger().Debug("text: face created", "font", c.font.name, "px", pixelHeight)
		return faceEntry{face: face}
	})
	if e.err != nil {
		c.faces.Delete(pixelHeight)
		return nil, e.err
	}
	return e.face, nil
}

// Len returns the number of cached faces.
func (c *FaceCache) Len() int {
	return c.faces.Len()
}

// Stats returns face cache statistics.
func (c *FaceCache) Stats() cache.Stats {
	return c.faces.Stats()
}

// Close releases every cached face.
func (c *FaceCache) Close() {
	c.faces.Clear()
}

var sharedFaces = sync.OnceValue(func() *FaceCache {
	return NewFaceCache(DefaultFont())
})

// SharedFaceCache returns the process-wide face cache for the default font.
// Renderers share it so each pixel height is rasterized once.
func SharedFaceCache() *FaceCache {
	return sharedFaces()
}
