// Package window binds a host window to a viewport and a swappable
// renderer backend.
package window

import (
	"fmt"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/backend"
	"github.com/gogpu/g3d/input"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/surface"
)

// Window is the host window collaborator. Implementations live with the
// host application; the renderer core only reads the size and the native
// surface.
type Window interface {
	IsOpen() bool
	Close()
	PollEvents() []input.Event
	Width() int
	Height() int
	SetCursorGrabbed(grabbed bool)
	CursorGrabbed() bool
	NativeHandle() surface.Surface
}

// Option configures a RenderWindow.
type Option func(*RenderWindow)

// WithResizeFunc is called after the viewport followed a window resize,
// typically to refresh a camera's projection.
func WithResizeFunc(fn func(width, height int)) Option {
	return func(rw *RenderWindow) {
		rw.onResize = fn
	}
}

// WithViewport uses vp instead of a new viewport.
func WithViewport(vp *scene.Viewport) Option {
	return func(rw *RenderWindow) {
		if vp != nil {
			rw.viewport = vp
		}
	}
}

// RenderWindow owns a viewport and the renderer drawing it into a window.
type RenderWindow struct {
	win      Window
	viewport *scene.Viewport
	backend  backend.Backend
	renderer backend.Renderer
	onResize func(width, height int)
}

// New creates a RenderWindow drawing win with backend b.
func New(win Window, b backend.Backend, opts ...Option) *RenderWindow {
	rw := &RenderWindow{win: win}
	for _, opt := range opts {
		opt(rw)
	}
	if rw.viewport == nil {
		rw.viewport = scene.NewViewport(win.Width(), win.Height())
	}
	rw.SetBackend(b)
	return rw
}

// Window returns the host window.
func (rw *RenderWindow) Window() Window {
	return rw.win
}

// Viewport returns the drawn viewport.
func (rw *RenderWindow) Viewport() *scene.Viewport {
	return rw.viewport
}

// Backend returns the active backend.
func (rw *RenderWindow) Backend() backend.Backend {
	return rw.backend
}

// Renderer returns the active renderer, nil for None.
func (rw *RenderWindow) Renderer() backend.Renderer {
	return rw.renderer
}

// SetBackend replaces the renderer with one for b on the same surface.
// It does nothing when b is already active. When b cannot be created or
// initialized the window logs a warning and falls back to None.
func (rw *RenderWindow) SetBackend(b backend.Backend) {
	if b == rw.backend && (rw.renderer != nil || b == backend.None) {
		return
	}
	rw.shutdown()
	rw.backend = backend.None
	if b == backend.None {
		return
	}

	log := g3d.Logger()
	r, err := backend.New(b)
	if err != nil {
		log.Warn("window: backend unavailable, using None", "backend", b.String(), "err", err)
		return
	}
	if err := r.Initialize(rw.win.NativeHandle(), rw.viewport.Width(), rw.viewport.Height()); err != nil {
		log.Warn("window: backend initialization failed, using None", "backend", b.String(), "err", err)
		r.Shutdown()
		return
	}
	r.SetWorld(rw.viewport.World())
	rw.renderer = r
	rw.backend = b
	log.Info("window: backend selected", "backend", b.String())
}

// Display follows the window size, then draws the viewport. It returns a
// renderer's fatal error, if any.
func (rw *RenderWindow) Display() error {
	w, h := rw.win.Width(), rw.win.Height()
	if w != rw.viewport.Width() || h != rw.viewport.Height() {
		rw.viewport.SetSize(w, h)
		if rw.renderer != nil {
			rw.renderer.Resize(w, h)
		}
		if rw.onResize != nil {
			rw.onResize(w, h)
		}
	}
	if rw.renderer == nil {
		return nil
	}

	rw.renderer.SetWorld(rw.viewport.World())
	rw.renderer.Draw(rw.viewport)

	if f, ok := rw.renderer.(backend.Failer); ok {
		if err := f.Err(); err != nil {
			return fmt.Errorf("window: %s: %w", rw.backend, err)
		}
	}
	return nil
}

// Close shuts the renderer down. The host window is left to its owner.
func (rw *RenderWindow) Close() {
	rw.shutdown()
	rw.backend = backend.None
}

func (rw *RenderWindow) shutdown() {
	if rw.renderer != nil {
		rw.renderer.Shutdown()
		rw.renderer = nil
	}
}
