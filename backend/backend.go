package backend

import (
	"errors"
	"strings"

	"github.com/gogpu/g3d"
	"github.com/gogpu/g3d/scene"
	"github.com/gogpu/g3d/surface"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when no factory is registered for
	// the requested backend.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrNotInitialized is returned when an operation needs Initialize first.
	ErrNotInitialized = errors.New("backend: not initialized")

	// ErrNilSurface is returned by Initialize when no surface is given.
	ErrNilSurface = errors.New("backend: nil surface")

	// ErrUnknownBackend is returned by ParseBackend.
	ErrUnknownBackend = errors.New("backend: unknown backend name")
)

// ClearColor is the color every backend clears its frame to.
var ClearColor = g3d.Black

// Backend identifies a graphics backend.
type Backend uint8

// Supported backends.
const (
	None Backend = iota
	OpenGL
	Vulkan
	DirectX11
	DirectX12
)

// String returns the short display name used in logs and overlays.
func (b Backend) String() string {
	switch b {
	case None:
		return "None"
	case OpenGL:
		return "OpenGL"
	case Vulkan:
		return "Vulkan"
	case DirectX11:
		return "DX11"
	case DirectX12:
		return "DX12"
	}
	return "Unknown"
}

// ParseBackend parses a backend name. It accepts the display names as well
// as "directx11"/"directx12", case-insensitively.
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return None, nil
	case "opengl", "gl":
		return OpenGL, nil
	case "vulkan", "vk":
		return Vulkan, nil
	case "dx11", "directx11", "d3d11":
		return DirectX11, nil
	case "dx12", "directx12", "d3d12":
		return DirectX12, nil
	}
	return None, ErrUnknownBackend
}

// UnmarshalText implements encoding.TextUnmarshaler so backends can be
// read from configuration files and environment variables.
func (b *Backend) UnmarshalText(text []byte) error {
	v, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (b Backend) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Next returns the following drawing backend, wrapping around and
// skipping None.
func (b Backend) Next() Backend {
	if b >= DirectX12 {
		return OpenGL
	}
	return b + 1
}

// Renderer draws a World through a Viewport into a surface.
//
// A Renderer holds one World at a time and never mutates the scene model.
// Calls come from a single goroutine.
type Renderer interface {
	// Initialize binds the renderer to its surface and allocates
	// width×height resources.
	Initialize(s surface.Surface, width, height int) error

	// Resize reallocates size-dependent resources. Resizing to the current
	// size does nothing.
	Resize(width, height int)

	// SetWorld replaces the world drawn by Draw. nil draws an empty scene.
	SetWorld(w *scene.World)

	// Draw renders one frame and presents it. It returns without drawing
	// when no surface is bound or the surface has a zero dimension.
	Draw(vp *scene.Viewport)

	// Shutdown releases every resource. The renderer may be initialized
	// again afterwards.
	Shutdown()
}

// Named is implemented by renderers that report a display name.
type Named interface {
	Name() string
}

// Snapshotter is implemented by renderers that keep their last frame.
type Snapshotter interface {
	// Snapshot returns the last presented frame, or nil before the first.
	Snapshot() *g3d.Pixmap
}

// Failer is implemented by renderers whose Draw can hit fatal device
// errors. Err returns the first such error.
type Failer interface {
	Err() error
}

// NameOf returns the display name of r, or "renderer" when it has none.
func NameOf(r Renderer) string {
	if n, ok := r.(Named); ok {
		return n.Name()
	}
	return "renderer"
}
