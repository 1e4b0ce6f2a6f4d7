package backend

import (
	"slices"
	"sync"

	"github.com/gogpu/g3d"
)

// Factory creates a new, uninitialized renderer.
type Factory func() Renderer

var (
	registryMu sync.RWMutex
	factories  = make(map[Backend]Factory)

	// Priority order for Default (first registered wins).
	priority = []Backend{Vulkan, OpenGL, DirectX12, DirectX11}
)

// Register registers a renderer factory for b. It is typically called from
// init() in backend packages. A later registration replaces an earlier one.
// Registering None is ignored.
func Register(b Backend, f Factory) {
	if b == None || f == nil {
		return
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[b] = f
}

// Unregister removes the factory for b. This is useful for testing.
func Unregister(b Backend) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, b)
}

// Available returns the registered backends in ascending order.
func Available() []Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Backend, 0, len(factories))
	for b := range factories {
		out = append(out, b)
	}
	slices.Sort(out)
	return out
}

// IsRegistered reports whether a factory is registered for b.
func IsRegistered(b Backend) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[b]
	return ok
}

// New creates a renderer for b. None and unregistered backends return
// ErrBackendNotAvailable.
func New(b Backend) (Renderer, error) {
	registryMu.RLock()
	f, ok := factories[b]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrBackendNotAvailable
	}
	r := f()
	if r == nil {
		return nil, ErrBackendNotAvailable
	}
	g3d.Logger().Debug("backend: renderer created", "backend", b.String())
	return r, nil
}

// Default returns the highest priority registered backend, or None.
func Default() Backend {
	registryMu.RLock()
	defer registryMu.RUnlock()
	for _, b := range priority {
		if _, ok := factories[b]; ok {
			return b
		}
	}
	return None
}
