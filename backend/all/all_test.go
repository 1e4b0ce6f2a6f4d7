package all

import (
	"testing"

	"github.com/gogpu/g3d/backend"
)

func TestAllRegistered(t *testing.T) {
	for _, b := range []backend.Backend{backend.OpenGL, backend.Vulkan, backend.DirectX11, backend.DirectX12} {
		if !backend.IsRegistered(b) {
			t.Errorf("IsRegistered(%v) = false", b)
		}
	}
	if got := backend.Default(); got != backend.Vulkan {
		t.Errorf("Default() = %v, want Vulkan", got)
	}
}
