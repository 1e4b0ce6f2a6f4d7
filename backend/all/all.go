// Package all registers every renderer backend:
//
//	import _ "github.com/gogpu/g3d/backend/all"
package all

import (
	_ "github.com/gogpu/g3d/backend/opengl"   // OpenGL
	_ "github.com/gogpu/g3d/backend/software" // DX11, DX12
	_ "github.com/gogpu/g3d/backend/vulkan"   // Vulkan
)
