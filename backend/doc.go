// Package backend defines the renderer contract shared by every graphics
// backend and the registry used to create renderers by [Backend] id.
//
// # Backend Registration
//
// Backend packages register a factory from init():
//
//	import _ "github.com/gogpu/g3d/backend/all" // OpenGL, Vulkan, DirectX11/12
//
// # Backend Selection
//
//	r, err := backend.New(backend.Vulkan)
//	if err != nil {
//	    return err
//	}
//	if err := r.Initialize(surf, w, h); err != nil {
//	    return err
//	}
//	defer r.Shutdown()
//
// # Contract
//
// All backends draw the same frame for the same inputs: identical view and
// projection matrices, the same clear color (opaque black) and the same
// pixel-space text placement. Draw never fails visibly: a missing or
// zero-sized surface skips the frame.
package backend
