// Package vulkan implements the Vulkan backend on top of the wgpu HAL.
//
// Entities are transformed and fan-triangulated on the CPU, uploaded as a
// triangle list and drawn with a depth-tested pipeline into an offscreen
// BGRA texture. The frame is read back into the software back buffer so
// text overlays and presentation are shared with the other backends.
//
// When no Vulkan device can be opened, or a frame fails on the GPU, the
// renderer logs a warning and continues on the software rasterizer. Err
// reports the failure.
//
// The renderer prefers a device shared by the surface's device provider
// when that provider exposes HAL types:
//
//	type halProvider interface {
//		HalDevice() any
//		HalQueue() any
//	}
package vulkan
