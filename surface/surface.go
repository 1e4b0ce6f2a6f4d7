// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/g3d"
)

// Sentinel errors for surface operations.
var (
	// ErrClosed is returned when presenting to a closed surface.
	ErrClosed = errors.New("surface: closed")

	// ErrSizeMismatch is returned when a frame does not match the surface size.
	ErrSizeMismatch = errors.New("surface: frame size does not match surface")
)

// Surface is the presentation target handed to a renderer.
type Surface interface {
	// Size returns the drawable size in pixels. A zero dimension means
	// there is nothing to draw into.
	Size() (width, height int)

	// Present copies a finished frame to the surface. The frame must have
	// exactly the surface size.
	Present(frame *g3d.Pixmap) error
}

// DeviceSurface is a Surface backed by a GPU device the renderer may share.
type DeviceSurface interface {
	Surface

	// DeviceProvider returns the host's device, or nil if none is available.
	DeviceProvider() gpucontext.DeviceProvider
}

// ProviderOf returns the device provider of s, or nil.
func ProviderOf(s Surface) gpucontext.DeviceProvider {
	if ds, ok := s.(DeviceSurface); ok {
		return ds.DeviceProvider()
	}
	return nil
}
