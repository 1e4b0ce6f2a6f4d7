// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface defines the native handle a renderer presents into.
//
// A host window hands each renderer a [Surface]. Renderers draw into their
// own back buffer and call Present once per frame; the surface copies the
// frame to wherever the host shows it. [ImageSurface] is the in-memory
// implementation: a whole image, or a sub-rectangle of a larger image so
// several renderers can share one window.
//
// Surfaces may also expose a GPU device through [DeviceSurface], which lets
// GPU renderers reuse the host's device instead of creating their own.
//
// Surfaces are not thread-safe. Use each from a single goroutine.
package surface
