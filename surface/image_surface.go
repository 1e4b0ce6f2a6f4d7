// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/gpucontext"
	"golang.org/x/image/draw"

	"github.com/gogpu/g3d"
)

// ImageSurface presents frames into a rectangle of an *image.RGBA.
//
// Several ImageSurfaces can share one parent image, each owning a
// disjoint rectangle, which is how one host window shows several renderers.
type ImageSurface struct {
	img      *image.RGBA
	rect     image.Rectangle
	provider gpucontext.DeviceProvider
	presents int
	closed   bool
}

// Option configures an ImageSurface.
type Option func(*ImageSurface)

// WithDeviceProvider attaches a GPU device renderers may share.
func WithDeviceProvider(p gpucontext.DeviceProvider) Option {
	return func(s *ImageSurface) {
		s.provider = p
	}
}

// NewImageSurface creates a surface backed by its own width×height image.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	r := image.Rect(0, 0, max(width, 0), max(height, 0))
	return NewSubSurface(image.NewRGBA(r), r, opts...)
}

// NewSubSurface creates a surface presenting into rect of parent. The
// rectangle is clipped to the parent bounds.
func NewSubSurface(parent *image.RGBA, rect image.Rectangle, opts ...Option) *ImageSurface {
	s := &ImageSurface{img: parent, rect: rect.Intersect(parent.Bounds())}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the rectangle size.
func (s *ImageSurface) Size() (width, height int) {
	return s.rect.Dx(), s.rect.Dy()
}

// Rect returns the rectangle inside the parent image.
func (s *ImageSurface) Rect() image.Rectangle {
	return s.rect
}

// SetRect moves or resizes the rectangle, e.g. after the host window was
// resized. It is clipped to the parent bounds.
func (s *ImageSurface) SetRect(r image.Rectangle) {
	s.rect = r.Intersect(s.img.Bounds())
}

// SetImage replaces the parent image and keeps the rectangle.
func (s *ImageSurface) SetImage(img *image.RGBA) {
	s.img = img
	s.rect = s.rect.Intersect(img.Bounds())
}

// Image returns the parent image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// DeviceProvider implements DeviceSurface.
func (s *ImageSurface) DeviceProvider() gpucontext.DeviceProvider {
	return s.provider
}

// Present copies frame into the rectangle.
func (s *ImageSurface) Present(frame *g3d.Pixmap) error {
	if s.closed {
		return ErrClosed
	}
	w, h := s.Size()
	if frame.Width() != w || frame.Height() != h {
		return ErrSizeMismatch
	}
	if w == 0 || h == 0 {
		return nil
	}
	draw.Draw(s.img, s.rect, frame.ToImage(), image.Point{}, draw.Src)
	s.presents++
	return nil
}

// Presents returns how many frames have been presented.
func (s *ImageSurface) Presents() int {
	return s.presents
}

// Snapshot returns a copy of the rectangle's current pixels.
func (s *ImageSurface) Snapshot() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, s.rect.Dx(), s.rect.Dy()))
	draw.Draw(out, out.Bounds(), s.img, s.rect.Min, draw.Src)
	return out
}

// Close marks the surface closed. Further presents fail with ErrClosed.
func (s *ImageSurface) Close() error {
	s.closed = true
	return nil
}
