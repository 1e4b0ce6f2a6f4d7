package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gogpu/g3d/input"
	"github.com/gogpu/g3d/surface"
)

// host is the single ebiten window. Its frame image is shared by the four
// quadrant surfaces.
type host struct {
	open    bool
	width   int
	height  int
	frame   *image.RGBA
	events  []input.Event
	grabbed bool
	cursorX int
	cursorY int
}

func newHost(width, height int) *host {
	h := &host{open: true}
	h.resize(width, height)
	return h
}

func (h *host) resize(width, height int) {
	h.width, h.height = width, height
	h.frame = image.NewRGBA(image.Rect(0, 0, width, height))
}

// poll collects the input of the current tick.
func (h *host) poll() {
	h.events = h.events[:0]
	if ebiten.IsWindowBeingClosed() {
		h.events = append(h.events, input.Closed{})
	}
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if code := translateKey(k); code != input.Unknown {
			h.events = append(h.events, input.KeyPressed{Code: code})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		if code := translateKey(k); code != input.Unknown {
			h.events = append(h.events, input.KeyReleased{Code: code})
		}
	}
	for b := range buttonmap {
		if inpututil.IsMouseButtonJustPressed(b) {
			h.events = append(h.events, input.MouseButtonPressed{Button: translateButton(b)})
		}
		if inpututil.IsMouseButtonJustReleased(b) {
			h.events = append(h.events, input.MouseButtonReleased{Button: translateButton(b)})
		}
	}
	x, y := ebiten.CursorPosition()
	if dx, dy := x-h.cursorX, y-h.cursorY; dx != 0 || dy != 0 {
		h.events = append(h.events, input.MouseMoved{DX: dx, DY: dy, X: x, Y: y})
	}
	h.cursorX, h.cursorY = x, y
}

func (h *host) setCursorGrabbed(grabbed bool) {
	h.grabbed = grabbed
	if grabbed {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// quadrants splits the window into a 2×2 grid: top-left, top-right,
// bottom-left, bottom-right.
func quadrants(width, height int) [4]image.Rectangle {
	hw, hh := width/2, height/2
	return [4]image.Rectangle{
		image.Rect(0, 0, hw, hh),
		image.Rect(hw, 0, width, hh),
		image.Rect(0, hh, hw, height),
		image.Rect(hw, hh, width, height),
	}
}

// quadWindow is one quadrant of the host window.
type quadWindow struct {
	host  *host
	index int
	surf  *surface.ImageSurface
}

func newQuadWindow(h *host, index int) *quadWindow {
	return &quadWindow{
		host:  h,
		index: index,
		surf:  surface.NewSubSurface(h.frame, quadrants(h.width, h.height)[index]),
	}
}

// sync follows the host frame after a resize.
func (q *quadWindow) sync() {
	if q.surf.Image() != q.host.frame {
		q.surf.SetImage(q.host.frame)
	}
	q.surf.SetRect(quadrants(q.host.width, q.host.height)[q.index])
}

func (q *quadWindow) IsOpen() bool { return q.host.open }
func (q *quadWindow) Close()       { q.host.open = false }

// PollEvents returns the host events to the first quadrant only, so each
// event is handled once.
func (q *quadWindow) PollEvents() []input.Event {
	if q.index != 0 {
		return nil
	}
	return q.host.events
}

func (q *quadWindow) Width() int                    { return q.surf.Rect().Dx() }
func (q *quadWindow) Height() int                   { return q.surf.Rect().Dy() }
func (q *quadWindow) SetCursorGrabbed(grabbed bool) { q.host.setCursorGrabbed(grabbed) }
func (q *quadWindow) CursorGrabbed() bool           { return q.host.grabbed }
func (q *quadWindow) NativeHandle() surface.Surface { return q.surf }
