package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d/input"
)

// keymap translates host keys into scancodes. Z and Q alias W and A for
// AZERTY keyboards.
var keymap = map[ebiten.Key]input.Scancode{
	ebiten.KeyEscape:       input.Escape,
	ebiten.KeyW:            input.W,
	ebiten.KeyZ:            input.W,
	ebiten.KeyA:            input.A,
	ebiten.KeyQ:            input.A,
	ebiten.KeyS:            input.S,
	ebiten.KeyD:            input.D,
	ebiten.KeyP:            input.P,
	ebiten.KeyO:            input.O,
	ebiten.KeyR:            input.R,
	ebiten.KeyF:            input.F,
	ebiten.KeyL:            input.L,
	ebiten.KeyArrowUp:      input.Up,
	ebiten.KeyArrowDown:    input.Down,
	ebiten.KeyArrowLeft:    input.Left,
	ebiten.KeyArrowRight:   input.Right,
	ebiten.KeySpace:        input.Space,
	ebiten.KeyShiftLeft:    input.Shift,
	ebiten.KeyShiftRight:   input.Shift,
	ebiten.KeyControlLeft:  input.Control,
	ebiten.KeyControlRight: input.Control,
}

var buttonmap = map[ebiten.MouseButton]input.Scancode{
	ebiten.MouseButtonLeft:   input.MouseLeft,
	ebiten.MouseButtonRight:  input.MouseRight,
	ebiten.MouseButtonMiddle: input.MouseMiddle,
}

// translateKey returns the scancode for k, or input.Unknown.
func translateKey(k ebiten.Key) input.Scancode {
	if code, ok := keymap[k]; ok {
		return code
	}
	return input.Unknown
}

// translateButton returns the scancode for b, or input.Unknown.
func translateButton(b ebiten.MouseButton) input.Scancode {
	if code, ok := buttonmap[b]; ok {
		return code
	}
	return input.Unknown
}
