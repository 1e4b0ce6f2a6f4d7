package main

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/g3d/input"
)

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want input.Scancode
	}{
		{ebiten.KeyW, input.W},
		{ebiten.KeyZ, input.W},
		{ebiten.KeyQ, input.A},
		{ebiten.KeyArrowLeft, input.Left},
		{ebiten.KeyShiftRight, input.Shift},
		{ebiten.KeyF1, input.Unknown},
	}
	for _, tt := range tests {
		if got := translateKey(tt.key); got != tt.want {
			t.Errorf("translateKey(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}

func TestTranslateButton(t *testing.T) {
	if got := translateButton(ebiten.MouseButtonLeft); got != input.MouseLeft {
		t.Errorf("translateButton(left) = %v, want MouseLeft", got)
	}
	if got := translateButton(ebiten.MouseButton4); got != input.Unknown {
		t.Errorf("translateButton(4) = %v, want Unknown", got)
	}
}

func TestQuadrants(t *testing.T) {
	rects := quadrants(101, 50)
	if rects[0].Dx() != 50 || rects[1].Dx() != 51 || rects[2].Dy() != 25 {
		t.Errorf("quadrants(101, 50) = %v", rects)
	}
	if rects[3].Max.X != 101 || rects[3].Max.Y != 50 {
		t.Errorf("bottom-right = %v, want to reach 101x50", rects[3])
	}
}
