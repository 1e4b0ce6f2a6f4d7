package scene

import "github.com/gogpu/g3d"

// DefaultPixelHeight is the font height used when a text does not set one.
const DefaultPixelHeight = 16

// Text is a screen-space label. X and Y are the top-left corner of the line
// box in viewport pixels, or the top-right corner when AlignRight is set.
type Text struct {
	Content     string
	X, Y        int
	AlignRight  bool
	PixelHeight int
	Color       g3d.RGBA
}

// NewText creates a white, left-aligned label with the default height.
func NewText(content string, x, y int) Text {
	return Text{
		Content:     content,
		X:           x,
		Y:           y,
		PixelHeight: DefaultPixelHeight,
		Color:       g3d.White,
	}
}

// FloatingText is a label anchored at a world position. Its screen position
// is computed every frame and never stored.
type FloatingText struct {
	Content     string
	Anchor      g3d.Vec3
	PixelHeight int
	Color       g3d.RGBA
}

// NewFloatingText creates a white label anchored at p with the default height.
func NewFloatingText(content string, p g3d.Vec3) FloatingText {
	return FloatingText{
		Content:     content,
		Anchor:      p,
		PixelHeight: DefaultPixelHeight,
		Color:       g3d.White,
	}
}

// Overlay groups texts drawn on top of a viewport.
type Overlay struct {
	texts    []*Text
	floating []*FloatingText
}

// NewOverlay creates an empty overlay.
func NewOverlay() *Overlay {
	return &Overlay{}
}

// AddText stores a copy of t. The returned pointer can be used to update
// the label in place.
func (o *Overlay) AddText(t Text) *Text {
	stored := t
	o.texts = append(o.texts, &stored)
	return &stored
}

// AddFloatingText stores a copy of ft and returns it for in-place updates.
func (o *Overlay) AddFloatingText(ft FloatingText) *FloatingText {
	stored := ft
	o.floating = append(o.floating, &stored)
	return &stored
}

// Texts returns the screen-space texts in insertion order.
func (o *Overlay) Texts() []*Text {
	return o.texts
}

// FloatingTexts returns the world-anchored texts in insertion order.
func (o *Overlay) FloatingTexts() []*FloatingText {
	return o.floating
}

// Clear removes every text.
func (o *Overlay) Clear() {
	o.texts = nil
	o.floating = nil
}
