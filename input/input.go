// Package input defines the window-system independent input vocabulary:
// a closed set of scancodes and the events a host window emits.
package input

// Scancode identifies a physical key or mouse button.
type Scancode uint8

// Supported scancodes.
const (
	Unknown Scancode = iota
	Escape
	W
	A
	S
	D
	P
	O
	R
	F
	L
	Up
	Down
	Left
	Right
	Space
	Shift
	Control
	MouseLeft
	MouseRight
	MouseMiddle
)

var scancodeNames = [...]string{
	Unknown:     "Unknown",
	Escape:      "Escape",
	W:           "W",
	A:           "A",
	S:           "S",
	D:           "D",
	P:           "P",
	O:           "O",
	R:           "R",
	F:           "F",
	L:           "L",
	Up:          "Up",
	Down:        "Down",
	Left:        "Left",
	Right:       "Right",
	Space:       "Space",
	Shift:       "Shift",
	Control:     "Control",
	MouseLeft:   "MouseLeft",
	MouseRight:  "MouseRight",
	MouseMiddle: "MouseMiddle",
}

// String returns the scancode name.
func (s Scancode) String() string {
	if int(s) < len(scancodeNames) {
		return scancodeNames[s]
	}
	return "Unknown"
}

// IsMouseButton reports whether s is a mouse button.
func (s Scancode) IsMouseButton() bool {
	return s == MouseLeft || s == MouseRight || s == MouseMiddle
}

// Event is one of KeyPressed, KeyReleased, MouseMoved, MouseButtonPressed,
// MouseButtonReleased or Closed.
type Event interface {
	isEvent()
}

// KeyPressed is emitted when a key goes down.
type KeyPressed struct {
	Code Scancode
}

// KeyReleased is emitted when a key goes up.
type KeyReleased struct {
	Code Scancode
}

// MouseMoved carries the relative motion since the last event and the
// absolute cursor position in window pixels.
type MouseMoved struct {
	DX, DY int
	X, Y   int
}

// MouseButtonPressed is emitted when a mouse button goes down.
type MouseButtonPressed struct {
	Button Scancode
}

// MouseButtonReleased is emitted when a mouse button goes up.
type MouseButtonReleased struct {
	Button Scancode
}

// Closed is emitted when the user asks to close the window.
type Closed struct{}

func (KeyPressed) isEvent()          {}
func (KeyReleased) isEvent()         {}
func (MouseMoved) isEvent()          {}
func (MouseButtonPressed) isEvent()  {}
func (MouseButtonReleased) isEvent() {}
func (Closed) isEvent()              {}
