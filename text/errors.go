package text

import "errors"

// Sentinel errors for the text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrInvalidPixelHeight is returned when a face is requested with a
	// non-positive height.
	ErrInvalidPixelHeight = errors.New("text: pixel height must be positive")
)
