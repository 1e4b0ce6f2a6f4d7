package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	gotext "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Font is a parsed TTF/OTF font. It is immutable and safe for concurrent use.
type Font struct {
	name   string
	data   []byte
	glyphs *opentype.Font // rasterization
	shapes *gotext.Font   // shaping
}

// ParseFont parses TTF or OTF data. The data is copied.
func ParseFont(data []byte) (*Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	buf := append([]byte(nil), data...)

	ot, err := opentype.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	face, err := gotext.ParseTTF(bytes.NewReader(buf))
	if err != nil {
		return nil, fmt.Errorf("text: parse font for shaping: %w", err)
	}

	f := &Font{data: buf, glyphs: ot, shapes: face.Font}
	if name, err := ot.Name(nil, sfnt.NameIDFamily); err == nil {
		f.name = name
	}
	return f, nil
}

// LoadFontFile reads and parses a font file.
func LoadFontFile(path string) (*Font, error) {
	// #nosec G304 -- font path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font file: %w", err)
	}
	return ParseFont(data)
}

// Name returns the font family name, or "" if the font has none.
func (f *Font) Name() string {
	return f.name
}

var defaultFont = sync.OnceValue(func() *Font {
	f, err := ParseFont(goregular.TTF)
	if err != nil {
		panic("text: embedded Go Regular font is invalid: " + err.Error())
	}
	return f
})

// DefaultFont returns the embedded Go Regular font.
func DefaultFont() *Font {
	return defaultFont()
}
