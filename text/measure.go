package text

import (
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gotext "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// Run is a maximal substring with a single writing direction.
type Run struct {
	Start, End int // rune indices, End exclusive
	RTL        bool
}

// Runs splits s into bidi runs in logical order. A string with no strong
// characters yields a single left-to-right run.
func Runs(s string) []Run {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	whole := []Run{{Start: 0, End: len(runes)}}

	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.LeftToRight)); err != nil {
		return whole
	}
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return whole
	}

	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		start, end := r.Pos() // inclusive rune indices
		runs = append(runs, Run{Start: start, End: end + 1, RTL: r.Direction() == bidi.RightToLeft})
	}
	return runs
}

// Measurer computes advance widths with HarfBuzz shaping, so kerning and
// ligatures are taken into account.
//
// Measurer is safe for concurrent use.
type Measurer struct {
	font *Font
	pool sync.Pool
}

// NewMeasurer creates a measurer for f.
func NewMeasurer(f *Font) *Measurer {
	return &Measurer{
		font: f,
		pool: sync.Pool{New: func() any { return new(shaping.HarfbuzzShaper) }},
	}
}

// Width returns the advance width of s at the given pixel height, rounded
// up to whole pixels.
func (m *Measurer) Width(s string, pixelHeight int) int {
	if s == "" || pixelHeight <= 0 {
		return 0
	}
	runes := []rune(s)
	face := gotext.NewFace(m.font.shapes)

	hb := m.pool.Get().(*shaping.HarfbuzzShaper)
	defer m.pool.Put(hb)

	var total fixed.Int26_6
	for _, run := range Runs(s) {
		dir := di.DirectionLTR
		if run.RTL {
			dir = di.DirectionRTL
		}
		out := hb.Shape(shaping.Input{
			Text:      runes,
			RunStart:  run.Start,
			RunEnd:    run.End,
			Direction: dir,
			Face:      face,
			Size:      fixed.I(pixelHeight),
			Script:    scriptOf(runes[run.Start:run.End]),
			Language:  language.NewLanguage("en"),
		})
		for _, g := range out.Glyphs {
			total += g.Advance
		}
	}
	return total.Ceil()
}

// scriptOf returns the script of the first non-space rune.
func scriptOf(runes []rune) language.Script {
	for _, r := range runes {
		if unicode.IsSpace(r) {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}
