// Package text draws screen-space and world-anchored labels on top of a
// rendered viewport.
//
// A [Font] holds the parsed font bytes twice: once for glyph rasterization
// through golang.org/x/image/font/opentype and once for HarfBuzz shaping
// through go-text/typesetting. Faces are cached by integer pixel height in
// a [FaceCache]; widths come from a [Measurer] that shapes each bidi run.
//
// The [Compositor] turns a viewport's overlays into final draw origins and
// blits them:
//
//	comp := text.NewCompositor(text.NewFaceCache(text.DefaultFont()))
//	if err := comp.Draw(pixmap, viewport); err != nil {
//	    return err
//	}
//
// Every Text's Y is the top of its line box. The baseline is placed
// pixelHeight below it.
package text
