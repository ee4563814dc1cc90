package btxt

import "image/color"

// GlyphStyle groups the properties that determine the size and color
// of laid out text. See [Renderer.SetStyle]().
type GlyphStyle struct {
	PixelHeight float32 // height of the glyph quads, must be > 0
	LateralMargin float32 // extra space on the right of each glyph quad
	Color color.RGBA
}

// Returns the width of the glyph quads without the lateral margin,
// which is always half the pixel height.
func (self GlyphStyle) GlyphWidth() float32 {
	return self.PixelHeight/2
}
