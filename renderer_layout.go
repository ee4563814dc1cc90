package btxt

import "unicode/utf8"

// Returns the dimensions of the box that the given text would occupy:
//   width  = numChars*(fontSize/2 + lateralMargin)
//   height = fontSize
// Characters are counted as runes. Characters outside the atlas range
// are still counted; see [Renderer.Layout]() for validation.
func (self *Renderer) Measure(text string) (width, height float32) {
	numChars := float32(utf8.RuneCountInString(text))
	return numChars*(self.style.GlyphWidth() + self.style.LateralMargin), self.style.PixelHeight
}

// Lays out the given text and returns the resulting geometry. The
// text box position depends on the given pixel coordinates and the
// renderer's align, as specified on [Renderer.SetAlign](). Coordinates
// have their origin at the bottom-left of the viewport, y growing up.
//
// If any character is outside the [FirstCode, LastCode] range, a
// [*GlyphRangeError] is returned and no geometry is produced.
//
// Each call allocates new geometry; see [RendererAdvanced.AppendLayout]()
// for a buffer-reusing variant.
func (self *Renderer) Layout(text string, x, y float32) (*Geometry, error) {
	var geometry Geometry
	err := self.appendLayout(&geometry, text, x, y)
	if err != nil { return nil, err }
	return &geometry, nil
}

// Appends the layout for the given text to dst. On error, dst is
// left untouched.
func (self *Renderer) appendLayout(dst *Geometry, text string, x, y float32) error {
	numChars, err := validateText(text)
	if err != nil { return err }

	// apply align
	glyphWidth, margin := self.style.GlyphWidth(), self.style.LateralMargin
	width := float32(numChars)*(glyphWidth + margin)
	dx, dy := self.align.originShift(width, self.style.PixelHeight)
	x, y = x + dx, y + dy

	// emit quads. the quad width includes the margin, but the advance
	// doesn't, so margins widen glyphs rather than spacing them out
	bottom, top := y, y + self.style.PixelHeight
	dst.Positions = growBuffer(dst.Positions, numChars*VerticesPerGlyph)
	dst.TexCoords = growBuffer(dst.TexCoords, numChars*VerticesPerGlyph)
	var index int
	for _, code := range text {
		left := x + float32(index)*glyphWidth
		right := left + glyphWidth + margin
		dst.appendQuad(left, bottom, right, top, lookupGlyphUVs(code))
		index += 1
	}
	return nil
}

// Returns the number of characters in the text, or a *GlyphRangeError
// for the first character that can't be mapped to the atlas.
func validateText(text string) (int, error) {
	var index int
	for _, code := range text {
		if !isCodeInRange(code) {
			return index, &GlyphRangeError{ Index: index, Code: code }
		}
		index += 1
	}
	return index, nil
}
