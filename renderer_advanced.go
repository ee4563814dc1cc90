package btxt

import "github.com/tinne26/btxt/internal"

// This type exists only for documentation and structuring purposes,
// acting as a [gateway] to advanced renderer functions that most users
// rarely need to touch.
//
// In general, this type is used through method chaining:
//   err := renderer.Advanced().AppendLayout(&geometry, text, x, y)
//
// [gateway]: https://pkg.go.dev/github.com/tinne26/btxt#Renderer
type RendererAdvanced Renderer

// Like [Renderer.Layout](), but appending the vertices to the given
// geometry instead of allocating a new one. Call [Geometry.Reset]()
// first to reuse a buffer across frames.
//
// On error, dst is left untouched.
func (self *RendererAdvanced) AppendLayout(dst *Geometry, text string, x, y float32) error {
	if dst == nil { panic("nil geometry") }
	return (*Renderer)(self).appendLayout(dst, text, x, y)
}

// Returns the atlas grid cell for the given character code. Rows
// are counted from the top of the atlas bitmap.
func (self *RendererAdvanced) GlyphCell(code rune) (row, col int, err error) {
	if !isCodeInRange(code) {
		return 0, 0, &GlyphRangeError{ Index: -1, Code: code }
	}
	row, col = glyphCell(code)
	return row, col, nil
}

// Returns the texture coordinates used for the given character code,
// in (upLeft, upRight, downRight, downLeft) order.
func (self *RendererAdvanced) GlyphUVs(code rune) ([4][2]float32, error) {
	if !isCodeInRange(code) {
		return [4][2]float32{}, &GlyphRangeError{ Index: -1, Code: code }
	}
	uvs := lookupGlyphUVs(code)
	return [4][2]float32{ uvs.UpLeft(), uvs.UpRight(), uvs.DownRight(), uvs.DownLeft() }, nil
}

// Returns the current color as premultiplied RGBA values in [0, 1],
// which is the usual format for shader uniforms and vertex colors.
func (self *RendererAdvanced) ColorF32() [4]float32 {
	return internal.RGBAToFloat32(self.style.Color)
}

