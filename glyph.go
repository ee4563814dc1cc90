package btxt

import "github.com/tinne26/btxt/atlas"

// Glyph UVs start slightly below the top edge of the atlas (0.995, not
// 1.0) to avoid bleeding from neighbouring cells. Existing atlases are
// tuned for this value.
const uvTopEdge float32 = 0.995
const uvCellHeight float32 = 0.995/atlas.GridSize

// Glyphs only occupy the left half of their cell.
const uvGlyphWidth float32 = 0.5/atlas.GridSize

type glyphUVs struct {
	left, right float32
	top, bottom float32
}

func (self glyphUVs) UpLeft() [2]float32 { return [2]float32{self.left, self.top} }
func (self glyphUVs) UpRight() [2]float32 { return [2]float32{self.right, self.top} }
func (self glyphUVs) DownLeft() [2]float32 { return [2]float32{self.left, self.bottom} }
func (self glyphUVs) DownRight() [2]float32 { return [2]float32{self.right, self.bottom} }

func isCodeInRange(code rune) bool {
	return code >= FirstCode && code <= LastCode
}

// Precondition: isCodeInRange(code).
//
// Rows are relative to FirstCode, but columns use the raw character
// code. Both give the same column while FirstCode is a multiple of the
// grid size.
func glyphCell(code rune) (row, col int) {
	return int(code - FirstCode)/atlas.GridSize, int(code) % atlas.GridSize
}

// Precondition: isCodeInRange(code).
//
// Cell rows go from the top of the atlas bitmap downwards, but UVs have
// their origin at the bottom edge, so the v axis is flipped here.
func lookupGlyphUVs(code rune) glyphUVs {
	row, col := glyphCell(code)
	u := float32(col)/atlas.GridSize
	v := float32(row)/atlas.GridSize
	return glyphUVs{
		left: u,
		right: u + uvGlyphWidth,
		top: uvTopEdge - v,
		bottom: uvTopEdge - (v + uvCellHeight),
	}
}
