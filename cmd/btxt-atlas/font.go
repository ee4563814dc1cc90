package main

import "os"
import "fmt"
import "bytes"

import "image"
import "image/color"

import "github.com/tinne26/btxt"
import "github.com/tinne26/btxt/atlas"

import "github.com/tinne26/ggfnt"
import "golang.org/x/image/bmp"

type rasterStats struct {
	mapped int
	missing int
	scale int
}

func parseFont(path string) (*ggfnt.Font, error) {
	file, err := os.Open(path)
	if err != nil { return nil, fmt.Errorf("opening font: %w", err) }
	font, err := ggfnt.Parse(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("parsing font '%s': %w", path, err)
	}
	return font, file.Close()
}

// Rasterizes the font glyphs for all the codes in the atlas range.
func rasterizeFont(font *ggfnt.Font, cellSize int) (*image.RGBA, rasterStats) {
	img := newBlankAtlas(cellSize)
	metrics := font.Metrics()
	glyphWidth := int(metrics.MonoWidth())
	if glyphWidth == 0 { glyphWidth = maxAdvance(font) }
	ascent, descent := int(metrics.Ascent()), int(metrics.Descent())

	var stats rasterStats
	stats.scale = fitScale(cellSize, glyphWidth, ascent + descent)
	settings := ggfnt.NewSettingsCache(font).UnsafeSlice()
	for code := btxt.FirstCode; code <= btxt.LastCode; code++ {
		group, found := font.Mapping().Utf8(code, settings)
		if !found || group.Size() == 0 {
			stats.missing += 1
			continue
		}
		mask := font.Glyphs().RasterizeMask(group.Select(0))
		paintGlyph(img, code, cellSize, mask, stats.scale, ascent)
		stats.mapped += 1
	}
	return img, stats
}

func maxAdvance(font *ggfnt.Font) int {
	var advance uint8
	numGlyphs := font.Glyphs().Count()
	for i := uint16(0); i < numGlyphs; i++ {
		advance = max(advance, font.Glyphs().Advance(ggfnt.GlyphIndex(i)))
	}
	return int(advance)
}

// Returns the largest integer scale at which glyphs of the given
// size fit in the left half of a cell. Never below 1.
func fitScale(cellSize, glyphWidth, glyphHeight int) int {
	scale := 1
	for (scale + 1)*glyphWidth <= cellSize/2 && (scale + 1)*glyphHeight <= cellSize {
		scale += 1
	}
	return scale
}

func newBlankAtlas(cellSize int) *image.RGBA {
	size := cellSize*atlas.GridSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255 // opaque black
	}
	return img
}

// Paints the glyph mask into the cell of the given code. Mask
// bounds are relative to the glyph origin, with the baseline at
// y = 0, so the origin is placed 'ascent' pixels below the cell top.
// Pixels outside the left half of the cell are clipped.
func paintGlyph(img *image.RGBA, code rune, cellSize int, mask *image.Alpha, scale, ascent int) {
	if mask == nil { return } // empty glyph (e.g. space)
	row, col := int(code - btxt.FirstCode)/atlas.GridSize, int(code) % atlas.GridSize
	cellRect := image.Rect(col*cellSize, row*cellSize, col*cellSize + cellSize/2, (row + 1)*cellSize)
	originX, originY := cellRect.Min.X, cellRect.Min.Y + ascent*scale

	bounds := mask.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			value := mask.AlphaAt(x, y).A
			if value == 0 { continue }
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					pt := image.Pt(originX + x*scale + sx, originY + y*scale + sy)
					if !pt.In(cellRect) { continue }
					img.SetRGBA(pt.X, pt.Y, color.RGBA{value, value, value, 255})
				}
			}
		}
	}
}

// Encodes the atlas as a 24-bit bitmap and checks that btxt can
// decode it back with the expected cell size.
func encodeAtlas(img *image.RGBA, cellSize int) ([]byte, error) {
	var buffer bytes.Buffer
	err := bmp.Encode(&buffer, img)
	if err != nil { return nil, fmt.Errorf("encoding atlas: %w", err) }
	data := buffer.Bytes()

	decoded, err := atlas.Decode(data)
	if err != nil { return nil, fmt.Errorf("verifying atlas: %w", err) }
	cellWidth, cellHeight := decoded.CellSize()
	if cellWidth != cellSize || cellHeight != cellSize {
		return nil, fmt.Errorf(
			"verifying atlas: expected %dx%d cells, decoded %dx%d",
			cellSize, cellSize, cellWidth, cellHeight,
		)
	}
	return data, nil
}
