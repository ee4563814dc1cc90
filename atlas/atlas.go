package atlas

import "image"
import "image/color"
import "sync/atomic"

// Atlases are logically partitioned into a fixed grid of GridSize x
// GridSize equally sized glyph cells.
const GridSize = 16

var nextAtlasID atomic.Uint64

// An Atlas is the decoded form of a bitmap font file: a grid of RGB
// samples plus the geometric metadata read from the file header.
//
// Atlases are immutable. Changing the font means decoding a new atlas
// and replacing the old one wholesale, never editing it in place.
//
// Samples are kept exactly as read, as floats in the [0, 255] range.
// Normalizing them is a concern of the texture upload, not the atlas.
type Atlas struct {
	id uint64
	width int
	height int
	bitsPerPixel uint8
	samples []float32 // 3 per pixel, file (bottom-up) order
}

func newAtlas(width, height int, bitsPerPixel uint8, samples []float32) *Atlas {
	return &Atlas{
		id: nextAtlasID.Add(1),
		width: width,
		height: height,
		bitsPerPixel: bitsPerPixel,
		samples: samples,
	}
}

// Returns a process-unique identifier for the atlas. Two decodes of
// the same file produce different IDs.
func (self *Atlas) ID() uint64 { return self.id }

// Returns the width of the atlas bitmap, in pixels.
func (self *Atlas) Width() int { return self.width }

// Returns the height of the atlas bitmap, in pixels.
func (self *Atlas) Height() int { return self.height }

// Returns the bits per pixel declared on the file header.
func (self *Atlas) BitsPerPixel() uint8 { return self.bitsPerPixel }

// Returns the bytes per pixel derived from [Atlas.BitsPerPixel]().
//
// Notice that the pixel data is always read as RGB triples, so this
// value describes the source file, not the layout of [Atlas.Samples]().
func (self *Atlas) ChannelsPerPixel() int { return int(self.bitsPerPixel/8) }

// Returns the number of pixels in the grid (width*height).
func (self *Atlas) NumPixels() int { return len(self.samples)/3 }

// Returns the raw samples, three per pixel, in file order. The slice
// is shared with the atlas and must not be modified.
func (self *Atlas) Samples() []float32 { return self.samples }

// Returns the (r, g, b) samples of the pixel at the given index.
func (self *Atlas) Pixel(index int) [3]float32 {
	index *= 3
	return [3]float32(self.samples[index : index + 3])
}

// Returns the (r, g, b) samples at the given coordinates. Rows are
// counted from the bottom of the bitmap, matching both the file raster
// order and the UV convention (v = 0 at the bottom edge).
func (self *Atlas) At(x, y int) [3]float32 {
	if x < 0 || x >= self.width || y < 0 || y >= self.height {
		panic("atlas coordinates out of bounds")
	}
	return self.Pixel(y*self.width + x)
}

// Returns the cell width and height, in pixels.
func (self *Atlas) CellSize() (width, height int) {
	return self.width/GridSize, self.height/GridSize
}

// Converts the atlas into a regular top-down image, ready to be uploaded
// as a texture. Samples are clamped to [0, 255] and alpha is opaque; text
// renderers take the glyph alpha from the red channel.
func (self *Atlas) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, self.width, self.height))
	for y := 0; y < self.height; y++ {
		row := (self.height - 1) - y // bottom-up to top-down
		for x := 0; x < self.width; x++ {
			rgb := self.Pixel(y*self.width + x)
			img.SetNRGBA(x, row, color.NRGBA{
				R: clampSample(rgb[0]),
				G: clampSample(rgb[1]),
				B: clampSample(rgb[2]),
				A: 255,
			})
		}
	}
	return img
}

func clampSample(value float32) uint8 {
	if value <= 0 { return 0 }
	if value >= 255 { return 255 }
	return uint8(value)
}
