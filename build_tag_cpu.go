//go:build cputext

package btxt

import "math"
import "image"
import "image/color"

import "github.com/tinne26/btxt/core"
import "github.com/tinne26/btxt/atlas"

// Note: good reference for alpha compositing:
// https://developer.android.com/reference/android/graphics/PorterDuff.Mode#alpha-compositing-modes

const (
	BlendOver    core.BlendMode = core.BlendOver    // glyphs drawn over target (default mode)
	BlendReplace core.BlendMode = core.BlendReplace // glyph quads only (transparent pixels included!)
	BlendAdd     core.BlendMode = core.BlendAdd     // add colors (black adds nothing, white stays white)
)

type renderData struct{}

func newAtlasTexture(fontAtlas *atlas.Atlas) core.Texture {
	return fontAtlas.Image()
}

func (self *Renderer) drawGeometry(target core.Target, texture core.Texture, geometry *Geometry) {
	rgba := self.style.Color
	for quad := 0; quad < geometry.NumQuads(); quad++ {
		// vertex 0 is upLeft and vertex 3 is downRight
		base := quad*VerticesPerGlyph
		self.drawQuad(target, texture, rgba,
			geometry.Positions[base], geometry.Positions[base + 3],
			geometry.TexCoords[base], geometry.TexCoords[base + 3],
		)
	}
}

// Rasterizes the quad sampling the atlas at pixel centers, nearest
// neighbour. Pixels are covered when their center falls inside the quad.
func (self *Renderer) drawQuad(target core.Target, texture *image.NRGBA, rgba color.RGBA, upLeft, downRight, uvUpLeft, uvDownRight [2]float32) {
	left, top := self.viewport.ToTopLeft(upLeft[0], upLeft[1])
	right, bottom := self.viewport.ToTopLeft(downRight[0], downRight[1])
	if right <= left || bottom <= top { return }

	bounds := target.Bounds()
	texBounds := texture.Bounds()
	texWidth, texHeight := texBounds.Dx(), texBounds.Dy()
	minX := max(bounds.Min.X, bounds.Min.X + int(math.Ceil(float64(left) - 0.5)))
	maxX := min(bounds.Max.X, bounds.Min.X + int(math.Ceil(float64(right) - 0.5)))
	minY := max(bounds.Min.Y, bounds.Min.Y + int(math.Ceil(float64(top) - 0.5)))
	maxY := min(bounds.Max.Y, bounds.Min.Y + int(math.Ceil(float64(bottom) - 0.5)))
	for y := minY; y < maxY; y++ {
		ty := (float32(y - bounds.Min.Y) + 0.5 - top)/(bottom - top)
		v := uvUpLeft[1] + ty*(uvDownRight[1] - uvUpLeft[1])
		texY := clamp(int((1 - v)*float32(texHeight)), 0, texHeight - 1)
		for x := minX; x < maxX; x++ {
			tx := (float32(x - bounds.Min.X) + 0.5 - left)/(right - left)
			u := uvUpLeft[0] + tx*(uvDownRight[0] - uvUpLeft[0])
			texX := clamp(int(u*float32(texWidth)), 0, texWidth - 1)
			coverage := texture.Pix[texture.PixOffset(texBounds.Min.X + texX, texBounds.Min.Y + texY)]
			self.blendPixel(target, x, y, scaleRGBA(rgba, coverage))
		}
	}
}

func (self *Renderer) blendPixel(target core.Target, x, y int, src color.RGBA) {
	switch self.blendMode {
	case BlendOver:
		if src.A == 0 { return }
		dst := color.RGBAModel.Convert(target.At(x, y)).(color.RGBA)
		inv := 255 - uint32(src.A)
		target.Set(x, y, color.RGBA{
			R: src.R + uint8((uint32(dst.R)*inv + 127)/255),
			G: src.G + uint8((uint32(dst.G)*inv + 127)/255),
			B: src.B + uint8((uint32(dst.B)*inv + 127)/255),
			A: src.A + uint8((uint32(dst.A)*inv + 127)/255),
		})
	case BlendReplace:
		target.Set(x, y, src)
	case BlendAdd:
		dst := color.RGBAModel.Convert(target.At(x, y)).(color.RGBA)
		target.Set(x, y, color.RGBA{
			R: uint8(min(uint32(src.R) + uint32(dst.R), 255)),
			G: uint8(min(uint32(src.G) + uint32(dst.G), 255)),
			B: uint8(min(uint32(src.B) + uint32(dst.B), 255)),
			A: uint8(min(uint32(src.A) + uint32(dst.A), 255)),
		})
	default:
		panic("unexpected blend mode")
	}
}

// Scales a premultiplied color by the given coverage.
func scaleRGBA(rgba color.RGBA, coverage uint8) color.RGBA {
	if coverage == 255 { return rgba }
	c := uint32(coverage)
	return color.RGBA{
		R: uint8((uint32(rgba.R)*c + 127)/255),
		G: uint8((uint32(rgba.G)*c + 127)/255),
		B: uint8((uint32(rgba.B)*c + 127)/255),
		A: uint8((uint32(rgba.A)*c + 127)/255),
	}
}
