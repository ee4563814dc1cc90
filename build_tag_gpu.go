//go:build !cputext

package btxt

import "github.com/tinne26/btxt/core"
import "github.com/tinne26/btxt/atlas"

import "github.com/hajimehoshi/ebiten/v2"

// Glyph coverage is stored in the red channel of the atlas. Vertex
// colors carry the premultiplied text color.
var glyphShader *ebiten.Shader
var glyphShaderSrc []byte = []byte(`
//kage:unit pixels
package main

func Fragment(_ vec4, sourceCoords vec2, color vec4) vec4 {
	return color*imageSrc0At(sourceCoords).r
}
`)

// Max vertices per draw call. Must be a multiple of VerticesPerGlyph
// and indices must fit in an uint16.
const maxDrawVertices = 65532

type renderData struct {
	vertices []ebiten.Vertex
	indices []uint16
	opts ebiten.DrawTrianglesShaderOptions
}

func newAtlasTexture(fontAtlas *atlas.Atlas) core.Texture {
	return ebiten.NewImageFromImage(fontAtlas.Image())
}

func (self *Renderer) drawGeometry(target core.Target, texture core.Texture, geometry *Geometry) {
	if glyphShader == nil {
		var err error
		glyphShader, err = ebiten.NewShader(glyphShaderSrc)
		if err != nil { panic(err) }
	}

	rgba := self.Advanced().ColorF32()
	bounds := target.Bounds()
	texBounds := texture.Bounds()
	texWidth, texHeight := float32(texBounds.Dx()), float32(texBounds.Dy())
	originX, originY := float32(bounds.Min.X), float32(bounds.Min.Y)

	self.gfx.opts.Images[0] = texture
	self.gfx.opts.Blend = self.blendMode
	for start := 0; start < geometry.Len(); start += maxDrawVertices {
		end := min(start + maxDrawVertices, geometry.Len())
		self.gfx.vertices = setBufferSize(self.gfx.vertices, end - start)
		self.gfx.indices = setBufferSize(self.gfx.indices, end - start)
		for i := start; i < end; i++ {
			x, y := self.viewport.ToTopLeft(geometry.Positions[i][0], geometry.Positions[i][1])
			uv := geometry.TexCoords[i]
			self.gfx.vertices[i - start] = ebiten.Vertex{
				DstX: originX + x, DstY: originY + y,
				SrcX: uv[0]*texWidth, SrcY: (1 - uv[1])*texHeight,
				ColorR: rgba[0], ColorG: rgba[1], ColorB: rgba[2], ColorA: rgba[3],
			}
			self.gfx.indices[i - start] = uint16(i - start)
		}
		target.DrawTrianglesShader(self.gfx.vertices, self.gfx.indices, glyphShader, &self.gfx.opts)
	}
	self.gfx.opts.Images[0] = nil
}
