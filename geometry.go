package btxt

// Number of vertices emitted per character: two triangles forming
// the character quad.
const VerticesPerGlyph = 6

// Geometry holds the vertex data for laid out text: one position and
// one texture coordinate per vertex, index k of one slice matching index
// k of the other. Positions are absolute pixels with the origin at the
// bottom-left of the screen, texture coordinates are atlas UVs in [0, 1]
// with v = 0 at the bottom edge of the atlas.
//
// Each character contributes [VerticesPerGlyph] vertices, with triangles
// (upLeft, downLeft, upRight) and (downRight, upRight, downLeft).
type Geometry struct {
	Positions [][2]float32
	TexCoords [][2]float32
}

// Clears the geometry while keeping the underlying buffers.
func (self *Geometry) Reset() {
	self.Positions = self.Positions[ : 0]
	self.TexCoords = self.TexCoords[ : 0]
}

// Returns the number of vertices.
func (self *Geometry) Len() int { return len(self.Positions) }

// Returns the number of character quads.
func (self *Geometry) NumQuads() int { return len(self.Positions)/VerticesPerGlyph }

// Appends the geometry to the given buffer in interleaved (x, y, u, v)
// format, which is what most vertex buffer uploads expect.
func (self *Geometry) AppendInterleaved(buffer []float32) []float32 {
	if len(self.Positions) != len(self.TexCoords) { panic(brokenCode) }
	buffer = growBuffer(buffer, len(self.Positions)*4)
	for i, position := range self.Positions {
		uv := self.TexCoords[i]
		buffer = append(buffer, position[0], position[1], uv[0], uv[1])
	}
	return buffer
}

func (self *Geometry) appendQuad(left, bottom, right, top float32, uvs glyphUVs) {
	upLeft, upRight := [2]float32{left, top}, [2]float32{right, top}
	downLeft, downRight := [2]float32{left, bottom}, [2]float32{right, bottom}
	self.Positions = append(self.Positions, upLeft, downLeft, upRight, downRight, upRight, downLeft)
	self.TexCoords = append(self.TexCoords,
		uvs.UpLeft(), uvs.DownLeft(), uvs.UpRight(),
		uvs.DownRight(), uvs.UpRight(), uvs.DownLeft(),
	)
}
