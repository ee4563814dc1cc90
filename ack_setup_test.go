package btxt

// This file provides helpers to create test atlases on the fly
// and some shared testing utilities.

import "os"
import "bytes"
import "testing"
import "path/filepath"

import "image"
import "image/color"
import "image/png"

import "github.com/tinne26/btxt/atlas"

import "golang.org/x/image/bmp"

const testCellSize = 4 // 64x64 atlases

// Creates a bitmap where the cells of the given grid columns are
// filled with white and everything else is black.
func encodeColumnsBitmap(t *testing.T, whiteColumns ...int) []byte {
	t.Helper()
	size := testCellSize*atlas.GridSize
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 0, 255})
		}
	}
	for _, col := range whiteColumns {
		for y := 0; y < size; y++ {
			for x := col*testCellSize; x < (col + 1)*testCellSize; x++ {
				img.SetRGBA(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	var buffer bytes.Buffer
	err := bmp.Encode(&buffer, img)
	if err != nil { t.Fatalf("failed to encode test atlas: %s", err) }
	return buffer.Bytes()
}

func newColumnsAtlas(t *testing.T, whiteColumns ...int) *atlas.Atlas {
	t.Helper()
	fontAtlas, err := atlas.Decode(encodeColumnsBitmap(t, whiteColumns...))
	if err != nil { t.Fatalf("failed to decode test atlas: %s", err) }
	return fontAtlas
}

// Same as encodeColumnsBitmap, but stored as a file in a temp dir.
func writeColumnsAtlas(t *testing.T, whiteColumns ...int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "atlas.bmp")
	err := os.WriteFile(path, encodeColumnsBitmap(t, whiteColumns...), 0o644)
	if err != nil { t.Fatal(err) }
	return path
}

// --- helpers ---

func exportAsPNG(filename string, img image.Image) {
	file, err := os.Create(filename)
	if err != nil { panic(err) }
	err = png.Encode(file, img)
	if err != nil { panic(err) }
	err = file.Close()
	if err != nil { panic(err) }
}

func equalGeometries(a, b *Geometry) bool {
	if len(a.Positions) != len(b.Positions) { return false }
	if len(a.TexCoords) != len(b.TexCoords) { return false }
	for i := range a.Positions {
		if a.Positions[i] != b.Positions[i] { return false }
		if a.TexCoords[i] != b.TexCoords[i] { return false }
	}
	return true
}
