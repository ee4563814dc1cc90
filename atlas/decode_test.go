package atlas

import "os"
import "bytes"
import "errors"
import "io/fs"
import "testing"
import "testing/fstest"
import "path/filepath"
import "encoding/binary"

import "image"
import "image/color"

import "golang.org/x/image/bmp"

// Creates a bitmap file where each pixel encodes its own coordinates:
// (R, G, B) = (x, y, x + y), with y counted from the top of the image.
func encodeTestBitmap(t *testing.T, width, height int, opaque bool) []byte {
	t.Helper()
	alpha := uint8(255)
	if !opaque { alpha = 128 }
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{uint8(x), uint8(y), uint8(x + y), alpha})
		}
	}
	var buffer bytes.Buffer
	err := bmp.Encode(&buffer, img)
	if err != nil { t.Fatalf("failed to encode test bitmap: %s", err) }
	return buffer.Bytes()
}

func expectDecodeError(t *testing.T, err error, field string) {
	t.Helper()
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError for field '%s', got %v", field, err)
	}
	if decodeErr.Field != field {
		t.Fatalf("expected DecodeError on field '%s', got '%s' (%s)", field, decodeErr.Field, err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	const W, H = 32, 16
	data := encodeTestBitmap(t, W, H, true)

	// sanity check on the fixture itself
	dataStart := binary.LittleEndian.Uint32(data[offsetDataStart:])
	if len(data) - int(dataStart) != W*H*3 {
		t.Fatalf("unexpected fixture layout: %d pixel data bytes", len(data) - int(dataStart))
	}

	atlas, err := Decode(data)
	if err != nil { t.Fatalf("unexpected decode error: %s", err) }
	if atlas.Width() != W || atlas.Height() != H {
		t.Fatalf("expected %dx%d atlas, got %dx%d", W, H, atlas.Width(), atlas.Height())
	}
	if atlas.NumPixels() != W*H {
		t.Fatalf("expected %d pixels, got %d", W*H, atlas.NumPixels())
	}
	if len(atlas.Samples()) != W*H*3 {
		t.Fatalf("expected %d samples, got %d", W*H*3, len(atlas.Samples()))
	}
	if atlas.BitsPerPixel() != 24 || atlas.ChannelsPerPixel() != 3 {
		t.Fatalf("expected 24 bpp / 3 channels, got %d / %d", atlas.BitsPerPixel(), atlas.ChannelsPerPixel())
	}

	// bitmaps store rows bottom-up and pixels as (B, G, R). The atlas
	// keeps both the row order and the byte order as they are.
	for _, pt := range []image.Point{{0, 0}, {5, 3}, {W - 1, H - 1}, {17, 9}} {
		topDownY := (H - 1) - pt.Y
		want := [3]float32{float32(pt.X + topDownY), float32(topDownY), float32(pt.X)}
		got := atlas.At(pt.X, pt.Y)
		if got != want {
			t.Fatalf("At(%d, %d): expected %v, got %v", pt.X, pt.Y, want, got)
		}
	}
}

func TestDecodeTruncated(t *testing.T) {
	data := encodeTestBitmap(t, 16, 16, true)
	_, err := Decode(data[ : len(data) - 1])
	expectDecodeError(t, err, "file size")
}

func TestDecodeInconsistentHeaders(t *testing.T) {
	// rows of 30 RGB pixels get padded to 92 bytes
	_, err := Decode(encodeTestBitmap(t, 30, 4, true))
	expectDecodeError(t, err, "pixel count")

	// translucent images are encoded with 32 bits per pixel
	_, err = Decode(encodeTestBitmap(t, 8, 8, false))
	expectDecodeError(t, err, "pixel count")

	_, err = Decode([]byte("BM"))
	expectDecodeError(t, err, "header")

	data := encodeTestBitmap(t, 8, 8, true)
	data[0] = 'X'
	_, err = Decode(data)
	expectDecodeError(t, err, "signature")

	data = encodeTestBitmap(t, 8, 8, true)
	binary.LittleEndian.PutUint32(data[offsetWidth:], 0)
	_, err = Decode(data)
	expectDecodeError(t, err, "width")

	data = encodeTestBitmap(t, 8, 8, true)
	binary.LittleEndian.PutUint32(data[offsetHeight:], 0)
	_, err = Decode(data)
	expectDecodeError(t, err, "height")

	data = encodeTestBitmap(t, 8, 8, true)
	binary.LittleEndian.PutUint32(data[offsetDataStart:], 10)
	_, err = Decode(data)
	expectDecodeError(t, err, "data offset")

	data = encodeTestBitmap(t, 8, 8, true)
	data[offsetBitsPerPixel] = 12
	_, err = Decode(data)
	expectDecodeError(t, err, "bits per pixel")

	// declaring more pixels than present must fail before reading
	data = encodeTestBitmap(t, 8, 8, true)
	binary.LittleEndian.PutUint32(data[offsetHeight:], 9)
	_, err = Decode(data)
	expectDecodeError(t, err, "pixel count")

	// width*height*3 wraps around to 26 in 64 bits
	header := make([]byte, minHeaderSize + 26)
	copy(header, "BM")
	binary.LittleEndian.PutUint32(header[offsetFileSize:], uint32(len(header)))
	binary.LittleEndian.PutUint32(header[offsetDataStart:], minHeaderSize)
	binary.LittleEndian.PutUint32(header[offsetWidth:], 2007567422)
	binary.LittleEndian.PutUint32(header[offsetHeight:], 3062868337)
	header[offsetBitsPerPixel] = 24
	_, err = Decode(header)
	expectDecodeError(t, err, "width")

	binary.LittleEndian.PutUint32(header[offsetWidth:], 2)
	_, err = Decode(header)
	expectDecodeError(t, err, "height")

	binary.LittleEndian.PutUint32(header[offsetWidth:], MaxDimension)
	binary.LittleEndian.PutUint32(header[offsetHeight:], MaxDimension)
	_, err = Decode(header)
	expectDecodeError(t, err, "pixel count")
}

// Pixel data is read as packed RGB triples whatever the declared bits
// per pixel, as long as the sizes add up.
func TestDecodeFixedReadStride(t *testing.T) {
	const W, H = 8, 8
	data := encodeTestBitmap(t, W, H, true)
	reference, err := Decode(data)
	if err != nil { t.Fatal(err) }

	data[offsetBitsPerPixel] = 32
	atlas, err := Decode(data)
	if err != nil { t.Fatalf("unexpected decode error: %s", err) }
	if atlas.BitsPerPixel() != 32 || atlas.ChannelsPerPixel() != 4 {
		t.Fatalf("expected 32 bpp / 4 channels, got %d / %d", atlas.BitsPerPixel(), atlas.ChannelsPerPixel())
	}
	if atlas.NumPixels() != W*H || len(atlas.Samples()) != W*H*3 {
		t.Fatalf("expected %d pixels and %d samples, got %d and %d", W*H, W*H*3, atlas.NumPixels(), len(atlas.Samples()))
	}
	for i, sample := range reference.Samples() {
		if atlas.Samples()[i] != sample {
			t.Fatalf("sample #%d: expected %v, got %v", i, sample, atlas.Samples()[i])
		}
	}
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	data := encodeTestBitmap(t, 8, 8, true)
	data = append(data, 0xAA, 0xBB, 0xCC, 0xDD)
	atlas, err := Decode(data)
	if err != nil { t.Fatalf("unexpected decode error: %s", err) }
	if atlas.NumPixels() != 64 {
		t.Fatalf("expected 64 pixels, got %d", atlas.NumPixels())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "font.bmp")
	err := os.WriteFile(path, encodeTestBitmap(t, 64, 64, true), 0o644)
	if err != nil { t.Fatal(err) }

	atlas, err := Load(path)
	if err != nil { t.Fatalf("unexpected load error: %s", err) }
	if atlas.Width() != 64 || atlas.Height() != 64 {
		t.Fatalf("expected 64x64 atlas, got %dx%d", atlas.Width(), atlas.Height())
	}
	w, h := atlas.CellSize()
	if w != 4 || h != 4 {
		t.Fatalf("expected 4x4 cells, got %dx%d", w, h)
	}

	// missing files
	_, err = Load(filepath.Join(dir, "missing.bmp"))
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected IOError to wrap fs.ErrNotExist, got %v", err)
	}
}

func TestLoadFS(t *testing.T) {
	filesys := fstest.MapFS{
		"fonts/mono.bmp": &fstest.MapFile{ Data: encodeTestBitmap(t, 16, 32, true) },
		"fonts/broken.bmp": &fstest.MapFile{ Data: []byte("BM not really") },
	}

	atlas, err := LoadFS(filesys, "fonts/mono.bmp")
	if err != nil { t.Fatalf("unexpected load error: %s", err) }
	if atlas.Width() != 16 || atlas.Height() != 32 {
		t.Fatalf("expected 16x32 atlas, got %dx%d", atlas.Width(), atlas.Height())
	}

	_, err = LoadFS(filesys, "fonts/broken.bmp")
	expectDecodeError(t, err, "header")

	_, err = LoadFS(filesys, "fonts/none.bmp")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestAtlasIDs(t *testing.T) {
	data := encodeTestBitmap(t, 8, 8, true)
	a, err := Decode(data)
	if err != nil { t.Fatal(err) }
	b, err := Decode(data)
	if err != nil { t.Fatal(err) }
	if a.ID() == b.ID() {
		t.Fatalf("expected different atlas IDs, got %d twice", a.ID())
	}
}

func TestAtlasImage(t *testing.T) {
	const W, H = 12, 8
	atlas, err := Decode(encodeTestBitmap(t, W, H, true))
	if err != nil { t.Fatal(err) }

	img := atlas.Image()
	if img.Bounds() != image.Rect(0, 0, W, H) {
		t.Fatalf("unexpected image bounds %v", img.Bounds())
	}
	for y := 0; y < H; y++ {
		for x := 0; x < W; x++ {
			rgb := atlas.At(x, (H - 1) - y)
			got := img.NRGBAAt(x, y)
			want := color.NRGBA{uint8(rgb[0]), uint8(rgb[1]), uint8(rgb[2]), 255}
			if got != want {
				t.Fatalf("image pixel (%d, %d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}
