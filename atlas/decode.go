package atlas

import "encoding/binary"
import "strconv"

// Header field offsets. These are a compatibility contract with the
// existing atlas assets (24-bit uncompressed bitmaps), don't change them.
const (
	offsetFileSize     = 2
	offsetDataStart    = 10
	offsetWidth        = 18
	offsetHeight       = 22
	offsetBitsPerPixel = 28

	minHeaderSize = 54
)

// Largest accepted width or height, in pixels. Atlases are uploaded as
// single textures, so anything bigger couldn't be drawn anyway.
const MaxDimension = 32768

var dimensionRange = "between 1 and " + strconv.Itoa(MaxDimension)

// Pixel data is always read as tightly packed 3-byte triples, whatever
// the bits per pixel field says. Assets are 24-bit RGB without row
// padding, so this only matters for files that would fail the size
// checks anyway.
const readStride = 3

// Decodes an atlas from the raw bytes of a bitmap file.
//
// The header is read at fixed offsets: file size (2), pixel data
// offset (10), width (18) and height (22) as little-endian uint32
// values, and bits per pixel (28) as a single byte. Pixel data must
// span exactly width*height RGB triples between the data offset and
// the declared file size. Any mismatch is reported as a [*DecodeError]
// and no atlas is returned.
func Decode(data []byte) (*Atlas, error) {
	if len(data) < minHeaderSize {
		return nil, &DecodeError{
			Field: "header", Value: uint32(len(data)),
			Expected: "at least " + strconv.Itoa(minHeaderSize) + " bytes",
		}
	}
	if data[0] != 'B' || data[1] != 'M' {
		return nil, &DecodeError{
			Field: "signature", Value: uint32(binary.LittleEndian.Uint16(data[0 : 2])),
			Expected: "'BM'",
		}
	}

	fileSize  := binary.LittleEndian.Uint32(data[offsetFileSize : offsetFileSize + 4])
	dataStart := binary.LittleEndian.Uint32(data[offsetDataStart : offsetDataStart + 4])
	width     := binary.LittleEndian.Uint32(data[offsetWidth : offsetWidth + 4])
	height    := binary.LittleEndian.Uint32(data[offsetHeight : offsetHeight + 4])
	bitsPerPixel := data[offsetBitsPerPixel]

	// header consistency checks
	if uint64(fileSize) > uint64(len(data)) {
		return nil, &DecodeError{
			Field: "file size", Value: fileSize,
			Expected: "at most " + strconv.Itoa(len(data)) + " (actual length)",
		}
	}
	if dataStart < minHeaderSize || dataStart > fileSize {
		return nil, &DecodeError{
			Field: "data offset", Value: dataStart,
			Expected: "between " + strconv.Itoa(minHeaderSize) + " and the file size",
		}
	}
	if width == 0 || width > MaxDimension {
		return nil, &DecodeError{ Field: "width", Value: width, Expected: dimensionRange }
	}
	if height == 0 || height > MaxDimension {
		return nil, &DecodeError{ Field: "height", Value: height, Expected: dimensionRange }
	}
	if bitsPerPixel == 0 || bitsPerPixel % 8 != 0 {
		return nil, &DecodeError{
			Field: "bits per pixel", Value: uint32(bitsPerPixel),
			Expected: "a non-zero multiple of 8",
		}
	}

	numPixels := uint64(width)*uint64(height)
	dataLen   := uint64(fileSize - dataStart)
	if dataLen % readStride != 0 || dataLen/readStride != numPixels {
		return nil, &DecodeError{
			Field: "pixel count", Value: uint32(dataLen/readStride),
			Expected: strconv.FormatUint(numPixels, 10) + " (width*height)",
		}
	}

	// read the RGB triples
	samples := make([]float32, 0, numPixels*readStride)
	for i := dataStart; i < fileSize; i += readStride {
		samples = append(samples, float32(data[i]), float32(data[i + 1]), float32(data[i + 2]))
	}

	return newAtlas(int(width), int(height), bitsPerPixel, samples), nil
}
