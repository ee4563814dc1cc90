package internal

import "image/color"

// Converts an 8-bit RGBA color to normalized [0, 1] components.
// Like color.RGBA itself, the result is alpha-premultiplied.
func RGBAToFloat32(rgba color.RGBA) [4]float32 {
	return [4]float32{
		float32(rgba.R)/255,
		float32(rgba.G)/255,
		float32(rgba.B)/255,
		float32(rgba.A)/255,
	}
}
