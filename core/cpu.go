//go:build cputext

package core

import "image"
import "image/draw"

// See documentation on gpu.go instead.
// This is the fallback mode.

type Target = draw.Image

type Texture = *image.NRGBA

type BlendMode uint8

const (
	BlendOver    BlendMode = 0 // glyphs drawn over target (default mode)
	BlendReplace BlendMode = 1 // glyph quads replace target pixels (transparent included!)
	BlendAdd     BlendMode = 2 // add colors (black adds nothing, white stays white)
)
