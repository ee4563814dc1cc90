//go:build !cputext

package internal

import "github.com/tinne26/btxt/core"

// Based on Ebitengine internals.
const constTextureSizeFactor = 192

// With Ebitengine, the exact amount of mipmaps and helper fields is
// not known, so the values may not be completely accurate, and should
// be treated as a lower bound. With -tags cputext, the returned values
// are exact.
func textureByteSize(texture core.Texture) uint32 {
	if texture == nil { return constTextureSizeFactor }
	bounds := texture.Bounds()
	return uint32(bounds.Dx()*bounds.Dy())*4 + constTextureSizeFactor
}
