//go:build cputext

package internal

import "github.com/tinne26/btxt/core"

const constTextureSizeFactor = 56

func textureByteSize(texture core.Texture) uint32 {
	if texture == nil { return constTextureSizeFactor }
	return uint32(len(texture.Pix)) + constTextureSizeFactor
}
