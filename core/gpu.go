//go:build !cputext

package core

import "github.com/hajimehoshi/ebiten/v2"

// Alias to allow compiling the package without Ebitengine (-tags cputext).
//
// Without Ebitengine, [Target] defaults to [image/draw.Image].
type Target = *ebiten.Image

// A Texture is the uploaded form of a font atlas, ready to be sampled
// while drawing glyph quads. Textures are created and cached by the
// renderer, you rarely need to handle them directly.
//
// Without Ebitengine, [Texture] defaults to [*image.NRGBA]. In both
// cases the texture is stored top-down, so the atlas UV origin (bottom
// left) maps to the bottom-left pixel of the texture.
type Texture = *ebiten.Image

// The blend mode specifies how to compose colors when drawing glyphs:
//  - Without Ebitengine, the blend mode can be BlendOver, BlendReplace or BlendAdd.
//  - With Ebitengine, the blend mode is [ebiten.Blend].
type BlendMode = ebiten.Blend
