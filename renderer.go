package btxt

import "image/color"

import "github.com/tinne26/btxt/core"
import "github.com/tinne26/btxt/atlas"

// The [Renderer] is the heart of btxt and the type around which everything
// else revolves.
//
// Renderers have three groups of functions:
//  - Simple functions to adjust basic text properties like font size,
//    color, align, viewport...
//  - Functions to measure, lay out and draw text.
//  - The [Renderer.Advanced]() gateway, which groups buffer-reusing
//    variants and lower level glyph queries that most users won't need.
//
// To create a renderer, use [NewRenderer]() and then set a font atlas
// through [Renderer.SetAtlas]() or [Renderer.LoadAtlas]().
//
// Renderers are not safe for concurrent use. Layout results only depend
// on the current style and align plus the arguments, so repeated calls
// with the same configuration produce the same geometry.
type Renderer struct {
	atlas *atlas.Atlas
	style GlyphStyle
	viewport Viewport
	align Align
	blendMode core.BlendMode

	// operation buffers
	geometry Geometry // reused by Draw
	gfx renderData  // build tag dependent
}

// Creates a new [Renderer] with the following defaults:
//  - Font size set to 12 pixels.
//  - Lateral margin set to zero.
//  - Color set to white.
//  - Viewport set to 500x500.
//  - Align set to (btxt.[Left] | btxt.[Bottom]).
//
// Beyond these properties, you must still set an atlas through
// [Renderer.SetAtlas]() or [Renderer.LoadAtlas]() before drawing.
func NewRenderer() *Renderer {
	var renderer Renderer
	renderer.style = GlyphStyle{
		PixelHeight: 12,
		Color: color.RGBA{255, 255, 255, 255},
	}
	renderer.viewport = Viewport{ Width: 500, Height: 500 }
	renderer.align = Left | Bottom
	return &renderer
}

// Gateway to [RendererAdvanced]. For context on gateways, see [Renderer].
func (self *Renderer) Advanced() *RendererAdvanced {
	return (*RendererAdvanced)(self)
}

// ---- atlas ----

// Sets the font atlas to be used on subsequent operations.
// Nil atlases will cause the method to panic.
func (self *Renderer) SetAtlas(fontAtlas *atlas.Atlas) {
	if fontAtlas == nil { panic("nil atlas") }
	self.atlas = fontAtlas
}

// Returns the current font atlas, which might be nil if none has
// been set yet.
func (self *Renderer) GetAtlas() *atlas.Atlas {
	return self.atlas
}

// Loads the bitmap at the given path through [atlas.Load]() and sets
// it as the renderer's atlas. On failure the current atlas is kept.
func (self *Renderer) LoadAtlas(path string) error {
	fontAtlas, err := atlas.Load(path)
	if err != nil { return err }
	self.atlas = fontAtlas
	return nil
}

// ---- style ----

// Sets the font size, which is the height of the glyph quads in pixels.
// Glyph widths are always half the font size. The size must be strictly
// positive.
func (self *Renderer) SetFontSize(pixelHeight float32) {
	if !(pixelHeight > 0) { panic("font size must be strictly positive") }
	self.style.PixelHeight = pixelHeight
}

// Returns the current font size. See also [Renderer.SetFontSize]().
func (self *Renderer) GetFontSize() float32 {
	return self.style.PixelHeight
}

// Sets the extra horizontal space added to the right side of each
// glyph quad. The margin is included in [Renderer.Measure]() widths.
func (self *Renderer) SetLateralMargin(margin float32) {
	self.style.LateralMargin = margin
}

// Returns the current lateral margin. See also [Renderer.SetLateralMargin]().
func (self *Renderer) GetLateralMargin() float32 {
	return self.style.LateralMargin
}

// Sets the text color. The atlas only provides coverage, so glyphs are
// drawn as solid shapes of this color.
func (self *Renderer) SetColor(rgba color.RGBA) {
	self.style.Color = rgba
}

// Returns the current text color. See also [Renderer.SetColor]().
func (self *Renderer) GetColor() color.RGBA {
	return self.style.Color
}

// Sets font size, lateral margin and color at once. The same
// rules as [Renderer.SetFontSize]() apply.
func (self *Renderer) SetStyle(style GlyphStyle) {
	if !(style.PixelHeight > 0) { panic("font size must be strictly positive") }
	self.style = style
}

// Returns the current [GlyphStyle].
func (self *Renderer) GetStyle() GlyphStyle {
	return self.style
}

// The renderer's [Align] defines how [Renderer.Layout](), [Renderer.Draw]()
// and other operations interpret the coordinates passed to them:
//  - If the align is set to (btxt.[Bottom] | btxt.[Left]), coordinates will
//    be interpreted as the bottom-left corner of the text box.
//  - If the align is set to (btxt.[Center]), coordinates will be interpreted
//    as the center of the text box.
//
// Notice that aligns have a horizontal and a vertical component, so you can
// use [Renderer.SetAlign](btxt.[Right]) and similar to change only one of the
// components at a time.
func (self *Renderer) SetAlign(align Align) {
	self.align = self.align.Adjusted(align)
}

// Returns the current [Align]. See also [Renderer.SetAlign]().
func (self *Renderer) GetAlign() Align {
	return self.align
}

// Sets the [core.BlendMode] to be applied on subsequent drawing operations.
// The default mode is always regular source over target alpha blending.
func (self *Renderer) SetBlendMode(mode core.BlendMode) {
	self.blendMode = mode
}

// Returns the current blend mode. See also [Renderer.SetBlendMode]().
func (self *Renderer) GetBlendMode() core.BlendMode {
	return self.blendMode
}

// ---- viewport ----

// Sets the size of the framebuffer that text will be drawn to. This
// doesn't affect layout results, only how [Renderer.Draw]() maps them
// to the target. Both dimensions must be strictly positive.
func (self *Renderer) SetViewport(width, height int) {
	if width <= 0 || height <= 0 { panic("viewport dimensions must be strictly positive") }
	self.viewport = Viewport{ Width: width, Height: height }
}

// Returns the current [Viewport]. See also [Renderer.SetViewport]().
func (self *Renderer) GetViewport() Viewport {
	return self.viewport
}
