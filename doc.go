// btxt is a package for fixed-width text rendering from glyph atlas
// bitmaps, designed to be used with Ebitengine, a 2D game engine made
// by Hajime Hoshi for Golang.
//
// Atlases are 24-bit bitmaps with a 16x16 grid of glyph cells, one
// cell per character code, starting at the space character. Glyphs
// occupy the left half of their cells and their coverage is read from
// the red channel. The btxt-atlas command can generate compatible
// atlases from ggfnt fonts.
//
// To get started, load an atlas and create a [*Renderer]:
//   text := btxt.NewRenderer()
//   err := text.LoadAtlas("font.bmp")
//   if err != nil { panic(err) }
//   text.SetFontSize(16)
//   text.SetColor(color.RGBA{192, 0, 255, 255})
//   text.SetViewport(screenWidth, screenHeight)
//
// Coordinates have their origin at the bottom-left corner of the
// viewport, with y growing upwards. Once configured, drawing is
// quite straightforward:
//   err = text.Draw(canvas, "TEXT IS ME", x, y)
//
// If you have your own rendering pipeline, [Renderer.Layout]() returns
// the quad positions and texture coordinates without drawing anything.
package btxt
