package btxt

import "github.com/tinne26/btxt/core"
import "github.com/tinne26/btxt/internal"

// Draws the given text with the current renderer's configuration.
// The drawing position depends on the given pixel coordinates and
// the renderer's align, as specified on [Renderer.SetAlign](). Layout
// coordinates are mapped to the target through the current viewport,
// so the viewport should match the target size.
//
// Errors are the same as for [Renderer.Layout](); in that case nothing
// is drawn. The method panics if no atlas has been set.
func (self *Renderer) Draw(target core.Target, text string, x, y float32) error {
	if self.atlas == nil {
		panic("btxt.Renderer can't draw without an atlas... maybe you forgot to Renderer.SetAtlas()?")
	}

	self.geometry.Reset()
	err := self.appendLayout(&self.geometry, text, x, y)
	if err != nil { return err }
	if self.geometry.Len() == 0 { return nil }

	self.drawGeometry(target, self.loadTexture(), &self.geometry)
	return nil
}

func (self *Renderer) loadTexture() core.Texture {
	atlasID := self.atlas.ID()
	texture, found := internal.DefaultCache.GetTexture(atlasID)
	if found { return texture }

	// texture not found, create and cache
	texture = newAtlasTexture(self.atlas)
	if !internal.DefaultCache.SetTexture(atlasID, texture) {
		internal.Logger().Warn("atlas texture exceeds cache capacity", "atlas", atlasID)
	}
	return texture
}
