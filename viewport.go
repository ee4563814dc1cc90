package btxt

import "strconv"

// The viewport is the size of the framebuffer that text is drawn to,
// in pixels. Layout always works on absolute pixel coordinates with the
// origin at the bottom-left corner and y growing upwards; the viewport
// is what renderers need to map those coordinates to device space.
type Viewport struct {
	Width int
	Height int
}

// Maps absolute pixel coordinates to normalized device coordinates
// in the [-1, 1] range: n = (p - size/2)/(size/2).
func (self Viewport) Normalize(x, y float32) (float32, float32) {
	halfWidth, halfHeight := float32(self.Width)/2, float32(self.Height)/2
	return (x - halfWidth)/halfWidth, (y - halfHeight)/halfHeight
}

// Converts bottom-left origin coordinates to the top-left origin
// coordinates used by Ebitengine and the image package.
func (self Viewport) ToTopLeft(x, y float32) (float32, float32) {
	return x, float32(self.Height) - y
}

// Returns a textual representation of the viewport, like "800x600".
func (self Viewport) String() string {
	return strconv.Itoa(self.Width) + "x" + strconv.Itoa(self.Height)
}
