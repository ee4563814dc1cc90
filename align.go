package btxt

// An Align determines which point of the text box the coordinates
// passed to [Renderer.Layout]() and [Renderer.Draw]() refer to.
//
// The text box is the rectangle returned by [Renderer.Measure](). With
// the default (btxt.[Left] | btxt.[Bottom]) align, coordinates are the
// bottom-left corner of that box, which is the natural anchor for the
// bottom-left origin, y-up coordinate system used by btxt. With
// btxt.[Top], the same y is the upper edge of the glyph quads instead.
//
// Aligns combine a horizontal and a vertical component with a bitwise
// OR. Use [Align.Horz]() and [Align.Vert]() to inspect them.
type Align uint8

const (
	Left       Align = 0b0001_0000
	HorzCenter Align = 0b0010_0000
	Right      Align = 0b0100_0000

	Bottom     Align = 0b0000_0001 // bottom edge of the glyph quads
	VertCenter Align = 0b0000_0010 // half the font size above the bottom edge
	Top        Align = 0b0000_0100 // top edge of the glyph quads

	Center Align = HorzCenter | VertCenter

	horzMask Align = 0b1111_0000
	vertMask Align = 0b0000_1111
)

// Returns the horizontal component of the align ([Left], [HorzCenter],
// [Right]), or zero if unset.
func (self Align) Horz() Align { return self & horzMask }

// Returns the vertical component of the align ([Bottom], [VertCenter],
// [Top]), or zero if unset.
func (self Align) Vert() Align { return self & vertMask }

// Returns a copy of the align with its components replaced by those
// set on the given align. Components that are zero on the given align
// are kept, so Adjusted(btxt.[Top]) only changes the vertical part.
func (self Align) Adjusted(align Align) Align {
	if align.Horz() == 0 { align |= self.Horz() }
	if align.Vert() == 0 { align |= self.Vert() }
	return align
}

// Returns the offset from the aligned coordinates to the bottom-left
// corner of a text box of the given size.
func (self Align) originShift(width, height float32) (dx, dy float32) {
	switch self.Horz() {
	case HorzCenter: dx = -width/2
	case Right: dx = -width
	}
	switch self.Vert() {
	case VertCenter: dy = -height/2
	case Top: dy = -height
	}
	return dx, dy
}

// Returns a textual representation of the align, like "(Top | Right)".
// The vertical component is always written first.
func (self Align) String() string {
	if self == 0 { return "(ZeroAlign)" }
	vert, horz := alignName(self.Vert()), alignName(self.Horz())
	switch {
	case vert == "": return "(" + horz + ")"
	case horz == "": return "(" + vert + ")"
	default:
		return "(" + vert + " | " + horz + ")"
	}
}

func alignName(component Align) string {
	switch component {
	case 0: return ""
	case Left: return "Left"
	case HorzCenter: return "HorzCenter"
	case Right: return "Right"
	case Bottom: return "Bottom"
	case VertCenter: return "VertCenter"
	case Top: return "Top"
	}
	if component & horzMask != 0 { return "HorzUnknown" }
	return "VertUnknown"
}
