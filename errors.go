package btxt

import "strconv"

// Range of character codes that can be mapped to atlas cells. Atlases
// start at the space character (code 32) and control characters are
// not represented.
const (
	FirstCode rune = 32
	LastCode  rune = 255
)

// Returned by layout and draw operations when the text contains a
// character outside the [FirstCode, LastCode] range. Nothing is laid
// out in that case; callers may replace or skip the character and try
// again, but the renderer never substitutes glyphs on its own.
type GlyphRangeError struct {
	Index int // character index within the text (in runes), -1 for single code queries
	Code rune
}

func (self *GlyphRangeError) Error() string {
	msg := "btxt: character " + strconv.QuoteRune(self.Code) +
		" (code " + strconv.FormatInt(int64(self.Code), 10) + ")"
	if self.Index >= 0 { msg += " at index " + strconv.Itoa(self.Index) }
	return msg + " outside atlas range [32, 255]"
}
