package main

import "strconv"
import "math/rand"

// A scrolling line buffer. Lines are added at the bottom and the
// oldest ones are dropped when the buffer reaches the number of
// lines that fit on the screen.
type terminal struct {
	lines []string
	lineHeight int
	screenHeight int
}

func newTerminal(lineHeight, screenHeight int) *terminal {
	if lineHeight <= 0 { panic("line height must be strictly positive") }
	return &terminal{ lineHeight: lineHeight, screenHeight: screenHeight }
}

func (self *terminal) MaxLines() int {
	return self.screenHeight/self.lineHeight
}

func (self *terminal) Lines() []string { return self.lines }

func (self *terminal) PrintLine(line string) {
	self.lines = append(self.lines, line)
	if len(self.lines) >= self.MaxLines() {
		self.lines = self.lines[1 : ]
	}
}

// Updates the screen height and drops the oldest lines that no
// longer fit.
func (self *terminal) Resize(screenHeight int) {
	self.screenHeight = screenHeight
	excess := len(self.lines) - self.MaxLines()
	if excess > 0 {
		self.lines = self.lines[excess : ]
	}
}

func (self *terminal) Clear() {
	self.lines = self.lines[ : 0]
}

// Returns a line with a few normally distributed random values.
func randomLine(rng *rand.Rand) string {
	a := rng.NormFloat64()
	b := rng.NormFloat64()*10
	c := rng.NormFloat64()*5
	d := rng.NormFloat64()*20
	return "a: " + formatFloat(a) + " - b: " + formatFloat(b) +
		" c: " + formatFloat(c) + " d: " + formatFloat(d)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', 6, 64)
}
