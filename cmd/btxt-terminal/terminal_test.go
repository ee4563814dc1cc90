package main

import "testing"
import "strconv"
import "strings"
import "math/rand"

func TestTerminalRolling(t *testing.T) {
	term := newTerminal(16, 100) // 6 lines fit
	if term.MaxLines() != 6 {
		t.Fatalf("expected 6 max lines, got %d", term.MaxLines())
	}
	for i := 0; i < 20; i++ {
		term.PrintLine(strconv.Itoa(i))
		if len(term.Lines()) >= term.MaxLines() {
			t.Fatalf("line buffer reached %d lines", len(term.Lines()))
		}
	}
	lines := term.Lines()
	if lines[len(lines) - 1] != "19" || lines[0] != "15" {
		t.Fatalf("unexpected lines %v", lines)
	}

	term.Resize(48) // 3 lines fit
	lines = term.Lines()
	if len(lines) != 3 || lines[0] != "17" || lines[2] != "19" {
		t.Fatalf("unexpected lines after resize %v", lines)
	}
	term.Resize(500)
	if len(term.Lines()) != 3 {
		t.Fatal("expected growing the screen to keep the lines")
	}
	term.Clear()
	if len(term.Lines()) != 0 {
		t.Fatal("expected empty buffer after Clear()")
	}
}

func TestRandomLine(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	line := randomLine(rng)
	for _, prefix := range []string{"a: ", " - b: ", " c: ", " d: "} {
		if !strings.Contains(line, prefix) {
			t.Fatalf("expected line to contain '%s', got '%s'", prefix, line)
		}
	}
	for _, r := range line {
		if r < 32 || r > 255 {
			t.Fatalf("line contains unprintable character %q", r)
		}
	}
}

func TestFPSLabel(t *testing.T) {
	if fpsLabel(59.94) != "59.9 FPS" {
		t.Fatalf("unexpected label '%s'", fpsLabel(59.94))
	}
}
