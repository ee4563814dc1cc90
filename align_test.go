package btxt

import "testing"

func TestAlignAdjusted(t *testing.T) {
	tests := []struct {
		base, change, want Align
	}{
		{Left | Bottom, Top, Left | Top},
		{Left | Bottom, Right, Right | Bottom},
		{Left | Bottom, Center, Center},
		{Right | Top, 0, Right | Top},
	}
	for _, test := range tests {
		got := test.base.Adjusted(test.change)
		if got != test.want {
			t.Fatalf("%s.Adjusted(%s): expected %s, got %s", test.base, test.change, test.want, got)
		}
	}
}

func TestAlignString(t *testing.T) {
	tests := map[Align]string{
		Top | Right: "(Top | Right)",
		Center: "(VertCenter | HorzCenter)",
		HorzCenter: "(HorzCenter)",
		Bottom: "(Bottom)",
		0: "(ZeroAlign)",
	}
	for align, want := range tests {
		if align.String() != want {
			t.Fatalf("expected %s, got %s", want, align.String())
		}
	}
}

func TestAlignOriginShift(t *testing.T) {
	dx, dy := (Right | VertCenter).originShift(30, 16)
	if dx != -30 || dy != -8 {
		t.Fatalf("expected (-30, -8), got (%v, %v)", dx, dy)
	}
	dx, dy = (Left | Bottom).originShift(30, 16)
	if dx != 0 || dy != 0 {
		t.Fatalf("expected no shift, got (%v, %v)", dx, dy)
	}
}
