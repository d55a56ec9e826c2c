package text

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestBuiltinShaper(t *testing.T) {
	face := testSource(t, goregular.TTF).Face(14)
	s := &BuiltinShaper{}

	glyphs := s.Shape([]rune("Hi!"), face, DirectionLTR)
	if len(glyphs) != 3 {
		t.Fatalf("Shape(Hi!) = %d glyphs, want 3", len(glyphs))
	}
	x := 0.0
	for i, g := range glyphs {
		if g.Cluster != i {
			t.Errorf("glyph %d cluster = %d, want %d", i, g.Cluster, i)
		}
		if g.X != x {
			t.Errorf("glyph %d X = %v, want %v", i, g.X, x)
		}
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d XAdvance = %v, want > 0", i, g.XAdvance)
		}
		x += g.XAdvance
	}
	if got := face.Advance("Hi!"); got != x {
		t.Errorf("sum of advances = %v, want face.Advance %v", x, got)
	}

	if got := s.Shape(nil, face, DirectionLTR); got != nil {
		t.Errorf("Shape(nil) = %v, want nil", got)
	}
	if got := s.Shape([]rune("a"), nil, DirectionLTR); got != nil {
		t.Errorf("Shape(nil face) = %v, want nil", got)
	}
}

func TestSetShaper(t *testing.T) {
	t.Cleanup(func() { SetShaper(nil) })

	gt := NewGoTextShaper()
	SetShaper(gt)
	if GetShaper() != Shaper(gt) {
		t.Error("GetShaper() did not return the shaper passed to SetShaper")
	}
	SetShaper(nil)
	if _, ok := GetShaper().(*BuiltinShaper); !ok {
		t.Errorf("GetShaper() after SetShaper(nil) = %T, want *BuiltinShaper", GetShaper())
	}

	face := testSource(t, goregular.TTF).Face(12)
	run := ShapeRun([]rune("abc"), face, DirectionLTR)
	if run.Len != 3 || len(run.Glyphs) != 3 {
		t.Errorf("ShapeRun = (%d runes, %d glyphs), want (3, 3)", run.Len, len(run.Glyphs))
	}
}
