package text

import (
	"testing"

	"golang.org/x/image/font/gofont/gomono"
)

// monoFace returns Go Mono at 10px, where every glyph has the same advance.
func monoFace(t *testing.T) (Face, float64) {
	t.Helper()
	face := testSource(t, gomono.TTF).Face(10)
	return face, face.Advance("M")
}

func TestShapedRunGeometry(t *testing.T) {
	face, adv := monoFace(t)
	run := ShapeRunWith(&BuiltinShaper{}, []rune("hello"), face, DirectionLTR)

	if run.Len != 5 {
		t.Fatalf("Len = %d, want 5", run.Len)
	}
	if got, want := run.Advance, 5*adv; got != want {
		t.Errorf("Advance = %v, want %v", got, want)
	}
	if run.Ascent <= 0 || run.Descent <= 0 {
		t.Errorf("Ascent/Descent = %v/%v, want > 0", run.Ascent, run.Descent)
	}

	x, w, ok := run.CharBox(2)
	if !ok || x != 2*adv || w != adv {
		t.Errorf("CharBox(2) = (%v, %v, %v), want (%v, %v, true)", x, w, ok, 2*adv, adv)
	}
	if _, _, ok := run.CharBox(5); ok {
		t.Error("CharBox(5) ok = true, want false")
	}
	if got := run.PenX(5); got != run.Advance {
		t.Errorf("PenX(Len) = %v, want %v", got, run.Advance)
	}
	if got := run.CharAt(2.5 * adv); got != 2 {
		t.Errorf("CharAt(2.5 adv) = %d, want 2", got)
	}
	if got := run.CharAt(-1); got != -1 {
		t.Errorf("CharAt(-1) = %d, want -1", got)
	}
}

func TestShapedRunRTL(t *testing.T) {
	face, adv := monoFace(t)
	run := ShapeRunWith(&BuiltinShaper{}, []rune("abc"), face, DirectionRTL)

	// First logical rune sits at the right edge.
	x, _, _ := run.CharBox(0)
	if want := 2 * adv; x != want {
		t.Errorf("CharBox(0).x = %v, want %v", x, want)
	}
	if got := run.PenX(0); got != run.Advance {
		t.Errorf("PenX(0) = %v, want %v", got, run.Advance)
	}
	if got := run.CharAt(0.5 * adv); got != 2 {
		t.Errorf("CharAt(left edge) = %d, want 2", got)
	}
	if run.Glyphs[0].Cluster != 2 {
		t.Errorf("first visual glyph cluster = %d, want 2", run.Glyphs[0].Cluster)
	}
}

func TestShapedRunCutoff(t *testing.T) {
	face, adv := monoFace(t)
	run := ShapeRunWith(&BuiltinShaper{}, []rune("abcdefg"), face, DirectionLTR)

	tests := []struct {
		width float64
		want  int
	}{
		{3 * adv, 3},
		{3*adv + adv/2, 3},
		{0, 0},
		{7 * adv, -1},
		{100 * adv, -1},
	}
	for _, tt := range tests {
		if got := run.Cutoff(tt.width); got != tt.want {
			t.Errorf("Cutoff(%v) = %d, want %d", tt.width, got, tt.want)
		}
	}
}

func TestShapedRunSplitMerge(t *testing.T) {
	face, adv := monoFace(t)
	for _, dir := range []Direction{DirectionLTR, DirectionRTL} {
		t.Run(dir.String(), func(t *testing.T) {
			run := ShapeRunWith(&BuiltinShaper{}, []rune("abcdef"), face, dir)

			head, tail := run.Split(2)
			if head.Len != 2 || tail.Len != 4 {
				t.Fatalf("Split lens = %d/%d, want 2/4", head.Len, tail.Len)
			}
			if head.Advance != 2*adv || tail.Advance != 4*adv {
				t.Errorf("Split advances = %v/%v, want %v/%v", head.Advance, tail.Advance, 2*adv, 4*adv)
			}
			for _, g := range tail.Glyphs {
				if g.Cluster < 0 || g.Cluster >= 4 {
					t.Errorf("tail cluster %d out of range", g.Cluster)
				}
			}

			merged := head.Merge(tail)
			if merged.Len != run.Len || merged.Advance != run.Advance {
				t.Fatalf("Merge = (%d, %v), want (%d, %v)", merged.Len, merged.Advance, run.Len, run.Advance)
			}
			for i := range run.Glyphs {
				if merged.Glyphs[i] != run.Glyphs[i] {
					t.Errorf("glyph %d = %+v, want %+v", i, merged.Glyphs[i], run.Glyphs[i])
				}
			}
		})
	}
}
