package recording

import (
	"testing"

	"github.com/gogpu/textblock/text"
)

// testRun builds a run of n glyphs, each 10 units wide.
func testRun(n int) text.ShapedRun {
	glyphs := make([]text.ShapedGlyph, n)
	for i := range glyphs {
		glyphs[i] = text.ShapedGlyph{GID: text.GlyphID(i + 1), Cluster: i, XAdvance: 10}
	}
	r := text.NewShapedRun(glyphs, n, nil, text.DirectionLTR)
	r.Ascent, r.Descent = 8, 2
	return r
}

func TestNewResourcePool(t *testing.T) {
	pool := NewResourcePool()
	if pool == nil {
		t.Fatal("NewResourcePool returned nil")
	}
	if pool.RunCount() != 0 {
		t.Errorf("RunCount() = %d, want 0", pool.RunCount())
	}
}

func TestResourcePool_AddRun(t *testing.T) {
	pool := NewResourcePool()
	run := testRun(3)

	ref := pool.AddRun(&run)
	if ref != 0 {
		t.Errorf("first ref = %d, want 0", ref)
	}
	if ref2 := pool.AddRun(&run); ref2 != 1 {
		t.Errorf("second ref = %d, want 1", ref2)
	}

	// The pool holds a copy.
	run.Glyphs[0].GID = 99
	got := pool.GetRun(ref)
	if got == nil {
		t.Fatal("GetRun returned nil")
	}
	if got.Glyphs[0].GID != 1 {
		t.Errorf("pooled GID = %d, want 1", got.Glyphs[0].GID)
	}
	if got.Len != 3 || got.Advance != 30 {
		t.Errorf("pooled run = (len %d, advance %v), want (3, 30)", got.Len, got.Advance)
	}
}

func TestResourcePool_GetRunInvalid(t *testing.T) {
	pool := NewResourcePool()
	if got := pool.GetRun(0); got != nil {
		t.Errorf("GetRun(0) on empty pool = %v, want nil", got)
	}
	if got := pool.GetRun(RunRef(InvalidRef)); got != nil {
		t.Errorf("GetRun(InvalidRef) = %v, want nil", got)
	}
}

func TestResourcePool_ClearClone(t *testing.T) {
	pool := NewResourcePool()
	run := testRun(2)
	pool.AddRun(&run)

	clone := pool.Clone()
	pool.Clear()
	if pool.RunCount() != 0 {
		t.Errorf("RunCount() after Clear = %d, want 0", pool.RunCount())
	}
	if clone.RunCount() != 1 {
		t.Fatalf("clone RunCount() = %d, want 1", clone.RunCount())
	}
	if got := clone.GetRun(0).Len; got != 2 {
		t.Errorf("clone run Len = %d, want 2", got)
	}
}
