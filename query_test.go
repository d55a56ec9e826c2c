package textblock

import (
	"testing"

	"github.com/gogpu/textblock/text"
)

func TestCursorTypeString(t *testing.T) {
	tests := []struct {
		typ  CursorType
		want string
	}{
		{CursorBefore, "Before"},
		{CursorUnder, "Under"},
		{CursorType(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("CursorType(%d).String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}

func TestPenAndCharGeometry(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "abc")
	line := lineRect(t, tb, 0)

	c := cursorAt(t, tb, 1)
	pen, ok := c.PenGeometry()
	if !ok {
		t.Fatal("PenGeometry() failed")
	}
	if !near(pen.X, 6) || !near(pen.W, 6) || !near(pen.Y, line.Y) || !near(pen.H, line.H) {
		t.Errorf("PenGeometry() = %+v, want x 6 w 6 on line %+v", pen, line)
	}

	box, _ := c.CharGeometry()
	if !near(box.X, 6) || !near(box.W, 6) {
		t.Errorf("CharGeometry() = %+v, want x 6 w 6", box)
	}

	c.ParagraphCharLast()
	box, _ = c.CharGeometry()
	if !near(box.X, 18) || box.W != 0 {
		t.Errorf("CharGeometry() at the end = %+v, want x 18 w 0", box)
	}

	r, n := c.LineGeometry()
	if n != 0 || r != line {
		t.Errorf("LineGeometry() = (%+v, %d), want (%+v, 0)", r, n, line)
	}
}

func TestGeometry(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "abc")
	c := cursorAt(t, tb, 2)

	before, ok := c.Geometry(CursorBefore)
	if !ok || !near(before.Rect.X, 12) || before.Rect.W != 0 || before.HasSplit {
		t.Errorf("Geometry(CursorBefore) = %+v", before)
	}
	under, ok := c.Geometry(CursorUnder)
	if !ok || !near(under.Rect.X, 12) || !near(under.Rect.W, 6) {
		t.Errorf("Geometry(CursorUnder) = %+v", under)
	}
	if before.Direction != text.DirectionLTR {
		t.Errorf("Direction = %v, want LTR", before.Direction)
	}
}

func TestLineCharFirstLast(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 wrap=word'")
	setText(t, tb, "hello world")
	tb.SetSize(40, -1)

	c := cursorAt(t, tb, 8)
	if !c.LineCharFirst() || c.Pos() != 6 {
		t.Errorf("LineCharFirst() on the second line = %d, want 6", c.Pos())
	}
	if !c.LineCharLast() || c.Pos() != 11 || c.EOL() {
		t.Errorf("LineCharLast() on the last line = %d eol %v, want 11 false", c.Pos(), c.EOL())
	}

	c.SetPos(2)
	if !c.LineCharLast() || c.Pos() != 6 || !c.EOL() {
		t.Fatalf("LineCharLast() on a wrapped line = %d eol %v, want 6 true", c.Pos(), c.EOL())
	}
	// The cursor shows at the end of the first line.
	pen, _ := c.PenGeometry()
	first := lineRect(t, tb, 0)
	if !near(pen.X, first.MaxX()) || !near(pen.Y, first.Y) {
		t.Errorf("PenGeometry() with eol = %+v, want end of %+v", pen, first)
	}
	if _, n := c.LineGeometry(); n != 1 {
		t.Errorf("LineGeometry() line = %d, want 1", n)
	}

	c.SetEOL(false)
	pen, _ = c.PenGeometry()
	second := lineRect(t, tb, 1)
	if !near(pen.Y, second.Y) || !near(pen.X, second.X) {
		t.Errorf("PenGeometry() without eol = %+v, want start of %+v", pen, second)
	}
}

func TestSetLine(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "ab\ncd\u2029ef")
	c := tb.Cursor()

	tests := []struct {
		line int
		ok   bool
		pos  int
	}{
		{0, true, 0},
		{1, true, 3},
		{2, true, 6},
		{3, false, 6},
		{-1, false, 6},
	}
	for _, tt := range tests {
		if got := c.SetLine(tt.line); got != tt.ok {
			t.Errorf("SetLine(%d) = %v, want %v", tt.line, got, tt.ok)
		}
		if got := c.Pos(); got != tt.pos {
			t.Errorf("after SetLine(%d) Pos() = %d, want %d", tt.line, got, tt.pos)
		}
	}
}

func TestSetLineCoord(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "ab\u2029cd\u2029ef")
	c := tb.Cursor()

	for i, want := range []int{0, 3, 6} {
		r := lineRect(t, tb, i)
		if got := c.SetLineCoord(r.Y + r.H/2); got != i {
			t.Errorf("SetLineCoord(line %d) = %d", i, got)
		}
		if got := c.Pos(); got != want {
			t.Errorf("after SetLineCoord(line %d) Pos() = %d, want %d", i, got, want)
		}
	}
	_, h := tb.FormattedSize()
	if got := c.SetLineCoord(h + 100); got != -1 {
		t.Errorf("SetLineCoord below the text = %d, want -1", got)
	}
}

func TestSetCharCoord(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "abcdef\u2029gh")
	c := tb.Cursor()
	r0 := lineRect(t, tb, 0)
	r1 := lineRect(t, tb, 1)
	y0, y1 := r0.Y+r0.H/2, r1.Y+r1.H/2

	tests := []struct {
		name string
		x, y float64
		pos  int
	}{
		{"first char", 1, y0, 0},
		{"third char", 13, y0, 2},
		{"left of line", -5, y0, 0},
		{"right of line", 100, y0, 6},
		{"second paragraph", 7, y1, 8},
		{"right of last line", 100, y1, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !c.SetCharCoord(tt.x, tt.y) {
				t.Fatalf("SetCharCoord(%v, %v) failed", tt.x, tt.y)
			}
			if got := c.Pos(); got != tt.pos {
				t.Errorf("Pos() = %d, want %d", got, tt.pos)
			}
		})
	}

	if c.SetCharCoord(0, r1.MaxY()+50) {
		t.Error("SetCharCoord below the text succeeded")
	}
}

func TestSetCharCoordWrapped(t *testing.T) {
	tb := newTestBlock(t, "DEFAULT='font=Monospace font_size=10 wrap=char'")
	setText(t, tb, "abcdefg")
	tb.SetSize(18, -1)
	c := tb.Cursor()

	r := lineRect(t, tb, 0)
	if !c.SetCharCoord(17, r.Y+r.H/2) || c.Pos() != 2 {
		t.Errorf("last char of the first line: Pos() = %d, want 2", c.Pos())
	}
	// Past the end of a wrapped line stays on that line.
	if !c.SetCharCoord(50, r.Y+r.H/2) || c.Pos() != 2 {
		t.Errorf("right of a wrapped line: Pos() = %d, want 2", c.Pos())
	}
}

func TestRangeGeometry(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "abcdef\u2029gh")

	collect := func(a, b *Cursor) []text.Rect {
		var out []text.Rect
		for r := range a.RangeGeometry(b) {
			out = append(out, r)
		}
		return out
	}

	a := cursorAt(t, tb, 1)
	b := cursorAt(t, tb, 4)
	rects := collect(a, b)
	if len(rects) != 1 || !near(rects[0].X, 6) || !near(rects[0].W, 18) {
		t.Errorf("single line range = %+v, want one rect at 6 wide 18", rects)
	}

	b.SetPos(8)
	rects = collect(b, a)
	if len(rects) != 2 {
		t.Fatalf("two paragraph range = %+v, want two rects", rects)
	}
	if !near(rects[0].X, 6) || !near(rects[0].W, 30) {
		t.Errorf("first rect = %+v, want x 6 w 30", rects[0])
	}
	if !near(rects[1].X, 0) || !near(rects[1].W, 6) {
		t.Errorf("second rect = %+v, want x 0 w 6", rects[1])
	}

	// Stopping early is allowed.
	for range a.RangeGeometry(b) {
		break
	}
}

func TestRangeGeometryEmptyParagraph(t *testing.T) {
	tb := newTestBlock(t, monoStyle)
	setText(t, tb, "ab\u2029\u2029cd")

	var rects []text.Rect
	for r := range cursorAt(t, tb, 1).RangeGeometry(cursorAt(t, tb, 5)) {
		rects = append(rects, r)
	}
	if len(rects) != 3 {
		t.Fatalf("rects = %+v, want 3", rects)
	}
	if !near(rects[0].X, 6) || !near(rects[0].W, 6) {
		t.Errorf("first rect = %+v, want x 6 w 6", rects[0])
	}
	if !near(rects[1].X, 0) || rects[1].W != 0 || rects[1].H <= 0 {
		t.Errorf("empty paragraph rect = %+v, want zero width at x 0", rects[1])
	}
	if !(rects[0].Y < rects[1].Y && rects[1].Y < rects[2].Y) {
		t.Errorf("rect rows = %v, %v, %v, want increasing", rects[0].Y, rects[1].Y, rects[2].Y)
	}
	if !near(rects[2].X, 0) || !near(rects[2].W, 6) {
		t.Errorf("last rect = %+v, want x 0 w 6", rects[2])
	}
}
