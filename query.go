package textblock

import (
	"iter"

	"github.com/gogpu/textblock/text"
)

// CursorType selects the caret shape of Geometry.
type CursorType int

const (
	// CursorBefore is a thin caret before the character at the cursor.
	CursorBefore CursorType = iota
	// CursorUnder is a block covering the character at the cursor.
	CursorUnder
)

// String returns the name of the cursor type.
func (t CursorType) String() string {
	switch t {
	case CursorBefore:
		return "Before"
	case CursorUnder:
		return "Under"
	default:
		return "Unknown"
	}
}

// Caret is the geometry of a cursor. At a boundary between runs of
// opposite direction the caret is split: Rect is where text of the
// paragraph direction would be inserted, Split where text of the other
// direction would go.
type Caret struct {
	Rect      text.Rect
	Split     text.Rect
	HasSplit  bool
	Direction text.Direction
}

// locate returns the paragraph and logical item holding the cursor
// position, laying the document out first.
func (c *Cursor) locate() (*cursorSlot, *paragraph, *item) {
	s := c.state()
	if s == nil || !c.tb.relayout() {
		return nil, nil, nil
	}
	p := s.node.par
	if p == nil || p.node != s.node {
		invariant("locate", "node has no paragraph after layout")
		return nil, nil, nil
	}
	it := p.itemAt(s.pos)
	if it == nil || it.line == nil {
		invariant("locate", "position has no laid out item")
		return nil, nil, nil
	}
	return s, p, it
}

// itemAt returns the logical item containing rune pos, or the last item
// for the end of the paragraph.
func (p *paragraph) itemAt(pos int) *item {
	for _, it := range p.items {
		if pos >= it.start && pos < it.end() {
			return it
		}
	}
	if len(p.items) == 0 {
		return nil
	}
	return p.items[len(p.items)-1]
}

// lineBefore returns the line preceding ln when ln is a wrapped line
// starting at rune pos, or nil.
func (p *paragraph) lineBefore(ln *line, pos int) *line {
	if ln.no == 0 {
		return nil
	}
	if first, _ := ln.bounds(); first != pos {
		return nil
	}
	return p.lines[ln.no-1]
}

// PenGeometry returns the pen position at the cursor: X is the leading
// edge of the character, W its advance, Y and H those of the line.
func (c *Cursor) PenGeometry() (text.Rect, bool) {
	s, p, it := c.locate()
	if it == nil {
		return text.Rect{}, false
	}
	ln := it.line
	if s.eol {
		if prev := p.lineBefore(ln, s.pos); prev != nil {
			r := prev.rect()
			return text.Rect{X: r.MaxX(), Y: r.Y, W: 0, H: r.H}, true
		}
	}
	k := s.pos - it.start
	x := ln.x + it.x + it.penX(k)
	w := 0.0
	if k < it.n {
		_, w, _ = charBox(it, k)
	}
	return text.Rect{X: x, Y: p.y + ln.y, W: w, H: ln.h}, true
}

// charBox returns the visual offset and width of rune k of an item.
func charBox(it *item, k int) (x, w float64, ok bool) {
	if it.kind == itemText {
		return it.run.CharBox(k)
	}
	if k != 0 {
		return 0, 0, false
	}
	return 0, it.w, true
}

// CharGeometry returns the box of the character at the cursor. At the end
// of a paragraph the box has zero width.
func (c *Cursor) CharGeometry() (text.Rect, bool) {
	s, p, it := c.locate()
	if it == nil {
		return text.Rect{}, false
	}
	ln := it.line
	k := s.pos - it.start
	y, h := p.y+ln.y, ln.h
	if bx, bw, ok := charBox(it, k); ok {
		if it.deleted {
			bw = 0
		}
		return text.Rect{X: ln.x + it.x + bx, Y: y, W: bw, H: h}, true
	}
	return text.Rect{X: ln.x + it.x + it.penX(k), Y: y, H: h}, true
}

// LineGeometry returns the rectangle of the line holding the cursor and
// its line number, or -1.
func (c *Cursor) LineGeometry() (text.Rect, int) {
	_, _, it := c.locate()
	if it == nil {
		return text.Rect{}, -1
	}
	return it.line.rect(), it.line.number()
}

// Geometry returns the caret for the given cursor type.
func (c *Cursor) Geometry(typ CursorType) (Caret, bool) {
	if typ == CursorUnder {
		r, ok := c.CharGeometry()
		if !ok {
			return Caret{}, false
		}
		_, p, _ := c.locate()
		return Caret{Rect: r, Direction: p.dir}, true
	}

	r, ok := c.PenGeometry()
	if !ok {
		return Caret{}, false
	}
	s, p, it := c.locate()
	caret := Caret{Rect: text.Rect{X: r.X, Y: r.Y, H: r.H}, Direction: p.dir}
	if s.pos == 0 || s.eol {
		return caret, true
	}
	prev := p.itemAt(s.pos - 1)
	if prev == it || prev.line == nil || prev.level%2 == it.level%2 {
		return caret, true
	}

	// Text inserted here extends the run of the paragraph direction.
	trail := text.Rect{X: prev.line.x + prev.x + prev.penX(s.pos-prev.start), Y: p.y + prev.line.y, H: prev.line.h}
	if prev.level%2 == p.baseLevel()%2 {
		caret.Rect, caret.Split = trail, caret.Rect
	} else {
		caret.Split = trail
	}
	caret.HasSplit = true
	return caret, true
}

// LineCharFirst moves to the first character of the cursor's line.
func (c *Cursor) LineCharFirst() bool {
	s, _, it := c.locate()
	if it == nil {
		return false
	}
	first, _ := it.line.bounds()
	s.set(s.node, first)
	return true
}

// LineCharLast moves to the end of the cursor's line. On a wrapped line
// the cursor is placed at the start of the next line and flagged EOL so
// that it is displayed at the end of this one.
func (c *Cursor) LineCharLast() bool {
	s, p, it := c.locate()
	if it == nil {
		return false
	}
	ln := it.line
	if ln.no == len(p.lines)-1 {
		s.set(s.node, len(s.node.text))
		return true
	}
	first, _ := p.lines[ln.no+1].bounds()
	s.set(s.node, first)
	s.eol = true
	return true
}

// SetLine moves to the first character of line n. It reports false when
// there is no such line.
func (c *Cursor) SetLine(n int) bool {
	s := c.state()
	if s == nil || !c.tb.relayout() {
		return false
	}
	ln := c.tb.lineByNumber(n)
	if ln == nil {
		return false
	}
	first, _ := ln.bounds()
	s.set(ln.par.node, first)
	return true
}

// SetLineCoord moves to the first character of the line at y and returns
// its line number, or -1 when no line covers y.
func (c *Cursor) SetLineCoord(y float64) int {
	s := c.state()
	if s == nil || !c.tb.relayout() {
		return -1
	}
	p := c.tb.paragraphAtY(y)
	if p == nil {
		return -1
	}
	ln := p.lineAtY(y)
	if ln == nil {
		return -1
	}
	first, _ := ln.bounds()
	s.set(p.node, first)
	return ln.number()
}

// SetCharCoord moves to the character under (x, y). Points left or right
// of a line map to its first or last position. It reports false when no
// line covers y.
func (c *Cursor) SetCharCoord(x, y float64) bool {
	s := c.state()
	if s == nil || !c.tb.relayout() {
		return false
	}
	p := c.tb.paragraphAtY(y)
	if p == nil {
		return false
	}
	ln := p.lineAtY(y)
	if ln == nil {
		return false
	}

	first, end := ln.bounds()
	rx := x - ln.x
	if rx < 0 {
		s.set(p.node, first)
		return true
	}
	for _, it := range ln.items {
		if it.deleted || rx >= it.x+it.w {
			continue
		}
		pos := it.start
		if it.kind == itemText {
			pos += max(it.run.CharAt(rx-it.x), 0)
		}
		s.set(p.node, pos)
		return true
	}
	if ln.no == len(p.lines)-1 {
		end = len(p.node.text)
	} else if end > first {
		// Stay on this line: end is the first position of the next one.
		end--
	}
	s.set(p.node, end)
	return true
}

// RangeGeometry returns the rectangles covering the text between c and o,
// at least one per line of the range. An empty line inside the range gets
// a zero-width rectangle at its start. The rectangles are computed as the
// sequence is consumed.
func (c *Cursor) RangeGeometry(o *Cursor) iter.Seq[text.Rect] {
	return func(yield func(text.Rect) bool) {
		a, b := c.state(), o.state()
		if a == nil || b == nil || c.tb != o.tb || !c.tb.relayout() {
			return
		}
		n1, p1, n2, p2 := a.node, a.pos, b.node, b.pos
		if comparePos(n1, p1, n2, p2) > 0 {
			n1, p1, n2, p2 = n2, p2, n1, p1
		}
		for _, n := range c.tb.nodes[n1.idx : n2.idx+1] {
			p := n.par
			if p == nil {
				invariant("range geometry", "node has no paragraph after layout")
				return
			}
			from, to := 0, len(n.text)+1
			if n == n1 {
				from = p1
			}
			if n == n2 {
				to = p2
			}
			for _, ln := range p.lines {
				rects := lineSelection(p, ln, from, to)
				if first, end := ln.bounds(); len(rects) == 0 && first == end && from <= first && first < to {
					rects = append(rects, text.Rect{X: ln.x, Y: p.y + ln.y, H: ln.h})
				}
				for _, r := range rects {
					if !yield(r) {
						return
					}
				}
			}
		}
	}
}

// lineSelection returns the rectangles of ln covering runes [from, to),
// merging visually adjacent pieces.
func lineSelection(p *paragraph, ln *line, from, to int) []text.Rect {
	var out []text.Rect
	y := p.y + ln.y
	for _, it := range ln.items {
		if it.deleted || it.kind == itemEllipsis {
			continue
		}
		s, e := max(from, it.start), min(to, it.end())
		if s >= e {
			continue
		}
		x0 := it.penX(s - it.start)
		x1 := it.penX(e - it.start)
		if x0 > x1 {
			x0, x1 = x1, x0
		}
		r := text.Rect{X: ln.x + it.x + x0, Y: y, W: x1 - x0, H: ln.h}
		if n := len(out); n > 0 && out[n-1].MaxX() == r.X {
			out[n-1].W += r.W
			continue
		}
		out = append(out, r)
	}
	return out
}
