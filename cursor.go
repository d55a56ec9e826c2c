package textblock

import (
	"github.com/gogpu/textblock/text"
)

// cursorSlot is the state of one cursor. Slots are reused after Free;
// gen distinguishes the handles of successive owners.
type cursorSlot struct {
	gen  uint32
	live bool
	node *node
	pos  int

	// eol places the cursor at the end of the previous visual line when
	// pos is the first position of a wrapped line.
	eol bool
}

// Cursor is a position in a Textblock: a paragraph and a code point
// offset into it. Offsets range over [0, len]; len is the position before
// the paragraph separator.
//
// A Cursor is a handle. It becomes invalid when freed or when its
// Textblock is closed; every method then reports failure.
type Cursor struct {
	tb   *Textblock
	slot int
	gen  uint32
}

// Cursor returns the primary cursor. Edits through other cursors keep it
// consistent and it cannot be freed.
func (tb *Textblock) Cursor() *Cursor {
	return &Cursor{tb: tb, slot: 0, gen: tb.cursors[0].gen}
}

// NewCursor returns a new cursor at the start of the document.
func (tb *Textblock) NewCursor() *Cursor {
	if tb.closed {
		return &Cursor{tb: tb, slot: -1}
	}
	for i := 1; i < len(tb.cursors); i++ {
		if !tb.cursors[i].live {
			s := &tb.cursors[i]
			s.live, s.node, s.pos, s.eol = true, tb.nodes[0], 0, false
			return &Cursor{tb: tb, slot: i, gen: s.gen}
		}
	}
	tb.cursors = append(tb.cursors, cursorSlot{live: true, node: tb.nodes[0]})
	return &Cursor{tb: tb, slot: len(tb.cursors) - 1}
}

// Free releases the cursor. The primary cursor cannot be freed.
func (c *Cursor) Free() error {
	s := c.state()
	if s == nil || c.slot == 0 {
		return ErrInvalidCursor
	}
	*s = cursorSlot{gen: s.gen + 1}
	return nil
}

// Valid reports whether the cursor can be used.
func (c *Cursor) Valid() bool {
	return c.state() != nil
}

// state returns the slot of a valid cursor, or nil.
func (c *Cursor) state() *cursorSlot {
	if c == nil || c.tb == nil || c.tb.closed || c.slot < 0 || c.slot >= len(c.tb.cursors) {
		return nil
	}
	s := &c.tb.cursors[c.slot]
	if !s.live || s.gen != c.gen || !c.tb.owns(s.node) {
		return nil
	}
	return s
}

// set moves the cursor and clears the end-of-line flag.
func (s *cursorSlot) set(n *node, pos int) {
	s.node, s.pos, s.eol = n, pos, false
}

// ParagraphFirst moves to the start of the document.
func (c *Cursor) ParagraphFirst() bool {
	s := c.state()
	if s == nil {
		return false
	}
	s.set(c.tb.nodes[0], 0)
	return true
}

// ParagraphLast moves to the end of the document.
func (c *Cursor) ParagraphLast() bool {
	s := c.state()
	if s == nil {
		return false
	}
	last := c.tb.nodes[len(c.tb.nodes)-1]
	s.set(last, len(last.text))
	return true
}

// ParagraphNext moves to the start of the next paragraph. It reports
// false on the last paragraph.
func (c *Cursor) ParagraphNext() bool {
	s := c.state()
	if s == nil {
		return false
	}
	n := c.tb.next(s.node)
	if n == nil {
		return false
	}
	s.set(n, 0)
	return true
}

// ParagraphPrev moves to the start of the previous paragraph. It reports
// false on the first paragraph.
func (c *Cursor) ParagraphPrev() bool {
	s := c.state()
	if s == nil {
		return false
	}
	n := c.tb.prev(s.node)
	if n == nil {
		return false
	}
	s.set(n, 0)
	return true
}

// ParagraphCharFirst moves to the start of the paragraph.
func (c *Cursor) ParagraphCharFirst() bool {
	s := c.state()
	if s == nil {
		return false
	}
	s.set(s.node, 0)
	return true
}

// ParagraphCharLast moves to the end of the paragraph, before its
// separator.
func (c *Cursor) ParagraphCharLast() bool {
	s := c.state()
	if s == nil {
		return false
	}
	s.set(s.node, len(s.node.text))
	return true
}

// CharNext moves past the grapheme cluster under the cursor, crossing
// into the next paragraph at the end of one. It reports false at the end
// of the document.
func (c *Cursor) CharNext() bool {
	s := c.state()
	if s == nil {
		return false
	}
	if s.pos < len(s.node.text) {
		s.set(s.node, text.NextCluster(s.node.text, s.pos))
		return true
	}
	if n := c.tb.next(s.node); n != nil {
		s.set(n, 0)
		return true
	}
	return false
}

// CharPrev moves before the grapheme cluster preceding the cursor,
// crossing into the previous paragraph at the start of one. It reports
// false at the start of the document.
func (c *Cursor) CharPrev() bool {
	s := c.state()
	if s == nil {
		return false
	}
	if s.pos > 0 {
		s.set(s.node, clusterStart(s.node.text, s.pos))
		return true
	}
	if n := c.tb.prev(s.node); n != nil {
		s.set(n, len(n.text))
		return true
	}
	return false
}

// clusterStart returns the start of the grapheme cluster that ends at or
// contains position pos-1.
func clusterStart(runes []rune, pos int) int {
	start := 0
	for i := 0; i < pos; {
		start = i
		i = text.NextCluster(runes, i)
	}
	return start
}

// WordStart moves to the start of the word under or before the cursor.
// At the start of a paragraph it continues in the previous one.
func (c *Cursor) WordStart() bool {
	s := c.state()
	if s == nil {
		return false
	}
	n, p := s.node, s.pos
	if p == 0 {
		prev := c.tb.prev(n)
		if prev == nil {
			return true
		}
		n, p = prev, len(prev.text)
	}
	runes := n.text
	flags := text.Breaks(runes)
	if p == len(runes) || text.IsWhite(runes[p]) {
		for p > 0 && text.IsWhite(runes[p-1]) {
			p--
		}
		if p > 0 {
			p--
		}
	}
	for p > 0 && flags[p-1]&text.BreakWord == 0 {
		p--
	}
	s.set(n, p)
	return true
}

// WordEnd moves to the last character of the word under or after the
// cursor. At the end of a paragraph it continues in the next one.
func (c *Cursor) WordEnd() bool {
	s := c.state()
	if s == nil {
		return false
	}
	n, p := s.node, s.pos
	if p >= len(n.text) {
		next := c.tb.next(n)
		if next == nil {
			return true
		}
		n, p = next, 0
	}
	runes := n.text
	flags := text.Breaks(runes)
	for p < len(runes) && text.IsWhite(runes[p]) {
		p++
	}
	for p < len(runes)-1 && flags[p]&text.BreakWord == 0 {
		p++
	}
	s.set(n, p)
	return true
}

// Pos returns the document position of the cursor, counting one slot per
// paragraph separator, or -1 for an invalid cursor.
func (c *Cursor) Pos() int {
	s := c.state()
	if s == nil {
		return -1
	}
	return c.tb.globalPos(s.node, s.pos)
}

// SetPos moves to document position pos. Positions past the end clamp to
// the end.
func (c *Cursor) SetPos(pos int) bool {
	s := c.state()
	if s == nil {
		return false
	}
	s.set(c.tb.locate(pos))
	return true
}

// Offset returns the position inside the current paragraph, or -1.
func (c *Cursor) Offset() int {
	s := c.state()
	if s == nil {
		return -1
	}
	return s.pos
}

// Paragraph returns the index of the cursor's paragraph, or -1.
func (c *Cursor) Paragraph() int {
	s := c.state()
	if s == nil {
		return -1
	}
	return s.node.idx
}

// Compare orders two cursors of the same Textblock: by paragraph, then by
// offset. It returns -1, 0 or 1, and 0 for cursors that cannot be
// compared.
func (c *Cursor) Compare(o *Cursor) int {
	a, b := c.state(), o.state()
	if a == nil || b == nil || c.tb != o.tb {
		return 0
	}
	return comparePos(a.node, a.pos, b.node, b.pos)
}

func comparePos(n1 *node, p1 int, n2 *node, p2 int) int {
	switch {
	case n1.idx < n2.idx:
		return -1
	case n1.idx > n2.idx:
		return 1
	case p1 < p2:
		return -1
	case p1 > p2:
		return 1
	}
	return 0
}

// Equal reports whether both cursors are valid and at the same position.
func (c *Cursor) Equal(o *Cursor) bool {
	a, b := c.state(), o.state()
	return a != nil && b != nil && c.tb == o.tb && a.node == b.node && a.pos == b.pos
}

// CopyTo moves dst to the position of c.
func (c *Cursor) CopyTo(dst *Cursor) bool {
	a, b := c.state(), dst.state()
	if a == nil || b == nil || c.tb != dst.tb {
		return false
	}
	b.node, b.pos, b.eol = a.node, a.pos, a.eol
	return true
}

// Content returns the character at the cursor: U+2029 before a paragraph
// separator, "" at the end of the document or for an invalid cursor.
func (c *Cursor) Content() string {
	s := c.state()
	if s == nil {
		return ""
	}
	if s.pos < len(s.node.text) {
		return string(s.node.text[s.pos])
	}
	if c.tb.next(s.node) != nil {
		return string(paragraphSeparator)
	}
	return ""
}

// EOL reports whether the cursor is displayed at the end of the previous
// line rather than at the start of its own.
func (c *Cursor) EOL() bool {
	s := c.state()
	return s != nil && s.eol
}

// SetEOL sets the end-of-line flag. It only has a visible effect when the
// cursor is at the first position of a wrapped line.
func (c *Cursor) SetEOL(eol bool) bool {
	s := c.state()
	if s == nil {
		return false
	}
	s.eol = eol
	return true
}

// RangeText returns the text between c and o, in document order, with
// U+2029 between paragraphs.
func (c *Cursor) RangeText(o *Cursor) string {
	a, b := c.state(), o.state()
	if a == nil || b == nil || c.tb != o.tb {
		return ""
	}
	n1, p1, n2, p2 := a.node, a.pos, b.node, b.pos
	if comparePos(n1, p1, n2, p2) > 0 {
		n1, p1, n2, p2 = n2, p2, n1, p1
	}
	return c.tb.rangeText(n1, p1, n2, p2)
}

func (tb *Textblock) rangeText(n1 *node, p1 int, n2 *node, p2 int) string {
	if n1 == n2 {
		return string(n1.text[p1:p2])
	}
	out := make([]rune, 0, len(n1.text)-p1+p2+1)
	out = append(out, n1.text[p1:]...)
	for _, n := range tb.nodes[n1.idx+1 : n2.idx] {
		out = append(out, paragraphSeparator)
		out = append(out, n.text...)
	}
	out = append(out, paragraphSeparator)
	out = append(out, n2.text[:p2]...)
	return string(out)
}
