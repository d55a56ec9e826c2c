package textblock

import "slices"

// Insert inserts s at the cursor and leaves the cursor after it. Each
// U+2029 in s ends the current paragraph and starts a new one. Other
// cursors after the insertion point keep their place in the text.
// Insert returns the number of code points inserted, separators included.
func (c *Cursor) Insert(s string) (int, error) {
	st := c.state()
	if st == nil {
		return 0, ErrInvalidCursor
	}
	return c.tb.insert(st, []rune(s), false)
}

// Append inserts s at the cursor and leaves the cursor before it.
func (c *Cursor) Append(s string) (int, error) {
	st := c.state()
	if st == nil {
		return 0, ErrInvalidCursor
	}
	return c.tb.insert(st, []rune(s), true)
}

func (tb *Textblock) insert(cur *cursorSlot, runes []rune, keep bool) (int, error) {
	if len(runes) == 0 {
		return 0, nil
	}
	seps := countSeparators(runes)
	if err := tb.checkLimits("insert", tb.length()+len(runes), len(tb.nodes)+seps); err != nil {
		return 0, err
	}

	n, p := cur.node, cur.pos
	pieces := splitParagraphs(runes)

	if len(pieces) == 1 {
		ins := pieces[0]
		n.splice(p, p, ins)
		for i := range tb.cursors {
			s := &tb.cursors[i]
			if s == cur || !s.live || s.node != n || s.pos <= p {
				continue
			}
			s.pos += len(ins)
		}
		if !keep {
			cur.set(n, p+len(ins))
		}
		tb.invalidate()
		return len(runes), nil
	}

	tail := slices.Clone(n.text[p:])
	n.splice(p, len(n.text), pieces[0])

	added := make([]*node, 0, len(pieces)-1)
	for _, piece := range pieces[1:] {
		added = append(added, newNode(slices.Clone(piece)))
	}
	last := added[len(added)-1]
	lastLen := len(last.text)
	last.text = append(last.text, tail...)
	tb.insertNodes(n.idx, added...)

	for i := range tb.cursors {
		s := &tb.cursors[i]
		if s == cur || !s.live || s.node != n || s.pos <= p {
			continue
		}
		s.node, s.pos = last, s.pos-p+lastLen
	}
	if !keep {
		cur.set(last, lastLen)
	}
	tb.invalidate()
	Logger().Debug("textblock: split paragraph", "paragraphs", len(tb.nodes), "added", len(added))
	return len(runes), nil
}

// splitParagraphs splits runes at paragraph separators. The result has
// one more element than there are separators.
func splitParagraphs(runes []rune) [][]rune {
	var out [][]rune
	start := 0
	for i, r := range runes {
		if r == paragraphSeparator {
			out = append(out, runes[start:i])
			start = i + 1
		}
	}
	return append(out, runes[start:])
}

// DeleteChar deletes the code point at the cursor. At the end of a
// paragraph it deletes the separator and merges the next paragraph into
// the current one. At the end of the document it does nothing.
func (c *Cursor) DeleteChar() error {
	s := c.state()
	if s == nil {
		return ErrInvalidCursor
	}
	tb := c.tb
	n, p := s.node, s.pos
	if p < len(n.text) {
		n.splice(p, p+1, nil)
		for i := range tb.cursors {
			o := &tb.cursors[i]
			if o.live && o.node == n && o.pos > p {
				o.pos--
			}
		}
		tb.invalidate()
		return nil
	}
	if next := tb.next(n); next != nil {
		tb.merge(n, next)
		tb.invalidate()
	}
	return nil
}

// merge appends next to n, moves the cursors of next onto n and removes
// next.
func (tb *Textblock) merge(n, next *node) {
	off := len(n.text)
	n.splice(off, off, next.text)
	for i := range tb.cursors {
		s := &tb.cursors[i]
		if s.live && s.node == next {
			s.node, s.pos = n, s.pos+off
		}
	}
	tb.removeNodes(next.idx, next.idx+1)
}

// DeleteRange deletes the text between c and o, in whichever order they
// are. Both cursors, and every other cursor inside the range, end at the
// start of the deleted range.
func (c *Cursor) DeleteRange(o *Cursor) error {
	a, b := c.state(), o.state()
	if a == nil || b == nil || c.tb != o.tb {
		return ErrInvalidCursor
	}
	tb := c.tb
	n1, p1, n2, p2 := a.node, a.pos, b.node, b.pos
	if comparePos(n1, p1, n2, p2) > 0 {
		n1, p1, n2, p2 = n2, p2, n1, p1
	}
	if n1 == n2 && p1 == p2 {
		return nil
	}

	i1, i2 := n1.idx, n2.idx
	for i := range tb.cursors {
		s := &tb.cursors[i]
		if !s.live {
			continue
		}
		switch {
		case s.node.idx < i1 || s.node.idx > i2:
		case comparePos(s.node, s.pos, n1, p1) <= 0:
		case comparePos(s.node, s.pos, n2, p2) <= 0:
			s.set(n1, p1)
		case s.node == n2:
			s.node, s.pos = n1, p1+s.pos-p2
		}
	}

	if n1 == n2 {
		n1.splice(p1, p2, nil)
	} else {
		n1.splice(p1, len(n1.text), n2.text[p2:])
		tb.removeNodes(i1+1, i2+1)
	}
	a.set(n1, p1)
	b.set(n1, p1)
	tb.invalidate()
	return nil
}
