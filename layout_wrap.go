package textblock

import (
	"math"
	"slices"

	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

// ellipsisRune is drawn in place of text hidden by the ellipsis.
const ellipsisRune = '…'

// lineBuilder holds the state of laying out one paragraph.
type lineBuilder struct {
	tb    *Textblock
	p     *paragraph
	f     *style.Format
	avail float64
	wrap  style.Wrap

	cur       *line
	x         float64
	lineStart int
}

// layoutParagraph breaks the logical items of p into lines.
func (tb *Textblock) layoutParagraph(p *paragraph) {
	p.releaseEllipses()
	p.coalesce()
	p.lines = nil
	p.h, p.w = 0, 0
	p.ellipsized = false

	f := p.format()
	lb := &lineBuilder{tb: tb, p: p, f: f, avail: math.Inf(1), wrap: f.Wrap}
	if tb.w >= 0 {
		lb.avail = tb.w - float64(f.MarginLeft+f.MarginRight+tb.pad.L+tb.pad.R)
	} else {
		lb.wrap = style.WrapNone
	}
	lb.cur = &line{par: p}

	for i := 0; i < len(p.items); i++ {
		it := p.items[i]
		it.deleted = false
		switch it.kind {
		case itemNewline:
			it.w = 0
			lb.add(it)
			lb.newLine(it.end())
			i = slices.Index(p.items, it)
			continue
		case itemTab:
			it.w = tabAdvance(lb.x, f.TabStops)
			if lb.wrap != style.WrapNone && lb.x+it.w > lb.avail && len(lb.cur.items) > 0 {
				lb.stripWhite(it.start)
				lb.newLine(it.start)
				i = slices.Index(p.items, it)
				it.w = tabAdvance(0, f.TabStops)
			}
			lb.add(it)
			continue
		}

		if lb.wrap == style.WrapNone || lb.x+it.w <= lb.avail {
			lb.add(it)
			continue
		}
		cut := max(it.run.Cutoff(lb.avail-lb.x), 0)
		b := lb.breakPos(it.start + cut)
		if b < 0 || b >= it.end() {
			// No break before the end of this item.
			lb.add(it)
			continue
		}
		i = lb.cutLine(i, b)
	}
	if len(lb.cur.items) > 0 || len(p.lines) == 0 {
		lb.finishLine()
	}

	p.laidOut = true
	p.laidOutWidth = tb.w
}

// add appends it to the current line.
func (lb *lineBuilder) add(it *item) {
	lb.cur.items = append(lb.cur.items, it)
	lb.x += it.w
}

// newLine finishes the current line and starts one at rune start.
func (lb *lineBuilder) newLine(start int) {
	lb.finishLine()
	lb.cur = &line{par: lb.p}
	lb.x = 0
	lb.lineStart = start
}

// breakPos returns the rune position where the line that overflows at
// rune ov should end, or -1 when it should not break.
func (lb *lineBuilder) breakPos(ov int) int {
	runes := lb.p.node.text
	flags := lb.p.breaks
	if lb.wrap == style.WrapWord || lb.wrap == style.WrapMixed {
		from := ov
		if ov < len(runes) && text.IsWhite(runes[ov]) {
			from = ov + 1
		}
		for b := min(from, len(runes)-1); b > lb.lineStart; b-- {
			if flags[b-1].CanBreakLine() {
				return b
			}
		}
		if lb.wrap == style.WrapWord {
			// A single word wider than the line overflows up to the next
			// break opportunity.
			for b := ov + 1; b < len(runes); b++ {
				if flags[b-1].CanBreakLine() {
					return b
				}
			}
			return -1
		}
	}

	b := ov
	for b > lb.lineStart && flags[b-1]&text.BreakGrapheme == 0 {
		b--
	}
	if b <= lb.lineStart {
		b = text.NextCluster(runes, lb.lineStart)
	}
	if b >= len(runes) {
		return -1
	}
	return b
}

// cutLine ends the current line at rune b while item i is being placed.
// Items starting at or after b go back to the next line, the item across
// b is split, and collapsible white space before b is marked deleted. It
// returns the logical index of the last item kept on the line.
func (lb *lineBuilder) cutLine(i, b int) int {
	p := lb.p
	if p.items[i].start < b {
		lb.add(p.items[i])
	}
	for n := len(lb.cur.items); n > 0 && lb.cur.items[n-1].start >= b; n-- {
		lb.cur.items = lb.cur.items[:n-1]
	}
	if len(lb.cur.items) == 0 {
		invariant("wrap", "break before line start")
		lb.add(p.items[i])
		return i
	}

	last := lb.cur.items[len(lb.cur.items)-1]
	if b < last.end() {
		tail := last.split(b - last.start)
		p.items = slices.Insert(p.items, slices.Index(p.items, last)+1, tail)
	}
	lb.stripWhite(b)

	// Finishing the line may split items for an ellipsis, so the index is
	// looked up afterwards.
	lb.newLine(b)
	return p.firstItemFrom(b) - 1
}

// stripWhite marks the white space rune ending the current line at rune b
// deleted, splitting it off its text item first.
func (lb *lineBuilder) stripWhite(b int) {
	p := lb.p
	n := len(lb.cur.items)
	if n == 0 || b == 0 || !text.IsWhite(p.node.text[b-1]) {
		return
	}
	last := lb.cur.items[n-1]
	if last.kind != itemText || last.end() != b {
		return
	}
	if last.n > 1 {
		ws := last.split(last.n - 1)
		p.items = slices.Insert(p.items, slices.Index(p.items, last)+1, ws)
		lb.cur.items = append(lb.cur.items, ws)
		last = ws
	}
	last.deleted = true
}

// firstItemFrom returns the logical index of the first item starting at
// or after rune pos, or len(p.items).
func (p *paragraph) firstItemFrom(pos int) int {
	for i, it := range p.items {
		if it.start >= pos {
			return i
		}
	}
	return len(p.items)
}

// tabAdvance returns the distance from x to the next tab stop.
func tabAdvance(x float64, stops int) float64 {
	ts := float64(max(stops, 1))
	return (math.Floor(x/ts)+1)*ts - x
}

// finishLine orders, measures and places the current line.
func (lb *lineBuilder) finishLine() {
	p, ln, tb := lb.p, lb.cur, lb.tb
	ln.no = len(p.lines)

	if lb.f.EllipsisEnabled() && !math.IsInf(lb.avail, 1) && lineWidth(ln.items) > lb.avail {
		lb.ellipsize(ln)
	}

	levels := make([]int, len(ln.items))
	for i, it := range ln.items {
		levels[i] = it.level
	}
	visual := make([]*item, len(ln.items))
	for i, j := range text.VisualOrder(levels) {
		visual[i] = ln.items[j]
	}
	ln.items = visual

	x := 0.0
	height := max(tb.h, 0)
	for _, it := range ln.items {
		it.line = ln
		it.x = x
		if !it.deleted {
			x += it.w
		}
		a, d := it.ascent, it.descent
		it.format.AdjustAscentDescent(&a, &d, height)
		ln.ascent = max(ln.ascent, a)
		ln.descent = max(ln.descent, d)
		ln.maxAscent = max(ln.maxAscent, it.maxAscent)
		ln.maxDescent = max(ln.maxDescent, it.maxDescent)
	}
	ln.w = x
	ln.h = ln.ascent + ln.descent

	align := lb.f.HAlign
	if lb.f.HAlignAuto {
		align = float64(p.baseLevel())
	}
	ln.x = float64(lb.f.MarginLeft + tb.pad.L)
	if !math.IsInf(lb.avail, 1) {
		ln.x += max(lb.avail-ln.w, 0) * align
	}
	ln.y = p.h
	p.h += ln.h
	p.w = max(p.w, ln.x+ln.w)
	p.lines = append(p.lines, ln)
}

// lineWidth returns the width of the visible items.
func lineWidth(items []*item) float64 {
	w := 0.0
	for _, it := range items {
		if !it.deleted {
			w += it.w
		}
	}
	return w
}

// ellipsize hides the middle of an overflowing line: it keeps a prefix of
// e·K and a suffix of (1-e)·K pixels, K being the available width less
// the ellipsis, and puts an ellipsis item between them.
func (lb *lineBuilder) ellipsize(ln *line) {
	p, f := lb.p, lb.f
	face := f.Face()
	if face == nil {
		return
	}
	f.Ref()
	ell := &item{
		kind:   itemEllipsis,
		format: f,
		run:    text.ShapeRunWith(lb.tb.cfg.shaper, []rune{ellipsisRune}, face, p.dir),
		level:  p.baseLevel(),
	}
	ell.w = ell.run.Advance
	ell.setMetrics()

	k := max(lb.avail-ell.w, 0)
	prefixW := f.Ellipsis * k
	suffixW := k - prefixW

	_, end := ln.bounds()
	a := -1
	acc := 0.0
	for _, it := range ln.items {
		if it.deleted {
			continue
		}
		if acc+it.w > prefixW {
			a = it.start
			if it.kind == itemText {
				a += max(it.run.Cutoff(prefixW-acc), 0)
			}
			break
		}
		acc += it.w
	}
	if a < 0 {
		f.Unref()
		return
	}

	z := end
	acc = 0
	for _, it := range slices.Backward(ln.items) {
		if it.deleted {
			continue
		}
		if acc+it.w <= suffixW {
			acc += it.w
			z = it.start
			continue
		}
		if it.kind == itemText {
			rem := suffixW - acc
			j := it.n
			for j > 0 && it.w-it.run.PrefixWidth(j-1) <= rem {
				j--
			}
			z = it.start + j
		}
		break
	}
	z = max(z, a)

	lb.splitAt(ln, a)
	lb.splitAt(ln, z)
	at := len(ln.items)
	for i, it := range ln.items {
		if it.start >= a && it.end() <= z && it.n > 0 {
			it.deleted = true
		}
		if it.start >= a && at == len(ln.items) {
			at = i
		}
	}
	ell.start = a
	ln.items = slices.Insert(ln.items, at, ell)
	p.ellipsized = true
}

// splitAt splits the text item of ln that spans rune pos.
func (lb *lineBuilder) splitAt(ln *line, pos int) {
	for i, it := range ln.items {
		if it.kind != itemText || pos <= it.start || pos >= it.end() {
			continue
		}
		tail := it.split(pos - it.start)
		idx := slices.Index(lb.p.items, it)
		lb.p.items = slices.Insert(lb.p.items, idx+1, tail)
		ln.items = slices.Insert(ln.items, i+1, tail)
		return
	}
}

// coalesce merges the items split by a previous layout back into their
// predecessors.
func (p *paragraph) coalesce() {
	out := p.items[:0]
	for _, it := range p.items {
		it.deleted = false
		if n := len(out); it.merge && n > 0 {
			prev := out[n-1]
			if prev.kind == itemText && it.kind == itemText && prev.format == it.format &&
				prev.level == it.level && prev.end() == it.start {
				prev.run = prev.run.Merge(it.run)
				prev.n += it.n
				prev.w = prev.run.Advance
				it.format.Unref()
				continue
			}
		}
		it.merge = false
		out = append(out, it)
	}
	clear(p.items[len(out):])
	p.items = out
}
