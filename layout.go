package textblock

import (
	"fmt"
	"math"

	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

// itemKind distinguishes text runs from non-text markers.
type itemKind uint8

const (
	itemText itemKind = iota
	itemTab
	itemNewline
	itemEllipsis
)

// item is the atomic unit of layout. Text items hold a shaped run of
// n code points starting at start in the node text; format items stand
// for one code point (tab, newline) or none (ellipsis).
type item struct {
	kind   itemKind
	format *style.Format

	start int
	n     int
	run   text.ShapedRun
	level int

	w                     float64
	ascent, descent       float64
	maxAscent, maxDescent float64

	// x is the offset from the line origin, in visual order.
	x    float64
	line *line

	// deleted items stay in the logical list but take no space: collapsed
	// white space at a wrap point and text hidden by an ellipsis.
	deleted bool

	// merge marks an item split off its predecessor by layout. Merge
	// items are coalesced before the paragraph is laid out again.
	merge bool
}

func (it *item) end() int {
	return it.start + it.n
}

// split cuts a text item at rune index at and returns the tail. The tail
// holds its own format reference.
func (it *item) split(at int) *item {
	head, tail := it.run.Split(at)
	t := *it
	t.run = tail
	t.start += at
	t.n -= at
	t.w = tail.Advance
	t.merge = true
	t.deleted = false
	t.line = nil
	t.format.Ref()

	it.run = head
	it.n = at
	it.w = head.Advance
	return &t
}

// penX returns the offset of the leading edge of rune k of the item.
func (it *item) penX(k int) float64 {
	if it.kind == itemText || it.kind == itemEllipsis {
		return it.run.PenX(k)
	}
	if (k <= 0) == (it.level%2 == 0) {
		return 0
	}
	return it.w
}

// line is one visual row of a paragraph.
type line struct {
	par *paragraph

	// items are in visual order once the line is finished.
	items []*item
	no    int

	// x and y are relative to the object and to the paragraph.
	x, y, w, h            float64
	ascent, descent       float64
	maxAscent, maxDescent float64
}

// rect returns the line rectangle in object coordinates.
func (ln *line) rect() text.Rect {
	return text.Rect{X: ln.x, Y: ln.par.y + ln.y, W: ln.w, H: ln.h}
}

// number returns the line number in the object.
func (ln *line) number() int {
	return ln.par.lineNo + ln.no
}

// bounds returns the first and one-past-last rune of the line.
func (ln *line) bounds() (first, end int) {
	first, end = math.MaxInt, 0
	for _, it := range ln.items {
		if it.kind == itemEllipsis {
			continue
		}
		first = min(first, it.start)
		end = max(end, it.end())
	}
	if first == math.MaxInt {
		first = 0
	}
	return first, end
}

// paragraph is the layout of one node.
type paragraph struct {
	node *node

	// items are in logical order.
	items  []*item
	lines  []*line
	breaks []text.BreakFlags
	dir    text.Direction

	y, w, h float64
	lineNo  int

	laidOut      bool
	laidOutWidth float64
	ellipsized   bool
}

// format returns the format of the paragraph, the one of its first item.
func (p *paragraph) format() *style.Format {
	if len(p.items) == 0 {
		return nil
	}
	return p.items[0].format
}

// baseLevel returns the bidi level of the paragraph direction.
func (p *paragraph) baseLevel() int {
	if p.dir.IsRTL() {
		return 1
	}
	return 0
}

// Layout lays the document out if the cached layout is stale. Queries and
// Render call it implicitly; it only needs to be called directly to see
// a font resolution error.
func (tb *Textblock) Layout() error {
	if tb.closed {
		return ErrInvalidCursor
	}
	tb.checkStyles()
	if tb.valid && tb.layoutW == tb.w {
		return nil
	}
	if err := tb.ensureBase(); err != nil {
		return err
	}

	force := false
	for pass := 1; ; pass++ {
		pad := tb.layoutPass(force)
		if pad == tb.pad {
			break
		}
		tb.pad = pad
		if pass == 2 {
			Logger().Warn("textblock: layout did not converge", "passes", pass, "padding", fmt.Sprintf("%+v", pad))
			break
		}
		Logger().Debug("textblock: style padding changed, relayout", "padding", fmt.Sprintf("%+v", pad))
		force = true
	}
	tb.layoutW = tb.w
	tb.valid = true
	return nil
}

// relayout is Layout for queries that report failure as a sentinel.
func (tb *Textblock) relayout() bool {
	return tb.Layout() == nil
}

// ensureBase resolves the DEFAULT format of the style sheets.
func (tb *Textblock) ensureBase() error {
	if tb.base != nil {
		return nil
	}
	f := tb.stack.Push(nil)
	if tb.style != nil {
		tb.stack.Apply(tb.style.Default())
	}
	if tb.userStyle != nil {
		tb.stack.Apply(tb.userStyle.Default())
	}
	if err := tb.stack.Finalize(f); err != nil {
		Logger().Warn("textblock: cannot resolve font", "font", f.Font.String(), "err", err)
		if f.Face() == nil {
			tb.stack.Pop()
			return fmt.Errorf("%w: %w", ErrNoFormat, err)
		}
	}
	tb.base = f
	return nil
}

// releaseBase drops the Textblock's reference to the base format. Items
// keep theirs until their paragraphs are released.
func (tb *Textblock) releaseBase() {
	tb.stack.Clear()
	tb.base = nil
}

// clearLayout releases every paragraph.
func (tb *Textblock) clearLayout() {
	for _, p := range tb.pars {
		tb.releaseParagraph(p)
	}
	tb.pars = nil
	tb.index = parIndex{}
	tb.invalidate()
}

// releaseParagraph drops the format references of p and unlinks it from
// its node. Releasing twice is harmless.
func (tb *Textblock) releaseParagraph(p *paragraph) {
	for _, it := range p.items {
		it.format.Unref()
	}
	p.releaseEllipses()
	p.items, p.lines = nil, nil
	if p.node != nil && p.node.par == p {
		p.node.par = nil
	}
	p.node = nil
}

// releaseEllipses drops the ellipsis items of the current lines. They
// are the only items not in the logical list.
func (p *paragraph) releaseEllipses() {
	for _, ln := range p.lines {
		for _, it := range ln.items {
			if it.kind == itemEllipsis {
				it.format.Unref()
			}
		}
	}
}

// layoutPass reconciles paragraphs with nodes, lays out the paragraphs
// that need it and stacks them. It returns the style padding of the
// formats in use.
func (tb *Textblock) layoutPass(force bool) style.Pad {
	pars := make([]*paragraph, 0, len(tb.nodes))
	rebuilt := 0
	for _, n := range tb.nodes {
		p := n.par
		switch {
		case n.isNew || p == nil:
			p = tb.newParagraph(n)
			rebuilt++
		case n.dirty:
			tb.releaseParagraph(p)
			p = tb.newParagraph(n)
			rebuilt++
		}
		n.dirty, n.isNew = false, false
		pars = append(pars, p)
	}
	for _, p := range tb.pars {
		if p.node == nil || p.node.par != p {
			tb.releaseParagraph(p)
		}
	}
	tb.pars = pars

	var pad style.Pad
	y, lineNo, wmax := 0.0, 0, 0.0
	relaid := 0
	for _, p := range pars {
		for _, it := range p.items {
			pad = pad.Max(it.format.Pad())
		}
		if force || !p.laidOut || p.laidOutWidth != tb.w || p.ellipsized {
			tb.layoutParagraph(p)
			relaid++
		}
		p.y = y
		p.lineNo = lineNo
		y += p.h
		lineNo += len(p.lines)

		mr := 0.0
		if f := p.format(); f != nil {
			mr = float64(f.MarginRight + tb.pad.R)
		}
		for _, ln := range p.lines {
			wmax = max(wmax, ln.x+ln.w+mr)
		}
	}

	// The first line may reach above its ascent and the last one below
	// its descent.
	top, bottom := float64(tb.pad.T), float64(tb.pad.B)
	if len(pars) > 0 && len(pars[0].lines) > 0 {
		first := pars[0].lines[0]
		top += max(first.maxAscent-first.ascent, 0)
		lp := pars[len(pars)-1]
		last := lp.lines[len(lp.lines)-1]
		bottom += max(last.maxDescent-last.descent, 0)
	}
	hmax := top + y + bottom

	shift := top
	if tb.h > hmax && tb.valign > 0 {
		shift += (tb.h - hmax) * tb.valign
	}
	for _, p := range pars {
		p.y += shift
	}

	tb.formattedW, tb.formattedH = wmax, hmax
	tb.lineCount = lineNo
	tb.buildIndex()

	Logger().Debug("textblock: layout",
		"paragraphs", len(pars), "rebuilt", rebuilt, "relaid", relaid,
		"lines", lineNo, "width", wmax, "height", hmax)
	return pad
}

// newParagraph builds the logical items of n: one text item per bidi
// level and script, one format item per tab and line break.
func (tb *Textblock) newParagraph(n *node) *paragraph {
	p := &paragraph{node: n}
	n.par = p

	runes := n.text
	p.breaks = text.Breaks(runes)
	p.dir, _ = text.ParagraphDirection(runes)

	f := tb.base
	for _, seg := range text.NewBuiltinSegmenterWithDirection(p.dir).Segment(runes) {
		start := seg.Start
		for i := seg.Start; i < seg.End; i++ {
			kind := itemText
			switch runes[i] {
			case '\t':
				kind = itemTab
			case '\n', '\u2028':
				kind = itemNewline
			}
			if kind == itemText {
				continue
			}
			if start < i {
				p.items = append(p.items, tb.newTextItem(f, runes, start, i, seg.Direction, seg.Level))
			}
			p.items = append(p.items, newFormatItem(f, kind, i, seg.Level))
			start = i + 1
		}
		if start < seg.End {
			p.items = append(p.items, tb.newTextItem(f, runes, start, seg.End, seg.Direction, seg.Level))
		}
	}
	if len(p.items) == 0 {
		p.items = append(p.items, tb.newTextItem(f, runes, 0, 0, p.dir, p.baseLevel()))
	}
	return p
}

func (tb *Textblock) newTextItem(f *style.Format, runes []rune, start, end int, dir text.Direction, level int) *item {
	f.Ref()
	it := &item{
		kind:   itemText,
		format: f,
		start:  start,
		n:      end - start,
		run:    text.ShapeRunWith(tb.cfg.shaper, runes[start:end], f.Face(), dir),
		level:  level,
	}
	it.w = it.run.Advance
	it.setMetrics()
	return it
}

func newFormatItem(f *style.Format, kind itemKind, at, level int) *item {
	f.Ref()
	it := &item{kind: kind, format: f, start: at, n: 1, level: level}
	it.setMetrics()
	return it
}

func (it *item) setMetrics() {
	m := it.format.Metrics()
	it.ascent, it.descent = m.Ascent, m.Descent
	it.maxAscent = max(m.MaxAscent, m.Ascent)
	it.maxDescent = max(m.MaxDescent, m.Descent)
}
