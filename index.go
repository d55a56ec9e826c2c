package textblock

import "sort"

// maxIndexEntries bounds the paragraph checkpoints kept for lookups.
const maxIndexEntries = 10

// parIndex holds up to maxIndexEntries evenly spaced paragraph positions.
// Lookups by y or line number start from the last checkpoint before the
// target instead of the first paragraph.
type parIndex struct {
	entries []int
}

func (tb *Textblock) buildIndex() {
	n := min(len(tb.pars), maxIndexEntries)
	tb.index.entries = tb.index.entries[:0]
	for i := range n {
		tb.index.entries = append(tb.index.entries, i*len(tb.pars)/n)
	}
}

// scanFrom returns the paragraph position to start a forward scan from:
// the last checkpoint for which before reports true.
func (tb *Textblock) scanFrom(before func(p *paragraph) bool) int {
	e := tb.index.entries
	k := sort.Search(len(e), func(i int) bool { return !before(tb.pars[e[i]]) })
	if k == 0 {
		return 0
	}
	return e[k-1]
}

// paragraphAtY returns the paragraph covering y, or nil.
func (tb *Textblock) paragraphAtY(y float64) *paragraph {
	start := tb.scanFrom(func(p *paragraph) bool { return p.y <= y })
	for _, p := range tb.pars[start:] {
		if y < p.y {
			return nil
		}
		if y < p.y+p.h {
			return p
		}
	}
	return nil
}

// lineByNumber returns line n of the object, or nil.
func (tb *Textblock) lineByNumber(n int) *line {
	if n < 0 {
		return nil
	}
	start := tb.scanFrom(func(p *paragraph) bool { return p.lineNo <= n })
	for _, p := range tb.pars[start:] {
		if k := n - p.lineNo; k < len(p.lines) {
			return p.lines[k]
		}
	}
	return nil
}

// lineAtY returns the line of p covering y, or nil.
func (p *paragraph) lineAtY(y float64) *line {
	for _, ln := range p.lines {
		top := p.y + ln.y
		if y >= top && y < top+ln.h {
			return ln
		}
	}
	return nil
}
