package textblock

import (
	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

// Textblock is a rich-text document with a cached layout.
//
// A Textblock is not safe for concurrent use. Edits, queries and Render
// must be serialized by the caller; queries that need geometry lay the
// document out first when the cached layout is stale.
type Textblock struct {
	cfg    config
	parser *style.Parser
	stack  *style.Stack

	style     *style.Style
	userStyle *style.Style
	styleGen  uint64
	userGen   uint64

	// base is the DEFAULT format of every paragraph. Items hold
	// references to it.
	base *style.Format

	nodes   []*node
	cursors []cursorSlot
	pars    []*paragraph

	w, h   float64
	valign float64
	closed bool

	// valid reports whether the formatted size and the paragraph list
	// reflect the document, the styles and the size.
	valid      bool
	formattedW float64
	formattedH float64
	layoutW    float64
	pad        style.Pad
	lineCount  int
	index      parIndex
}

// New returns an empty Textblock with one empty paragraph and the primary
// cursor at its start.
func New(opts ...Option) *Textblock {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.loader == nil {
		cfg.loader = text.DefaultFontSet()
	}

	parser := cfg.parser
	if parser != nil {
		parser.Retain()
	} else {
		parser = style.NewParser()
	}

	tb := &Textblock{
		cfg:    cfg,
		parser: parser,
		stack:  style.NewStack(parser, cfg.loader, cfg.scale),
		w:      cfg.width,
		h:      cfg.height,
	}
	tb.nodes = []*node{newNode(nil)}
	tb.cursors = []cursorSlot{{live: true, node: tb.nodes[0]}}
	return tb
}

// Close releases the layout, the formats and the parser. Cursors of a
// closed Textblock are invalid.
func (tb *Textblock) Close() {
	if tb.closed {
		return
	}
	tb.clearLayout()
	tb.releaseBase()
	tb.parser.Close()
	tb.nodes = nil
	for i := range tb.cursors {
		tb.cursors[i] = cursorSlot{gen: tb.cursors[i].gen + 1}
	}
	tb.closed = true
}

// SetStyle sets the style sheet. Several Textblocks may share a Style;
// changes to it are picked up at the next layout.
func (tb *Textblock) SetStyle(s *style.Style) {
	if s == tb.style {
		return
	}
	tb.style = s
	tb.styleChanged()
}

// Style returns the style sheet, or nil.
func (tb *Textblock) Style() *style.Style {
	return tb.style
}

// SetUserStyle sets a style sheet applied on top of the one set by
// SetStyle.
func (tb *Textblock) SetUserStyle(s *style.Style) {
	if s == tb.userStyle {
		return
	}
	tb.userStyle = s
	tb.styleChanged()
}

// UserStyle returns the user style sheet, or nil.
func (tb *Textblock) UserStyle() *style.Style {
	return tb.userStyle
}

func (tb *Textblock) styleChanged() {
	tb.releaseBase()
	tb.markAllDirty()
}

// checkStyles marks the document dirty when a shared Style changed since
// the last layout.
func (tb *Textblock) checkStyles() {
	gen := func(s *style.Style) uint64 {
		if s == nil {
			return 0
		}
		return s.Generation()
	}
	if gen(tb.style) != tb.styleGen || gen(tb.userStyle) != tb.userGen {
		tb.styleGen, tb.userGen = gen(tb.style), gen(tb.userStyle)
		tb.styleChanged()
	}
}

// SetSize sets the object size. A negative width disables wrapping.
func (tb *Textblock) SetSize(w, h float64) {
	if w == tb.w && h == tb.h {
		return
	}
	tb.w, tb.h = w, h
	tb.invalidate()
}

// Size returns the object size.
func (tb *Textblock) Size() (w, h float64) {
	return tb.w, tb.h
}

// SetValign sets the vertical alignment of the text inside a taller
// object, in [0,1]. Other values align to the top.
func (tb *Textblock) SetValign(v float64) {
	if v < 0 || v > 1 {
		v = 0
	}
	if v == tb.valign {
		return
	}
	tb.valign = v
	tb.invalidate()
}

// Valign returns the vertical alignment.
func (tb *Textblock) Valign() float64 {
	return tb.valign
}

// SetText replaces the whole document. Paragraph separators (U+2029) in s
// start new paragraphs. Every cursor moves to the start.
func (tb *Textblock) SetText(s string) error {
	if tb.closed {
		return ErrInvalidCursor
	}
	runes := []rune(s)
	if err := tb.checkLimits("set text", len(runes), countSeparators(runes)+1); err != nil {
		return err
	}
	tb.Clear()
	_, err := tb.insert(&tb.cursors[0], runes, false)
	tb.cursors[0].node, tb.cursors[0].pos = tb.nodes[0], 0
	return err
}

// Text returns the whole document with U+2029 between paragraphs.
func (tb *Textblock) Text() string {
	if tb.closed {
		return ""
	}
	last := tb.nodes[len(tb.nodes)-1]
	return tb.rangeText(tb.nodes[0], 0, last, len(last.text))
}

// Clear removes every paragraph and leaves a single empty one. Every
// cursor moves to its start.
func (tb *Textblock) Clear() {
	if tb.closed {
		return
	}
	tb.clearLayout()
	tb.nodes = []*node{newNode(nil)}
	for i := range tb.cursors {
		if tb.cursors[i].live {
			tb.cursors[i].node, tb.cursors[i].pos, tb.cursors[i].eol = tb.nodes[0], 0, false
		}
	}
	tb.invalidate()
}

// ParagraphCount returns the number of paragraphs of the document.
func (tb *Textblock) ParagraphCount() int {
	return len(tb.nodes)
}

// FormattedSize returns the size of the laid out text, including the
// style padding.
func (tb *Textblock) FormattedSize() (w, h float64) {
	if !tb.relayout() {
		return 0, 0
	}
	return tb.formattedW, tb.formattedH
}

// StylePadding returns the space the text effects need around the text.
func (tb *Textblock) StylePadding() style.Pad {
	if !tb.relayout() {
		return style.Pad{}
	}
	return tb.pad
}

// LineCount returns the number of visual lines.
func (tb *Textblock) LineCount() int {
	if !tb.relayout() {
		return 0
	}
	return tb.lineCount
}

// LineNumberGeometry returns the rectangle of line n, counted from 0.
func (tb *Textblock) LineNumberGeometry(n int) (text.Rect, bool) {
	if !tb.relayout() {
		return text.Rect{}, false
	}
	ln := tb.lineByNumber(n)
	if ln == nil {
		return text.Rect{}, false
	}
	return ln.rect(), true
}

// invalidate marks the formatted size stale.
func (tb *Textblock) invalidate() {
	tb.valid = false
}

// checkLimits rejects an edit that would leave the document with length
// code points and paragraphs paragraphs.
func (tb *Textblock) checkLimits(op string, length, paragraphs int) error {
	if m := tb.cfg.maxLength; m > 0 && length > m {
		return &ResourceError{Op: op, Limit: "length", Max: m, Requested: length}
	}
	if m := tb.cfg.maxParagraphs; m > 0 && paragraphs > m {
		return &ResourceError{Op: op, Limit: "paragraphs", Max: m, Requested: paragraphs}
	}
	return nil
}

// countSeparators returns the number of paragraph separators in runes.
func countSeparators(runes []rune) int {
	n := 0
	for _, r := range runes {
		if r == paragraphSeparator {
			n++
		}
	}
	return n
}
