package text

// ShapedRun is a sequence of shaped glyphs with uniform style.
//
// Glyphs are stored in visual order (left to right). Cluster indices are
// rune offsets into the run text, which has Len runes.
type ShapedRun struct {
	// Glyphs is the sequence of positioned glyphs.
	Glyphs []ShapedGlyph

	// Len is the number of runes the run was shaped from.
	Len int

	// Advance is the total advance of all glyphs.
	Advance float64

	// Ascent is the ascent above the baseline.
	Ascent float64

	// Descent is the descent below the baseline (positive value).
	Descent float64

	// Direction is the text direction for this run.
	Direction Direction

	// Face is the font face used for this run.
	Face Face
}

// NewShapedRun builds a run from shaper output. Glyph X positions are
// normalized so that the run starts at zero.
func NewShapedRun(glyphs []ShapedGlyph, n int, face Face, dir Direction) ShapedRun {
	r := ShapedRun{
		Glyphs:    glyphs,
		Len:       n,
		Direction: dir,
		Face:      face,
	}
	if face != nil {
		m := face.Metrics()
		r.Ascent, r.Descent = m.Ascent, m.Descent
	}
	r.relayout()
	return r
}

// Width returns the total width of the run.
func (r *ShapedRun) Width() float64 {
	return r.Advance
}

// Height returns Ascent + Descent.
func (r *ShapedRun) Height() float64 {
	return r.Ascent + r.Descent
}

// Bounds returns the bounding rectangle of the run.
// The origin is at the baseline start.
func (r *ShapedRun) Bounds() Rect {
	return Rect{X: 0, Y: -r.Ascent, W: r.Advance, H: r.Ascent + r.Descent}
}

// relayout recomputes glyph X positions from advances and offsets.
func (r *ShapedRun) relayout() {
	x := 0.0
	for i := range r.Glyphs {
		g := &r.Glyphs[i]
		g.X = x + g.XOffset
		x += g.XAdvance
	}
	r.Advance = x
}

// charAdvances returns the advance of each rune in logical order. The
// advance of a multi-rune cluster is shared evenly by its runes.
func (r *ShapedRun) charAdvances() []float64 {
	adv := make([]float64, r.Len)
	starts := make([]bool, r.Len)
	for _, g := range r.Glyphs {
		if g.Cluster >= 0 && g.Cluster < r.Len {
			adv[g.Cluster] += g.XAdvance
			starts[g.Cluster] = true
		}
	}
	for i := 0; i < r.Len; {
		j := i + 1
		for j < r.Len && !starts[j] {
			j++
		}
		if n := j - i; n > 1 {
			share := adv[i] / float64(n)
			for k := i; k < j; k++ {
				adv[k] = share
			}
		}
		i = j
	}
	return adv
}

// CharBox returns the visual x offset and width of the rune at logical
// index i. ok is false when i is out of range.
func (r *ShapedRun) CharBox(i int) (x, w float64, ok bool) {
	if i < 0 || i >= r.Len {
		return 0, 0, false
	}
	adv := r.charAdvances()
	before := 0.0
	for k := 0; k < i; k++ {
		before += adv[k]
	}
	if r.Direction.IsRTL() {
		return r.Advance - before - adv[i], adv[i], true
	}
	return before, adv[i], true
}

// PenX returns the x offset of the leading edge of the rune at logical
// index i. PenX(Len) is the trailing edge of the run.
func (r *ShapedRun) PenX(i int) float64 {
	if i <= 0 {
		if r.Direction.IsRTL() {
			return r.Advance
		}
		return 0
	}
	if i >= r.Len {
		if r.Direction.IsRTL() {
			return 0
		}
		return r.Advance
	}
	x, w, _ := r.CharBox(i)
	if r.Direction.IsRTL() {
		return x + w
	}
	return x
}

// PrefixWidth returns the advance of the first n runes in logical order.
func (r *ShapedRun) PrefixWidth(n int) float64 {
	adv := r.charAdvances()
	w := 0.0
	for k := 0; k < n && k < len(adv); k++ {
		w += adv[k]
	}
	return w
}

// Cutoff returns the logical index of the rune whose extent crosses width,
// or -1 if the whole run fits.
func (r *ShapedRun) Cutoff(width float64) int {
	if r.Advance <= width {
		return -1
	}
	w := 0.0
	for i, a := range r.charAdvances() {
		w += a
		if w > width {
			return i
		}
	}
	return -1
}

// CharAt returns the logical index of the rune under visual offset x, or
// -1 if x is outside the run.
func (r *ShapedRun) CharAt(x float64) int {
	if x < 0 || x >= r.Advance || r.Len == 0 {
		return -1
	}
	adv := r.charAdvances()
	pos := 0.0
	for k := range adv {
		i := k
		if r.Direction.IsRTL() {
			i = len(adv) - 1 - k
		}
		if x < pos+adv[i] {
			return i
		}
		pos += adv[i]
	}
	return len(adv) - 1
}

// Split divides the run at logical rune index at. Glyphs whose cluster
// starts before at go to the first half.
func (r *ShapedRun) Split(at int) (ShapedRun, ShapedRun) {
	if at < 0 {
		at = 0
	}
	if at > r.Len {
		at = r.Len
	}
	head := ShapedRun{Len: at, Ascent: r.Ascent, Descent: r.Descent, Direction: r.Direction, Face: r.Face}
	tail := ShapedRun{Len: r.Len - at, Ascent: r.Ascent, Descent: r.Descent, Direction: r.Direction, Face: r.Face}
	for _, g := range r.Glyphs {
		if g.Cluster < at {
			head.Glyphs = append(head.Glyphs, g)
		} else {
			g.Cluster -= at
			tail.Glyphs = append(tail.Glyphs, g)
		}
	}
	head.relayout()
	tail.relayout()
	return head, tail
}

// Merge returns the run formed by r followed logically by o.
// Both runs must share face and direction.
func (r *ShapedRun) Merge(o ShapedRun) ShapedRun {
	out := ShapedRun{
		Len:       r.Len + o.Len,
		Ascent:    max(r.Ascent, o.Ascent),
		Descent:   max(r.Descent, o.Descent),
		Direction: r.Direction,
		Face:      r.Face,
	}
	out.Glyphs = make([]ShapedGlyph, 0, len(r.Glyphs)+len(o.Glyphs))
	tail := make([]ShapedGlyph, len(o.Glyphs))
	for i, g := range o.Glyphs {
		g.Cluster += r.Len
		tail[i] = g
	}
	if r.Direction.IsRTL() {
		out.Glyphs = append(out.Glyphs, tail...)
		out.Glyphs = append(out.Glyphs, r.Glyphs...)
	} else {
		out.Glyphs = append(out.Glyphs, r.Glyphs...)
		out.Glyphs = append(out.Glyphs, tail...)
	}
	out.relayout()
	return out
}
