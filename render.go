package textblock

import (
	"image/color"

	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

// Painter draws the output of Render. Implementations clip to their own
// surface; Render only culls whole lines against RenderOptions.Clip.
type Painter interface {
	// DrawRun draws a shaped run with its pen origin on the baseline at
	// (x, y).
	DrawRun(run *text.ShapedRun, x, y float64, c color.NRGBA)

	// FillRect fills a rectangle.
	FillRect(r text.Rect, c color.NRGBA)
}

// RenderOptions controls Render.
type RenderOptions struct {
	// X and Y translate the object origin.
	X, Y float64

	// Clip, when set, skips lines that do not intersect it. It is in
	// object coordinates.
	Clip *text.Rect
}

// softKernel weights the draws of soft shadows, glows and outlines.
var softKernel = [5][5]uint8{
	{0, 1, 2, 1, 0},
	{1, 3, 4, 3, 1},
	{2, 4, 5, 4, 2},
	{1, 3, 4, 3, 1},
	{0, 1, 2, 1, 0},
}

// renderPass is one drawing layer. Layers are drawn in order over all
// visible lines so that effects never cover the text of another line.
type renderPass int

const (
	passBacking renderPass = iota
	passShadow
	passGlow
	passOutline
	passText
	passStrikethrough
	passUnderline
	passCount
)

// Render draws the document. It lays the document out first if needed.
func (tb *Textblock) Render(p Painter, opts RenderOptions) error {
	if err := tb.Layout(); err != nil {
		return err
	}
	r := renderer{p: p, dx: opts.X, dy: opts.Y}
	for pass := range passCount {
		for _, par := range tb.pars {
			for _, ln := range par.lines {
				if opts.Clip != nil && !ln.rect().Intersects(*opts.Clip) {
					continue
				}
				for _, it := range ln.items {
					if it.deleted || it.kind == itemNewline {
						continue
					}
					r.item(pass, par, ln, it)
				}
			}
		}
	}
	return nil
}

type renderer struct {
	p      Painter
	dx, dy float64
}

// item draws one pass of it.
func (r *renderer) item(pass renderPass, par *paragraph, ln *line, it *item) {
	f := it.format
	top := r.dy + par.y + ln.y
	x := r.dx + ln.x + it.x
	base := top + ln.ascent
	if f.VAlign >= 0 {
		base = top + it.ascent + f.VAlign*(ln.h-(it.ascent+it.descent))
	}
	drawable := it.kind == itemText || it.kind == itemEllipsis
	c := &f.Colors

	switch pass {
	case passBacking:
		if f.Backing {
			r.p.FillRect(text.Rect{X: x, Y: top, W: it.w, H: ln.h}, c.Backing)
		}
	case passShadow:
		if !drawable || !f.Effect.HasShadow() {
			return
		}
		dist, size, _ := f.Effect.Extents()
		dx, dy := f.ShadowDirection.Offset()
		sx, sy := x+float64(dx*dist), base+float64(dy*dist)
		if size > 0 {
			r.soft(&it.run, sx, sy, c.Shadow)
		} else {
			r.p.DrawRun(&it.run, sx, sy, c.Shadow)
		}
	case passGlow:
		if !drawable || !f.Effect.HasGlow() {
			return
		}
		r.soft(&it.run, x, base, c.Glow)
		for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r.p.DrawRun(&it.run, x+d[0], base+d[1], c.Glow2)
		}
	case passOutline:
		if !drawable || !f.Effect.HasOutline() {
			return
		}
		if f.Effect == style.EffectSoftOutline {
			r.soft(&it.run, x, base, c.Outline)
			return
		}
		for _, d := range [4][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
			r.p.DrawRun(&it.run, x+d[0], base+d[1], c.Outline)
		}
	case passText:
		if drawable {
			r.p.DrawRun(&it.run, x, base, c.Normal)
		}
	case passStrikethrough:
		if f.Strikethrough {
			r.p.FillRect(text.Rect{X: x, Y: top + ln.h/2, W: it.w, H: 1}, c.Strikethrough)
		}
	case passUnderline:
		y := base + 1
		switch {
		case f.UnderlineDash:
			r.dashes(x, y, it.w, f)
		case f.Underline:
			r.p.FillRect(text.Rect{X: x, Y: y, W: it.w, H: 1}, c.Underline)
			if f.Underline2 {
				r.p.FillRect(text.Rect{X: x, Y: y + 2, W: it.w, H: 1}, c.Underline2)
			}
		}
	}
}

// soft draws a run once per non-zero kernel weight around (x, y), with
// the alpha scaled by the weight.
func (r *renderer) soft(run *text.ShapedRun, x, y float64, c color.NRGBA) {
	for j, row := range softKernel {
		for i, v := range row {
			if v == 0 {
				continue
			}
			cc := c
			cc.A = uint8(uint32(c.A) * uint32(v) * 50 / 255)
			r.p.DrawRun(run, x+float64(i-2), y+float64(j-2), cc)
		}
	}
}

// dashes draws a dashed underline.
func (r *renderer) dashes(x, y, w float64, f *style.Format) {
	dw, gap := float64(f.UnderlineDashWidth), float64(f.UnderlineDashGap)
	for off := 0.0; off < w; off += dw + gap {
		r.p.FillRect(text.Rect{X: x + off, Y: y, W: min(dw, w-off), H: 1}, f.Colors.UnderlineDash)
	}
}
