package text

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// RunRasterizer fills shaped runs into raster images using the glyph
// outlines of the run's face. It caches outlines per face, glyph and size.
//
// RunRasterizer is not safe for concurrent use.
type RunRasterizer struct {
	extractor *OutlineExtractor
	outlines  map[outlineKey]*GlyphOutline
	raster    vector.Rasterizer
}

type outlineKey struct {
	source *FontSource
	gid    GlyphID
	size   float64
}

// NewRunRasterizer creates a rasterizer with an empty outline cache.
func NewRunRasterizer() *RunRasterizer {
	return &RunRasterizer{
		extractor: NewOutlineExtractor(),
		outlines:  make(map[outlineKey]*GlyphOutline),
	}
}

// DrawRun fills every glyph of run into dst with its pen origin at (x, y),
// y being the baseline. Glyphs whose outline cannot be loaded are skipped;
// the first such error is returned after the run has been drawn.
func (rr *RunRasterizer) DrawRun(dst draw.Image, run *ShapedRun, x, y float64, c color.Color) error {
	if run == nil || run.Face == nil || run.Face.Source() == nil {
		return nil
	}
	src := image.NewUniform(c)
	var firstErr error
	for _, g := range run.Glyphs {
		o, err := rr.outline(run.Face, g.GID)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if o.IsEmpty() {
			continue
		}
		rr.fill(dst, o, x+g.X, y-g.Y, src)
	}
	return firstErr
}

// CachedOutlines returns the number of cached glyph outlines.
func (rr *RunRasterizer) CachedOutlines() int {
	return len(rr.outlines)
}

func (rr *RunRasterizer) outline(face Face, gid GlyphID) (*GlyphOutline, error) {
	key := outlineKey{source: face.Source(), gid: gid, size: face.Size()}
	if o, ok := rr.outlines[key]; ok {
		return o, nil
	}
	o, err := rr.extractor.ExtractOutline(key.source.Parsed(), gid, key.size)
	if err != nil {
		return nil, err
	}
	rr.outlines[key] = o
	return o, nil
}

// fill rasterizes o into a coverage mask and composites src through it with
// the outline origin at (ox, oy).
func (rr *RunRasterizer) fill(dst draw.Image, o *GlyphOutline, ox, oy float64, src image.Image) {
	x0 := int(math.Floor(ox + o.Bounds.X))
	y0 := int(math.Floor(oy + o.Bounds.Y))
	x1 := int(math.Ceil(ox + o.Bounds.MaxX()))
	y1 := int(math.Ceil(oy + o.Bounds.MaxY()))
	r := image.Rect(x0, y0, x1, y1)
	if r.Empty() || !r.Overlaps(dst.Bounds()) {
		return
	}

	// Rasterizer coordinates are relative to r.Min.
	dx, dy := float32(ox-float64(x0)), float32(oy-float64(y0))
	z := &rr.raster
	z.Reset(r.Dx(), r.Dy())
	z.DrawOp = draw.Src
	open := false
	for _, s := range o.Segments {
		p := s.Points
		switch s.Op {
		case OutlineOpMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(p[0].X+dx, p[0].Y+dy)
			open = true
		case OutlineOpLineTo:
			z.LineTo(p[0].X+dx, p[0].Y+dy)
		case OutlineOpQuadTo:
			z.QuadTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy)
		case OutlineOpCubicTo:
			z.CubeTo(p[0].X+dx, p[0].Y+dy, p[1].X+dx, p[1].Y+dy, p[2].X+dx, p[2].Y+dy)
		}
	}
	if open {
		z.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, r.Dx(), r.Dy()))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(dst, r, src, image.Point{}, mask, image.Point{}, draw.Over)
}
