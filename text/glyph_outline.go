package text

import (
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// OutlinePoint is a point of a glyph outline in pixels, relative to the
// glyph origin on the baseline. Y grows downwards.
type OutlinePoint struct {
	X, Y float32
}

// OutlineOp is the type of path operation.
type OutlineOp uint8

const (
	OutlineOpMoveTo  OutlineOp = iota // Start a new contour
	OutlineOpLineTo                   // Straight line
	OutlineOpQuadTo                   // Quadratic bezier
	OutlineOpCubicTo                  // Cubic bezier
)

var outlineOpNames = [...]string{
	OutlineOpMoveTo:  "MoveTo",
	OutlineOpLineTo:  "LineTo",
	OutlineOpQuadTo:  "QuadTo",
	OutlineOpCubicTo: "CubicTo",
}

// String returns a string representation of the operation.
func (op OutlineOp) String() string {
	if int(op) < len(outlineOpNames) {
		return outlineOpNames[op]
	}
	return "Unknown"
}

// OutlineSegment is one segment of a glyph outline.
type OutlineSegment struct {
	Op OutlineOp

	// Points holds the control and end points:
	//   - MoveTo, LineTo: Points[0] is the target
	//   - QuadTo: Points[0] is the control, Points[1] the target
	//   - CubicTo: Points[0] and Points[1] are controls, Points[2] the target
	Points [3]OutlinePoint
}

// count returns the number of points the segment uses.
func (s OutlineSegment) count() int {
	switch s.Op {
	case OutlineOpQuadTo:
		return 2
	case OutlineOpCubicTo:
		return 3
	default:
		return 1
	}
}

// GlyphOutline is the vector outline of a glyph scaled to a pixel size.
type GlyphOutline struct {
	Segments []OutlineSegment

	// Bounds is the bounding box of all points. It is empty for glyphs
	// without an outline, such as a space.
	Bounds Rect

	Advance float64
	GID     GlyphID
}

// IsEmpty reports whether the outline has no segments.
func (o *GlyphOutline) IsEmpty() bool {
	return len(o.Segments) == 0
}

// OutlineExtractor extracts glyph outlines from fonts. It reuses an sfnt
// buffer between calls and is not safe for concurrent use.
type OutlineExtractor struct {
	buffer sfnt.Buffer
}

// NewOutlineExtractor creates a new outline extractor.
func NewOutlineExtractor() *OutlineExtractor {
	return &OutlineExtractor{}
}

// ExtractOutline returns the outline of glyph gid at size pixels per em.
// Only fonts parsed by the default parser are supported.
func (e *OutlineExtractor) ExtractOutline(font ParsedFont, gid GlyphID, size float64) (*GlyphOutline, error) {
	xf, ok := font.(*ximageParsedFont)
	if !ok {
		return nil, ErrUnsupportedFontType
	}
	ppem := fixed.Int26_6(math.Round(size * 64))

	segments, err := xf.font.LoadGlyph(&e.buffer, sfnt.GlyphIndex(gid), ppem, nil)
	if err != nil {
		return nil, err
	}
	out := &GlyphOutline{
		Segments: make([]OutlineSegment, 0, len(segments)),
		GID:      gid,
	}
	if adv, err := xf.font.GlyphAdvance(&e.buffer, sfnt.GlyphIndex(gid), ppem, 0); err == nil {
		out.Advance = float64(adv) / 64
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, seg := range segments {
		var s OutlineSegment
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			s.Op = OutlineOpMoveTo
		case sfnt.SegmentOpLineTo:
			s.Op = OutlineOpLineTo
		case sfnt.SegmentOpQuadTo:
			s.Op = OutlineOpQuadTo
		case sfnt.SegmentOpCubeTo:
			s.Op = OutlineOpCubicTo
		}
		for i := range s.count() {
			p := OutlinePoint{X: float32(seg.Args[i].X) / 64, Y: float32(seg.Args[i].Y) / 64}
			s.Points[i] = p
			minX, maxX = math.Min(minX, float64(p.X)), math.Max(maxX, float64(p.X))
			minY, maxY = math.Min(minY, float64(p.Y)), math.Max(maxY, float64(p.Y))
		}
		out.Segments = append(out.Segments, s)
	}
	if len(out.Segments) > 0 {
		out.Bounds = Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	}
	return out, nil
}
