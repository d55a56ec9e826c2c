package text

// GlyphID is a unique identifier for a glyph within a font.
// The glyph ID is assigned by the font file and is font-specific.
type GlyphID uint16

// ShapedGlyph represents a positioned glyph.
type ShapedGlyph struct {
	// GID is the glyph index in the font.
	GID GlyphID

	// Cluster is the index of the first rune of the glyph's cluster in the
	// shaped text. Used for hit testing and cursor positioning.
	Cluster int

	// X is the horizontal position relative to the run origin.
	X float64

	// Y is the vertical position relative to the baseline.
	Y float64

	// XOffset is the shaping adjustment applied on top of the pen position.
	XOffset float64

	// XAdvance is the horizontal advance to the next glyph.
	XAdvance float64
}
