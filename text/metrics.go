package text

// Metrics holds font metrics at a specific size.
// These metrics are derived from the font file and scaled to the face size.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the font (positive).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the font (positive, below baseline).
	// Note: Unlike FontMetrics.Descent, this is stored as a positive value.
	Descent float64

	// LineGap is the recommended gap between lines.
	LineGap float64

	// MaxAscent is the tallest extent of any glyph above the baseline,
	// taken from the font bounding box.
	MaxAscent float64

	// MaxDescent is the deepest extent of any glyph below the baseline (positive).
	MaxDescent float64
}

// Height returns ascent plus descent.
func (m Metrics) Height() float64 {
	return m.Ascent + m.Descent
}
