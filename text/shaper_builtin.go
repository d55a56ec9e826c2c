package text

// BuiltinShaper provides text shaping using golang.org/x/image/font.
// It supports Latin, Cyrillic, Greek, CJK, and other scripts that don't
// require complex text shaping (ligatures, contextual forms, etc.).
//
// For complex scripts use GoTextShaper.
//
// BuiltinShaper is stateless and safe for concurrent use.
type BuiltinShaper struct{}

// Shape implements the Shaper interface.
// Each rune maps to one glyph. Right-to-left text is emitted in reverse
// so that glyphs stay in visual order.
func (s *BuiltinShaper) Shape(text []rune, face Face, dir Direction) []ShapedGlyph {
	if len(text) == 0 || face == nil {
		return nil
	}

	source := face.Source()
	if source == nil {
		return nil
	}
	parsed := source.Parsed()
	if parsed == nil {
		return nil
	}

	size := face.Size()
	result := make([]ShapedGlyph, 0, len(text))
	var x float64
	for k := range text {
		cluster := k
		if dir.IsRTL() {
			cluster = len(text) - 1 - k
		}
		gid := parsed.GlyphIndex(text[cluster])
		advance := source.glyphAdvance(parsed, gid, size)

		result = append(result, ShapedGlyph{
			GID:      GlyphID(gid),
			Cluster:  cluster,
			X:        x,
			XAdvance: advance,
		})
		x += advance
	}

	return result
}
