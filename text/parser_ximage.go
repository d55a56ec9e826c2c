package text

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// ximageParser implements FontParser using golang.org/x/image/font/opentype.
type ximageParser struct{}

// Parse implements FontParser.Parse.
func (p *ximageParser) Parse(data []byte) (ParsedFont, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return &ximageParsedFont{font: f}, nil
}

// ximageParsedFont implements ParsedFont using sfnt.Font.
// sfnt.Font is safe for concurrent use as long as every call gets its own Buffer.
type ximageParsedFont struct {
	font *opentype.Font
}

// Name implements ParsedFont.Name.
func (f *ximageParsedFont) Name() string {
	if name, err := f.font.Name(nil, sfnt.NameIDTypographicFamily); err == nil && name != "" {
		return name
	}
	if name, err := f.font.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Subfamily implements ParsedFont.Subfamily.
func (f *ximageParsedFont) Subfamily() string {
	if name, err := f.font.Name(nil, sfnt.NameIDSubfamily); err == nil {
		return name
	}
	return ""
}

// GlyphIndex implements ParsedFont.GlyphIndex.
func (f *ximageParsedFont) GlyphIndex(r rune) uint16 {
	idx, err := f.font.GlyphIndex(nil, r)
	if err != nil {
		return 0
	}
	return uint16(idx)
}

// GlyphAdvance implements ParsedFont.GlyphAdvance.
func (f *ximageParsedFont) GlyphAdvance(glyphIndex uint16, ppem float64) float64 {
	var buf sfnt.Buffer
	advance, err := f.font.GlyphAdvance(&buf, sfnt.GlyphIndex(glyphIndex), floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return 0
	}
	return fixedToFloat(advance)
}

// Metrics implements ParsedFont.Metrics.
func (f *ximageParsedFont) Metrics(ppem float64) FontMetrics {
	var buf sfnt.Buffer

	metrics, err := f.font.Metrics(&buf, floatToFixed(ppem), font.HintingFull)
	if err != nil {
		return FontMetrics{}
	}
	fm := FontMetrics{
		Ascent:  fixedToFloat(metrics.Ascent),
		Descent: -fixedToFloat(metrics.Descent),
		LineGap: fixedToFloat(metrics.Height - metrics.Ascent - metrics.Descent),
	}

	// sfnt coordinates grow downwards: Min.Y is above the baseline.
	if bounds, err := f.font.Bounds(&buf, floatToFixed(ppem), font.HintingFull); err == nil {
		fm.MaxAscent = -fixedToFloat(bounds.Min.Y)
		fm.MaxDescent = fixedToFloat(bounds.Max.Y)
	}
	if fm.MaxAscent < fm.Ascent {
		fm.MaxAscent = fm.Ascent
	}
	if fm.MaxDescent < -fm.Descent {
		fm.MaxDescent = -fm.Descent
	}
	return fm
}

// floatToFixed converts a float64 size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
