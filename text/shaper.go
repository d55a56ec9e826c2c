package text

import "sync"

// Shaper converts text to positioned glyphs.
// Implementations provide different levels of text shaping support:
//   - BuiltinShaper: one glyph per rune from golang.org/x/image/font advances
//   - GoTextShaper: HarfBuzz shaping from go-text/typesetting
type Shaper interface {
	// Shape converts text into positioned glyphs using the given face.
	// The font size is obtained from face.Size(). Glyphs are returned in
	// visual order; Cluster is the rune index in text.
	Shape(text []rune, face Face, dir Direction) []ShapedGlyph
}

var (
	shaperMu     sync.RWMutex
	globalShaper Shaper = &BuiltinShaper{}
)

// SetShaper sets the global shaper used by Shape().
// Pass nil to reset to the default BuiltinShaper.
//
// Example usage with a custom shaper:
//
//	text.SetShaper(text.NewGoTextShaper())
//	defer text.SetShaper(nil) // Reset to default
func SetShaper(s Shaper) {
	shaperMu.Lock()
	defer shaperMu.Unlock()
	if s == nil {
		s = &BuiltinShaper{}
	}
	globalShaper = s
}

// GetShaper returns the current global shaper.
func GetShaper() Shaper {
	shaperMu.RLock()
	defer shaperMu.RUnlock()
	return globalShaper
}

// Shape is a convenience function that uses the global shaper.
func Shape(text []rune, face Face, dir Direction) []ShapedGlyph {
	return GetShaper().Shape(text, face, dir)
}

// ShapeRun shapes text with the global shaper and wraps the result in a run.
func ShapeRun(text []rune, face Face, dir Direction) ShapedRun {
	return ShapeRunWith(GetShaper(), text, face, dir)
}

// ShapeRunWith shapes text with s. A nil s uses the global shaper.
func ShapeRunWith(s Shaper, text []rune, face Face, dir Direction) ShapedRun {
	if s == nil {
		s = GetShaper()
	}
	return NewShapedRun(s.Shape(text, face, dir), len(text), face, dir)
}
