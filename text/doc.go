// Package text provides the font services consumed by the textblock engine.
//
// The engine treats fonts as opaque collaborators. This package supplies the
// pieces it needs and nothing more:
//
//   - FontSource: heavyweight, shared font resource (parses TTF/OTF files)
//   - Face: lightweight font instance at a specific size
//   - FontSet: resolves a font descriptor (family, weight, style, fallbacks)
//     to a Face
//   - Shaper: converts a run of runes into positioned glyphs
//     (BuiltinShaper by default, GoTextShaper for HarfBuzz-level shaping)
//   - Segmenter: splits a paragraph into runs of one script and one bidi level
//   - LineBreaks, WordBreaks, NextCluster: Unicode segmentation tables
//   - RunRasterizer: fills shaped runs into images from glyph outlines
//
// # Example usage
//
//	fonts := text.DefaultFontSet()
//	face, err := fonts.LoadFace(text.FontDesc{Family: "Sans"}, 14)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	run := text.ShapeRun([]rune("Hello"), face, text.DirectionLTR)
//	fmt.Println(run.Advance)
//
// # Pluggable Parser Backend
//
// Font parsing is abstracted through the FontParser interface.
// By default, golang.org/x/image/font/opentype is used.
// Custom parsers can be registered with RegisterParser and selected with
// WithParser.
package text
