package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no font in a FontSet matches a descriptor.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrNoFonts is returned when a FontSet has no fonts registered.
	ErrNoFonts = errors.New("text: font set is empty")

	// ErrUnsupportedFontType is returned when a font was parsed by a parser
	// that cannot provide glyph outlines.
	ErrUnsupportedFontType = errors.New("text: unsupported font type for outline extraction")
)

// FontLoadError is returned when a font descriptor cannot be resolved.
type FontLoadError struct {
	Desc FontDesc
	Err  error
}

func (e *FontLoadError) Error() string {
	return "text: cannot load font " + e.Desc.String() + ": " + e.Err.Error()
}

func (e *FontLoadError) Unwrap() error {
	return e.Err
}
