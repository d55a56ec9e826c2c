package style

import (
	"image/color"

	"github.com/gogpu/textblock/text"
)

// unknownStr is the string returned for unknown enum values.
const unknownStr = "Unknown"

// Wrap selects the line wrapping policy. The policies are mutually exclusive.
type Wrap int

const (
	// WrapNone never breaks a line on width.
	WrapNone Wrap = iota
	// WrapWord breaks at word boundaries.
	WrapWord
	// WrapChar breaks at the last character that fits.
	WrapChar
	// WrapMixed breaks at word boundaries and falls back to characters.
	WrapMixed
)

// String returns the markup name of the wrap mode.
func (w Wrap) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapWord:
		return "word"
	case WrapChar:
		return "char"
	case WrapMixed:
		return "mixed"
	default:
		return unknownStr
	}
}

// Effect is the basic text effect set by the style key.
type Effect int

// Text effects.
const (
	EffectPlain Effect = iota
	EffectShadow
	EffectOutline
	EffectSoftOutline
	EffectOutlineShadow
	EffectOutlineSoftShadow
	EffectGlow
	EffectFarShadow
	EffectSoftShadow
	EffectFarSoftShadow
)

var effectNames = [...]string{
	EffectPlain:             "plain",
	EffectShadow:            "shadow",
	EffectOutline:           "outline",
	EffectSoftOutline:       "soft_outline",
	EffectOutlineShadow:     "outline_shadow",
	EffectOutlineSoftShadow: "outline_soft_shadow",
	EffectGlow:              "glow",
	EffectFarShadow:         "far_shadow",
	EffectSoftShadow:        "soft_shadow",
	EffectFarSoftShadow:     "far_soft_shadow",
}

// String returns the markup name of the effect.
func (e Effect) String() string {
	if e >= 0 && int(e) < len(effectNames) {
		return effectNames[e]
	}
	return unknownStr
}

// HasShadow reports whether the effect draws a shadow.
func (e Effect) HasShadow() bool {
	switch e {
	case EffectShadow, EffectOutlineShadow, EffectOutlineSoftShadow,
		EffectFarShadow, EffectSoftShadow, EffectFarSoftShadow:
		return true
	}
	return false
}

// HasOutline reports whether the effect draws an outline.
func (e Effect) HasOutline() bool {
	switch e {
	case EffectOutline, EffectSoftOutline, EffectOutlineShadow, EffectOutlineSoftShadow:
		return true
	}
	return false
}

// HasGlow reports whether the effect draws a glow.
func (e Effect) HasGlow() bool {
	return e == EffectGlow
}

// Extents returns the shadow distance, shadow blur size and outline size.
func (e Effect) Extents() (shadowDist, shadowSize, outline int) {
	switch e {
	case EffectShadow:
		return 1, 0, 0
	case EffectOutlineShadow:
		return 1, 0, 1
	case EffectFarShadow:
		return 2, 0, 0
	case EffectOutlineSoftShadow:
		return 1, 2, 1
	case EffectFarSoftShadow:
		return 2, 2, 0
	case EffectSoftShadow:
		return 1, 2, 0
	case EffectGlow, EffectSoftOutline:
		return 0, 0, 2
	case EffectOutline:
		return 0, 0, 1
	}
	return 0, 0, 0
}

// ShadowDirection is the direction a shadow is cast in.
type ShadowDirection int

// Shadow directions. BottomRight is the default.
const (
	ShadowBottomRight ShadowDirection = iota
	ShadowBottom
	ShadowBottomLeft
	ShadowLeft
	ShadowTopLeft
	ShadowTop
	ShadowTopRight
	ShadowRight
)

var shadowNames = [...]string{
	ShadowBottomRight: "bottom_right",
	ShadowBottom:      "bottom",
	ShadowBottomLeft:  "bottom_left",
	ShadowLeft:        "left",
	ShadowTopLeft:     "top_left",
	ShadowTop:         "top",
	ShadowTopRight:    "top_right",
	ShadowRight:       "right",
}

// String returns the markup name of the direction.
func (d ShadowDirection) String() string {
	if d >= 0 && int(d) < len(shadowNames) {
		return shadowNames[d]
	}
	return unknownStr
}

// Offset returns the unit offset of the shadow.
func (d ShadowDirection) Offset() (dx, dy int) {
	switch d {
	case ShadowBottomRight:
		return 1, 1
	case ShadowBottom:
		return 0, 1
	case ShadowBottomLeft:
		return -1, 1
	case ShadowLeft:
		return -1, 0
	case ShadowTopLeft:
		return -1, -1
	case ShadowTop:
		return 0, -1
	case ShadowTopRight:
		return 1, -1
	case ShadowRight:
		return 1, 0
	}
	return 0, 0
}

// Colors holds the color of every drawing channel of a Format.
type Colors struct {
	Normal        color.NRGBA
	Underline     color.NRGBA
	Underline2    color.NRGBA
	UnderlineDash color.NRGBA
	Outline       color.NRGBA
	Shadow        color.NRGBA
	Glow          color.NRGBA
	Glow2         color.NRGBA
	Backing       color.NRGBA
	Strikethrough color.NRGBA
}

// Pad is the space an effect needs around the glyph box, in pixels.
type Pad struct {
	L, R, T, B int
}

// Max returns the component-wise maximum of p and o.
func (p Pad) Max(o Pad) Pad {
	return Pad{L: max(p.L, o.L), R: max(p.R, o.R), T: max(p.T, o.T), B: max(p.B, o.B)}
}

// Format is a set of text attributes. Formats are created by a Stack,
// filled by a Parser and shared by reference count between the layout
// items that use them.
type Format struct {
	refs int

	Font     text.FontDesc
	FontSize int

	Colors Colors

	// HAlign is the horizontal alignment in [0,1]. When HAlignAuto is set
	// the paragraph direction decides.
	HAlign     float64
	HAlignAuto bool

	// VAlign is the vertical alignment of an item inside its line in
	// [0,1], or -1 for the baseline.
	VAlign float64

	Wrap Wrap

	MarginLeft  int
	MarginRight int

	Underline     bool
	Underline2    bool
	UnderlineDash bool
	Strikethrough bool
	Backing       bool

	Effect          Effect
	ShadowDirection ShadowDirection

	TabStops int

	// LineSize and LineRelSize are mutually exclusive, as are LineGap and
	// LineRelGap. Relative values are fractions.
	LineSize    int
	LineRelSize float64
	LineGap     int
	LineRelGap  float64
	LineFill    float64

	// Ellipsis is the fraction of the visible text kept before the
	// ellipsis, or -1 when disabled.
	Ellipsis float64

	UnderlineDashWidth int
	UnderlineDashGap   int

	face       text.Face
	loadedDesc text.FontDesc
	loadedSize float64
}

// DefaultFontSize is the font size of a fresh Format, in pixels.
const DefaultFontSize = 10

// NewFormat returns a Format with default attributes and one reference.
func NewFormat() *Format {
	return &Format{
		refs:               1,
		FontSize:           DefaultFontSize,
		Colors:             Colors{Normal: color.NRGBA{A: 0xff}},
		HAlignAuto:         true,
		VAlign:             -1,
		Effect:             EffectPlain,
		TabStops:           32,
		UnderlineDashWidth: 6,
		UnderlineDashGap:   2,
		Ellipsis:           -1,
	}
}

// Dup returns a copy of f with one reference. The copy shares the loaded
// face until its font attributes change.
func (f *Format) Dup() *Format {
	d := *f
	d.refs = 1
	if f.Font.Fallbacks != nil {
		d.Font.Fallbacks = append([]string(nil), f.Font.Fallbacks...)
	}
	return &d
}

// Ref adds a reference.
func (f *Format) Ref() {
	f.refs++
}

// Unref drops a reference and reports whether it was the last one. The
// last reference releases the face.
func (f *Format) Unref() bool {
	f.refs--
	if f.refs > 0 {
		return false
	}
	f.refs = 0
	f.face = nil
	return true
}

// Refs returns the current reference count.
func (f *Format) Refs() int {
	return f.refs
}

// Face returns the resolved face, or nil before Stack.Finalize succeeded.
func (f *Format) Face() text.Face {
	return f.face
}

// Metrics returns the face metrics, or zero metrics without a face.
func (f *Format) Metrics() text.Metrics {
	if f.face == nil {
		return text.Metrics{}
	}
	return f.face.Metrics()
}

// EllipsisEnabled reports whether the ellipsis fraction is in [0,1].
func (f *Format) EllipsisEnabled() bool {
	return f.Ellipsis >= 0 && f.Ellipsis <= 1
}

// Pad returns the space the text effect needs around the glyphs.
func (f *Format) Pad() Pad {
	dist, size, out := f.Effect.Extents()
	dx, dy := f.ShadowDirection.Offset()

	minx, maxx := -out, out
	miny, maxy := -out, out
	if dist != 0 || size != 0 {
		minx = min(minx, dx*dist-size)
		maxx = max(maxx, dx*dist+size)
		miny = min(miny, dy*dist-size)
		maxy = max(maxy, dy*dist+size)
	}
	return Pad{L: -minx, R: maxx, T: -miny, B: maxy}
}

// AdjustAscentDescent applies line sizing to a line's ascent and descent.
// height is the object height used by linefill.
func (f *Format) AdjustAscentDescent(maxAscent, maxDescent *float64, height float64) {
	if f.face == nil {
		return
	}
	ascent, descent := *maxAscent, *maxDescent
	switch {
	case f.LineSize > 0:
		if ls := float64(f.LineSize); ascent+descent < ls && ascent+descent > 0 {
			ascent = ls * ascent / (ascent + descent)
			descent = ls - ascent
		}
	case f.LineRelSize > 0:
		ascent *= f.LineRelSize
		descent *= f.LineRelSize
	}
	descent += float64(f.LineGap)
	descent += (ascent + descent) * f.LineRelGap

	*maxAscent = max(*maxAscent, ascent)
	*maxDescent = max(*maxDescent, descent)

	if f.LineFill > 0 {
		dh := max(height-(*maxAscent+*maxDescent), 0)
		dh *= f.LineFill
		*maxDescent += dh / 2
		*maxAscent += dh - dh/2
	}
}
