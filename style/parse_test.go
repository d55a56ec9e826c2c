package style

import (
	"image/color"
	"testing"

	"github.com/gogpu/textblock/text"
)

func apply(t *testing.T, markup string) *Format {
	t.Helper()
	p := NewParser()
	t.Cleanup(p.Close)
	f := NewFormat()
	p.Apply(f, markup)
	return f
}

func TestDeclarations(t *testing.T) {
	tests := []struct {
		markup string
		want   [][2]string
	}{
		{"font_size=12", [][2]string{{"font_size", "12"}}},
		{"  a=1   b=2 ", [][2]string{{"a", "1"}, {"b", "2"}}},
		{"font='Sans Bold' color=#fff", [][2]string{{"font", "Sans Bold"}, {"color", "#fff"}}},
		{`font=Sans\ Mono size=3`, [][2]string{{"font", "Sans Mono"}, {"size", "3"}}},
		{`x='it\'s' y=1`, [][2]string{{"x", "it's"}, {"y", "1"}}},
		{"bare item=1", [][2]string{{"item", "1"}}},
		{"", nil},
	}
	for _, tt := range tests {
		var got [][2]string
		for k, v := range Declarations(tt.markup) {
			got = append(got, [2]string{k, v})
		}
		if len(got) != len(tt.want) {
			t.Errorf("Declarations(%q) = %v, want %v", tt.markup, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Declarations(%q)[%d] = %v, want %v", tt.markup, i, got[i], tt.want[i])
			}
		}
	}
}

func TestApplyNumbers(t *testing.T) {
	tests := []struct {
		markup string
		check  func(*Format) bool
	}{
		{"font_size=14", func(f *Format) bool { return f.FontSize == 14 }},
		{"font_size=abc", func(f *Format) bool { return f.FontSize == 0 }},
		{"font_size=12px", func(f *Format) bool { return f.FontSize == 12 }},
		{"align=center", func(f *Format) bool { return f.HAlign == 0.5 && !f.HAlignAuto }},
		{"align=right", func(f *Format) bool { return f.HAlign == 1 }},
		{"align=25%", func(f *Format) bool { return f.HAlign == 0.25 }},
		{"align=7", func(f *Format) bool { return f.HAlign == 1 }},
		{"align=-3", func(f *Format) bool { return f.HAlign == 0 }},
		{"align=center align=auto", func(f *Format) bool { return f.HAlignAuto && f.HAlign == 0.5 }},
		{"valign=bottom", func(f *Format) bool { return f.VAlign == 1 }},
		{"valign=baseline", func(f *Format) bool { return f.VAlign == -1 }},
		{"valign=0.3", func(f *Format) bool { return f.VAlign == 0.3 }},
		{"tabstops=0", func(f *Format) bool { return f.TabStops == 1 }},
		{"ellipsis=0.5", func(f *Format) bool { return f.Ellipsis == 0.5 && f.EllipsisEnabled() }},
		{"ellipsis=1.5", func(f *Format) bool { return f.Ellipsis == -1 && !f.EllipsisEnabled() }},
		{"underline_dash_width=0", func(f *Format) bool { return f.UnderlineDashWidth == 1 }},
		{"underline_dash_gap=5", func(f *Format) bool { return f.UnderlineDashGap == 5 }},
	}
	for _, tt := range tests {
		if f := apply(t, tt.markup); !tt.check(f) {
			t.Errorf("Apply(%q) produced %+v", tt.markup, *f)
		}
	}
}

func TestApplyLineSizing(t *testing.T) {
	f := apply(t, "linerelsize=150% linesize=20")
	if f.LineSize != 20 || f.LineRelSize != 0 {
		t.Errorf("linesize after linerelsize = (%d, %v), want (20, 0)", f.LineSize, f.LineRelSize)
	}
	f = apply(t, "linesize=20 linerelsize=150%")
	if f.LineSize != 0 || f.LineRelSize != 1.5 {
		t.Errorf("linerelsize after linesize = (%d, %v), want (0, 1.5)", f.LineSize, f.LineRelSize)
	}
	f = apply(t, "linegap=4 linerelgap=10%")
	if f.LineGap != 0 || f.LineRelGap != 0.1 {
		t.Errorf("linerelgap after linegap = (%d, %v), want (0, 0.1)", f.LineGap, f.LineRelGap)
	}
	f = apply(t, "linegap=3 linerelgap=10")
	if f.LineGap != 3 || f.LineRelGap != 0 {
		t.Errorf("linerelgap without %% = (%d, %v), want (3, 0)", f.LineGap, f.LineRelGap)
	}
	f = apply(t, "linefill=50%")
	if f.LineFill != 0.5 {
		t.Errorf("LineFill = %v, want 0.5", f.LineFill)
	}
}

func TestApplyModes(t *testing.T) {
	f := apply(t, "wrap=word")
	if f.Wrap != WrapWord {
		t.Errorf("Wrap = %v, want word", f.Wrap)
	}
	f = apply(t, "wrap=char wrap=bogus")
	if f.Wrap != WrapNone {
		t.Errorf("Wrap = %v, want none", f.Wrap)
	}

	f = apply(t, "underline=double")
	if !f.Underline || !f.Underline2 || f.UnderlineDash {
		t.Errorf("underline=double = (%v, %v, %v)", f.Underline, f.Underline2, f.UnderlineDash)
	}
	f = apply(t, "underline=dashed")
	if f.Underline || !f.UnderlineDash {
		t.Errorf("underline=dashed = (%v, %v)", f.Underline, f.UnderlineDash)
	}
	f = apply(t, "strikethrough=on backing=on backing=maybe")
	if !f.Strikethrough || !f.Backing {
		t.Errorf("strikethrough/backing = %v/%v, want true/true", f.Strikethrough, f.Backing)
	}

	f = apply(t, "style=far_soft_shadow,top_left")
	if f.Effect != EffectFarSoftShadow || f.ShadowDirection != ShadowTopLeft {
		t.Errorf("style = (%v, %v), want (far_soft_shadow, top_left)", f.Effect, f.ShadowDirection)
	}
	f = apply(t, "style=glow,sideways")
	if f.Effect != EffectGlow || f.ShadowDirection != ShadowBottomRight {
		t.Errorf("style = (%v, %v), want (glow, bottom_right)", f.Effect, f.ShadowDirection)
	}
	f = apply(t, "style=sparkle")
	if f.Effect != EffectPlain {
		t.Errorf("unknown style = %v, want plain", f.Effect)
	}
}

func TestApplyMargins(t *testing.T) {
	f := apply(t, "left_margin=10 left_margin=+5 right_margin=4 right_margin=-9")
	if f.MarginLeft != 15 {
		t.Errorf("MarginLeft = %d, want 15", f.MarginLeft)
	}
	if f.MarginRight != 0 {
		t.Errorf("MarginRight = %d, want 0 (clamped)", f.MarginRight)
	}
	f = apply(t, "left_margin=10 left_margin=reset")
	if f.MarginLeft != 0 {
		t.Errorf("MarginLeft after reset = %d, want 0", f.MarginLeft)
	}
}

func TestApplyFont(t *testing.T) {
	f := apply(t, "font=Sans:style=Bold\\ Italic font_fallbacks='Go, Noto' lang=fr font_width=condensed")
	want := text.FontDesc{
		Family:    "Sans",
		Fallbacks: []string{"Go", "Noto"},
		Weight:    text.WeightBold,
		Slant:     text.SlantItalic,
		Width:     "condensed",
		Lang:      "fr",
	}
	if !f.Font.Equal(want) {
		t.Errorf("Font = %v, want %v", f.Font, want)
	}

	f = apply(t, "font=Mono font_weight=semibold font_style=oblique font_source=/tmp/x.ttf")
	if f.Font.Weight != text.WeightSemiBold || f.Font.Slant != text.SlantOblique || f.Font.Source != "/tmp/x.ttf" {
		t.Errorf("Font = %v", f.Font)
	}
}

func TestApplyColors(t *testing.T) {
	f := apply(t, "color=#f00 shadow_color=#00ff0080 backing_color=#zzz glow2_color=#1234")
	if f.Colors.Normal != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("Normal = %v", f.Colors.Normal)
	}
	if f.Colors.Shadow != (color.NRGBA{G: 255, A: 0x80}) {
		t.Errorf("Shadow = %v", f.Colors.Shadow)
	}
	if f.Colors.Backing != (color.NRGBA{}) {
		t.Errorf("Backing = %v, want unchanged zero", f.Colors.Backing)
	}
	if f.Colors.Glow2 != (color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}) {
		t.Errorf("Glow2 = %v", f.Colors.Glow2)
	}
}

func TestParserLifecycle(t *testing.T) {
	p := NewParser()
	if !p.Known("font_size") || p.Known("nope") {
		t.Fatal("Known() mismatch on a fresh parser")
	}

	p.Retain()
	p.Close()
	if !p.Known("font_size") {
		t.Error("key table released while a holder remains")
	}

	p.Close()
	f := NewFormat()
	p.Apply(f, "font_size=30")
	if f.FontSize != DefaultFontSize {
		t.Errorf("closed parser applied font_size: %d", f.FontSize)
	}
	p.Close() // extra close is a no-op

	p.Retain()
	p.Apply(f, "font_size=30")
	if f.FontSize != 30 {
		t.Errorf("reopened parser FontSize = %d, want 30", f.FontSize)
	}
}

func TestNumberParsing(t *testing.T) {
	ints := map[string]int{"12": 12, " -7x": -7, "+3": 3, "": 0, "x1": 0, "-": 0}
	for in, want := range ints {
		if got := atoi(in); got != want {
			t.Errorf("atoi(%q) = %d, want %d", in, got, want)
		}
	}
	floats := []struct {
		in   string
		want float64
		rest string
	}{
		{"0.5", 0.5, ""},
		{"50 %", 50, " %"},
		{"1e2x", 100, "x"},
		{".25", 0.25, ""},
		{"abc", 0, "abc"},
		{"3e", 3, "e"},
	}
	for _, tt := range floats {
		got, rest := strtod(tt.in)
		if got != tt.want || rest != tt.rest {
			t.Errorf("strtod(%q) = (%v, %q), want (%v, %q)", tt.in, got, rest, tt.want, tt.rest)
		}
	}
}
