package textblock

import (
	"testing"

	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

func TestDefaultConfig(t *testing.T) {
	c := defaultConfig()
	if c.scale != 1 || c.width != -1 || c.height != -1 {
		t.Errorf("defaultConfig() = %+v", c)
	}
	if c.maxLength != 0 || c.maxParagraphs != 0 {
		t.Errorf("defaultConfig() has limits: %+v", c)
	}
}

func TestOptions(t *testing.T) {
	loader := text.NewFontSet()
	shaper := &text.BuiltinShaper{}

	tests := []struct {
		name  string
		opt   Option
		check func(c config) bool
	}{
		{"font loader", WithFontLoader(loader), func(c config) bool { return c.loader == loader }},
		{"shaper", WithShaper(shaper), func(c config) bool { return c.shaper == shaper }},
		{"scale", WithScale(1.5), func(c config) bool { return c.scale == 1.5 }},
		{"zero scale ignored", WithScale(0), func(c config) bool { return c.scale == 1 }},
		{"max length", WithMaxLength(100), func(c config) bool { return c.maxLength == 100 }},
		{"negative max length", WithMaxLength(-3), func(c config) bool { return c.maxLength == 0 }},
		{"max paragraphs", WithMaxParagraphs(7), func(c config) bool { return c.maxParagraphs == 7 }},
		{"size", WithSize(320, 200), func(c config) bool { return c.width == 320 && c.height == 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.opt(&c)
			if !tt.check(c) {
				t.Errorf("config after option = %+v", c)
			}
		})
	}
}

func TestNewWithSize(t *testing.T) {
	tb := New(WithSize(320, 200))
	t.Cleanup(tb.Close)
	if w, h := tb.Size(); w != 320 || h != 200 {
		t.Errorf("Size() = (%v, %v), want (320, 200)", w, h)
	}
}

func TestSharedStyleParser(t *testing.T) {
	p := style.NewParser()
	a := New(WithStyleParser(p))
	b := New(WithStyleParser(p))
	p.Close()

	a.Close()
	// b still holds the parser.
	b.SetStyle(style.NewStyle("DEFAULT='font=Monospace font_size=10'"))
	if err := b.SetText("abc"); err != nil {
		t.Fatal(err)
	}
	if w, _ := b.FormattedSize(); !near(w, 18) {
		t.Errorf("FormattedSize() width = %v, want 18", w)
	}
	b.Close()
}
