package textblock

import (
	"github.com/gogpu/textblock/style"
	"github.com/gogpu/textblock/text"
)

// Option configures a Textblock during creation.
//
// Example:
//
//	tb := textblock.New(
//	    textblock.WithSize(320, -1),
//	    textblock.WithMaxLength(1<<20),
//	)
type Option func(*config)

// config holds the creation-time configuration of a Textblock.
type config struct {
	loader        style.FontLoader
	shaper        text.Shaper
	parser        *style.Parser
	scale         float64
	maxLength     int
	maxParagraphs int
	width         float64
	height        float64
}

// defaultConfig returns the default configuration: Go fonts, the global
// shaper, unbounded size and no limits.
func defaultConfig() config {
	return config{
		scale:  1,
		width:  -1,
		height: -1,
	}
}

// WithFontLoader sets the font resolver used to finalize formats.
// The default is text.DefaultFontSet().
func WithFontLoader(l style.FontLoader) Option {
	return func(c *config) {
		c.loader = l
	}
}

// WithShaper sets the shaper used for text items. A nil shaper uses the
// global text shaper at layout time.
func WithShaper(s text.Shaper) Option {
	return func(c *config) {
		c.shaper = s
	}
}

// WithStyleParser shares a format parser between Textblocks. The
// Textblock retains it and releases it on Close.
func WithStyleParser(p *style.Parser) Option {
	return func(c *config) {
		c.parser = p
	}
}

// WithScale multiplies every font size. Values <= 0 are ignored.
func WithScale(s float64) Option {
	return func(c *config) {
		if s > 0 {
			c.scale = s
		}
	}
}

// WithMaxLength limits the document length in code points, counting one
// slot per paragraph separator. 0 means unlimited.
func WithMaxLength(n int) Option {
	return func(c *config) {
		c.maxLength = max(n, 0)
	}
}

// WithMaxParagraphs limits the number of paragraphs. 0 means unlimited.
func WithMaxParagraphs(n int) Option {
	return func(c *config) {
		c.maxParagraphs = max(n, 0)
	}
}

// WithSize sets the initial object size. A negative width disables
// wrapping.
func WithSize(w, h float64) Option {
	return func(c *config) {
		c.width, c.height = w, h
	}
}
