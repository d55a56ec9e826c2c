// Package textblock lays out, edits and renders multi-paragraph rich text.
//
// # Overview
//
// A Textblock holds a document made of paragraphs. Paragraphs are separated
// by U+2029; inside a paragraph, '\n' and U+2028 break lines and '\t' moves
// the pen to the next tab stop. Formatting comes from a style.Style, a
// named set of format declarations such as
//
//	DEFAULT='font=Sans font_size=12 color=#000 wrap=word'
//
// Layout is lazy. Edits and style changes mark paragraphs dirty and the
// next geometry query, or an explicit Layout call, shapes text with the
// text package and breaks it into lines that fit the object width.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/textblock"
//		"github.com/gogpu/textblock/style"
//	)
//
//	tb := textblock.New()
//	defer tb.Close()
//	tb.SetStyle(style.NewStyle("DEFAULT='font=Sans font_size=14 wrap=word'"))
//	tb.SetSize(200, -1)
//	_ = tb.SetText("Hello, world")
//
//	w, h := tb.FormattedSize()
//
// # Cursors
//
// Every Textblock has a primary Cursor that cannot be freed, and any number
// of extra cursors from NewCursor. Edits through one cursor keep the others
// on the same characters. A freed cursor handle stays invalid even when its
// slot is reused.
//
// # Rendering
//
// Render replays the laid out lines to a Painter as shaped runs and
// rectangles. Each layer is drawn over all visible lines before the next:
// backing, shadow, glow, outline, text, strikethrough and underline. The
// recording package provides a Painter that captures the commands for later
// playback.
//
// # Coordinate System
//
// Coordinates are in pixels relative to the object origin:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// A Textblock is not safe for concurrent use.
package textblock

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
