// Package style parses textblock markup into Format records.
//
// Two grammars are supported. A style sheet is a list of named tags:
//
//	DEFAULT='font=Sans font_size=12 color=#000' em='font_style=italic'
//
// and a format string is a space separated list of key=value declarations
// applied on top of an existing Format:
//
//	font_size=14 wrap=word align=center style='shadow,bottom'
//
// Values may be single quoted; a backslash escapes a quote or a space.
// Unknown keys are ignored and malformed numbers degrade to zero, so
// parsing never fails.
//
// Formats are reference counted. A Stack pushes duplicates of a parent
// Format for each markup scope and resolves fonts through a FontLoader
// when a Format is finalized.
package style
