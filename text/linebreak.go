package text

import (
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// BreakFlags describes the boundary after a rune.
type BreakFlags uint8

// Boundary kinds, combined as bit flags.
const (
	// BreakGrapheme marks the end of a grapheme cluster.
	BreakGrapheme BreakFlags = 1 << iota
	// BreakWord marks a UAX #29 word boundary.
	BreakWord
	// BreakLineAllowed marks a UAX #14 line break opportunity.
	BreakLineAllowed
	// BreakLineMandatory marks a UAX #14 mandatory line break.
	BreakLineMandatory
)

// CanBreakLine reports whether a line may end after the rune.
func (f BreakFlags) CanBreakLine() bool {
	return f&(BreakLineAllowed|BreakLineMandatory) != 0
}

// MustBreakLine reports whether a line must end after the rune.
func (f BreakFlags) MustBreakLine() bool {
	return f&BreakLineMandatory != 0
}

// Breaks computes, for each rune of text, the boundaries that follow it.
//
// The end of text is reported as a grapheme, word and allowed line
// boundary; it is only mandatory when the last rune is itself a hard
// line break character.
func Breaks(text []rune) []BreakFlags {
	flags := make([]BreakFlags, len(text))
	if len(text) == 0 {
		return flags
	}

	str := string(text)
	state := -1
	idx := 0
	for str != "" {
		var cluster string
		var boundaries int
		cluster, str, boundaries, state = uniseg.StepString(str, state)
		idx += utf8.RuneCountInString(cluster)
		last := idx - 1
		if last >= len(flags) {
			break
		}

		f := BreakGrapheme
		if boundaries&uniseg.MaskWord != 0 {
			f |= BreakWord
		}
		switch boundaries & uniseg.MaskLine {
		case uniseg.LineCanBreak:
			f |= BreakLineAllowed
		case uniseg.LineMustBreak:
			if str == "" && !IsHardBreak(text[last]) {
				f |= BreakLineAllowed
			} else {
				f |= BreakLineMandatory
			}
		}
		flags[last] = f
	}
	return flags
}

// NextCluster returns the index just past the grapheme cluster that
// starts at rune index i.
func NextCluster(text []rune, i int) int {
	if i >= len(text) {
		return len(text)
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(string(text[i:]), -1)
	n := utf8.RuneCountInString(cluster)
	if n == 0 {
		n = 1
	}
	return i + n
}

// IsHardBreak reports whether r forces a line break.
func IsHardBreak(r rune) bool {
	switch r {
	case '\n', '\v', '\f', '\r', 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// IsWhite reports whether r is collapsible white space at a wrap point.
func IsWhite(r rune) bool {
	switch {
	case r == 0x20, r >= 0x9 && r <= 0xD, r == 0x85, r == 0xA0,
		r == 0x1680, r == 0x180E, r >= 0x2000 && r <= 0x200A,
		r == 0x2028, r == 0x2029, r == 0x202F, r == 0x205F, r == 0x3000:
		return true
	}
	return false
}
