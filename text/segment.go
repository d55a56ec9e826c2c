package text

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// Segment is a run of runes [Start, End) with one script and one bidi level.
type Segment struct {
	Start     int
	End       int
	Direction Direction
	Script    language.Script
	Level     int
}

// Len returns the number of runes in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Segmenter splits paragraph text into segments.
type Segmenter interface {
	Segment(text []rune) []Segment
}

// BuiltinSegmenter resolves bidi levels with golang.org/x/text/unicode/bidi
// and scripts with go-text's Unicode script table.
type BuiltinSegmenter struct {
	// BaseDirection is the paragraph direction. Levels of right-to-left
	// paragraphs start at 1.
	BaseDirection Direction
}

// NewBuiltinSegmenter returns a segmenter for left-to-right paragraphs.
func NewBuiltinSegmenter() *BuiltinSegmenter {
	return &BuiltinSegmenter{BaseDirection: DirectionLTR}
}

// NewBuiltinSegmenterWithDirection returns a segmenter for paragraphs of
// the given base direction.
func NewBuiltinSegmenterWithDirection(dir Direction) *BuiltinSegmenter {
	return &BuiltinSegmenter{BaseDirection: dir}
}

// Segment implements Segmenter.
func (s *BuiltinSegmenter) Segment(text []rune) []Segment {
	if len(text) == 0 {
		return nil
	}
	levels := s.computeBidiLevels(text)
	scripts := resolveInheritedScripts(detectScripts(text))
	return buildSegments(levels, scripts)
}

func (s *BuiltinSegmenter) computeBidiLevels(text []rune) []int {
	base := 0
	defaultDir := bidi.LeftToRight
	if s.BaseDirection == DirectionRTL {
		base = 1
		defaultDir = bidi.RightToLeft
	}

	levels := make([]int, len(text))
	for i := range levels {
		levels[i] = base
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(text), bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, end inclusive. The package only
	// reports a direction per run, so levels collapse to base and base+1.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos()
		lvl := base
		switch {
		case base == 0 && run.Direction() == bidi.RightToLeft:
			lvl = 1
		case base == 1 && run.Direction() == bidi.LeftToRight:
			lvl = 2
		}
		for j := start; j <= end && j < len(levels); j++ {
			levels[j] = lvl
		}
	}
	return levels
}

func detectScripts(text []rune) []language.Script {
	scripts := make([]language.Script, len(text))
	for i, r := range text {
		scripts[i] = language.LookupScript(r)
	}
	return scripts
}

func isConcrete(s language.Script) bool {
	return s.Strong() && s != language.Unknown
}

// resolveInheritedScripts assigns Common and Inherited runes the script of
// their surroundings so that punctuation and spaces do not split runs.
func resolveInheritedScripts(scripts []language.Script) []language.Script {
	resolved := make([]language.Script, len(scripts))
	copy(resolved, scripts)

	last := language.Common
	for i := range resolved {
		if resolved[i] == language.Inherited {
			resolved[i] = last
		} else if isConcrete(resolved[i]) {
			last = resolved[i]
		}
	}

	last = language.Common
	for i := range resolved {
		if isConcrete(resolved[i]) {
			last = resolved[i]
			continue
		}
		next := findNextConcreteScript(resolved, i+1)
		resolved[i] = resolveCommonScript(last, next)
	}
	return resolved
}

// findNextConcreteScript finds the next concrete script starting at index start.
func findNextConcreteScript(scripts []language.Script, start int) language.Script {
	for j := start; j < len(scripts); j++ {
		if isConcrete(scripts[j]) {
			return scripts[j]
		}
	}
	return language.Common
}

// resolveCommonScript determines what script a Common character should inherit.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common && prev == next:
		return prev
	case prev != language.Common && next == language.Common:
		return prev
	case prev == language.Common && next != language.Common:
		return next
	case prev != language.Common:
		return prev
	default:
		return language.Common
	}
}

func buildSegments(levels []int, scripts []language.Script) []Segment {
	segments := make([]Segment, 0, 4)
	start := 0
	for i := 1; i <= len(levels); i++ {
		if i < len(levels) && levels[i] == levels[start] && scripts[i] == scripts[start] {
			continue
		}
		dir := DirectionLTR
		if levels[start]%2 == 1 {
			dir = DirectionRTL
		}
		segments = append(segments, Segment{
			Start:     start,
			End:       i,
			Direction: dir,
			Script:    scripts[start],
			Level:     levels[start],
		})
		start = i
	}
	return segments
}

// ParagraphDirection returns the direction of the first strong character
// (rules P2 and P3 of UAX #9). ok is false when text has no strong
// character.
func ParagraphDirection(text []rune) (dir Direction, ok bool) {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR, true
		case bidi.R, bidi.AL:
			return DirectionRTL, true
		}
	}
	return DirectionLTR, false
}

// VisualOrder returns the indices of items with the given embedding levels
// in display order (rule L2 of UAX #9): from the highest level down to the
// lowest odd level, every maximal run at that level or above is reversed.
func VisualOrder(levels []int) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) == 0 {
		return order
	}

	highest, lowestOdd := 0, -1
	for _, l := range levels {
		highest = max(highest, l)
		if l%2 == 1 && (lowestOdd < 0 || l < lowestOdd) {
			lowestOdd = l
		}
	}
	if lowestOdd < 0 {
		return order
	}

	for lvl := highest; lvl >= lowestOdd; lvl-- {
		for i := 0; i < len(order); {
			if levels[order[i]] < lvl {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= lvl {
				j++
			}
			for a, b := i, j-1; a < b; a, b = a+1, b-1 {
				order[a], order[b] = order[b], order[a]
			}
			i = j
		}
	}
	return order
}
