package style

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

// Tag is a named replacement markup of a style sheet.
type Tag struct {
	Name    string
	Replace string
}

// Style is a parsed style sheet of the form KEY='VALUE'[KEY='VALUE']...
// The DEFAULT tag is the base format of every paragraph.
//
// Several textblocks may share one Style. Each change bumps Generation so
// that users notice they must relayout.
type Style struct {
	text       string
	set        bool
	defaultTag string
	tags       []Tag
	gen        uint64
}

// NewStyle returns a Style parsed from text. Parse problems are ignored;
// use Set to see them.
func NewStyle(text string) *Style {
	s := &Style{}
	_ = s.Set(text)
	return s
}

// Set replaces the style sheet. Setting the current text again does
// nothing. Parsing stops at the first unterminated value and reports
// ErrUnterminatedTag; the tags before it are kept.
func (s *Style) Set(text string) error {
	if s.set && text == s.text {
		return nil
	}
	s.text, s.set = text, true
	s.defaultTag = ""
	s.tags = nil
	s.gen++
	return s.parse()
}

// Text returns the style sheet source.
func (s *Style) Text() string {
	return s.text
}

// Generation changes every time the sheet changes.
func (s *Style) Generation() uint64 {
	return s.gen
}

// Default returns the DEFAULT tag markup.
func (s *Style) Default() string {
	return s.defaultTag
}

// TagReplacement returns the markup of the named tag.
func (s *Style) TagReplacement(name string) (string, bool) {
	for _, t := range s.tags {
		if t.Name == name {
			return t.Replace, true
		}
	}
	return "", false
}

// Tags iterates over the named tags in sheet order. DEFAULT is excluded.
func (s *Style) Tags() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, t := range s.tags {
			if !yield(t.Name, t.Replace) {
				return
			}
		}
	}
}

func (s *Style) parse() error {
	p := s.text
	i := 0
	for i < len(p) {
		// Key: first non-space run, ended by '=' or a space.
		for i < len(p) && unicode.IsSpace(rune(p[i])) {
			i++
		}
		keyStart := i
		for i < len(p) && p[i] != '=' && !unicode.IsSpace(rune(p[i])) {
			i++
		}
		if i >= len(p) {
			return nil
		}
		key := p[keyStart:i]

		// Value starts after the next quote.
		q := strings.IndexByte(p[i:], '\'')
		if q < 0 || i+q+1 >= len(p) {
			return nil
		}
		i += q + 1

		var val strings.Builder
		closed := false
		for i < len(p) {
			c := p[i]
			if c == '\'' {
				if i > 0 && p[i-1] == '\\' {
					// The backslash was written already; replace it.
					cur := val.String()
					val.Reset()
					val.WriteString(cur[:len(cur)-1])
					val.WriteByte('\'')
					i++
					continue
				}
				closed = true
				i++
				break
			}
			val.WriteByte(c)
			i++
		}
		if !closed {
			return fmt.Errorf("%w: tag %q", ErrUnterminatedTag, key)
		}

		if key == "DEFAULT" {
			s.defaultTag = val.String()
		} else {
			s.tags = append(s.tags, Tag{Name: key, Replace: val.String()})
		}
	}
	return nil
}
