package text

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// FontSource is safe for concurrent use.
// FontSource must not be copied after creation (enforced by copyCheck).
type FontSource struct {
	// addr is used for copy protection (Ebitengine pattern).
	// It must point to the FontSource itself.
	addr *FontSource

	data   []byte
	parsed ParsedFont

	name      string
	subfamily string
	weight    Weight
	slant     Slant

	mu sync.RWMutex

	// advances caches glyph advances per (glyph, size).
	advances *Cache[advanceKey, float64]

	config sourceConfig
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
//
// Options can be used to configure caching and parser backend.
func NewFontSource(data []byte, opts ...SourceOption) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	config := defaultSourceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	parsed, err := getParser(config.parserName).Parse(data)
	if err != nil {
		return nil, err
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	s := &FontSource{
		data:     dataCopy,
		parsed:   parsed,
		advances: NewCache[advanceKey, float64](config.cacheLimit),
		config:   config,
	}
	s.addr = s

	s.name = parsed.Name()
	if s.name == "" {
		s.name = "Unknown Font"
	}
	s.subfamily = parsed.Subfamily()
	s.weight, s.slant = classifySubfamily(s.subfamily)

	return s, nil
}

// NewFontSourceFromFile loads a FontSource from a font file path.
func NewFontSourceFromFile(path string, opts ...SourceOption) (*FontSource, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: failed to read font file: %w", err)
	}

	return NewFontSource(data, opts...)
}

// Face creates a Face at the specified size (in pixels).
// Multiple faces can be created from the same FontSource.
//
// Panics if s is nil (e.g. when NewFontSourceFromFile error was ignored).
func (s *FontSource) Face(size float64, opts ...FaceOption) Face {
	if s == nil {
		panic("text: FontSource is nil, check the error from NewFontSourceFromFile")
	}
	s.copyCheck()

	config := defaultFaceConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &sourceFace{
		source: s,
		size:   size,
		config: config,
	}
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	s.copyCheck()
	return s.name
}

// Subfamily returns the style name of the font, e.g. "Bold Italic".
func (s *FontSource) Subfamily() string {
	s.copyCheck()
	return s.subfamily
}

// Weight returns the weight derived from the subfamily name.
func (s *FontSource) Weight() Weight {
	return s.weight
}

// Slant returns the slant derived from the subfamily name.
func (s *FontSource) Slant() Slant {
	return s.slant
}

// Parsed returns the parsed font for advanced operations.
// Returns nil after Close.
func (s *FontSource) Parsed() ParsedFont {
	s.copyCheck()
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.parsed
}

// Close releases resources associated with the FontSource.
// All faces created from this source become invalid after Close.
func (s *FontSource) Close() error {
	s.copyCheck()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = nil
	s.parsed = nil
	s.advances.Clear()

	return nil
}

// advanceKey identifies a glyph advance in the FontSource cache.
type advanceKey struct {
	gid  uint16
	size float64
}

// glyphAdvance returns the cached advance of gid at size.
func (s *FontSource) glyphAdvance(parsed ParsedFont, gid uint16, size float64) float64 {
	return s.advances.GetOrCreate(advanceKey{gid: gid, size: size}, func() float64 {
		return parsed.GlyphAdvance(gid, size)
	})
}

// copyCheck panics if FontSource was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *FontSource) copyCheck() {
	if s.addr != s {
		panic("text: FontSource must not be copied by value")
	}
}

// classifySubfamily maps a subfamily name like "SemiBold Italic" to a weight
// and slant.
func classifySubfamily(sub string) (Weight, Slant) {
	lower := strings.ToLower(strings.ReplaceAll(sub, " ", ""))

	slant := SlantNormal
	switch {
	case strings.Contains(lower, "italic"):
		slant = SlantItalic
	case strings.Contains(lower, "oblique"):
		slant = SlantOblique
	}

	weight := WeightNormal
	for _, w := range weightNames {
		if w.name != "" && strings.Contains(lower, w.name) {
			weight = w.weight
			break
		}
	}
	return weight, slant
}
