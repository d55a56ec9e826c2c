package text

import (
	"strconv"
	"strings"
	"sync"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Weight is a font weight on the CSS scale (100..900).
type Weight int

// Common weights.
const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
)

// weightNames is ordered so that compound names match before their suffixes.
var weightNames = []struct {
	name   string
	weight Weight
}{
	{"thin", WeightThin},
	{"ultralight", WeightExtraLight},
	{"extralight", WeightExtraLight},
	{"light", WeightLight},
	{"book", WeightNormal},
	{"regular", WeightNormal},
	{"normal", WeightNormal},
	{"medium", WeightMedium},
	{"semibold", WeightSemiBold},
	{"demibold", WeightSemiBold},
	{"extrabold", WeightExtraBold},
	{"ultrabold", WeightExtraBold},
	{"bold", WeightBold},
	{"black", WeightBlack},
	{"heavy", WeightBlack},
}

// ParseWeight converts a weight name ("bold", "semibold", ...) or a number
// to a Weight.
func ParseWeight(s string) (Weight, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range weightNames {
		if w.name == s {
			return w.weight, true
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 && n <= 1000 {
		return Weight(n), true
	}
	return WeightNormal, false
}

// Slant is the font style axis.
type Slant int

// Slant values.
const (
	SlantNormal Slant = iota
	SlantItalic
	SlantOblique
)

// String returns the string representation of the slant.
func (s Slant) String() string {
	switch s {
	case SlantNormal:
		return "normal"
	case SlantItalic:
		return "italic"
	case SlantOblique:
		return "oblique"
	default:
		return unknownStr
	}
}

// ParseSlant converts "normal", "italic" or "oblique" to a Slant.
func ParseSlant(s string) (Slant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "roman":
		return SlantNormal, true
	case "italic":
		return SlantItalic, true
	case "oblique":
		return SlantOblique, true
	}
	return SlantNormal, false
}

// FontDesc describes a font request as written in markup.
type FontDesc struct {
	// Family is the primary family name, e.g. "Sans".
	Family string

	// Fallbacks are tried in order when Family is not available.
	Fallbacks []string

	// Source is an optional font file path. When set it takes precedence
	// over the families.
	Source string

	Weight Weight
	Slant  Slant

	// Width is the stretch name ("condensed", ...). Matched against
	// subfamily names.
	Width string

	// Lang is the BCP 47 language tag used for shaping.
	Lang string
}

// String returns a compact representation such as "Sans:weight=700:style=italic".
func (d FontDesc) String() string {
	var b strings.Builder
	b.WriteString(d.Family)
	if d.Source != "" {
		b.WriteString(":source=")
		b.WriteString(d.Source)
	}
	if d.Weight != 0 && d.Weight != WeightNormal {
		b.WriteString(":weight=")
		b.WriteString(strconv.Itoa(int(d.Weight)))
	}
	if d.Slant != SlantNormal {
		b.WriteString(":style=")
		b.WriteString(d.Slant.String())
	}
	if d.Width != "" {
		b.WriteString(":width=")
		b.WriteString(d.Width)
	}
	if d.Lang != "" {
		b.WriteString(":lang=")
		b.WriteString(d.Lang)
	}
	return b.String()
}

// Equal reports whether two descriptors request the same font.
func (d FontDesc) Equal(o FontDesc) bool {
	if d.Family != o.Family || d.Source != o.Source || d.Weight != o.Weight ||
		d.Slant != o.Slant || d.Width != o.Width || d.Lang != o.Lang ||
		len(d.Fallbacks) != len(o.Fallbacks) {
		return false
	}
	for i := range d.Fallbacks {
		if d.Fallbacks[i] != o.Fallbacks[i] {
			return false
		}
	}
	return true
}

// FontSet resolves font descriptors to faces.
//
// FontSet is safe for concurrent use.
type FontSet struct {
	mu      sync.RWMutex
	entries map[string][]*FontSource // lower-case family -> sources
	aliases map[string]string
	files   map[string]*FontSource
	first   string

	faces  *Cache[faceKey, Face]
	config fontSetConfig
}

type faceKey struct {
	source *FontSource
	size   float64
	lang   string
}

// NewFontSet creates an empty FontSet.
func NewFontSet(opts ...FontSetOption) *FontSet {
	config := defaultFontSetConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return &FontSet{
		entries: make(map[string][]*FontSource),
		aliases: make(map[string]string),
		files:   make(map[string]*FontSource),
		faces:   NewCache[faceKey, Face](config.faceCacheLimit),
		config:  config,
	}
}

// Add registers a source under its family name.
func (fs *FontSet) Add(src *FontSource) {
	fs.AddAs(src.Name(), src)
}

// AddAs registers a source under the given family name.
func (fs *FontSet) AddAs(family string, src *FontSource) {
	key := strings.ToLower(family)

	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.entries[key] = append(fs.entries[key], src)
	if fs.first == "" {
		fs.first = key
	}
}

// AddAlias makes alias resolve to family.
func (fs *FontSet) AddAlias(alias, family string) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	fs.aliases[strings.ToLower(alias)] = strings.ToLower(family)
}

// Families returns the number of registered families.
func (fs *FontSet) Families() int {
	fs.mu.RLock()
	defer fs.mu.RUnlock()
	return len(fs.entries)
}

// LoadFace resolves desc and returns a face of the given pixel size.
//
// The families are tried in order (Family, then Fallbacks); when none is
// registered the default family is used. Within a family the source with
// the closest weight and matching slant wins.
func (fs *FontSet) LoadFace(desc FontDesc, size float64) (Face, error) {
	src, err := fs.resolve(desc)
	if err != nil {
		return nil, &FontLoadError{Desc: desc, Err: err}
	}
	key := faceKey{source: src, size: size, lang: desc.Lang}
	return fs.faces.GetOrCreate(key, func() Face {
		return src.Face(size, WithLanguage(desc.Lang))
	}), nil
}

// Close drops all cached faces.
func (fs *FontSet) Close() {
	fs.faces.Clear()
}

func (fs *FontSet) resolve(desc FontDesc) (*FontSource, error) {
	if desc.Source != "" {
		return fs.loadFile(desc.Source)
	}

	fs.mu.RLock()
	defer fs.mu.RUnlock()

	if len(fs.entries) == 0 {
		return nil, ErrNoFonts
	}

	families := make([]string, 0, 1+len(desc.Fallbacks))
	families = append(families, desc.Family)
	families = append(families, desc.Fallbacks...)
	for _, fam := range families {
		if srcs := fs.family(fam); len(srcs) > 0 {
			return bestMatch(srcs, desc), nil
		}
	}

	def := fs.config.defaultFamily
	if def == "" {
		def = fs.first
	}
	if srcs := fs.family(def); len(srcs) > 0 {
		return bestMatch(srcs, desc), nil
	}
	return nil, ErrFontNotFound
}

// family returns the sources of a family, following aliases.
// Caller must hold fs.mu.
func (fs *FontSet) family(name string) []*FontSource {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return nil
	}
	if srcs, ok := fs.entries[key]; ok {
		return srcs
	}
	if target, ok := fs.aliases[key]; ok {
		return fs.entries[target]
	}
	return nil
}

func (fs *FontSet) loadFile(path string) (*FontSource, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()
	if src, ok := fs.files[path]; ok {
		return src, nil
	}
	src, err := NewFontSourceFromFile(path)
	if err != nil {
		return nil, err
	}
	fs.files[path] = src
	return src, nil
}

// bestMatch picks the source whose slant matches and whose weight is closest.
func bestMatch(srcs []*FontSource, desc FontDesc) *FontSource {
	want := desc.Weight
	if want == 0 {
		want = WeightNormal
	}
	width := strings.ToLower(desc.Width)

	best := srcs[0]
	bestScore := -1
	for _, s := range srcs {
		score := int(want - s.weight)
		if score < 0 {
			score = -score
		}
		if s.slant != desc.Slant {
			score += 1000
		}
		if width != "" && !strings.Contains(strings.ToLower(s.subfamily), width) {
			score += 100
		}
		if bestScore < 0 || score < bestScore {
			best, bestScore = s, score
		}
	}
	return best
}

var (
	defaultFontSet     *FontSet
	defaultFontSetOnce sync.Once
)

// DefaultFontSet returns a process-wide FontSet populated with the Go fonts.
// "Sans" and "Serif" resolve to Go, "Monospace" resolves to Go Mono.
func DefaultFontSet() *FontSet {
	defaultFontSetOnce.Do(func() {
		fs := NewFontSet(WithDefaultFamily("Go"))
		for _, data := range [][]byte{
			goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF,
			gomono.TTF, gomonobold.TTF,
		} {
			src, err := NewFontSource(data)
			if err != nil {
				continue
			}
			fs.Add(src)
		}
		fs.AddAlias("Sans", "Go")
		fs.AddAlias("Serif", "Go")
		fs.AddAlias("Monospace", "Go Mono")
		defaultFontSet = fs
	})
	return defaultFontSet
}
