package style

import (
	"image/color"
	"iter"
	"strconv"
	"strings"

	"github.com/gogpu/textblock/text"
)

// Parser applies format strings to Formats.
//
// The key table is built when the Parser is created and dropped when the
// last holder closes it. A closed Parser ignores every declaration.
type Parser struct {
	refs int
	keys map[string]key
}

// NewParser returns a Parser holding one reference.
func NewParser() *Parser {
	p := &Parser{}
	p.Retain()
	return p
}

// Retain adds a holder, rebuilding the key table if it was released.
func (p *Parser) Retain() {
	if p.refs == 0 {
		p.keys = make(map[string]key, keyCount)
		for k := keyUnknown + 1; k < keyCount; k++ {
			p.keys[keyNames[k]] = k
		}
	}
	p.refs++
}

// Close drops a holder. The key table is released with the last one.
func (p *Parser) Close() {
	if p.refs == 0 {
		return
	}
	p.refs--
	if p.refs == 0 {
		p.keys = nil
	}
}

// Known reports whether name is a recognized format key.
func (p *Parser) Known(name string) bool {
	return p.lookup(name) != keyUnknown
}

func (p *Parser) lookup(name string) key {
	return p.keys[name]
}

// Apply parses markup and applies every recognized declaration to f in
// order.
func (p *Parser) Apply(f *Format, markup string) {
	for name, value := range Declarations(markup) {
		if k := p.lookup(name); k != keyUnknown {
			command(f, k, value)
		}
	}
}

// Declarations iterates over the key=value pairs of a format string.
// Items without '=' are skipped. Values are returned with quotes and
// escaping backslashes removed.
func Declarations(markup string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		s := strings.TrimLeft(markup, " ")
		for s != "" {
			var item string
			item, s = nextItem(s)
			if item == "" {
				continue
			}
			name, value, ok := splitParam(item)
			if !ok {
				continue
			}
			if !yield(name, value) {
				return
			}
		}
	}
}

// nextItem returns the item at the start of s and the remainder. Items
// end at the first space that is neither escaped nor inside quotes.
func nextItem(s string) (item, rest string) {
	start := 0
	for start < len(s) && s[start] == ' ' {
		start++
	}
	quote := false
	for i := start; i < len(s); i++ {
		switch {
		case s[i] == '\'' && (i == 0 || s[i-1] != '\\'):
			quote = !quote
		case s[i] == ' ' && !quote && i > 0 && s[i-1] != '\\':
			return s[start:i], s[i:]
		}
	}
	return s[start:], ""
}

// splitParam splits "key=value" and unquotes the value.
func splitParam(item string) (name, value string, ok bool) {
	eq := strings.IndexByte(item, '=')
	if eq < 0 {
		return "", "", false
	}
	name = item[:eq]
	v := strings.TrimLeft(item[eq+1:], " ")

	var delim byte = ' '
	if v != "" && v[0] == '\'' {
		v = v[1:]
		delim = '\''
	}
	end := len(v)
	for i := 0; i < len(v); i++ {
		if v[i] == delim && (i == 0 || v[i-1] != '\\') {
			end = i
			break
		}
	}
	return name, strings.ReplaceAll(v[:end], `\`, ""), true
}

// command applies one declaration.
func command(f *Format, k key, v string) {
	switch k {
	case keyFont:
		parseFontName(&f.Font, v)
	case keyFontFallbacks:
		f.Font.Fallbacks = splitFallbacks(v)
	case keyFontSize:
		f.FontSize = atoi(v)
	case keyFontSource:
		f.Font.Source = v
	case keyFontWeight:
		f.Font.Weight, _ = text.ParseWeight(v)
	case keyFontStyle:
		f.Font.Slant, _ = text.ParseSlant(v)
	case keyFontWidth:
		f.Font.Width = v
	case keyLang:
		f.Font.Lang = v
	case keyColor:
		setColor(&f.Colors.Normal, v)
	case keyUnderlineColor:
		setColor(&f.Colors.Underline, v)
	case keyUnderline2Color:
		setColor(&f.Colors.Underline2, v)
	case keyUnderlineDashColor:
		setColor(&f.Colors.UnderlineDash, v)
	case keyOutlineColor:
		setColor(&f.Colors.Outline, v)
	case keyShadowColor:
		setColor(&f.Colors.Shadow, v)
	case keyGlowColor:
		setColor(&f.Colors.Glow, v)
	case keyGlow2Color:
		setColor(&f.Colors.Glow2, v)
	case keyBackingColor:
		setColor(&f.Colors.Backing, v)
	case keyStrikethroughColor:
		setColor(&f.Colors.Strikethrough, v)
	case keyAlign:
		parseAlign(f, v)
	case keyVAlign:
		parseVAlign(f, v)
	case keyWrap:
		f.Wrap = parseWrap(v)
	case keyLeftMargin:
		f.MarginLeft = parseMargin(f.MarginLeft, v)
	case keyRightMargin:
		f.MarginRight = parseMargin(f.MarginRight, v)
	case keyUnderline:
		parseUnderline(f, v)
	case keyStrikethrough:
		parseOnOff(&f.Strikethrough, v)
	case keyBacking:
		parseOnOff(&f.Backing, v)
	case keyStyle:
		parseEffect(f, v)
	case keyTabStops:
		f.TabStops = max(atoi(v), 1)
	case keyLineSize:
		f.LineSize = atoi(v)
		f.LineRelSize = 0
	case keyLineRelSize:
		if val, ok := percent(v); ok {
			f.LineRelSize = max(val, 0)
			f.LineSize = 0
		}
	case keyLineGap:
		f.LineGap = atoi(v)
		f.LineRelGap = 0
	case keyLineRelGap:
		if val, ok := percent(v); ok {
			f.LineRelGap = max(val, 0)
			f.LineGap = 0
		}
	case keyItem:
		// Inline objects are not laid out.
	case keyLineFill:
		if val, ok := percent(v); ok {
			f.LineFill = max(val, 0)
		}
	case keyEllipsis:
		f.Ellipsis, _ = strtod(v)
		if f.Ellipsis < 0 || f.Ellipsis > 1 {
			f.Ellipsis = -1
		}
	case keyUnderlineDashWidth:
		f.UnderlineDashWidth = max(atoi(v), 1)
	case keyUnderlineDashGap:
		f.UnderlineDashGap = max(atoi(v), 1)
	}
}

func setColor(dst *color.NRGBA, v string) {
	if c, ok := ParseColor(v); ok {
		*dst = c
	}
}

func parseAlign(f *Format, v string) {
	switch v {
	case "auto":
		f.HAlignAuto = true
		return
	case "middle", "center":
		f.HAlign = 0.5
	case "left":
		f.HAlign = 0
	case "right":
		f.HAlign = 1
	default:
		f.HAlign = clamp01(fraction(v))
	}
	f.HAlignAuto = false
}

func parseVAlign(f *Format, v string) {
	switch v {
	case "top":
		f.VAlign = 0
	case "middle", "center":
		f.VAlign = 0.5
	case "bottom":
		f.VAlign = 1
	case "baseline", "base":
		f.VAlign = -1
	default:
		f.VAlign = clamp01(fraction(v))
	}
}

func parseWrap(v string) Wrap {
	switch v {
	case "word":
		return WrapWord
	case "char":
		return WrapChar
	case "mixed":
		return WrapMixed
	}
	return WrapNone
}

func parseMargin(cur int, v string) int {
	var m int
	switch {
	case v == "reset":
		return 0
	case strings.HasPrefix(v, "+"):
		m = cur + atoi(v[1:])
	case strings.HasPrefix(v, "-"):
		m = cur - atoi(v[1:])
	default:
		m = atoi(v)
	}
	return max(m, 0)
}

func parseUnderline(f *Format, v string) {
	f.Underline, f.Underline2, f.UnderlineDash = false, false, false
	switch v {
	case "on", "single":
		f.Underline = true
	case "double":
		f.Underline, f.Underline2 = true, true
	case "dashed":
		f.UnderlineDash = true
	}
}

func parseOnOff(dst *bool, v string) {
	switch v {
	case "on":
		*dst = true
	case "off":
		*dst = false
	}
}

func parseEffect(f *Format, v string) {
	basic, dir, hasDir := strings.Cut(v, ",")
	f.Effect = EffectPlain
	for e, name := range effectNames {
		if name == basic {
			f.Effect = Effect(e)
			break
		}
	}
	if !hasDir || dir == "" {
		return
	}
	f.ShadowDirection = ShadowBottomRight
	for d, name := range shadowNames {
		if name == dir {
			f.ShadowDirection = ShadowDirection(d)
			break
		}
	}
}

// parseFontName parses "Family:weight=bold:style=Italic:lang=en".
func parseFontName(d *text.FontDesc, v string) {
	parts := strings.Split(v, ":")
	d.Family = strings.TrimSpace(parts[0])
	for _, part := range parts[1:] {
		name, val, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "style":
			// fontconfig style names carry both weight and slant.
			for _, word := range strings.Fields(val) {
				if w, ok := text.ParseWeight(word); ok {
					d.Weight = w
				}
				if s, ok := text.ParseSlant(word); ok {
					d.Slant = s
				}
			}
		case "weight":
			d.Weight, _ = text.ParseWeight(val)
		case "slant":
			d.Slant, _ = text.ParseSlant(val)
		case "width":
			d.Width = val
		case "lang":
			d.Lang = val
		}
	}
}

func splitFallbacks(v string) []string {
	var out []string
	for _, f := range strings.Split(v, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}

// fraction parses a number with an optional "%" suffix.
func fraction(v string) float64 {
	val, rest := strtod(v)
	if strings.HasPrefix(strings.TrimLeft(rest, " \t\n\v\f\r"), "%") {
		val /= 100
	}
	return val
}

// percent parses a value that must carry a "%" suffix.
func percent(v string) (float64, bool) {
	val, rest := strtod(v)
	if strings.HasPrefix(strings.TrimLeft(rest, " \t\n\v\f\r"), "%") {
		return val / 100, true
	}
	return 0, false
}

// atoi parses the leading integer of s and returns 0 when there is none.
func atoi(s string) int {
	s = strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

// strtod parses the leading decimal number of s and returns it with the
// unparsed remainder. Without a number it returns 0 and s.
func strtod(s string) (float64, string) {
	t := strings.TrimLeft(s, " \t\n\v\f\r")
	end := 0
	if end < len(t) && (t[end] == '+' || t[end] == '-') {
		end++
	}
	mant := end
	for end < len(t) && t[end] >= '0' && t[end] <= '9' {
		end++
	}
	if end < len(t) && t[end] == '.' {
		end++
		for end < len(t) && t[end] >= '0' && t[end] <= '9' {
			end++
		}
	}
	if end == mant || (end == mant+1 && t[mant] == '.') {
		return 0, s
	}
	if end < len(t) && (t[end] == 'e' || t[end] == 'E') {
		exp := end + 1
		if exp < len(t) && (t[exp] == '+' || t[exp] == '-') {
			exp++
		}
		digits := exp
		for exp < len(t) && t[exp] >= '0' && t[exp] <= '9' {
			exp++
		}
		if exp > digits {
			end = exp
		}
	}
	v, err := strconv.ParseFloat(t[:end], 64)
	if err != nil {
		return 0, s
	}
	return v, t[end:]
}
