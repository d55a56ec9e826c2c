package style

import "image/color"

// ParseColor parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA".
// ok is false for any other form or for non-hex digits.
func ParseColor(s string) (c color.NRGBA, ok bool) {
	if s == "" || s[0] != '#' {
		return color.NRGBA{}, false
	}
	hex := s[1:]

	var r, g, b, a uint8
	a = 0xff
	switch len(hex) {
	case 3, 4:
		vals := [4]uint8{0, 0, 0, 0xf}
		for i := range len(hex) {
			v, ok := hexDigit(hex[i])
			if !ok {
				return color.NRGBA{}, false
			}
			vals[i] = v
		}
		r, g, b, a = vals[0]*17, vals[1]*17, vals[2]*17, vals[3]*17
	case 6, 8:
		vals := [4]uint8{0, 0, 0, 0xff}
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := hexDigit(hex[i])
			lo, ok2 := hexDigit(hex[i+1])
			if !ok1 || !ok2 {
				return color.NRGBA{}, false
			}
			vals[i/2] = hi<<4 | lo
		}
		r, g, b, a = vals[0], vals[1], vals[2], vals[3]
	default:
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: r, G: g, B: b, A: a}, true
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
