package imgkit

import "fmt"

// ParseRgba parses a hex color code. Accepted forms, with or without a
// leading '#', are RGB, RGBA, RRGGBB and RRGGBBAA. Missing alpha is opaque.
func ParseRgba(hex string) (Rgba, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var v [4]uint8
	v[3] = 255

	switch len(s) {
	case 3, 4: // RGB, RGBA
		for i := range len(s) {
			d, ok := hexDigit(s[i])
			if !ok {
				return Rgba{}, fmt.Errorf("%q: %w", hex, ErrInvalidHexCode)
			}
			v[i] = d * 17
		}
	case 6, 8: // RRGGBB, RRGGBBAA
		for i := 0; i < len(s); i += 2 {
			hi, ok1 := hexDigit(s[i])
			lo, ok2 := hexDigit(s[i+1])
			if !ok1 || !ok2 {
				return Rgba{}, fmt.Errorf("%q: %w", hex, ErrInvalidHexCode)
			}
			v[i/2] = hi<<4 | lo
		}
	default:
		return Rgba{}, fmt.Errorf("%q: length %d: %w", hex, len(s), ErrInvalidHexCode)
	}

	return Rgba{v[0], v[1], v[2], v[3]}, nil
}

// ParseRgb parses a hex color code like ParseRgba. An alpha component is
// accepted and dropped.
func ParseRgb(hex string) (Rgb, error) {
	c, err := ParseRgba(hex)
	if err != nil {
		return Rgb{}, err
	}
	return c.Rgb(), nil
}

// MustParseRgba is like ParseRgba but panics on malformed input. It is
// intended for constant color codes.
func MustParseRgba(hex string) Rgba {
	c, err := ParseRgba(hex)
	if err != nil {
		panic(err)
	}
	return c
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
