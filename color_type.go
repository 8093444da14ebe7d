package imgkit

// ColorType tags the channel layout of a pixel format. Codec collaborators
// use it to negotiate raw byte layouts.
type ColorType uint8

const (
	// ColorTypeL is a single luminance channel.
	ColorTypeL ColorType = iota + 1
	// ColorTypeLA is luminance plus alpha.
	ColorTypeLA
	// ColorTypeRgb is red, green and blue.
	ColorTypeRgb
	// ColorTypeRgba is red, green, blue and alpha.
	ColorTypeRgba
	// ColorTypePaletteRgb is an index into an RGB palette.
	ColorTypePaletteRgb
	// ColorTypePaletteRgba is an index into an RGBA palette.
	ColorTypePaletteRgba
	// ColorTypeDynamic is a format decided per pixel at run time.
	ColorTypeDynamic
)

// Channels returns the number of channels stored per pixel. Paletted types
// store one index; Dynamic reports its widest variant.
func (c ColorType) Channels() int {
	switch c {
	case ColorTypeL, ColorTypePaletteRgb, ColorTypePaletteRgba:
		return 1
	case ColorTypeLA:
		return 2
	case ColorTypeRgb:
		return 3
	case ColorTypeRgba, ColorTypeDynamic:
		return 4
	default:
		return 0
	}
}

// HasAlpha reports whether the color type can carry transparency.
func (c ColorType) HasAlpha() bool {
	switch c {
	case ColorTypeLA, ColorTypeRgba, ColorTypePaletteRgba, ColorTypeDynamic:
		return true
	default:
		return false
	}
}

// IsPaletted reports whether pixels are palette indices.
func (c ColorType) IsPaletted() bool {
	return c == ColorTypePaletteRgb || c == ColorTypePaletteRgba
}

// String returns the name of the color type.
func (c ColorType) String() string {
	switch c {
	case ColorTypeL:
		return "L"
	case ColorTypeLA:
		return "LA"
	case ColorTypeRgb:
		return "Rgb"
	case ColorTypeRgba:
		return "Rgba"
	case ColorTypePaletteRgb:
		return "PaletteRgb"
	case ColorTypePaletteRgba:
		return "PaletteRgba"
	case ColorTypeDynamic:
		return "Dynamic"
	default:
		return "Unknown"
	}
}
