package imgkit

// PalettedRgb is an index into an RGB palette owned by an Image. It never
// carries color data itself. The zero value is unbound and resolves to
// transparent black.
type PalettedRgb struct {
	index   uint8
	palette *Palette
}

// Index returns the palette index.
func (p PalettedRgb) Index() uint8 { return p.index }

// Palette returns the palette the pixel refers to.
func (p PalettedRgb) Palette() *Palette { return p.palette }

// Color resolves the index through the palette.
func (p PalettedRgb) Color() Rgb {
	if int(p.index) >= p.palette.Len() {
		return Rgb{}
	}
	return p.palette.colors[p.index].Rgb()
}

// ColorType implements Pixel.
func (PalettedRgb) ColorType() ColorType { return ColorTypePaletteRgb }

// BitDepth implements Pixel.
func (PalettedRgb) BitDepth() int { return 8 }

// Dynamic implements Pixel, resolving the index.
func (p PalettedRgb) Dynamic() Dynamic {
	if p.palette.Len() == 0 {
		return Transparent.Dynamic()
	}
	return p.Color().Dynamic()
}

// AsRgba implements Pixel.
func (p PalettedRgb) AsRgba() Rgba {
	if p.palette.Len() == 0 {
		return Transparent
	}
	return p.Color().AsRgba()
}

// AppendBytes implements Pixel. The raw encoding is the index.
func (p PalettedRgb) AppendBytes(dst []byte) []byte { return append(dst, p.index) }

// RGBA implements color.Color.
func (p PalettedRgb) RGBA() (r, g, b, a uint32) { return p.AsRgba().RGBA() }

// PalettedRgba is an index into an RGBA palette owned by an Image. The zero
// value is unbound and resolves to transparent black.
type PalettedRgba struct {
	index   uint8
	palette *Palette
}

// Index returns the palette index.
func (p PalettedRgba) Index() uint8 { return p.index }

// Palette returns the palette the pixel refers to.
func (p PalettedRgba) Palette() *Palette { return p.palette }

// Color resolves the index through the palette.
func (p PalettedRgba) Color() Rgba {
	if int(p.index) >= p.palette.Len() {
		return Transparent
	}
	return p.palette.colors[p.index]
}

// ColorType implements Pixel.
func (PalettedRgba) ColorType() ColorType { return ColorTypePaletteRgba }

// BitDepth implements Pixel.
func (PalettedRgba) BitDepth() int { return 8 }

// Dynamic implements Pixel, resolving the index.
func (p PalettedRgba) Dynamic() Dynamic { return p.Color().Dynamic() }

// AsRgba implements Pixel.
func (p PalettedRgba) AsRgba() Rgba { return p.Color() }

// AppendBytes implements Pixel. The raw encoding is the index.
func (p PalettedRgba) AppendBytes(dst []byte) []byte { return append(dst, p.index) }

// RGBA implements color.Color.
func (p PalettedRgba) RGBA() (r, g, b, a uint32) { return p.AsRgba().RGBA() }

func (PalettedRgb) pixelMarker()  {}
func (PalettedRgba) pixelMarker() {}
