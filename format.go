package imgkit

import "fmt"

// Format describes a pixel format P: its static attributes and the
// conversions into it. Obtain one with FormatOf, or from Image.Format for
// paletted images, whose descriptors are bound to the image's palette.
type Format[P Pixel] interface {
	// ColorType returns the channel layout.
	ColorType() ColorType

	// BitDepth returns the bits per channel, 1 or 8.
	BitDepth() int

	// Channels returns the stored channel count.
	Channels() int

	// HasAlpha reports whether the format stores alpha.
	HasAlpha() bool

	// Stride returns the number of raw bytes per pixel. It never varies
	// for a format.
	Stride() int

	// FromBytes decodes one pixel. It fails with ErrFormatMismatch when
	// len(b) is not Stride().
	FromBytes(b []byte) (P, error)

	// FromPaletteEntry resolves entry i of pal into P. It fails with
	// ErrPaletteIndexOutOfRange when i is not in the palette.
	FromPaletteEntry(pal *Palette, i int) (P, error)

	// FromDynamic converts any pixel value into P. It never fails.
	FromDynamic(d Dynamic) P

	// FromRgba converts a straight-alpha color into P.
	FromRgba(c Rgba) P

	// Overlay composites src onto dst with the given mode and coverage in
	// [0, 1].
	Overlay(dst, src P, mode OverlayMode, coverage float64) P

	// Invert inverts the color channels of p, leaving alpha untouched.
	Invert(p P) P

	// normalize rebinds pixels that refer to a foreign palette.
	normalize(p P) P
}

// FormatOf returns the descriptor of P. Descriptors of paletted formats
// returned here are unbound: they report attributes but cannot construct
// pixels. Use Image.Format for a bound descriptor.
func FormatOf[P Pixel]() Format[P] {
	var zero P
	return formatLike(zero)
}

// formatLike returns the descriptor of p's format, bound to p's palette if
// it has one.
func formatLike[P Pixel](p P) Format[P] {
	var f any
	switch v := any(p).(type) {
	case BitPixel:
		f = bitFormat{}
	case L:
		f = lFormat{}
	case Rgb:
		f = rgbFormat{}
	case Rgba:
		f = rgbaFormat{}
	case Dynamic:
		f = dynamicFormat{}
	case PalettedRgb:
		f = palettedRgbFormat{palette: v.palette}
	case PalettedRgba:
		f = palettedRgbaFormat{palette: v.palette}
	}
	return f.(Format[P])
}

func strideOf(depth, channels int) int {
	return (depth*channels + 7) / 8
}

func checkStride(b []byte, stride int) error {
	if len(b) != stride {
		return fmt.Errorf("got %d bytes for a %d-byte pixel: %w", len(b), stride, ErrFormatMismatch)
	}
	return nil
}

// ---- BitPixel ----

type bitFormat struct{}

func (bitFormat) ColorType() ColorType { return ColorTypeL }
func (bitFormat) BitDepth() int        { return 1 }
func (bitFormat) Channels() int        { return 1 }
func (bitFormat) HasAlpha() bool       { return false }
func (bitFormat) Stride() int          { return strideOf(1, 1) }

func (f bitFormat) FromBytes(b []byte) (BitPixel, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return false, err
	}
	return b[0] != 0, nil
}

func (f bitFormat) FromPaletteEntry(pal *Palette, i int) (BitPixel, error) {
	c, err := pal.At(i)
	if err != nil {
		return false, err
	}
	return f.FromRgba(c), nil
}

func (bitFormat) FromDynamic(d Dynamic) BitPixel { return d.BitPixel() }
func (bitFormat) FromRgba(c Rgba) BitPixel       { return c.Luminance() > 127 }
func (bitFormat) Invert(p BitPixel) BitPixel     { return p.Inverted() }
func (bitFormat) normalize(p BitPixel) BitPixel  { return p }

func (bitFormat) Overlay(dst, src BitPixel, mode OverlayMode, coverage float64) BitPixel {
	return overlayBit(dst, src, overlayFactor(255, mode, coverage))
}

// ---- L ----

type lFormat struct{}

func (lFormat) ColorType() ColorType { return ColorTypeL }
func (lFormat) BitDepth() int        { return 8 }
func (lFormat) Channels() int        { return 1 }
func (lFormat) HasAlpha() bool       { return false }
func (lFormat) Stride() int          { return strideOf(8, 1) }

func (f lFormat) FromBytes(b []byte) (L, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return 0, err
	}
	return L(b[0]), nil
}

func (f lFormat) FromPaletteEntry(pal *Palette, i int) (L, error) {
	c, err := pal.At(i)
	if err != nil {
		return 0, err
	}
	return f.FromRgba(c), nil
}

func (lFormat) FromDynamic(d Dynamic) L { return d.L() }
func (lFormat) FromRgba(c Rgba) L       { return L(c.Luminance()) }
func (lFormat) Invert(p L) L            { return p.Inverted() }
func (lFormat) normalize(p L) L         { return p }

func (lFormat) Overlay(dst, src L, mode OverlayMode, coverage float64) L {
	return overlayL(dst, src, overlayFactor(255, mode, coverage))
}

// ---- Rgb ----

type rgbFormat struct{}

func (rgbFormat) ColorType() ColorType { return ColorTypeRgb }
func (rgbFormat) BitDepth() int        { return 8 }
func (rgbFormat) Channels() int        { return 3 }
func (rgbFormat) HasAlpha() bool       { return false }
func (rgbFormat) Stride() int          { return strideOf(8, 3) }

func (f rgbFormat) FromBytes(b []byte) (Rgb, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return Rgb{}, err
	}
	return Rgb{b[0], b[1], b[2]}, nil
}

func (rgbFormat) FromPaletteEntry(pal *Palette, i int) (Rgb, error) {
	c, err := pal.At(i)
	if err != nil {
		return Rgb{}, err
	}
	return c.Rgb(), nil
}

func (rgbFormat) FromDynamic(d Dynamic) Rgb { return d.Rgb() }
func (rgbFormat) FromRgba(c Rgba) Rgb       { return c.Rgb() }
func (rgbFormat) Invert(p Rgb) Rgb          { return p.Inverted() }
func (rgbFormat) normalize(p Rgb) Rgb       { return p }

func (rgbFormat) Overlay(dst, src Rgb, mode OverlayMode, coverage float64) Rgb {
	return overlayRgb(dst, src, overlayFactor(255, mode, coverage))
}

// ---- Rgba ----

type rgbaFormat struct{}

func (rgbaFormat) ColorType() ColorType { return ColorTypeRgba }
func (rgbaFormat) BitDepth() int        { return 8 }
func (rgbaFormat) Channels() int        { return 4 }
func (rgbaFormat) HasAlpha() bool       { return true }
func (rgbaFormat) Stride() int          { return strideOf(8, 4) }

func (f rgbaFormat) FromBytes(b []byte) (Rgba, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return Rgba{}, err
	}
	return Rgba{b[0], b[1], b[2], b[3]}, nil
}

func (rgbaFormat) FromPaletteEntry(pal *Palette, i int) (Rgba, error) {
	return pal.At(i)
}

func (rgbaFormat) FromDynamic(d Dynamic) Rgba { return d.Rgba() }
func (rgbaFormat) FromRgba(c Rgba) Rgba       { return c }
func (rgbaFormat) Invert(p Rgba) Rgba         { return p.Inverted() }
func (rgbaFormat) normalize(p Rgba) Rgba      { return p }

func (rgbaFormat) Overlay(dst, src Rgba, mode OverlayMode, coverage float64) Rgba {
	return overlayRgba(dst, src, mode, coverage)
}

// ---- Dynamic ----

type dynamicFormat struct{}

func (dynamicFormat) ColorType() ColorType { return ColorTypeDynamic }
func (dynamicFormat) BitDepth() int        { return 8 }
func (dynamicFormat) Channels() int        { return 4 }
func (dynamicFormat) HasAlpha() bool       { return true }
func (dynamicFormat) Stride() int          { return strideOf(8, 4) }

// FromBytes infers the variant from the byte count, so it accepts 1 to 4
// bytes rather than exactly Stride().
func (dynamicFormat) FromBytes(b []byte) (Dynamic, error) {
	return dynamicFromBytes(b)
}

func (dynamicFormat) FromPaletteEntry(pal *Palette, i int) (Dynamic, error) {
	c, err := pal.At(i)
	if err != nil {
		return Dynamic{}, err
	}
	if !pal.HasAlpha() {
		return c.Rgb().Dynamic(), nil
	}
	return c.Dynamic(), nil
}

func (dynamicFormat) FromDynamic(d Dynamic) Dynamic { return d }
func (dynamicFormat) FromRgba(c Rgba) Dynamic       { return c.Dynamic() }
func (dynamicFormat) Invert(p Dynamic) Dynamic      { return p.Inverted() }
func (dynamicFormat) normalize(p Dynamic) Dynamic   { return p }

func (dynamicFormat) Overlay(dst, src Dynamic, mode OverlayMode, coverage float64) Dynamic {
	return overlayDynamic(dst, src, mode, coverage)
}

// ---- Paletted ----

// palettedRgbFormat maps colors to the nearest entry of its palette.
type palettedRgbFormat struct {
	palette *Palette
}

func (palettedRgbFormat) ColorType() ColorType { return ColorTypePaletteRgb }
func (palettedRgbFormat) BitDepth() int        { return 8 }
func (palettedRgbFormat) Channels() int        { return 1 }
func (palettedRgbFormat) HasAlpha() bool       { return false }
func (palettedRgbFormat) Stride() int          { return strideOf(8, 1) }

func (f palettedRgbFormat) FromBytes(b []byte) (PalettedRgb, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return PalettedRgb{}, err
	}
	if f.palette == nil {
		return PalettedRgb{}, fmt.Errorf("paletted pixel without a palette: %w", ErrUnsupportedColorType)
	}
	return f.palette.Rgb(int(b[0]))
}

func (f palettedRgbFormat) FromPaletteEntry(pal *Palette, i int) (PalettedRgb, error) {
	c, err := pal.At(i)
	if err != nil {
		return PalettedRgb{}, err
	}
	if pal == f.palette {
		return PalettedRgb{index: uint8(i), palette: pal}, nil
	}
	return f.FromRgba(c), nil
}

func (f palettedRgbFormat) FromDynamic(d Dynamic) PalettedRgb { return f.FromRgba(d.Rgba()) }

func (f palettedRgbFormat) FromRgba(c Rgba) PalettedRgb {
	if f.palette.Len() == 0 {
		return PalettedRgb{}
	}
	c.A = 255
	return PalettedRgb{index: f.palette.Nearest(c), palette: f.palette}
}

func (f palettedRgbFormat) Invert(p PalettedRgb) PalettedRgb {
	return f.FromRgba(p.AsRgba().Inverted())
}

func (f palettedRgbFormat) normalize(p PalettedRgb) PalettedRgb {
	if p.palette == f.palette {
		return p
	}
	return f.FromRgba(p.AsRgba())
}

func (f palettedRgbFormat) Overlay(dst, src PalettedRgb, mode OverlayMode, coverage float64) PalettedRgb {
	if coverage <= 0 {
		return dst
	}
	c := overlayRgb(dst.Color(), src.Color(), overlayFactor(255, mode, coverage))
	return f.FromRgba(c.AsRgba())
}

// palettedRgbaFormat maps colors to the nearest entry of its palette.
type palettedRgbaFormat struct {
	palette *Palette
}

func (palettedRgbaFormat) ColorType() ColorType { return ColorTypePaletteRgba }
func (palettedRgbaFormat) BitDepth() int        { return 8 }
func (palettedRgbaFormat) Channels() int        { return 1 }
func (palettedRgbaFormat) HasAlpha() bool       { return true }
func (palettedRgbaFormat) Stride() int          { return strideOf(8, 1) }

func (f palettedRgbaFormat) FromBytes(b []byte) (PalettedRgba, error) {
	if err := checkStride(b, f.Stride()); err != nil {
		return PalettedRgba{}, err
	}
	if f.palette == nil {
		return PalettedRgba{}, fmt.Errorf("paletted pixel without a palette: %w", ErrUnsupportedColorType)
	}
	return f.palette.Rgba(int(b[0]))
}

func (f palettedRgbaFormat) FromPaletteEntry(pal *Palette, i int) (PalettedRgba, error) {
	c, err := pal.At(i)
	if err != nil {
		return PalettedRgba{}, err
	}
	if pal == f.palette {
		return PalettedRgba{index: uint8(i), palette: pal}, nil
	}
	return f.FromRgba(c), nil
}

func (f palettedRgbaFormat) FromDynamic(d Dynamic) PalettedRgba { return f.FromRgba(d.Rgba()) }

func (f palettedRgbaFormat) FromRgba(c Rgba) PalettedRgba {
	if f.palette.Len() == 0 {
		return PalettedRgba{}
	}
	return PalettedRgba{index: f.palette.Nearest(c), palette: f.palette}
}

func (f palettedRgbaFormat) Invert(p PalettedRgba) PalettedRgba {
	return f.FromRgba(p.Color().Inverted())
}

func (f palettedRgbaFormat) normalize(p PalettedRgba) PalettedRgba {
	if p.palette == f.palette {
		return p
	}
	return f.FromRgba(p.Color())
}

func (f palettedRgbaFormat) Overlay(dst, src PalettedRgba, mode OverlayMode, coverage float64) PalettedRgba {
	if coverage <= 0 {
		return dst
	}
	return f.FromRgba(overlayRgba(dst.Color(), src.Color(), mode, coverage))
}
