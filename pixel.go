package imgkit

import (
	"fmt"
	"image/color"
)

// Pixel is implemented by every pixel format stored in an Image.
//
// Pixels are small values; methods never mutate the receiver. Every pixel
// also satisfies color.Color so that images interoperate with the standard
// library.
type Pixel interface {
	color.Color

	// ColorType returns the channel layout of the pixel.
	ColorType() ColorType

	// BitDepth returns the number of bits per channel: 1 or 8.
	BitDepth() int

	// Dynamic wraps the pixel's color into a Dynamic value.
	Dynamic() Dynamic

	// AsRgba resolves the pixel to straight-alpha RGBA.
	AsRgba() Rgba

	// AppendBytes appends the raw encoding of the pixel to dst.
	AppendBytes(dst []byte) []byte

	// pixelMarker seals the interface to the formats defined here.
	pixelMarker()
}

// TrueColor is the set of pixel formats that store their color directly.
// Conversions into a TrueColor format never fail.
type TrueColor interface {
	BitPixel | L | Rgb | Rgba | Dynamic
	Pixel
}

// luminance weights RGB with 0.299, 0.587 and 0.114.
func luminance(r, g, b uint8) uint8 {
	return uint8((int(r)*299 + int(g)*587 + int(b)*114) / 1000)
}

// BitPixel is a single bit: on (white) or off (black).
type BitPixel bool

// BitPixel values.
const (
	BitOff BitPixel = false
	BitOn  BitPixel = true
)

// ColorType implements Pixel.
func (BitPixel) ColorType() ColorType { return ColorTypeL }

// BitDepth implements Pixel.
func (BitPixel) BitDepth() int { return 1 }

// Dynamic implements Pixel.
func (p BitPixel) Dynamic() Dynamic { return dynamicBit(p) }

// AsRgba implements Pixel.
func (p BitPixel) AsRgba() Rgba {
	if p {
		return White
	}
	return Black
}

// AppendBytes implements Pixel. A bit is encoded as 0 or 255 when stored one
// per byte.
func (p BitPixel) AppendBytes(dst []byte) []byte {
	if p {
		return append(dst, 255)
	}
	return append(dst, 0)
}

// RGBA implements color.Color.
func (p BitPixel) RGBA() (r, g, b, a uint32) { return p.AsRgba().RGBA() }

// Luminance returns 255 for on and 0 for off.
func (p BitPixel) Luminance() uint8 { return p.L().Value() }

// L widens the bit to a luminance value.
func (p BitPixel) L() L {
	if p {
		return 255
	}
	return 0
}

// Inverted flips the bit.
func (p BitPixel) Inverted() BitPixel { return !p }

// L is an 8-bit luminance (grayscale) pixel.
type L uint8

// Value returns the luminance.
func (p L) Value() uint8 { return uint8(p) }

// ColorType implements Pixel.
func (L) ColorType() ColorType { return ColorTypeL }

// BitDepth implements Pixel.
func (L) BitDepth() int { return 8 }

// Dynamic implements Pixel.
func (p L) Dynamic() Dynamic { return dynamicL(p) }

// AsRgba implements Pixel.
func (p L) AsRgba() Rgba { return Rgba{uint8(p), uint8(p), uint8(p), 255} }

// AppendBytes implements Pixel.
func (p L) AppendBytes(dst []byte) []byte { return append(dst, uint8(p)) }

// RGBA implements color.Color.
func (p L) RGBA() (r, g, b, a uint32) { return p.AsRgba().RGBA() }

// Luminance returns the value itself.
func (p L) Luminance() uint8 { return uint8(p) }

// Bit thresholds the luminance: values above 127 are on.
func (p L) Bit() BitPixel { return p > 127 }

// Inverted returns 255 minus the value.
func (p L) Inverted() L { return 255 - p }

// Rgb is a 24-bit color without alpha.
type Rgb struct {
	R, G, B uint8
}

// ColorType implements Pixel.
func (Rgb) ColorType() ColorType { return ColorTypeRgb }

// BitDepth implements Pixel.
func (Rgb) BitDepth() int { return 8 }

// Dynamic implements Pixel.
func (p Rgb) Dynamic() Dynamic { return dynamicRgb(p) }

// AsRgba implements Pixel.
func (p Rgb) AsRgba() Rgba { return Rgba{p.R, p.G, p.B, 255} }

// AppendBytes implements Pixel.
func (p Rgb) AppendBytes(dst []byte) []byte { return append(dst, p.R, p.G, p.B) }

// RGBA implements color.Color.
func (p Rgb) RGBA() (r, g, b, a uint32) { return p.AsRgba().RGBA() }

// Luminance returns the weighted gray value of the color.
func (p Rgb) Luminance() uint8 { return luminance(p.R, p.G, p.B) }

// WithAlpha attaches an alpha channel.
func (p Rgb) WithAlpha(a uint8) Rgba { return Rgba{p.R, p.G, p.B, a} }

// Inverted inverts every channel.
func (p Rgb) Inverted() Rgb { return Rgb{255 - p.R, 255 - p.G, 255 - p.B} }

// String formats the color as #RRGGBB.
func (p Rgb) String() string { return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B) }

// Rgba is a 32-bit color with straight (non-premultiplied) alpha.
type Rgba struct {
	R, G, B, A uint8
}

// Common colors.
var (
	Black       = Rgba{0, 0, 0, 255}
	White       = Rgba{255, 255, 255, 255}
	Transparent = Rgba{}
)

// ColorType implements Pixel.
func (Rgba) ColorType() ColorType { return ColorTypeRgba }

// BitDepth implements Pixel.
func (Rgba) BitDepth() int { return 8 }

// Dynamic implements Pixel.
func (p Rgba) Dynamic() Dynamic { return dynamicRgba(p) }

// AsRgba implements Pixel.
func (p Rgba) AsRgba() Rgba { return p }

// AppendBytes implements Pixel.
func (p Rgba) AppendBytes(dst []byte) []byte { return append(dst, p.R, p.G, p.B, p.A) }

// RGBA implements color.Color by premultiplying, as color.NRGBA does.
func (p Rgba) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: p.A}.RGBA()
}

// Luminance returns the weighted gray value of the color channels.
func (p Rgba) Luminance() uint8 { return luminance(p.R, p.G, p.B) }

// Rgb drops the alpha channel.
func (p Rgba) Rgb() Rgb { return Rgb{p.R, p.G, p.B} }

// WithAlpha replaces the alpha channel.
func (p Rgba) WithAlpha(a uint8) Rgba { p.A = a; return p }

// Inverted inverts the color channels and keeps alpha.
func (p Rgba) Inverted() Rgba { return Rgba{255 - p.R, 255 - p.G, 255 - p.B, p.A} }

// String formats the color as #RRGGBBAA.
func (p Rgba) String() string { return fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.A) }

func (BitPixel) pixelMarker() {}
func (L) pixelMarker()        {}
func (Rgb) pixelMarker()      {}
func (Rgba) pixelMarker()     {}

// rgbaFromColor converts any color.Color to straight alpha.
func rgbaFromColor(c color.Color) Rgba {
	if p, ok := c.(Pixel); ok {
		return p.AsRgba()
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Rgba{n.R, n.G, n.B, n.A}
}
