package imgkit

import "fmt"

// dynamicKind orders the variants from narrowest to widest. The zero kind is
// Rgba so that the zero Dynamic is a transparent pixel.
type dynamicKind uint8

const (
	dynRgba dynamicKind = iota
	dynBit
	dynL
	dynRgb
)

// width ranks a kind for promotion: a wider kind can hold every narrower one.
func (k dynamicKind) width() int {
	switch k {
	case dynBit:
		return 0
	case dynL:
		return 1
	case dynRgb:
		return 2
	default:
		return 3
	}
}

// Dynamic holds exactly one BitPixel, L, Rgb or Rgba value, chosen at run
// time. It is used where the concrete format is only known after decoding.
//
// Dynamic is comparable. Conversions out of it are explicit and may lose
// information: color to gray applies luminance weighting and dropping alpha
// only happens through Rgb.
type Dynamic struct {
	kind dynamicKind
	v    [4]uint8
}

func dynamicBit(p BitPixel) Dynamic {
	d := Dynamic{kind: dynBit}
	if p {
		d.v[0] = 1
	}
	return d
}

func dynamicL(p L) Dynamic       { return Dynamic{kind: dynL, v: [4]uint8{uint8(p)}} }
func dynamicRgb(p Rgb) Dynamic   { return Dynamic{kind: dynRgb, v: [4]uint8{p.R, p.G, p.B}} }
func dynamicRgba(p Rgba) Dynamic { return Dynamic{kind: dynRgba, v: [4]uint8{p.R, p.G, p.B, p.A}} }

// ColorType implements Pixel. It reports the variant currently held.
func (d Dynamic) ColorType() ColorType {
	switch d.kind {
	case dynBit, dynL:
		return ColorTypeL
	case dynRgb:
		return ColorTypeRgb
	default:
		return ColorTypeRgba
	}
}

// BitDepth implements Pixel.
func (d Dynamic) BitDepth() int {
	if d.kind == dynBit {
		return 1
	}
	return 8
}

// Dynamic implements Pixel.
func (d Dynamic) Dynamic() Dynamic { return d }

// Value returns the held variant as its concrete pixel type.
func (d Dynamic) Value() Pixel {
	switch d.kind {
	case dynBit:
		return BitPixel(d.v[0] != 0)
	case dynL:
		return L(d.v[0])
	case dynRgb:
		return Rgb{d.v[0], d.v[1], d.v[2]}
	default:
		return Rgba{d.v[0], d.v[1], d.v[2], d.v[3]}
	}
}

// BitPixel converts the value to a bit, thresholding luminance above 127.
func (d Dynamic) BitPixel() BitPixel {
	switch d.kind {
	case dynBit:
		return d.v[0] != 0
	case dynL:
		return L(d.v[0]).Bit()
	default:
		return luminance(d.v[0], d.v[1], d.v[2]) > 127
	}
}

// L converts the value to luminance.
func (d Dynamic) L() L {
	switch d.kind {
	case dynBit:
		return BitPixel(d.v[0] != 0).L()
	case dynL:
		return L(d.v[0])
	default:
		return L(luminance(d.v[0], d.v[1], d.v[2]))
	}
}

// Rgb converts the value to Rgb, dropping alpha.
func (d Dynamic) Rgb() Rgb {
	switch d.kind {
	case dynBit, dynL:
		l := d.L().Value()
		return Rgb{l, l, l}
	default:
		return Rgb{d.v[0], d.v[1], d.v[2]}
	}
}

// Rgba converts the value to Rgba. Formats without alpha become opaque.
func (d Dynamic) Rgba() Rgba {
	switch d.kind {
	case dynBit, dynL, dynRgb:
		c := d.Rgb()
		return Rgba{c.R, c.G, c.B, 255}
	default:
		return Rgba{d.v[0], d.v[1], d.v[2], d.v[3]}
	}
}

// AsRgba implements Pixel.
func (d Dynamic) AsRgba() Rgba { return d.Rgba() }

// AppendBytes implements Pixel, encoding the held variant.
func (d Dynamic) AppendBytes(dst []byte) []byte {
	return d.Value().AppendBytes(dst)
}

// RGBA implements color.Color.
func (d Dynamic) RGBA() (r, g, b, a uint32) { return d.Rgba().RGBA() }

// Luminance returns the weighted gray value.
func (d Dynamic) Luminance() uint8 { return d.L().Value() }

// Inverted inverts the held variant without changing it.
func (d Dynamic) Inverted() Dynamic {
	switch v := d.Value().(type) {
	case BitPixel:
		return v.Inverted().Dynamic()
	case L:
		return v.Inverted().Dynamic()
	case Rgb:
		return v.Inverted().Dynamic()
	default:
		return d.Rgba().Inverted().Dynamic()
	}
}

func (Dynamic) pixelMarker() {}

// as converts d to the variant of kind.
func (d Dynamic) as(kind dynamicKind) Dynamic {
	if d.kind == kind {
		return d
	}
	switch kind {
	case dynBit:
		return dynamicBit(d.BitPixel())
	case dynL:
		return dynamicL(d.L())
	case dynRgb:
		return dynamicRgb(d.Rgb())
	default:
		return dynamicRgba(d.Rgba())
	}
}

// String formats the variant and its value.
func (d Dynamic) String() string {
	return fmt.Sprintf("Dynamic(%v)", d.Value())
}

// dynamicFromBytes infers the variant from the byte count: 1 is L, 2 is
// luminance with alpha (held as Rgba), 3 is Rgb and 4 is Rgba.
func dynamicFromBytes(b []byte) (Dynamic, error) {
	switch len(b) {
	case 1:
		return dynamicL(L(b[0])), nil
	case 2:
		return dynamicRgba(Rgba{b[0], b[0], b[0], b[1]}), nil
	case 3:
		return dynamicRgb(Rgb{b[0], b[1], b[2]}), nil
	case 4:
		return dynamicRgba(Rgba{b[0], b[1], b[2], b[3]}), nil
	default:
		return Dynamic{}, fmt.Errorf("dynamic pixel from %d bytes: %w", len(b), ErrFormatMismatch)
	}
}
