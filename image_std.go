package imgkit

import (
	"fmt"
	"image"
	"image/color"
)

// ColorModel implements image.Image.
func (img *Image[P]) ColorModel() color.Model {
	switch img.format.ColorType() {
	case ColorTypeL:
		return color.GrayModel
	case ColorTypePaletteRgb, ColorTypePaletteRgba:
		return img.stdPalette()
	default:
		return color.NRGBAModel
	}
}

// Bounds implements image.Image.
func (img *Image[P]) Bounds() image.Rectangle {
	return image.Rect(0, 0, img.width, img.height)
}

// At implements image.Image. Pixels outside the image are transparent.
func (img *Image[P]) At(x, y int) color.Color {
	if !img.inBounds(x, y) {
		return color.NRGBA{}
	}
	return img.data[y*img.width+x]
}

func (img *Image[P]) stdPalette() color.Palette {
	pal := make(color.Palette, img.palette.Len())
	for i, c := range img.palette.colors {
		pal[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return pal
}

// ToStd copies the image into the closest standard library type:
// *image.Gray for L and BitPixel, *image.Paletted for paletted formats and
// *image.NRGBA otherwise.
func (img *Image[P]) ToStd() image.Image {
	r := img.Bounds()
	switch img.format.ColorType() {
	case ColorTypeL:
		out := image.NewGray(r)
		for i, p := range img.data {
			out.Pix[i] = p.Dynamic().Luminance()
		}
		return out
	case ColorTypePaletteRgb, ColorTypePaletteRgba:
		out := image.NewPaletted(r, img.stdPalette())
		for i, p := range img.data {
			out.Pix[i] = p.AppendBytes(nil)[0]
		}
		return out
	default:
		out := image.NewNRGBA(r)
		for i, p := range img.data {
			c := p.AsRgba()
			copy(out.Pix[i*4:], []uint8{c.R, c.G, c.B, c.A})
		}
		return out
	}
}

// FromStd converts any image.Image into an image of format P. The source's
// bounds are translated so that its minimum point becomes (0, 0).
func FromStd[P TrueColor](src image.Image) (*Image[P], error) {
	r := src.Bounds()
	if r.Empty() {
		return nil, fmt.Errorf("source bounds %v: %w", r, ErrInvalidDimensions)
	}
	f := FormatOf[P]()

	switch s := src.(type) {
	case *image.Gray:
		return FromFunc(r.Dx(), r.Dy(), func(x, y int) P {
			return f.FromDynamic(L(s.GrayAt(r.Min.X+x, r.Min.Y+y).Y).Dynamic())
		})
	case *image.NRGBA:
		return FromFunc(r.Dx(), r.Dy(), func(x, y int) P {
			c := s.NRGBAAt(r.Min.X+x, r.Min.Y+y)
			return f.FromRgba(Rgba{c.R, c.G, c.B, c.A})
		})
	}
	return FromFunc(r.Dx(), r.Dy(), func(x, y int) P {
		return f.FromRgba(rgbaFromColor(src.At(r.Min.X+x, r.Min.Y+y)))
	})
}
