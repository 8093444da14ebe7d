package codec

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/gogpu/imgkit"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image in any registered format. Pixels keep the color
// type the file was stored in. The second result is the format name.
func Decode(r io.Reader) (*imgkit.Image[imgkit.Dynamic], string, error) {
	return DecodeAs[imgkit.Dynamic](r)
}

// DecodeAs reads an image and converts every pixel into P.
func DecodeAs[P imgkit.TrueColor](r io.Reader) (*imgkit.Image[P], string, error) {
	src, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	img, err := fromStd[P](src)
	if err != nil {
		return nil, name, fmt.Errorf("codec: %s: %w", name, err)
	}
	imgkit.Logger().Info("decoded", "format", name,
		"width", img.Width(), "height", img.Height(), "color_type", img.ColorType())
	return img, name, nil
}

// DecodePaletted reads a paletted image, keeping its indices and palette.
// Sources that store true color return ErrNotPaletted.
func DecodePaletted(r io.Reader) (*imgkit.Image[imgkit.PalettedRgba], string, error) {
	src, name, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("codec: decode: %w", err)
	}
	p, ok := src.(*image.Paletted)
	if !ok {
		return nil, name, fmt.Errorf("codec: %s decoded as %T: %w", name, src, ErrNotPaletted)
	}
	b := p.Bounds()
	img, err := imgkit.FromRawPartsPaletted[imgkit.PalettedRgba](b.Dx(), b.Dy(),
		packRows(p.Pix, p.Stride, p.PixOffset(b.Min.X, b.Min.Y), b.Dx(), b.Dy()), stdPalette(p.Palette))
	if err != nil {
		return nil, name, fmt.Errorf("codec: %s: %w", name, err)
	}
	imgkit.Logger().Info("decoded", "format", name,
		"width", img.Width(), "height", img.Height(), "colors", img.Palette().Len())
	return img, name, nil
}

// DecodeConfig returns the dimensions and format name without decoding
// pixel data.
func DecodeConfig(r io.Reader) (width, height int, name string, err error) {
	cfg, name, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, "", fmt.Errorf("codec: decode config: %w", err)
	}
	return cfg.Width, cfg.Height, name, nil
}

// Load decodes the image stored at path.
func Load(path string) (*imgkit.Image[imgkit.Dynamic], Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("codec: could not open %q: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			imgkit.Logger().Warn("could not close source file", "file", path, "error", closeErr)
		}
	}()

	img, name, err := Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("%q: %w", path, err)
	}
	format, err := ParseFormat(name)
	if err != nil {
		return nil, 0, err
	}
	return img, format, nil
}

// fromStd hands decoded pixels to imgkit as raw parts, choosing the
// narrowest color type that holds the source without loss.
func fromStd[P imgkit.TrueColor](src image.Image) (*imgkit.Image[P], error) {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()

	switch s := src.(type) {
	case *image.Gray:
		return imgkit.FromRawParts[P](w, h, imgkit.ColorTypeL, 8,
			packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), w, h))
	case *image.NRGBA:
		return imgkit.FromRawParts[P](w, h, imgkit.ColorTypeRgba, 8,
			packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), w*4, h))
	case *image.Paletted:
		return imgkit.FromRawPartsPaletted[P](w, h,
			packRows(s.Pix, s.Stride, s.PixOffset(b.Min.X, b.Min.Y), w, h), stdPalette(s.Palette))
	}

	ct, ch := imgkit.ColorTypeRgba, 4
	if o, ok := src.(interface{ Opaque() bool }); ok && o.Opaque() {
		ct, ch = imgkit.ColorTypeRgb, 3
	}
	data := make([]byte, 0, w*h*ch)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			data = append(data, c.R, c.G, c.B, c.A)
			if ch == 3 {
				data = data[:len(data)-1]
			}
		}
	}
	return imgkit.FromRawParts[P](w, h, ct, 8, data)
}

// packRows returns h rows of rowBytes bytes starting at off, dropping any
// stride padding.
func packRows(pix []byte, stride, off, rowBytes, h int) []byte {
	if stride == rowBytes && off == 0 && len(pix) >= rowBytes*h {
		return pix[:rowBytes*h]
	}
	out := make([]byte, 0, rowBytes*h)
	for y := range h {
		start := off + y*stride
		out = append(out, pix[start:start+rowBytes]...)
	}
	return out
}

func stdPalette(p color.Palette) []imgkit.Rgba {
	out := make([]imgkit.Rgba, len(p))
	for i, c := range p {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		out[i] = imgkit.Rgba{R: n.R, G: n.G, B: n.B, A: n.A}
	}
	return out
}
