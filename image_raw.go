package imgkit

import "fmt"

// FromRawParts creates an image from raw bytes produced by a decoder. The
// bytes are laid out row-major in the declared color type and bit depth:
// depth 8 supports L, LA, Rgb and Rgba with one byte per channel; depth 1
// supports L packed eight pixels per byte, most significant bit first, each
// row padded to a whole byte. Every decoded pixel is converted into P.
//
// Paletted targets must use FromRawPartsPaletted.
func FromRawParts[P Pixel](width, height int, ct ColorType, bitDepth int, data []byte) (*Image[P], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if isPaletted[P]() || ct.IsPaletted() || ct == ColorTypeDynamic {
		return nil, fmt.Errorf("raw %v data into %v: %w", ct, FormatOf[P]().ColorType(), ErrUnsupportedColorType)
	}

	var decode func(i int) Dynamic
	switch bitDepth {
	case 8:
		ch := ct.Channels()
		if want := width * height * ch; len(data) != want {
			return nil, fmt.Errorf("%d bytes for %dx%d %v, want %d: %w", len(data), width, height, ct, want, ErrFormatMismatch)
		}
		decode = func(i int) Dynamic {
			d, _ := dynamicFromBytes(data[i*ch : (i+1)*ch])
			return d
		}
	case 1:
		if ct != ColorTypeL {
			return nil, fmt.Errorf("1-bit %v: %w", ct, ErrUnsupportedColorType)
		}
		stride := (width + 7) / 8
		if want := stride * height; len(data) != want {
			return nil, fmt.Errorf("%d bytes for %dx%d 1-bit, want %d: %w", len(data), width, height, want, ErrFormatMismatch)
		}
		decode = func(i int) Dynamic {
			x, y := i%width, i/width
			return dynamicBit(data[y*stride+x/8]&(0x80>>(x%8)) != 0)
		}
	default:
		return nil, fmt.Errorf("bit depth %d: %w", bitDepth, ErrUnsupportedColorType)
	}

	img, err := newImage[P](width, height, nil)
	if err != nil {
		return nil, err
	}
	for i := range img.data {
		img.data[i] = img.format.FromDynamic(decode(i))
	}
	return img, nil
}

// FromRawPartsPaletted creates an image from one index byte per pixel and
// the palette they refer to. For paletted P the palette is copied into the
// image; for true-color P every index is resolved once.
func FromRawPartsPaletted[P Pixel](width, height int, indices []byte, palette []Rgba) (*Image[P], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(indices) != width*height {
		return nil, fmt.Errorf("%d indices for %dx%d: %w", len(indices), width, height, ErrFormatMismatch)
	}

	var zero P
	alpha := zero.ColorType() == ColorTypePaletteRgba
	if !isPaletted[P]() {
		for _, c := range palette {
			if c.A != 255 {
				alpha = true
				break
			}
		}
	}
	pal, err := NewPalette(palette, alpha)
	if err != nil {
		return nil, err
	}

	img, err := newImage[P](width, height, nil)
	if err != nil {
		return nil, err
	}
	if isPaletted[P]() {
		img.palette = pal
		img.rebind()
	}

	for i, idx := range indices {
		p, err := img.format.FromPaletteEntry(pal, int(idx))
		if err != nil {
			return nil, fmt.Errorf("pixel %d: %w", i, err)
		}
		img.data[i] = p
	}
	return img, nil
}
