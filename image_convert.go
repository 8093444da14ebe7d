package imgkit

import "fmt"

// Convert returns a new image with every pixel of img converted into T.
// Paletted pixels are resolved through img's palette first. The conversion
// may be lossy (color to gray, dropping alpha) but never fails.
func Convert[T TrueColor, P Pixel](img *Image[P]) *Image[T] {
	f := FormatOf[T]()
	return MapPixels(img, func(p P) T { return f.FromDynamic(p.Dynamic()) })
}

// MapPixels returns a new image holding f applied to every pixel of img.
func MapPixels[T TrueColor, P Pixel](img *Image[P], f func(P) T) *Image[T] {
	out := &Image[T]{
		width:   img.width,
		height:  img.height,
		data:    make([]T, len(img.data)),
		format:  FormatOf[T](),
		overlay: img.overlay,
	}
	for i, p := range img.data {
		out.data[i] = f(p)
	}
	return out
}

// MapInPlace replaces every pixel with f(x, y, pixel).
func (img *Image[P]) MapInPlace(f func(x, y int, p P) P) {
	for i, p := range img.data {
		img.data[i] = img.format.normalize(f(i%img.width, i/img.width, p))
	}
}

// MapPalette replaces every palette entry with f(entry) in place. Pixel
// indices are untouched. It fails with ErrUnsupportedColorType for images
// without a palette.
func (img *Image[P]) MapPalette(f func(Rgba) Rgba) error {
	if img.palette == nil {
		return fmt.Errorf("map palette of %v image: %w", img.format.ColorType(), ErrUnsupportedColorType)
	}
	img.palette.apply(f)
	return nil
}

// FlattenPalette resolves every index of a paletted image into a new Rgb
// image.
func FlattenPalette(img *Image[PalettedRgb]) *Image[Rgb] {
	return MapPixels(img, PalettedRgb.Color)
}

// FlattenPaletteRgba resolves every index of a paletted image into a new
// Rgba image.
func FlattenPaletteRgba(img *Image[PalettedRgba]) *Image[Rgba] {
	return MapPixels(img, PalettedRgba.Color)
}

// SplitAlpha separates an Rgba image into its color and alpha planes.
func SplitAlpha(img *Image[Rgba]) (*Image[Rgb], *Image[L]) {
	return MapPixels(img, Rgba.Rgb), MapPixels(img, func(p Rgba) L { return L(p.A) })
}

// MergeAlpha combines a color plane and an alpha plane of equal dimensions.
func MergeAlpha(rgb *Image[Rgb], alpha *Image[L]) (*Image[Rgba], error) {
	if rgb.width != alpha.width || rgb.height != alpha.height {
		return nil, fmt.Errorf("merge %dx%d with %dx%d alpha: %w",
			rgb.width, rgb.height, alpha.width, alpha.height, ErrInvalidDimensions)
	}
	return FromFunc(rgb.width, rgb.height, func(x, y int) Rgba {
		i := y*rgb.width + x
		return rgb.data[i].WithAlpha(uint8(alpha.data[i]))
	})
}

// MaskAlpha sets the alpha of every pixel to the luminance of the matching
// mask pixel.
func MaskAlpha(img *Image[Rgba], mask *Image[L]) error {
	if img.width != mask.width || img.height != mask.height {
		return fmt.Errorf("mask %dx%d with %dx%d: %w",
			img.width, img.height, mask.width, mask.height, ErrInvalidDimensions)
	}
	for i := range img.data {
		img.data[i].A = uint8(mask.data[i])
	}
	return nil
}
