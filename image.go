package imgkit

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// Image is a rectangular buffer of pixels of format P, stored row-major.
//
// An Image exclusively owns its pixel buffer and, for paletted formats, its
// Palette. Mutating methods (Set, Draw, MapPalette and friends) must not run
// concurrently on the same Image; concurrent reads of an Image that nobody
// mutates are safe.
type Image[P Pixel] struct {
	width, height int
	data          []P
	palette       *Palette
	format        Format[P]
	overlay       OverlayMode
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 || width > math.MaxInt32 || height > math.MaxInt32/width {
		return fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return nil
}

// paletteOf returns the palette a paletted pixel refers to, or nil.
func paletteOf[P Pixel](p P) *Palette {
	switch v := any(p).(type) {
	case PalettedRgb:
		return v.palette
	case PalettedRgba:
		return v.palette
	default:
		return nil
	}
}

// bindPalette points a paletted pixel at pal, keeping its index.
func bindPalette[P Pixel](p P, pal *Palette) P {
	switch v := any(p).(type) {
	case PalettedRgb:
		v.palette = pal
		return any(v).(P)
	case PalettedRgba:
		v.palette = pal
		return any(v).(P)
	default:
		return p
	}
}

func isPaletted[P Pixel]() bool {
	var zero P
	return zero.ColorType().IsPaletted()
}

// newImage allocates an image whose pixels refer to pal.
func newImage[P Pixel](width, height int, pal *Palette) (*Image[P], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	var zero P
	return &Image[P]{
		width:   width,
		height:  height,
		data:    make([]P, width*height),
		palette: pal,
		format:  formatLike(bindPalette(zero, pal)),
	}, nil
}

// New creates a width×height image with every pixel set to fill.
// A paletted fill's palette is copied into the new image.
func New[P Pixel](width, height int, fill P) (*Image[P], error) {
	pal := paletteOf(fill)
	if isPaletted[P]() && pal.Len() == 0 {
		return nil, fmt.Errorf("paletted fill without a palette: %w", ErrUnsupportedColorType)
	}

	img, err := newImage[P](width, height, pal.clone())
	if err != nil {
		return nil, err
	}
	img.Fill(bindPalette(fill, img.palette))
	return img, nil
}

// FromFunc creates an image by evaluating f at every pixel. For paletted
// formats the palette of the first pixel is copied and later pixels are
// mapped into it.
func FromFunc[P Pixel](width, height int, f func(x, y int) P) (*Image[P], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	first := f(0, 0)
	pal := paletteOf(first)
	if isPaletted[P]() && pal.Len() == 0 {
		return nil, fmt.Errorf("paletted pixels without a palette: %w", ErrUnsupportedColorType)
	}

	img, err := newImage[P](width, height, pal.clone())
	if err != nil {
		return nil, err
	}
	img.data[0] = bindPalette(first, img.palette)
	for i := 1; i < len(img.data); i++ {
		p := f(i%width, i/width)
		if paletteOf(p) == pal {
			p = bindPalette(p, img.palette)
		}
		img.data[i] = img.format.normalize(p)
	}
	return img, nil
}

// FromPixels creates an image from a row-major slice of width×height pixels.
// The slice is copied.
func FromPixels[P Pixel](width, height int, pixels []P) (*Image[P], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	if len(pixels) != width*height {
		return nil, fmt.Errorf("%d pixels for %dx%d: %w", len(pixels), width, height, ErrFormatMismatch)
	}
	return FromFunc(width, height, func(x, y int) P { return pixels[y*width+x] })
}

// Width returns the width in pixels.
func (img *Image[P]) Width() int { return img.width }

// Height returns the height in pixels.
func (img *Image[P]) Height() int { return img.height }

// Dimensions returns the width and height.
func (img *Image[P]) Dimensions() (width, height int) { return img.width, img.height }

// Len returns the number of pixels.
func (img *Image[P]) Len() int { return len(img.data) }

// Format returns the descriptor of the image's pixel format, bound to its
// palette if it has one.
func (img *Image[P]) Format() Format[P] { return img.format }

// ColorType returns the color type used for encoding.
func (img *Image[P]) ColorType() ColorType {
	if ct := img.format.ColorType(); ct != ColorTypeDynamic {
		return ct
	}
	return img.widestDynamic().ColorType()
}

// BitDepth returns the bits per channel used for encoding.
func (img *Image[P]) BitDepth() int {
	if img.format.ColorType() == ColorTypeDynamic {
		return img.widestDynamic().BitDepth()
	}
	return img.format.BitDepth()
}

// Palette returns the image's palette, or nil for true-color formats.
func (img *Image[P]) Palette() *Palette { return img.palette }

// OverlayMode returns the default overlay mode used by Draw and Paste.
func (img *Image[P]) OverlayMode() OverlayMode { return img.overlay }

// SetOverlayMode sets the default overlay mode.
func (img *Image[P]) SetOverlayMode(m OverlayMode) { img.overlay = m }

// WithOverlayMode sets the default overlay mode and returns img.
func (img *Image[P]) WithOverlayMode(m OverlayMode) *Image[P] {
	img.overlay = m
	return img
}

func (img *Image[P]) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < img.width && y < img.height
}

// Get returns the pixel at (x, y).
func (img *Image[P]) Get(x, y int) (P, error) {
	if !img.inBounds(x, y) {
		var zero P
		return zero, fmt.Errorf("get (%d, %d) in %dx%d: %w", x, y, img.width, img.height, ErrOutOfBounds)
	}
	return img.data[y*img.width+x], nil
}

// Set replaces the pixel at (x, y). A paletted pixel from another palette
// is mapped to the nearest color of this image's palette.
func (img *Image[P]) Set(x, y int, p P) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("set (%d, %d) in %dx%d: %w", x, y, img.width, img.height, ErrOutOfBounds)
	}
	img.data[y*img.width+x] = img.format.normalize(p)
	return nil
}

// Pixels returns a copy of the pixel buffer in row-major order.
func (img *Image[P]) Pixels() []P {
	return slices.Clone(img.data)
}

// Rows iterates over the rows of the image. Each row is a view into the
// buffer and is only valid until the image is next mutated.
func (img *Image[P]) Rows() iter.Seq2[int, []P] {
	return func(yield func(int, []P) bool) {
		for y := range img.height {
			if !yield(y, img.data[y*img.width:(y+1)*img.width:(y+1)*img.width]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the image, including its palette.
func (img *Image[P]) Clone() *Image[P] {
	out := &Image[P]{
		width:   img.width,
		height:  img.height,
		data:    slices.Clone(img.data),
		palette: img.palette.clone(),
		overlay: img.overlay,
	}
	out.rebind()
	return out
}

// rebind points every pixel and the format at img.palette.
func (img *Image[P]) rebind() {
	var zero P
	img.format = formatLike(bindPalette(zero, img.palette))
	if img.palette == nil {
		return
	}
	for i, p := range img.data {
		img.data[i] = bindPalette(p, img.palette)
	}
}

// widestDynamic returns a Dynamic of the widest variant stored in the image.
func (img *Image[P]) widestDynamic() Dynamic {
	widest := dynamicBit(false)
	for _, p := range img.data {
		if d := p.Dynamic(); d.kind.width() > widest.kind.width() {
			widest = d
			if d.kind == dynRgba {
				break
			}
		}
	}
	return widest
}

// Bytes returns the pixel data in encoder layout: row-major, Stride bytes
// per pixel, indices for paletted images. Bit images pack eight pixels per
// byte, most significant bit first, each row padded to a whole byte.
// Dynamic images encode every pixel as the widest variant present.
func (img *Image[P]) Bytes() []byte {
	var zero P
	switch any(zero).(type) {
	case BitPixel:
		return img.packBits()
	case Dynamic:
		kind := img.widestDynamic().kind
		out := make([]byte, 0, len(img.data)*4)
		for _, p := range img.data {
			out = p.Dynamic().as(kind).AppendBytes(out)
		}
		return out
	}

	out := make([]byte, 0, len(img.data)*img.format.Stride())
	for _, p := range img.data {
		out = p.AppendBytes(out)
	}
	return out
}

func (img *Image[P]) packBits() []byte {
	stride := (img.width + 7) / 8
	out := make([]byte, stride*img.height)
	for y := range img.height {
		for x := range img.width {
			if img.data[y*img.width+x].Dynamic().BitPixel() {
				out[y*stride+x/8] |= 0x80 >> (x % 8)
			}
		}
	}
	return out
}
