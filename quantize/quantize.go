// Package quantize reduces true-color images to paletted images.
//
// Images with no more unique colors than the palette allows are converted
// exactly: every distinct color becomes one palette entry, in order of
// first appearance. Larger images are reduced with median cut and mapped
// onto the resulting palette, optionally with Floyd-Steinberg dithering
// from golang.org/x/image/draw.
package quantize

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/imgkit"
	"golang.org/x/image/draw"
)

// MaxColors is the largest palette a paletted image can hold.
const MaxColors = 256

// ErrQuantizationOverflow is returned by MethodExact when the image has
// more unique colors than Options.MaxColors.
var ErrQuantizationOverflow = errors.New("quantize: too many colors for exact palette")

// Method selects how the palette is built.
type Method uint8

const (
	// MethodAuto uses an exact palette when the colors fit and median cut
	// otherwise.
	MethodAuto Method = iota
	// MethodExact fails with ErrQuantizationOverflow instead of reducing
	// colors.
	MethodExact
	// MethodMedianCut always builds the palette with median cut.
	MethodMedianCut
)

// String returns the method name.
func (m Method) String() string {
	switch m {
	case MethodAuto:
		return "auto"
	case MethodExact:
		return "exact"
	case MethodMedianCut:
		return "mediancut"
	default:
		return fmt.Sprintf("Method(%d)", m)
	}
}

// Options configures Quantize. The zero value allows 256 colors and picks
// the method automatically.
type Options struct {
	// MaxColors limits the palette size. Zero means 256; larger values
	// are clamped to 256.
	MaxColors int

	// Method selects exact or median cut quantization.
	Method Method

	// Dither spreads the mapping error to neighbouring pixels when the
	// palette does not hold every color.
	Dither bool

	// BinaryAlpha stores alpha as 0 or 255 only, as GIF requires. Any
	// alpha below 255 becomes fully transparent.
	BinaryAlpha bool
}

func (o Options) maxColors() int {
	if o.MaxColors <= 0 {
		return MaxColors
	}
	return min(o.MaxColors, MaxColors)
}

// Quantize converts img into a paletted image with at most
// opts.MaxColors palette entries.
func Quantize[P imgkit.Pixel](img *imgkit.Image[P], opts Options) (*imgkit.Image[imgkit.PalettedRgba], error) {
	limit := opts.maxColors()
	w, h := img.Dimensions()

	pixels := make([]imgkit.Rgba, 0, img.Len())
	for _, p := range img.Pixels() {
		c := p.AsRgba()
		if opts.BinaryAlpha && c.A != 255 {
			c.A = 0
		}
		pixels = append(pixels, c)
	}

	if opts.Method != MethodMedianCut {
		palette, indices, ok := exact(pixels, limit)
		if ok {
			imgkit.Logger().Info("quantized", "method", MethodExact, "colors", len(palette))
			return imgkit.FromRawPartsPaletted[imgkit.PalettedRgba](w, h, indices, palette)
		}
		if opts.Method == MethodExact {
			return nil, fmt.Errorf("quantize: more than %d colors: %w", limit, ErrQuantizationOverflow)
		}
	}

	palette := medianCut(histogram(pixels), limit)
	indices := remap(pixels, w, h, palette, opts.Dither)
	imgkit.Logger().Info("quantized", "method", MethodMedianCut, "colors", len(palette), "dither", opts.Dither)
	return imgkit.FromRawPartsPaletted[imgkit.PalettedRgba](w, h, indices, palette)
}

// exact assigns palette entries in order of first appearance. It reports
// false once more than limit colors are seen.
func exact(pixels []imgkit.Rgba, limit int) ([]imgkit.Rgba, []byte, bool) {
	lookup := make(map[imgkit.Rgba]uint8, limit)
	palette := make([]imgkit.Rgba, 0, limit)
	indices := make([]byte, len(pixels))

	for i, c := range pixels {
		idx, ok := lookup[c]
		if !ok {
			if len(palette) == limit {
				return nil, nil, false
			}
			idx = uint8(len(palette))
			lookup[c] = idx
			palette = append(palette, c)
		}
		indices[i] = idx
	}
	return palette, indices, true
}

// remap maps pixels onto palette with golang.org/x/image/draw, which
// matches in premultiplied RGBA space.
func remap(pixels []imgkit.Rgba, w, h int, palette []imgkit.Rgba, dither bool) []byte {
	r := image.Rect(0, 0, w, h)
	src := image.NewNRGBA(r)
	for i, c := range pixels {
		copy(src.Pix[i*4:], []uint8{c.R, c.G, c.B, c.A})
	}

	dst := image.NewPaletted(r, stdPalette(palette))
	if dither {
		draw.FloydSteinberg.Draw(dst, r, src, r.Min)
	} else {
		draw.Draw(dst, r, src, r.Min, draw.Src)
	}
	return dst.Pix
}
