// Package resize scales imgkit images with the resampling filters of
// github.com/disintegration/imaging and golang.org/x/image/draw.
//
// Every pixel format is supported. Gray and bit images are resampled as
// 8-bit gray, Dynamic images keep their widest variant, and paletted
// images keep their palette: interpolated colors are mapped back to the
// nearest entry.
package resize

import (
	"errors"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gogpu/imgkit"
	"golang.org/x/image/draw"
)

// ErrUnknownFilter is returned for a Filter value or name that does not
// exist.
var ErrUnknownFilter = errors.New("resize: unknown filter")

// Filter selects the resampling algorithm.
type Filter uint8

const (
	// FilterNearest picks the closest source pixel. It never mixes colors.
	FilterNearest Filter = iota
	// FilterBox averages the source pixels under each output pixel.
	FilterBox
	// FilterBilinear interpolates linearly.
	FilterBilinear
	// FilterHamming is sharper than bilinear when downscaling.
	FilterHamming
	// FilterCatmullRom is the common bicubic filter.
	FilterCatmullRom
	// FilterMitchell is the Mitchell-Netravali bicubic filter.
	FilterMitchell
	// FilterLanczos is Lanczos with a window of 3.
	FilterLanczos
	// FilterApproxBilinear is a fast bilinear approximation that samples
	// at most four source pixels.
	FilterApproxBilinear
	// FilterTile repeats the image to fill a larger size and crops it to a
	// smaller one.
	FilterTile
)

var filterNames = [...]string{
	FilterNearest:        "nearest",
	FilterBox:            "box",
	FilterBilinear:       "bilinear",
	FilterHamming:        "hamming",
	FilterCatmullRom:     "catmullrom",
	FilterMitchell:       "mitchell",
	FilterLanczos:        "lanczos",
	FilterApproxBilinear: "approxbilinear",
	FilterTile:           "tile",
}

// String returns the filter name accepted by ParseFilter.
func (f Filter) String() string {
	if int(f) < len(filterNames) {
		return filterNames[f]
	}
	return fmt.Sprintf("Filter(%d)", f)
}

// ParseFilter returns the filter with the given case-insensitive name.
func ParseFilter(name string) (Filter, error) {
	for i, n := range filterNames {
		if strings.EqualFold(n, name) {
			return Filter(i), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFilter)
}

// convolution maps filters to their imaging kernels.
var convolution = map[Filter]imaging.ResampleFilter{
	FilterBox:        imaging.Box,
	FilterBilinear:   imaging.Linear,
	FilterHamming:    imaging.Hamming,
	FilterCatmullRom: imaging.CatmullRom,
	FilterMitchell:   imaging.MitchellNetravali,
	FilterLanczos:    imaging.Lanczos,
}

// Resize returns a copy of img scaled to width×height with filter f.
//
// If one of width and height is zero it is derived from the other,
// preserving the aspect ratio. Resizing to the current size returns a
// clone.
func Resize[P imgkit.Pixel](img *imgkit.Image[P], width, height int, f Filter) (*imgkit.Image[P], error) {
	width, height, err := targetSize(img.Width(), img.Height(), width, height)
	if err != nil {
		return nil, err
	}
	if width == img.Width() && height == img.Height() {
		return img.Clone(), nil
	}
	if f == FilterTile {
		return tile(img, width, height)
	}

	ct := img.ColorType()
	src := working(img, ct)

	var dst image.Image
	switch f {
	case FilterNearest:
		dst = scale(draw.NearestNeighbor, src, width, height)
	case FilterApproxBilinear:
		dst = scale(draw.ApproxBiLinear, src, width, height)
	default:
		kernel, ok := convolution[f]
		if !ok {
			return nil, fmt.Errorf("resize: filter %v: %w", f, ErrUnknownFilter)
		}
		dst = imaging.Resize(src, width, height, kernel)
	}

	imgkit.Logger().Debug("resize", "from", img.Bounds().Size(), "to", image.Pt(width, height),
		"filter", f, "color_type", ct)
	return wrap(img, dst, ct)
}

func targetSize(sw, sh, width, height int) (int, int, error) {
	switch {
	case width < 0 || height < 0 || (width == 0 && height == 0):
		return 0, 0, fmt.Errorf("resize: %dx%d: %w", width, height, imgkit.ErrInvalidDimensions)
	case width == 0:
		width = max(1, int(math.Round(float64(height)*float64(sw)/float64(sh))))
	case height == 0:
		height = max(1, int(math.Round(float64(width)*float64(sh)/float64(sw))))
	}
	return width, height, nil
}

func tile[P imgkit.Pixel](img *imgkit.Image[P], width, height int) (*imgkit.Image[P], error) {
	sw, sh := img.Dimensions()
	pix := img.Pixels()
	return imgkit.FromFunc(width, height, func(x, y int) P {
		return pix[(y%sh)*sw+x%sw]
	})
}

// working returns the standard library image the filters operate on.
func working[P imgkit.Pixel](img *imgkit.Image[P], ct imgkit.ColorType) image.Image {
	if ct != imgkit.ColorTypeL {
		return img.ToStd()
	}
	g := image.NewGray(img.Bounds())
	for i, p := range img.Pixels() {
		g.Pix[i] = p.Dynamic().Luminance()
	}
	return g
}

func scale(interp draw.Interpolator, src image.Image, width, height int) image.Image {
	r := image.Rect(0, 0, width, height)
	var dst draw.Image
	switch s := src.(type) {
	case *image.Gray:
		dst = image.NewGray(r)
	case *image.Paletted:
		dst = image.NewPaletted(r, s.Palette)
	default:
		dst = image.NewNRGBA(r)
	}
	interp.Scale(dst, r, src, src.Bounds(), draw.Src, nil)
	return dst
}

// wrap turns the resampled buffer back into an image of the source's
// format.
func wrap[P imgkit.Pixel](img *imgkit.Image[P], dst image.Image, ct imgkit.ColorType) (*imgkit.Image[P], error) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	pal := img.Palette()

	switch d := dst.(type) {
	case *image.Paletted:
		return imgkit.FromRawPartsPaletted[P](w, h, d.Pix, pal.Colors())
	case *image.Gray:
		return imgkit.FromRawParts[P](w, h, imgkit.ColorTypeL, 8, d.Pix)
	case *image.NRGBA:
		if pal != nil {
			indices := make([]byte, w*h)
			for i := range indices {
				c := d.Pix[i*4 : i*4+4]
				indices[i] = pal.Nearest(imgkit.Rgba{R: c[0], G: c[1], B: c[2], A: c[3]})
			}
			return imgkit.FromRawPartsPaletted[P](w, h, indices, pal.Colors())
		}
		return imgkit.FromRawParts[P](w, h, ct, 8, channels(d.Pix, ct))
	default:
		return nil, fmt.Errorf("resize: unexpected buffer %T: %w", dst, imgkit.ErrUnsupportedColorType)
	}
}

// channels narrows NRGBA bytes to the layout of ct.
func channels(pix []byte, ct imgkit.ColorType) []byte {
	n := ct.Channels()
	if n == 4 {
		return pix
	}
	out := make([]byte, 0, len(pix)/4*n)
	for i := 0; i < len(pix); i += 4 {
		switch n {
		case 1:
			out = append(out, pix[i])
		case 2:
			out = append(out, pix[i], pix[i+3])
		default:
			out = append(out, pix[i], pix[i+1], pix[i+2])
		}
	}
	return out
}
