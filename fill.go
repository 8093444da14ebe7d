package imgkit

import (
	"fmt"
	"math"
)

// Fill produces the color painted at a pixel of a shape.
//
// At is evaluated for every covered pixel (x, y) with the bounds of the
// shape being drawn. Implementations must be safe for concurrent use, since
// Draw may evaluate rows on several goroutines.
type Fill[P Pixel] interface {
	At(x, y int, bounds Rect) P
}

// preparer is implemented by fills that validate and precompute their state
// once per Draw. prepare returns the fill to evaluate.
type preparer[P Pixel] interface {
	prepare() (Fill[P], error)
}

func prepareFill[P Pixel](f Fill[P]) (Fill[P], error) {
	if p, ok := f.(preparer[P]); ok {
		return p.prepare()
	}
	return f, nil
}

// SolidFill paints one color everywhere.
type SolidFill[P Pixel] struct {
	Color P
}

// Solid returns a fill of a single color.
func Solid[P Pixel](c P) SolidFill[P] {
	return SolidFill[P]{Color: c}
}

// At implements Fill.
func (s SolidFill[P]) At(int, int, Rect) P { return s.Color }

// TileMode decides how an ImageFill samples outside its source image.
type TileMode uint8

const (
	// TileClamp repeats the nearest edge pixel.
	TileClamp TileMode = iota
	// TileRepeat tiles the source image.
	TileRepeat
	// TileMirror tiles the source image, mirroring every other copy.
	TileMirror
)

// ImageFill paints a source image anchored at the top-left corner of the
// shape's bounds.
type ImageFill[P Pixel] struct {
	source *Image[P]
	tile   TileMode
}

// NewImageFill returns a fill sampling src with TileClamp.
func NewImageFill[P Pixel](src *Image[P]) *ImageFill[P] {
	return &ImageFill[P]{source: src}
}

// WithTileMode sets how the fill samples past the source's edges.
func (f *ImageFill[P]) WithTileMode(m TileMode) *ImageFill[P] {
	f.tile = m
	return f
}

func (f *ImageFill[P]) prepare() (Fill[P], error) {
	if f.source == nil {
		return nil, fmt.Errorf("image fill without a source: %w", ErrInvalidShape)
	}
	return f, nil
}

// At implements Fill.
func (f *ImageFill[P]) At(x, y int, bounds Rect) P {
	sx := tileCoord(x-int(math.Floor(bounds.X0)), f.source.width, f.tile)
	sy := tileCoord(y-int(math.Floor(bounds.Y0)), f.source.height, f.tile)
	return f.source.data[sy*f.source.width+sx]
}

func tileCoord(v, n int, mode TileMode) int {
	switch mode {
	case TileRepeat:
		v %= n
		if v < 0 {
			v += n
		}
		return v
	case TileMirror:
		period := 2 * n
		v %= period
		if v < 0 {
			v += period
		}
		if v >= n {
			v = period - 1 - v
		}
		return v
	default:
		return min(max(v, 0), n-1)
	}
}
