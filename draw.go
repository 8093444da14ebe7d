package imgkit

import (
	"fmt"
	"image"

	"github.com/gogpu/imgkit/internal/parallel"
	"github.com/gogpu/imgkit/internal/raster"
)

// Draw rasterizes a shape into the image.
//
// The shape is validated and every fill is prepared once. Coverage is then
// computed per pixel and each covered pixel is composited with
// Format.Overlay. A shape's border is drawn after its fill.
//
// Rows may be processed concurrently; the result is identical to drawing
// them one at a time. Draw must not run concurrently with any other
// mutation of the same image.
func (img *Image[P]) Draw(s Shape[P], opts ...DrawOption) error {
	o := defaultDrawOptions()
	for _, opt := range opts {
		opt(&o)
	}

	passes, err := s.plan()
	if err != nil {
		return fmt.Errorf("draw %T: %w", s, err)
	}

	for _, p := range passes {
		fill, err := prepareFill(p.fill)
		if err != nil {
			return fmt.Errorf("draw %T: %w", s, err)
		}
		mode := img.overlay
		switch {
		case o.overlay != nil:
			mode = *o.overlay
		case p.overlay != nil:
			mode = *p.overlay
		}
		img.drawPass(p.mask, fill, p.bounds, mode, o)
	}
	return nil
}

func (img *Image[P]) drawPass(m raster.Mask, fill Fill[P], bounds Rect, mode OverlayMode, o drawOptions) {
	clip := m.Bounds().Intersect(image.Rect(0, 0, img.width, img.height))
	if clip.Empty() {
		return
	}

	workers := o.workers
	if workers == 0 {
		workers = parallel.Default().Workers()
	}
	area := clip.Dx() * clip.Dy()
	concurrent := workers > 1 && area >= o.threshold && clip.Dy() > 1

	Logger().Debug("draw",
		"bounds", clip,
		"mode", mode,
		"workers", workers,
		"parallel", concurrent,
	)

	band := func(y0, y1 int) {
		var scratch raster.Scratch
		cov := make([]float64, clip.Dx())
		for y := y0; y < y1; y++ {
			m.Row(cov, y, clip.Min.X, &scratch)
			row := img.data[y*img.width : (y+1)*img.width]
			for i, c := range cov {
				if c == 0 {
					continue
				}
				x := clip.Min.X + i
				src := img.format.normalize(fill.At(x, y, bounds))
				row[x] = img.format.Overlay(row[x], src, mode, c)
			}
		}
	}

	if !concurrent {
		band(clip.Min.Y, clip.Max.Y)
		return
	}
	parallel.Default().Bands(clip.Min.Y, clip.Max.Y, workers, band)
}

// PlotCoverage composites one pixel painted by fill with the given coverage
// in [0, 1]. Pixels outside the image and zero coverage are ignored.
//
// It is the entry point for external rasterizers such as glyph renderers.
// Gradient fills should be passed through Prepare first so their stops are
// compiled once rather than for every pixel.
func (img *Image[P]) PlotCoverage(x, y int, coverage float64, fill Fill[P], bounds Rect, mode OverlayMode) {
	if !img.inBounds(x, y) || !(coverage > 0) {
		return
	}
	coverage = min(coverage, 1)
	i := y*img.width + x
	src := img.format.normalize(fill.At(x, y, bounds))
	img.data[i] = img.format.Overlay(img.data[i], src, mode, coverage)
}

// Overlay composites p onto the pixel at (x, y) with full coverage using
// the image's overlay mode.
func (img *Image[P]) Overlay(x, y int, p P) error {
	if !img.inBounds(x, y) {
		return fmt.Errorf("overlay (%d, %d) on %dx%d image: %w", x, y, img.width, img.height, ErrOutOfBounds)
	}
	i := y*img.width + x
	img.data[i] = img.format.Overlay(img.data[i], img.format.normalize(p), img.overlay, 1)
	return nil
}

// Prepare validates a fill and returns the form that is cheap to evaluate
// per pixel. Draw does this itself; callers of PlotCoverage should do it
// once up front.
func Prepare[P Pixel](f Fill[P]) (Fill[P], error) {
	if f == nil {
		return nil, fmt.Errorf("nil fill: %w", ErrInvalidShape)
	}
	return prepareFill(f)
}
