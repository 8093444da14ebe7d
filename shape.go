package imgkit

import (
	"fmt"
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// Shape is a geometry that Draw can rasterize: Rectangle, Ellipse, Line or
// Polygon. Shapes are configured by chaining With methods and validated
// once, when drawn.
type Shape[P Pixel] interface {
	// plan validates the shape and returns its coverage passes in the
	// order they are composited.
	plan() ([]pass[P], error)
}

// pass is one coverage mask painted with one fill.
type pass[P Pixel] struct {
	mask    raster.Mask
	fill    Fill[P]
	bounds  Rect
	overlay *OverlayMode
}

// style is the configuration shared by every shape kind.
type style[P Pixel] struct {
	fill      Fill[P]
	border    *Border[P]
	antialias bool
	overlay   *OverlayMode
}

// outline returns the shape's region grown outward by d, or shrunk inward
// when d is negative.
type outline func(d float64) raster.Spanner

// plan builds the fill pass and, with a border, the ring pass of a closed
// shape.
func (s *style[P]) plan(shape outline) ([]pass[P], error) {
	if s.fill == nil && s.border == nil {
		return nil, fmt.Errorf("no fill and no border: %w", ErrInvalidShape)
	}

	var passes []pass[P]
	if s.fill != nil {
		body := shape(0)
		passes = append(passes, pass[P]{
			mask:    raster.NewFill(body, s.antialias),
			fill:    s.fill,
			bounds:  rectFromBox(body.Extent()),
			overlay: s.overlay,
		})
	}

	if b := s.border; b != nil {
		if err := b.validate(); err != nil {
			return nil, err
		}
		outer, inner := b.offsets()
		ring := shape(outer)
		passes = append(passes, pass[P]{
			mask:    raster.NewFill(raster.Subtract(ring, shape(inner)), s.antialias),
			fill:    b.Fill,
			bounds:  rectFromBox(ring.Extent()),
			overlay: s.overlay,
		})
	}
	return passes, nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
