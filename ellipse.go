package imgkit

import (
	"fmt"
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// Ellipse is an axis-aligned ellipse given by its center and radii.
type Ellipse[P Pixel] struct {
	center Point
	radii  Point
	style  style[P]
}

// NewEllipse returns an ellipse with zero radii at the origin.
func NewEllipse[P Pixel]() *Ellipse[P] {
	return &Ellipse[P]{}
}

// EllipseFromBounds returns the ellipse inscribed in the rectangle spanning
// two opposite corners.
func EllipseFromBounds[P Pixel](a, b Point) *Ellipse[P] {
	return &Ellipse[P]{
		center: Point{(a.X + b.X) / 2, (a.Y + b.Y) / 2},
		radii:  Point{math.Abs(b.X-a.X) / 2, math.Abs(b.Y-a.Y) / 2},
	}
}

// Circle returns a circle.
func Circle[P Pixel](center Point, radius float64) *Ellipse[P] {
	return &Ellipse[P]{center: center, radii: Point{radius, radius}}
}

// WithCenter sets the center.
func (e *Ellipse[P]) WithCenter(x, y float64) *Ellipse[P] {
	e.center = Point{x, y}
	return e
}

// WithRadii sets the horizontal and vertical radii.
func (e *Ellipse[P]) WithRadii(rx, ry float64) *Ellipse[P] {
	e.radii = Point{rx, ry}
	return e
}

// WithFill sets the interior fill.
func (e *Ellipse[P]) WithFill(f Fill[P]) *Ellipse[P] {
	e.style.fill = f
	return e
}

// WithBorder sets the stroke drawn around the outline.
func (e *Ellipse[P]) WithBorder(b *Border[P]) *Ellipse[P] {
	e.style.border = b
	return e
}

// WithAntialias enables fractional coverage along the edge.
func (e *Ellipse[P]) WithAntialias(on bool) *Ellipse[P] {
	e.style.antialias = on
	return e
}

// WithOverlayMode overrides the image's overlay mode for this shape.
func (e *Ellipse[P]) WithOverlayMode(m OverlayMode) *Ellipse[P] {
	e.style.overlay = &m
	return e
}

// Bounds returns the bounding box without the border.
func (e *Ellipse[P]) Bounds() Rect {
	return Rect{
		X0: e.center.X - e.radii.X, Y0: e.center.Y - e.radii.Y,
		X1: e.center.X + e.radii.X, Y1: e.center.Y + e.radii.Y,
	}
}

func (e *Ellipse[P]) plan() ([]pass[P], error) {
	if !finite(e.center.X, e.center.Y, e.radii.X, e.radii.Y) || !(e.radii.X > 0) || !(e.radii.Y > 0) {
		return nil, fmt.Errorf("ellipse with radii %v: %w", e.radii, ErrInvalidShape)
	}
	return e.style.plan(func(d float64) raster.Spanner {
		return raster.Ellipse{CX: e.center.X, CY: e.center.Y, RX: e.radii.X + d, RY: e.radii.Y + d}
	})
}
