package imgkit

import (
	"fmt"
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// Rectangle is an axis-aligned rectangle given by its top-left corner and
// size.
//
// Example:
//
//	rect := imgkit.NewRectangle[imgkit.Rgba]().
//	    WithPosition(10, 10).
//	    WithSize(100, 50).
//	    WithFill(imgkit.Solid(imgkit.White)).
//	    WithBorder(imgkit.NewBorder(imgkit.Solid(imgkit.Black), 2))
type Rectangle[P Pixel] struct {
	pos   Point
	size  Point
	style style[P]
}

// NewRectangle returns an empty rectangle at the origin.
func NewRectangle[P Pixel]() *Rectangle[P] {
	return &Rectangle[P]{}
}

// RectangleFromCorners returns the rectangle spanning two opposite corners
// given in any order.
func RectangleFromCorners[P Pixel](a, b Point) *Rectangle[P] {
	return &Rectangle[P]{
		pos:  Point{math.Min(a.X, b.X), math.Min(a.Y, b.Y)},
		size: Point{math.Abs(b.X - a.X), math.Abs(b.Y - a.Y)},
	}
}

// Square returns a square with its top-left corner at (x, y).
func Square[P Pixel](x, y, side float64) *Rectangle[P] {
	return &Rectangle[P]{pos: Point{x, y}, size: Point{side, side}}
}

// WithPosition sets the top-left corner.
func (r *Rectangle[P]) WithPosition(x, y float64) *Rectangle[P] {
	r.pos = Point{x, y}
	return r
}

// WithSize sets the width and height.
func (r *Rectangle[P]) WithSize(w, h float64) *Rectangle[P] {
	r.size = Point{w, h}
	return r
}

// WithFill sets the interior fill.
func (r *Rectangle[P]) WithFill(f Fill[P]) *Rectangle[P] {
	r.style.fill = f
	return r
}

// WithBorder sets the stroke drawn around the outline.
func (r *Rectangle[P]) WithBorder(b *Border[P]) *Rectangle[P] {
	r.style.border = b
	return r
}

// WithAntialias enables fractional coverage along the edges.
func (r *Rectangle[P]) WithAntialias(on bool) *Rectangle[P] {
	r.style.antialias = on
	return r
}

// WithOverlayMode overrides the image's overlay mode for this shape.
func (r *Rectangle[P]) WithOverlayMode(m OverlayMode) *Rectangle[P] {
	r.style.overlay = &m
	return r
}

// Bounds returns the rectangle without its border.
func (r *Rectangle[P]) Bounds() Rect {
	return RectFromSize(r.pos.X, r.pos.Y, r.size.X, r.size.Y)
}

func (r *Rectangle[P]) plan() ([]pass[P], error) {
	if !finite(r.pos.X, r.pos.Y, r.size.X, r.size.Y) || !(r.size.X > 0) || !(r.size.Y > 0) {
		return nil, fmt.Errorf("rectangle %vx%v at %v: %w", r.size.X, r.size.Y, r.pos, ErrInvalidShape)
	}
	b := r.Bounds()
	return r.style.plan(func(d float64) raster.Spanner {
		return raster.Rect{X0: b.X0 - d, Y0: b.Y0 - d, X1: b.X1 + d, Y1: b.Y1 + d}
	})
}
