package imgkit

import (
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// Point is a position in continuous image space, where pixel (x, y) covers
// the square from (x, y) to (x+1, y+1).
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

func (p Point) finite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

func (p Point) raster() raster.Point {
	return raster.Point{X: p.X, Y: p.Y}
}

// Rect is an axis-aligned rectangle from (X0, Y0) inclusive to (X1, Y1)
// exclusive. Fills receive the bounds of the shape being drawn as a Rect.
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// RectFromSize returns the rectangle at (x, y) with the given size.
func RectFromSize(x, y, w, h float64) Rect {
	return Rect{X0: x, Y0: y, X1: x + w, Y1: y + h}
}

// Width returns X1 - X0.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns Y1 - Y0.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{(r.X0 + r.X1) / 2, (r.Y0 + r.Y1) / 2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.X0 < r.X1) || !(r.Y0 < r.Y1)
}

func rectFromBox(b raster.Box) Rect {
	return Rect{b.X0, b.Y0, b.X1, b.Y1}
}
