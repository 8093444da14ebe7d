// Package raster computes per-pixel coverage for filled and stroked shapes.
//
// Geometry lives in continuous space where pixel (x, y) covers the square
// [x, x+1) × [y, y+1). A Spanner answers one question: which half-open
// intervals of a horizontal scan line lie inside the shape. A Mask turns
// those intervals into coverage values in [0, 1] for a row of pixels.
//
// Spanners and masks are immutable once built, so any number of goroutines
// may evaluate different rows concurrently as long as each one owns its
// Scratch.
package raster

import (
	"image"
	"math"
)

// Point is a position in continuous pixel space.
type Point struct {
	X, Y float64
}

// Box is an axis-aligned rectangle in continuous space.
type Box struct {
	X0, Y0, X1, Y1 float64
}

// Empty reports whether the box has no area.
func (b Box) Empty() bool {
	return !(b.X0 < b.X1) || !(b.Y0 < b.Y1)
}

// Union returns the smallest box containing both b and o.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{
		X0: math.Min(b.X0, o.X0),
		Y0: math.Min(b.Y0, o.Y0),
		X1: math.Max(b.X1, o.X1),
		Y1: math.Max(b.Y1, o.Y1),
	}
}

// Pixels returns the pixel rectangle touched by the box.
func (b Box) Pixels() image.Rectangle {
	if b.Empty() {
		return image.Rectangle{}
	}
	return image.Rect(
		clampInt(math.Floor(b.X0)),
		clampInt(math.Floor(b.Y0)),
		clampInt(math.Ceil(b.X1)),
		clampInt(math.Ceil(b.Y1)),
	)
}

// Span is the half-open interval [X0, X1) of a scan line.
type Span struct {
	X0, X1 float64
}

// Spanner reports the inside intervals of a shape along a scan line.
type Spanner interface {
	// Extent returns a box containing every inside point.
	Extent() Box

	// Spans appends the inside intervals of the scan line at y to dst, sorted
	// by X0 and pairwise disjoint.
	Spans(dst []Span, y float64, s *Scratch) []Span
}

// Scratch holds the temporary buffers used while evaluating spanners.
// A Scratch must not be shared between goroutines.
type Scratch struct {
	stack [][]Span
	top   int
	xs    []crossing
}

// take borrows a span buffer. Every take is paired with a give.
func (s *Scratch) take() []Span {
	if s.top == len(s.stack) {
		s.stack = append(s.stack, make([]Span, 0, 8))
	}
	buf := s.stack[s.top][:0]
	s.top++
	return buf
}

// give returns a buffer obtained from take, keeping any growth.
func (s *Scratch) give(buf []Span) {
	s.top--
	s.stack[s.top] = buf[:0]
}

// maxCoord keeps pixel coordinates well inside the int range.
const maxCoord = 1 << 30

func clampInt(v float64) int {
	switch {
	case v != v:
		return 0
	case v < -maxCoord:
		return -maxCoord
	case v > maxCoord:
		return maxCoord
	default:
		return int(v)
	}
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
