package raster

import (
	"image"
	"math"
)

// SubScanlines is the number of scan lines sampled per pixel row when
// antialiasing. Horizontal coverage within each scan line is exact.
const SubScanlines = 4

// Mask produces per-pixel coverage for one shape.
type Mask interface {
	// Bounds returns the pixel rectangle outside which coverage is zero.
	Bounds() image.Rectangle

	// Row writes the coverage of pixels x0 .. x0+len(cov)-1 of row y into
	// cov. Every value is in [0, 1].
	Row(cov []float64, y, x0 int, s *Scratch)
}

// Fill is a Mask that covers the inside of a Spanner.
type Fill struct {
	shape     Spanner
	antialias bool
	bounds    image.Rectangle
}

// NewFill returns a mask for the inside of shape. Without antialiasing a
// pixel is covered exactly when its center is inside.
func NewFill(shape Spanner, antialias bool) *Fill {
	return &Fill{
		shape:     shape,
		antialias: antialias,
		bounds:    shape.Extent().Pixels(),
	}
}

// Bounds implements Mask.
func (f *Fill) Bounds() image.Rectangle { return f.bounds }

// Row implements Mask.
func (f *Fill) Row(cov []float64, y, x0 int, s *Scratch) {
	clear(cov)
	x1 := x0 + len(cov)

	buf := s.take()
	defer func() { s.give(buf) }()

	if !f.antialias {
		buf = f.shape.Spans(buf, float64(y)+0.5, s)
		for _, sp := range buf {
			// Pixel x is inside when X0 <= x+0.5 < X1.
			a := max(clampInt(math.Ceil(sp.X0-0.5)), x0)
			b := min(clampInt(math.Ceil(sp.X1-0.5)), x1)
			for x := a; x < b; x++ {
				cov[x-x0] = 1
			}
		}
		return
	}

	const weight = 1.0 / SubScanlines
	for i := range SubScanlines {
		sy := float64(y) + (float64(i)+0.5)*weight
		buf = f.shape.Spans(buf[:0], sy, s)
		for _, sp := range buf {
			a := max(clampInt(math.Floor(sp.X0)), x0)
			b := min(clampInt(math.Ceil(sp.X1)), x1)
			for x := a; x < b; x++ {
				l := math.Max(sp.X0, float64(x))
				r := math.Min(sp.X1, float64(x+1))
				if r > l {
					cov[x-x0] += (r - l) * weight
				}
			}
		}
	}
	for i, c := range cov {
		if c > 1 {
			cov[i] = 1
		}
	}
}

// Hairline is a Mask for a line with no width. Without antialiasing it
// covers exactly one pixel per step along the major axis, including both
// end points. With antialiasing coverage falls off linearly with the
// distance along the minor axis.
type Hairline struct {
	a, b      Point
	antialias bool
	bounds    image.Rectangle
}

// NewHairline returns a hairline mask between two points in continuous
// space. Equal points yield a single pixel.
func NewHairline(a, b Point, antialias bool) *Hairline {
	box := Box{
		X0: math.Min(a.X, b.X) - 1,
		Y0: math.Min(a.Y, b.Y) - 1,
		X1: math.Max(a.X, b.X) + 1,
		Y1: math.Max(a.Y, b.Y) + 1,
	}
	return &Hairline{a: a, b: b, antialias: antialias, bounds: box.Pixels()}
}

// Bounds implements Mask.
func (h *Hairline) Bounds() image.Rectangle { return h.bounds }

// Row implements Mask.
func (h *Hairline) Row(cov []float64, y, x0 int, _ *Scratch) {
	clear(cov)
	dx := h.b.X - h.a.X
	dy := h.b.Y - h.a.Y

	if dx == 0 && dy == 0 {
		px, py := clampInt(math.Floor(h.a.X)), clampInt(math.Floor(h.a.Y))
		if py == y && px >= x0 && px < x0+len(cov) {
			cov[px-x0] = 1
		}
		return
	}

	cy := float64(y) + 0.5
	horizontal := math.Abs(dx) >= math.Abs(dy)

	for i := range cov {
		cx := float64(x0+i) + 0.5

		// Project the pixel center onto the major axis.
		var major, minor, lo, hi, slope, originMajor, originMinor float64
		if horizontal {
			major, minor = cx, cy
			lo, hi = math.Min(h.a.X, h.b.X), math.Max(h.a.X, h.b.X)
			slope, originMajor, originMinor = dy/dx, h.a.X, h.a.Y
		} else {
			major, minor = cy, cx
			lo, hi = math.Min(h.a.Y, h.b.Y), math.Max(h.a.Y, h.b.Y)
			slope, originMajor, originMinor = dx/dy, h.a.Y, h.a.X
		}

		if !h.antialias {
			if major < lo || major > hi {
				continue
			}
			d := minor - (originMinor + (major-originMajor)*slope)
			if d >= -0.5 && d < 0.5 {
				cov[i] = 1
			}
			continue
		}

		att := clamp01(1 + math.Min(major-lo, hi-major))
		if att == 0 {
			continue
		}
		m := math.Max(lo, math.Min(hi, major))
		d := minor - (originMinor + (m-originMajor)*slope)
		cov[i] = clamp01(1-math.Abs(d)) * att
	}
}
