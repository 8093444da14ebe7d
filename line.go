package imgkit

import (
	"fmt"
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// LineCap is the shape drawn at both ends of a thick line.
type LineCap uint8

const (
	// CapButt ends the line flat at its end points (default).
	CapButt LineCap = iota
	// CapRound extends both ends with a half disc.
	CapRound
)

// String returns the name of the cap.
func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	default:
		return "unknown"
	}
}

// Line is a straight segment between two pixel positions. A zero width
// draws a one pixel hairline.
//
// The stroke straddles the segment by default. BorderInset moves it to the
// right of the direction of travel as seen on screen, which is the inside
// of a clockwise outline, and BorderOutset to the left.
type Line[P Pixel] struct {
	from, to  Point
	width     float64
	cap       LineCap
	position  BorderPosition
	fill      Fill[P]
	antialias bool
	overlay   *OverlayMode
}

// NewLine returns a hairline from one pixel to another. Both end pixels
// are drawn.
func NewLine[P Pixel](from, to Point) *Line[P] {
	return &Line[P]{from: from, to: to, position: BorderCenter}
}

// WithWidth sets the stroke width. Zero means a hairline.
func (l *Line[P]) WithWidth(w float64) *Line[P] {
	l.width = w
	return l
}

// WithCap sets the end cap of a thick line.
func (l *Line[P]) WithCap(c LineCap) *Line[P] {
	l.cap = c
	return l
}

// WithPosition places the stroke relative to the segment.
func (l *Line[P]) WithPosition(p BorderPosition) *Line[P] {
	l.position = p
	return l
}

// WithFill sets the stroke fill.
func (l *Line[P]) WithFill(f Fill[P]) *Line[P] {
	l.fill = f
	return l
}

// WithAntialias enables fractional coverage along the stroke.
func (l *Line[P]) WithAntialias(on bool) *Line[P] {
	l.antialias = on
	return l
}

// WithOverlayMode overrides the image's overlay mode for this shape.
func (l *Line[P]) WithOverlayMode(m OverlayMode) *Line[P] {
	l.overlay = &m
	return l
}

// Length returns the distance between the end points.
func (l *Line[P]) Length() float64 { return l.from.Distance(l.to) }

func (l *Line[P]) plan() ([]pass[P], error) {
	if l.fill == nil {
		return nil, fmt.Errorf("line without a fill: %w", ErrInvalidShape)
	}
	if !l.from.finite() || !l.to.finite() || !finite(l.width) || l.width < 0 {
		return nil, fmt.Errorf("line %v-%v width %v: %w", l.from, l.to, l.width, ErrInvalidShape)
	}

	// Pixel (x, y) is centered on (x+0.5, y+0.5) in continuous space.
	half := Point{0.5, 0.5}
	a, b := l.from.Add(half).raster(), l.to.Add(half).raster()

	if l.width == 0 {
		// Fills span the end point centers so gradients hit their end stops
		// on the first and last pixel.
		return []pass[P]{{
			mask:    raster.NewHairline(a, b, l.antialias),
			fill:    l.fill,
			bounds:  Rect{math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Max(a.X, b.X), math.Max(a.Y, b.Y)},
			overlay: l.overlay,
		}}, nil
	}

	shape := l.stroke(a, b)
	return []pass[P]{{
		mask:    raster.NewFill(shape, l.antialias),
		fill:    l.fill,
		bounds:  rectFromBox(shape.Extent()),
		overlay: l.overlay,
	}}, nil
}

// stroke returns the region covered by a thick line between a and b.
func (l *Line[P]) stroke(a, b raster.Point) raster.Spanner {
	r := l.width / 2
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return raster.Circle(a, r)
	}

	ux, uy := dx/length, dy/length
	nx, ny := -uy, ux

	var shift float64
	switch l.position {
	case BorderInset:
		shift = r
	case BorderOutset:
		shift = -r
	}
	a = raster.Point{X: a.X + nx*shift, Y: a.Y + ny*shift}
	b = raster.Point{X: b.X + nx*shift, Y: b.Y + ny*shift}

	quad := raster.NewPolygon([]raster.Point{
		{X: a.X + nx*r, Y: a.Y + ny*r},
		{X: b.X + nx*r, Y: b.Y + ny*r},
		{X: b.X - nx*r, Y: b.Y - ny*r},
		{X: a.X - nx*r, Y: a.Y - ny*r},
	}, raster.NonZero)
	if l.cap == CapRound {
		return raster.Union(quad, raster.Circle(a, r), raster.Circle(b, r))
	}
	return quad
}
