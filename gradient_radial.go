package imgkit

import "math"

// RadialCover decides which feature of the bounds the outermost stop
// reaches.
type RadialCover uint8

const (
	// FarthestCorner reaches the corner farthest from the center (default).
	FarthestCorner RadialCover = iota
	// ClosestCorner reaches the nearest corner.
	ClosestCorner
	// FarthestSide reaches the farthest edge.
	FarthestSide
	// ClosestSide reaches the nearest edge.
	ClosestSide
)

// RadialGradient blends its color stops by distance from a center.
type RadialGradient[P Pixel] struct {
	center Point // relative to the bounds, (0.5, 0.5) is the middle
	cover  RadialCover
	stops  stops[P]
}

// NewRadialGradient returns a gradient centered in the bounds that reaches
// the farthest corner.
func NewRadialGradient[P Pixel]() *RadialGradient[P] {
	return &RadialGradient[P]{center: Point{0.5, 0.5}}
}

// WithCenter places the center at a fraction of the bounds' width and
// height.
func (g *RadialGradient[P]) WithCenter(rx, ry float64) *RadialGradient[P] {
	g.center = Point{rx, ry}
	return g
}

// WithCover sets how far the gradient reaches.
func (g *RadialGradient[P]) WithCover(c RadialCover) *RadialGradient[P] {
	g.cover = c
	return g
}

// WithColor appends a stop that is positioned automatically.
func (g *RadialGradient[P]) WithColor(c P) *RadialGradient[P] {
	g.stops.add(math.NaN(), c)
	return g
}

// WithColorAt appends a stop at position in [0, 1].
func (g *RadialGradient[P]) WithColorAt(position float64, c P) *RadialGradient[P] {
	g.stops.add(position, c)
	return g
}

// WithBlendMode sets the interpolation color space.
func (g *RadialGradient[P]) WithBlendMode(m BlendMode) *RadialGradient[P] {
	g.stops.blend = m
	return g
}

func (g *RadialGradient[P]) prepare() (Fill[P], error) {
	r, err := g.stops.compile()
	if err != nil {
		return nil, err
	}
	return &radialEval[P]{ramp: r, center: g.center, cover: g.cover}, nil
}

// At implements Fill.
func (g *RadialGradient[P]) At(x, y int, bounds Rect) P {
	f, err := g.prepare()
	if err != nil {
		var zero P
		return zero
	}
	return f.At(x, y, bounds)
}

type radialEval[P Pixel] struct {
	ramp   *ramp[P]
	center Point
	cover  RadialCover
}

// radius returns the cover distance from c within bounds.
func radius(c Point, bounds Rect, cover RadialCover) float64 {
	left, right := c.X-bounds.X0, bounds.X1-c.X
	top, bottom := c.Y-bounds.Y0, bounds.Y1-c.Y
	switch cover {
	case ClosestSide:
		return math.Max(0, math.Min(math.Min(left, right), math.Min(top, bottom)))
	case FarthestSide:
		return math.Max(math.Max(left, right), math.Max(top, bottom))
	case ClosestCorner:
		return math.Hypot(math.Min(math.Abs(left), math.Abs(right)), math.Min(math.Abs(top), math.Abs(bottom)))
	default:
		return math.Hypot(math.Max(math.Abs(left), math.Abs(right)), math.Max(math.Abs(top), math.Abs(bottom)))
	}
}

func (e *radialEval[P]) At(x, y int, bounds Rect) P {
	c := Point{
		X: bounds.X0 + e.center.X*bounds.Width(),
		Y: bounds.Y0 + e.center.Y*bounds.Height(),
	}
	d := pixelCenter(x, y).Distance(c)
	r := radius(c, bounds, e.cover)

	var t float64
	switch {
	case r > 0:
		t = d / r
	case d > 0:
		t = 1
	}
	return e.ramp.sample(t)
}
