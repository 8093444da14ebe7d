package imgkit

import "math"

// ConicGradient blends its color stops by angle around a center, sweeping
// one full clockwise turn from the start angle.
type ConicGradient[P Pixel] struct {
	center Point // relative to the bounds
	start  float64
	stops  stops[P]
}

// NewConicGradient returns a gradient centered in the bounds starting at
// angle 0, the positive x axis.
func NewConicGradient[P Pixel]() *ConicGradient[P] {
	return &ConicGradient[P]{center: Point{0.5, 0.5}}
}

// WithCenter places the center at a fraction of the bounds' width and
// height.
func (g *ConicGradient[P]) WithCenter(rx, ry float64) *ConicGradient[P] {
	g.center = Point{rx, ry}
	return g
}

// WithStartAngle sets the angle, in radians, of position 0.
func (g *ConicGradient[P]) WithStartAngle(radians float64) *ConicGradient[P] {
	g.start = radians
	return g
}

// WithColor appends a stop that is positioned automatically.
func (g *ConicGradient[P]) WithColor(c P) *ConicGradient[P] {
	g.stops.add(math.NaN(), c)
	return g
}

// WithColorAt appends a stop at position in [0, 1].
func (g *ConicGradient[P]) WithColorAt(position float64, c P) *ConicGradient[P] {
	g.stops.add(position, c)
	return g
}

// WithBlendMode sets the interpolation color space.
func (g *ConicGradient[P]) WithBlendMode(m BlendMode) *ConicGradient[P] {
	g.stops.blend = m
	return g
}

func (g *ConicGradient[P]) prepare() (Fill[P], error) {
	r, err := g.stops.compile()
	if err != nil {
		return nil, err
	}
	return &conicEval[P]{ramp: r, center: g.center, start: g.start}, nil
}

// At implements Fill.
func (g *ConicGradient[P]) At(x, y int, bounds Rect) P {
	f, err := g.prepare()
	if err != nil {
		var zero P
		return zero
	}
	return f.At(x, y, bounds)
}

type conicEval[P Pixel] struct {
	ramp   *ramp[P]
	center Point
	start  float64
}

func (e *conicEval[P]) At(x, y int, bounds Rect) P {
	c := Point{
		X: bounds.X0 + e.center.X*bounds.Width(),
		Y: bounds.Y0 + e.center.Y*bounds.Height(),
	}
	p := pixelCenter(x, y).Sub(c)
	if p.X == 0 && p.Y == 0 {
		return e.ramp.sample(0)
	}
	return e.ramp.sample(angleDelta(math.Atan2(p.Y, p.X), e.start) / (2 * math.Pi))
}
