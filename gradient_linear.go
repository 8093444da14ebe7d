package imgkit

import "math"

// LinearGradient blends its color stops along an axis through the center of
// the shape's bounds.
//
// The angle is measured clockwise from the positive x axis (y points down):
// 0 runs left to right, π/2 top to bottom. Position 0 lies on the bounds'
// leading edge and 1 on the trailing edge.
//
// Example:
//
//	fill := imgkit.NewLinearGradient[imgkit.Rgb]().
//	    WithAngleDegrees(90).
//	    WithColor(imgkit.Rgb{R: 255}).
//	    WithColor(imgkit.Rgb{B: 255})
type LinearGradient[P Pixel] struct {
	angle float64
	stops stops[P]
}

// NewLinearGradient returns a left-to-right gradient without stops.
func NewLinearGradient[P Pixel]() *LinearGradient[P] {
	return &LinearGradient[P]{}
}

// WithAngle sets the gradient direction in radians.
func (g *LinearGradient[P]) WithAngle(radians float64) *LinearGradient[P] {
	g.angle = radians
	return g
}

// WithAngleDegrees sets the gradient direction in degrees.
func (g *LinearGradient[P]) WithAngleDegrees(degrees float64) *LinearGradient[P] {
	g.angle = degrees * math.Pi / 180
	return g
}

// WithColor appends a stop that is positioned automatically.
func (g *LinearGradient[P]) WithColor(c P) *LinearGradient[P] {
	g.stops.add(math.NaN(), c)
	return g
}

// WithColorAt appends a stop at position in [0, 1]. A later stop at the
// same position takes precedence.
func (g *LinearGradient[P]) WithColorAt(position float64, c P) *LinearGradient[P] {
	g.stops.add(position, c)
	return g
}

// WithBlendMode sets the interpolation color space.
func (g *LinearGradient[P]) WithBlendMode(m BlendMode) *LinearGradient[P] {
	g.stops.blend = m
	return g
}

// Stops returns the stops in insertion order.
func (g *LinearGradient[P]) Stops() []ColorStop[P] {
	return append([]ColorStop[P](nil), g.stops.list...)
}

func (g *LinearGradient[P]) prepare() (Fill[P], error) {
	r, err := g.stops.compile()
	if err != nil {
		return nil, err
	}
	return &linearEval[P]{ramp: r, cos: math.Cos(g.angle), sin: math.Sin(g.angle)}, nil
}

// At implements Fill. It compiles the stops on every call; Draw compiles
// them once.
func (g *LinearGradient[P]) At(x, y int, bounds Rect) P {
	f, err := g.prepare()
	if err != nil {
		var zero P
		return zero
	}
	return f.At(x, y, bounds)
}

type linearEval[P Pixel] struct {
	ramp     *ramp[P]
	cos, sin float64
}

func (e *linearEval[P]) At(x, y int, bounds Rect) P {
	p := pixelCenter(x, y).Sub(bounds.Center())
	t := 0.5
	if w := bounds.Width(); w > 0 {
		t += p.X / w * e.cos
	}
	if h := bounds.Height(); h > 0 {
		t += p.Y / h * e.sin
	}
	return e.ramp.sample(t)
}
