package imgkit

import (
	"math"
	"slices"
	"sort"

	"github.com/gogpu/imgkit/internal/color"
)

// BlendMode selects the color space gradient stops are interpolated in.
type BlendMode uint8

const (
	// BlendLinearRGB interpolates in linear-light RGB (default).
	BlendLinearRGB BlendMode = iota
	// BlendRGB interpolates the gamma-encoded sRGB components.
	BlendRGB
	// BlendOklab interpolates in the perceptual Oklab space.
	BlendOklab
	// BlendHSV interpolates hue, saturation and value along the shorter
	// hue arc.
	BlendHSV
)

func (m BlendMode) space() color.Space {
	switch m {
	case BlendRGB:
		return color.SpaceSRGB
	case BlendOklab:
		return color.SpaceOklab
	case BlendHSV:
		return color.SpaceHSV
	default:
		return color.SpaceLinear
	}
}

// ColorStop is a color anchored at a position in [0, 1] of a gradient.
type ColorStop[P Pixel] struct {
	Position float64 // NaN until placed automatically
	Color    P
}

// stops is the color ramp shared by every gradient kind.
type stops[P Pixel] struct {
	list  []ColorStop[P]
	blend BlendMode
}

func (s *stops[P]) add(pos float64, c P) {
	s.list = append(s.list, ColorStop[P]{Position: pos, Color: c})
}

// ramp is a validated, sorted color ramp ready for sampling.
type ramp[P Pixel] struct {
	pos    []float64
	colors []color.Color
	space  color.Space
	format Format[P]
}

// compile validates the stops and resolves automatic positions. Stops
// without a position are spread evenly between their placed neighbours;
// the first and last default to 0 and 1.
func (s *stops[P]) compile() (*ramp[P], error) {
	if len(s.list) == 0 {
		return nil, ErrEmptyGradient
	}

	list := slices.Clone(s.list)
	n := len(list)
	if math.IsNaN(list[0].Position) {
		list[0].Position = 0
	}
	if n > 1 && math.IsNaN(list[n-1].Position) {
		list[n-1].Position = 1
	}
	for i := 1; i < n-1; i++ {
		if !math.IsNaN(list[i].Position) {
			continue
		}
		j := i
		for math.IsNaN(list[j].Position) {
			j++
		}
		lo, hi := list[i-1].Position, list[j].Position
		for k := i; k < j; k++ {
			list[k].Position = lo + (hi-lo)*float64(k-i+1)/float64(j-i+1)
		}
	}
	for i := range list {
		list[i].Position = color.Clamp01(list[i].Position)
	}

	// Stable so that later stops at an equal position stay later and win.
	slices.SortStableFunc(list, func(a, b ColorStop[P]) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		default:
			return 0
		}
	})

	r := &ramp[P]{
		pos:    make([]float64, n),
		colors: make([]color.Color, n),
		space:  s.blend.space(),
		format: formatLike(list[0].Color),
	}
	for i, st := range list {
		c := st.Color.AsRgba()
		r.pos[i] = st.Position
		r.colors[i] = color.FromU8(c.R, c.G, c.B, c.A)
	}
	return r, nil
}

// sample returns the ramp color at t. t is clamped, so gradients never
// extrapolate past their end stops.
func (r *ramp[P]) sample(t float64) P {
	t = color.Clamp01(t)

	// The first stop strictly after t; equal positions resolve to the
	// later stop.
	idx := sort.Search(len(r.pos), func(i int) bool {
		return r.pos[i] > t
	})

	var c color.Color
	switch {
	case idx == 0:
		c = r.colors[0]
	case idx == len(r.pos):
		c = r.colors[len(r.colors)-1]
	default:
		a, b := idx-1, idx
		local := (t - r.pos[a]) / (r.pos[b] - r.pos[a])
		c = color.Mix(r.colors[a], r.colors[b], local, r.space)
	}

	cr, cg, cb, ca := c.U8()
	return r.format.FromRgba(Rgba{cr, cg, cb, ca})
}

// pixelCenter returns the continuous position of the center of (x, y).
func pixelCenter(x, y int) Point {
	return Point{float64(x) + 0.5, float64(y) + 0.5}
}

// angleDelta wraps an angle difference into [0, 2π).
func angleDelta(a, b float64) float64 {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d
}
