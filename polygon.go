package imgkit

import (
	"fmt"
	"math"

	"github.com/gogpu/imgkit/internal/raster"
)

// FillRule decides which regions of a self-overlapping polygon are inside.
type FillRule = raster.FillRule

const (
	// FillEvenOdd fills regions crossed an odd number of times (default).
	FillEvenOdd = raster.EvenOdd
	// FillNonZero fills regions with a non-zero winding number.
	FillNonZero = raster.NonZero
)

// Polygon is a closed polygon. Vertices are joined in order and the last
// vertex connects back to the first.
type Polygon[P Pixel] struct {
	vertices []Point
	rule     FillRule
	radius   float64
	style    style[P]
}

// NewPolygon returns a polygon with no vertices.
func NewPolygon[P Pixel]() *Polygon[P] {
	return &Polygon[P]{}
}

// RegularPolygon returns a polygon with n vertices evenly spaced on the
// circle around center, the first one at angle zero.
func RegularPolygon[P Pixel](n int, center Point, radius float64) *Polygon[P] {
	return RegularPolygonRotated[P](n, center, radius, 0)
}

// RegularPolygonRotated is RegularPolygon with vertex i at angle
// rotation + i*2π/n. Fewer than three sides leave the polygon empty, which
// Draw reports as ErrInvalidPolygon.
func RegularPolygonRotated[P Pixel](n int, center Point, radius, rotation float64) *Polygon[P] {
	p := NewPolygon[P]()
	if n < 3 {
		return p
	}
	p.vertices = make([]Point, n)
	for i := range n {
		theta := rotation + float64(i)*2*math.Pi/float64(n)
		p.vertices[i] = Point{
			X: center.X + radius*math.Cos(theta),
			Y: center.Y + radius*math.Sin(theta),
		}
	}
	return p
}

// WithVertex appends one vertex.
func (p *Polygon[P]) WithVertex(x, y float64) *Polygon[P] {
	p.vertices = append(p.vertices, Point{x, y})
	return p
}

// WithVertices appends vertices in order.
func (p *Polygon[P]) WithVertices(pts ...Point) *Polygon[P] {
	p.vertices = append(p.vertices, pts...)
	return p
}

// WithFillRule sets how self-overlapping regions are filled.
func (p *Polygon[P]) WithFillRule(r FillRule) *Polygon[P] {
	p.rule = r
	return p
}

// WithVertexRadius rounds every corner with the given radius.
func (p *Polygon[P]) WithVertexRadius(r float64) *Polygon[P] {
	p.radius = r
	return p
}

// WithFill sets the interior fill.
func (p *Polygon[P]) WithFill(f Fill[P]) *Polygon[P] {
	p.style.fill = f
	return p
}

// WithBorder sets the stroke drawn along the edges.
func (p *Polygon[P]) WithBorder(b *Border[P]) *Polygon[P] {
	p.style.border = b
	return p
}

// WithAntialias enables fractional coverage along the edges.
func (p *Polygon[P]) WithAntialias(on bool) *Polygon[P] {
	p.style.antialias = on
	return p
}

// WithOverlayMode overrides the image's overlay mode for this shape.
func (p *Polygon[P]) WithOverlayMode(m OverlayMode) *Polygon[P] {
	p.style.overlay = &m
	return p
}

// Vertices returns a copy of the vertex list.
func (p *Polygon[P]) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

func (p *Polygon[P]) validate() error {
	for _, v := range p.vertices {
		if !v.finite() {
			return fmt.Errorf("polygon vertex %v: %w", v, ErrInvalidPolygon)
		}
	}

	distinct := make(map[Point]struct{}, len(p.vertices))
	for _, v := range p.vertices {
		distinct[v] = struct{}{}
	}
	if len(distinct) < 3 {
		return fmt.Errorf("polygon with %d distinct vertices: %w", len(distinct), ErrInvalidPolygon)
	}

	if collinear(p.vertices) {
		return fmt.Errorf("polygon has zero area: %w", ErrInvalidPolygon)
	}
	if !(p.radius >= 0) || !finite(p.radius) {
		return fmt.Errorf("polygon vertex radius %v: %w", p.radius, ErrInvalidShape)
	}
	return nil
}

// collinear reports whether all points lie on one line.
func collinear(pts []Point) bool {
	a := pts[0]
	for _, b := range pts[1:] {
		if b == a {
			continue
		}
		d := b.Sub(a)
		for _, c := range pts {
			e := c.Sub(a)
			if math.Abs(d.X*e.Y-d.Y*e.X) > 1e-9*(d.Length()*e.Length()+1) {
				return false
			}
		}
		return true
	}
	return true
}

func (p *Polygon[P]) plan() ([]pass[P], error) {
	if err := p.validate(); err != nil {
		return nil, err
	}

	pts := make([]raster.Point, len(p.vertices))
	for i, v := range p.vertices {
		pts[i] = v.raster()
	}
	pts = raster.Dedupe(pts)
	return p.style.plan(func(d float64) raster.Spanner {
		return roundedOutline(raster.Offset(pts, d), p.radius, p.rule)
	})
}

// roundedOutline rounds every corner of a closed polygon with radius r. The
// polygon is shrunk by r and grown back as the union of the shrunk
// polygon, a band of width 2r along every shrunk edge and a disc at every
// shrunk vertex. A radius the polygon cannot hold is reduced to the largest
// one whose shrunk polygon survives, so the result never leaves pts.
func roundedOutline(pts []raster.Point, r float64, rule FillRule) raster.Spanner {
	if len(pts) < 3 || r <= 0 {
		return raster.NewPolygon(pts, rule)
	}

	core := raster.Offset(pts, -r)
	if len(core) < 3 {
		r = maxInset(pts, r)
		if r <= 0 {
			return raster.NewPolygon(pts, rule)
		}
		core = raster.Offset(pts, -r)
	}
	parts := make([]raster.Spanner, 0, 1+2*len(core))
	parts = append(parts, raster.NewPolygon(core, rule))
	for i, a := range core {
		b := core[(i+1)%len(core)]
		parts = append(parts, raster.Circle(a, r))

		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*r, dx/l*r
		band := []raster.Point{
			{X: a.X + nx, Y: a.Y + ny},
			{X: b.X + nx, Y: b.Y + ny},
			{X: b.X - nx, Y: b.Y - ny},
			{X: a.X - nx, Y: a.Y - ny},
		}
		parts = append(parts, raster.NewPolygon(band, raster.NonZero))
	}
	return raster.Union(parts...)
}

// maxInset bisects for the largest inset up to r that leaves a polygon.
func maxInset(pts []raster.Point, r float64) float64 {
	lo, hi := 0.0, r
	for range 40 {
		mid := (lo + hi) / 2
		if len(raster.Offset(pts, -mid)) >= 3 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return lo
}
