package raster

import (
	"math"
	"slices"
)

// FillRule decides which regions of a self-overlapping polygon are inside.
type FillRule uint8

const (
	// EvenOdd treats a point as inside when a ray from it crosses an odd
	// number of edges.
	EvenOdd FillRule = iota

	// NonZero treats a point as inside when the edges wind around it a
	// non-zero number of times.
	NonZero
)

// edge is a non-horizontal polygon edge with y0 < y1.
type edge struct {
	x0, y0 float64
	y1     float64
	dxdy   float64
	dir    int
}

func newEdge(p0, p1 Point) edge {
	// Direction is taken before the swap so that winding survives it.
	dir := 1
	if p0.Y > p1.Y {
		dir = -1
		p0, p1 = p1, p0
	}
	return edge{
		x0:   p0.X,
		y0:   p0.Y,
		y1:   p1.Y,
		dxdy: (p1.X - p0.X) / (p1.Y - p0.Y),
		dir:  dir,
	}
}

type crossing struct {
	x   float64
	dir int
}

// Polygon is a closed polygon spanner.
type Polygon struct {
	edges  []edge
	rule   FillRule
	extent Box
}

// NewPolygon builds a polygon from its vertices. The outline is closed
// implicitly; horizontal edges are dropped since they never cross a scan line.
func NewPolygon(pts []Point, rule FillRule) *Polygon {
	p := &Polygon{rule: rule, edges: make([]edge, 0, len(pts))}
	if len(pts) == 0 {
		return p
	}

	p.extent = Box{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		p.extent.X0 = math.Min(p.extent.X0, a.X)
		p.extent.Y0 = math.Min(p.extent.Y0, a.Y)
		p.extent.X1 = math.Max(p.extent.X1, a.X)
		p.extent.Y1 = math.Max(p.extent.Y1, a.Y)
		if a.Y == b.Y {
			continue
		}
		p.edges = append(p.edges, newEdge(a, b))
	}
	return p
}

// Extent implements Spanner.
func (p *Polygon) Extent() Box { return p.extent }

// Spans implements Spanner.
func (p *Polygon) Spans(dst []Span, y float64, s *Scratch) []Span {
	if y < p.extent.Y0 || y >= p.extent.Y1 {
		return dst
	}

	xs := s.xs[:0]
	for i := range p.edges {
		e := &p.edges[i]
		if y >= e.y0 && y < e.y1 {
			xs = append(xs, crossing{x: e.x0 + (y-e.y0)*e.dxdy, dir: e.dir})
		}
	}
	slices.SortFunc(xs, func(a, b crossing) int {
		switch {
		case a.x < b.x:
			return -1
		case a.x > b.x:
			return 1
		default:
			return 0
		}
	})
	s.xs = xs

	if p.rule == NonZero {
		winding := 0
		var start float64
		for _, c := range xs {
			if winding == 0 {
				start = c.x
			}
			winding += c.dir
			if winding == 0 && c.x > start {
				dst = appendSpan(dst, Span{start, c.x})
			}
		}
		return dst
	}

	for i := 0; i+1 < len(xs); i += 2 {
		if xs[i+1].x > xs[i].x {
			dst = appendSpan(dst, Span{xs[i].x, xs[i+1].x})
		}
	}
	return dst
}

// appendSpan appends sp, joining it to the previous span when they touch.
func appendSpan(dst []Span, sp Span) []Span {
	if n := len(dst); n > 0 && dst[n-1].X1 >= sp.X0 {
		dst[n-1].X1 = math.Max(dst[n-1].X1, sp.X1)
		return dst
	}
	return append(dst, sp)
}

// SignedArea returns the shoelace area of the closed outline. The sign is
// positive for clockwise winding in a y-down coordinate system.
func SignedArea(pts []Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Dedupe drops consecutive repeated vertices of a closed outline, including
// a trailing vertex that repeats the first.
func Dedupe(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[len(out)-1] == out[0] {
		out = out[:len(out)-1]
	}
	return out
}

// Offset moves every edge of a closed polygon outward by d along its normal
// (inward when d is negative) and returns the mitered vertices. Nearly
// parallel neighbours fall back to shifting the shared vertex.
//
// An inward offset that consumes the whole polygon returns nil. Convex
// outlines are shrunk exactly by clipping against the shifted edges; other
// outlines are reported empty once the mitered result flips orientation or
// loses its area.
func Offset(pts []Point, d float64) []Point {
	pts = Dedupe(pts)
	n := len(pts)
	if n < 3 || d == 0 {
		return pts
	}

	// Outward normals point left of the travel direction for clockwise
	// outlines and right of it otherwise.
	area := SignedArea(pts)
	sign := 1.0
	if area < 0 {
		sign = -1
	}

	normal := func(a, b Point) Point {
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			return Point{}
		}
		return Point{sign * dy / l, -sign * dx / l}
	}

	if d < 0 && convex(pts) {
		return clipInset(pts, d, normal)
	}

	out := make([]Point, n)
	for i := range pts {
		prev := pts[(i+n-1)%n]
		cur := pts[i]
		next := pts[(i+1)%n]

		n0 := normal(prev, cur)
		n1 := normal(cur, next)
		bis := Point{n0.X + n1.X, n0.Y + n1.Y}
		cos := 1 + n0.X*n1.X + n0.Y*n1.Y
		if cos < 1e-6 {
			out[i] = Point{cur.X + n1.X*d, cur.Y + n1.Y*d}
			continue
		}
		// The miter vertex lies along the bisector at d/cos(half angle).
		out[i] = Point{cur.X + bis.X*d/cos, cur.Y + bis.Y*d/cos}
	}

	if d < 0 {
		shrunk := SignedArea(out)
		if shrunk*area <= 0 || math.Abs(shrunk) < 1e-9*math.Abs(area) {
			return nil
		}
	}
	return out
}

// convex reports whether the outline turns the same way at every vertex and
// winds around exactly once.
func convex(pts []Point) bool {
	n := len(pts)
	var pos, neg bool
	var turn float64
	for i := range pts {
		a, b, c := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		ux, uy := b.X-a.X, b.Y-a.Y
		vx, vy := c.X-b.X, c.Y-b.Y
		cross := ux*vy - uy*vx
		switch {
		case cross > 0:
			pos = true
		case cross < 0:
			neg = true
		}
		turn += math.Atan2(cross, ux*vx+uy*vy)
	}
	return !(pos && neg) && math.Abs(turn) < 2*math.Pi+1e-6
}

// clipInset intersects a convex polygon with every edge's half-plane moved
// inward by -d. It returns nil when nothing is left.
func clipInset(pts []Point, d float64, normal func(a, b Point) Point) []Point {
	n := len(pts)
	poly := slices.Clone(pts)
	for i, a := range pts {
		nrm := normal(a, pts[(i+1)%n])
		if nrm == (Point{}) {
			continue
		}
		// Positive distances lie outside the shifted edge.
		dist := func(p Point) float64 {
			return (p.X-a.X)*nrm.X + (p.Y-a.Y)*nrm.Y - d
		}
		next := make([]Point, 0, len(poly)+1)
		for j, p := range poly {
			q := poly[(j+1)%len(poly)]
			dp, dq := dist(p), dist(q)
			if dp <= 0 {
				next = append(next, p)
			}
			if (dp < 0 && dq > 0) || (dp > 0 && dq < 0) {
				t := dp / (dp - dq)
				next = append(next, Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t})
			}
		}
		poly = Dedupe(next)
		if len(poly) < 3 {
			return nil
		}
	}
	if math.Abs(SignedArea(poly)) < 1e-12 {
		return nil
	}
	return poly
}
