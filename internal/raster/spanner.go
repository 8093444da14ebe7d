package raster

import (
	"math"
	"slices"
)

// Rect is an axis-aligned rectangle spanner.
type Rect Box

// Extent implements Spanner.
func (r Rect) Extent() Box { return Box(r) }

// Spans implements Spanner.
func (r Rect) Spans(dst []Span, y float64, _ *Scratch) []Span {
	if y < r.Y0 || y >= r.Y1 || !(r.X0 < r.X1) {
		return dst
	}
	return append(dst, Span{r.X0, r.X1})
}

// Ellipse is an axis-aligned ellipse spanner.
type Ellipse struct {
	CX, CY float64
	RX, RY float64
}

// Circle returns a circular Ellipse.
func Circle(c Point, r float64) Ellipse {
	return Ellipse{CX: c.X, CY: c.Y, RX: r, RY: r}
}

// Extent implements Spanner.
func (e Ellipse) Extent() Box {
	return Box{e.CX - e.RX, e.CY - e.RY, e.CX + e.RX, e.CY + e.RY}
}

// Spans implements Spanner.
func (e Ellipse) Spans(dst []Span, y float64, _ *Scratch) []Span {
	if !(e.RX > 0) || !(e.RY > 0) {
		return dst
	}
	dy := (y - e.CY) / e.RY
	k := 1 - dy*dy
	if !(k > 0) {
		return dst
	}
	half := e.RX * math.Sqrt(k)
	return append(dst, Span{e.CX - half, e.CX + half})
}

// union is the set union of several spanners.
type union struct {
	parts  []Spanner
	extent Box
}

// Union returns a spanner covering every point inside any of parts.
func Union(parts ...Spanner) Spanner {
	if len(parts) == 1 {
		return parts[0]
	}
	u := &union{parts: parts}
	for _, p := range parts {
		u.extent = u.extent.Union(p.Extent())
	}
	return u
}

func (u *union) Extent() Box { return u.extent }

func (u *union) Spans(dst []Span, y float64, s *Scratch) []Span {
	if y < u.extent.Y0 || y >= u.extent.Y1 {
		return dst
	}
	buf := s.take()
	for _, p := range u.parts {
		buf = p.Spans(buf, y, s)
	}
	dst = mergeSpans(dst, buf)
	s.give(buf)
	return dst
}

// mergeSpans sorts spans in place and appends their union to dst.
func mergeSpans(dst, spans []Span) []Span {
	if len(spans) == 0 {
		return dst
	}
	slices.SortFunc(spans, func(a, b Span) int {
		switch {
		case a.X0 < b.X0:
			return -1
		case a.X0 > b.X0:
			return 1
		default:
			return 0
		}
	})
	cur := spans[0]
	for _, sp := range spans[1:] {
		if sp.X0 <= cur.X1 {
			cur.X1 = math.Max(cur.X1, sp.X1)
			continue
		}
		dst = append(dst, cur)
		cur = sp
	}
	return append(dst, cur)
}

// difference removes the inside of cut from base.
type difference struct {
	base, cut Spanner
}

// Subtract returns a spanner covering the points of base outside cut.
func Subtract(base, cut Spanner) Spanner {
	return &difference{base: base, cut: cut}
}

func (d *difference) Extent() Box { return d.base.Extent() }

func (d *difference) Spans(dst []Span, y float64, s *Scratch) []Span {
	a := d.base.Spans(s.take(), y, s)
	b := d.cut.Spans(s.take(), y, s)

	j := 0
	for _, sp := range a {
		x0 := sp.X0
		for j < len(b) && b[j].X1 <= x0 {
			j++
		}
		for k := j; k < len(b) && b[k].X0 < sp.X1; k++ {
			if b[k].X0 > x0 {
				dst = append(dst, Span{x0, b[k].X0})
			}
			x0 = math.Max(x0, b[k].X1)
		}
		if x0 < sp.X1 {
			dst = append(dst, Span{x0, sp.X1})
		}
	}

	s.give(b)
	s.give(a)
	return dst
}
