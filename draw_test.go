package imgkit

import (
	"errors"
	"math"
	"slices"
	"strings"
	"testing"
)

// ascii renders an L image as rows of '#' for non-zero and '.' for zero.
func ascii(img *Image[L]) string {
	var sb strings.Builder
	for _, row := range img.Rows() {
		for _, p := range row {
			if p != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func lines(rows ...string) string {
	return strings.Join(rows, "\n") + "\n"
}

func blank(t *testing.T, w, h int) *Image[L] {
	t.Helper()
	img, err := New(w, h, L(0))
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func mustDraw[P Pixel](t *testing.T, img *Image[P], s Shape[P], opts ...DrawOption) {
	t.Helper()
	if err := img.Draw(s, opts...); err != nil {
		t.Fatalf("Draw: %v", err)
	}
}

var white = Solid(L(255))

// =============================================================================
// Rectangle
// =============================================================================

func TestDrawRectangleExactPixels(t *testing.T) {
	img := blank(t, 4, 4)
	mustDraw(t, img, NewRectangle[L]().WithPosition(1, 1).WithSize(2, 2).WithFill(white))

	for y := range 4 {
		for x := range 4 {
			p, _ := img.Get(x, y)
			inside := x >= 1 && x <= 2 && y >= 1 && y <= 2
			if inside && p != 255 || !inside && p != 0 {
				t.Errorf("(%d, %d) = %d, inside = %v", x, y, p, inside)
			}
		}
	}
}

func TestDrawRectangleClipped(t *testing.T) {
	img := blank(t, 3, 3)
	mustDraw(t, img, NewRectangle[L]().WithPosition(-5, 1).WithSize(100, 1).WithFill(white))
	want := lines(
		"...",
		"###",
		"...",
	)
	if got := ascii(img); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestDrawRectangleFromCornersAndSquare(t *testing.T) {
	a := blank(t, 5, 5)
	b := blank(t, 5, 5)
	mustDraw(t, a, RectangleFromCorners[L](Pt(4, 4), Pt(1, 1)).WithFill(white))
	mustDraw(t, b, Square[L](1, 1, 3).WithFill(white))
	if ascii(a) != ascii(b) {
		t.Errorf("corners\n%ssquare\n%s", ascii(a), ascii(b))
	}
}

func TestDrawRectangleAntialiasedEdge(t *testing.T) {
	img := blank(t, 3, 1)
	mustDraw(t, img, NewRectangle[L]().WithPosition(0.5, 0).WithSize(1, 1).WithFill(white).WithAntialias(true))
	if got := img.Pixels(); !slices.Equal(got, []L{128, 128, 0}) {
		t.Errorf("Pixels() = %v, want half coverage on both pixels", got)
	}
}

func TestDrawInvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape[L]
		want  error
	}{
		{"zero size", NewRectangle[L]().WithSize(0, 4).WithFill(white), ErrInvalidShape},
		{"negative size", NewRectangle[L]().WithSize(4, -1).WithFill(white), ErrInvalidShape},
		{"nan position", NewRectangle[L]().WithPosition(math.NaN(), 0).WithSize(1, 1).WithFill(white), ErrInvalidShape},
		{"no fill or border", NewRectangle[L]().WithSize(2, 2), ErrInvalidShape},
		{"zero radius", NewEllipse[L]().WithRadii(0, 3).WithFill(white), ErrInvalidShape},
		{"negative radius", Circle[L](Pt(1, 1), -2).WithFill(white), ErrInvalidShape},
		{"border without width", NewRectangle[L]().WithSize(2, 2).WithBorder(NewBorder[L](white, 0)), ErrInvalidShape},
		{"border without fill", NewRectangle[L]().WithSize(2, 2).WithBorder(NewBorder[L](nil, 1)), ErrInvalidShape},
		{"line without fill", NewLine[L](Pt(0, 0), Pt(3, 3)), ErrInvalidShape},
		{"negative line width", NewLine[L](Pt(0, 0), Pt(3, 3)).WithWidth(-1).WithFill(white), ErrInvalidShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 4, 4)
			if err := img.Draw(tt.shape); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if ascii(img) != ascii(blank(t, 4, 4)) {
				t.Error("failed draw modified the image")
			}
		})
	}
}

// =============================================================================
// Ellipse
// =============================================================================

func TestDrawCircleSymmetric(t *testing.T) {
	img := blank(t, 10, 10)
	mustDraw(t, img, Circle[L](Pt(5, 5), 3).WithFill(white))

	count := 0
	for _, p := range img.Pixels() {
		if p != 0 {
			count++
		}
	}
	// π·3² ≈ 28.3
	if count < 24 || count > 34 {
		t.Errorf("covered %d pixels, want about 28", count)
	}

	// The circle is centered on the image, so both flips are no-ops.
	for _, op := range []func(*Image[L]){(*Image[L]).Mirror, (*Image[L]).Flip} {
		c := img.Clone()
		op(c)
		if !slices.Equal(c.Pixels(), img.Pixels()) {
			t.Errorf("circle not symmetric\n%s", ascii(img))
		}
	}
	if p, _ := img.Get(5, 5); p != 255 {
		t.Error("center pixel not covered")
	}
	if p, _ := img.Get(0, 0); p != 0 {
		t.Error("corner pixel covered")
	}
}

func TestDrawEllipseFromBounds(t *testing.T) {
	img := blank(t, 7, 3)
	mustDraw(t, img, EllipseFromBounds[L](Pt(0, 0), Pt(7, 3)).WithFill(white))
	want := lines(
		".#####.",
		"#######",
		".#####.",
	)
	if got := ascii(img); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestDrawEllipseAntialiased(t *testing.T) {
	img := blank(t, 10, 10)
	mustDraw(t, img, Circle[L](Pt(5, 5), 4).WithFill(white).WithAntialias(true))

	partial := 0
	for _, p := range img.Pixels() {
		if p > 0 && p < 255 {
			partial++
		}
	}
	if partial == 0 {
		t.Error("antialiased circle has no partially covered pixels")
	}
	if p, _ := img.Get(5, 5); p != 255 {
		t.Errorf("center = %d, want full coverage", p)
	}
}

// =============================================================================
// Border
// =============================================================================

func TestBorderPositions(t *testing.T) {
	border := Solid(L(100))
	tests := []struct {
		name string
		pos  BorderPosition
		want string
	}{
		{"outset", BorderOutset, lines(
			"........",
			".oooooo.",
			".o####o.",
			".o####o.",
			".o####o.",
			".o####o.",
			".oooooo.",
			"........",
		)},
		{"inset", BorderInset, lines(
			"........",
			"........",
			"..oooo..",
			"..o##o..",
			"..o##o..",
			"..oooo..",
			"........",
			"........",
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 8, 8)
			rect := NewRectangle[L]().WithPosition(2, 2).WithSize(4, 4).
				WithFill(white).
				WithBorder(NewBorder[L](border, 1).WithPosition(tt.pos))
			mustDraw(t, img, rect)

			var sb strings.Builder
			for _, row := range img.Rows() {
				for _, p := range row {
					switch p {
					case 0:
						sb.WriteByte('.')
					case 100:
						sb.WriteByte('o')
					default:
						sb.WriteByte('#')
					}
				}
				sb.WriteByte('\n')
			}
			if got := sb.String(); got != tt.want {
				t.Errorf("got\n%swant\n%s", got, tt.want)
			}
		})
	}
}

func TestBorderOnly(t *testing.T) {
	img := blank(t, 5, 5)
	mustDraw(t, img, NewRectangle[L]().WithPosition(1, 1).WithSize(3, 3).
		WithBorder(NewBorder[L](white, 1).WithPosition(BorderInset)))
	want := lines(
		".....",
		".###.",
		".#.#.",
		".###.",
		".....",
	)
	if got := ascii(img); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestBorderPositionString(t *testing.T) {
	for pos, want := range map[BorderPosition]string{
		BorderOutset: "outset",
		BorderInset:  "inset",
		BorderCenter: "center",
	} {
		if got := pos.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

// =============================================================================
// Line
// =============================================================================

func TestDrawHairline(t *testing.T) {
	tests := []struct {
		name     string
		from, to Point
		want     string
	}{
		{"horizontal", Pt(1, 1), Pt(4, 1), lines(
			"......",
			".####.",
			"......",
		)},
		{"reversed", Pt(4, 1), Pt(1, 1), lines(
			"......",
			".####.",
			"......",
		)},
		{"diagonal", Pt(0, 0), Pt(2, 2), lines(
			"#.....",
			".#....",
			"..#...",
		)},
		{"degenerate", Pt(3, 2), Pt(3, 2), lines(
			"......",
			"......",
			"...#..",
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 6, 3)
			mustDraw(t, img, NewLine[L](tt.from, tt.to).WithFill(white))
			if got := ascii(img); got != tt.want {
				t.Errorf("got\n%swant\n%s", got, tt.want)
			}
		})
	}
}

func TestHairlineOnePixelPerStep(t *testing.T) {
	img := blank(t, 20, 20)
	mustDraw(t, img, NewLine[L](Pt(2, 3), Pt(17, 9)).WithFill(white))
	for x := range 20 {
		n := 0
		for y := range 20 {
			if p, _ := img.Get(x, y); p != 0 {
				n++
			}
		}
		want := 0
		if x >= 2 && x <= 17 {
			want = 1
		}
		if n != want {
			t.Errorf("column %d has %d pixels, want %d", x, n, want)
		}
	}
}

func TestDrawThickLineCaps(t *testing.T) {
	tests := []struct {
		name string
		cap  LineCap
		want string
	}{
		{"butt", CapButt, lines(
			"..........",
			"..........",
			".#######..",
			".#######..",
			"..........",
		)},
		{"round", CapRound, lines(
			"..........",
			"..........",
			".#######..",
			"#########.",
			"..........",
		)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 10, 5)
			mustDraw(t, img, NewLine[L](Pt(1, 3), Pt(8, 3)).WithWidth(2).WithCap(tt.cap).WithFill(white))
			if got := ascii(img); got != tt.want {
				t.Errorf("got\n%swant\n%s", got, tt.want)
			}
		})
	}
}

func TestDrawLinePosition(t *testing.T) {
	rows := func(img *Image[L]) []int {
		var ys []int
		for y, row := range img.Rows() {
			if row[4] != 0 {
				ys = append(ys, y)
			}
		}
		return ys
	}
	tests := []struct {
		pos  BorderPosition
		want []int
	}{
		{BorderCenter, []int{2, 3}},
		{BorderInset, []int{3, 4}},
		{BorderOutset, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.pos.String(), func(t *testing.T) {
			img := blank(t, 10, 7)
			mustDraw(t, img, NewLine[L](Pt(1, 3), Pt(8, 3)).WithWidth(2).WithPosition(tt.pos).WithFill(white))
			if got := rows(img); !slices.Equal(got, tt.want) {
				t.Errorf("rows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHairlineGradientReachesEndStops(t *testing.T) {
	img := blank(t, 8, 3)
	g := NewLinearGradient[L]().WithBlendMode(BlendRGB).WithColor(0).WithColor(200)
	mustDraw(t, img, NewLine[L](Pt(1, 1), Pt(6, 1)).WithFill(g), WithOverlay(OverlayReplace))

	first, _ := img.Get(1, 1)
	last, _ := img.Get(6, 1)
	if first != 0 || last != 200 {
		t.Errorf("end pixels = %d, %d, want 0, 200", first, last)
	}
	prev := first
	for x := 2; x <= 6; x++ {
		p, _ := img.Get(x, 1)
		if p <= prev {
			t.Errorf("pixel %d = %d, not above %d", x, p, prev)
		}
		prev = p
	}
}

func TestDrawZeroLengthThickLine(t *testing.T) {
	img := blank(t, 9, 9)
	mustDraw(t, img, NewLine[L](Pt(4, 4), Pt(4, 4)).WithWidth(4).WithFill(white))
	if p, _ := img.Get(4, 4); p != 255 {
		t.Error("dot center not covered")
	}
	if p, _ := img.Get(0, 0); p != 0 {
		t.Error("dot covers the corner")
	}
}

// =============================================================================
// Polygon
// =============================================================================

func TestDrawTriangle(t *testing.T) {
	img := blank(t, 5, 5)
	mustDraw(t, img, NewPolygon[L]().
		WithVertex(0, 0).
		WithVertex(5, 0).
		WithVertex(0, 5).
		WithFill(white))
	want := lines(
		"####.",
		"###..",
		"##...",
		"#....",
		".....",
	)
	if got := ascii(img); got != want {
		t.Errorf("got\n%swant\n%s", got, want)
	}
}

func TestRegularPolygonVertices(t *testing.T) {
	c := Pt(10, 10)
	const r = 7.0
	p := RegularPolygonRotated[L](6, c, r, 0.3)
	vs := p.Vertices()
	if len(vs) != 6 {
		t.Fatalf("got %d vertices", len(vs))
	}
	for i, v := range vs {
		if d := v.Distance(c); math.Abs(d-r) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want %v", i, d, r)
		}
		angle := math.Atan2(v.Y-c.Y, v.X-c.X)
		want := 0.3 + float64(i)*2*math.Pi/6
		if math.Abs(angleDelta(angle, want)) > 1e-9 && math.Abs(angleDelta(angle, want)-2*math.Pi) > 1e-9 {
			t.Errorf("vertex %d at angle %v, want %v", i, angle, want)
		}
	}
}

func TestPolygonValidation(t *testing.T) {
	tests := []struct {
		name string
		p    *Polygon[L]
	}{
		{"too few sides", RegularPolygon[L](2, Pt(5, 5), 3)},
		{"empty", NewPolygon[L]()},
		{"two distinct vertices", NewPolygon[L]().WithVertices(Pt(0, 0), Pt(3, 3), Pt(0, 0))},
		{"collinear", NewPolygon[L]().WithVertices(Pt(0, 0), Pt(1, 1), Pt(3, 3))},
		{"non-finite", NewPolygon[L]().WithVertices(Pt(0, 0), Pt(math.Inf(1), 1), Pt(3, 0))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := blank(t, 8, 8)
			if err := img.Draw(tt.p.WithFill(white)); !errors.Is(err, ErrInvalidPolygon) {
				t.Errorf("err = %v, want ErrInvalidPolygon", err)
			}
		})
	}
}

func TestPolygonFillRules(t *testing.T) {
	star := func() *Polygon[L] {
		vs := RegularPolygonRotated[L](5, Pt(10, 10), 9, -math.Pi/2).Vertices()
		return NewPolygon[L]().WithVertices(vs[0], vs[2], vs[4], vs[1], vs[3]).WithFill(white)
	}

	evenOdd := blank(t, 20, 20)
	mustDraw(t, evenOdd, star())
	if p, _ := evenOdd.Get(10, 10); p != 0 {
		t.Error("even-odd pentagram filled its center")
	}

	nonZero := blank(t, 20, 20)
	mustDraw(t, nonZero, star().WithFillRule(FillNonZero))
	if p, _ := nonZero.Get(10, 10); p != 255 {
		t.Error("nonzero pentagram left its center empty")
	}
}

func TestPolygonVertexRadius(t *testing.T) {
	square := func() *Polygon[L] {
		return NewPolygon[L]().
			WithVertices(Pt(2, 2), Pt(12, 2), Pt(12, 12), Pt(2, 12)).
			WithFill(white)
	}

	sharp := blank(t, 14, 14)
	mustDraw(t, sharp, square())
	round := blank(t, 14, 14)
	mustDraw(t, round, square().WithVertexRadius(3))

	if p, _ := sharp.Get(2, 2); p != 255 {
		t.Error("sharp corner not covered")
	}
	if p, _ := round.Get(2, 2); p != 0 {
		t.Error("rounded corner still covered")
	}
	for _, pt := range [][2]int{{7, 7}, {2, 7}, {7, 2}, {11, 7}} {
		if p, _ := round.Get(pt[0], pt[1]); p != 255 {
			t.Errorf("(%d, %d) not covered by the rounded square", pt[0], pt[1])
		}
	}
}

func TestPolygonWindingIndependent(t *testing.T) {
	cw := blank(t, 10, 10)
	ccw := blank(t, 10, 10)
	border := NewBorder[L](Solid(L(100)), 1)
	mustDraw(t, cw, NewPolygon[L]().WithVertices(Pt(2, 2), Pt(8, 2), Pt(8, 8), Pt(2, 8)).WithFill(white).WithBorder(border))
	mustDraw(t, ccw, NewPolygon[L]().WithVertices(Pt(2, 8), Pt(8, 8), Pt(8, 2), Pt(2, 2)).WithFill(white).WithBorder(border))
	if !slices.Equal(cw.Pixels(), ccw.Pixels()) {
		t.Errorf("clockwise\n%scounter-clockwise\n%s", ascii(cw), ascii(ccw))
	}
	if p, _ := cw.Get(1, 5); p != 100 {
		t.Errorf("outset border pixel = %d, want 100", p)
	}
}

func TestPolygonWideInsetBorderFillsShape(t *testing.T) {
	corners := []Point{Pt(1, 1), Pt(11, 1), Pt(11, 11), Pt(1, 11)}
	for _, pos := range []BorderPosition{BorderInset, BorderCenter} {
		t.Run(pos.String(), func(t *testing.T) {
			border := NewBorder[L](Solid(L(100)), 12).WithPosition(pos)
			rect := blank(t, 12, 12)
			mustDraw(t, rect, NewRectangle[L]().WithPosition(1, 1).WithSize(10, 10).
				WithFill(white).WithBorder(border))
			poly := blank(t, 12, 12)
			mustDraw(t, poly, NewPolygon[L]().WithVertices(corners...).
				WithFill(white).WithBorder(border))

			if !slices.Equal(rect.Pixels(), poly.Pixels()) {
				t.Errorf("rectangle\n%spolygon\n%s", ascii(rect), ascii(poly))
			}
			if p, _ := poly.Get(6, 6); p != 100 {
				t.Errorf("center pixel = %d, want border value 100", p)
			}
		})
	}
}

func TestPolygonVertexRadiusStaysInside(t *testing.T) {
	for _, r := range []float64{5, 8, 50} {
		img := blank(t, 14, 14)
		mustDraw(t, img, NewPolygon[L]().
			WithVertices(Pt(2, 2), Pt(12, 2), Pt(12, 12), Pt(2, 12)).
			WithVertexRadius(r).
			WithFill(white))

		for y := range 14 {
			for x := range 14 {
				p, _ := img.Get(x, y)
				inside := x >= 2 && x < 12 && y >= 2 && y < 12
				if !inside && p != 0 {
					t.Errorf("radius %v: (%d, %d) outside the polygon covered", r, x, y)
				}
			}
		}
		if p, _ := img.Get(7, 7); p != 255 {
			t.Errorf("radius %v: center not covered", r)
		}
		if p, _ := img.Get(2, 2); p != 0 {
			t.Errorf("radius %v: corner still covered", r)
		}
	}
}

func TestPolygonClosingVertexIgnored(t *testing.T) {
	border := NewBorder[L](Solid(L(100)), 1)
	open := blank(t, 14, 14)
	mustDraw(t, open, NewPolygon[L]().
		WithVertices(Pt(2, 2), Pt(12, 2), Pt(12, 12), Pt(2, 12)).
		WithFill(white).WithBorder(border))
	closed := blank(t, 14, 14)
	mustDraw(t, closed, NewPolygon[L]().
		WithVertices(Pt(2, 2), Pt(12, 2), Pt(12, 2), Pt(12, 12), Pt(2, 12), Pt(2, 2)).
		WithFill(white).WithBorder(border))

	if !slices.Equal(open.Pixels(), closed.Pixels()) {
		t.Errorf("open\n%sclosed\n%s", ascii(open), ascii(closed))
	}
	if p, _ := closed.Get(1, 1); p != 100 {
		t.Errorf("outset border corner = %d, want 100", p)
	}
}

// =============================================================================
// Compositing and options
// =============================================================================

func TestOverlayPrecedence(t *testing.T) {
	half := Solid(Rgba{255, 255, 255, 128})
	rect := func() *Rectangle[Rgba] {
		return NewRectangle[Rgba]().WithSize(1, 1).WithFill(half)
	}
	tests := []struct {
		name  string
		img   OverlayMode
		shape *OverlayMode
		opts  []DrawOption
		want  Rgba
	}{
		{"image replace", OverlayReplace, nil, nil, Rgba{255, 255, 255, 128}},
		{"image blend", OverlayBlend, nil, nil, Rgba{128, 128, 128, 255}},
		{"shape overrides image", OverlayReplace, ptr(OverlayBlend), nil, Rgba{128, 128, 128, 255}},
		{"option overrides shape", OverlayBlend, ptr(OverlayBlend), []DrawOption{WithOverlay(OverlayReplace)}, Rgba{255, 255, 255, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, _ := New(1, 1, Black)
			img.SetOverlayMode(tt.img)
			r := rect()
			if tt.shape != nil {
				r.WithOverlayMode(*tt.shape)
			}
			mustDraw(t, img, r, tt.opts...)
			if p, _ := img.Get(0, 0); p != tt.want {
				t.Errorf("pixel = %v, want %v", p, tt.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestFullCoverReplaceIdempotent(t *testing.T) {
	img, _ := New(6, 6, Rgba{9, 9, 9, 9})
	rect := NewRectangle[Rgba]().WithSize(6, 6).WithFill(Solid(Rgba{10, 20, 30, 40}))
	mustDraw(t, img, rect)
	once := img.Pixels()
	mustDraw(t, img, rect)
	if !slices.Equal(once, img.Pixels()) {
		t.Error("second replace draw changed the image")
	}
	for _, p := range once {
		if p != (Rgba{10, 20, 30, 40}) {
			t.Fatalf("pixel = %v, want the fill color", p)
		}
	}
}

func TestParallelDrawMatchesSequential(t *testing.T) {
	scene := func(opts ...DrawOption) []Rgba {
		img, err := New(300, 200, Rgba{20, 40, 60, 255})
		if err != nil {
			t.Fatal(err)
		}
		img.SetOverlayMode(OverlayBlend)
		g := NewRadialGradient[Rgba]().WithBlendMode(BlendOklab).
			WithColor(Rgba{255, 0, 0, 200}).
			WithColor(Rgba{0, 0, 255, 90})
		mustDraw(t, img, NewEllipse[Rgba]().WithCenter(150, 100).WithRadii(130, 90).
			WithFill(g).
			WithBorder(NewBorder[Rgba](Solid(White), 3).WithPosition(BorderCenter)).
			WithAntialias(true), opts...)
		mustDraw(t, img, RegularPolygon[Rgba](7, Pt(150, 100), 80).
			WithFill(NewConicGradient[Rgba]().WithColor(Black).WithColor(White)).
			WithVertexRadius(6).
			WithAntialias(true), opts...)
		mustDraw(t, img, NewLine[Rgba](Pt(0, 0), Pt(299, 199)).WithWidth(5).WithCap(CapRound).
			WithFill(Solid(Rgba{0, 255, 0, 160})).
			WithAntialias(true), opts...)
		return img.Pixels()
	}

	sequential := scene(WithWorkers(1))
	parallel := scene(WithWorkers(7), WithParallelThreshold(0))
	if !slices.Equal(sequential, parallel) {
		t.Error("parallel draw differs from sequential draw")
	}
}

// =============================================================================
// Pixel formats
// =============================================================================

func TestDrawPaletted(t *testing.T) {
	img, err := FromRawPartsPaletted[PalettedRgb](4, 1, []byte{0, 0, 0, 0}, []Rgba{Black, White, {255, 0, 0, 255}})
	if err != nil {
		t.Fatal(err)
	}
	red, err := img.Palette().Rgb(2)
	if err != nil {
		t.Fatal(err)
	}
	mustDraw(t, img, NewRectangle[PalettedRgb]().WithPosition(1, 0).WithSize(2, 1).WithFill(Solid(red)))
	if got := img.Bytes(); !slices.Equal(got, []byte{0, 2, 2, 0}) {
		t.Errorf("indices = %v", got)
	}
}

func TestDrawPalettedForeignFill(t *testing.T) {
	img, _ := FromRawPartsPaletted[PalettedRgb](2, 1, []byte{0, 0}, []Rgba{Black, White})
	other, _ := FromRawPartsPaletted[PalettedRgb](1, 1, []byte{0}, []Rgba{{240, 240, 240, 255}})
	foreign, _ := other.Get(0, 0)

	mustDraw(t, img, NewRectangle[PalettedRgb]().WithSize(1, 1).WithFill(Solid(foreign)))
	if got := img.Bytes(); !slices.Equal(got, []byte{1, 0}) {
		t.Errorf("indices = %v, want the nearest own entry", got)
	}
}

func TestDrawDynamic(t *testing.T) {
	img, _ := New(2, 1, L(0).Dynamic())
	mustDraw(t, img, NewRectangle[Dynamic]().WithSize(1, 1).WithFill(Solid(Rgb{255, 0, 0}.Dynamic())))
	p, _ := img.Get(0, 0)
	if p.ColorType() != ColorTypeRgb || p.Rgb() != (Rgb{255, 0, 0}) {
		t.Errorf("pixel = %v, want Rgb red", p)
	}
	if q, _ := img.Get(1, 0); q != L(0).Dynamic() {
		t.Errorf("untouched pixel = %v", q)
	}
}

func TestDrawBitPixels(t *testing.T) {
	img, _ := New(4, 1, BitOff)
	mustDraw(t, img, NewRectangle[BitPixel]().WithPosition(1, 0).WithSize(2, 1).WithFill(Solid(BitOn)))
	if got := img.Pixels(); !slices.Equal(got, []BitPixel{false, true, true, false}) {
		t.Errorf("Pixels() = %v", got)
	}
}

func TestPlotCoverageAndOverlay(t *testing.T) {
	img := blank(t, 2, 2)
	img.PlotCoverage(0, 0, 0.5, white, Rect{}, OverlayReplace)
	img.PlotCoverage(5, 5, 1, white, Rect{}, OverlayReplace)
	img.PlotCoverage(1, 1, 0, white, Rect{}, OverlayReplace)
	if got := img.Pixels(); !slices.Equal(got, []L{128, 0, 0, 0}) {
		t.Errorf("Pixels() = %v", got)
	}

	if err := img.Overlay(1, 0, 77); err != nil {
		t.Fatal(err)
	}
	if p, _ := img.Get(1, 0); p != 77 {
		t.Errorf("Overlay wrote %d, want 77", p)
	}
	if err := img.Overlay(2, 0, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
}

// =============================================================================
// Benchmarks
// =============================================================================

func BenchmarkDrawCircleAA(b *testing.B) {
	img, _ := New(512, 512, White)
	c := Circle[Rgba](Pt(256, 256), 200).WithFill(Solid(Black)).WithAntialias(true)
	for b.Loop() {
		_ = img.Draw(c)
	}
}

func BenchmarkDrawLinearGradient(b *testing.B) {
	img, _ := New(512, 512, White)
	g := NewLinearGradient[Rgba]().WithAngleDegrees(30).WithColor(Black).WithColor(White)
	r := NewRectangle[Rgba]().WithSize(512, 512).WithFill(g)
	for b.Loop() {
		_ = img.Draw(r)
	}
}
