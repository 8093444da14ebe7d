package text

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/imgkit"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Metrics describes a string laid out with its first baseline at y = 0.
// Y increases down, so ascenders have negative coordinates.
type Metrics struct {
	// Advance is the pen movement of the widest line.
	Advance float64

	// Bounds encloses every glyph box of every line.
	Bounds imgkit.Rect

	// Lines is the number of lines separated by '\n'.
	Lines int

	// LineHeight is the distance between consecutive baselines.
	LineHeight float64
}

// Measure lays out s with face without drawing it.
func Measure(face font.Face, s string) Metrics {
	lineHeight := face.Metrics().Height
	m := Metrics{LineHeight: fixedToFloat64(lineHeight)}
	if s == "" {
		return m
	}

	var ink fixed.Rectangle26_6
	for i, line := range strings.Split(s, "\n") {
		m.Lines++
		b, adv := font.BoundString(face, line)
		m.Advance = max(m.Advance, fixedToFloat64(adv))
		if b.Empty() {
			continue
		}
		b = b.Add(fixed.Point26_6{Y: lineHeight * fixed.Int26_6(i)})
		if ink.Empty() {
			ink = b
		} else {
			ink = ink.Union(b)
		}
	}
	m.Bounds = imgkit.Rect{
		X0: fixedToFloat64(ink.Min.X),
		Y0: fixedToFloat64(ink.Min.Y),
		X1: fixedToFloat64(ink.Max.X),
		Y1: fixedToFloat64(ink.Max.Y),
	}
	return m
}

// Draw renders s into img with its first baseline starting at (x, y).
// Each '\n' starts a new line one line height lower.
//
// Glyph coverage is composited through fill with mode. Gradients and image
// fills are laid out over the ink bounds of the whole string.
func Draw[P imgkit.Pixel](img *imgkit.Image[P], face font.Face, x, y float64, s string,
	fill imgkit.Fill[P], mode imgkit.OverlayMode) error {
	f, err := imgkit.Prepare(fill)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	if s == "" {
		return nil
	}

	m := Measure(face, s)
	bounds := imgkit.Rect{X0: x + m.Bounds.X0, Y0: y + m.Bounds.Y0, X1: x + m.Bounds.X1, Y1: y + m.Bounds.Y1}
	lineHeight := face.Metrics().Height
	origin := floatToFixed(x)

	dot := fixed.Point26_6{X: origin, Y: floatToFixed(y)}
	prev := rune(-1)
	glyphs := 0
	for _, r := range s {
		if r == '\n' {
			dot.X = origin
			dot.Y += lineHeight
			prev = -1
			continue
		}
		if prev >= 0 {
			dot.X += face.Kern(prev, r)
		}
		dr, mask, mp, advance, _ := face.Glyph(dot, r)
		if !dr.Empty() {
			plot(img, dr, mask, mp, f, bounds, mode)
			glyphs++
		}
		dot.X += advance
		prev = r
	}

	imgkit.Logger().Debug("text", "glyphs", glyphs, "lines", m.Lines, "bounds", bounds, "mode", mode)
	return nil
}

// plot composites one glyph mask. Mask pixel mp corresponds to dr.Min.
func plot[P imgkit.Pixel](img *imgkit.Image[P], dr image.Rectangle, mask image.Image, mp image.Point,
	fill imgkit.Fill[P], bounds imgkit.Rect, mode imgkit.OverlayMode) {
	clip := dr.Intersect(img.Bounds())
	alpha, _ := mask.(*image.Alpha)

	for py := clip.Min.Y; py < clip.Max.Y; py++ {
		my := mp.Y + py - dr.Min.Y
		for px := clip.Min.X; px < clip.Max.X; px++ {
			mx := mp.X + px - dr.Min.X
			var a uint32
			if alpha != nil {
				a = uint32(alpha.AlphaAt(mx, my).A) * 0x101
			} else {
				_, _, _, a = mask.At(mx, my).RGBA()
			}
			if a == 0 {
				continue
			}
			img.PlotCoverage(px, py, float64(a)/0xffff, fill, bounds, mode)
		}
	}
}
