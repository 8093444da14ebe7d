package color

import "math"

// SRGBToLinear converts an sRGB component to linear light.
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// LinearToSRGB converts a linear-light component to sRGB.
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// Lab is a color in the Oklab space.
type Lab struct {
	L, A, B float64
	Alpha   float64
}

// ToOklab converts an sRGB color to Oklab.
// See https://bottosson.github.io/posts/oklab/
func ToOklab(c Color) Lab {
	r, g, b := SRGBToLinear(c.R), SRGBToLinear(c.G), SRGBToLinear(c.B)

	l := math.Cbrt(0.4122214708*r + 0.5363325363*g + 0.0514459929*b)
	m := math.Cbrt(0.2119034982*r + 0.6806995451*g + 0.1073969566*b)
	s := math.Cbrt(0.0883024619*r + 0.2817188376*g + 0.6299787005*b)

	return Lab{
		L:     0.2104542553*l + 0.7936177850*m - 0.0040720468*s,
		A:     1.9779984951*l - 2.4285922050*m + 0.4505937099*s,
		B:     0.0259040371*l + 0.7827717662*m - 0.8086757660*s,
		Alpha: c.A,
	}
}

// FromOklab converts an Oklab color back to sRGB. Out-of-gamut results are
// clipped per channel.
func FromOklab(lab Lab) Color {
	l := lab.L + 0.3963377774*lab.A + 0.2158037573*lab.B
	m := lab.L - 0.1055613458*lab.A - 0.0638541728*lab.B
	s := lab.L - 0.0894841775*lab.A - 1.2914855480*lab.B
	l, m, s = l*l*l, m*m*m, s*s*s

	r := +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	g := -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	b := -0.0041960863*l - 0.7034186147*m + 1.7076147010*s

	return Color{
		R: LinearToSRGB(Clamp01(r)),
		G: LinearToSRGB(Clamp01(g)),
		B: LinearToSRGB(Clamp01(b)),
		A: lab.Alpha,
	}
}

// HSV is a color in hue (degrees, [0,360)), saturation and value.
type HSV struct {
	H, S, V float64
	Alpha   float64
}

// ToHSV converts an sRGB color to HSV.
func ToHSV(c Color) HSV {
	maxc := math.Max(c.R, math.Max(c.G, c.B))
	minc := math.Min(c.R, math.Min(c.G, c.B))
	d := maxc - minc

	var h float64
	switch {
	case d == 0:
		h = 0
	case maxc == c.R:
		h = 60 * math.Mod((c.G-c.B)/d, 6)
	case maxc == c.G:
		h = 60 * ((c.B-c.R)/d + 2)
	default:
		h = 60 * ((c.R-c.G)/d + 4)
	}
	if h < 0 {
		h += 360
	}

	var s float64
	if maxc > 0 {
		s = d / maxc
	}
	return HSV{H: h, S: s, V: maxc, Alpha: c.A}
}

// FromHSV converts an HSV color to sRGB.
func FromHSV(v HSV) Color {
	h := math.Mod(v.H, 360)
	if h < 0 {
		h += 360
	}
	c := v.V * v.S
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v.V - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: v.Alpha}
}
