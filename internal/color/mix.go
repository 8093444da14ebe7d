package color

import "math"

// Mix interpolates between a and b at t in [0,1] in the given space.
// t is not clamped; callers pass an already normalized parameter.
func Mix(a, b Color, t float64, space Space) Color {
	switch space {
	case SpaceLinear:
		return mixLinear(a, b, t)
	case SpaceOklab:
		return mixOklab(a, b, t)
	case SpaceHSV:
		return mixHSV(a, b, t)
	default:
		return Color{
			R: lerp(a.R, b.R, t),
			G: lerp(a.G, b.G, t),
			B: lerp(a.B, b.B, t),
			A: lerp(a.A, b.A, t),
		}
	}
}

func mixLinear(a, b Color, t float64) Color {
	return Color{
		R: LinearToSRGB(lerp(SRGBToLinear(a.R), SRGBToLinear(b.R), t)),
		G: LinearToSRGB(lerp(SRGBToLinear(a.G), SRGBToLinear(b.G), t)),
		B: LinearToSRGB(lerp(SRGBToLinear(a.B), SRGBToLinear(b.B), t)),
		A: lerp(a.A, b.A, t),
	}
}

func mixOklab(a, b Color, t float64) Color {
	la, lb := ToOklab(a), ToOklab(b)
	return FromOklab(Lab{
		L:     lerp(la.L, lb.L, t),
		A:     lerp(la.A, lb.A, t),
		B:     lerp(la.B, lb.B, t),
		Alpha: lerp(la.Alpha, lb.Alpha, t),
	})
}

func mixHSV(a, b Color, t float64) Color {
	ha, hb := ToHSV(a), ToHSV(b)

	// Achromatic endpoints have no meaningful hue; borrow the other one.
	if ha.S == 0 {
		ha.H = hb.H
	}
	if hb.S == 0 {
		hb.H = ha.H
	}

	dh := hb.H - ha.H
	if dh > 180 {
		dh -= 360
	} else if dh < -180 {
		dh += 360
	}

	return FromHSV(HSV{
		H:     math.Mod(ha.H+dh*t+360, 360),
		S:     lerp(ha.S, hb.S, t),
		V:     lerp(ha.V, hb.V, t),
		Alpha: lerp(ha.Alpha, hb.Alpha, t),
	})
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
