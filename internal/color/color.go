// Package color provides the color spaces gradients interpolate in.
//
// All colors are straight (non-premultiplied) float64 RGBA in [0,1], encoded
// in sRGB unless a function says otherwise. Alpha is always linear.
package color

// Space selects the color space used to interpolate between two colors.
type Space uint8

const (
	// SpaceSRGB interpolates the gamma-encoded sRGB components directly.
	SpaceSRGB Space = iota

	// SpaceLinear interpolates in linear-light RGB.
	SpaceLinear

	// SpaceOklab interpolates in the perceptual Oklab space.
	SpaceOklab

	// SpaceHSV interpolates hue, saturation and value, taking the short
	// way around the hue circle.
	SpaceHSV
)

// String returns the name of the space.
func (s Space) String() string {
	switch s {
	case SpaceSRGB:
		return "sRGB"
	case SpaceLinear:
		return "linear"
	case SpaceOklab:
		return "Oklab"
	case SpaceHSV:
		return "HSV"
	default:
		return "Unknown"
	}
}

// Color is a straight-alpha sRGB color with components in [0,1].
type Color struct {
	R, G, B, A float64
}

// FromU8 converts 8-bit components to a Color.
func FromU8(r, g, b, a uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}
}

// U8 converts c to 8-bit components, clamping and rounding each one.
func (c Color) U8() (r, g, b, a uint8) {
	return ClampU8(c.R), ClampU8(c.G), ClampU8(c.B), ClampU8(c.A)
}

// ClampU8 clamps v to [0,1] and scales it to a byte with rounding.
func ClampU8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Clamp01 clamps x to [0,1]. NaN maps to 0.
func Clamp01(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
