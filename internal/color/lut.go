package color

import "math"

// sRGBToLinearLUT provides O(1) sRGB to linear conversion for byte input.
// Pre-computed 256 entries, 2KB memory cost.
var sRGBToLinearLUT [256]float64

// linearToSRGBLUT provides O(1) linear to sRGB conversion.
// Uses 4096 entries for 12-bit precision (sufficient for 8-bit sRGB).
var linearToSRGBLUT [4096]uint8

func init() {
	for i := range 256 {
		sRGBToLinearLUT[i] = SRGBToLinear(float64(i) / 255.0)
	}
	for i := range 4096 {
		linearToSRGBLUT[i] = ClampU8(LinearToSRGB(float64(i) / 4095.0))
	}
}

// SRGBToLinearFast converts an sRGB byte to linear light using a lookup table.
//
// Example:
//
//	r := SRGBToLinearFast(128) // ~0.2159 (not 0.5!)
func SRGBToLinearFast(s uint8) float64 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGBFast converts a linear component to an sRGB byte using a
// lookup table. Input is clamped to [0,1].
func LinearToSRGBFast(l float64) uint8 {
	if !(l > 0) {
		return 0
	}
	if l >= 1 {
		return 255
	}
	return linearToSRGBLUT[int(math.Round(l*4095))]
}
