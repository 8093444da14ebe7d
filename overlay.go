package imgkit

import "math"

// OverlayMode is the rule that writes a fill color into a destination pixel.
type OverlayMode uint8

const (
	// OverlayReplace writes the fill color outright. Partial coverage
	// scales the written alpha, or weights the color for formats without
	// alpha.
	OverlayReplace OverlayMode = iota

	// OverlayBlend composites the fill over the destination with the
	// standard non-premultiplied "over" operator.
	OverlayBlend
)

// String returns the name of the mode.
func (m OverlayMode) String() string {
	switch m {
	case OverlayReplace:
		return "replace"
	case OverlayBlend:
		return "blend"
	default:
		return "unknown"
	}
}

func round8(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// lerp8 moves d toward s by factor f in [0, 1].
func lerp8(d, s uint8, f float64) uint8 {
	return round8(float64(d) + (float64(s)-float64(d))*f)
}

// overlayFactor returns how strongly src replaces dst in formats without
// alpha: the coverage, further scaled by the fill's own alpha when blending.
func overlayFactor(srcAlpha uint8, mode OverlayMode, coverage float64) float64 {
	if mode == OverlayBlend {
		return coverage * float64(srcAlpha) / 255
	}
	return coverage
}

// overlayRgba is the one compositing primitive for straight-alpha colors.
func overlayRgba(dst, src Rgba, mode OverlayMode, coverage float64) Rgba {
	if coverage <= 0 {
		return dst
	}
	coverage = math.Min(coverage, 1)

	if mode != OverlayBlend {
		if coverage == 1 {
			return src
		}
		return src.WithAlpha(round8(float64(src.A) * coverage))
	}

	sa := float64(src.A) / 255 * coverage
	if sa >= 1 {
		return src
	}
	if sa <= 0 {
		return dst
	}
	da := float64(dst.A) / 255
	keep := da * (1 - sa)
	outA := sa + keep
	if outA <= 0 {
		return Transparent
	}
	mix := func(s, d uint8) uint8 {
		return round8((float64(s)*sa + float64(d)*keep) / outA)
	}
	return Rgba{
		R: mix(src.R, dst.R),
		G: mix(src.G, dst.G),
		B: mix(src.B, dst.B),
		A: round8(outA * 255),
	}
}

func overlayRgb(dst, src Rgb, f float64) Rgb {
	if f <= 0 {
		return dst
	}
	if f >= 1 {
		return src
	}
	return Rgb{lerp8(dst.R, src.R, f), lerp8(dst.G, src.G, f), lerp8(dst.B, src.B, f)}
}

func overlayL(dst, src L, f float64) L {
	if f <= 0 {
		return dst
	}
	if f >= 1 {
		return src
	}
	return L(lerp8(uint8(dst), uint8(src), f))
}

// overlayBit takes the source once at least half of it shows through.
func overlayBit(dst, src BitPixel, f float64) BitPixel {
	if f >= 0.5 {
		return src
	}
	return dst
}

// overlayDynamic composites in the wider of the two variants, so neither
// side loses channels.
func overlayDynamic(dst, src Dynamic, mode OverlayMode, coverage float64) Dynamic {
	if coverage <= 0 {
		return dst
	}
	kind := dst.kind
	if src.kind.width() > kind.width() {
		kind = src.kind
	}
	d, s := dst.as(kind), src.as(kind)
	f := overlayFactor(src.Rgba().A, mode, math.Min(coverage, 1))

	switch kind {
	case dynBit:
		return dynamicBit(overlayBit(d.BitPixel(), s.BitPixel(), f))
	case dynL:
		return dynamicL(overlayL(d.L(), s.L(), f))
	case dynRgb:
		return dynamicRgb(overlayRgb(d.Rgb(), s.Rgb(), f))
	default:
		return dynamicRgba(overlayRgba(d.Rgba(), s.Rgba(), mode, coverage))
	}
}
