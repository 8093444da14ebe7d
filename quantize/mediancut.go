package quantize

import (
	"cmp"
	"image/color"
	"slices"

	"github.com/gogpu/imgkit"
)

// bucket is one distinct color and the number of pixels holding it.
type bucket struct {
	c     imgkit.Rgba
	count int
}

// histogram returns the distinct colors of pixels in a stable order.
func histogram(pixels []imgkit.Rgba) []bucket {
	seen := make(map[imgkit.Rgba]int)
	var out []bucket
	for _, c := range pixels {
		if i, ok := seen[c]; ok {
			out[i].count++
			continue
		}
		seen[c] = len(out)
		out = append(out, bucket{c: c, count: 1})
	}
	slices.SortFunc(out, func(a, b bucket) int { return cmp.Compare(pack(a.c), pack(b.c)) })
	return out
}

func pack(c imgkit.Rgba) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}

func channel(c imgkit.Rgba, ch int) uint8 {
	switch ch {
	case 0:
		return c.R
	case 1:
		return c.G
	case 2:
		return c.B
	default:
		return c.A
	}
}

// box is a set of histogram buckets.
type box []bucket

// widest returns the channel with the largest value range and that range.
func (b box) widest() (ch, span int) {
	for c := range 4 {
		lo, hi := 255, 0
		for _, e := range b {
			v := int(channel(e.c, c))
			lo, hi = min(lo, v), max(hi, v)
		}
		if hi-lo > span {
			ch, span = c, hi-lo
		}
	}
	return ch, span
}

// split sorts the box along ch and cuts it where half of its pixels lie
// on each side. Both halves are non-empty.
func (b box) split(ch int) (box, box) {
	slices.SortStableFunc(b, func(x, y bucket) int {
		return cmp.Compare(channel(x.c, ch), channel(y.c, ch))
	})
	total := 0
	for _, e := range b {
		total += e.count
	}
	cut, acc := 1, 0
	for i, e := range b[:len(b)-1] {
		acc += e.count
		cut = i + 1
		if 2*acc >= total {
			break
		}
	}
	return b[:cut], b[cut:]
}

// mean is the pixel-weighted average color of the box.
func (b box) mean() imgkit.Rgba {
	var sum [4]int
	n := 0
	for _, e := range b {
		for ch := range 4 {
			sum[ch] += int(channel(e.c, ch)) * e.count
		}
		n += e.count
	}
	var v [4]uint8
	for ch := range 4 {
		v[ch] = uint8((sum[ch] + n/2) / n)
	}
	return imgkit.Rgba{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// medianCut repeatedly splits the box with the widest channel range until
// there are limit boxes or no box can be split, and returns the box means.
func medianCut(hist []bucket, limit int) []imgkit.Rgba {
	boxes := []box{box(hist)}
	for len(boxes) < limit {
		best, bestCh, bestSpan := -1, 0, 0
		for i, b := range boxes {
			if len(b) < 2 {
				continue
			}
			if ch, span := b.widest(); span > bestSpan {
				best, bestCh, bestSpan = i, ch, span
			}
		}
		if best < 0 {
			break
		}
		lo, hi := boxes[best].split(bestCh)
		boxes[best] = lo
		boxes = append(boxes, hi)
	}

	palette := make([]imgkit.Rgba, len(boxes))
	for i, b := range boxes {
		palette[i] = b.mean()
	}
	return palette
}

func stdPalette(p []imgkit.Rgba) color.Palette {
	out := make(color.Palette, len(p))
	for i, c := range p {
		out[i] = color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	}
	return out
}
