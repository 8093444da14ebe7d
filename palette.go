package imgkit

import (
	"fmt"
	"slices"

	"github.com/gogpu/imgkit/internal/cache"
)

// MaxPaletteLen is the largest palette an index byte can address.
const MaxPaletteLen = 256

// Palette is a color table owned by exactly one paletted Image. Paletted
// pixels hold a pointer to it for lookup only.
//
// A Palette is read-only except through its owning Image's MapPalette, so
// lookups may happen from any number of goroutines.
type Palette struct {
	colors  []Rgba
	alpha   bool
	nearest *cache.Cache[Rgba, uint8]
}

// nearestCacheSize bounds the memoized Nearest lookups per palette.
const nearestCacheSize = 4096

// NewPalette copies colors into a palette that records whether entries
// carry meaningful alpha. Without alpha every entry is made opaque. Images
// built from a palette copy it again, so the result can seed several.
func NewPalette(colors []Rgba, alpha bool) (*Palette, error) {
	if len(colors) == 0 || len(colors) > MaxPaletteLen {
		return nil, fmt.Errorf("palette with %d entries: %w", len(colors), ErrFormatMismatch)
	}
	pal := &Palette{colors: slices.Clone(colors), alpha: alpha, nearest: cache.New[Rgba, uint8](nearestCacheSize)}
	if !alpha {
		for i := range pal.colors {
			pal.colors[i].A = 255
		}
	}
	return pal, nil
}

// ParsePalette decodes a raw palette table as produced by a decoder: three
// bytes per entry for ColorTypeRgb and four for ColorTypeRgba.
func ParsePalette(ct ColorType, data []byte) ([]Rgba, error) {
	var stride int
	switch ct {
	case ColorTypeRgb, ColorTypePaletteRgb:
		stride = 3
	case ColorTypeRgba, ColorTypePaletteRgba:
		stride = 4
	default:
		return nil, fmt.Errorf("palette entries of type %v: %w", ct, ErrUnsupportedColorType)
	}
	if len(data) == 0 || len(data)%stride != 0 {
		return nil, fmt.Errorf("palette of %d bytes with %d bytes per entry: %w", len(data), stride, ErrFormatMismatch)
	}

	colors := make([]Rgba, 0, len(data)/stride)
	for i := 0; i < len(data); i += stride {
		c := Rgba{data[i], data[i+1], data[i+2], 255}
		if stride == 4 {
			c.A = data[i+3]
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// Len returns the number of entries.
func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.colors)
}

// HasAlpha reports whether entries carry alpha.
func (p *Palette) HasAlpha() bool {
	return p != nil && p.alpha
}

// At returns entry i.
func (p *Palette) At(i int) (Rgba, error) {
	if i < 0 || i >= p.Len() {
		return Rgba{}, fmt.Errorf("index %d of %d: %w", i, p.Len(), ErrPaletteIndexOutOfRange)
	}
	return p.colors[i], nil
}

// Colors returns a copy of the table.
func (p *Palette) Colors() []Rgba {
	if p == nil {
		return nil
	}
	return slices.Clone(p.colors)
}

// Bytes returns the table in encoder layout: RGB triples, or RGBA quads
// when the palette has alpha.
func (p *Palette) Bytes() []byte {
	stride := 3
	if p.HasAlpha() {
		stride = 4
	}
	out := make([]byte, 0, p.Len()*stride)
	for _, c := range p.colors {
		out = append(out, c.R, c.G, c.B)
		if stride == 4 {
			out = append(out, c.A)
		}
	}
	return out
}

// Rgb returns a pixel referring to entry i.
func (p *Palette) Rgb(i int) (PalettedRgb, error) {
	if i < 0 || i >= p.Len() {
		return PalettedRgb{}, fmt.Errorf("index %d of %d: %w", i, p.Len(), ErrPaletteIndexOutOfRange)
	}
	return PalettedRgb{index: uint8(i), palette: p}, nil
}

// Rgba returns a pixel referring to entry i.
func (p *Palette) Rgba(i int) (PalettedRgba, error) {
	if i < 0 || i >= p.Len() {
		return PalettedRgba{}, fmt.Errorf("index %d of %d: %w", i, p.Len(), ErrPaletteIndexOutOfRange)
	}
	return PalettedRgba{index: uint8(i), palette: p}, nil
}

// Nearest returns the index of the entry closest to c by squared distance.
// Alpha only counts for palettes with alpha. Ties resolve to the lowest
// index. Results are memoized per palette.
func (p *Palette) Nearest(c Rgba) uint8 {
	if p.nearest == nil {
		return p.scan(c)
	}
	return p.nearest.GetOrCreate(c, func() uint8 { return p.scan(c) })
}

func (p *Palette) scan(c Rgba) uint8 {
	best, bestDist := 0, -1
	for i, e := range p.colors {
		dr := int(e.R) - int(c.R)
		dg := int(e.G) - int(c.G)
		db := int(e.B) - int(c.B)
		d := dr*dr + dg*dg + db*db
		if p.alpha {
			da := int(e.A) - int(c.A)
			d += da * da
		}
		if bestDist < 0 || d < bestDist {
			best, bestDist = i, d
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}

// apply replaces every entry with f(entry). Only the owning Image calls it.
func (p *Palette) apply(f func(Rgba) Rgba) {
	for i, c := range p.colors {
		c = f(c)
		if !p.alpha {
			c.A = 255
		}
		p.colors[i] = c
	}
	if p.nearest != nil {
		p.nearest.Clear()
	}
}

// clone copies the table for a new owner.
func (p *Palette) clone() *Palette {
	if p == nil {
		return nil
	}
	return &Palette{colors: slices.Clone(p.colors), alpha: p.alpha, nearest: cache.New[Rgba, uint8](nearestCacheSize)}
}
