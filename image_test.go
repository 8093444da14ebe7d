package imgkit

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"
)

// =============================================================================
// Construction and access
// =============================================================================

func TestNewAndGet(t *testing.T) {
	img, err := New(3, 2, Rgb{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if w, h := img.Dimensions(); w != 3 || h != 2 {
		t.Errorf("Dimensions() = %dx%d, want 3x2", w, h)
	}
	if img.Len() != 6 {
		t.Errorf("Len() = %d, want 6", img.Len())
	}
	for y := range 2 {
		for x := range 3 {
			p, err := img.Get(x, y)
			if err != nil {
				t.Fatal(err)
			}
			if p != (Rgb{1, 2, 3}) {
				t.Errorf("Get(%d, %d) = %v", x, y, p)
			}
		}
	}
}

func TestNewInvalidDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 10},
		{"zero height", 10, 0},
		{"negative", -1, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.w, tt.h, L(0)); !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("New(%d, %d) err = %v, want ErrInvalidDimensions", tt.w, tt.h, err)
			}
		})
	}
}

func TestGetSetOutOfBounds(t *testing.T) {
	img, err := New(10, 10, L(0))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := img.Get(10, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(10, 0) err = %v, want ErrOutOfBounds", err)
	}
	if _, err := img.Get(0, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Get(0, -1) err = %v, want ErrOutOfBounds", err)
	}
	if err := img.Set(3, 10, L(1)); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("Set(3, 10) err = %v, want ErrOutOfBounds", err)
	}
	if err := img.Set(9, 9, L(42)); err != nil {
		t.Fatal(err)
	}
	if p, _ := img.Get(9, 9); p != 42 {
		t.Errorf("Get(9, 9) = %d, want 42", p)
	}
}

func TestFromFuncAndRows(t *testing.T) {
	img, err := FromFunc(4, 3, func(x, y int) L { return L(y*10 + x) })
	if err != nil {
		t.Fatal(err)
	}
	for y, row := range img.Rows() {
		if len(row) != 4 {
			t.Fatalf("row %d has %d pixels", y, len(row))
		}
		for x, p := range row {
			if p != L(y*10+x) {
				t.Errorf("(%d, %d) = %d", x, y, p)
			}
		}
	}
}

func TestFromPixelsLength(t *testing.T) {
	if _, err := FromPixels(2, 2, []L{1, 2, 3}); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("err = %v, want ErrFormatMismatch", err)
	}
	img, err := FromPixels(2, 1, []L{5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Pixels(); !slices.Equal(got, []L{5, 6}) {
		t.Errorf("Pixels() = %v", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	img, _ := New(2, 2, L(1))
	c := img.Clone()
	img.Fill(9)
	if p, _ := c.Get(0, 0); p != 1 {
		t.Errorf("clone changed with the original: %d", p)
	}
}

// =============================================================================
// Raw parts
// =============================================================================

func TestFromRawParts(t *testing.T) {
	img, err := FromRawParts[Rgba](2, 1, ColorTypeRgb, 8, []byte{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Pixels(); !slices.Equal(got, []Rgba{{1, 2, 3, 255}, {4, 5, 6, 255}}) {
		t.Errorf("Pixels() = %v", got)
	}

	la, err := FromRawParts[Rgba](1, 1, ColorTypeLA, 8, []byte{7, 8})
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := la.Get(0, 0); p != (Rgba{7, 7, 7, 8}) {
		t.Errorf("LA pixel = %v", p)
	}
}

func TestFromRawPartsPackedBits(t *testing.T) {
	// 10 pixels wide: two bytes per row.
	img, err := FromRawParts[BitPixel](10, 1, ColorTypeL, 1, []byte{0b1010_0000, 0b0100_0000})
	if err != nil {
		t.Fatal(err)
	}
	want := []BitPixel{true, false, true, false, false, false, false, false, false, true}
	if got := img.Pixels(); !slices.Equal(got, want) {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
	if got := img.Bytes(); !slices.Equal(got, []byte{0b1010_0000, 0b0100_0000}) {
		t.Errorf("Bytes() = %08b", got)
	}
}

func TestFromRawPartsErrors(t *testing.T) {
	tests := []struct {
		name  string
		ct    ColorType
		depth int
		data  []byte
		want  error
	}{
		{"short", ColorTypeRgb, 8, []byte{1, 2}, ErrFormatMismatch},
		{"long", ColorTypeL, 8, []byte{1, 2}, ErrFormatMismatch},
		{"bad depth", ColorTypeL, 16, []byte{1, 2}, ErrUnsupportedColorType},
		{"1-bit color", ColorTypeRgb, 1, []byte{1}, ErrUnsupportedColorType},
		{"paletted", ColorTypePaletteRgb, 8, []byte{1}, ErrUnsupportedColorType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromRawParts[Rgb](1, 1, tt.ct, tt.depth, tt.data); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromRawPartsPaletted(t *testing.T) {
	colors := []Rgba{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	img, err := FromRawPartsPaletted[PalettedRgb](3, 1, []byte{2, 1, 0}, colors)
	if err != nil {
		t.Fatal(err)
	}
	if img.Palette().Len() != 3 {
		t.Fatalf("palette length = %d", img.Palette().Len())
	}
	p, _ := img.Get(1, 0)
	if p.Index() != 1 || p.Palette() != img.Palette() {
		t.Errorf("pixel = index %d palette %p, want index 1 of the image palette", p.Index(), p.Palette())
	}
	if got := img.Bytes(); !slices.Equal(got, []byte{2, 1, 0}) {
		t.Errorf("Bytes() = %v", got)
	}
	if got := img.Palette().Bytes(); !slices.Equal(got, []byte{255, 0, 0, 0, 255, 0, 0, 0, 255}) {
		t.Errorf("Palette().Bytes() = %v", got)
	}

	// The image copies the table.
	colors[0] = Black
	if c, _ := img.Palette().At(0); c != (Rgba{255, 0, 0, 255}) {
		t.Errorf("palette aliased caller slice: %v", c)
	}
}

func TestFromRawPartsPalettedErrors(t *testing.T) {
	colors := []Rgba{Black, White}
	if _, err := FromRawPartsPaletted[Rgb](2, 1, []byte{0, 2}, colors); !errors.Is(err, ErrPaletteIndexOutOfRange) {
		t.Errorf("index 2: err = %v, want ErrPaletteIndexOutOfRange", err)
	}
	if _, err := FromRawPartsPaletted[Rgb](2, 1, []byte{0}, colors); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("short indices: err = %v, want ErrFormatMismatch", err)
	}
	if _, err := FromRawPartsPaletted[Rgb](1, 1, []byte{0}, nil); !errors.Is(err, ErrFormatMismatch) {
		t.Errorf("empty palette: err = %v, want ErrFormatMismatch", err)
	}
}

// =============================================================================
// Conversion graph
// =============================================================================

func TestConvertGrayRoundTrip(t *testing.T) {
	src, err := FromFunc(16, 16, func(x, y int) L { return L(y*16 + x) })
	if err != nil {
		t.Fatal(err)
	}
	back := Convert[L](Convert[Rgb](src))
	if !slices.Equal(back.Pixels(), src.Pixels()) {
		t.Error("L -> Rgb -> L changed pixel values")
	}
}

func TestFlattenPalette(t *testing.T) {
	colors := []Rgba{{255, 0, 0, 255}, {0, 255, 0, 255}, {0, 0, 255, 255}}
	img, err := FromRawPartsPaletted[PalettedRgb](1, 1, []byte{1}, colors)
	if err != nil {
		t.Fatal(err)
	}
	flat := FlattenPalette(img)
	if p, _ := flat.Get(0, 0); p != (Rgb{0, 255, 0}) {
		t.Errorf("flattened pixel = %v, want green", p)
	}
	if flat.Palette() != nil {
		t.Error("flattened image still has a palette")
	}
}

func TestFlattenPaletteRgbaKeepsAlpha(t *testing.T) {
	img, err := FromRawPartsPaletted[PalettedRgba](1, 1, []byte{0}, []Rgba{{1, 2, 3, 4}})
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := FlattenPaletteRgba(img).Get(0, 0); p != (Rgba{1, 2, 3, 4}) {
		t.Errorf("pixel = %v", p)
	}
}

func TestMapPalette(t *testing.T) {
	img, err := FromRawPartsPaletted[PalettedRgb](2, 1, []byte{0, 1}, []Rgba{Black, White})
	if err != nil {
		t.Fatal(err)
	}
	before := img.Bytes()
	if err := img.MapPalette(Rgba.Inverted); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(img.Bytes(), before) {
		t.Error("MapPalette changed indices")
	}
	if p, _ := img.Get(0, 0); p.Color() != (Rgb{255, 255, 255}) {
		t.Errorf("pixel 0 = %v, want white after inversion", p.Color())
	}

	plain, _ := New(1, 1, L(0))
	if err := plain.MapPalette(Rgba.Inverted); !errors.Is(err, ErrUnsupportedColorType) {
		t.Errorf("err = %v, want ErrUnsupportedColorType", err)
	}
}

func TestSetMapsForeignPalette(t *testing.T) {
	a, _ := FromRawPartsPaletted[PalettedRgb](1, 1, []byte{0}, []Rgba{Black, White})
	b, _ := FromRawPartsPaletted[PalettedRgb](1, 1, []byte{0}, []Rgba{{250, 250, 250, 255}, Black})

	foreign, _ := b.Get(0, 0)
	if err := a.Set(0, 0, foreign); err != nil {
		t.Fatal(err)
	}
	p, _ := a.Get(0, 0)
	if p.Palette() != a.Palette() || p.Index() != 1 {
		t.Errorf("pixel = index %d, want nearest entry 1 of own palette", p.Index())
	}
}

func TestSplitMergeAlpha(t *testing.T) {
	src, _ := FromPixels(2, 1, []Rgba{{1, 2, 3, 4}, {5, 6, 7, 8}})
	rgb, alpha := SplitAlpha(src)
	if !slices.Equal(alpha.Pixels(), []L{4, 8}) {
		t.Errorf("alpha = %v", alpha.Pixels())
	}
	merged, err := MergeAlpha(rgb, alpha)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(merged.Pixels(), src.Pixels()) {
		t.Errorf("merged = %v, want %v", merged.Pixels(), src.Pixels())
	}

	other, _ := New(1, 1, L(0))
	if _, err := MergeAlpha(rgb, other); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
	if err := MaskAlpha(src, other); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

func TestDynamicBytesUseWidestVariant(t *testing.T) {
	img, _ := FromPixels(2, 1, []Dynamic{L(10).Dynamic(), Rgb{1, 2, 3}.Dynamic()})
	if got := img.Bytes(); !slices.Equal(got, []byte{10, 10, 10, 1, 2, 3}) {
		t.Errorf("Bytes() = %v", got)
	}
}

// =============================================================================
// In-place operations
// =============================================================================

func grid(t *testing.T) *Image[L] {
	t.Helper()
	// 0 1 2
	// 3 4 5
	img, err := FromPixels(3, 2, []L{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestGeometricOps(t *testing.T) {
	tests := []struct {
		name string
		op   func(*Image[L])
		w, h int
		want []L
	}{
		{"mirror", (*Image[L]).Mirror, 3, 2, []L{2, 1, 0, 5, 4, 3}},
		{"flip", (*Image[L]).Flip, 3, 2, []L{3, 4, 5, 0, 1, 2}},
		{"rotate90", (*Image[L]).Rotate90, 2, 3, []L{3, 0, 4, 1, 5, 2}},
		{"rotate180", (*Image[L]).Rotate180, 3, 2, []L{5, 4, 3, 2, 1, 0}},
		{"rotate270", (*Image[L]).Rotate270, 2, 3, []L{2, 5, 1, 4, 0, 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := grid(t)
			tt.op(img)
			if img.Width() != tt.w || img.Height() != tt.h {
				t.Errorf("size = %dx%d, want %dx%d", img.Width(), img.Height(), tt.w, tt.h)
			}
			if got := img.Pixels(); !slices.Equal(got, tt.want) {
				t.Errorf("Pixels() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCrop(t *testing.T) {
	img := grid(t)
	if err := img.Crop(1, 0, 3, 2); err != nil {
		t.Fatal(err)
	}
	if got := img.Pixels(); !slices.Equal(got, []L{1, 2, 4, 5}) {
		t.Errorf("Pixels() = %v", got)
	}
	if err := img.Crop(0, 0, 5, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("err = %v, want ErrOutOfBounds", err)
	}
	if err := img.Crop(1, 1, 1, 2); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("empty crop err = %v, want ErrInvalidDimensions", err)
	}
}

func TestInvert(t *testing.T) {
	img := grid(t)
	img.Invert()
	if p, _ := img.Get(1, 0); p != 254 {
		t.Errorf("inverted = %d, want 254", p)
	}
}

func TestPasteWithMask(t *testing.T) {
	dst, _ := New(3, 3, L(0))
	src, _ := New(2, 2, L(200))
	mask, _ := FromPixels(2, 2, []BitPixel{true, false, false, true})

	if err := dst.Paste(2, 2, src, mask); err != nil {
		t.Fatal(err)
	}
	want := []L{0, 0, 0, 0, 0, 0, 0, 0, 200}
	if got := dst.Pixels(); !slices.Equal(got, want) {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}

	small, _ := New(1, 1, BitOn)
	if err := dst.Paste(0, 0, src, small); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("err = %v, want ErrInvalidDimensions", err)
	}
}

// =============================================================================
// Standard library interop
// =============================================================================

func TestImplementsImage(t *testing.T) {
	var _ image.Image = (*Image[Rgba])(nil)

	img, _ := New(2, 2, Rgba{255, 0, 0, 255})
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if img.ColorModel() != color.NRGBAModel {
		t.Error("Rgba image should use the NRGBA model")
	}
	if c := img.At(5, 5); c != (color.NRGBA{}) {
		t.Errorf("At outside = %v, want transparent", c)
	}
}

func TestToStdAndBack(t *testing.T) {
	img, _ := FromFunc(3, 3, func(x, y int) Rgba { return Rgba{uint8(x * 80), uint8(y * 80), 7, 255} })
	std := img.ToStd()
	if _, ok := std.(*image.NRGBA); !ok {
		t.Fatalf("ToStd() = %T, want *image.NRGBA", std)
	}
	back, err := FromStd[Rgba](std)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(back.Pixels(), img.Pixels()) {
		t.Error("pixels changed through image.NRGBA")
	}

	gray, _ := New(1, 1, L(9))
	if g, ok := gray.ToStd().(*image.Gray); !ok || g.Pix[0] != 9 {
		t.Errorf("gray ToStd() = %#v", gray.ToStd())
	}
}

func TestFromStdTranslatesBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(6, 5, color.Gray{Y: 99})
	img, err := FromStd[L](src)
	if err != nil {
		t.Fatal(err)
	}
	if p, _ := img.Get(1, 0); p != 99 {
		t.Errorf("Get(1, 0) = %d, want 99", p)
	}
}
