package text

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// goRegular is parsed once and shared by every face created from it.
var goRegular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// GoRegular returns the Go Regular font at size pixels per em. The face
// is not safe for concurrent use; create one per goroutine.
func GoRegular(size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("text: font size %v: %w", size, ErrInvalidSize)
	}
	f, err := goRegular()
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return NewFace(f, size)
}

// NewFace creates a face for a parsed OpenType font at size pixels per
// em, with full hinting.
func NewFace(f *opentype.Font, size float64) (font.Face, error) {
	if !(size > 0) {
		return nil, fmt.Errorf("text: font size %v: %w", size, ErrInvalidSize)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create face: %w", err)
	}
	return face, nil
}

// ParseFont parses TrueType or OpenType font data.
func ParseFont(data []byte) (*opentype.Font, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}
	return f, nil
}

// Basic returns a 7×13 bitmap face covering printable ASCII.
func Basic() font.Face {
	return basicfont.Face7x13
}

// fixedToFloat64 converts fixed.Int26_6 to float64.
func fixedToFloat64(x fixed.Int26_6) float64 {
	return float64(x) / 64.0
}

func floatToFixed(x float64) fixed.Int26_6 {
	return fixed.Int26_6(x * 64)
}
