package imgkit

import "errors"

// Errors returned by imgkit. They are wrapped with call context, so match
// them with errors.Is.
var (
	// ErrInvalidDimensions is returned when an image would have zero or
	// negative width or height.
	ErrInvalidDimensions = errors.New("imgkit: invalid dimensions")

	// ErrFormatMismatch is returned when raw bytes do not match the
	// declared pixel format and dimensions.
	ErrFormatMismatch = errors.New("imgkit: format mismatch")

	// ErrOutOfBounds is returned for pixel access outside the image.
	ErrOutOfBounds = errors.New("imgkit: coordinates out of bounds")

	// ErrPaletteIndexOutOfRange is returned for an index not present in
	// the palette.
	ErrPaletteIndexOutOfRange = errors.New("imgkit: palette index out of range")

	// ErrInvalidPolygon is returned for polygons that cannot be rasterized
	// unambiguously: fewer than 3 distinct vertices, non-finite
	// coordinates or zero area.
	ErrInvalidPolygon = errors.New("imgkit: invalid polygon")

	// ErrUnsupportedColorType is returned when a color type and bit depth
	// combination cannot be decoded into the requested pixel format.
	ErrUnsupportedColorType = errors.New("imgkit: unsupported color type")

	// ErrInvalidHexCode is returned by the hex color parsers.
	ErrInvalidHexCode = errors.New("imgkit: invalid hex code")

	// ErrEmptyGradient is returned when a gradient without color stops is
	// drawn.
	ErrEmptyGradient = errors.New("imgkit: gradient has no color stops")

	// ErrInvalidShape is returned when a shape's configuration is rejected
	// at draw time.
	ErrInvalidShape = errors.New("imgkit: invalid shape")
)
