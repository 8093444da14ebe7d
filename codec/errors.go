package codec

import "errors"

// Sentinel errors for the codec package.
var (
	// ErrUnknownFormat is returned for a file extension or format name
	// that no codec handles.
	ErrUnknownFormat = errors.New("codec: unknown format")

	// ErrNotPaletted is returned by DecodePaletted when the source image
	// does not store palette indices.
	ErrNotPaletted = errors.New("codec: image is not paletted")
)

// ErrNoEncoder is returned when a format can be decoded but not written.
var ErrNoEncoder = errors.New("codec: format has no encoder")
