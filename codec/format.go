package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies an encoded image format.
type Format uint8

const (
	// PNG is lossless and keeps alpha and palettes.
	PNG Format = iota
	// JPEG is lossy and drops alpha.
	JPEG
	// GIF stores at most 256 palette entries.
	GIF
	// BMP is uncompressed.
	BMP
	// TIFF is written uncompressed by default.
	TIFF
	// WebP can be decoded but not encoded.
	WebP
)

// String returns the format name as reported by image.Decode.
func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case WebP:
		return "webp"
	default:
		return "unknown"
	}
}

// CanEncode reports whether Encode supports the format.
func (f Format) CanEncode() bool {
	return f <= TIFF
}

// ParseFormat maps a format name such as "png" or "jpg" to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return PNG, nil
	case "jpg", "jpeg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "bmp":
		return BMP, nil
	case "tif", "tiff":
		return TIFF, nil
	case "webp":
		return WebP, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownFormat)
}

// FormatFromExtension returns the format implied by a file name's
// extension.
func FormatFromExtension(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%q has no extension: %w", path, ErrUnknownFormat)
	}
	return ParseFormat(ext)
}
