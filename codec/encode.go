package codec

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/imgkit"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// DefaultQuality is the JPEG quality used when none is given.
const DefaultQuality = 90

// Option configures Encode.
type Option func(*options)

type options struct {
	quality     int
	compression png.CompressionLevel
	gifColors   int
	tiff        tiff.CompressionType
}

func defaultOptions() options {
	return options{
		quality:     DefaultQuality,
		compression: png.DefaultCompression,
		gifColors:   256,
		tiff:        tiff.Uncompressed,
	}
}

// WithQuality sets the JPEG quality, clamped to [1, 100].
func WithQuality(q int) Option {
	return func(o *options) {
		o.quality = max(1, min(q, 100))
	}
}

// WithCompression sets the PNG compression level.
func WithCompression(level png.CompressionLevel) Option {
	return func(o *options) {
		o.compression = level
	}
}

// WithGIFColors limits the number of colors a true-color image is reduced
// to when written as GIF. Paletted images keep their palette.
func WithGIFColors(n int) Option {
	return func(o *options) {
		o.gifColors = max(1, min(n, 256))
	}
}

// WithTIFFCompression selects the TIFF compression scheme.
func WithTIFFCompression(c tiff.CompressionType) Option {
	return func(o *options) {
		o.tiff = c
	}
}

// Encode writes img to w in format f.
//
// Gray and bit images are written as 8-bit gray, paletted images keep
// their palette where the format has one, everything else is written as
// non-premultiplied RGBA. JPEG drops alpha.
func Encode[P imgkit.Pixel](w io.Writer, img *imgkit.Image[P], f Format, opts ...Option) error {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := img.ToStd()
	var err error
	switch f {
	case PNG:
		enc := png.Encoder{
			CompressionLevel: o.compression,
			BufferPool:       pngPool,
		}
		err = enc.Encode(w, src)
	case JPEG:
		if img.ColorType().HasAlpha() {
			imgkit.Logger().Warn("jpeg output drops alpha", "color_type", img.ColorType())
		}
		err = jpeg.Encode(w, src, &jpeg.Options{Quality: o.quality})
	case GIF:
		err = gif.Encode(w, src, &gif.Options{NumColors: o.gifColors})
	case BMP:
		err = bmp.Encode(w, src)
	case TIFF:
		err = tiff.Encode(w, src, &tiff.Options{Compression: o.tiff})
	case WebP:
		return fmt.Errorf("codec: encode %v: %w", f, ErrNoEncoder)
	default:
		return fmt.Errorf("codec: encode format %d: %w", f, ErrUnknownFormat)
	}
	if err != nil {
		return fmt.Errorf("codec: encode %v: %w", f, err)
	}

	imgkit.Logger().Debug("encoded", "format", f, "width", img.Width(), "height", img.Height())
	return nil
}

// Save encodes img into the file at path, choosing the format from the
// extension. The file is written to a temporary name in the same directory
// and renamed into place once complete.
func Save[P imgkit.Pixel](path string, img *imgkit.Image[P], opts ...Option) (err error) {
	f, err := FormatFromExtension(path)
	if err != nil {
		return err
	}
	if !f.CanEncode() {
		return fmt.Errorf("codec: save %q: %w", path, ErrNoEncoder)
	}

	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	out, err := os.CreateTemp(dir, "."+base+".*")
	if err != nil {
		return fmt.Errorf("codec: could not create temporary file for %q: %w", path, err)
	}
	complete := false
	defer func() {
		if closeErr := out.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("codec: could not close %q: %w", out.Name(), closeErr)
		}
		if complete && err == nil {
			if renameErr := os.Rename(out.Name(), path); renameErr != nil {
				err = fmt.Errorf("codec: could not rename to %q: %w", path, renameErr)
			}
			return
		}
		_ = os.Remove(out.Name())
	}()

	if err = Encode(out, img, f, opts...); err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("codec: could not flush %q: %w", out.Name(), err)
	}
	complete = true
	return nil
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
