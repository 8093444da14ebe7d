// Package imgkit provides generic in-memory images and a 2D shape
// rasterizer for Go.
//
// # Overview
//
// imgkit is a pure Go imaging core. An [Image] is a rectangular buffer of
// pixels of one format, chosen at compile time through a type parameter:
// [BitPixel], [L], [Rgb], [Rgba], the runtime-tagged [Dynamic], or the
// paletted [PalettedRgb] and [PalettedRgba]. Shapes are drawn into images
// with solid, gradient or image fills.
//
// # Quick Start
//
//	import "github.com/gogpu/imgkit"
//
//	img, err := imgkit.New(256, 256, imgkit.White)
//	if err != nil {
//	    return err
//	}
//
//	sky := imgkit.NewLinearGradient[imgkit.Rgba]().
//	    WithAngleDegrees(90).
//	    WithColor(imgkit.MustParseRgba("#87ceeb")).
//	    WithColor(imgkit.MustParseRgba("#ffffff"))
//
//	err = img.Draw(imgkit.Circle[imgkit.Rgba](imgkit.Pt(128, 128), 96).
//	    WithFill(sky).
//	    WithBorder(imgkit.NewBorder(imgkit.Solid(imgkit.Black), 4)).
//	    WithAntialias(true))
//
// # Pixel Formats
//
// Every format has a [Format] descriptor returned by [FormatOf]. It decodes
// pixels from bytes and palette entries, converts between formats and
// composites one pixel onto another. Conversions to gray use the weights
// 0.299, 0.587 and 0.114; conversions to [BitPixel] threshold at 127.
//
// Paletted pixels hold an index and a reference to the palette owned by
// their image. [Convert], [FlattenPalette] and [FlattenPaletteRgba] resolve
// them to true color.
//
// # Shapes
//
// [Rectangle], [Ellipse], [Line] and [Polygon] are configured by chaining
// With methods and validated when drawn. Closed shapes take an optional
// [Border], drawn as a ring after the fill.
//
// # Coordinate System
//
//   - Origin (0,0) at the top-left corner of the top-left pixel
//   - Pixel (x, y) covers [x, x+1) × [y, y+1)
//   - Y increases down
//   - Angles in radians, 0 is right, increasing clockwise on screen
//
// Line end points name pixels and are drawn through pixel centers.
//
// # Compositing
//
// [OverlayReplace] writes the fill color with its alpha scaled by
// coverage. [OverlayBlend] composites with the "over" operator. Formats
// without alpha mix by coverage instead.
//
// # Concurrency
//
// Large shapes are rasterized on a shared worker pool, one band of rows
// per worker. The result does not depend on the number of workers. An
// image must not be mutated from more than one goroutine at a time.
//
// # Adapters
//
// Codecs, resampling, palette quantization and text are delegated to
// ecosystem libraries in the codec, resize, quantize and text
// sub-packages.
package imgkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
