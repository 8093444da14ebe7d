package imgkit

// DefaultParallelThreshold is the covered area, in pixels, from which Draw
// splits rows across worker goroutines.
const DefaultParallelThreshold = 256 * 256

// DrawOption configures a single Draw call.
//
// Example:
//
//	// Blend this shape even though the image replaces by default
//	err := img.Draw(circle, imgkit.WithOverlay(imgkit.OverlayBlend))
//
//	// Force sequential rasterization
//	err = img.Draw(circle, imgkit.WithWorkers(1))
type DrawOption func(*drawOptions)

// drawOptions holds the resolved configuration of a Draw call.
type drawOptions struct {
	overlay   *OverlayMode
	workers   int
	threshold int
}

// defaultDrawOptions returns the options used when none are given.
func defaultDrawOptions() drawOptions {
	return drawOptions{
		workers:   0, // pool size
		threshold: DefaultParallelThreshold,
	}
}

// WithOverlay sets the overlay mode for this call. It takes precedence over
// the shape's WithOverlayMode and the image's default mode.
func WithOverlay(m OverlayMode) DrawOption {
	return func(o *drawOptions) {
		o.overlay = &m
	}
}

// WithWorkers caps the number of goroutines used to rasterize rows.
// One or less draws on the calling goroutine. Zero, the default, uses the
// size of the shared worker pool.
func WithWorkers(n int) DrawOption {
	return func(o *drawOptions) {
		o.workers = n
	}
}

// WithParallelThreshold sets the covered area, in pixels, below which rows
// are drawn on the calling goroutine.
func WithParallelThreshold(pixels int) DrawOption {
	return func(o *drawOptions) {
		o.threshold = pixels
	}
}
