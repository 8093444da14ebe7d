package imgkit

import (
	"fmt"
	"slices"
)

// Fill sets every pixel to p.
func (img *Image[P]) Fill(p P) {
	p = img.format.normalize(p)
	for i := range img.data {
		img.data[i] = p
	}
}

// Invert inverts the color of every pixel, leaving alpha untouched.
// Paletted images invert their palette instead of their indices.
func (img *Image[P]) Invert() {
	if img.palette != nil {
		img.palette.apply(Rgba.Inverted)
		return
	}
	for i, p := range img.data {
		img.data[i] = img.format.Invert(p)
	}
}

// Crop shrinks the image in place to the rectangle from (x0, y0) inclusive
// to (x1, y1) exclusive.
func (img *Image[P]) Crop(x0, y0, x1, y1 int) error {
	if x0 < 0 || y0 < 0 || x1 > img.width || y1 > img.height {
		return fmt.Errorf("crop (%d, %d)-(%d, %d) of %dx%d: %w", x0, y0, x1, y1, img.width, img.height, ErrOutOfBounds)
	}
	w, h := x1-x0, y1-y0
	if err := checkDimensions(w, h); err != nil {
		return err
	}

	data := make([]P, 0, w*h)
	for y := y0; y < y1; y++ {
		data = append(data, img.data[y*img.width+x0:y*img.width+x1]...)
	}
	img.width, img.height, img.data = w, h, data
	return nil
}

// Mirror flips the image horizontally in place.
func (img *Image[P]) Mirror() {
	for y := range img.height {
		slices.Reverse(img.data[y*img.width : (y+1)*img.width])
	}
}

// Flip flips the image vertically in place.
func (img *Image[P]) Flip() {
	for top, bottom := 0, img.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := img.data[top*img.width : (top+1)*img.width]
		b := img.data[bottom*img.width : (bottom+1)*img.width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// Rotate90 rotates the image 90 degrees clockwise in place.
func (img *Image[P]) Rotate90() {
	w, h := img.width, img.height
	data := make([]P, len(img.data))
	for y := range h {
		for x := range w {
			// (x, y) lands on column h-1-y, row x.
			data[x*h+(h-1-y)] = img.data[y*w+x]
		}
	}
	img.width, img.height, img.data = h, w, data
}

// Rotate180 rotates the image by 180 degrees in place.
func (img *Image[P]) Rotate180() {
	slices.Reverse(img.data)
}

// Rotate270 rotates the image 90 degrees counterclockwise in place.
func (img *Image[P]) Rotate270() {
	w, h := img.width, img.height
	data := make([]P, len(img.data))
	for y := range h {
		for x := range w {
			data[(w-1-x)*h+y] = img.data[y*w+x]
		}
	}
	img.width, img.height, img.data = h, w, data
}

// Paste composites src onto img with its top-left corner at (x, y), using
// img's overlay mode. Parts of src outside img are clipped. When mask is not
// nil it must have src's dimensions, and only pixels where it is on are
// pasted.
func (img *Image[P]) Paste(x, y int, src *Image[P], mask *Image[BitPixel]) error {
	if mask != nil && (mask.width != src.width || mask.height != src.height) {
		return fmt.Errorf("paste mask %dx%d for %dx%d source: %w",
			mask.width, mask.height, src.width, src.height, ErrInvalidDimensions)
	}

	for sy := range src.height {
		dy := y + sy
		if dy < 0 || dy >= img.height {
			continue
		}
		for sx := range src.width {
			dx := x + sx
			if dx < 0 || dx >= img.width {
				continue
			}
			si := sy*src.width + sx
			if mask != nil && !mask.data[si] {
				continue
			}
			di := dy*img.width + dx
			img.data[di] = img.format.Overlay(img.data[di], img.format.normalize(src.data[si]), img.overlay, 1)
		}
	}
	return nil
}
