package imgkit

import "fmt"

// BorderPosition places a stroke relative to a shape's outline.
type BorderPosition uint8

const (
	// BorderOutset draws the stroke entirely outside the outline (default).
	BorderOutset BorderPosition = iota
	// BorderInset draws the stroke entirely inside the outline.
	BorderInset
	// BorderCenter straddles the outline, half inside and half outside.
	BorderCenter
)

// String returns the name of the position.
func (p BorderPosition) String() string {
	switch p {
	case BorderOutset:
		return "outset"
	case BorderInset:
		return "inset"
	case BorderCenter:
		return "center"
	default:
		return "unknown"
	}
}

// Border strokes the outline of a closed shape with its own fill. It is
// drawn after the shape's fill, as a ring between two offset outlines.
//
// Ellipse borders grow or shrink the radii, so their width is exact only
// along the axes. Rounded polygon corners keep the same corner radius on
// both sides of the ring, so the stroke is thinner at the corners.
type Border[P Pixel] struct {
	Fill     Fill[P]
	Width    float64
	Position BorderPosition
}

// NewBorder returns an outset border.
func NewBorder[P Pixel](fill Fill[P], width float64) *Border[P] {
	return &Border[P]{Fill: fill, Width: width}
}

// WithPosition sets where the stroke sits relative to the outline.
func (b *Border[P]) WithPosition(p BorderPosition) *Border[P] {
	b.Position = p
	return b
}

func (b *Border[P]) validate() error {
	if b.Fill == nil {
		return fmt.Errorf("border without a fill: %w", ErrInvalidShape)
	}
	if !(b.Width > 0) || !finite(b.Width) {
		return fmt.Errorf("border width %v: %w", b.Width, ErrInvalidShape)
	}
	return nil
}

// offsets returns how far the ring's outer and inner outlines sit from the
// shape's outline.
func (b *Border[P]) offsets() (outer, inner float64) {
	switch b.Position {
	case BorderInset:
		return 0, -b.Width
	case BorderCenter:
		return b.Width / 2, -b.Width / 2
	default:
		return b.Width, 0
	}
}
