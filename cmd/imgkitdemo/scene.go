package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/gogpu/imgkit"
	"github.com/gogpu/imgkit/text"
	"gopkg.in/yaml.v3"
)

var errUnknownValue = errors.New("unknown value")

// Vec is a point or size written as a two element YAML sequence.
type Vec [2]float64

func (v Vec) pt() imgkit.Point { return imgkit.Pt(v[0], v[1]) }

// Scene describes an image and the shapes drawn into it, in order.
type Scene struct {
	Width      int         `yaml:"width"`
	Height     int         `yaml:"height"`
	Background string      `yaml:"background"`
	Antialias  bool        `yaml:"antialias"`
	Overlay    string      `yaml:"overlay"`
	Workers    int         `yaml:"workers"`
	Shapes     []ShapeSpec `yaml:"shapes"`
}

// ShapeSpec is one shape. Which fields apply depends on Kind: rectangle,
// ellipse, circle, line, polygon, regular or text.
type ShapeSpec struct {
	Kind         string      `yaml:"kind"`
	At           Vec         `yaml:"at"`
	Size         Vec         `yaml:"size"`
	Center       Vec         `yaml:"center"`
	Radius       float64     `yaml:"radius"`
	Radii        Vec         `yaml:"radii"`
	From         Vec         `yaml:"from"`
	To           Vec         `yaml:"to"`
	Width        float64     `yaml:"width"`
	Cap          string      `yaml:"cap"`
	Position     string      `yaml:"position"`
	Points       []Vec       `yaml:"points"`
	Rule         string      `yaml:"rule"`
	Sides        int         `yaml:"sides"`
	Rotation     float64     `yaml:"rotation"`
	VertexRadius float64     `yaml:"vertex_radius"`
	Text         string      `yaml:"text"`
	FontSize     float64     `yaml:"font_size"`
	Fill         *FillSpec   `yaml:"fill"`
	Border       *BorderSpec `yaml:"border"`
	Overlay      string      `yaml:"overlay"`
	Antialias    *bool       `yaml:"antialias"`
}

// FillSpec is a solid color or a gradient.
type FillSpec struct {
	Color    string   `yaml:"color"`
	Gradient string   `yaml:"gradient"`
	Colors   []string `yaml:"colors"`
	Angle    float64  `yaml:"angle"`
	Blend    string   `yaml:"blend"`
}

// BorderSpec is a FillSpec with a width and position.
type BorderSpec struct {
	FillSpec `yaml:",inline"`
	Width    float64 `yaml:"width"`
	Position string  `yaml:"position"`
}

// DefaultScene returns the settings used for fields a scene file omits.
func DefaultScene() Scene {
	return Scene{
		Width:      512,
		Height:     512,
		Background: "#ffffff",
		Antialias:  true,
		Overlay:    "blend",
	}
}

// LoadScene reads a YAML scene file.
func LoadScene(path string) (Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scene{}, err
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene on top of DefaultScene.
func ParseScene(data []byte) (Scene, error) {
	s := DefaultScene()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("invalid scene: %w", err)
	}
	return s, nil
}

// Render draws the scene into a new image.
func Render(s Scene) (*imgkit.Image[imgkit.Rgba], error) {
	bg, err := imgkit.ParseRgba(s.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}
	mode, err := parseOverlay(s.Overlay)
	if err != nil {
		return nil, err
	}
	img, err := imgkit.New(s.Width, s.Height, bg)
	if err != nil {
		return nil, err
	}
	img.SetOverlayMode(mode)

	var opts []imgkit.DrawOption
	if s.Workers != 0 {
		opts = append(opts, imgkit.WithWorkers(s.Workers))
	}

	for i, spec := range s.Shapes {
		if err := spec.draw(img, s.Antialias, opts); err != nil {
			return nil, fmt.Errorf("shape %d (%s): %w", i, spec.Kind, err)
		}
	}
	return img, nil
}

func (spec ShapeSpec) draw(img *imgkit.Image[imgkit.Rgba], aa bool, opts []imgkit.DrawOption) error {
	if spec.Antialias != nil {
		aa = *spec.Antialias
	}
	fill, err := spec.Fill.build()
	if err != nil {
		return err
	}
	border, err := spec.Border.build()
	if err != nil {
		return err
	}

	var shape imgkit.Shape[imgkit.Rgba]
	switch spec.Kind {
	case "rectangle":
		shape, err = style(imgkit.NewRectangle[imgkit.Rgba]().
			WithPosition(spec.At[0], spec.At[1]).
			WithSize(spec.Size[0], spec.Size[1]), spec, fill, border, aa)
	case "ellipse":
		shape, err = style(imgkit.NewEllipse[imgkit.Rgba]().
			WithCenter(spec.Center[0], spec.Center[1]).
			WithRadii(spec.Radii[0], spec.Radii[1]), spec, fill, border, aa)
	case "circle":
		shape, err = style(imgkit.Circle[imgkit.Rgba](spec.Center.pt(), spec.Radius), spec, fill, border, aa)
	case "polygon", "regular":
		var p *imgkit.Polygon[imgkit.Rgba]
		if spec.Kind == "regular" {
			p = imgkit.RegularPolygonRotated[imgkit.Rgba](spec.Sides, spec.Center.pt(), spec.Radius,
				spec.Rotation*math.Pi/180)
		} else {
			p = imgkit.NewPolygon[imgkit.Rgba]()
			for _, v := range spec.Points {
				p.WithVertex(v[0], v[1])
			}
		}
		rule, ruleErr := parseRule(spec.Rule)
		if ruleErr != nil {
			return ruleErr
		}
		shape, err = style(p.WithFillRule(rule).WithVertexRadius(spec.VertexRadius), spec, fill, border, aa)
	case "line":
		shape, err = spec.line(fill, aa)
	case "text":
		return spec.text(img, fill)
	default:
		return fmt.Errorf("kind %q: %w", spec.Kind, errUnknownValue)
	}
	if err != nil {
		return err
	}
	return img.Draw(shape, opts...)
}

func (spec ShapeSpec) line(fill imgkit.Fill[imgkit.Rgba], aa bool) (imgkit.Shape[imgkit.Rgba], error) {
	lc := imgkit.CapButt
	switch spec.Cap {
	case "", "butt":
	case "round":
		lc = imgkit.CapRound
	default:
		return nil, fmt.Errorf("cap %q: %w", spec.Cap, errUnknownValue)
	}
	pos := imgkit.BorderCenter
	if spec.Position != "" {
		var err error
		if pos, err = parsePosition(spec.Position); err != nil {
			return nil, err
		}
	}
	l := imgkit.NewLine[imgkit.Rgba](spec.From.pt(), spec.To.pt()).
		WithWidth(spec.Width).
		WithCap(lc).
		WithPosition(pos).
		WithAntialias(aa)
	if fill != nil {
		l.WithFill(fill)
	}
	if spec.Overlay != "" {
		mode, err := parseOverlay(spec.Overlay)
		if err != nil {
			return nil, err
		}
		l.WithOverlayMode(mode)
	}
	return l, nil
}

func (spec ShapeSpec) text(img *imgkit.Image[imgkit.Rgba], fill imgkit.Fill[imgkit.Rgba]) error {
	size := spec.FontSize
	if size == 0 {
		size = 16
	}
	face, err := text.GoRegular(size)
	if err != nil {
		return err
	}
	defer face.Close()

	mode := img.OverlayMode()
	if spec.Overlay != "" {
		if mode, err = parseOverlay(spec.Overlay); err != nil {
			return err
		}
	}
	if fill == nil {
		fill = imgkit.Solid(imgkit.Black)
	}
	return text.Draw(img, face, spec.At[0], spec.At[1], spec.Text, fill, mode)
}

// styled is implemented by the closed shapes.
type styled[S any] interface {
	imgkit.Shape[imgkit.Rgba]
	WithFill(imgkit.Fill[imgkit.Rgba]) S
	WithBorder(*imgkit.Border[imgkit.Rgba]) S
	WithAntialias(bool) S
	WithOverlayMode(imgkit.OverlayMode) S
}

func style[S styled[S]](s S, spec ShapeSpec, fill imgkit.Fill[imgkit.Rgba], border *imgkit.Border[imgkit.Rgba],
	aa bool) (imgkit.Shape[imgkit.Rgba], error) {
	if fill != nil {
		s.WithFill(fill)
	}
	if border != nil {
		s.WithBorder(border)
	}
	s.WithAntialias(aa)
	if spec.Overlay != "" {
		mode, err := parseOverlay(spec.Overlay)
		if err != nil {
			return nil, err
		}
		s.WithOverlayMode(mode)
	}
	return s, nil
}

func (f *FillSpec) build() (imgkit.Fill[imgkit.Rgba], error) {
	if f == nil {
		return nil, nil
	}
	if f.Gradient == "" {
		c, err := imgkit.ParseRgba(f.Color)
		if err != nil {
			return nil, fmt.Errorf("fill: %w", err)
		}
		return imgkit.Solid(c), nil
	}

	colors := make([]imgkit.Rgba, len(f.Colors))
	for i, s := range f.Colors {
		c, err := imgkit.ParseRgba(s)
		if err != nil {
			return nil, fmt.Errorf("gradient color %d: %w", i, err)
		}
		colors[i] = c
	}
	blend, err := parseBlend(f.Blend)
	if err != nil {
		return nil, err
	}

	switch f.Gradient {
	case "linear":
		g := imgkit.NewLinearGradient[imgkit.Rgba]().WithAngleDegrees(f.Angle).WithBlendMode(blend)
		for _, c := range colors {
			g.WithColor(c)
		}
		return g, nil
	case "radial":
		g := imgkit.NewRadialGradient[imgkit.Rgba]().WithBlendMode(blend)
		for _, c := range colors {
			g.WithColor(c)
		}
		return g, nil
	case "conic":
		g := imgkit.NewConicGradient[imgkit.Rgba]().WithStartAngle(f.Angle * math.Pi / 180).WithBlendMode(blend)
		for _, c := range colors {
			g.WithColor(c)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("gradient %q: %w", f.Gradient, errUnknownValue)
	}
}

func (b *BorderSpec) build() (*imgkit.Border[imgkit.Rgba], error) {
	if b == nil {
		return nil, nil
	}
	fill, err := b.FillSpec.build()
	if err != nil {
		return nil, err
	}
	pos, err := parsePosition(b.Position)
	if err != nil {
		return nil, err
	}
	return imgkit.NewBorder(fill, b.Width).WithPosition(pos), nil
}

func parseOverlay(s string) (imgkit.OverlayMode, error) {
	switch strings.ToLower(s) {
	case "", "replace":
		return imgkit.OverlayReplace, nil
	case "blend":
		return imgkit.OverlayBlend, nil
	}
	return 0, fmt.Errorf("overlay %q: %w", s, errUnknownValue)
}

func parsePosition(s string) (imgkit.BorderPosition, error) {
	for _, p := range []imgkit.BorderPosition{imgkit.BorderOutset, imgkit.BorderInset, imgkit.BorderCenter} {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	if s == "" {
		return imgkit.BorderOutset, nil
	}
	return 0, fmt.Errorf("position %q: %w", s, errUnknownValue)
}

func parseRule(s string) (imgkit.FillRule, error) {
	switch strings.ToLower(s) {
	case "", "evenodd":
		return imgkit.FillEvenOdd, nil
	case "nonzero":
		return imgkit.FillNonZero, nil
	}
	return 0, fmt.Errorf("fill rule %q: %w", s, errUnknownValue)
}

func parseBlend(s string) (imgkit.BlendMode, error) {
	switch strings.ToLower(s) {
	case "", "linear":
		return imgkit.BlendLinearRGB, nil
	case "rgb":
		return imgkit.BlendRGB, nil
	case "oklab":
		return imgkit.BlendOklab, nil
	case "hsv":
		return imgkit.BlendHSV, nil
	}
	return 0, fmt.Errorf("blend %q: %w", s, errUnknownValue)
}
