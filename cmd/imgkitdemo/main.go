// Command imgkitdemo renders YAML scenes, converts images and draws text
// with the imgkit library.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/alecthomas/kong"
	"github.com/gogpu/imgkit"
	"github.com/gogpu/imgkit/codec"
	"github.com/gogpu/imgkit/quantize"
	"github.com/gogpu/imgkit/resize"
	"github.com/gogpu/imgkit/text"
	"github.com/mattn/go-isatty"
)

var errTerminal = errors.New("refusing to write binary image data to a terminal")

// isTerminal reports whether fd is an interactive terminal.
var isTerminal = func(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// Globals are flags shared by every command.
type Globals struct {
	Verbose bool `help:"Log debug output to stderr" short:"v"`
}

type SceneCmd struct {
	File   string `arg:"" help:"YAML scene file" type:"existingfile"`
	Output string `help:"Output file, or - for stdout" short:"o" default:"scene.png"`
	Format string `help:"Format used when writing to stdout" enum:"png,jpeg,gif,bmp,tiff" default:"png"`
}

func (c *SceneCmd) Run(g *Globals) error {
	scene, err := LoadScene(c.File)
	if err != nil {
		return fmt.Errorf("could not load scene %q: %w", c.File, err)
	}
	img, err := Render(scene)
	if err != nil {
		return fmt.Errorf("could not render %q: %w", c.File, err)
	}
	slog.Info("rendered", "file", c.File, "shapes", len(scene.Shapes), "width", scene.Width, "height", scene.Height)
	return writeImage(c.Output, c.Format, img)
}

type ConvertCmd struct {
	Input   string `arg:"" help:"Source image" type:"existingfile"`
	Output  string `arg:"" help:"Destination image, format chosen by extension"`
	Width   int    `help:"Target width, 0 keeps the aspect ratio" group:"resize"`
	Height  int    `help:"Target height, 0 keeps the aspect ratio" group:"resize"`
	Filter  string `help:"Resampling filter" enum:"nearest,box,bilinear,hamming,catmullrom,mitchell,lanczos,approxbilinear,tile" default:"lanczos" group:"resize"`
	Colors  int    `help:"Reduce to at most this many palette colors, 0 keeps true color" group:"palette"`
	Dither  bool   `help:"Apply Floyd-Steinberg dithering" default:"false" group:"palette"`
	Quality int    `help:"JPEG quality" default:"90"`
}

func (c *ConvertCmd) Validate(kctx *kong.Context) error {
	switch {
	case c.Width < 0:
		return fmt.Errorf("invalid resize width: %d", c.Width)
	case c.Height < 0:
		return fmt.Errorf("invalid resize height: %d", c.Height)
	case c.Colors < 0 || c.Colors > quantize.MaxColors:
		return fmt.Errorf("invalid color count: %d", c.Colors)
	}
	f, err := codec.FormatFromExtension(c.Output)
	if err != nil {
		return err
	}
	if !f.CanEncode() {
		return fmt.Errorf("cannot write %v files", f)
	}
	return nil
}

func (c *ConvertCmd) Run(g *Globals) error {
	logger := slog.Default().With("file", c.Input)

	src, format, err := codec.Load(c.Input)
	if err != nil {
		return err
	}
	logger.Info("loaded", "format", format, "width", src.Width(), "height", src.Height(), "color_type", src.ColorType())

	img := imgkit.Convert[imgkit.Rgba](src)
	if c.Width != 0 || c.Height != 0 {
		filter, err := resize.ParseFilter(c.Filter)
		if err != nil {
			return err
		}
		if img, err = resize.Resize(img, c.Width, c.Height, filter); err != nil {
			return fmt.Errorf("could not resize: %w", err)
		}
		logger.Info("resized", "width", img.Width(), "height", img.Height(), "filter", filter)
	}

	if c.Colors > 0 {
		paletted, err := quantize.Quantize(img, quantize.Options{MaxColors: c.Colors, Dither: c.Dither})
		if err != nil {
			return fmt.Errorf("could not quantize: %w", err)
		}
		logger.Info("quantized", "colors", paletted.Palette().Len())
		return codec.Save(c.Output, paletted)
	}
	return codec.Save(c.Output, img, codec.WithQuality(c.Quality))
}

type TextCmd struct {
	Text       string  `arg:"" help:"Text to render"`
	Output     string  `help:"Output file, or - for stdout" short:"o" default:"text.png"`
	Format     string  `help:"Format used when writing to stdout" enum:"png,jpeg,gif,bmp,tiff" default:"png"`
	Size       float64 `help:"Font size in pixels" default:"32"`
	Color      string  `help:"Text color" default:"#000000"`
	Background string  `help:"Background color" default:"#ffffff"`
	Padding    int     `help:"Margin around the text" default:"8"`
}

func (c *TextCmd) Run(g *Globals) error {
	fg, err := imgkit.ParseRgba(c.Color)
	if err != nil {
		return fmt.Errorf("invalid text color: %w", err)
	}
	bg, err := imgkit.ParseRgba(c.Background)
	if err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}
	face, err := text.GoRegular(c.Size)
	if err != nil {
		return err
	}
	defer face.Close()

	m := text.Measure(face, c.Text)
	pad := float64(c.Padding)
	w := int(math.Ceil(max(m.Advance, m.Bounds.X1)+2*pad)) + 1
	h := int(math.Ceil(m.Bounds.Height()+2*pad)) + 1
	img, err := imgkit.New(w, h, bg)
	if err != nil {
		return err
	}
	if err := text.Draw(img, face, pad, pad-m.Bounds.Y0, c.Text, imgkit.Solid(fg), imgkit.OverlayBlend); err != nil {
		return err
	}
	return writeImage(c.Output, c.Format, img)
}

type InfoCmd struct {
	Files []string `arg:"" help:"Images to inspect" type:"existingfile"`
}

func (c *InfoCmd) Run(g *Globals) error {
	for _, name := range c.Files {
		img, format, err := codec.Load(name)
		if err != nil {
			slog.Error("could not read image", "file", name, "error", err)
			continue
		}
		colors := 0
		if p := img.Palette(); p != nil {
			colors = p.Len()
		}
		fmt.Printf("%s: %v %dx%d %v %d-bit", name, format, img.Width(), img.Height(), img.ColorType(), img.BitDepth())
		if colors > 0 {
			fmt.Printf(" %d colors", colors)
		}
		fmt.Println()
	}
	return nil
}

var cli struct {
	Globals

	Scene   SceneCmd   `cmd:"" help:"Render a YAML scene file"`
	Convert ConvertCmd `cmd:"" help:"Resize, quantize and re-encode an image"`
	Text    TextCmd    `cmd:"" help:"Render text to an image"`
	Info    InfoCmd    `cmd:"" help:"Print the format and size of images"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("imgkitdemo"),
		kong.Description("Demonstrates the imgkit imaging library."),
		kong.UsageOnError(),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	imgkit.SetLogger(logger)

	kctx.FatalIfErrorf(kctx.Run(&cli.Globals))
}

// writeImage saves img to path, or encodes it to stdout when path is "-".
func writeImage[P imgkit.Pixel](path, format string, img *imgkit.Image[P]) error {
	if path != "-" {
		if err := codec.Save(path, img); err != nil {
			return err
		}
		slog.Info("saved", "file", path)
		return nil
	}

	if isTerminal(os.Stdout.Fd()) {
		return errTerminal
	}
	f, err := codec.ParseFormat(format)
	if err != nil {
		return err
	}
	return codec.Encode(os.Stdout, img, f)
}
