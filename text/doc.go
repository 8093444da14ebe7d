// Package text draws strings into imgkit images.
//
// Glyph outlines are parsed and rasterized by golang.org/x/image/font;
// this package only walks the glyphs of a string and feeds their coverage
// masks to [imgkit.Image.PlotCoverage], so text accepts the same fills and
// overlay modes as shapes.
//
// Any [font.Face] works. [GoRegular] loads the Go Regular TrueType font at
// a given size and [Basic] returns a fixed-size bitmap face that needs no
// parsing.
//
// Example:
//
//	face, err := text.GoRegular(32)
//	if err != nil {
//	    return err
//	}
//	defer face.Close()
//
//	err = text.Draw(img, face, 20, 60, "Hello", imgkit.Solid(imgkit.Black), imgkit.OverlayBlend)
package text
