// Package codec reads and writes imgkit images with the standard library
// and golang.org/x/image codecs.
//
// Decoding registers PNG, JPEG, GIF, BMP, TIFF and WebP. Encoding supports
// every format except WebP, which has no encoder in x/image.
//
// Decoded pixels enter imgkit through [imgkit.FromRawParts] and
// [imgkit.FromRawPartsPaletted], so the decoded color type is preserved:
// a grayscale PNG decodes to Dynamic pixels of the L variant, a GIF to an
// index buffer plus palette. Encoding goes the other way through
// [imgkit.Image.ToStd].
//
// Example:
//
//	f, err := os.Open("photo.jpg")
//	if err != nil {
//	    return err
//	}
//	defer f.Close()
//
//	img, name, err := codec.DecodeAs[imgkit.Rgba](f)
//	if err != nil {
//	    return err
//	}
//	// name == "jpeg"
package codec
