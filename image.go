package figures

import (
	"fmt"
	"image"
	"image/draw"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// FormatSVG is the vector output format. Every other format is rasterized.
const FormatSVG = "svg"

// rasterFormats maps the supported raster formats onto their encoders.
var rasterFormats = map[string]imaging.Format{
	"png":  imaging.PNG,
	"jpg":  imaging.JPEG,
	"jpeg": imaging.JPEG,
	"bmp":  imaging.BMP,
	"gif":  imaging.GIF,
	"tif":  imaging.TIFF,
	"tiff": imaging.TIFF,
}

// Formats lists the accepted output formats.
func Formats() []string {
	return []string{"png", "jpg", "jpeg", "bmp", "gif", "tif", "tiff", FormatSVG}
}

// normalizeFormat lowercases the format and strips a leading dot.
// The empty format defaults to png.
func normalizeFormat(format string) (string, error) {
	format = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(format)), ".")
	if format == "" {
		return "png", nil
	}
	if format == FormatSVG {
		return format, nil
	}
	if _, ok := rasterFormats[format]; ok {
		return format, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
}

// formatOf deduces the output format from the writer. Files are
// encoded by their extension, anything else as png.
func formatOf(w io.Writer) (string, error) {
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return normalizeFormat(filepath.Ext(f.Name()))
	}
	return "png", nil
}

// encodeImg encodes a rendered image to a destination of type io.Writer.
func encodeImg(w io.Writer, img image.Image, format string) error {
	f, ok := rasterFormats[format]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return imaging.Encode(w, img, f, imaging.JPEGQuality(100))
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
