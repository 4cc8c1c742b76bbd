package figures

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

// pointToPixel converts typographic points to pixels at 96 DPI.
const pointToPixel = 96.0 / 72.0

var (
	fontsOnce sync.Once
	fonts     map[string]*text.FontSource
	fontsErr  error
)

// loadFonts parses the embedded Go fonts once.
func loadFonts() (map[string]*text.FontSource, error) {
	fontsOnce.Do(func() {
		data := map[string][]byte{
			"normal": goregular.TTF,
			"bold":   gobold.TTF,
			"italic": goitalic.TTF,
		}
		fonts = make(map[string]*text.FontSource, len(data))
		for style, ttf := range data {
			src, err := text.NewFontSource(ttf)
			if err != nil {
				fontsErr = fmt.Errorf("could not load the %s font: %w", style, err)
				return
			}
			fonts[style] = src
		}
	})
	return fonts, fontsErr
}

// Raster is a Canvas painting into an RGBA pixel buffer.
// The world origin is mapped to the center of the image and the y axis is flipped.
type Raster struct {
	dc     *gg.Context
	width  int
	height int
	fonts  map[string]*text.FontSource
	err    error
}

var _ Canvas = (*Raster)(nil)

// NewRaster creates a width×height raster cleared with the background color.
func NewRaster(width, height int, background color.NRGBA) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("raster size must be positive, got %dx%d", width, height)
	}
	fs, err := loadFonts()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}

	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.FromColor(background))
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetFillRule(gg.FillRuleEvenOdd)

	return &Raster{
		dc:     dc,
		width:  width,
		height: height,
		fonts:  fs,
	}, nil
}

// device maps a world point onto pixel coordinates.
func (r *Raster) device(p Point) (float64, float64) {
	return float64(r.width)/2 + p.X, float64(r.height)/2 - p.Y
}

func (r *Raster) path(pts []Point) {
	for i, pt := range pts {
		x, y := r.device(pt)
		if i == 0 {
			r.dc.MoveTo(x, y)
			continue
		}
		r.dc.LineTo(x, y)
	}
}

func (r *Raster) fail(op string, err error) {
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("raster %s: %w", op, err)
	}
}

// Stroke implements Canvas.
func (r *Raster) Stroke(path []Point, col color.NRGBA, width float64) {
	if len(path) < 2 {
		return
	}
	r.dc.SetColor(col)
	r.dc.SetLineWidth(width)
	r.path(path)
	r.fail("stroke", r.dc.Stroke())
}

// Fill implements Canvas.
func (r *Raster) Fill(path []Point, col color.NRGBA) {
	if len(path) < 3 {
		return
	}
	r.dc.SetColor(col)
	r.path(path)
	r.dc.ClosePath()
	r.fail("fill", r.dc.Fill())
}

// Dot implements Canvas.
func (r *Raster) Dot(center Point, diameter float64, col color.NRGBA) {
	x, y := r.device(center)
	r.dc.SetColor(col)
	r.dc.DrawCircle(x, y, diameter/2)
	r.fail("dot", r.dc.Fill())
}

// Text implements Canvas. The label's bottom edge sits on the anchor point.
func (r *Raster) Text(at Point, s string, align Align, font Font, col color.NRGBA) {
	src, ok := r.fonts[strings.ToLower(font.Style)]
	if !ok {
		src = r.fonts["normal"]
	}
	size := font.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	face := src.Face(size * pointToPixel)
	r.dc.SetFont(face)
	r.dc.SetColor(col)

	w, _ := r.dc.MeasureString(s)
	x, y := r.device(at)
	x -= w * align.anchor()
	y -= face.Metrics().Descent
	r.dc.DrawString(s, x, y)
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	r.fail("flush", r.dc.FlushGPU())
	return r.dc.Image()
}

// Err returns the first rendering failure, if any.
func (r *Raster) Err() error {
	return r.err
}

// Close releases the drawing context.
func (r *Raster) Close() error {
	return r.dc.Close()
}
