package figures

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVG is a Canvas writing vector markup. Paths keep the fractional
// coordinates, labels are placed on whole pixels.
type SVG struct {
	canvas *svg.SVG
	width  int
	height int
	closed bool
}

var _ Canvas = (*SVG)(nil)

// NewSVG starts a width×height document on w, filled with the background color.
// Close must be called to terminate the document.
func NewSVG(w io.Writer, width, height int, background color.NRGBA, title string) (*SVG, error) {
	if width <= 0 || height <= 0 {
		return nil, invalidf("svg size must be positive, got %dx%d", width, height)
	}
	s := &SVG{
		canvas: svg.New(w),
		width:  width,
		height: height,
	}
	s.canvas.Start(width, height)
	if title != "" {
		s.canvas.Title(title)
	}
	s.canvas.Rect(0, 0, width, height, "fill:"+svgColor(background))
	return s, nil
}

func (s *SVG) device(p Point) (float64, float64) {
	return float64(s.width)/2 + p.X, float64(s.height)/2 - p.Y
}

func (s *SVG) pathData(pts []Point, closed bool) string {
	var b strings.Builder
	for i, pt := range pts {
		x, y := s.device(pt)
		if i == 0 {
			b.WriteByte('M')
		} else {
			b.WriteString(" L")
		}
		b.WriteString(num(x))
		b.WriteByte(',')
		b.WriteString(num(y))
	}
	if closed {
		b.WriteString(" Z")
	}
	return b.String()
}

// Stroke implements Canvas.
func (s *SVG) Stroke(path []Point, col color.NRGBA, width float64) {
	if len(path) < 2 {
		return
	}
	s.canvas.Path(s.pathData(path, false), fmt.Sprintf(
		"fill:none;stroke:%s;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round",
		svgColor(col), num(width),
	))
}

// Fill implements Canvas.
func (s *SVG) Fill(path []Point, col color.NRGBA) {
	if len(path) < 3 {
		return
	}
	s.canvas.Path(s.pathData(path, true), fmt.Sprintf("fill:%s;fill-rule:evenodd;stroke:none", svgColor(col)))
}

// Dot implements Canvas. The disc is written as two arcs to keep sub-pixel radii.
func (s *SVG) Dot(center Point, diameter float64, col color.NRGBA) {
	x, y := s.device(center)
	r := diameter / 2
	d := fmt.Sprintf("M%s,%s a%s,%s 0 1,0 %s,0 a%s,%s 0 1,0 %s,0 Z",
		num(x-r), num(y), num(r), num(r), num(2*r), num(r), num(r), num(-2*r))
	s.canvas.Path(d, "fill:"+svgColor(col))
}

// Text implements Canvas.
func (s *SVG) Text(at Point, str string, align Align, font Font, col color.NRGBA) {
	x, y := s.device(at)
	anchor := "start"
	switch align {
	case AlignCenter:
		anchor = "middle"
	case AlignRight:
		anchor = "end"
	}
	size := font.Size
	if size <= 0 {
		size = DefaultFont.Size
	}
	style := fmt.Sprintf("font-family:%s;font-size:%spt;text-anchor:%s;fill:%s",
		font.Family, num(size), anchor, svgColor(col))
	switch strings.ToLower(font.Style) {
	case "bold":
		style += ";font-weight:bold"
	case "italic":
		style += ";font-style:italic"
	}
	s.canvas.Text(int(math.Round(x)), int(math.Round(y)), str, style)
}

// Close terminates the document. Further calls are no-ops.
func (s *SVG) Close() error {
	if !s.closed {
		s.canvas.End()
		s.closed = true
	}
	return nil
}

// svgColor formats c as #rrggbb, or rgba() when it is translucent.
func svgColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, num(float64(c.A)/255))
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
