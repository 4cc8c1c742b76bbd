package figures

import (
	"image/color"
	"math"
)

// Point is a position in world coordinates: the origin is at the center of the
// drawing surface and the y axis points up.
type Point struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the vector p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Align is the horizontal text alignment relative to the pen position.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// anchor returns the fraction of the text width lying left of the pen.
func (a Align) anchor() float64 {
	switch a {
	case AlignCenter:
		return 0.5
	case AlignRight:
		return 1
	default:
		return 0
	}
}

// Font describes the typeface used by Pen.Write.
// The family is informative only, the glyphs come from the Go font family.
type Font struct {
	Family string  `toml:"family"`
	Size   float64 `toml:"size"`
	Style  string  `toml:"style"` // normal, bold or italic
}

// DefaultFont mirrors the classic ("Arial", 12, "normal") label font.
var DefaultFont = Font{Family: "Arial", Size: 12, Style: "normal"}

// Canvas is the drawing surface consumed by the Pen.
// Coordinates are always world coordinates; the implementations
// are responsible for mapping them onto their own device space.
type Canvas interface {
	// Stroke draws the polyline through the points.
	Stroke(path []Point, col color.NRGBA, width float64)
	// Fill paints the interior of the closed polygon.
	Fill(path []Point, col color.NRGBA)
	// Dot stamps a filled disc.
	Dot(center Point, diameter float64, col color.NRGBA)
	// Text places a label with its bottom edge at the given position.
	Text(at Point, s string, align Align, font Font, col color.NRGBA)
}

// OpKind identifies a recorded canvas operation.
type OpKind int

const (
	OpStroke OpKind = iota
	OpFill
	OpDot
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpStroke:
		return "stroke"
	case OpFill:
		return "fill"
	case OpDot:
		return "dot"
	case OpText:
		return "text"
	}
	return "unknown"
}

// Op is a single recorded canvas operation.
type Op struct {
	Kind  OpKind
	Path  []Point // stroke and fill vertices, or the dot/text position
	Color color.NRGBA
	Width float64 // stroke width or dot diameter
	Text  string
	Align Align
	Font  Font
}

// Recording is a Canvas keeping the operations in memory,
// so they can be played back onto other canvases.
type Recording struct {
	ops []Op
}

var _ Canvas = (*Recording)(nil)

// NewRecording returns an empty recording.
func NewRecording() *Recording {
	return &Recording{}
}

func (r *Recording) Stroke(path []Point, col color.NRGBA, width float64) {
	r.ops = append(r.ops, Op{Kind: OpStroke, Path: clonePath(path), Color: col, Width: width})
}

func (r *Recording) Fill(path []Point, col color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpFill, Path: clonePath(path), Color: col})
}

func (r *Recording) Dot(center Point, diameter float64, col color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpDot, Path: []Point{center}, Color: col, Width: diameter})
}

func (r *Recording) Text(at Point, s string, align Align, font Font, col color.NRGBA) {
	r.ops = append(r.ops, Op{Kind: OpText, Path: []Point{at}, Color: col, Text: s, Align: align, Font: font})
}

// Ops returns the recorded operations in drawing order.
func (r *Recording) Ops() []Op {
	return r.ops
}

// Len returns the number of recorded operations.
func (r *Recording) Len() int {
	return len(r.ops)
}

// Reset drops all the recorded operations.
func (r *Recording) Reset() {
	r.ops = r.ops[:0]
}

// Playback replays the recorded operations onto c.
func (r *Recording) Playback(c Canvas) {
	for _, op := range r.ops {
		switch op.Kind {
		case OpStroke:
			c.Stroke(op.Path, op.Color, op.Width)
		case OpFill:
			c.Fill(op.Path, op.Color)
		case OpDot:
			c.Dot(op.Path[0], op.Width, op.Color)
		case OpText:
			c.Text(op.Path[0], op.Text, op.Align, op.Font, op.Color)
		}
	}
}

// Filter returns the operations of the given kind.
func (r *Recording) Filter(kind OpKind) []Op {
	var res []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			res = append(res, op)
		}
	}
	return res
}

func clonePath(path []Point) []Point {
	return append([]Point(nil), path...)
}
