package figures

import (
	"image/color"
	"math"

	"github.com/esimov/figures/utils"
)

// Pen is the stateful drawing context: it keeps the current position, the heading,
// the pen state and the ambient style, and translates the relative movements into
// polylines, filled polygons, dots and labels sent to the underlying Canvas.
//
// A Pen is not safe for concurrent use.
type Pen struct {
	canvas  Canvas
	pos     Point
	heading float64 // degrees, counter-clockwise from east
	down    bool
	style   Style

	// run collects the vertices of the polyline being drawn.
	run []Point

	// fill is the fill path, nil when no fill is in progress. The operations
	// issued while filling are held back in pending, so that the filled polygon
	// ends up underneath them.
	fill    []Point
	pending *Recording
}

// NewPen creates a pen at the origin, heading east, with the pen down,
// drawing in black with a width of 1.
func NewPen(c Canvas) *Pen {
	return &Pen{
		canvas: c,
		down:   true,
		style: Style{
			PenColor:  color.NRGBA{A: 0xff},
			FillColor: color.NRGBA{A: 0xff},
			Width:     1,
		},
	}
}

// Pos returns the current pen position.
func (p *Pen) Pos() Point { return p.pos }

// Heading returns the current heading in degrees, in the range [0, 360).
func (p *Pen) Heading() float64 { return p.heading }

// IsDown reports whether moving the pen draws.
func (p *Pen) IsDown() bool { return p.down }

// Filling reports whether a fill path is being collected.
func (p *Pen) Filling() bool { return p.fill != nil }

// PenColor returns the current stroke color.
func (p *Pen) PenColor() color.NRGBA { return p.style.PenColor }

// FillColor returns the current fill color.
func (p *Pen) FillColor() color.NRGBA { return p.style.FillColor }

// Width returns the current stroke width.
func (p *Pen) Width() float64 { return p.style.Width }

// PenUp lifts the pen: subsequent movements don't draw.
func (p *Pen) PenUp() {
	p.flush()
	p.down = false
}

// PenDown lowers the pen: subsequent movements draw.
func (p *Pen) PenDown() {
	p.down = true
}

// SetPenColor sets the stroke, dot and text color.
func (p *Pen) SetPenColor(c color.NRGBA) {
	if c != p.style.PenColor {
		p.flush()
	}
	p.style.PenColor = c
}

// SetFillColor sets the color used by EndFill.
func (p *Pen) SetFillColor(c color.NRGBA) {
	p.style.FillColor = c
}

// SetWidth sets the stroke width.
func (p *Pen) SetWidth(w float64) {
	if w != p.style.Width {
		p.flush()
	}
	p.style.Width = w
}

// SetHeading sets the absolute heading in degrees.
func (p *Pen) SetHeading(deg float64) {
	p.heading = normalizeAngle(deg)
}

// Left turns the pen counter-clockwise.
func (p *Pen) Left(deg float64) {
	p.heading = normalizeAngle(p.heading + deg)
}

// Right turns the pen clockwise.
func (p *Pen) Right(deg float64) {
	p.heading = normalizeAngle(p.heading - deg)
}

// Goto moves the pen to (x, y) in a straight line, drawing if the pen is down.
func (p *Pen) Goto(x, y float64) {
	to := Pt(x, y)
	if p.down {
		if len(p.run) == 0 {
			p.run = append(p.run, p.pos)
		}
		p.run = append(p.run, to)
	}
	if p.fill != nil {
		p.fill = append(p.fill, to)
	}
	p.pos = to
}

// Forward moves the pen by dist units along the current heading.
func (p *Pen) Forward(dist float64) {
	rad := p.heading * math.Pi / 180
	p.Goto(p.pos.X+dist*math.Cos(rad), p.pos.Y+dist*math.Sin(rad))
}

// Circle draws an arc of the given extent (in degrees). The center lies radius
// units left of the pen; a negative radius puts it on the right side and
// traces the arc clockwise. The arc is approximated by straight chords.
func (p *Pen) Circle(radius, extent float64) {
	frac := utils.Abs(extent) / 360
	steps := 1 + int(utils.Clamp(11+utils.Abs(radius)/6, 11, 59)*frac)
	p.CircleSteps(radius, extent, steps)
}

// CircleSteps is like Circle with an explicit number of chords.
func (p *Pen) CircleSteps(radius, extent float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	w := extent / float64(steps)
	w2 := w / 2
	l := 2 * radius * math.Sin(w2*math.Pi/180)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	p.Left(w2)
	for i := 0; i < steps; i++ {
		p.Forward(l)
		p.Left(w)
	}
	p.Left(-w2)
}

// BeginFill starts collecting the fill path at the current position.
func (p *Pen) BeginFill() {
	p.flush()
	if p.pending != nil {
		// A fill already in progress is abandoned without painting.
		p.pending.Playback(p.canvas)
	}
	p.fill = []Point{p.pos}
	p.pending = NewRecording()
}

// EndFill paints the polygon collected since BeginFill with the fill color,
// underneath everything drawn in the meantime.
func (p *Pen) EndFill() {
	if p.fill == nil {
		return
	}
	p.flush()
	if len(p.fill) > 2 {
		p.canvas.Fill(p.fill, p.style.FillColor)
	}
	p.pending.Playback(p.canvas)
	p.fill, p.pending = nil, nil
}

// Dot stamps a disc of the given diameter in the pen color at the current position.
// A non-positive diameter selects max(width+4, 2*width).
func (p *Pen) Dot(diameter float64) {
	p.flush()
	if diameter <= 0 {
		diameter = utils.Max(p.style.Width+4, 2*p.style.Width)
	}
	p.out().Dot(p.pos, diameter, p.style.PenColor)
}

// Write places the text at the current position in the pen color.
func (p *Pen) Write(text string, align Align, font Font) {
	p.flush()
	p.out().Text(p.pos, text, align, font, p.style.PenColor)
}

// Flush emits the polyline being drawn. It must be called once the drawing is done.
func (p *Pen) Flush() {
	p.flush()
}

func (p *Pen) flush() {
	if len(p.run) > 1 {
		p.out().Stroke(p.run, p.style.PenColor, p.style.Width)
	}
	p.run = nil
}

// out returns the canvas the next operation goes to.
func (p *Pen) out() Canvas {
	if p.pending != nil {
		return p.pending
	}
	return p.canvas
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
