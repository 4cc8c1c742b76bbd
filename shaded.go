package figures

import (
	"math"
)

// RhombusOptions configures the double rhombuses.
type RhombusOptions struct {
	Edge    float64 `toml:"edge"`
	Outline string  `toml:"outline"`
	Fill    string  `toml:"fill"`
}

// DefaultRhombusOptions returns white rhombuses with a black contour.
func DefaultRhombusOptions() RhombusOptions {
	return RhombusOptions{Edge: 70, Outline: "black", Fill: "white"}
}

// DoubleRhombuses draws two squares rotated by 45°, side by side. The left
// one has its leftmost corner at (x-gap, y), where gap is half of the
// horizontal diagonal, and the two meet at (x+gap, y).
func DoubleRhombuses(p *Pen, x, y float64, opt RhombusOptions) error {
	if err := positive("rhombuses", param{"edge", opt.Edge}); err != nil {
		return err
	}
	cols, err := parseColors("rhombuses", opt.Outline, opt.Fill)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	p.SetFillColor(cols[1])

	// half of the rhombus' horizontal diagonal
	gap := opt.Edge * math.Sqrt2 / 2
	for _, cx := range []float64{x - gap, x + gap} {
		p.PenUp()
		p.Goto(cx, y)
		p.SetHeading(45)
		p.BeginFill()
		p.PenDown()
		for i := 0; i < 4; i++ {
			p.Forward(opt.Edge)
			p.Right(90)
		}
		p.EndFill()
	}
	p.PenUp()

	Logger().Debug("rhombuses rendered", "x", x, "y", y)
	return nil
}

// TriangleOptions configures the triangle with inset.
type TriangleOptions struct {
	Side    float64 `toml:"side"`
	Outline string  `toml:"outline"`
	Fill    string  `toml:"fill"`
}

// DefaultTriangleOptions returns the options of the triangle with a white inset.
func DefaultTriangleOptions() TriangleOptions {
	return TriangleOptions{Side: 180, Outline: "black", Fill: "white"}
}

// TriangleWithInset draws an isosceles triangle outline around (x, y) and a
// lower, filled triangle sharing its base.
func TriangleWithInset(p *Pen, x, y float64, opt TriangleOptions) error {
	if err := positive("triangle", param{"side", opt.Side}); err != nil {
		return err
	}
	cols, err := parseColors("triangle", opt.Outline, opt.Fill)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])

	h := opt.Side * math.Sqrt(3) / 2
	baseY := y - h/2
	topY := y + h/1.5

	outer := []Point{Pt(x-opt.Side/2, baseY), Pt(x+opt.Side/2, baseY), Pt(x, topY)}
	polygon(p, outer)

	inner := []Point{Pt(x-opt.Side/2, baseY), Pt(x+opt.Side/2, baseY), Pt(x, baseY+h/2.2)}
	p.SetFillColor(cols[1])
	MoveTo(p, inner[0].X, inner[0].Y)
	p.BeginFill()
	for _, pt := range append(inner[1:], inner[0]) {
		p.Goto(pt.X, pt.Y)
	}
	p.EndFill()

	Logger().Debug("triangle rendered", "x", x, "y", y)
	return nil
}

// PrismOptions configures the prism.
type PrismOptions struct {
	Side    float64 `toml:"side"`
	Depth   Point   `toml:"depth"` // offset of the back face
	Hidden  string  `toml:"hidden"`
	Outline string  `toml:"outline"`
	Face    string  `toml:"face"`
	Dash    float64 `toml:"dash"`
	Gap     float64 `toml:"gap"`
}

// DefaultPrismOptions returns the options of the prism with a shaded front face.
func DefaultPrismOptions() PrismOptions {
	return PrismOptions{
		Side:    110,
		Depth:   Pt(80, -80),
		Hidden:  "#606060",
		Outline: "black",
		Face:    "#f0f0f0",
		Dash:    8,
		Gap:     6,
	}
}

// Prism draws a square front face centered at (x, y), filled and outlined solid,
// with its diagonals. The back face, shifted by the depth vector, and the edges
// connecting the two faces are dashed to suggest hidden geometry.
func Prism(p *Pen, x, y float64, opt PrismOptions) error {
	if err := positive("prism",
		param{"side", opt.Side},
		param{"dash", opt.Dash},
		param{"gap", opt.Gap},
	); err != nil {
		return err
	}
	cols, err := parseColors("prism", opt.Hidden, opt.Outline, opt.Face)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	half := opt.Side / 2
	front := []Point{
		Pt(x-half, y-half),
		Pt(x-half, y+half),
		Pt(x+half, y+half),
		Pt(x+half, y-half),
	}
	back := make([]Point, len(front))
	for i, f := range front {
		back[i] = f.Add(opt.Depth)
	}

	// hidden back face and connecting edges
	p.SetPenColor(cols[0])
	MoveTo(p, back[0].X, back[0].Y)
	for _, pt := range append(back[1:], back[0]) {
		DashedTo(p, pt.X, pt.Y, opt.Dash, opt.Gap)
	}
	for i := range front {
		MoveTo(p, back[i].X, back[i].Y)
		DashedTo(p, front[i].X, front[i].Y, opt.Dash, opt.Gap)
	}

	// shaded front face
	p.SetPenColor(cols[1])
	p.SetFillColor(cols[2])
	MoveTo(p, front[0].X, front[0].Y)
	p.BeginFill()
	for _, pt := range append(front[1:], front[0]) {
		p.Goto(pt.X, pt.Y)
	}
	p.EndFill()

	// diagonals
	MoveTo(p, front[0].X, front[0].Y)
	p.Goto(front[2].X, front[2].Y)
	MoveTo(p, front[1].X, front[1].Y)
	p.Goto(front[3].X, front[3].Y)

	Logger().Debug("prism rendered", "x", x, "y", y)
	return nil
}

// RingsOptions configures the Olympic rings.
type RingsOptions struct {
	Radius float64 `toml:"radius"`
	Gap    float64 `toml:"gap"` // distance between two neighboring upper rings
	Color  string  `toml:"color"`
}

// DefaultRingsOptions returns five black rings of radius 30.
func DefaultRingsOptions() RingsOptions {
	return RingsOptions{Radius: 30, Gap: 20, Color: "black"}
}

// RingCenters returns the centers of the five rings around (x, y): three upper
// rings 2·radius+gap apart, and two lower rings one radius below, each centered
// under the gap between two upper rings.
func RingCenters(x, y float64, opt RingsOptions) []Point {
	spacing := 2*opt.Radius + opt.Gap
	offsets := []Point{
		Pt(-spacing, 0), Pt(0, 0), Pt(spacing, 0),
		Pt(-spacing/2, -opt.Radius), Pt(spacing/2, -opt.Radius),
	}
	centers := make([]Point, len(offsets))
	for i, o := range offsets {
		centers[i] = Pt(x, y).Add(o)
	}
	return centers
}

// OlympicRings draws the five interlaced ring outlines.
func OlympicRings(p *Pen, x, y float64, opt RingsOptions) error {
	if err := positive("rings", param{"radius", opt.Radius}); err != nil {
		return err
	}
	if opt.Gap < 0 {
		return invalidf("rings gap must not be negative, got %v", opt.Gap)
	}
	cols, err := parseColors("rings", opt.Color)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	for _, c := range RingCenters(x, y, opt) {
		p.PenUp()
		p.Goto(c.X, c.Y-opt.Radius)
		p.SetHeading(0)
		p.PenDown()
		p.Circle(opt.Radius, 360)
		p.Flush()
	}
	p.PenUp()

	Logger().Debug("rings rendered", "x", x, "y", y)
	return nil
}

// CompassOptions configures the compass rose.
type CompassOptions struct {
	Radius     float64 `toml:"radius"`
	Arm        float64 `toml:"arm"` // half length of the cross
	Color      string  `toml:"color"`
	LabelColor string  `toml:"label_color"`
	Font       Font    `toml:"font"`
	North      string  `toml:"north"`
	East       string  `toml:"east"`
	South      string  `toml:"south"`
	West       string  `toml:"west"`
}

// DefaultCompassOptions returns the options of the compass with light purple labels.
func DefaultCompassOptions() CompassOptions {
	return CompassOptions{
		Radius:     20,
		Arm:        60,
		Color:      "black",
		LabelColor: "#9b7cff",
		Font:       DefaultFont,
		North:      "North",
		East:       "East",
		South:      "South",
		West:       "West",
	}
}

// CompassRose draws a cross and a circle centered at (x, y) and the four
// cardinal labels just beyond the ends of the cross.
func CompassRose(p *Pen, x, y float64, opt CompassOptions) error {
	if err := positive("compass",
		param{"radius", opt.Radius},
		param{"arm", opt.Arm},
		param{"font size", opt.Font.Size},
	); err != nil {
		return err
	}
	cols, err := parseColors("compass", opt.Color, opt.LabelColor)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	l := opt.Arm

	// cross
	p.SetPenColor(cols[0])
	p.PenUp()
	p.Goto(x-l, y)
	p.PenDown()
	p.Goto(x+l, y)
	p.PenUp()
	p.Goto(x, y-l)
	p.PenDown()
	p.Goto(x, y+l)

	// centered circle
	p.PenUp()
	p.Goto(x, y-opt.Radius)
	p.SetHeading(0)
	p.PenDown()
	p.Circle(opt.Radius, 360)

	// labels
	p.SetPenColor(cols[1])
	p.PenUp()
	labels := []struct {
		at    Point
		text  string
		align Align
	}{
		{Pt(x, y+l+12), opt.North, AlignCenter},
		{Pt(x+l+12, y-6), opt.East, AlignLeft},
		{Pt(x, y-l-20), opt.South, AlignCenter},
		{Pt(x-l-12, y-6), opt.West, AlignRight},
	}
	for _, lb := range labels {
		p.Goto(lb.at.X, lb.at.Y)
		p.Write(lb.text, lb.align, opt.Font)
	}

	Logger().Debug("compass rendered", "x", x, "y", y)
	return nil
}

// MarkedSquareOptions configures the marked square.
type MarkedSquareOptions struct {
	Size    float64 `toml:"size"`
	Dash    float64 `toml:"dash"`
	Gap     float64 `toml:"gap"`
	DotSize float64 `toml:"dot_size"`
	Color   string  `toml:"color"`
}

// DefaultMarkedSquareOptions returns the options of the 140 units wide marked square.
func DefaultMarkedSquareOptions() MarkedSquareOptions {
	return MarkedSquareOptions{Size: 140, Dash: 10, Gap: 6, DotSize: 8, Color: "black"}
}

// MarkedSquare draws a square centered at (x, y) with solid vertical edges,
// dashed horizontal edges and both diagonals, and marks the center and the
// four corners with dots.
func MarkedSquare(p *Pen, x, y float64, opt MarkedSquareOptions) error {
	if err := positive("marked square",
		param{"size", opt.Size},
		param{"dash", opt.Dash},
		param{"gap", opt.Gap},
		param{"dot size", opt.DotSize},
	); err != nil {
		return err
	}
	cols, err := parseColors("marked square", opt.Color)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])

	half := opt.Size / 2
	lx, rx := x-half, x+half
	by, ty := y-half, y+half

	// verticals
	MoveTo(p, lx, by)
	p.Goto(lx, ty)
	MoveTo(p, rx, by)
	p.Goto(rx, ty)

	// top and bottom
	MoveTo(p, lx, ty)
	DashedTo(p, rx, ty, opt.Dash, opt.Gap)
	MoveTo(p, lx, by)
	DashedTo(p, rx, by, opt.Dash, opt.Gap)

	// diagonals
	MoveTo(p, lx, by)
	p.Goto(rx, ty)
	MoveTo(p, lx, ty)
	p.Goto(rx, by)

	DotAt(p, x, y, opt.DotSize)
	for _, c := range []Point{Pt(lx, by), Pt(lx, ty), Pt(rx, by), Pt(rx, ty)} {
		DotAt(p, c.X, c.Y, opt.DotSize)
	}

	Logger().Debug("marked square rendered", "x", x, "y", y)
	return nil
}

// polygon traces the closed outline through the vertices.
func polygon(p *Pen, pts []Point) {
	MoveTo(p, pts[0].X, pts[0].Y)
	for _, pt := range append(pts[1:], pts[0]) {
		p.Goto(pt.X, pt.Y)
	}
}
