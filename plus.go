package figures

import (
	"math"
)

// SunOptions configures the Sun figure.
type SunOptions struct {
	Radius     float64 `toml:"radius"`
	Rays       int     `toml:"rays"`
	LongRay    float64 `toml:"long_ray"`
	ShortRatio float64 `toml:"short_ratio"` // short ray length relative to LongRay
	BodyFill   string  `toml:"body_fill"`
	RayColor   string  `toml:"ray_color"`
	Outline    string  `toml:"outline"`
}

// DefaultSunOptions returns the options of the classic sun.
func DefaultSunOptions() SunOptions {
	return SunOptions{
		Radius:     55,
		Rays:       24,
		LongRay:    75,
		ShortRatio: 0.6,
		BodyFill:   "#FFD66B",
		RayColor:   "#DAA520",
		Outline:    "#C68900",
	}
}

// Sun draws rays alternating between long and short around (x, y), spaced
// 360/rays degrees apart and starting at the body's rim, then the filled body.
func Sun(p *Pen, x, y float64, opt SunOptions) error {
	if err := positive("sun",
		param{"radius", opt.Radius},
		param{"rays", float64(opt.Rays)},
		param{"long ray", opt.LongRay},
		param{"short ratio", opt.ShortRatio},
	); err != nil {
		return err
	}
	cols, err := parseColors("sun", opt.RayColor, opt.Outline, opt.BodyFill)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	for i := 0; i < opt.Rays; i++ {
		length := opt.LongRay
		if i%2 != 0 {
			length *= opt.ShortRatio
		}
		p.PenUp()
		p.Goto(x, y)
		p.SetHeading(float64(i) * 360 / float64(opt.Rays))
		p.Forward(opt.Radius)
		p.PenDown()
		p.Forward(length)
	}

	p.SetPenColor(cols[1])
	p.SetFillColor(cols[2])
	p.PenUp()
	p.Goto(x, y-opt.Radius)
	p.SetHeading(0)
	p.PenDown()
	p.BeginFill()
	p.Circle(opt.Radius, 360)
	p.EndFill()

	Logger().Debug("sun rendered", "x", x, "y", y, "rays", opt.Rays)
	return nil
}

// SpiralOptions configures the logarithmic spiral r = a·e^(bθ).
type SpiralOptions struct {
	Turns float64 `toml:"turns"`
	A     float64 `toml:"a"`
	B     float64 `toml:"b"`
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
}

// DefaultSpiralOptions returns the options of the short and thick spiral.
func DefaultSpiralOptions() SpiralOptions {
	return SpiralOptions{
		Turns: 3.8,
		A:     2,
		B:     0.2,
		Color: "#1B9AAA",
		Width: 3,
	}
}

// spiralStep is the angular increment between two spiral samples.
const spiralStep = math.Pi / 90

// LogSpiral samples the logarithmic spiral centered at (x, y) every π/90 radians,
// for turns·180 samples, and joins the samples with straight segments.
func LogSpiral(p *Pen, x, y float64, opt SpiralOptions) error {
	if err := positive("spiral",
		param{"turns", opt.Turns},
		param{"a", opt.A},
		param{"width", opt.Width},
	); err != nil {
		return err
	}
	cols, err := parseColors("spiral", opt.Color)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	p.SetWidth(opt.Width)
	MoveTo(p, x, y)
	p.SetHeading(0)

	steps := int(opt.Turns * 180)
	for i := 0; i < steps; i++ {
		theta := float64(i) * spiralStep
		r := opt.A * math.Exp(opt.B*theta)
		p.Goto(x+r*math.Cos(theta), y+r*math.Sin(theta))
	}

	Logger().Debug("spiral rendered", "x", x, "y", y, "samples", steps)
	return nil
}

// HexGridOptions configures the honeycomb.
type HexGridOptions struct {
	Cols  int     `toml:"cols"`
	Rows  int     `toml:"rows"`
	Size  float64 `toml:"size"`
	Color string  `toml:"color"`
	Width float64 `toml:"width"`
}

// DefaultHexGridOptions returns the options of the golden honeycomb.
func DefaultHexGridOptions() HexGridOptions {
	return HexGridOptions{
		Cols:  5,
		Rows:  4,
		Size:  36,
		Color: "gold",
		Width: 2,
	}
}

// HexOrigin returns the starting vertex of the hexagon in the given row and column
// of a grid anchored at (x, y). Columns are 1.5·size apart, rows 2·size·sin60°
// apart and the odd rows are shifted right by 0.75·size.
func HexOrigin(x, y, size float64, row, col int) Point {
	h := math.Sin(math.Pi/3) * size
	ox := x + float64(col)*size*1.5
	oy := y - float64(row)*2*h
	if row%2 == 1 {
		ox += size * 0.75
	}
	return Pt(ox, oy)
}

// HexGrid tiles cols×rows regular hexagons in a brick-offset grid starting at (x, y).
func HexGrid(p *Pen, x, y float64, opt HexGridOptions) error {
	if err := positive("hex grid",
		param{"cols", float64(opt.Cols)},
		param{"rows", float64(opt.Rows)},
		param{"size", opt.Size},
		param{"width", opt.Width},
	); err != nil {
		return err
	}
	cols, err := parseColors("hex grid", opt.Color)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	p.SetWidth(opt.Width)
	for r := 0; r < opt.Rows; r++ {
		for c := 0; c < opt.Cols; c++ {
			o := HexOrigin(x, y, opt.Size, r, c)
			MoveTo(p, o.X, o.Y)
			p.SetHeading(0)
			for i := 0; i < 6; i++ {
				p.Forward(opt.Size)
				p.Right(60)
			}
			// Every hexagon is a polyline on its own.
			p.Flush()
		}
	}

	Logger().Debug("hex grid rendered", "x", x, "y", y, "cells", opt.Cols*opt.Rows)
	return nil
}

// SnowflakeOptions configures the Koch snowflake.
type SnowflakeOptions struct {
	Size    float64 `toml:"size"`
	Depth   int     `toml:"depth"`
	Outline string  `toml:"outline"`
	Fill    string  `toml:"fill"`
}

// DefaultSnowflakeOptions returns the options of the white filled snowflake.
func DefaultSnowflakeOptions() SnowflakeOptions {
	return SnowflakeOptions{
		Size:    180,
		Depth:   3,
		Outline: "#6F3FD6",
		Fill:    "white",
	}
}

// KochSnowflake draws a filled Koch snowflake built on an equilateral triangle
// of the given side, centered around (x, y).
func KochSnowflake(p *Pen, x, y float64, opt SnowflakeOptions) error {
	if err := positive("snowflake", param{"size", opt.Size}); err != nil {
		return err
	}
	if opt.Depth < 0 {
		return invalidf("snowflake depth must not be negative, got %d", opt.Depth)
	}
	cols, err := parseColors("snowflake", opt.Outline, opt.Fill)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	p.SetFillColor(cols[1])

	// Start at the lower left vertex heading to the apex,
	// so the triangle's centroid lands on (x, y).
	MoveTo(p, x-opt.Size/2, y-opt.Size/(2*math.Sqrt(3)))
	p.SetHeading(60)
	p.BeginFill()
	for i := 0; i < 3; i++ {
		Koch(p, opt.Size, opt.Depth)
		p.Right(120)
	}
	p.EndFill()

	Logger().Debug("snowflake rendered", "x", x, "y", y, "depth", opt.Depth)
	return nil
}

// FlowerOptions configures the arc-petal flower.
type FlowerOptions struct {
	Petals int     `toml:"petals"`
	Radius float64 `toml:"radius"`
	Color  string  `toml:"color"`
	Fill   string  `toml:"fill"`
}

// DefaultFlowerOptions returns the options of the pink flower.
func DefaultFlowerOptions() FlowerOptions {
	return FlowerOptions{
		Petals: 12,
		Radius: 60,
		Color:  "#e76f51",
		Fill:   "#ffdcdc",
	}
}

// Flower draws the petals as pairs of 60° arcs joined by a 120° turn,
// all of them traced as one continuous filled path starting below (x, y).
func Flower(p *Pen, x, y float64, opt FlowerOptions) error {
	if err := positive("flower",
		param{"petals", float64(opt.Petals)},
		param{"radius", opt.Radius},
	); err != nil {
		return err
	}
	cols, err := parseColors("flower", opt.Color, opt.Fill)
	if err != nil {
		return err
	}
	defer p.Restore(p.Save())

	p.SetPenColor(cols[0])
	p.SetFillColor(cols[1])

	MoveTo(p, x, y-opt.Radius)
	p.SetHeading(0)
	p.BeginFill()
	for i := 0; i < opt.Petals; i++ {
		p.Circle(opt.Radius, 60)
		p.Left(120)
		p.Circle(opt.Radius, 60)
		p.Left(360/float64(opt.Petals) - 120)
	}
	p.EndFill()

	Logger().Debug("flower rendered", "x", x, "y", y, "petals", opt.Petals)
	return nil
}

// Bee colors.
var (
	beeBody    = MustParseColor("#FFD166")
	beeInk     = MustParseColor("black")
	beeWing    = MustParseColor("white")
	beeWingRim = MustParseColor("#888")
	beeStinger = MustParseColor("#222")
)

// beeEllipseSteps is the number of polygon sides used for the bee's ellipses.
const beeEllipseSteps = 60

// Bee draws a small bee centered at (x, y): a yellow oval body with three black
// stripes, a black head on the left, two white wings and a triangular stinger.
func Bee(p *Pen, x, y, scale float64) error {
	if err := positive("bee", param{"scale", scale}); err != nil {
		return err
	}
	defer p.Restore(p.Save())

	s := scale

	// body
	body := beeBody
	Ellipse(p, x, y, 28*s, 18*s, beeEllipseSteps, &body, beeInk)

	// stripes
	p.SetPenColor(beeInk)
	p.SetWidth(math.Max(1, math.Floor(6*s)))
	for _, off := range []float64{-10 * s, 0, 10 * s} {
		MoveTo(p, x-20*s, y+off)
		p.SetHeading(0)
		p.Forward(40 * s)
	}

	// head
	p.SetPenColor(beeInk)
	p.SetFillColor(beeInk)
	MoveTo(p, x-34*s, y+12*s)
	p.BeginFill()
	p.Circle(8*s, 360)
	p.EndFill()

	// wings
	wing := beeWing
	Ellipse(p, x+8*s, y+22*s, 16*s, 10*s, beeEllipseSteps, &wing, beeWingRim)
	Ellipse(p, x+22*s, y+26*s, 14*s, 9*s, beeEllipseSteps, &wing, beeWingRim)

	// stinger
	p.SetPenColor(beeInk)
	p.SetFillColor(beeStinger)
	MoveTo(p, x+30*s, y)
	p.BeginFill()
	p.SetHeading(-20)
	p.Forward(10 * s)
	p.Left(120)
	p.Forward(10 * s)
	p.Goto(x+30*s, y)
	p.EndFill()

	Logger().Debug("bee rendered", "x", x, "y", y, "scale", scale)
	return nil
}
