package figures

import (
	"image/color"
	"math"
)

// MoveTo relocates the pen to (x, y) without drawing and puts it down again.
func MoveTo(p *Pen, x, y float64) {
	p.PenUp()
	p.Goto(x, y)
	p.PenDown()
}

// DashedTo draws a dashed segment from the current position to (x, y), alternating
// drawn runs of dash units with blank runs of gap units. The last run is shortened
// so the segment ends exactly at the target. The pen is left down.
// A non-positive dash moves without drawing, a non-positive gap draws a solid line.
func DashedTo(p *Pen, x, y, dash, gap float64) {
	start := p.Pos()
	dx, dy := x-start.X, y-start.Y
	dist := math.Hypot(dx, dy)
	switch {
	case dist == 0:
		return
	case dash <= 0:
		// only blanks
		p.PenUp()
		p.Goto(x, y)
		p.PenDown()
		return
	case gap <= 0:
		p.PenDown()
		p.Goto(x, y)
		return
	}
	ux, uy := dx/dist, dy/dist

	var drawn float64
	draw := true
	for drawn < dist {
		step := gap
		if draw {
			step = dash
		}
		if draw {
			p.PenDown()
		} else {
			p.PenUp()
		}
		if drawn+step >= dist {
			drawn = dist
			p.Goto(x, y)
		} else {
			drawn += step
			p.Goto(start.X+ux*drawn, start.Y+uy*drawn)
		}
		draw = !draw
	}
	p.PenDown()
}

// DotAt relocates the pen without drawing and stamps a dot of the given diameter.
func DotAt(p *Pen, x, y, diameter float64) {
	p.PenUp()
	p.Goto(x, y)
	p.Dot(diameter)
	p.PenDown()
}

// Ellipse traces the ellipse centered at (cx, cy) as a polygon through steps+1
// parametric samples, outlined in the outline color and optionally filled.
// The pen color and, when filling, the fill color are left changed.
func Ellipse(p *Pen, cx, cy, rx, ry float64, steps int, fill *color.NRGBA, outline color.NRGBA) {
	pts := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		th := 2 * math.Pi * float64(i) / float64(steps)
		pts = append(pts, Pt(cx+rx*math.Cos(th), cy+ry*math.Sin(th)))
	}

	p.SetPenColor(outline)
	MoveTo(p, pts[0].X, pts[0].Y)
	if fill != nil {
		p.SetFillColor(*fill)
		p.BeginFill()
	}
	for _, pt := range pts[1:] {
		p.Goto(pt.X, pt.Y)
	}
	if fill != nil {
		p.EndFill()
	}
}

// Koch draws a Koch curve of the given length along the current heading.
// Depth 0 is a straight segment; every level replaces each segment with
// four segments one third long, turning +60, -120 and +60 degrees between them.
func Koch(p *Pen, length float64, depth int) {
	if depth <= 0 {
		p.Forward(length)
		return
	}
	length /= 3
	Koch(p, length, depth-1)
	p.Left(60)
	Koch(p, length, depth-1)
	p.Right(120)
	Koch(p, length, depth-1)
	p.Left(60)
	Koch(p, length, depth-1)
}
