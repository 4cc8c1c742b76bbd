package figures

import "fmt"

// Pack selects the set of figures drawn on the surface.
type Pack string

const (
	PackPlus   Pack = "plus"
	PackShaded Pack = "shaded"
	PackAll    Pack = "all"
)

// Packs lists the supported packs.
var Packs = []Pack{PackPlus, PackShaded, PackAll}

// Placement is a figure bound to its position and options.
type Placement struct {
	Name string
	Draw func(*Pen) error
}

// Scene returns the placements of the pack in drawing order.
func (c Config) Scene(pack Pack) ([]Placement, error) {
	switch pack {
	case PackPlus:
		return c.Plus.placements(), nil
	case PackShaded:
		return c.Shaded.placements(), nil
	case PackAll:
		return append(c.Plus.placements(), c.Shaded.placements()...), nil
	}
	return nil, invalidf("unknown pack %q", pack)
}

func (c PlusConfig) placements() []Placement {
	return []Placement{
		{"sun", func(p *Pen) error {
			return Sun(p, c.Sun.At.X, c.Sun.At.Y, c.Sun.SunOptions)
		}},
		{"spiral", func(p *Pen) error {
			return LogSpiral(p, c.Spiral.At.X, c.Spiral.At.Y, c.Spiral.SpiralOptions)
		}},
		{"honeycomb", func(p *Pen) error {
			return HexGrid(p, c.Honeycomb.At.X, c.Honeycomb.At.Y, c.Honeycomb.HexGridOptions)
		}},
		{"bee", func(p *Pen) error {
			return Bee(p, c.Bee.At.X, c.Bee.At.Y, c.Bee.Scale)
		}},
		{"snowflake", func(p *Pen) error {
			return KochSnowflake(p, c.Snowflake.At.X, c.Snowflake.At.Y, c.Snowflake.SnowflakeOptions)
		}},
		{"flower", func(p *Pen) error {
			return Flower(p, c.Flower.At.X, c.Flower.At.Y, c.Flower.FlowerOptions)
		}},
	}
}

func (c ShadedConfig) placements() []Placement {
	return []Placement{
		{"rhombuses", func(p *Pen) error {
			return DoubleRhombuses(p, c.Rhombuses.At.X, c.Rhombuses.At.Y, c.Rhombuses.RhombusOptions)
		}},
		{"triangle", func(p *Pen) error {
			return TriangleWithInset(p, c.Triangle.At.X, c.Triangle.At.Y, c.Triangle.TriangleOptions)
		}},
		{"prism", func(p *Pen) error {
			return Prism(p, c.Prism.At.X, c.Prism.At.Y, c.Prism.PrismOptions)
		}},
		{"rings", func(p *Pen) error {
			return OlympicRings(p, c.Rings.At.X, c.Rings.At.Y, c.Rings.RingsOptions)
		}},
		{"compass", func(p *Pen) error {
			return CompassRose(p, c.Compass.At.X, c.Compass.At.Y, c.Compass.CompassOptions)
		}},
		{"marked square", func(p *Pen) error {
			return MarkedSquare(p, c.MarkedSquare.At.X, c.MarkedSquare.At.Y, c.MarkedSquare.MarkedSquareOptions)
		}},
	}
}

// Draw runs the placements in order on the pen and stops at the first failure.
func Draw(p *Pen, placements []Placement) error {
	for _, pl := range placements {
		if err := pl.Draw(p); err != nil {
			return fmt.Errorf("%s: %w", pl.Name, err)
		}
		Logger().Debug("figure drawn", "figure", pl.Name)
	}
	p.Flush()
	return nil
}
