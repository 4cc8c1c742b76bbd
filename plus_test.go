package figures

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSun_Rays(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	opt := DefaultSunOptions()
	require.NoError(t, Sun(p, -330, 260, opt))

	ops := rec.Ops()
	require.Len(t, ops, opt.Rays+2)

	rayColor := MustParseColor(opt.RayColor)
	for i := 0; i < opt.Rays; i++ {
		ray := ops[i]
		require.Equal(t, OpStroke, ray.Kind)
		require.Len(t, ray.Path, 2)
		assert.Equal(rayColor, ray.Color)

		want := 75.0
		if i%2 == 1 {
			want = 45
		}
		assert.InDelta(want, pathLength(ray.Path), 1e-9, "ray %d", i)

		// every ray starts on the rim and points away from the center
		from := ray.Path[0]
		assert.InDelta(55, from.Dist(Pt(-330, 260)), 1e-9)
		angle := math.Atan2(from.Y-260, from.X+330) * 180 / math.Pi
		assert.InDelta(0, math.Remainder(angle-float64(i)*15, 360), 1e-6, "ray %d", i)
	}

	body, outline := ops[opt.Rays], ops[opt.Rays+1]
	assert.Equal(OpFill, body.Kind)
	assert.Equal(MustParseColor("#FFD66B"), body.Color)
	assert.Equal(OpStroke, outline.Kind)
	assert.Equal(MustParseColor(opt.Outline), outline.Color)
	for _, pt := range outline.Path {
		assert.InDelta(55, pt.Dist(Pt(-330, 260)), 1e-6)
	}
}

func TestLogSpiral(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	opt := DefaultSpiralOptions()
	require.NoError(t, LogSpiral(p, -310, -120, opt))

	ops := rec.Ops()
	require.Len(t, ops, 1)
	path := ops[0].Path
	steps := int(opt.Turns * 180)
	assert.Len(path, steps+1)
	assert.Equal(Pt(-310, -120), path[0])
	assert.Equal(3.0, ops[0].Width)

	// the radius grows monotonically
	prev := 0.0
	for _, pt := range path[1:] {
		r := pt.Dist(Pt(-310, -120))
		assert.Greater(r, prev)
		prev = r
	}
	last := float64(steps-1) * spiralStep
	assert.InDelta(opt.A*math.Exp(opt.B*last), prev, 1e-9)
}

func TestHexGrid(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	opt := DefaultHexGridOptions()
	require.NoError(t, HexGrid(p, 210, -10, opt))

	ops := rec.Ops()
	require.Len(t, ops, 20)
	for _, op := range ops {
		assert.Equal(OpStroke, op.Kind)
		assert.Len(op.Path, 7)
		assertPoint(t, op.Path[0], op.Path[6], 1e-9)
		for i := 1; i < len(op.Path); i++ {
			assert.InDelta(36, op.Path[i-1].Dist(op.Path[i]), 1e-9)
		}
	}

	assert.Equal(Pt(210, -10), ops[0].Path[0])
	// second row, first column: shifted right by 0.75·size
	assertPoint(t, Pt(210+27, -10-2*36*math.Sin(math.Pi/3)), ops[5].Path[0], 1e-9)
	assertPoint(t, Pt(210+36*1.5, -10), ops[1].Path[0], 1e-9)
}

func TestHexOrigin(t *testing.T) {
	assertPoint(t, Pt(0, 0), HexOrigin(0, 0, 36, 0, 0), 0)
	assertPoint(t, Pt(27, -2*36*math.Sin(math.Pi/3)), HexOrigin(0, 0, 36, 1, 0), 1e-9)
	assertPoint(t, Pt(108, -4*36*math.Sin(math.Pi/3)), HexOrigin(0, 0, 36, 2, 2), 1e-9)
}

func TestKochSnowflake(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	opt := DefaultSnowflakeOptions()
	require.NoError(t, KochSnowflake(p, 360, 250, opt))

	ops := rec.Ops()
	require.Equal(t, []OpKind{OpFill, OpStroke}, kinds(ops))
	assert.Equal(MustParseColor("white"), ops[0].Color)

	stroke := ops[1].Path
	assert.Len(stroke, 3*64+1)
	assertPoint(t, stroke[0], stroke[len(stroke)-1], 1e-6)

	// the triangle vertices are centered on (x, y)
	var c Point
	for _, i := range []int{0, 64, 128} {
		c = c.Add(stroke[i])
	}
	assertPoint(t, Pt(360*3, 250*3), c, 1e-6)
	assertPoint(t, Pt(360, 250+180/math.Sqrt(3)), stroke[64], 1e-6)
}

func TestKochSnowflake_NegativeDepth(t *testing.T) {
	p, rec := newTestPen()
	opt := DefaultSnowflakeOptions()
	opt.Depth = -1

	err := KochSnowflake(p, 0, 0, opt)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Zero(t, rec.Len())
}

func TestFlower(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	opt := DefaultFlowerOptions()
	require.NoError(t, Flower(p, 0, 50, opt))

	ops := rec.Ops()
	require.Equal(t, []OpKind{OpFill, OpStroke}, kinds(ops))
	assert.Equal(MustParseColor(opt.Fill), ops[0].Color)
	assert.Equal(MustParseColor(opt.Color), ops[1].Color)

	// 12 petals of two 60° arcs, 4 chords each
	assert.Len(ops[1].Path, 12*2*4+1)
	assert.Equal(Pt(0, -10), ops[1].Path[0])
}

func TestBee(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	require.NoError(t, Bee(p, 520, -10, 0.9))

	fills := rec.Filter(OpFill)
	// body, head, two wings and the stinger
	assert.Len(fills, 5)
	assert.Equal(beeBody, fills[0].Color)
	assert.Equal(beeStinger, fills[4].Color)

	var stripes []Op
	for _, op := range rec.Filter(OpStroke) {
		if len(op.Path) == 2 {
			stripes = append(stripes, op)
		}
	}
	if assert.Len(stripes, 3) {
		for _, op := range stripes {
			assert.Equal(math.Floor(6*0.9), op.Width)
			assert.Equal(beeInk, op.Color)
			assert.InDelta(36, pathLength(op.Path), 1e-9)
		}
	}
	assert.Equal(Style{PenColor: color.NRGBA{A: 0xff}, FillColor: color.NRGBA{A: 0xff}, Width: 1}, p.Style())
}

func TestBee_InvalidScale(t *testing.T) {
	p, rec := newTestPen()
	assert.ErrorIs(t, Bee(p, 0, 0, 0), ErrInvalidParameter)
	assert.Zero(t, rec.Len())
}

func TestPlusFigures_InvalidParameters(t *testing.T) {
	testCases := map[string]func(p *Pen) error{
		"sun without rays": func(p *Pen) error {
			opt := DefaultSunOptions()
			opt.Rays = 0
			return Sun(p, 0, 0, opt)
		},
		"sun unknown color": func(p *Pen) error {
			opt := DefaultSunOptions()
			opt.BodyFill = "not a color"
			return Sun(p, 0, 0, opt)
		},
		"spiral negative turns": func(p *Pen) error {
			opt := DefaultSpiralOptions()
			opt.Turns = -1
			return LogSpiral(p, 0, 0, opt)
		},
		"hex grid without rows": func(p *Pen) error {
			opt := DefaultHexGridOptions()
			opt.Rows = 0
			return HexGrid(p, 0, 0, opt)
		},
		"snowflake zero size": func(p *Pen) error {
			opt := DefaultSnowflakeOptions()
			opt.Size = 0
			return KochSnowflake(p, 0, 0, opt)
		},
		"flower without petals": func(p *Pen) error {
			opt := DefaultFlowerOptions()
			opt.Petals = 0
			return Flower(p, 0, 0, opt)
		},
		"flower malformed hex": func(p *Pen) error {
			opt := DefaultFlowerOptions()
			opt.Fill = "#12345"
			return Flower(p, 0, 0, opt)
		},
	}

	for name, draw := range testCases {
		t.Run(name, func(t *testing.T) {
			p, rec := newTestPen()
			err := draw(p)
			assert.True(t, errors.Is(err, ErrInvalidParameter), "got %v", err)
			assert.Zero(t, rec.Len())
		})
	}
}
