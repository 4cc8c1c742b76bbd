package figures

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveTo(t *testing.T) {
	p, rec := newTestPen()
	MoveTo(p, 30, -40)
	p.Flush()

	assert.Zero(t, rec.Len())
	assert.True(t, p.IsDown())
	assert.Equal(t, Pt(30, -40), p.Pos())
}

func TestDashedTo_ZeroDistance(t *testing.T) {
	p, rec := newTestPen()
	MoveTo(p, 12, 7)
	DashedTo(p, 12, 7, 10, 5)
	p.Flush()

	assert.Zero(t, rec.Len())
	assert.Equal(t, Pt(12, 7), p.Pos())
	assert.True(t, p.IsDown())
}

func TestDashedTo_Coverage(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	DashedTo(p, 100, 0, 10, 5)
	p.Flush()

	// dashes start every 15 units, the last one is cut at the target
	ops := rec.Ops()
	require.Len(t, ops, 7)
	var drawn float64
	for i, op := range ops {
		assert.Equal(OpStroke, op.Kind)
		assert.InDelta(float64(i)*15, op.Path[0].X, eps)
		drawn += pathLength(op.Path)
	}
	assert.InDelta(70, drawn, eps)
	assert.Equal(Pt(100, 0), ops[6].Path[1])
	assert.Equal(Pt(100, 0), p.Pos())
	assert.True(p.IsDown())
}

func TestDashedTo_Diagonal(t *testing.T) {
	p, rec := newTestPen()
	MoveTo(p, -30, -40)
	DashedTo(p, 30, 40, 8, 6)
	p.Flush()

	for _, op := range rec.Ops() {
		for _, pt := range op.Path {
			// every vertex lies on the segment
			assert.InDelta(t, pt.X*4/3, pt.Y, 1e-6)
		}
	}
	assert.Equal(t, Pt(30, 40), p.Pos())
}

func TestDashedTo_NonPositivePattern(t *testing.T) {
	testCases := map[string]struct {
		dash, gap float64
		strokes   int
	}{
		"no dash and no gap": {0, 0, 0},
		"negative dash":      {-5, 1, 0},
		"no gap":             {10, 0, 1},
		"negative gap":       {10, -3, 1},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			p, rec := newTestPen()
			DashedTo(p, 40, 30, tc.dash, tc.gap)
			p.Flush()

			assert.Len(t, rec.Ops(), tc.strokes)
			assert.Equal(t, Pt(40, 30), p.Pos())
			assert.True(t, p.IsDown())
		})
	}
}

func TestDotAt(t *testing.T) {
	p, rec := newTestPen()
	DotAt(p, -5, 15, 6)

	ops := rec.Ops()
	if assert.Len(t, ops, 1) {
		assert.Equal(t, OpDot, ops[0].Kind)
		assert.Equal(t, Pt(-5, 15), ops[0].Path[0])
		assert.Equal(t, 6.0, ops[0].Width)
	}
	assert.True(t, p.IsDown())
}

func TestEllipse(t *testing.T) {
	assert := assert.New(t)

	p, rec := newTestPen()
	fill := blue
	Ellipse(p, 10, 20, 30, 15, 60, &fill, red)
	p.Flush()

	ops := rec.Ops()
	require.Equal(t, []OpKind{OpFill, OpStroke}, kinds(ops))
	assert.Equal(blue, ops[0].Color)
	assert.Equal(red, ops[1].Color)
	assert.Len(ops[0].Path, 61)
	assert.Len(ops[1].Path, 61)

	for _, pt := range ops[1].Path {
		dx, dy := (pt.X-10)/30, (pt.Y-20)/15
		assert.InDelta(1, dx*dx+dy*dy, 1e-9)
	}
	assertPoint(t, Pt(40, 20), ops[1].Path[0], eps)
}

func TestEllipse_OutlineOnly(t *testing.T) {
	p, rec := newTestPen()
	Ellipse(p, 0, 0, 10, 5, 12, nil, red)
	p.Flush()

	assert.Equal(t, []OpKind{OpStroke}, kinds(rec.Ops()))
}

func TestKoch(t *testing.T) {
	for depth := 0; depth <= 4; depth++ {
		p, rec := newTestPen()
		Koch(p, 90, depth)
		p.Flush()

		ops := rec.Ops()
		require.Len(t, ops, 1)

		segments := int(math.Pow(4, float64(depth)))
		assert.Len(t, ops[0].Path, segments+1, "depth %d", depth)
		assert.InDelta(t, 90*math.Pow(4.0/3, float64(depth)), pathLength(ops[0].Path), 1e-6, "depth %d", depth)
		assertPoint(t, Pt(90, 0), p.Pos(), 1e-6)
		assert.InDelta(t, 0, math.Sin(p.Heading()*math.Pi/180), 1e-9)
	}
}
