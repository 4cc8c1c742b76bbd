package figures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(placements []Placement) []string {
	res := make([]string, len(placements))
	for i, pl := range placements {
		res[i] = pl.Name
	}
	return res
}

func TestConfig_Scene(t *testing.T) {
	cfg := DefaultConfig()

	plus, err := cfg.Scene(PackPlus)
	require.NoError(t, err)
	assert.Equal(t, []string{"sun", "spiral", "honeycomb", "bee", "snowflake", "flower"}, names(plus))

	shaded, err := cfg.Scene(PackShaded)
	require.NoError(t, err)
	assert.Equal(t, []string{"rhombuses", "triangle", "prism", "rings", "compass", "marked square"}, names(shaded))

	all, err := cfg.Scene(PackAll)
	require.NoError(t, err)
	assert.Equal(t, append(names(plus), names(shaded)...), names(all))

	_, err = cfg.Scene("doodles")
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestDraw_StopsAtTheFirstFailure(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Plus.Spiral.Color = "plaid"

	scene, err := cfg.Scene(PackPlus)
	require.NoError(t, err)

	p, rec := newTestPen()
	err = Draw(p, scene)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "spiral: ")

	// only the sun made it to the canvas
	sun := NewRecording()
	require.NoError(t, Sun(NewPen(sun), -330, 260, DefaultSunOptions()))
	assert.Equal(t, sun.Len(), rec.Len())
}

func TestDraw_UsesThePlacement(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Shaded.Rings.At = Pt(0, 0)

	scene, err := cfg.Scene(PackShaded)
	require.NoError(t, err)

	p, rec := newTestPen()
	require.NoError(t, Draw(p, scene[3:4]))

	ops := rec.Ops()
	require.Len(t, ops, 5)
	assertPoint(t, Pt(-80, -30), ops[0].Path[0], eps)
}
