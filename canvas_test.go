package figures

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func TestRecording_Playback(t *testing.T) {
	src := NewRecording()
	src.Fill([]Point{{0, 0}, {10, 0}, {10, 10}}, blue)
	src.Stroke([]Point{{0, 0}, {10, 10}}, red, 2)
	src.Dot(Pt(3, 4), 6, red)
	src.Text(Pt(-1, 1), "label", AlignRight, DefaultFont, blue)

	dst := NewRecording()
	src.Playback(dst)

	if diff := cmp.Diff(src.Ops(), dst.Ops()); diff != "" {
		t.Errorf("playback mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []OpKind{OpFill, OpStroke, OpDot, OpText}, kinds(dst.Ops()))
	assert.Len(t, dst.Filter(OpDot), 1)
	assert.Empty(t, dst.Filter(OpKind(42)))
}

func TestRecording_ClonesPaths(t *testing.T) {
	rec := NewRecording()
	path := []Point{{0, 0}, {1, 1}}
	rec.Stroke(path, red, 1)
	path[1] = Pt(5, 5)

	assert.Equal(t, Pt(1, 1), rec.Ops()[0].Path[1])
}

func TestRecording_Reset(t *testing.T) {
	rec := NewRecording()
	rec.Dot(Pt(0, 0), 1, red)
	rec.Reset()
	assert.Zero(t, rec.Len())
}

func TestOpKind_String(t *testing.T) {
	assert.Equal(t, "stroke", OpStroke.String())
	assert.Equal(t, "fill", OpFill.String())
	assert.Equal(t, "dot", OpDot.String())
	assert.Equal(t, "text", OpText.String())
	assert.Equal(t, "unknown", OpKind(-1).String())
}

func TestAlign_Anchor(t *testing.T) {
	assert.Equal(t, 0.0, AlignLeft.anchor())
	assert.Equal(t, 0.5, AlignCenter.anchor())
	assert.Equal(t, 1.0, AlignRight.anchor())
	assert.Equal(t, 0.0, Align("").anchor())
}

func TestPoint(t *testing.T) {
	assert.Equal(t, Pt(4, 6), Pt(1, 2).Add(Pt(3, 4)))
	assert.Equal(t, 5.0, Pt(0, 0).Dist(Pt(3, 4)))
}
