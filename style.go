package figures

import "image/color"

// Style is the ambient pen style shared by all the drawing operations.
type Style struct {
	PenColor  color.NRGBA
	FillColor color.NRGBA
	Width     float64
}

// Style returns a snapshot of the current style.
func (p *Pen) Style() Style {
	return p.style
}

// Save returns the current style so it can be handed back to Restore.
// The usual pattern scopes a style change to a function body:
//
//	defer p.Restore(p.Save())
func (p *Pen) Save() Style {
	return p.style
}

// Restore emits the pending polyline and reinstates a saved style.
func (p *Pen) Restore(s Style) {
	p.flush()
	p.style = s
}

// Styled runs fn with the current style saved and restores it afterwards,
// even if fn panics.
func (p *Pen) Styled(fn func()) {
	defer p.Restore(p.Save())
	fn()
}
