package figures

import (
	"fmt"
	"image"
	"image/color"

	"github.com/esimov/figures/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// Gui is the basic struct containing all of the information needed for the preview window.
// It shows the rendered figures until the user dismisses the window.
type Gui struct {
	cfg struct {
		window struct {
			w     int
			h     int
			title string
		}
		color struct {
			background color.NRGBA
		}
	}
	proc struct {
		img    image.Image
		screen *ebiten.Image
	}
	cp *Processor
}

// NewGUI initializes the preview window for a rendered image.
func NewGUI(img image.Image, title string, background color.NRGBA) *Gui {
	gui := &Gui{}
	gui.proc.img = img
	gui.cfg.color.background = background
	gui.cfg.window.title = title

	b := img.Bounds()
	gui.initWindow(b.Dx(), b.Dy())

	return gui
}

// initWindow sets the window size. The window keeps the canvas size unless
// it exceeds the screen in both directions.
func (g *Gui) initWindow(w, h int) {
	r := getRatio(float64(w), float64(h))
	g.cfg.window.w = int(float64(w) * r)
	g.cfg.window.h = int(float64(h) * r)
}

// getRatio returns the scale keeping the window within the predefined screen size.
func getRatio(w, h float64) float64 {
	r := 1.0
	if w > maxScreenX && h > maxScreenY {
		wr := maxScreenX / w // width ratio
		hr := maxScreenY / h // height ratio

		r = utils.Min(wr, hr)
	}
	return r
}

// Run opens the window and blocks until it is closed with a left click,
// the Escape key or the window's close button.
func (g *Gui) Run() error {
	ebiten.SetWindowTitle(g.cfg.window.title)
	ebiten.SetWindowSize(g.cfg.window.w, g.cfg.window.h)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	if g.cp != nil && g.cp.Spinner != nil {
		g.cp.Spinner.RestoreCursor()
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Gui) Update() error {
	if g.dismissed() {
		return ebiten.Termination
	}
	return nil
}

func (g *Gui) dismissed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// Draw implements ebiten.Game.
func (g *Gui) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.color.background)
	if g.proc.img == nil {
		return
	}
	if g.proc.screen == nil {
		g.proc.screen = ebiten.NewImageFromImage(g.proc.img)
	}
	screen.DrawImage(g.proc.screen, nil)
}

// Layout implements ebiten.Game. The logical screen keeps the image size,
// ebiten scales it to the window.
func (g *Gui) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.proc.img == nil {
		return outsideWidth, outsideHeight
	}
	b := g.proc.img.Bounds()
	return b.Dx(), b.Dy()
}

// showPreview rasterizes the pack and shows it in a window.
func (p *Processor) showPreview() error {
	img, err := p.Rasterize()
	if err != nil {
		return err
	}
	cfg := p.config()
	bg, err := ParseColor(cfg.Canvas.Background)
	if err != nil {
		return err
	}

	gui := NewGUI(img, cfg.Canvas.Title, bg)
	gui.cp = p
	return gui.Run()
}
