package figures

import (
	"fmt"
	"image"
	"io"

	"github.com/esimov/figures/utils"
)

// Processor options
type Processor struct {
	Pack    Pack
	Config  Config
	Spinner *utils.Spinner
	Preview bool
}

// NewProcessor returns a processor drawing the pack on the default layout.
func NewProcessor(pack Pack) *Processor {
	return &Processor{
		Pack:    pack,
		Config:  DefaultConfig(),
		Preview: true,
	}
}

// config returns the processor's layout, falling back to the default
// one when the processor has been declared as a zero value.
func (p *Processor) config() Config {
	if p.Config.Canvas.Width == 0 && p.Config.Canvas.Height == 0 {
		return DefaultConfig()
	}
	return p.Config
}

func (p *Processor) pack() Pack {
	if p.Pack == "" {
		return PackPlus
	}
	return p.Pack
}

// Render draws the selected pack with a fresh pen and returns the recorded
// canvas operations. The recording can be replayed on any Canvas.
func (p *Processor) Render() (*Recording, error) {
	cfg := p.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene, err := cfg.Scene(p.pack())
	if err != nil {
		return nil, err
	}

	rec := NewRecording()
	pen := NewPen(rec)
	// Validate has already checked the color.
	col, _ := ParseColor(cfg.Canvas.PenColor)
	pen.SetPenColor(col)

	if err := Draw(pen, scene); err != nil {
		return nil, err
	}
	Logger().Info("scene rendered", "pack", p.pack(), "figures", len(scene), "ops", rec.Len())
	return rec, nil
}

// Rasterize renders the pack into an image of the configured surface size.
func (p *Processor) Rasterize() (image.Image, error) {
	rec, err := p.Render()
	if err != nil {
		return nil, err
	}
	return p.rasterize(rec)
}

func (p *Processor) rasterize(rec *Recording) (image.Image, error) {
	cfg := p.config()
	bg, err := ParseColor(cfg.Canvas.Background)
	if err != nil {
		return nil, err
	}
	r, err := NewRaster(cfg.Canvas.Width, cfg.Canvas.Height, bg)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	rec.Playback(r)
	img := r.Image()
	if err := r.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err)
	}
	return imgToNRGBA(img), nil
}

// Process renders the pack and encodes it into an io.Writer interface.
// An empty format is deduced from the destination file extension,
// falling back to png for anything else.
func (p *Processor) Process(w io.Writer, format string) error {
	var err error
	if format == "" {
		format, err = formatOf(w)
	} else {
		format, err = normalizeFormat(format)
	}
	if err != nil {
		return err
	}

	rec, err := p.Render()
	if err != nil {
		return err
	}

	if format == FormatSVG {
		cfg := p.config()
		bg, err := ParseColor(cfg.Canvas.Background)
		if err != nil {
			return err
		}
		s, err := NewSVG(w, cfg.Canvas.Width, cfg.Canvas.Height, bg, cfg.Canvas.Title)
		if err != nil {
			return err
		}
		rec.Playback(s)
		return s.Close()
	}

	img, err := p.rasterize(rec)
	if err != nil {
		return err
	}
	return encodeImg(w, img, format)
}
