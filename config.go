package figures

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// CanvasConfig describes the drawing surface.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Title      string `toml:"title"`
	PenColor   string `toml:"pen_color"` // ambient pen color before the first figure
}

type (
	SunPlacement struct {
		At Point `toml:"at"`
		SunOptions
	}
	SpiralPlacement struct {
		At Point `toml:"at"`
		SpiralOptions
	}
	HexGridPlacement struct {
		At Point `toml:"at"`
		HexGridOptions
	}
	BeePlacement struct {
		At    Point   `toml:"at"`
		Scale float64 `toml:"scale"`
	}
	SnowflakePlacement struct {
		At Point `toml:"at"`
		SnowflakeOptions
	}
	FlowerPlacement struct {
		At Point `toml:"at"`
		FlowerOptions
	}
	RhombusPlacement struct {
		At Point `toml:"at"`
		RhombusOptions
	}
	TrianglePlacement struct {
		At Point `toml:"at"`
		TriangleOptions
	}
	PrismPlacement struct {
		At Point `toml:"at"`
		PrismOptions
	}
	RingsPlacement struct {
		At Point `toml:"at"`
		RingsOptions
	}
	CompassPlacement struct {
		At Point `toml:"at"`
		CompassOptions
	}
	MarkedSquarePlacement struct {
		At Point `toml:"at"`
		MarkedSquareOptions
	}
)

// PlusConfig lays out the sun, spiral, honeycomb, bee, snowflake and flower.
type PlusConfig struct {
	Sun       SunPlacement       `toml:"sun"`
	Spiral    SpiralPlacement    `toml:"spiral"`
	Honeycomb HexGridPlacement   `toml:"honeycomb"`
	Bee       BeePlacement       `toml:"bee"`
	Snowflake SnowflakePlacement `toml:"snowflake"`
	Flower    FlowerPlacement    `toml:"flower"`
}

// ShadedConfig lays out the rhombuses, triangle, prism, rings, compass and marked square.
type ShadedConfig struct {
	Rhombuses    RhombusPlacement      `toml:"rhombuses"`
	Triangle     TrianglePlacement     `toml:"triangle"`
	Prism        PrismPlacement        `toml:"prism"`
	Rings        RingsPlacement        `toml:"rings"`
	Compass      CompassPlacement      `toml:"compass"`
	MarkedSquare MarkedSquarePlacement `toml:"marked_square"`
}

// Config holds the surface settings and the layout of both figure packs.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Plus   PlusConfig   `toml:"plus"`
	Shaded ShadedConfig `toml:"shaded"`
}

// DefaultConfig returns the classic layout on a 1100×800 light blue surface.
func DefaultConfig() Config {
	return Config{
		Canvas: CanvasConfig{
			Width:      1100,
			Height:     800,
			Background: "lightblue",
			Title:      "Figures",
			PenColor:   "black",
		},
		Plus: PlusConfig{
			Sun:       SunPlacement{Pt(-330, 260), DefaultSunOptions()},
			Spiral:    SpiralPlacement{Pt(-310, -120), DefaultSpiralOptions()},
			Honeycomb: HexGridPlacement{Pt(210, -10), DefaultHexGridOptions()},
			Bee:       BeePlacement{Pt(520, -10), 0.9},
			Snowflake: SnowflakePlacement{Pt(360, 250), DefaultSnowflakeOptions()},
			Flower:    FlowerPlacement{Pt(0, 50), DefaultFlowerOptions()},
		},
		Shaded: ShadedConfig{
			Rhombuses:    RhombusPlacement{Pt(-350, 250), DefaultRhombusOptions()},
			Triangle:     TrianglePlacement{Pt(350, 250), DefaultTriangleOptions()},
			Prism:        PrismPlacement{Pt(-350, 20), DefaultPrismOptions()},
			Rings:        RingsPlacement{Pt(350, 20), DefaultRingsOptions()},
			Compass:      CompassPlacement{Pt(-350, -250), DefaultCompassOptions()},
			MarkedSquare: MarkedSquarePlacement{Pt(350, -250), DefaultMarkedSquareOptions()},
		},
	}
}

// DecodeConfig reads a TOML layout on top of the defaults.
// Keys missing from the document keep their default values,
// unknown keys are reported as an error.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("could not decode the config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// LoadConfig reads the TOML layout file found at path.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("could not open the config file: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// Validate checks the surface settings. The figure options are
// validated by the figure procedures themselves.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, invalidf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height))
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas background: %w", err))
	}
	if _, err := ParseColor(c.Canvas.PenColor); err != nil {
		errs = append(errs, fmt.Errorf("canvas pen color: %w", err))
	}
	return errors.Join(errs...)
}

// Encode writes the configuration as TOML, which is a convenient
// starting point for a custom layout.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
