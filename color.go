package figures

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/esimov/figures/utils"
	"golang.org/x/image/colornames"
)

// ParseColor resolves a color name (e.g. "gold", "light blue") or a hex
// triplet ("#888", "#FFD66B", with an optional alpha) to a color.NRGBA.
func ParseColor(s string) (color.NRGBA, error) {
	name := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", ""))
	if name == "" {
		return color.NRGBA{}, invalidf("empty color")
	}
	if name[0] == '#' {
		c, err := utils.HexToNRGBA(name)
		if err != nil {
			return color.NRGBA{}, invalidf("malformed hex color %q", s)
		}
		return c, nil
	}
	if c, ok := colornames.Map[name]; ok {
		return toNRGBA(c), nil
	}
	return color.NRGBA{}, invalidf("unknown color name %q", s)
}

// MustParseColor is like ParseColor but panics on error.
// It's meant for literal colors known to be valid.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// parseColors resolves the colors in order and stops at the first failure.
func parseColors(figure string, names ...string) ([]color.NRGBA, error) {
	cols := make([]color.NRGBA, len(names))
	for i, n := range names {
		c, err := ParseColor(n)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", figure, err)
		}
		cols[i] = c
	}
	return cols, nil
}

// toNRGBA converts any color to the non-premultiplied 8 bit representation.
func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
