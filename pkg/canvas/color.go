package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ParseColor resolves an SVG/X11 color name such as "brown", or a hex color
// of the form #rgb, #rgba, #rrggbb or #rrggbbaa.
func ParseColor(name string) (color.Color, error) {
	s := strings.ToLower(strings.TrimSpace(name))

	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		switch len(hex) {
		case 3, 4, 6, 8:
		default:
			return nil, fmt.Errorf("color %q: hex must have 3, 4, 6 or 8 digits", name)
		}
		if _, err := strconv.ParseUint(hex, 16, 32); err != nil {
			return nil, fmt.Errorf("color %q: %w", name, err)
		}
		c := gg.Hex(hex)
		return color.NRGBA{
			R: uint8(math.Round(c.R * 255)),
			G: uint8(math.Round(c.G * 255)),
			B: uint8(math.Round(c.B * 255)),
			A: uint8(math.Round(c.A * 255)),
		}, nil
	}

	c, ok := colornames.Map[s]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
