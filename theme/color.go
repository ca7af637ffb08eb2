package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseColor resolves a W3C color name or "#rrggbb" hex value to a
// tcell color. Empty and "default" mean the terminal default.
func ParseColor(name string) (tcell.Color, error) {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return c, nil
}

// Brighten returns the color lightened in Lab space. Amount is added
// to the lightness channel; negative darkens. Non-RGB colors pass
// through unchanged.
func Brighten(c tcell.Color, amount float64) tcell.Color {
	cf, ok := toColorful(c)
	if !ok {
		return c
	}
	l, a, b := cf.Lab()
	l += amount
	if l < 0 {
		l = 0
	}
	if l > 1 {
		l = 1
	}
	return toTcell(colorful.Lab(l, a, b))
}

// Darken returns the color darkened in Lab space.
func Darken(c tcell.Color, amount float64) tcell.Color {
	return Brighten(c, -amount)
}

// Blend mixes two colors in Lab space. t is the weight of other:
// 0 returns c, 1 returns other. A non-RGB endpoint wins whole.
func Blend(c, other tcell.Color, t float64) tcell.Color {
	cf, ok := toColorful(c)
	if !ok {
		return other
	}
	of, ok := toColorful(other)
	if !ok {
		return c
	}
	return toTcell(cf.BlendLab(of, t))
}

func toColorful(c tcell.Color) (colorful.Color, bool) {
	if c == tcell.ColorDefault {
		return colorful.Color{}, false
	}
	h := c.Hex()
	if h < 0 {
		return colorful.Color{}, false
	}
	return colorful.Color{
		R: float64(h>>16&0xff) / 255,
		G: float64(h>>8&0xff) / 255,
		B: float64(h&0xff) / 255,
	}, true
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
