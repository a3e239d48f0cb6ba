// Package palette resolves the colour specifications accepted by the turtle.
//
// A colour is either an X11/SVG colour name ("sienna", "LightCoral") or a hex triplet
// ("#FF8181", "#f81").
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

var ErrUnknownColor = errors.New("unknown color")

// Parse resolves spec into an opaque colour.
func Parse(spec string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return color.RGBA{}, fmt.Errorf("%w: empty", ErrUnknownColor)
	}

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w: %q: %v", ErrUnknownColor, spec, err)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	c, ok := colornames.Map[strings.ReplaceAll(s, " ", "")]
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrUnknownColor, spec)
	}
	return c, nil
}

// MustParse is Parse for colours known at compile time. It panics on error.
func MustParse(spec string) color.RGBA {
	c, err := Parse(spec)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex formats c as "#rrggbb", ignoring alpha. Fully transparent colours format as black.
func Hex(c color.Color) string {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "#000000"
	}
	return cf.Hex()
}
