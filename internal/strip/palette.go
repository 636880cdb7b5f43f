package strip

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds the fixed set of colors the compositor draws with. The
// compositor never blends or derives colors; whatever is in here is what
// lands on the canvas.
type Palette struct {
	Text       color.RGBA // main text (values, route codes)
	Accent     color.RGBA
	Background color.RGBA // canvas clear color
	Box        color.RGBA // route box and info area background
	RouteLine  color.RGBA
	Plane      color.RGBA
	Separator  color.RGBA
	Label      color.RGBA // muted tone for info labels
}

// ParseColor parses a "#RRGGBB" hex string into an opaque RGBA color.
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// DefaultPalette returns the aviation-style colors the display ships with.
func DefaultPalette() Palette {
	return Palette{
		Text:       mustColor("#FFFF00"),
		Accent:     mustColor("#00BA0F"),
		Background: mustColor("#000000"),
		Box:        mustColor("#454545"),
		RouteLine:  mustColor("#666666"),
		Plane:      mustColor("#FFFFFF"),
		Separator:  mustColor("#555555"),
		Label:      mustColor("#999999"),
	}
}

func mustColor(hex string) color.RGBA {
	c, err := ParseColor(hex)
	if err != nil {
		panic(err)
	}
	return c
}
