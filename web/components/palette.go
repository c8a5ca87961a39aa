package components

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

var white = colorful.Color{R: 1, G: 1, B: 1}

// Palette derives the colors used to draw one petal from its base color.
type Palette struct {
	base colorful.Color
}

func ParsePalette(hex string) (Palette, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Palette{}, fmt.Errorf("invalid petal color %q: %w", hex, err)
	}

	return Palette{base: c}, nil
}

func (p Palette) Stroke() string {
	return p.base.Hex()
}

// Highlight is the stroke of a hovered chord circle.
func (p Palette) Highlight() string {
	return p.base.BlendLab(white, 0.35).Clamped().Hex()
}
