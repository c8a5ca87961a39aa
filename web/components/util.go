package components

import (
	"fmt"
	"net/url"

	"github.com/dasdy/mammajamma/model"
)

// svgLink returns the URL of the standalone SVG for key.
func svgLink(key model.Key) string {
	return "/diagram.svg?" + url.Values{"key": {string(key)}}.Encode()
}

// OvalPath draws the petal outline as two mirrored arcs going up from the
// start point and back. The result is unrotated, see RotateTransform.
func OvalPath(p *model.Petal, g *model.Geometry) string {
	return fmt.Sprintf("M %.2f %.2f a %.2f %.2f 0 1 0 0 %.2f a %.2f %.2f 0 1 0 0 %.2f Z",
		p.Start.X, p.Start.Y,
		g.PetalWidth, g.PetalLength, -g.PetalLength*2,
		g.PetalWidth, g.PetalLength, g.PetalLength*2)
}

// RotateTransform rotates a petal around its own start point.
func RotateTransform(p *model.Petal) string {
	return fmt.Sprintf("rotate(%.2f %.2f %.2f)", p.Angle, p.Start.X, p.Start.Y)
}

func ViewBox(g *model.Geometry) string {
	return fmt.Sprintf("0 0 %.0f %.0f", g.Width, g.Height)
}
