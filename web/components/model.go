package components

import (
	"github.com/dasdy/mammajamma/model"
)

// RenderContext is everything the diagram page needs to render.
type RenderContext struct {
	Keys     []model.Key
	Selected model.Key
	Diagram  model.Diagram
}

// Fixed colors of the diagram outside the petals.
const (
	NodeFill    = "#1e293b"
	NodeText    = "#ffffff"
	TonicFill   = "#ec2f3b"
	TonicStroke = "#800f0f"
	FontFamily  = "Arial, serif"
)

// Stroke widths and hover scale factors of the chord circles.
const (
	PetalStrokeWidth      = 5
	NodeStrokeWidth       = 3
	NodeHoverStrokeWidth  = 4
	NodeHoverScale        = 1.1
	TonicStrokeWidth      = 2
	TonicHoverStrokeWidth = 3
	TonicHoverScale       = 1.05
	HoverDurationMs       = 200
)
