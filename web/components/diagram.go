package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/dasdy/mammajamma/model"
)

// printer writes formatted output and keeps the first error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}

	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// DiagramStyles renders the hover transitions for chord circles. Hover state
// lives entirely in CSS.
func DiagramStyles(g *model.Geometry) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		p := &printer{w: w}

		p.printf(`<style>
.chord-circle { transition: r %dms, stroke-width %dms, stroke %dms; }
.chord-node .chord-circle:hover { r: %.2fpx; stroke-width: %d; stroke: var(--highlight); }
.tonic-node .chord-circle:hover { r: %.2fpx; stroke-width: %d; stroke: var(--highlight); }
.chord-label { pointer-events: none; }
</style>`,
			HoverDurationMs, HoverDurationMs, HoverDurationMs,
			g.ChordRadius*NodeHoverScale, NodeHoverStrokeWidth,
			g.CenterRadius*TonicHoverScale, TonicHoverStrokeWidth)

		return p.err
	})
}

func writePetal(p *printer, petal *model.Petal, g *model.Geometry) error {
	palette, err := ParsePalette(petal.Color)
	if err != nil {
		return err
	}

	p.printf(`<g class="petal" data-interval="%s" style="--highlight: %s">`,
		esc(string(petal.Interval)), palette.Highlight())
	p.printf(`<path d="%s" fill="none" stroke="%s" stroke-width="%d" transform="%s"></path>`,
		OvalPath(petal, g), palette.Stroke(), PetalStrokeWidth, RotateTransform(petal))

	for _, n := range petal.Nodes {
		p.printf(`<g class="chord-node" data-chord="%s">`, esc(n.Name))
		p.printf(`<circle class="chord-circle" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%d"></circle>`,
			n.Position.X, n.Position.Y, g.ChordRadius, NodeFill, palette.Stroke(), NodeStrokeWidth)
		p.printf(`<text class="chord-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-weight="bold" font-size="16px" fill="%s">%s</text>`,
			n.Position.X, n.Position.Y, FontFamily, NodeText, esc(n.Name))
		p.printf(`</g>`)
	}

	p.printf(`<text class="petal-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-weight="bold" font-size="22px" fill="%s">%s</text>`,
		petal.LabelPos.X, petal.LabelPos.Y, FontFamily, palette.Stroke(), esc(petal.Label))
	p.printf(`</g>`)

	return p.err
}

func writeTonic(p *printer, d *model.Diagram) error {
	palette, err := ParsePalette(TonicStroke)
	if err != nil {
		return err
	}

	pos := d.Tonic.Position

	p.printf(`<g class="tonic-node" data-chord="%s" style="--highlight: %s">`, esc(d.Tonic.Name), palette.Highlight())
	p.printf(`<circle class="chord-circle" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s" stroke-width="%d"></circle>`,
		pos.X, pos.Y, d.Geometry.CenterRadius, TonicFill, palette.Stroke(), TonicStrokeWidth)
	p.printf(`<text class="chord-label" x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="middle" font-family="%s" font-weight="bold" font-size="40px" fill="%s">%s</text>`,
		pos.X, pos.Y, FontFamily, NodeText, esc(d.TonicLabel))
	p.printf(`</g>`)

	return p.err
}

func writeDiagram(ctx context.Context, w io.Writer, d *model.Diagram, standalone bool) error {
	p := &printer{w: w}
	g := &d.Geometry

	if standalone {
		p.printf(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
		p.printf(`<svg xmlns="http://www.w3.org/2000/svg" `)
	} else {
		p.printf(`<svg `)
	}

	p.printf(`class="diagram" data-key="%s" width="%.0f" height="%.0f" viewBox="%s" style="max-width: 100%%; height: auto">`,
		esc(string(d.Key)), g.Width, g.Height, ViewBox(g))

	if p.err != nil {
		return p.err
	}

	if err := DiagramStyles(g).Render(ctx, w); err != nil {
		return err
	}

	// Petals first so the tonic is drawn on top of their anchors.
	for i := range d.Petals {
		if err := writePetal(p, &d.Petals[i], g); err != nil {
			return err
		}
	}

	if err := writeTonic(p, d); err != nil {
		return err
	}

	p.printf(`</svg>`)

	return p.err
}

// Diagram renders the diagram as an inline <svg> element.
func Diagram(d *model.Diagram) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeDiagram(ctx, w, d, false)
	})
}

// DiagramDocument renders the diagram as a standalone SVG file.
func DiagramDocument(d *model.Diagram) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writeDiagram(ctx, w, d, true)
	})
}
