package routes

import (
	"log/slog"
	"net/http"

	"github.com/dasdy/mammajamma/state"
	"github.com/dasdy/mammajamma/theory"
	cs "github.com/dasdy/mammajamma/web/components"
)

// BuildDiagramRenderContext builds the render context for the diagram page.
func (s *ServerHandler) BuildDiagramRenderContext(sel *state.Selection) cs.RenderContext {
	return cs.RenderContext{
		Keys:     theory.Keys(),
		Selected: sel.Key(),
		Diagram:  sel.Diagram(),
	}
}

// DiagramHandle handles requests to the diagram page.
func (s *ServerHandler) DiagramHandle(w http.ResponseWriter, r *http.Request) {
	key := s.RequestedKey(r)
	ctx := withKey(r, key)

	slog.InfoContext(ctx, "Handling diagram page request")

	renderContext := s.BuildDiagramRenderContext(s.selectionFor(ctx, key))

	slog.DebugContext(ctx, "Built render context", "nodes", renderContext.Diagram.NodeCount())

	if err := SafeRenderTemplate(cs.Page(&renderContext), w); err != nil {
		renderError(ctx, w, err)
	}
}

// SVGHandle serves the diagram alone as an SVG document.
func (s *ServerHandler) SVGHandle(w http.ResponseWriter, r *http.Request) {
	key := s.RequestedKey(r)
	ctx := withKey(r, key)

	slog.InfoContext(ctx, "Handling diagram svg request")

	diagram := s.selectionFor(ctx, key).Diagram()

	if err := SafeRenderTemplateAs(cs.DiagramDocument(&diagram), w, "image/svg+xml"); err != nil {
		renderError(ctx, w, err)
	}
}
