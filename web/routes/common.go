package routes

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/dasdy/mammajamma/logging"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/state"
	"github.com/dasdy/mammajamma/theory"
)

// ErrRender marks failures that happened before anything was written to the
// response.
var ErrRender = errors.New("could not render template")

// ServerHandler holds all dependencies needed for the web server handlers.
// Nothing in it changes after start-up, so it is shared by all requests.
type ServerHandler struct {
	Table      *theory.ChordTable
	Geometry   model.Geometry
	DefaultKey model.Key
}

// SafeRenderTemplate safely renders a templ component as an HTML response.
func SafeRenderTemplate(component templ.Component, w http.ResponseWriter) error {
	return SafeRenderTemplateAs(component, w, "text/html; charset=UTF-8")
}

// SafeRenderTemplateAs renders component into a buffer first, so a failed
// render never leaves a partial 200 response behind.
func SafeRenderTemplateAs(component templ.Component, w http.ResponseWriter, contentType string) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(context.Background(), &buf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRender, err)
	}

	// Template executed successfully to the buffer.
	// Now, copy it over to the ResponseWriter
	// This implies a 200 OK status code
	w.Header().Set("Content-Type", contentType)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}

// RequestedKey reads the selected key from the query, falling back to the
// handler's default key when none is given.
func (s *ServerHandler) RequestedKey(r *http.Request) model.Key {
	key := r.URL.Query().Get("key")
	if key == "" {
		return s.DefaultKey
	}

	return model.Key(key)
}

// selectionFor builds a fresh selection for one request.
func (s *ServerHandler) selectionFor(ctx context.Context, key model.Key) *state.Selection {
	if !s.Table.Has(key) {
		slog.InfoContext(ctx, "Requested key is not in the chord table", "key", key)
	}

	return state.NewSelection(s.Table, s.Geometry, key)
}

func withKey(r *http.Request, key model.Key) context.Context {
	return logging.AppendCtx(r.Context(), slog.String("key", string(key)))
}

func renderError(ctx context.Context, w http.ResponseWriter, err error) {
	slog.ErrorContext(ctx, "Failed to render", "error", err)

	// After a failed write the status line is already out.
	if errors.Is(err, ErrRender) {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
