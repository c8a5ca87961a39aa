package routes_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/state"
	"github.com/dasdy/mammajamma/theory"
	"github.com/stretchr/testify/assert"
)

func TestBuildDiagramRenderContext(t *testing.T) {
	handler := setupServerHandler()

	tests := []struct {
		name       string
		key        model.Key
		wantLabel  string
		wantTonic  string
		wantLength int
	}{
		{name: "default key", key: "C", wantLabel: "C", wantTonic: "C", wantLength: 18},
		{name: "enharmonic key", key: "D#/Eb", wantLabel: "D#/Eb", wantTonic: "Eb", wantLength: 18},
		{name: "unmapped key keeps its label", key: "H", wantLabel: "H", wantTonic: "C", wantLength: 18},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			sel := state.NewSelection(handler.Table, handler.Geometry, tc.key)

			result := handler.BuildDiagramRenderContext(sel)

			assert.Equal(t, theory.Keys(), result.Keys)
			assert.Equal(t, tc.key, result.Selected)
			assert.Equal(t, tc.wantLabel, result.Diagram.TonicLabel)
			assert.Equal(t, tc.wantTonic, result.Diagram.Tonic.Name)
			assert.Equal(t, tc.wantLength, result.Diagram.NodeCount())
		})
	}
}

func TestDiagramHandle(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		wantSelected string
		wantLabel    string
	}{
		{name: "default", target: "/", wantSelected: `<option value="C" selected>`, wantLabel: ">C</text>"},
		{name: "selected key", target: "/?key=A", wantSelected: `<option value="A" selected>`, wantLabel: ">A</text>"},
		{name: "enharmonic", target: "/?key=G%23%2FAb", wantSelected: `<option value="G#/Ab" selected>`, wantLabel: ">G#/Ab</text>"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := setupServerHandler()

			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			w := httptest.NewRecorder()

			handler.DiagramHandle(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, "text/html; charset=UTF-8", w.Header().Get("Content-Type"))

			body := w.Body.String()
			assert.Contains(t, body, tc.wantSelected)
			assert.Contains(t, body, tc.wantLabel)
			assert.Equal(t, 19, strings.Count(body, `<circle class="chord-circle"`))
		})
	}

	t.Run("unmapped key falls back", func(t *testing.T) {
		handler := setupServerHandler()

		req := httptest.NewRequest(http.MethodGet, "/?key=H", nil)
		w := httptest.NewRecorder()

		handler.DiagramHandle(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		body := w.Body.String()
		assert.NotContains(t, body, " selected>")
		assert.Contains(t, body, ">H</text>")
		assert.Contains(t, body, ">Bdim</text>")
	})
}

func TestSVGHandle(t *testing.T) {
	handler := setupServerHandler()

	req := httptest.NewRequest(http.MethodGet, "/diagram.svg?key=E", nil)
	w := httptest.NewRecorder()

	handler.SVGHandle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))

	body := w.Body.String()
	assert.True(t, strings.HasPrefix(body, "<?xml"))
	assert.Contains(t, body, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, body, `data-key="E"`)
	assert.NotContains(t, body, "<option")
}

func TestDiagramHandleLogsFallbackOnce(t *testing.T) {
	var buf bytes.Buffer

	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))
	t.Cleanup(func() { slog.SetDefault(prev) })

	handler := setupServerHandler()
	req := httptest.NewRequest(http.MethodGet, "/?key=H", nil)
	rr := httptest.NewRecorder()

	handler.DiagramHandle(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 1, strings.Count(buf.String(), "not in the chord table"))
	assert.NotContains(t, buf.String(), "falling back")
}
