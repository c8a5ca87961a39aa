package routes_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildChordsResponse(t *testing.T) {
	handler := setupServerHandler()

	t.Run("mapped key", func(t *testing.T) {
		resp := handler.BuildChordsResponse(context.Background(), "C")

		assert.Equal(t, model.Key("C"), resp.Key)
		assert.False(t, resp.Fallback)
		assert.Equal(t, "C", resp.Tonic)
		assert.Equal(t, []string{"C", "F", "Bdim", "Em", "Am", "Dm", "G"}, resp.Fourths)
		assert.Len(t, resp.Chords, 19)
		assert.Len(t, resp.Connections, 18)
	})

	t.Run("unmapped key", func(t *testing.T) {
		resp := handler.BuildChordsResponse(context.Background(), "H")

		assert.Equal(t, model.Key("H"), resp.Key)
		assert.True(t, resp.Fallback)
		assert.Equal(t, "C", resp.Tonic)
		assert.Equal(t, "H", resp.Diagram.TonicLabel)
	})
}

func TestChordsHandle(t *testing.T) {
	handler := setupServerHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/chords?key=D", nil)
	w := httptest.NewRecorder()

	handler.ChordsHandle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var resp routes.ChordsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.Equal(t, model.Key("D"), resp.Key)
	assert.Equal(t, "D", resp.Tonic)
	assert.Equal(t, []string{"D", "Em", "F#m", "G", "A", "Bm", "C#dim"}, resp.Seconds)
	assert.Equal(t, model.IntervalConnection{From: "D", To: "F#m", Interval: model.IntervalThird}, resp.Connections[0])
	require.Len(t, resp.Diagram.Petals, 3)
	assert.Equal(t, "3rds", resp.Diagram.Petals[0].Label)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "thirds")
	assert.Contains(t, raw, "connections")
}

func TestHealthHandle(t *testing.T) {
	handler := setupServerHandler()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()

	handler.HealthHandle(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
