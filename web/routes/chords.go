package routes

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dasdy/mammajamma/model"
)

// ChordsResponse is the JSON body of the chords endpoint.
type ChordsResponse struct {
	Key      model.Key `json:"key"`
	Fallback bool      `json:"fallback"`
	model.ChordSet
	Chords      []model.Chord              `json:"chords"`
	Connections []model.IntervalConnection `json:"connections"`
	Diagram     model.Diagram              `json:"diagram"`
}

// BuildChordsResponse collects the derived chord data of key.
func (s *ServerHandler) BuildChordsResponse(ctx context.Context, key model.Key) ChordsResponse {
	sel := s.selectionFor(ctx, key)

	return ChordsResponse{
		Key:         sel.Key(),
		Fallback:    !s.Table.Has(key),
		ChordSet:    sel.ChordSet(),
		Chords:      sel.Chords(),
		Connections: sel.Connections(),
		Diagram:     sel.Diagram(),
	}
}

// ChordsHandle serves the chords of the requested key as JSON.
func (s *ServerHandler) ChordsHandle(w http.ResponseWriter, r *http.Request) {
	key := s.RequestedKey(r)
	ctx := withKey(r, key)

	slog.InfoContext(ctx, "Handling chords request")

	resp := s.BuildChordsResponse(ctx, key)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.ErrorContext(ctx, "Failed to encode chords", "error", err)
	}
}

// HealthHandle reports that the server is up.
func (s *ServerHandler) HealthHandle(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil {
		slog.Error("Failed to encode health response", "error", err)
	}
}
