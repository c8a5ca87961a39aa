package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/dasdy/mammajamma/logging"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/dasdy/mammajamma/web/routes"
)

type Options struct {
	Port       int
	DefaultKey model.Key
	Geometry   model.Geometry
	Dev        bool
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// logRequests attaches the request path to the context logger and logs how
// long each request took.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logging.AppendCtx(r.Context(), slog.String("path", r.URL.Path))
		start := time.Now()

		next.ServeHTTP(w, r.WithContext(ctx))

		slog.DebugContext(ctx, "Request served", "method", r.Method, "duration", time.Since(start))
	})
}

func BuildServer(opts Options) http.Handler {
	table := theory.NewChordTable()

	defaultKey := opts.DefaultKey
	if !table.Has(defaultKey) {
		slog.Warn("Configured default key is not in the chord table", "key", defaultKey, "using", theory.DefaultKey)

		defaultKey = theory.DefaultKey
	}

	handler := routes.ServerHandler{
		Table:      table,
		Geometry:   opts.Geometry,
		DefaultKey: defaultKey,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", handler.HealthHandle)
	mux.HandleFunc("GET /api/chords", handler.ChordsHandle)
	mux.HandleFunc("GET /diagram.svg", handler.SVGHandle)
	mux.HandleFunc("GET /{$}", handler.DiagramHandle)

	return logRequests(disableCacheInDevMode(opts.Dev, mux))
}

func StartServer(opts Options) error {
	slog.Info("Running interface", "port", opts.Port, "defaultKey", opts.DefaultKey)

	err := http.ListenAndServe(
		fmt.Sprintf(":%d", opts.Port),
		BuildServer(opts))
	if err != nil {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
