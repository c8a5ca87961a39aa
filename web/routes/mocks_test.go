package routes_test

import (
	"context"
	"io"
	"net/http"

	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/theory"
	"github.com/dasdy/mammajamma/web/routes"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

// failingWriter is a ResponseWriter whose body writes always fail.
type failingWriter struct {
	header http.Header
	status int
	err    error
}

func (f *failingWriter) Header() http.Header {
	if f.header == nil {
		f.header = make(http.Header)
	}

	return f.header
}

func (f *failingWriter) Write([]byte) (int, error) {
	return 0, f.err
}

func (f *failingWriter) WriteHeader(status int) {
	f.status = status
}

// setupServerHandler creates a handler over the real chord table.
func setupServerHandler() *routes.ServerHandler {
	return &routes.ServerHandler{
		Table:      theory.NewChordTable(),
		Geometry:   layout.DefaultGeometry(),
		DefaultKey: theory.DefaultKey,
	}
}
