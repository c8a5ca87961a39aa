package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/dasdy/mammajamma/web/components"
	"github.com/schollz/progressbar/v3"
)

// FileName returns the SVG file name for key. Enharmonic names such as
// "C#/Db" become "C#-Db.svg".
func FileName(key model.Key) string {
	return strings.ReplaceAll(string(key), "/", "-") + ".svg"
}

// WriteDiagram renders the diagram of key into path.
func WriteDiagram(ctx context.Context, path string, d *model.Diagram) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %s: %w", path, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("could not close %s: %w", path, cerr)
		}
	}()

	if err := components.DiagramDocument(d).Render(ctx, f); err != nil {
		return fmt.Errorf("could not render %s: %w", d.Key, err)
	}

	return nil
}

// WriteAll writes one SVG per key into dir and returns the written paths.
// Progress is drawn to progress; pass io.Discard to hide it.
func WriteAll(ctx context.Context, dir string, keys []model.Key, table *theory.ChordTable, g model.Geometry, progress io.Writer) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create output directory %s: %w", dir, err)
	}

	bar := progressbar.NewOptions(len(keys),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Exporting diagrams..."),
		progressbar.OptionShowCount())

	paths := make([]string, 0, len(keys))

	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return paths, fmt.Errorf("export interrupted: %w", err)
		}

		d := layout.Compute(key, table.Lookup(key), g)
		path := filepath.Join(dir, FileName(key))

		if err := WriteDiagram(ctx, path, &d); err != nil {
			return paths, err
		}

		slog.DebugContext(ctx, "Wrote diagram", "key", key, "path", path)

		paths = append(paths, path)

		if err := bar.Add(1); err != nil {
			slog.Error("could not update progress bar", "error", err)
		}
	}

	if err := bar.Finish(); err != nil {
		slog.Error("could not finish progress bar", "error", err)
	}

	return paths, nil
}
