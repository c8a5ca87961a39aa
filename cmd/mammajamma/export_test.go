package mammajamma

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dasdy/mammajamma/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInterruptContextCancelsOnInterrupt(t *testing.T) {
	ctx, stop := interruptContext(context.Background())
	defer stop()

	p, err := os.FindProcess(os.Getpid())
	require.NoError(t, err)
	require.NoError(t, p.Signal(os.Interrupt))

	select {
	case <-ctx.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("context was not cancelled by interrupt")
	}

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestRunExport(t *testing.T) {
	t.Run("writes the requested keys", func(t *testing.T) {
		dir := t.TempDir()

		require.NoError(t, runExport(context.Background(), dir, []model.Key{"C", "F#/Gb"}, io.Discard))

		assert.FileExists(t, filepath.Join(dir, "C.svg"))
		assert.FileExists(t, filepath.Join(dir, "F#-Gb.svg"))
	})

	t.Run("stops when cancelled", func(t *testing.T) {
		dir := t.TempDir()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := runExport(ctx, dir, []model.Key{"C"}, io.Discard)

		require.ErrorIs(t, err, context.Canceled)
		assert.NoFileExists(t, filepath.Join(dir, "C.svg"))
	})
}
