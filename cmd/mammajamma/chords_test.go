package mammajamma

import (
	"testing"

	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/stretchr/testify/assert"
)

func TestRenderChordSet(t *testing.T) {
	table := theory.NewChordTable()

	t.Run("mapped key", func(t *testing.T) {
		out := renderChordSet("C", table)

		assert.Contains(t, out, "tonic C")
		assert.Contains(t, out, "Em G Bdim Dm F Am")
		assert.Contains(t, out, "Dm Em F G Am Bdim")
		assert.Contains(t, out, "G Dm Am Em Bdim F")
		assert.NotContains(t, out, "not in table")
	})

	t.Run("unmapped key", func(t *testing.T) {
		out := renderChordSet("H", table)

		assert.Contains(t, out, "tonic C")
		assert.Contains(t, out, "not in table, showing C")
	})
}

func TestKeysFromArgs(t *testing.T) {
	assert.Equal(t, theory.Keys(), keysFromArgs(nil))
	assert.Equal(t, []model.Key{"D", "C#/Db"}, keysFromArgs([]string{"D", "C#/Db"}))
}
