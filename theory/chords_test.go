package theory_test

import (
	"testing"

	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChordTableC(t *testing.T) {
	table := theory.NewChordTable()

	set := table.Lookup("C")

	assert.Equal(t, "C", set.Tonic)
	assert.Equal(t, []string{"C", "Em", "G", "Bdim", "Dm", "F", "Am"}, set.Thirds)
	assert.Equal(t, []string{"C", "F", "Bdim", "Em", "Am", "Dm", "G"}, set.Fourths)
	assert.Equal(t, []string{"C", "Dm", "Em", "F", "G", "Am", "Bdim"}, set.Seconds)
}

func TestChordTableAllKeys(t *testing.T) {
	table := theory.NewChordTable()
	keys := theory.Keys()

	require.Len(t, keys, 12)

	seen := make(map[theory.PitchClass]model.Key)

	for _, key := range keys {
		t.Run(string(key), func(t *testing.T) {
			assert.True(t, table.Has(key))

			pc, err := theory.ParseKey(string(key))
			require.NoError(t, err)

			other, dup := seen[pc]
			assert.False(t, dup, "pitch class of %s already used by %s", key, other)
			seen[pc] = key

			set := table.Lookup(key)
			for _, list := range [][]string{set.Thirds, set.Fourths, set.Seconds} {
				require.Len(t, list, 7)
				assert.Equal(t, set.Tonic, list[0], "interval lists start with the tonic")
			}
		})
	}
}

func TestChordTableFallback(t *testing.T) {
	table := theory.NewChordTable()

	tests := []model.Key{"H", "", "Cb/B#", "not a key"}

	for _, key := range tests {
		t.Run(string(key), func(t *testing.T) {
			assert.False(t, table.Has(key))
			assert.Equal(t, table.Lookup(theory.DefaultKey), table.Lookup(key))
		})
	}
}

func TestChordTableEnharmonicSpelling(t *testing.T) {
	table := theory.NewChordTable()

	t.Run("flat half wins when it is simpler", func(t *testing.T) {
		set := table.Lookup("C#/Db")

		assert.Equal(t, "Db", set.Tonic)
		assert.Equal(t, []string{"Db", "Fm", "Ab", "Cdim", "Ebm", "Gb", "Bbm"}, set.Thirds)
	})

	t.Run("sharp half wins on a tie", func(t *testing.T) {
		set := table.Lookup("F#/Gb")

		assert.Equal(t, "F#", set.Tonic)
		assert.Equal(t, "E#dim", set.Seconds[6])
	})

	t.Run("aliases resolve to the full name", func(t *testing.T) {
		assert.Equal(t, table.Lookup("A#/Bb"), table.Lookup("Bb"))
		assert.Equal(t, table.Lookup("A#/Bb"), table.Lookup("A#"))
	})

	t.Run("alias keeps the simpler spelling", func(t *testing.T) {
		assert.True(t, table.Has("C#"))
		assert.Equal(t, "Db", table.Lookup("C#").Tonic)
		assert.Equal(t, "Db", table.Lookup("C#").Thirds[0])
	})
}

func TestLookupReturnsCopies(t *testing.T) {
	table := theory.NewChordTable()

	set := table.Lookup("G")
	set.Fourths[1] = "changed"

	assert.Equal(t, "C", table.Lookup("G").Fourths[1])
}

func TestQualityOf(t *testing.T) {
	tests := []struct {
		chord string
		want  model.ChordQuality
	}{
		{"C", model.QualityMajor},
		{"Bb", model.QualityMajor},
		{"Bbm", model.QualityMinor},
		{"F#m", model.QualityMinor},
		{"Bdim", model.QualityDiminished},
		{"E#dim", model.QualityDiminished},
	}

	for _, tt := range tests {
		t.Run(tt.chord, func(t *testing.T) {
			assert.Equal(t, tt.want, theory.QualityOf(tt.chord))
		})
	}
}
