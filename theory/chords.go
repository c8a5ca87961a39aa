package theory

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/dasdy/mammajamma/model"
)

// DefaultKey is selected on start-up and used for keys missing from the table.
const DefaultKey model.Key = "C"

var dropdownKeys = []model.Key{
	"C", "C#/Db", "D", "D#/Eb", "E", "F",
	"F#/Gb", "G", "G#/Ab", "A", "A#/Bb", "B",
}

// Keys returns the twelve key names offered by the key dropdown, in order.
func Keys() []model.Key {
	return slices.Clone(dropdownKeys)
}

// Semitones above the tonic for each degree of the major scale.
var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}

// Triad suffix for each scale degree: I ii iii IV V vi vii°.
var triadSuffix = [7]string{"", "m", "m", "", "", "m", "dim"}

// MajorScale spells the major scale on tonic using each letter exactly once.
func MajorScale(tonic Note) [7]Note {
	var scale [7]Note

	for i, step := range majorSteps {
		letter := (tonic.Letter + i) % 7
		target := mod12(int(tonic.PitchClass()) + step)

		acc := mod12(target - letterPitch[letter])
		if acc > 6 {
			acc -= 12
		}

		scale[i] = Note{Letter: letter, Accidental: acc}
	}

	return scale
}

// DiatonicTriads names the seven triads of the major key on tonic.
func DiatonicTriads(tonic Note) [7]string {
	var triads [7]string

	for i, n := range MajorScale(tonic) {
		triads[i] = n.String() + triadSuffix[i]
	}

	return triads
}

// ChordSetFor groups the diatonic triads of tonic by stacking seconds,
// thirds and fourths from the first degree.
func ChordSetFor(tonic Note) model.ChordSet {
	triads := DiatonicTriads(tonic)

	stack := func(step int) []string {
		out := make([]string, len(triads))
		for i := range triads {
			out[i] = triads[(i*step)%len(triads)]
		}

		return out
	}

	return model.ChordSet{
		Tonic:   triads[0],
		Seconds: stack(1),
		Thirds:  stack(2),
		Fourths: stack(3),
	}
}

// QualityOf reads the chord quality from a triad name.
func QualityOf(chord string) model.ChordQuality {
	switch {
	case strings.HasSuffix(chord, "dim"):
		return model.QualityDiminished
	case strings.HasSuffix(chord, "m"):
		return model.QualityMinor
	default:
		return model.QualityMajor
	}
}

// ChordTable maps key names to their chord sets.
type ChordTable struct {
	sets       map[model.Key]model.ChordSet
	defaultKey model.Key
}

// NewChordTable builds the table for every dropdown key. Enharmonic keys are
// spelled with whichever half needs fewer accidentals, preferring the first
// (sharp) half on a tie. Both halves are registered as aliases of that
// spelling, so "C#" resolves to the Db chords.
func NewChordTable() *ChordTable {
	t := &ChordTable{
		sets:       make(map[model.Key]model.ChordSet, len(dropdownKeys)*2),
		defaultKey: DefaultKey,
	}

	for _, key := range dropdownKeys {
		notes, err := keyNotes(string(key))
		if err != nil {
			// dropdownKeys is fixed, this only fires if it is edited badly.
			panic(err)
		}

		set := ChordSetFor(simplestSpelling(notes))
		t.sets[key] = set

		if len(notes) > 1 {
			for _, n := range notes {
				t.sets[model.Key(n.String())] = set
			}
		}
	}

	return t
}

func simplestSpelling(notes []Note) Note {
	best := notes[0]
	bestCount := accidentalCount(best)

	for _, n := range notes[1:] {
		if c := accidentalCount(n); c < bestCount {
			best, bestCount = n, c
		}
	}

	return best
}

func accidentalCount(tonic Note) int {
	total := 0

	for _, n := range MajorScale(tonic) {
		if n.Accidental < 0 {
			total -= n.Accidental
		} else {
			total += n.Accidental
		}
	}

	return total
}

func (t *ChordTable) DefaultKey() model.Key {
	return t.defaultKey
}

// Has reports whether key has its own entry in the table.
func (t *ChordTable) Has(key model.Key) bool {
	_, ok := t.sets[key]

	return ok
}

// Lookup returns the chord set of key. Keys missing from the table get the
// default key's chord set instead of an error.
func (t *ChordTable) Lookup(key model.Key) model.ChordSet {
	set, ok := t.sets[key]
	if !ok {
		slog.Debug("Key not in chord table, using default", "key", key, "default", t.defaultKey)

		set = t.sets[t.defaultKey]
	}

	return model.ChordSet{
		Tonic:   set.Tonic,
		Thirds:  slices.Clone(set.Thirds),
		Fourths: slices.Clone(set.Fourths),
		Seconds: slices.Clone(set.Seconds),
	}
}
