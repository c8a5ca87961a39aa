package theory

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownKey = errors.New("unknown key")

// PitchClass is a semitone index in 0..11, C being 0.
type PitchClass int

const letterNames = "CDEFGAB"

// Pitch class of each natural letter, indexed like letterNames.
var letterPitch = [7]int{0, 2, 4, 5, 7, 9, 11}

// Note is a spelled note: a letter plus an accidental in semitones
// (-2 for double flat up to +2 for double sharp).
type Note struct {
	Letter     int
	Accidental int
}

func (n Note) PitchClass() PitchClass {
	return PitchClass(mod12(letterPitch[n.Letter] + n.Accidental))
}

func (n Note) String() string {
	var sb strings.Builder

	sb.WriteByte(letterNames[n.Letter])

	switch {
	case n.Accidental > 0:
		sb.WriteString(strings.Repeat("#", n.Accidental))
	case n.Accidental < 0:
		sb.WriteString(strings.Repeat("b", -n.Accidental))
	}

	return sb.String()
}

// ParseNote reads names such as "C", "F#", "Bb" or "Ebb".
func ParseNote(name string) (Note, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Note{}, fmt.Errorf("empty note name: %w", ErrUnknownKey)
	}

	letter := strings.IndexByte(letterNames, name[0])
	if letter < 0 {
		return Note{}, fmt.Errorf("note %q: %w", name, ErrUnknownKey)
	}

	accidentals := name[1:]
	if len(accidentals) > 2 {
		return Note{}, fmt.Errorf("note %q has too many accidentals: %w", name, ErrUnknownKey)
	}

	n := Note{Letter: letter}

	for _, r := range accidentals {
		switch r {
		case '#':
			n.Accidental++
		case 'b':
			n.Accidental--
		default:
			return Note{}, fmt.Errorf("note %q: unexpected %q: %w", name, r, ErrUnknownKey)
		}
	}

	// "#b" and friends cancel out, which is never a real spelling.
	if len(accidentals) == 2 && n.Accidental == 0 {
		return Note{}, fmt.Errorf("note %q: mixed accidentals: %w", name, ErrUnknownKey)
	}

	return n, nil
}

// ParseKey returns the pitch class of a dropdown key name. Both halves of an
// enharmonic name ("C#/Db") must name the same pitch class.
func ParseKey(name string) (PitchClass, error) {
	notes, err := keyNotes(name)
	if err != nil {
		return 0, err
	}

	return notes[0].PitchClass(), nil
}

func keyNotes(name string) ([]Note, error) {
	parts := strings.Split(name, "/")
	notes := make([]Note, 0, len(parts))

	for _, part := range parts {
		n, err := ParseNote(part)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", name, err)
		}

		if len(notes) > 0 && notes[0].PitchClass() != n.PitchClass() {
			return nil, fmt.Errorf("key %q names two pitch classes: %w", name, ErrUnknownKey)
		}

		notes = append(notes, n)
	}

	return notes, nil
}

func mod12(v int) int {
	return ((v % 12) + 12) % 12
}
