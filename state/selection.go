package state

import (
	"github.com/dasdy/mammajamma/layout"
	"github.com/dasdy/mammajamma/model"
	"github.com/dasdy/mammajamma/theory"
)

// Selection holds the selected key and everything derived from it. It is
// owned by a single view and is not safe for concurrent use.
type Selection struct {
	table    *theory.ChordTable
	geometry model.Geometry

	key         model.Key
	chordSet    model.ChordSet
	diagram     model.Diagram
	chords      []model.Chord
	connections []model.IntervalConnection
}

func NewSelection(table *theory.ChordTable, geometry model.Geometry, initial model.Key) *Selection {
	s := &Selection{table: table, geometry: geometry}
	s.Select(initial)

	return s
}

// Select makes key the current key and recomputes the diagram, the diatonic
// chords and their interval connections. Keys missing from the table get the
// default key's chords. Callers report the fallback.
func (s *Selection) Select(key model.Key) {
	s.key = key
	s.chordSet = s.table.Lookup(key)
	s.diagram = layout.Compute(key, s.chordSet, s.geometry)
	s.chords, s.connections = deriveChords(&s.diagram)
}

func deriveChords(d *model.Diagram) ([]model.Chord, []model.IntervalConnection) {
	chords := make([]model.Chord, 0, d.NodeCount()+1)
	connections := make([]model.IntervalConnection, 0, d.NodeCount())

	chords = append(chords, model.Chord{
		Name:     d.Tonic.Name,
		Quality:  model.QualityTonic,
		Position: d.Tonic.Position,
	})

	for _, p := range d.Petals {
		for _, n := range p.Nodes {
			chords = append(chords, model.Chord{
				Name:     n.Name,
				Quality:  theory.QualityOf(n.Name),
				Position: n.Position,
			})
			connections = append(connections, model.IntervalConnection{
				From:     d.Tonic.Name,
				To:       n.Name,
				Interval: p.Interval,
			})
		}
	}

	return chords, connections
}

func (s *Selection) Key() model.Key {
	return s.key
}

func (s *Selection) ChordSet() model.ChordSet {
	return s.chordSet
}

func (s *Selection) Diagram() model.Diagram {
	return s.diagram
}

// Chords returns the tonic followed by every petal's chords in drawing order.
// A chord appears once per petal it is drawn on.
func (s *Selection) Chords() []model.Chord {
	return s.chords
}

func (s *Selection) Connections() []model.IntervalConnection {
	return s.connections
}
