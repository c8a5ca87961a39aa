package layout

import (
	"math"
	"slices"

	"github.com/dasdy/mammajamma/model"
)

// PetalSpec describes one of the fixed petals around the tonic.
type PetalSpec struct {
	// Angle in degrees, clockwise from north.
	Angle    float64
	Label    string
	Color    string
	Interval model.IntervalType
}

var petalSpecs = []PetalSpec{
	{Angle: 0, Label: "3rds", Color: "#61ee54", Interval: model.IntervalThird},
	{Angle: 135, Label: "2nds", Color: "#e51e7b", Interval: model.IntervalSecond},
	{Angle: 225, Label: "4ths", Color: "#ced814", Interval: model.IntervalFourth},
}

// PetalSpecs returns the petals in drawing order: north, south-east, south-west.
func PetalSpecs() []PetalSpec {
	return slices.Clone(petalSpecs)
}

func DefaultGeometry() model.Geometry {
	return model.Geometry{
		Width:        1000,
		Height:       1000,
		PetalLength:  200,
		PetalWidth:   80,
		CenterOffset: 50,
		ChordRadius:  30,
		CenterRadius: 60,
		LabelOffset:  40,
	}
}

// Compute lays out the diagram for key. It only depends on its arguments:
// the same input always yields the same coordinates.
//
// The center label is the requested key name even when chords is the
// fallback set of another key.
func Compute(key model.Key, chords model.ChordSet, g model.Geometry) model.Diagram {
	center := g.Center()

	d := model.Diagram{
		Key:        key,
		Geometry:   g,
		TonicLabel: string(key),
		Tonic:      model.ChordNode{Name: chords.Tonic, Position: center},
		Petals:     make([]model.Petal, 0, len(petalSpecs)),
	}

	for _, spec := range petalSpecs {
		d.Petals = append(d.Petals, computePetal(spec, chords.Interval(spec.Interval), g))
	}

	return d
}

func computePetal(spec PetalSpec, intervalChords []string, g model.Geometry) model.Petal {
	center := g.Center()
	rad := Radians(spec.Angle)
	sin, cos := math.Sincos(rad)

	// Screen Y grows downwards, hence the negated cosine.
	start := model.Point{
		X: center.X + g.CenterOffset*sin,
		Y: center.Y - g.CenterOffset*cos,
	}

	end := Rotate(model.Point{X: start.X, Y: start.Y - g.PetalLength*2}, start, rad)

	p := model.Petal{
		Angle:    spec.Angle,
		Label:    spec.Label,
		Color:    spec.Color,
		Interval: spec.Interval,
		Start:    start,
		End:      end,
		LabelPos: labelPosition(spec.Angle, end, g.LabelOffset),
	}

	names := PetalChords(spec.Interval, intervalChords)
	p.Nodes = make([]model.ChordNode, 0, len(names))

	step := 2 * math.Pi / float64(len(names)+1)

	for j, name := range names {
		t := -math.Pi/2 + step*float64(j+1)

		onOval := model.Point{
			X: start.X + g.PetalWidth*math.Sin(t),
			Y: start.Y - g.PetalLength*(1+math.Cos(t)),
		}

		p.Nodes = append(p.Nodes, model.ChordNode{
			Name:     name,
			Position: Rotate(onOval, start, rad),
			Interval: spec.Interval,
		})
	}

	return p
}

// PetalChords returns the chord names drawn on a petal: the interval list
// without its leading tonic. The fourths petal is drawn in reverse order.
func PetalChords(interval model.IntervalType, chords []string) []string {
	if len(chords) == 0 {
		return nil
	}

	names := slices.Clone(chords[1:])

	if interval == model.IntervalFourth {
		slices.Reverse(names)
	}

	return names
}

func labelPosition(angle float64, end model.Point, offset float64) model.Point {
	switch angle {
	case 0:
		return model.Point{X: end.X, Y: end.Y - offset}
	case 135:
		return model.Point{X: end.X + offset*0.7, Y: end.Y + offset*0.7}
	default:
		return model.Point{X: end.X - offset*0.7, Y: end.Y + offset*0.7}
	}
}

func Radians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// Rotate turns p around origin by rad radians, clockwise on screen.
func Rotate(p, origin model.Point, rad float64) model.Point {
	sin, cos := math.Sincos(rad)
	dx := p.X - origin.X
	dy := p.Y - origin.Y

	return model.Point{
		X: origin.X + dx*cos - dy*sin,
		Y: origin.Y + dx*sin + dy*cos,
	}
}
