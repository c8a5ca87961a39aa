package model

// Key names one of the twelve pitch classes as shown in the key dropdown,
// e.g. "C" or "C#/Db".
type Key string

// IntervalType is the relationship between the tonic and a chord in a petal.
type IntervalType string

const (
	IntervalSecond IntervalType = "2nd"
	IntervalThird  IntervalType = "3rd"
	IntervalFourth IntervalType = "4th"
)

// ChordSet holds the chords of one key, grouped by interval. Every interval
// list is in scale-degree order and starts with the tonic chord.
type ChordSet struct {
	Tonic   string   `json:"tonic"`
	Thirds  []string `json:"thirds"`
	Fourths []string `json:"fourths"`
	Seconds []string `json:"seconds"`
}

// Interval returns the chord list for the given interval type.
func (c ChordSet) Interval(t IntervalType) []string {
	switch t {
	case IntervalSecond:
		return c.Seconds
	case IntervalThird:
		return c.Thirds
	case IntervalFourth:
		return c.Fourths
	default:
		return nil
	}
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ChordNode struct {
	Name     string       `json:"name"`
	Position Point        `json:"position"`
	Interval IntervalType `json:"interval,omitempty"`
}

// Petal is one oval grouping of chords radiating from the tonic.
type Petal struct {
	Angle    float64      `json:"angle"`
	Label    string       `json:"label"`
	Color    string       `json:"color"`
	Interval IntervalType `json:"interval"`
	// Start is the anchor of the oval, the point closest to the center.
	Start Point `json:"start"`
	// End is the far endpoint of the oval.
	End      Point       `json:"end"`
	LabelPos Point       `json:"labelPos"`
	Nodes    []ChordNode `json:"nodes"`
}

// Geometry holds the fixed viewport constants the layout is computed from.
type Geometry struct {
	Width        float64
	Height       float64
	PetalLength  float64
	PetalWidth   float64
	CenterOffset float64
	ChordRadius  float64
	CenterRadius float64
	LabelOffset  float64
}

func (g Geometry) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Diagram is a complete layout for one selected key.
type Diagram struct {
	Key      Key       `json:"key"`
	Geometry Geometry  `json:"-"`
	Tonic    ChordNode `json:"tonic"`
	// TonicLabel is the text shown in the center circle.
	TonicLabel string  `json:"tonicLabel"`
	Petals     []Petal `json:"petals"`
}

// NodeCount returns the number of chord nodes in all petals, tonic excluded.
func (d Diagram) NodeCount() int {
	total := 0
	for _, p := range d.Petals {
		total += len(p.Nodes)
	}

	return total
}

type ChordQuality string

const (
	QualityTonic      ChordQuality = "tonic"
	QualityMajor      ChordQuality = "major"
	QualityMinor      ChordQuality = "minor"
	QualityDiminished ChordQuality = "diminished"
)

// Chord is a diatonic chord of the selected key placed on the diagram.
type Chord struct {
	Name     string       `json:"name"`
	Quality  ChordQuality `json:"quality"`
	Position Point        `json:"position"`
}

type IntervalConnection struct {
	From     string       `json:"from"`
	To       string       `json:"to"`
	Interval IntervalType `json:"interval"`
}
