package model

import (
	"bytes"
	"encoding/json"
)

// DayKeys lists the seven weekday identifiers in plan order. Every week
// carries exactly one entry per key.
var DayKeys = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// WorkoutType is a tag from the workout classification taxonomy.
type WorkoutType string

// Workout type tags, as emitted in type_guess and per-segment type fields.
const (
	TypeStrength         WorkoutType = "strength"
	TypeRest             WorkoutType = "rest"
	TypeCrossTraining    WorkoutType = "cross-training"
	TypeTrainingRace     WorkoutType = "training-race"
	TypeRace             WorkoutType = "race"
	TypeInclineTreadmill WorkoutType = "incline-treadmill"
	TypeHillPyramid      WorkoutType = "hill-pyramid"
	TypeHills            WorkoutType = "hills"
	TypeTempo            WorkoutType = "tempo"
	TypeProgression      WorkoutType = "progression"
	TypeRecovery         WorkoutType = "recovery"
	TypeTrailRun         WorkoutType = "trail-run"
	TypeFastFinish       WorkoutType = "fast-finish"
	TypeLRL              WorkoutType = "lrl"
	TypeHike             WorkoutType = "hike"
	TypeEasyRun          WorkoutType = "easy-run"
	TypeUnknown          WorkoutType = "unknown"
)

// Segment is one "+"-delimited sub-description of a day's workout text,
// classified and measured independently of its siblings.
type Segment struct {
	Text    string      `json:"text"`
	Type    WorkoutType `json:"type"`
	Metrics MetricSet   `json:"metrics"`
}

// DayCell is the parsed content of a single day's cell. When Raw is empty
// all other fields are empty and TypeGuess is "unknown".
type DayCell struct {
	Raw            string      `json:"raw"`
	Segments       []string    `json:"segments"`
	SegmentsParsed []Segment   `json:"segments_parsed"`
	TypeGuess      WorkoutType `json:"type_guess"`

	// Metrics is computed over the whole raw text, independent of the
	// per-segment metric sets. Nil for empty cells.
	Metrics *MetricSet `json:"metrics"`
}

// NewDayCell returns an empty day cell with initialized (non-nil) slices so
// empty cells marshal as [] rather than null.
func NewDayCell() *DayCell {
	return &DayCell{
		Segments:       []string{},
		SegmentsParsed: []Segment{},
		TypeGuess:      TypeUnknown,
	}
}

// IsEmpty reports whether the cell carried no workout text.
func (c *DayCell) IsEmpty() bool {
	return c.Raw == ""
}

// DayMap maps weekday keys to day cells. It marshals in fixed weekday order
// rather than Go's alphabetical map-key order.
type DayMap map[string]*DayCell

// MarshalJSON emits the seven weekday entries in DayKeys order.
func (d DayMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for _, key := range DayKeys {
		cell, ok := d[key]
		if !ok {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(cell)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Week is one training week: a 1-based position assigned by emission order
// and one cell per weekday.
type Week struct {
	Number int    `json:"week_number"`
	Days   DayMap `json:"days"`
}

// NewWeek creates a week with an empty cell for every weekday.
func NewWeek(number int) *Week {
	w := &Week{Number: number, Days: make(DayMap, len(DayKeys))}
	for _, key := range DayKeys {
		w.Days[key] = NewDayCell()
	}
	return w
}

// Plan is the complete extraction result for one document.
type Plan struct {
	SourcePDF   string    `json:"source_pdf"`
	ProgramName string    `json:"program_name"`
	GeneratedAt string    `json:"generated_at"`
	Weeks       []*Week   `json:"weeks"`
	Glossary    *Glossary `json:"glossary"`
}
