package model

// Unit identifies a normalized distance unit.
type Unit string

// Normalized distance units.
const (
	UnitMiles  Unit = "miles"
	UnitKm     Unit = "km"
	UnitMeters Unit = "m"
)

// MetricSet holds the distance and duration values extracted from one text
// fragment. At most one distance match and one duration match are recorded;
// when a range matched, the range fields are set and the single value holds
// the range's representative endpoint. Meter distances are mirrored into the
// kilometer fields at a fixed /1000 conversion.
type MetricSet struct {
	DistanceValue        *float64  `json:"distance_value"`
	DistanceUnit         *Unit     `json:"distance_unit"`
	DistanceRange        []float64 `json:"distance_range"`
	DistanceMiles        *float64  `json:"distance_miles"`
	DistanceMilesRange   []float64 `json:"distance_miles_range"`
	DistanceKm           *float64  `json:"distance_km"`
	DistanceKmRange      []float64 `json:"distance_km_range"`
	DistanceMeters       *float64  `json:"distance_meters"`
	DistanceMetersRange  []float64 `json:"distance_meters_range"`
	DurationMinutes      *int      `json:"duration_minutes"`
	DurationMinutesRange []int     `json:"duration_minutes_range"`
}

// HasDistance reports whether a distance was extracted.
func (m *MetricSet) HasDistance() bool {
	return m.DistanceValue != nil
}

// HasDuration reports whether a duration was extracted.
func (m *MetricSet) HasDuration() bool {
	return m.DurationMinutes != nil || m.DurationMinutesRange != nil
}
