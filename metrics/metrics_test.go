package metrics

import (
	"math"
	"testing"

	"github.com/christiangobet/coachplan/model"
)

func TestNewExtractor(t *testing.T) {
	e := NewExtractor()
	if e == nil {
		t.Fatal("NewExtractor returned nil")
	}
	if e.config.MeterValueFloor != 100 {
		t.Errorf("Expected MeterValueFloor 100, got %f", e.config.MeterValueFloor)
	}
	if e.cueRE == nil {
		t.Error("Expected cue pattern to be compiled")
	}
}

func floatVal(t *testing.T, p *float64, field string) float64 {
	t.Helper()
	if p == nil {
		t.Fatalf("Expected %s to be set", field)
	}
	return *p
}

func TestParseSingleDistanceMiles(t *testing.T) {
	ms := NewExtractor().Parse("4 miles easy")

	if got := floatVal(t, ms.DistanceMiles, "distance_miles"); got != 4 {
		t.Errorf("Expected distance_miles 4, got %f", got)
	}
	if got := floatVal(t, ms.DistanceValue, "distance_value"); got != 4 {
		t.Errorf("Expected distance_value 4, got %f", got)
	}
	if ms.DistanceUnit == nil || *ms.DistanceUnit != model.UnitMiles {
		t.Errorf("Expected unit miles, got %v", ms.DistanceUnit)
	}
	if ms.DistanceRange != nil {
		t.Error("Expected no distance range for a single value")
	}
	if ms.HasDuration() {
		t.Error("Expected no duration")
	}
}

func TestParseDistanceRange(t *testing.T) {
	ms := NewExtractor().Parse("3-5 miles tempo")

	wantRange := []float64{3, 5}
	if len(ms.DistanceMilesRange) != 2 || ms.DistanceMilesRange[0] != wantRange[0] || ms.DistanceMilesRange[1] != wantRange[1] {
		t.Errorf("Expected distance_miles_range [3 5], got %v", ms.DistanceMilesRange)
	}
	if got := floatVal(t, ms.DistanceMiles, "distance_miles"); got != 5 {
		t.Errorf("Expected representative distance_miles 5, got %f", got)
	}
	if got := floatVal(t, ms.DistanceValue, "distance_value"); got != 5 {
		t.Errorf("Expected distance_value 5, got %f", got)
	}
}

func TestParseDistanceAbbreviations(t *testing.T) {
	tests := []struct {
		text string
		unit model.Unit
		val  float64
	}{
		{"run 6 mi steady", model.UnitMiles, 6},
		{"5 km tempo", model.UnitKm, 5},
		{"10 kms total", model.UnitKm, 10},
		{"3 kilometers warmup", model.UnitKm, 3},
		{"800 meters hard", model.UnitMeters, 800},
	}

	for _, tt := range tests {
		ms := NewExtractor().Parse(tt.text)
		if ms.DistanceUnit == nil || *ms.DistanceUnit != tt.unit {
			t.Errorf("Parse(%q): expected unit %q, got %v", tt.text, tt.unit, ms.DistanceUnit)
			continue
		}
		if got := floatVal(t, ms.DistanceValue, "distance_value"); got != tt.val {
			t.Errorf("Parse(%q): expected value %f, got %f", tt.text, tt.val, got)
		}
	}
}

func TestParseBareMeterDisambiguation(t *testing.T) {
	e := NewExtractor()

	// Large magnitude: meters.
	ms := e.Parse("800m repeats")
	if got := floatVal(t, ms.DistanceMeters, "distance_meters"); got != 800 {
		t.Errorf("Expected distance_meters 800, got %f", got)
	}
	if got := floatVal(t, ms.DistanceKm, "distance_km"); got != 0.8 {
		t.Errorf("Expected derived distance_km 0.8, got %f", got)
	}

	// Small magnitude with interval cue: meters.
	ms = e.Parse("4 x 30m strides")
	if got := floatVal(t, ms.DistanceMeters, "distance_meters"); got != 30 {
		t.Errorf("Expected distance_meters 30, got %f", got)
	}

	// Small magnitude, no cue: ambiguous with minutes, read as duration.
	ms = e.Parse("45 m easy")
	if ms.HasDistance() {
		t.Errorf("Expected ambiguous bare m to record no distance, got %v", ms.DistanceValue)
	}
	if ms.DurationMinutes == nil || *ms.DurationMinutes != 45 {
		t.Errorf("Expected duration_minutes 45, got %v", ms.DurationMinutes)
	}
}

func TestParseMeterRangeDerivesKmRange(t *testing.T) {
	ms := NewExtractor().Parse("400-800m x 4")

	if len(ms.DistanceMetersRange) != 2 || ms.DistanceMetersRange[0] != 400 || ms.DistanceMetersRange[1] != 800 {
		t.Fatalf("Expected distance_meters_range [400 800], got %v", ms.DistanceMetersRange)
	}
	if len(ms.DistanceKmRange) != 2 || ms.DistanceKmRange[0] != 0.4 || ms.DistanceKmRange[1] != 0.8 {
		t.Errorf("Expected distance_km_range [0.4 0.8], got %v", ms.DistanceKmRange)
	}
	if got := floatVal(t, ms.DistanceKm, "distance_km"); got != 0.8 {
		t.Errorf("Expected distance_km 0.8, got %f", got)
	}
}

// Derived km values reproduce the stored meter value within 4-decimal rounding.
func TestKmRoundTrip(t *testing.T) {
	for _, meters := range []float64{100, 123, 400, 800, 1234, 10001} {
		km := toKm(meters)
		back := km * 1000
		if math.Abs(back-meters) > 0.1 {
			t.Errorf("toKm(%f) = %f does not round-trip (got %f back)", meters, km, back)
		}
		rounded := math.Round(km*10000) / 10000
		if km != rounded {
			t.Errorf("toKm(%f) = %f not rounded to 4 decimals", meters, km)
		}
	}
}

func TestParseDuration(t *testing.T) {
	e := NewExtractor()

	ms := e.Parse("30 minutes")
	if ms.DurationMinutes == nil || *ms.DurationMinutes != 30 {
		t.Errorf("Expected duration_minutes 30, got %v", ms.DurationMinutes)
	}

	ms = e.Parse("20-30 min recovery")
	if len(ms.DurationMinutesRange) != 2 || ms.DurationMinutesRange[0] != 20 || ms.DurationMinutesRange[1] != 30 {
		t.Errorf("Expected duration_minutes_range [20 30], got %v", ms.DurationMinutesRange)
	}
	if ms.DurationMinutes != nil {
		t.Error("Expected no single duration when a range matched")
	}
}

// The distance span is removed before duration matching, so one number is
// never read as both.
func TestParseDistanceSpanRemovedBeforeDuration(t *testing.T) {
	ms := NewExtractor().Parse("2 miles in 20 m")

	if got := floatVal(t, ms.DistanceMiles, "distance_miles"); got != 2 {
		t.Errorf("Expected distance_miles 2, got %f", got)
	}
	if ms.DurationMinutes == nil || *ms.DurationMinutes != 20 {
		t.Errorf("Expected duration_minutes 20, got %v", ms.DurationMinutes)
	}
}

// A range whose unit is rejected records no distance and does not fall back
// to single-value matching; the untouched text still yields a duration.
func TestParseRejectedRangeUnitFallsThroughToDuration(t *testing.T) {
	ms := NewExtractor().Parse("2-3 m jog")

	if ms.HasDistance() {
		t.Errorf("Expected no distance for ambiguous range, got %v", ms.DistanceValue)
	}
	if len(ms.DurationMinutesRange) != 2 || ms.DurationMinutesRange[0] != 2 || ms.DurationMinutesRange[1] != 3 {
		t.Errorf("Expected duration_minutes_range [2 3], got %v", ms.DurationMinutesRange)
	}
}

func TestParseNoMetrics(t *testing.T) {
	ms := NewExtractor().Parse("Rest Day")
	if ms.HasDistance() || ms.HasDuration() {
		t.Errorf("Expected empty metric set, got %+v", ms)
	}
}

func TestConfigurableMeterFloor(t *testing.T) {
	e := NewExtractorWithConfig(Config{MeterValueFloor: 40, MeterCues: nil})
	ms := e.Parse("45 m")
	if ms.DistanceMeters == nil || *ms.DistanceMeters != 45 {
		t.Errorf("Expected lowered floor to accept 45 m as meters, got %v", ms.DistanceMeters)
	}
}
