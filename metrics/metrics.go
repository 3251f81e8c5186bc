// Package metrics extracts distance and duration measurements from workout
// text. Matching is single-pass with fixed precedence: a range-distance
// match beats a single-distance match, the matched span is removed before
// duration matching, and at most one result per dimension is recorded.
package metrics

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/christiangobet/coachplan/model"
)

// Patterns are process-wide constants; the extractor lowercases its input
// before matching.
var (
	distanceRangeRE = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[-–]\s*(\d+(?:\.\d+)?)\s*(miles?|mi|kms?|kilometers?|kilometres?|meters?|metres?|m)\b`)
	distanceRE      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(miles?|mi|kms?|kilometers?|kilometres?|meters?|metres?|m)\b`)
	durationRangeRE = regexp.MustCompile(`(\d+)\s*[-–]\s*(\d+)\s*(?:minutes?|mins?|m\b)`)
	durationRE      = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|min|m)\b`)
)

// Config holds the tunable heuristics for ambiguous unit tokens. A bare "m"
// could mean meters or minutes; it is read as meters only when the value is
// at least MeterValueFloor or the surrounding text contains one of the
// MeterCues as a whole word.
type Config struct {
	MeterValueFloor float64
	MeterCues       []string
}

// DefaultConfig returns the heuristics calibrated against the known plan
// document family.
func DefaultConfig() Config {
	return Config{
		MeterValueFloor: 100,
		MeterCues:       []string{"x", "rep", "reps", "stride", "strides", "interval"},
	}
}

// Extractor parses metric sets out of text fragments. It is stateless after
// construction and safe for concurrent use.
type Extractor struct {
	config Config
	cueRE  *regexp.Regexp
}

// NewExtractor creates an extractor with default heuristics.
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with the given heuristics.
// An empty cue list disables the context escape hatch for bare "m".
func NewExtractorWithConfig(cfg Config) *Extractor {
	e := &Extractor{config: cfg}
	if len(cfg.MeterCues) > 0 {
		quoted := make([]string, len(cfg.MeterCues))
		for i, cue := range cfg.MeterCues {
			quoted[i] = regexp.QuoteMeta(cue)
		}
		e.cueRE = regexp.MustCompile(`\b(?:` + strings.Join(quoted, "|") + `)\b`)
	}
	return e
}

// Parse extracts at most one distance and one duration from text. The first
// matching pattern wins; there is no backtracking into alternative
// interpretations.
func (e *Extractor) Parse(text string) model.MetricSet {
	t := strings.ToLower(text)
	var ms model.MetricSet

	// Distance first. The matched span is removed so its number cannot be
	// re-read as a duration.
	rest := t
	if loc := distanceRangeRE.FindStringSubmatchIndex(t); loc != nil {
		v1 := parseFloat(t[loc[2]:loc[3]])
		v2 := parseFloat(t[loc[4]:loc[5]])
		if unit, ok := e.normalizeUnit(t[loc[6]:loc[7]], math.Max(v1, v2), t); ok {
			applyDistanceRange(&ms, v1, v2, unit)
			rest = t[:loc[0]] + t[loc[1]:]
		}
	} else if loc := distanceRE.FindStringSubmatchIndex(t); loc != nil {
		v := parseFloat(t[loc[2]:loc[3]])
		if unit, ok := e.normalizeUnit(t[loc[4]:loc[5]], v, t); ok {
			applyDistance(&ms, v, unit)
			rest = t[:loc[0]] + t[loc[1]:]
		}
	}

	if loc := durationRangeRE.FindStringSubmatchIndex(rest); loc != nil {
		lo := parseInt(rest[loc[2]:loc[3]])
		hi := parseInt(rest[loc[4]:loc[5]])
		ms.DurationMinutesRange = []int{lo, hi}
	} else if loc := durationRE.FindStringSubmatchIndex(rest); loc != nil {
		v := parseInt(rest[loc[2]:loc[3]])
		ms.DurationMinutes = &v
	}

	return ms
}

// normalizeUnit maps a raw unit token to a normalized unit. Bare "m" is
// resolved against the configured magnitude floor and context cues; when
// both fail the token is ambiguous with minutes and the match is rejected.
func (e *Extractor) normalizeUnit(raw string, value float64, fullText string) (model.Unit, bool) {
	switch strings.TrimSpace(raw) {
	case "mile", "miles", "mi":
		return model.UnitMiles, true
	case "km", "kms", "kilometer", "kilometers", "kilometre", "kilometres":
		return model.UnitKm, true
	case "meter", "meters", "metre", "metres":
		return model.UnitMeters, true
	case "m":
		if value >= e.config.MeterValueFloor {
			return model.UnitMeters, true
		}
		if e.cueRE != nil && e.cueRE.MatchString(fullText) {
			return model.UnitMeters, true
		}
		return "", false
	}
	return "", false
}

func applyDistance(ms *model.MetricSet, v float64, unit model.Unit) {
	ms.DistanceValue = &v
	u := unit
	ms.DistanceUnit = &u
	switch unit {
	case model.UnitMiles:
		ms.DistanceMiles = &v
	case model.UnitKm:
		ms.DistanceKm = &v
	case model.UnitMeters:
		ms.DistanceMeters = &v
		km := toKm(v)
		ms.DistanceKm = &km
	}
}

func applyDistanceRange(ms *model.MetricSet, v1, v2 float64, unit model.Unit) {
	ms.DistanceRange = []float64{v1, v2}
	ms.DistanceValue = &v2
	u := unit
	ms.DistanceUnit = &u
	switch unit {
	case model.UnitMiles:
		ms.DistanceMilesRange = []float64{v1, v2}
		ms.DistanceMiles = &v2
	case model.UnitKm:
		ms.DistanceKmRange = []float64{v1, v2}
		ms.DistanceKm = &v2
	case model.UnitMeters:
		ms.DistanceMetersRange = []float64{v1, v2}
		ms.DistanceMeters = &v2
		ms.DistanceKmRange = []float64{toKm(v1), toKm(v2)}
		km := toKm(v2)
		ms.DistanceKm = &km
	}
}

// toKm converts meters to kilometers, rounded to 4 decimals.
func toKm(meters float64) float64 {
	return math.Round(meters/1000*10000) / 10000
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}
