// Package segment splits a day cell's workout text into "+"-delimited
// segments and classifies each against the workout-type taxonomy. Rule
// order encodes business precedence (a "training race" is not a "race", a
// "hill pyramid" is not generic "hills"), so the rule list is positional
// and test-covered.
package segment

import (
	"regexp"

	"github.com/christiangobet/coachplan/model"
)

// Rule pairs a workout tag with the pattern that recognizes it.
type Rule struct {
	Tag     model.WorkoutType
	Pattern *regexp.Regexp
}

// Rules is the ordered classification list. The first rule whose pattern
// matches wins; specific variants sit above the generic wording they would
// otherwise shadow.
var Rules = []Rule{
	{model.TypeStrength, regexp.MustCompile(`(?i)^strength\s*\d+`)},
	{model.TypeRest, regexp.MustCompile(`(?i)\brest\b`)},
	{model.TypeCrossTraining, regexp.MustCompile(`(?i)cross training`)},
	{model.TypeTrainingRace, regexp.MustCompile(`(?i)training race`)},
	{model.TypeRace, regexp.MustCompile(`(?i)\brace\b`)},
	{model.TypeInclineTreadmill, regexp.MustCompile(`(?i)incline treadmill`)},
	{model.TypeHillPyramid, regexp.MustCompile(`(?i)hill pyramid`)},
	{model.TypeHills, regexp.MustCompile(`(?i)\bhills\b`)},
	{model.TypeTempo, regexp.MustCompile(`(?i)tempo`)},
	{model.TypeProgression, regexp.MustCompile(`(?i)progres`)},
	{model.TypeRecovery, regexp.MustCompile(`(?i)recovery`)},
	{model.TypeTrailRun, regexp.MustCompile(`(?i)\btrail\b`)},
	{model.TypeFastFinish, regexp.MustCompile(`(?i)fast finish`)},
	{model.TypeLRL, regexp.MustCompile(`(?i)\bLRL\b`)},
	{model.TypeHike, regexp.MustCompile(`(?i)\bhike\b`)},
	{model.TypeEasyRun, regexp.MustCompile(`(?i)\beasy\b`)},
}

// TypePriority fixes which single tag represents a cell whose segments carry
// several types. The scan returns the first priority tag present among the
// segment tags, so one rest segment makes the whole cell read as rest.
var TypePriority = []model.WorkoutType{
	model.TypeRest,
	model.TypeRace,
	model.TypeTrainingRace,
	model.TypeStrength,
	model.TypeTempo,
	model.TypeHills,
	model.TypeHillPyramid,
	model.TypeInclineTreadmill,
	model.TypeProgression,
	model.TypeTrailRun,
	model.TypeRecovery,
	model.TypeEasyRun,
	model.TypeCrossTraining,
	model.TypeHike,
	model.TypeLRL,
	model.TypeFastFinish,
	model.TypeUnknown,
}

// Classify returns the tag of the first matching rule, or "unknown" when no
// rule matches.
func Classify(text string) model.WorkoutType {
	for _, rule := range Rules {
		if rule.Pattern.MatchString(text) {
			return rule.Tag
		}
	}
	return model.TypeUnknown
}

// cellType picks the representative tag for a set of segment tags by
// priority order.
func cellType(found map[model.WorkoutType]bool) model.WorkoutType {
	for _, tag := range TypePriority {
		if found[tag] {
			return tag
		}
	}
	return model.TypeUnknown
}
