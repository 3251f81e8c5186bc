// Package config loads the tunable extraction heuristics. Every value here
// is a calibration point for one document family rather than a structural
// rule, so it can be overridden from a YAML file without code changes.
package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the extraction heuristics.
type Config struct {
	// MeterValueFloor is the magnitude at which a bare "m" unit reads as
	// meters rather than minutes.
	MeterValueFloor float64 `yaml:"meter_value_floor"`

	// MeterCues are whole words whose presence makes a bare "m" read as
	// meters regardless of magnitude (interval/repetition context).
	MeterCues []string `yaml:"meter_cues"`

	// GlossaryLabels is the known glossary vocabulary, in page order.
	GlossaryLabels []string `yaml:"glossary_labels"`

	// DisclaimerMarker truncates glossary definitions at trailing
	// boilerplate. Matched case-insensitively.
	DisclaimerMarker string `yaml:"disclaimer_marker"`
}

// Default returns the heuristics calibrated for the known plan documents.
func Default() Config {
	return Config{
		MeterValueFloor:  100,
		MeterCues:        []string{"x", "rep", "reps", "stride", "strides", "interval"},
		DisclaimerMarker: "disclaimer:",
		GlossaryLabels: []string{
			"4 x 30 second flat and fast",
			"Strength",
			"Easy",
			"Tempo",
			"Progression Run",
			"Hill Pyramid",
			"Incline Treadmill",
			"Hills",
			"Cross training",
			"Recovery run or hike",
			"Fast Finish",
			"LRL",
			"Training Race",
		},
	}
}

// Load reads YAML heuristics from path, falling back to defaults when the
// file is missing or unparseable. Fields left unset in the file keep their
// default values.
func Load(path string) Config {
	cfg := Default()
	if path == "" {
		return cfg
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		return cfg
	}

	var fileCfg Config
	if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
		log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
		return cfg
	}

	return merge(cfg, fileCfg)
}

func merge(base, override Config) Config {
	if override.MeterValueFloor > 0 {
		base.MeterValueFloor = override.MeterValueFloor
	}
	if len(override.MeterCues) > 0 {
		base.MeterCues = override.MeterCues
	}
	if len(override.GlossaryLabels) > 0 {
		base.GlossaryLabels = override.GlossaryLabels
	}
	if override.DisclaimerMarker != "" {
		base.DisclaimerMarker = override.DisclaimerMarker
	}
	return base
}
