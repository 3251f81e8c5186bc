package coachplan

import (
	"github.com/christiangobet/coachplan/config"
	"github.com/christiangobet/coachplan/tables"
)

// defaultProgramName is used when the caller supplies no program name.
const defaultProgramName = "Training Plan"

// ExtractOptions holds configuration for plan extraction.
type ExtractOptions struct {
	programName string
	heuristics  config.Config
	strategy    tables.StrategyConfig
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		programName: defaultProgramName,
		heuristics:  config.Default(),
		strategy:    tables.DefaultStrategyConfig(),
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		programName: o.programName,
		heuristics:  o.heuristics,
		strategy:    o.strategy,
	}

	// Deep copy the heuristic slices so chained extractors stay independent.
	if o.heuristics.MeterCues != nil {
		newOpts.heuristics.MeterCues = append([]string(nil), o.heuristics.MeterCues...)
	}
	if o.heuristics.GlossaryLabels != nil {
		newOpts.heuristics.GlossaryLabels = append([]string(nil), o.heuristics.GlossaryLabels...)
	}

	return newOpts
}
