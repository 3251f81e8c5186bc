package coachplan

import (
	"errors"
	"testing"

	"github.com/christiangobet/coachplan/tables"
)

func TestOpenDefaults(t *testing.T) {
	ext := Open("plan.pdf")

	if ext.filename != "plan.pdf" {
		t.Errorf("Expected filename plan.pdf, got %q", ext.filename)
	}
	if ext.options.programName != defaultProgramName {
		t.Errorf("Expected default program name, got %q", ext.options.programName)
	}
	if ext.docOpened {
		t.Error("Expected the document to be opened lazily")
	}
}

func TestProgramNameChaining(t *testing.T) {
	base := Open("plan.pdf")
	named := base.ProgramName("Trail 50K")

	if named.options.programName != "Trail 50K" {
		t.Errorf("Expected Trail 50K, got %q", named.options.programName)
	}
	if base.options.programName != defaultProgramName {
		t.Error("Expected chaining to leave the original extractor unchanged")
	}
}

func TestProgramNameEmptyKeepsDefault(t *testing.T) {
	ext := Open("plan.pdf").ProgramName("")
	if ext.options.programName != defaultProgramName {
		t.Errorf("Expected empty name to keep the default, got %q", ext.options.programName)
	}
}

func TestStrategyConfigChaining(t *testing.T) {
	cfg := tables.DefaultStrategyConfig()
	cfg.SnapTolerance = 5

	base := Open("plan.pdf")
	tuned := base.StrategyConfig(cfg)

	if tuned.options.strategy.SnapTolerance != 5 {
		t.Errorf("Expected snap tolerance 5, got %f", tuned.options.strategy.SnapTolerance)
	}
	if base.options.strategy.SnapTolerance != tables.DefaultStrategyConfig().SnapTolerance {
		t.Error("Expected the original extractor to keep the default tolerances")
	}
}

func TestOptionsCloneIndependence(t *testing.T) {
	a := defaultOptions()
	b := a.clone()

	b.heuristics.MeterCues[0] = "changed"
	if a.heuristics.MeterCues[0] == "changed" {
		t.Error("Expected cloned meter cues to be independent")
	}

	b.heuristics.GlossaryLabels[0] = "changed"
	if a.heuristics.GlossaryLabels[0] == "changed" {
		t.Error("Expected cloned glossary labels to be independent")
	}
}

func TestPlanWithoutFilename(t *testing.T) {
	_, _, err := (&Extractor{options: defaultOptions()}).Plan()
	if err == nil {
		t.Error("Expected an error when no filename is specified")
	}
}

func TestPlanMissingFile(t *testing.T) {
	_, _, err := Open("no-such-file.pdf").Plan()
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestCloseWithoutDocument(t *testing.T) {
	ext := Open("plan.pdf")
	if err := ext.Close(); err != nil {
		t.Errorf("Expected Close on an unopened extractor to be a no-op, got %v", err)
	}
}

func TestFormatWarnings(t *testing.T) {
	warnings := []Warning{
		{Code: "table", Message: "skipped"},
		{Code: "row", Message: "discarded"},
	}
	if got := FormatWarnings(warnings); got != "table: skipped; row: discarded" {
		t.Errorf("FormatWarnings = %q", got)
	}
	if got := FormatWarnings(nil); got != "" {
		t.Errorf("Expected empty string for no warnings, got %q", got)
	}
}

func TestMust(t *testing.T) {
	if got := Must(42, nil); got != 42 {
		t.Errorf("Must = %d, want 42", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Expected Must to panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
