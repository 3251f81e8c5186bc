// Command coachplan extracts a structured training plan from a weekly-grid
// plan PDF and writes it as JSON.
//
// Usage:
//
//	coachplan -input plan.pdf -output out/plan.json [-name "Trail 50K"] [-config heuristics.yaml]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/christiangobet/coachplan"
	"github.com/christiangobet/coachplan/config"
)

func main() {
	var (
		input      = flag.String("input", "", "path to the plan PDF (required)")
		output     = flag.String("output", "", "path to write the JSON plan (required)")
		name       = flag.String("name", "", `program name recorded in the output (default "Training Plan")`)
		configPath = flag.String("config", "", "optional YAML heuristics file")
		logLevel   = flag.String("log-level", "info", "log level: debug, info, warn, error")
	)
	flag.Parse()

	logger := newLogger(*logLevel)

	if *input == "" || *output == "" {
		fmt.Fprintln(os.Stderr, "coachplan: -input and -output are required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*input, *output, *name, *configPath, logger); err != nil {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}
}

func run(input, output, name, configPath string, logger *slog.Logger) error {
	ext := coachplan.Open(input).
		ProgramName(name).
		Heuristics(config.Load(configPath))

	plan, warnings, err := ext.Plan()
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logger.Warn("extraction warning", "code", w.Code, "message", w.Message)
	}

	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding plan: %w", err)
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing plan: %w", err)
	}

	logger.Info("plan written",
		"output", output,
		"weeks", len(plan.Weeks),
		"glossary_entries", len(plan.Glossary.Entries),
		"review_needed", len(plan.Glossary.ReviewNeeded))
	return nil
}

// newLogger creates a console slog.Logger at the requested level.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
