// Package coachplan provides a fluent API for extracting a structured
// training plan (weeks of classified, measured workout day cells plus a
// glossary) from a weekly-grid plan PDF.
//
// Basic usage:
//
//	plan, warnings, err := coachplan.Open("plan.pdf").Plan()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", coachplan.FormatWarnings(warnings))
//	}
//
// With options:
//
//	plan, _, err := coachplan.Open("plan.pdf").
//	    ProgramName("Trail 50K").
//	    Plan()
//
// For advanced use cases, the lower-level pages package is also available.
package coachplan

import (
	"strings"

	"github.com/christiangobet/coachplan/pages"
)

// Open prepares a plan PDF for extraction and returns an Extractor for
// fluent configuration. The document is opened lazily by the terminal
// operations, which also close it.
//
// Example:
//
//	plan, warnings, err := coachplan.Open("plan.pdf").Plan()
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened document. The
// caller remains responsible for closing the document.
func FromDocument(doc *pages.Document) *Extractor {
	return &Extractor{
		doc:       doc,
		docOpened: true,
		options:   defaultOptions(),
	}
}

// Warning describes a non-fatal issue encountered during extraction:
// extraction succeeded but part of the input was skipped or degraded.
type Warning struct {
	// Code groups warnings by origin: "page", "table", or "row".
	Code string

	// Message is a human-readable description.
	Message string
}

// FormatWarnings renders warnings as a single semicolon-separated string.
func FormatWarnings(warnings []Warning) string {
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Code + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for scripts and tests
// where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a terminal operation returning (T, []Warning, error),
// panics on error, and discards warnings.
//
// Example:
//
//	plan := coachplan.MustResult(coachplan.Open("plan.pdf").Plan())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
