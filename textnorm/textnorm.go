// Package textnorm repairs and normalizes text extracted from plan PDFs.
// Extracted cell text arrives with wrapped newlines, footnote digits glued
// to words, and a handful of known corruption patterns; everything
// downstream assumes this package has run first.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRE = regexp.MustCompile(`\s+`)

	// Digit runs glued directly to a letter are footnote markers
	// (e.g. "miles2", "XT3"). Digits preceded by anything else are data.
	footnoteRE = regexp.MustCompile(`([A-Za-z])\d+`)

	// A digit followed by the fragment "iles" is a split "miles".
	splitMilesRE = regexp.MustCompile(`(\d)\s*iles\b`)

	// A star footnote marker followed by stray digits and a lone "R"
	// (e.g. "★4 R 1-2 mile WU"); the marker stays, the artifact goes.
	starFootnoteRE = regexp.MustCompile(`★\s*\d+\s*R\s+`)
)

// Normalize collapses any run of whitespace (including newlines) to a single
// space and trims both ends. Empty input yields an empty string.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}

// StripFootnoteDigits removes digit runs immediately following a letter,
// leaving the letter sequence intact. Numbers not preceded directly by a
// letter are untouched.
func StripFootnoteDigits(s string) string {
	return footnoteRE.ReplaceAllString(s, "$1")
}

// CleanCell prepares a raw cell for parsing: newlines become spaces,
// footnote digits are stripped, whitespace is normalized, and three known
// corruption patterns are repaired. The repairs are unconditional and
// idempotent:
//
//   - a leading case-insensitive "est;" is an OCR-dropped "Rest;"
//   - a digit followed by "iles" is a split "<digit> miles"
//   - "★<digits> R " is a footnote artifact; the star marker is kept
func CleanCell(s string) string {
	t := Normalize(StripFootnoteDigits(strings.ReplaceAll(s, "\n", " ")))
	if t == "" {
		return t
	}
	if len(t) >= 4 && strings.EqualFold(t[:4], "est;") {
		t = "Rest;" + t[4:]
	}
	t = splitMilesRE.ReplaceAllString(t, "$1 miles")
	t = starFootnoteRE.ReplaceAllString(t, "★ ")
	return t
}
