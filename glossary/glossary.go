// Package glossary extracts the term-definition page that closes a plan
// document. The page reads as two independent columns; known labels are
// located in each column, the text between consecutive labels becomes a
// definition, and entries whose definition absorbed another label's text
// are flagged for review rather than trusted.
package glossary

import (
	"regexp"
	"strings"

	"github.com/christiangobet/coachplan/model"
	"github.com/christiangobet/coachplan/textnorm"
)

// DefaultLabels is the known glossary vocabulary for the plan document
// family, in page order.
var DefaultLabels = []string{
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
}

// DefaultNote is the informational note attached to every extracted
// glossary.
const DefaultNote = "Glossary extracted from a multi-column PDF; some entries may need manual review."

// DefaultDisclaimerMarker truncates definitions at boilerplate that follows
// them on the page.
const DefaultDisclaimerMarker = "disclaimer:"

// WordCount is the default candidate scorer: more words wins.
func WordCount(definition string) int {
	return len(strings.Fields(definition))
}

// Extractor locates labels and resolves definitions. Score ranks competing
// candidates for the same label when both columns match it; the candidate
// with the strictly greater score wins and ties keep the earlier
// (left-column) candidate. Scoring is a heuristic, hence pluggable.
type Extractor struct {
	Labels           []string
	Score            func(string) int
	DisclaimerMarker string

	labelRE *regexp.Regexp
	wordREs []*regexp.Regexp
}

// NewExtractor creates an extractor for the default label vocabulary.
func NewExtractor() *Extractor {
	return NewExtractorWithLabels(DefaultLabels)
}

// NewExtractorWithLabels creates an extractor for a custom vocabulary.
func NewExtractorWithLabels(labels []string) *Extractor {
	quoted := make([]string, len(labels))
	wordREs := make([]*regexp.Regexp, len(labels))
	for i, l := range labels {
		quoted[i] = regexp.QuoteMeta(l)
		wordREs[i] = regexp.MustCompile(`(?i)\b` + quoted[i] + `\b`)
	}
	return &Extractor{
		Labels:           labels,
		Score:            WordCount,
		DisclaimerMarker: DefaultDisclaimerMarker,
		labelRE:          regexp.MustCompile(`(?i)(` + strings.Join(quoted, "|") + `)\s*:\s*`),
		wordREs:          wordREs,
	}
}

// ExtractColumns resolves the glossary from the two reading columns' plain
// text. Labels matched in neither column are silently omitted.
func (e *Extractor) ExtractColumns(left, right string) *model.Glossary {
	columns := []map[string]string{
		e.parseColumn(textnorm.Normalize(left)),
		e.parseColumn(textnorm.Normalize(right)),
	}

	g := model.NewGlossary()
	g.Note = DefaultNote
	for _, label := range e.Labels {
		key := strings.ToLower(label)

		best := ""
		found := false
		for _, col := range columns {
			def, ok := col[key]
			if !ok {
				continue
			}
			if !found || e.Score(def) > e.Score(best) {
				best = def
			}
			found = true
		}
		if !found {
			continue
		}

		issues := e.overlapIssues(key, best)
		entry := &model.GlossaryEntry{
			Title:       label,
			Definition:  best,
			NeedsReview: len(issues) > 0,
			Issues:      issues,
		}
		if entry.NeedsReview {
			g.ReviewNeeded = append(g.ReviewNeeded, label)
		}
		g.Entries[key] = entry
	}
	return g
}

// parseColumn maps lowercased labels to the definition text between their
// match and the next label match in the same column.
func (e *Extractor) parseColumn(text string) map[string]string {
	entries := make(map[string]string)
	matches := e.labelRE.FindAllStringSubmatchIndex(text, -1)
	for i, m := range matches {
		label := text[m[2]:m[3]]
		start := m[1]
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		definition := strings.TrimSpace(text[start:end])
		if idx := strings.Index(strings.ToLower(definition), e.DisclaimerMarker); idx != -1 {
			definition = strings.TrimSpace(definition[:idx])
		}
		definition = strings.Trim(textnorm.Normalize(definition), " -;")
		entries[strings.ToLower(label)] = definition
	}
	return entries
}

// overlapIssues reports every other label whose exact text appears as a
// whole word inside the definition, the signature of one definition
// bleeding into the next during column splitting.
func (e *Extractor) overlapIssues(key, definition string) []string {
	issues := []string{}
	for i, other := range e.Labels {
		if strings.ToLower(other) == key {
			continue
		}
		if e.wordREs[i].MatchString(definition) {
			issues = append(issues, "overlap_with_label:"+other)
		}
	}
	return issues
}
