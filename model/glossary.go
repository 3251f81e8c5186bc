package model

// GlossaryEntry is one resolved term definition. NeedsReview is set when the
// definition text appears to contain another term's label, which usually
// means a column-splitting or ordering mistake upstream.
type GlossaryEntry struct {
	Title       string   `json:"title"`
	Definition  string   `json:"definition"`
	Section     *string  `json:"section"`
	NeedsReview bool     `json:"needs_review"`
	Issues      []string `json:"issues"`
}

// Glossary is the resolved set of term definitions for one document.
// Entries are keyed by lowercased label; ReviewNeeded lists the titles of
// entries flagged for manual review, in label order.
type Glossary struct {
	Sections     []string                  `json:"sections"`
	Entries      map[string]*GlossaryEntry `json:"entries"`
	ReviewNeeded []string                  `json:"review_needed"`
	Note         string                    `json:"note"`
}

// NewGlossary returns an empty glossary with initialized collections.
func NewGlossary() *Glossary {
	return &Glossary{
		Sections:     []string{},
		Entries:      make(map[string]*GlossaryEntry),
		ReviewNeeded: []string{},
	}
}
