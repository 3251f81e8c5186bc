package glossary

import (
	"strings"
	"testing"
)

func TestExtractColumnsBasic(t *testing.T) {
	left := "Easy: conversational pace, you should be able to talk. Tempo: comfortably hard effort held for the stated time."
	right := "LRL: long run long, the weekly endurance cornerstone."

	g := NewExtractor().ExtractColumns(left, right)

	easy, ok := g.Entries["easy"]
	if !ok {
		t.Fatal("Expected an easy entry")
	}
	if !strings.HasPrefix(easy.Definition, "conversational pace") {
		t.Errorf("Unexpected easy definition: %q", easy.Definition)
	}
	if easy.NeedsReview {
		t.Errorf("Expected clean entry, got issues %v", easy.Issues)
	}

	tempo, ok := g.Entries["tempo"]
	if !ok {
		t.Fatal("Expected a tempo entry")
	}
	if strings.Contains(tempo.Definition, "conversational") {
		t.Errorf("Tempo definition absorbed the easy text: %q", tempo.Definition)
	}

	lrl, ok := g.Entries["lrl"]
	if !ok {
		t.Fatal("Expected an lrl entry")
	}
	if !strings.Contains(lrl.Definition, "endurance cornerstone") {
		t.Errorf("Unexpected lrl definition: %q", lrl.Definition)
	}

	if g.Note == "" {
		t.Error("Expected the glossary note to be set")
	}
	if len(g.ReviewNeeded) != 0 {
		t.Errorf("Expected no review-needed entries, got %v", g.ReviewNeeded)
	}
}

func TestExtractColumnsTitleKeepsLabelCase(t *testing.T) {
	g := NewExtractor().ExtractColumns("easy: relaxed running.", "")

	entry, ok := g.Entries["easy"]
	if !ok {
		t.Fatal("Expected an easy entry")
	}
	if entry.Title != "Easy" {
		t.Errorf("Expected canonical title Easy, got %q", entry.Title)
	}
}

func TestExtractColumnsLongerCandidateWins(t *testing.T) {
	left := "Easy: short."
	right := "Easy: a much longer definition with considerably more words in it."

	g := NewExtractor().ExtractColumns(left, right)
	if got := g.Entries["easy"].Definition; !strings.Contains(got, "much longer") {
		t.Errorf("Expected the wordier candidate to win, got %q", got)
	}
}

func TestExtractColumnsTieKeepsLeftColumn(t *testing.T) {
	left := "Easy: three word left."
	right := "Easy: three word right."

	g := NewExtractor().ExtractColumns(left, right)
	if got := g.Entries["easy"].Definition; got != "three word left" {
		t.Errorf("Expected the left candidate on a tie, got %q", got)
	}
}

func TestExtractColumnsDisclaimerTruncation(t *testing.T) {
	left := "Easy: relaxed running. Disclaimer: consult a physician before starting any program."

	g := NewExtractor().ExtractColumns(left, "")
	if got := g.Entries["easy"].Definition; got != "relaxed running." {
		t.Errorf("Expected the disclaimer stripped, got %q", got)
	}
}

func TestExtractColumnsOverlapFlagsReview(t *testing.T) {
	// The Hills definition bleeds into the Tempo one: Tempo's text contains
	// the Hills label as a whole word.
	left := "Tempo: sustained effort after Hills repeats are done."

	g := NewExtractor().ExtractColumns(left, "")
	entry := g.Entries["tempo"]
	if !entry.NeedsReview {
		t.Fatal("Expected overlap to flag the entry for review")
	}
	found := false
	for _, issue := range entry.Issues {
		if issue == "overlap_with_label:Hills" {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected an overlap_with_label:Hills issue, got %v", entry.Issues)
	}
	if len(g.ReviewNeeded) != 1 || g.ReviewNeeded[0] != "Tempo" {
		t.Errorf("Expected Tempo in review_needed, got %v", g.ReviewNeeded)
	}
}

// needs_review is true exactly when issues is non-empty.
func TestExtractColumnsReviewMatchesIssues(t *testing.T) {
	left := "Easy: relaxed running. Tempo: hard effort after Hills work."
	g := NewExtractor().ExtractColumns(left, "")

	for key, entry := range g.Entries {
		if entry.NeedsReview != (len(entry.Issues) > 0) {
			t.Errorf("Entry %q: needs_review %v does not match issues %v", key, entry.NeedsReview, entry.Issues)
		}
	}
}

func TestExtractColumnsUnmatchedLabelsOmitted(t *testing.T) {
	g := NewExtractor().ExtractColumns("Easy: relaxed running.", "")

	if len(g.Entries) != 1 {
		t.Errorf("Expected only the matched label, got %d entries", len(g.Entries))
	}
	if _, ok := g.Entries["strength"]; ok {
		t.Error("Expected unmatched strength label to be omitted")
	}
}

func TestExtractColumnsEmptyInput(t *testing.T) {
	g := NewExtractor().ExtractColumns("", "")

	if len(g.Entries) != 0 {
		t.Errorf("Expected no entries, got %d", len(g.Entries))
	}
	if g.Entries == nil || g.ReviewNeeded == nil {
		t.Error("Expected initialized empty collections")
	}
}

func TestExtractColumnsCustomLabels(t *testing.T) {
	e := NewExtractorWithLabels([]string{"Warmup", "Cooldown"})
	g := e.ExtractColumns("Warmup: ten easy minutes. Cooldown: five minutes of walking.", "")

	if len(g.Entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(g.Entries))
	}
	if got := g.Entries["warmup"].Definition; got != "ten easy minutes." {
		t.Errorf("Unexpected warmup definition: %q", got)
	}
}

func TestParseColumnTrimsPunctuation(t *testing.T) {
	e := NewExtractor()
	entries := e.parseColumn("Easy: - relaxed running; Tempo: hard.")

	if got := entries["easy"]; got != "relaxed running" {
		t.Errorf("Expected stray dashes and semicolons trimmed, got %q", got)
	}
}
