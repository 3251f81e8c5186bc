package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"spaces collapsed", "  a   b  ", "a b"},
		{"newlines collapsed", "a\nb\r\n  c", "a b c"},
		{"tabs collapsed", "a\t\tb", "a b"},
		{"already clean", "a b", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestStripFootnoteDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"miles2", "miles"},
		{"XT3 workout", "XT workout"},
		{"LR6 easy", "LR easy"},
		{"4 miles", "4 miles"},
		{"3-5 miles", "3-5 miles"},
		{"30 minutes", "30 minutes"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := StripFootnoteDigits(tt.input); got != tt.want {
			t.Errorf("StripFootnoteDigits(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCleanCell(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"dropped rest letter", "est; 30 minutes", "Rest; 30 minutes"},
		{"dropped rest letter upper", "EST; easy", "Rest; easy"},
		{"split miles", "4\niles easy", "4 miles easy"},
		{"split miles inline", "Run 5 iles", "Run 5 miles"},
		{"star footnote artifact", "★4 R 1-2 mile WU", "★ 1-2 mile WU"},
		{"footnote digits", "4 miles2 easy", "4 miles easy"},
		{"wrapped cell", "4 miles\neasy pace", "4 miles easy pace"},
		{"plain", "Rest Day", "Rest Day"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanCell(tt.input); got != tt.want {
				t.Errorf("CleanCell(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Cleaning must be idempotent: repairs never re-trigger on repaired text.
func TestCleanCellIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"est; 30 minutes",
		"4\niles easy",
		"★4 R 1-2 mile WU",
		"4 miles2 easy + Strength 303",
		"Rest Day",
		"  spaced   out\ttext \n here ",
	}

	for _, input := range inputs {
		once := CleanCell(input)
		twice := CleanCell(once)
		if once != twice {
			t.Errorf("CleanCell not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}
