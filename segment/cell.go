package segment

import (
	"regexp"

	"github.com/christiangobet/coachplan/metrics"
	"github.com/christiangobet/coachplan/model"
	"github.com/christiangobet/coachplan/textnorm"
)

var segmentSplitRE = regexp.MustCompile(`\s*\+\s*`)

// CellParser turns raw cell text into parsed day cells. The zero metrics
// extractor heuristics can be overridden via NewCellParserWith.
type CellParser struct {
	metrics *metrics.Extractor
}

// NewCellParser creates a parser with default metric heuristics.
func NewCellParser() *CellParser {
	return NewCellParserWith(metrics.NewExtractor())
}

// NewCellParserWith creates a parser using the given metric extractor.
func NewCellParserWith(m *metrics.Extractor) *CellParser {
	return &CellParser{metrics: m}
}

// ParseCell cleans raw cell text and decomposes it into classified,
// measured segments. Empty cells come back with type "unknown" and no
// metrics; non-empty cells additionally carry a metric set computed over
// the whole cleaned text, independent of the per-segment sets.
func (p *CellParser) ParseCell(text string) *model.DayCell {
	cell := model.NewDayCell()
	raw := textnorm.CleanCell(text)
	if raw == "" {
		return cell
	}
	cell.Raw = raw

	found := make(map[model.WorkoutType]bool)
	for _, part := range SplitSegments(raw) {
		tag := Classify(part)
		found[tag] = true
		cell.Segments = append(cell.Segments, part)
		cell.SegmentsParsed = append(cell.SegmentsParsed, model.Segment{
			Text:    part,
			Type:    tag,
			Metrics: p.metrics.Parse(part),
		})
	}

	cell.TypeGuess = cellType(found)
	whole := p.metrics.Parse(raw)
	cell.Metrics = &whole
	return cell
}

// SplitSegments splits cleaned cell text on the "+" segment delimiter.
// Each side is normalized; empty fragments are dropped.
func SplitSegments(raw string) []string {
	var out []string
	for _, part := range segmentSplitRE.Split(raw, -1) {
		if s := textnorm.Normalize(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
