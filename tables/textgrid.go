package tables

import (
	"sort"

	"github.com/christiangobet/coachplan/pages"
)

// TextStrategy detects grids from text positions alone, for layouts drawn
// without ruled borders. Visual lines become rows; a column boundary is any
// left-edge position that recurs across enough rows. Wrapped cell content
// surfaces as extra rows, which the Assembler's continuation handling
// merges back together.
type TextStrategy struct{}

// NewTextStrategy creates a text-positional grid strategy.
func NewTextStrategy() *TextStrategy {
	return &TextStrategy{}
}

// Name returns "text".
func (s *TextStrategy) Name() string {
	return "text"
}

// Extract infers grids from fragment positions. Lines separated by more
// than MaxRowGap split into independent tables.
func (s *TextStrategy) Extract(content *pages.Content, cfg StrategyConfig) []Grid {
	lines := pages.GroupLines(content.Fragments, cfg.LineTolerance)
	if len(lines) == 0 {
		return nil
	}

	var grids []Grid
	for _, band := range splitLineBands(lines, cfg.MaxRowGap) {
		if len(band) < cfg.MinRows {
			continue
		}
		cols := detectColumns(band, cfg)
		if len(cols) < cfg.MinCols {
			continue
		}
		grids = append(grids, buildTextGrid(band, cols, cfg))
	}
	return grids
}

// splitLineBands cuts the top-to-bottom line sequence wherever the baseline
// gap to the next line exceeds maxGap.
func splitLineBands(lines [][]pages.Fragment, maxGap float64) [][][]pages.Fragment {
	var bands [][][]pages.Fragment
	current := [][]pages.Fragment{lines[0]}
	for _, line := range lines[1:] {
		prevY := current[len(current)-1][0].Y
		if prevY-line[0].Y > maxGap {
			bands = append(bands, current)
			current = nil
		}
		current = append(current, line)
	}
	bands = append(bands, current)
	return bands
}

// detectColumns finds column start positions: left edges grouped within the
// snap tolerance that recur in at least MinWordsVertical distinct rows.
// Returned positions are sorted left-to-right.
func detectColumns(band [][]pages.Fragment, cfg StrategyConfig) []float64 {
	type start struct {
		x    float64
		line int
	}
	var starts []start
	for i, line := range band {
		for _, f := range line {
			starts = append(starts, start{x: f.X, line: i})
		}
	}
	sort.Slice(starts, func(i, j int) bool { return starts[i].x < starts[j].x })

	var cols []float64
	i := 0
	for i < len(starts) {
		pos := starts[i].x
		seen := map[int]bool{starts[i].line: true}
		j := i + 1
		for j < len(starts) && starts[j].x-pos <= cfg.SnapTolerance {
			seen[starts[j].line] = true
			j++
		}
		if len(seen) >= cfg.MinWordsVertical {
			cols = append(cols, pos)
		}
		i = j
	}
	return cols
}

// buildTextGrid renders one grid row per visual line, assigning each
// fragment to the rightmost column starting at or left of it.
func buildTextGrid(band [][]pages.Fragment, cols []float64, cfg StrategyConfig) Grid {
	grid := make(Grid, len(band))
	for i, line := range band {
		cells := make([][]pages.Fragment, len(cols))
		for _, f := range line {
			col := 0
			for j := len(cols) - 1; j >= 0; j-- {
				if f.X+cfg.SnapTolerance >= cols[j] {
					col = j
					break
				}
			}
			cells[col] = append(cells[col], f)
		}
		grid[i] = make([]string, len(cols))
		for j, frags := range cells {
			grid[i][j] = renderCell(frags, cfg.LineTolerance)
		}
	}
	return grid
}
