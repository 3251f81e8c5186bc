package tables

import (
	"sort"
	"strings"

	"github.com/christiangobet/coachplan/pages"
)

// LineStrategy detects grids from ruled table borders. Drawn rectangles are
// decomposed into horizontal and vertical edges, nearly-aligned edges are
// grouped into grid lines, and text fragments are binned into the cells the
// lines bound. It is the primary strategy: ruled-line detection is the more
// reliable one whenever borders are present.
type LineStrategy struct{}

// NewLineStrategy creates a ruled-line grid strategy.
func NewLineStrategy() *LineStrategy {
	return &LineStrategy{}
}

// Name returns "lines".
func (s *LineStrategy) Name() string {
	return "lines"
}

// Extract finds ruled grids on the page. Horizontal grid lines separated by
// more than MaxRowGap split the page into independent tables.
func (s *LineStrategy) Extract(content *pages.Content, cfg StrategyConfig) []Grid {
	horizontals, verticals := collectEdges(content.Rects, cfg.EdgeMinLength)
	if len(horizontals) < 2 || len(verticals) < 2 {
		return nil
	}

	sort.Slice(horizontals, func(i, j int) bool { return horizontals[i].pos < horizontals[j].pos })
	sort.Slice(verticals, func(i, j int) bool { return verticals[i].pos < verticals[j].pos })

	hGroups := groupAligned(horizontals, cfg.SnapTolerance)
	vGroups := groupAligned(verticals, cfg.SnapTolerance)

	// Work top-to-bottom.
	for i, j := 0, len(hGroups)-1; i < j; i, j = i+1, j-1 {
		hGroups[i], hGroups[j] = hGroups[j], hGroups[i]
	}

	var grids []Grid
	for _, band := range splitBands(hGroups, cfg.MaxRowGap) {
		if len(band) < cfg.MinRows+1 {
			continue
		}
		top := band[0].pos
		bottom := band[len(band)-1].pos

		var cols []alignedGroup
		for _, v := range vGroups {
			if v.hi > bottom && v.lo < top {
				cols = append(cols, v)
			}
		}
		if len(cols) < cfg.MinCols+1 {
			continue
		}

		if grid := binFragments(content.Fragments, band, cols, cfg); grid != nil {
			grids = append(grids, grid)
		}
	}
	return grids
}

// collectEdges decomposes rectangles into axis-aligned edges, dropping
// edges shorter than minLength. A border drawn as a thin filled rect yields
// a near-duplicate edge pair that alignment grouping later collapses.
func collectEdges(rects []pages.Rect, minLength float64) (horizontals, verticals []edge) {
	for _, r := range rects {
		width := r.MaxX - r.MinX
		height := r.MaxY - r.MinY
		if width >= minLength {
			horizontals = append(horizontals,
				edge{pos: r.MinY, lo: r.MinX, hi: r.MaxX},
				edge{pos: r.MaxY, lo: r.MinX, hi: r.MaxX})
		}
		if height >= minLength {
			verticals = append(verticals,
				edge{pos: r.MinX, lo: r.MinY, hi: r.MaxY},
				edge{pos: r.MaxX, lo: r.MinY, hi: r.MaxY})
		}
	}
	return horizontals, verticals
}

// splitBands cuts a top-to-bottom run of horizontal grid lines wherever the
// gap to the next line exceeds maxGap, one band per table.
func splitBands(groups []alignedGroup, maxGap float64) [][]alignedGroup {
	if len(groups) == 0 {
		return nil
	}
	var bands [][]alignedGroup
	current := []alignedGroup{groups[0]}
	for _, g := range groups[1:] {
		if current[len(current)-1].pos-g.pos > maxGap {
			bands = append(bands, current)
			current = nil
		}
		current = append(current, g)
	}
	bands = append(bands, current)
	return bands
}

// binFragments assigns fragments to the cells bounded by the given row
// lines (top-to-bottom) and column lines (left-to-right) and renders each
// cell's text.
func binFragments(fragments []pages.Fragment, rows, cols []alignedGroup, cfg StrategyConfig) Grid {
	nRows := len(rows) - 1
	nCols := len(cols) - 1

	cells := make([][][]pages.Fragment, nRows)
	for i := range cells {
		cells[i] = make([][]pages.Fragment, nCols)
	}

	for _, f := range fragments {
		row := -1
		for i := 0; i < nRows; i++ {
			if f.Y <= rows[i].pos && f.Y > rows[i+1].pos {
				row = i
				break
			}
		}
		if row < 0 {
			continue
		}
		col := -1
		cx := f.MidX()
		for j := 0; j < nCols; j++ {
			if cx >= cols[j].pos && cx < cols[j+1].pos {
				col = j
				break
			}
		}
		if col < 0 {
			continue
		}
		cells[row][col] = append(cells[row][col], f)
	}

	grid := make(Grid, nRows)
	for i := range cells {
		grid[i] = make([]string, nCols)
		for j, frags := range cells[i] {
			grid[i][j] = renderCell(frags, cfg.LineTolerance)
		}
	}
	return grid
}

// renderCell joins a cell's fragments into text, one line per visual line.
func renderCell(frags []pages.Fragment, lineTolerance float64) string {
	if len(frags) == 0 {
		return ""
	}
	lines := pages.GroupLines(frags, lineTolerance)
	parts := make([]string, len(lines))
	for i, line := range lines {
		parts[i] = pages.JoinLine(line)
	}
	return strings.Join(parts, "\n")
}
