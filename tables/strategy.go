package tables

import (
	"github.com/christiangobet/coachplan/pages"
)

// Grid is a rectangular table of raw cell text: rows of cells, header row
// first.
type Grid [][]string

// Strategy extracts cell grids from page content. Implementations are
// stateless; the same strategy value may be reused across pages.
type Strategy interface {
	// Extract returns zero or more grids found on the page.
	Extract(content *pages.Content, cfg StrategyConfig) []Grid

	// Name returns the strategy identifier.
	Name() string
}

// StrategyConfig holds the geometric tolerances shared by the grid
// strategies.
type StrategyConfig struct {
	// SnapTolerance groups nearly-aligned positions (points).
	SnapTolerance float64

	// EdgeMinLength is the minimum ruled-edge length to consider (points).
	EdgeMinLength float64

	// LineTolerance is the vertical distance within which fragments share a
	// visual line (points).
	LineTolerance float64

	// MaxRowGap is the vertical gap that splits content into separate
	// tables (points).
	MaxRowGap float64

	// MinRows and MinCols reject degenerate grids.
	MinRows int
	MinCols int

	// MinWordsVertical is how many distinct rows a column position must
	// recur in before the text strategy accepts it as a column boundary.
	MinWordsVertical int
}

// DefaultStrategyConfig returns tolerances calibrated for the plan document
// family.
func DefaultStrategyConfig() StrategyConfig {
	return StrategyConfig{
		SnapTolerance:    3.0,
		EdgeMinLength:    3.0,
		LineTolerance:    3.0,
		MaxRowGap:        100.0,
		MinRows:          2,
		MinCols:          2,
		MinWordsVertical: 3,
	}
}

// alignedGroup is a cluster of nearly-identical positions on one axis, with
// the extent its members span on the perpendicular axis.
type alignedGroup struct {
	pos   float64
	lo    float64
	hi    float64
	count int
}

// groupAligned clusters sorted positions within tolerance. Each input
// carries its perpendicular extent so the group can track coverage. The
// group position is the running average of its members.
func groupAligned(items []edge, tolerance float64) []alignedGroup {
	if len(items) == 0 {
		return nil
	}

	var groups []alignedGroup
	current := alignedGroup{pos: items[0].pos, lo: items[0].lo, hi: items[0].hi, count: 1}
	for _, it := range items[1:] {
		if it.pos-current.pos <= tolerance {
			current.pos = (current.pos*float64(current.count) + it.pos) / float64(current.count+1)
			current.count++
			if it.lo < current.lo {
				current.lo = it.lo
			}
			if it.hi > current.hi {
				current.hi = it.hi
			}
			continue
		}
		groups = append(groups, current)
		current = alignedGroup{pos: it.pos, lo: it.lo, hi: it.hi, count: 1}
	}
	groups = append(groups, current)
	return groups
}

// edge is a ruled segment projected onto one axis: pos on the alignment
// axis, lo..hi on the perpendicular axis.
type edge struct {
	pos float64
	lo  float64
	hi  float64
}
