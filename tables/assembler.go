package tables

import (
	"fmt"
	"strings"

	"github.com/christiangobet/coachplan/model"
	"github.com/christiangobet/coachplan/textnorm"
)

// weekdayHeader is the uppercase weekday column sequence every accepted
// layout contains.
var weekdayHeader = []string{
	"MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY",
}

// HeaderLayout describes one accepted table header shape and how its body
// rows map onto the seven weekday cells.
type HeaderLayout struct {
	// Name identifies the layout in warnings.
	Name string

	// Cells is the exact normalized, uppercased header row.
	Cells []string

	// WeekColumn is true when the first body column is a week marker rather
	// than Monday.
	WeekColumn bool
}

// DefaultLayouts returns the three known header shapes: plain weekday
// columns, weekday columns behind a WEEK marker column, and the marker
// variant with a trailing total-weekly-mileage column.
func DefaultLayouts() []HeaderLayout {
	withWeek := append([]string{"WEEK"}, weekdayHeader...)
	return []HeaderLayout{
		{Name: "plain", Cells: weekdayHeader, WeekColumn: false},
		{Name: "week", Cells: withWeek, WeekColumn: true},
		{Name: "week-twm", Cells: append(append([]string{}, withWeek...), "TWM"), WeekColumn: true},
	}
}

// RawWeek holds one week's unparsed day cells in weekday order.
type RawWeek [7]string

// Assembler folds raw grids into week records. It carries state across
// grids only in the sense of accumulating output weeks; the new-week /
// continuation state machine resets for every grid.
type Assembler struct {
	layouts  []HeaderLayout
	weeks    []RawWeek
	warnings []string
}

// NewAssembler creates an assembler accepting the default header layouts.
func NewAssembler() *Assembler {
	return &Assembler{layouts: DefaultLayouts()}
}

// WeekCount returns the number of weeks assembled so far. Callers use the
// delta around a page's grids to decide whether the fallback strategy is
// needed.
func (a *Assembler) WeekCount() int {
	return len(a.weeks)
}

// Weeks returns the assembled weeks in emission order.
func (a *Assembler) Weeks() []RawWeek {
	return a.weeks
}

// Warnings returns human-readable notes about skipped tables and discarded
// rows.
func (a *Assembler) Warnings() []string {
	return a.warnings
}

// ProcessGrid folds one grid into the assembler. Grids whose header row
// matches none of the accepted layouts are skipped without error, since a page
// may carry unrelated tables, and false is returned.
//
// Within an accepted grid, a row either starts a new week (flushing the one
// being accumulated) or continues the active week, in which case its
// non-empty cells are appended to the active week's cells with a single
// separating space. Continuation rows with no active week are discarded.
func (a *Assembler) ProcessGrid(grid Grid) bool {
	if len(grid) < 2 {
		return false
	}
	layout := a.matchHeader(grid[0])
	if layout == nil {
		a.warnings = append(a.warnings, fmt.Sprintf("table skipped: unrecognized header %q", headerPreview(grid[0])))
		return false
	}

	var current RawWeek
	active := false
	flush := func() {
		if active {
			a.weeks = append(a.weeks, current)
			current = RawWeek{}
			active = false
		}
	}

	for _, row := range grid[1:] {
		cleaned := make([]string, len(row))
		for i, cell := range row {
			cleaned[i] = textnorm.CleanCell(cell)
		}
		if len(cleaned) == 0 {
			continue
		}
		// A repeated "WEEK" label row inside the body is furniture.
		if strings.ToUpper(cleaned[0]) == "WEEK" {
			continue
		}

		cells, newWeek := layout.mapRow(cleaned)
		if newWeek {
			flush()
			current = cells
			active = true
			continue
		}
		if !active {
			a.warnings = append(a.warnings, "continuation row discarded: no active week")
			continue
		}
		for i := 0; i < len(current); i++ {
			if cells[i] == "" {
				continue
			}
			if current[i] != "" {
				current[i] = current[i] + " " + cells[i]
			} else {
				current[i] = cells[i]
			}
		}
	}

	flush()
	return true
}

// mapRow derives the seven weekday cells and the new-week decision for one
// cleaned body row. Without a marker column a row starts a new week when any
// cell is non-empty; with one, when the marker is purely numeric.
func (l *HeaderLayout) mapRow(row []string) (RawWeek, bool) {
	var cells RawWeek
	if !l.WeekColumn {
		copy(cells[:], row)
		newWeek := false
		for _, c := range cells {
			if strings.TrimSpace(c) != "" {
				newWeek = true
				break
			}
		}
		return cells, newWeek
	}

	marker := ""
	if len(row) > 0 {
		marker = row[0]
		copy(cells[:], row[1:])
	}
	return cells, isNumeric(marker)
}

// matchHeader returns the layout whose header row exactly matches the
// grid's first row after normalization and uppercasing, or nil.
func (a *Assembler) matchHeader(header []string) *HeaderLayout {
	normalized := make([]string, len(header))
	for i, cell := range header {
		normalized[i] = strings.ToUpper(textnorm.Normalize(cell))
	}
	for i := range a.layouts {
		if equalCells(a.layouts[i].Cells, normalized) {
			return &a.layouts[i]
		}
	}
	return nil
}

func equalCells(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// isNumeric reports whether s is a non-empty string of ASCII digits.
func isNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func headerPreview(header []string) string {
	s := strings.Join(header, "|")
	if len(s) > 60 {
		s = s[:60] + "..."
	}
	return s
}

// BuildWeek converts a raw week into a model.Week using the given cell
// parser function, assigning cells in weekday order.
func BuildWeek(number int, raw RawWeek, parse func(string) *model.DayCell) *model.Week {
	week := &model.Week{Number: number, Days: make(model.DayMap, len(model.DayKeys))}
	for i, key := range model.DayKeys {
		week.Days[key] = parse(raw[i])
	}
	return week
}
