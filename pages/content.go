package pages

import (
	"sort"
	"strings"
)

// Fragment is a positioned run of text on a page. Coordinates are PDF
// points with the origin at the bottom-left; Y is the text baseline.
type Fragment struct {
	Text     string
	X        float64
	Y        float64
	W        float64
	FontSize float64
}

// MidX returns the horizontal midpoint of the fragment.
func (f Fragment) MidX() float64 {
	return f.X + f.W/2
}

// Rect is a drawn rectangle. Ruled table borders arrive as thin rects.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// BBox is an axis-aligned page region.
type BBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Contains reports whether the point lies inside the region.
func (b BBox) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Content is the extracted content of one page.
type Content struct {
	Number    int
	Width     float64
	Height    float64
	Fragments []Fragment
	Rects     []Rect
}

// RegionText extracts plain text from a page region: fragments whose
// midpoint falls inside the region, read top-to-bottom and left-to-right,
// one output line per visual line. lineTolerance is the vertical distance
// (points) within which fragments count as the same line.
func (c *Content) RegionText(region BBox, lineTolerance float64) string {
	var inside []Fragment
	for _, f := range c.Fragments {
		if region.Contains(f.MidX(), f.Y) {
			inside = append(inside, f)
		}
	}
	if len(inside) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range GroupLines(inside, lineTolerance) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(JoinLine(line))
	}
	return sb.String()
}

// GroupLines clusters fragments into visual lines by baseline proximity and
// returns the lines top-to-bottom, each sorted left-to-right.
func GroupLines(fragments []Fragment, tolerance float64) [][]Fragment {
	if len(fragments) == 0 {
		return nil
	}

	sorted := make([]Fragment, len(fragments))
	copy(sorted, fragments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines [][]Fragment
	current := []Fragment{sorted[0]}
	currentY := sorted[0].Y
	for _, f := range sorted[1:] {
		if currentY-f.Y <= tolerance {
			current = append(current, f)
			continue
		}
		lines = append(lines, sortLine(current))
		current = []Fragment{f}
		currentY = f.Y
	}
	lines = append(lines, sortLine(current))
	return lines
}

func sortLine(line []Fragment) []Fragment {
	sort.Slice(line, func(i, j int) bool { return line[i].X < line[j].X })
	return line
}

// JoinLine concatenates one visual line's fragments. PDF readers split text
// into arbitrary runs, so adjacent runs are joined without a space unless
// the horizontal gap between them is wide enough to be a word break.
func JoinLine(line []Fragment) string {
	var sb strings.Builder
	for i, f := range line {
		if i > 0 {
			prev := line[i-1]
			if f.X-(prev.X+prev.W) > wordGap(prev.FontSize) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(f.Text)
	}
	return sb.String()
}

// wordGap is the horizontal distance that separates words rather than runs
// within a word, scaled to the font size.
func wordGap(fontSize float64) float64 {
	gap := fontSize * 0.25
	if gap < 1 {
		gap = 1
	}
	return gap
}
