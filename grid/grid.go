package grid

import (
	"fmt"
	"strings"
)

// Blank is the rune returned by At for positions outside the grid.
const Blank = ' '

// Position addresses a single cell by row and column.
type Position struct {
	Row, Col int
}

// Move returns the neighbor of p one step in direction d.
// The result may lie outside any grid; callers check InBounds.
// Complexity: O(1).
func (p Position) Move(d Direction) Position {
	dr, dc := d.Delta()

	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is an immutable matrix of runes addressed by (row, col).
// Rows may differ in length. The zero value is an empty grid.
type Grid struct {
	cells [][]rune
}

// New constructs a Grid from rows, deep-copying the input so later
// mutation of rows does not affect the grid.
// Complexity: O(cells) time and memory.
func New(rows [][]rune) Grid {
	cells := make([][]rune, len(rows))
	for r, row := range rows {
		cells[r] = make([]rune, len(row))
		copy(cells[r], row)
	}

	return Grid{cells: cells}
}

// FromLines builds a Grid with one row per line. Each line is split into
// runes, so multi-byte characters occupy a single cell.
func FromLines(lines []string) Grid {
	cells := make([][]rune, len(lines))
	for r, line := range lines {
		cells[r] = []rune(line)
	}

	return Grid{cells: cells}
}

// FromText splits text on '\n' and builds a Grid from the lines.
// A trailing '\r' on each line and a single trailing newline are dropped.
func FromText(text string) Grid {
	if text == "" {
		return Grid{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	return FromLines(lines)
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// RowLen returns the length of row r, or 0 when r is outside the grid.
func (g Grid) RowLen(r int) int {
	if r < 0 || r >= len(g.cells) {
		return 0
	}

	return len(g.cells[r])
}

// Cells returns the number of cells across all rows.
func (g Grid) Cells() int {
	n := 0
	for _, row := range g.cells {
		n += len(row)
	}

	return n
}

// InBounds reports whether p lies inside the grid, using the length of
// the addressed row as the column extent.
// Complexity: O(1).
func (g Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < len(g.cells) && p.Col >= 0 && p.Col < len(g.cells[p.Row])
}

// At returns the rune at p, or Blank when p is out of bounds.
// Complexity: O(1).
func (g Grid) At(p Position) rune {
	if !g.InBounds(p) {
		return Blank
	}

	return g.cells[p.Row][p.Col]
}

// Lines renders the grid back to one string per row.
func (g Grid) Lines() []string {
	lines := make([]string, len(g.cells))
	for r, row := range g.cells {
		lines[r] = string(row)
	}

	return lines
}

// String renders the grid with rows joined by '\n'.
func (g Grid) String() string {
	return strings.Join(g.Lines(), "\n")
}
