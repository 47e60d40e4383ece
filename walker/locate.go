package walker

import "github.com/katalvlaran/asciipath/grid"

// Locate scans g row by row, left to right, and returns the position of the
// first cell equal to entry. The boolean is false when no such cell exists.
// Complexity: O(cells), stops at the first match.
func Locate(g grid.Grid, entry rune) (grid.Position, bool) {
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.RowLen(r); c++ {
			p := grid.Position{Row: r, Col: c}
			if g.At(p) == entry {
				return p, true
			}
		}
	}

	return grid.Position{}, false
}
