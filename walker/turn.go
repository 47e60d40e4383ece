package walker

import "github.com/katalvlaran/asciipath/grid"

// Turn picks the outgoing direction at the junction at, entered while
// heading incoming.
//
// Candidates are tried in the order Up, Down, Left, Right. The incoming
// direction and its inverse are skipped. The first candidate whose neighbor
// is inside g and not blank wins. When none qualifies the incoming direction
// is returned unchanged; the walk then continues straight.
// Complexity: O(1).
func Turn(g grid.Grid, at grid.Position, incoming grid.Direction, blank rune) grid.Direction {
	back := incoming.Inverse()
	for _, d := range grid.Directions() {
		if d == incoming || d == back {
			continue
		}
		n := at.Move(d)
		if g.InBounds(n) && g.At(n) != blank {
			return d
		}
	}

	return incoming
}
