package walker_test

import "github.com/katalvlaran/asciipath/grid"

// diagramGrid is the reference diagram with ragged rows: rows 2-4 are seven
// cells wide, so the walk leaves the grid below the first junction.
func diagramGrid() grid.Grid {
	return grid.FromLines([]string{
		">---A---+",
		"        |",
		"s-B-+ C",
		"  |   |",
		"  +---+",
	})
}

// paddedDiagramGrid is the same diagram with every row padded to nine cells,
// as a hand-built character matrix would be.
func paddedDiagramGrid() grid.Grid {
	return grid.New([][]rune{
		{'>', '-', '-', '-', 'A', '-', '-', '-', '+'},
		{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', '|'},
		{'s', '-', 'B', '-', '+', ' ', 'C', ' ', ' '},
		{' ', ' ', '|', ' ', '|', ' ', ' ', ' ', ' '},
		{' ', '+', '-', '-', '+', ' ', ' ', ' ', ' '},
	})
}

// zigzagGrid reaches the stop marker after two turns.
func zigzagGrid() grid.Grid {
	return grid.FromLines([]string{
		">-A-+",
		"    |",
		"s-B-+",
	})
}

// loopGrid is a closed square: the walk returns to the entry marker facing
// right and would repeat forever.
func loopGrid() grid.Grid {
	return grid.FromLines([]string{
		"+>+",
		"| |",
		"+-+",
	})
}
