package grid

// Direction is a cardinal unit vector on the grid. Diagonals do not exist.
type Direction int

const (
	// Up moves one row towards row 0: (-1, 0).
	Up Direction = iota
	// Down moves one row away from row 0: (1, 0).
	Down
	// Left moves one column towards column 0: (0, -1).
	Left
	// Right moves one column away from column 0: (0, 1).
	Right
)

// directionOrder is the fixed candidate order used when resolving turns.
var directionOrder = [...]Direction{Up, Down, Left, Right}

// Directions returns the four directions in their canonical order
// Up, Down, Left, Right. The returned array is a copy.
func Directions() [4]Direction {
	return directionOrder
}

// Delta returns the (rowChange, colChange) pair of d.
// Complexity: O(1).
func (d Direction) Delta() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}

	return 0, 0
}

// Inverse returns the opposite direction: Up<->Down, Left<->Right.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return d
}

// Valid reports whether d is one of the four canonical directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}

	return "invalid"
}
