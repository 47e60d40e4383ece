package walker

import "github.com/katalvlaran/asciipath/grid"

// Start returns the initial state for g: positioned on the first entry
// marker, facing right, with the marker as the only rune in Path.
// Without an entry marker the state is already terminal with StatusNoStart.
func Start(g grid.Grid, v Vocabulary) State {
	p, ok := Locate(g, v.Entry)
	if !ok {
		return State{Direction: grid.Right, Status: StatusNoStart}
	}

	return State{
		Position:  p,
		Direction: grid.Right,
		Path:      []rune{v.Entry},
		Status:    StatusAdvancing,
	}
}

// Step advances s by one cell and returns the new state.
// A terminal state is returned unchanged.
//
//  1. next = position + direction
//  2. next outside g -> StatusFellOff, position unchanged
//  3. the rune at next is appended to Path
//  4. stop marker -> StatusStopped
//  5. 'A'-'Z' -> appended to Letters
//  6. junction -> direction = Turn(...)
//  7. position = next
func Step(g grid.Grid, s State, v Vocabulary) State {
	if s.Status.Terminal() {
		return s
	}

	next := s.Position.Move(s.Direction)
	if !g.InBounds(next) {
		s.Status = StatusFellOff

		return s
	}

	ch := g.At(next)
	s.Path = append(s.Path, ch)
	s.Position = next
	s.Steps++

	switch {
	case ch == v.Stop:
		s.Status = StatusStopped
	case isLetter(ch):
		s.Letters = append(s.Letters, ch)
	case ch == v.Junction:
		s.Direction = Turn(g, next, s.Direction, v.Blank)
	}

	return s
}
