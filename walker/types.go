package walker

import (
	"fmt"

	"github.com/katalvlaran/asciipath/grid"
)

// Vocabulary names the marker runes the walker reacts to.
type Vocabulary struct {
	Entry    rune // start cell; the walk begins here facing right
	Stop     rune // entering it ends the walk
	Junction rune // entering it triggers Turn
	Blank    rune // "no path" when inspecting junction neighbors
}

// DefaultVocabulary returns '>', 's', '+' and ' '.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Entry:    '>',
		Stop:     's',
		Junction: '+',
		Blank:    ' ',
	}
}

// Validate checks that the four markers are distinct and that none of them
// is an uppercase letter.
func (v Vocabulary) Validate() error {
	marks := [...]struct {
		name string
		r    rune
	}{
		{"entry", v.Entry},
		{"stop", v.Stop},
		{"junction", v.Junction},
		{"blank", v.Blank},
	}
	for i, m := range marks {
		if isLetter(m.r) {
			return fmt.Errorf("%s marker %q is a letter: %w", m.name, m.r, ErrInvalidVocabulary)
		}
		for _, o := range marks[i+1:] {
			if m.r == o.r {
				return fmt.Errorf("%s and %s markers are both %q: %w", m.name, o.name, m.r, ErrInvalidVocabulary)
			}
		}
	}

	return nil
}

// Status is the state of a walk.
type Status int

const (
	StatusAdvancing     Status = iota // still moving
	StatusStopped                     // entered the stop marker
	StatusFellOff                     // next position was outside the grid
	StatusCycleDetected               // a (position, direction) pair repeated
	StatusStepLimit                   // WithMaxSteps bound reached
	StatusNoStart                     // no entry marker in the grid
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusAdvancing:
		return "advancing"
	case StatusStopped:
		return "stopped"
	case StatusFellOff:
		return "fell-off"
	case StatusCycleDetected:
		return "cycle-detected"
	case StatusStepLimit:
		return "step-limit"
	case StatusNoStart:
		return "no-start"
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Terminal reports whether s ends a walk.
func (s Status) Terminal() bool {
	return s != StatusAdvancing
}

// State is the complete walker state between two steps.
//
// Step never modifies the runes already in Path or Letters, but the State
// it returns may share their backing arrays; do not append to a State that
// has already been passed to Step.
type State struct {
	Position  grid.Position  // current cell
	Direction grid.Direction // heading for the next step
	Path      []rune         // every rune entered, starting with the entry marker
	Letters   []rune         // 'A'-'Z' subsequence of Path
	Status    Status
	Steps     int // cells entered so far
}

// Result is the outcome of Walk.
type Result struct {
	// Path is every rune visited, in order, starting with the entry marker.
	Path string
	// Letters is the 'A'-'Z' subsequence of Path, duplicates preserved.
	Letters string
	// Status tells why the walk ended.
	Status Status
	// Steps counts the cells entered after the entry marker.
	Steps int
	// Start is the entry marker position; zero when Status is StatusNoStart.
	Start grid.Position
	// End is the last cell entered (the stop marker when Status is StatusStopped).
	End grid.Position
}

// Output returns only the path and letters, the shape callers used before a
// termination reason was exposed.
func (r Result) Output() (path, letters string) {
	return r.Path, r.Letters
}

// isLetter reports whether r is in 'A'-'Z'.
func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
