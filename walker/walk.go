package walker

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/asciipath/grid"
)

// visit is the cycle-detection key: the walk is a function of position and
// heading alone, so a repeated pair means the walk never ends.
type visit struct {
	at  grid.Position
	dir grid.Direction
}

// pathWalker encapsulates state during a walk.
type pathWalker struct {
	grid grid.Grid
	opts Options
	seen map[visit]struct{} // nil when cycle detection is off
}

// Walk traces the path in g from the entry marker and returns the visited
// runes, the collected letters and the termination reason.
// A grid without an entry marker yields an empty Result with StatusNoStart
// and a nil error. Errors come only from cancellation or the OnStep hook;
// the partial Result is returned alongside them.
func Walk(g grid.Grid, opts ...Option) (Result, error) {
	// 1. Apply options
	wopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&wopts)
	}

	w := &pathWalker{grid: g, opts: wopts}
	if wopts.CycleDetection {
		w.seen = make(map[visit]struct{})
	}

	return w.run()
}

// run seeds the state and steps until a terminal status.
func (w *pathWalker) run() (Result, error) {
	log := w.opts.Logger

	// 1. Locate the entry marker
	s := Start(w.grid, w.opts.Vocabulary)
	if s.Status == StatusNoStart {
		log.Debug("no entry marker", zap.String("entry", string(w.opts.Vocabulary.Entry)))

		return Result{Status: StatusNoStart}, nil
	}
	start := s.Position
	log.Debug("walk started", zap.Stringer("at", start))
	w.remember(s)

	// 2. Step until terminal
	for !s.Status.Terminal() {
		select {
		case <-w.opts.Ctx.Done():
			return result(start, s), w.opts.Ctx.Err()
		default:
		}

		if w.opts.MaxSteps >= 0 && s.Steps >= w.opts.MaxSteps {
			s.Status = StatusStepLimit
			break
		}

		heading := s.Direction
		s = Step(w.grid, s, w.opts.Vocabulary)
		if s.Direction != heading {
			log.Debug("turned",
				zap.Stringer("at", s.Position),
				zap.Stringer("from", heading),
				zap.Stringer("to", s.Direction))
		}

		if !s.Status.Terminal() && w.remember(s) {
			s.Status = StatusCycleDetected
		}

		if w.opts.OnStep != nil {
			if err := w.opts.OnStep(s); err != nil {
				return result(start, s), fmt.Errorf("walker: OnStep at %s: %w", s.Position, err)
			}
		}
	}

	// 3. Report
	res := result(start, s)
	log.Debug("walk finished",
		zap.Stringer("status", res.Status),
		zap.Int("steps", res.Steps),
		zap.Stringer("end", res.End))

	return res, nil
}

// remember records s in the visited set and reports whether it was already
// there. Always false when cycle detection is off.
func (w *pathWalker) remember(s State) bool {
	if w.seen == nil {
		return false
	}
	k := visit{at: s.Position, dir: s.Direction}
	if _, ok := w.seen[k]; ok {
		return true
	}
	w.seen[k] = struct{}{}

	return false
}

// result converts a state into the public Result.
func result(start grid.Position, s State) Result {
	return Result{
		Path:    string(s.Path),
		Letters: string(s.Letters),
		Status:  s.Status,
		Steps:   s.Steps,
		Start:   start,
		End:     s.Position,
	}
}
