// Package walker traces a path drawn on a grid.Grid: it starts at the entry
// marker facing right, follows straight segments, turns at junctions,
// collects uppercase letters and stops at the stop marker or when the next
// step would leave the grid.
//
// Key features:
//   - Locate(g, entry): row-major scan for the first entry marker.
//   - Turn(g, at, incoming, blank): junction resolution with the fixed
//     candidate order Up, Down, Left, Right; straight-on and reverse are
//     never candidates; a dead end keeps the incoming direction.
//   - Start / Step: explicit State and a pure transition function, useful
//     for testing individual moves.
//   - Walk(g, opts...): the full traversal with cycle detection, an
//     optional step bound, cancellation and a per-step hook.
//
// Vocabulary (DefaultVocabulary):
//
//	'>'     entry marker
//	's'     stop marker
//	'+'     junction marker
//	'A'-'Z' letters, collected in encounter order
//	' '     blank, "no path here" when inspecting junction neighbors
//
// Any other rune is a filler: it is recorded in the path and nothing else.
//
// Termination (Result.Status):
//
//   - StatusStopped        the stop marker was entered
//   - StatusFellOff        the next position was outside the grid
//   - StatusCycleDetected  a (position, direction) pair repeated
//   - StatusStepLimit      WithMaxSteps bound reached
//   - StatusNoStart        no entry marker; Path and Letters are empty
//
// Result.Output() returns only (path, letters) for callers that do not care
// about the termination reason.
//
// Options:
//
//   - WithContext(ctx)          cancellation, checked before every step.
//   - WithOnStep(fn)            observer after every step; an error aborts.
//   - WithMaxSteps(n)           bound on entered cells (-1 = unlimited).
//   - WithCycleDetection(on)    repeated-state guard (default on).
//   - WithVocabulary(v)         custom markers.
//   - WithLogger(l)             zap logger for debug traces.
//
// Errors:
//
//   - context.Canceled / context.DeadlineExceeded when ctx is done.
//   - any error returned by the OnStep hook, wrapped with the position.
//
// Grid shape never produces an error; a missing entry marker is an ordinary
// outcome (StatusNoStart).
//
// Complexity: Walk is O(L) time for a path of L steps, plus O(L) memory for
// the visited set when cycle detection is on.
//
// Concurrency: the grid is read-only, so any number of Walk calls may share
// one grid; each call owns its State.
package walker
