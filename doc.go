// Package asciipath follows paths drawn in ASCII diagrams.
//
// A diagram is a grid of characters. The walk starts at the entry marker
// '>' facing right, runs along straight segments, turns at '+' junctions,
// collects the uppercase letters it passes and ends on the stop marker 's'
// or when the next step would leave the grid.
//
// Quick example:
//
//	>-A-+
//	    |
//	s-B-+
//
//	path:    >-A-+|+-B-s
//	letters: AB
//
// Subpackages:
//
//	grid/          — immutable rune grid, Position, Direction (Up, Down, Left, Right)
//	walker/        — Locate, Turn, Start/Step state machine, Walk with options
//	batch/         — concurrent walks over many grids, results in input order
//	config/        — YAML, .env and environment settings → walker options
//	cmd/pathtrace/ — command line front end
//
// Guarantees:
//
//   - Deterministic: the same grid always yields the same path and letters.
//   - Never hangs by default: a repeated (position, direction) pair ends the
//     walk with walker.StatusCycleDetected.
//   - Read-only grids: any number of walks may share one grid.
package asciipath
