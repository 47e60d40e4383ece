// Package grid models a read-only 2D character grid and the cardinal
// directions used to move across it.
//
// What:
//
//   - Grid wraps a [][]rune matrix. Rows may have different lengths; every
//     read is bounds-checked against the extent of the addressed row.
//   - Position is a transient (Row, Col) pair.
//   - Direction is one of Up, Down, Left, Right, each carrying its
//     (rowChange, colChange) delta and a total Inverse.
//
// Why:
//
//   - ASCII diagrams: route extraction from hand-drawn maps and puzzles.
//   - Game boards: cell lookup with explicit, per-row bounds.
//
// Construction:
//
//   - New(rows):        deep-copies a [][]rune.
//   - FromLines(lines): one row per string, split into runes.
//   - FromText(text):   splits on '\n' and trims a trailing '\r' per line.
//
// Complexity:
//
//   - New/FromLines/FromText: O(cells) time and memory.
//   - InBounds, At, Move:     O(1).
//
// Grid never validates shape: an empty grid or ragged rows are legal values.
package grid
