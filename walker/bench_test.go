package walker_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/asciipath/grid"
	"github.com/katalvlaran/asciipath/walker"
)

// serpentine builds an n×n track that sweeps every row, alternating
// direction, and ends on 's' in the last row.
func serpentine(n int) grid.Grid {
	lines := make([]string, 0, 2*n)
	for r := 0; r < n; r++ {
		var b strings.Builder
		switch {
		case r == 0:
			b.WriteString(">")
			b.WriteString(strings.Repeat("-", n-2))
			b.WriteString("+")
		case r == n-1 && r%2 == 1:
			b.WriteString("s")
			b.WriteString(strings.Repeat("-", n-2))
			b.WriteString("+")
		case r == n-1:
			b.WriteString("+")
			b.WriteString(strings.Repeat("-", n-2))
			b.WriteString("s")
		default:
			b.WriteString("+")
			b.WriteString(strings.Repeat("-", n-2))
			b.WriteString("+")
		}
		lines = append(lines, b.String())
		if r < n-1 {
			connector := []rune(strings.Repeat(" ", n))
			if r%2 == 0 {
				connector[n-1] = '|'
			} else {
				connector[0] = '|'
			}
			lines = append(lines, string(connector))
		}
	}

	return grid.FromLines(lines)
}

// BenchmarkWalk measures a full walk over a 399-row, 200-column serpentine track.
// Complexity: O(L) with L ≈ 200×200.
func BenchmarkWalk(b *testing.B) {
	g := serpentine(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walker.Walk(g)
	}
}

// BenchmarkWalk_NoCycleDetection isolates the cost of the visited set.
func BenchmarkWalk_NoCycleDetection(b *testing.B) {
	g := serpentine(200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = walker.Walk(g, walker.WithCycleDetection(false))
	}
}

// TestSerpentine_Stops guards the benchmark fixture.
func TestSerpentine_Stops(t *testing.T) {
	for _, n := range []int{3, 4, 5} {
		res, err := walker.Walk(serpentine(n))
		if err != nil {
			t.Fatalf("Walk(serpentine(%d)) error: %v", n, err)
		}
		if res.Status != walker.StatusStopped {
			t.Errorf("serpentine(%d) status = %s; want stopped (path %q)", n, res.Status, res.Path)
		}
	}
}
