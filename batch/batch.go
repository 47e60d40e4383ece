// Package batch walks many grids concurrently.
//
// Grids are read-only and every walker.Walk call owns its state, so the
// walks share nothing. Results keep the order of the input grids.
package batch

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/asciipath/grid"
	"github.com/katalvlaran/asciipath/walker"
)

// Walk runs walker.Walk on every grid with at most parallel walks in
// flight (parallel <= 0 means no limit). opts apply to every walk; ctx
// replaces any WithContext among them. A WithOnStep hook is shared by all
// walks and must be safe for concurrent use.
//
// The first error cancels the remaining walks and is returned wrapped with
// the index of the failing grid. Results of walks that completed are still
// filled in.
func Walk(ctx context.Context, grids []grid.Grid, parallel int, opts ...walker.Option) ([]walker.Result, error) {
	results := make([]walker.Result, len(grids))

	eg, egCtx := errgroup.WithContext(ctx)
	if parallel > 0 {
		eg.SetLimit(parallel)
	}

	wopts := make([]walker.Option, 0, len(opts)+1)
	wopts = append(wopts, opts...)
	wopts = append(wopts, walker.WithContext(egCtx))

	for i, g := range grids {
		eg.Go(func() error {
			res, err := walker.Walk(g, wopts...)
			results[i] = res
			if err != nil {
				return fmt.Errorf("batch: grid %d: %w", i, err)
			}
			return nil
		})
	}

	return results, eg.Wait()
}
