package bot

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/iamasit07/findfour/internal/domain"
)

// NextMoveParallel scores each root column on its own goroutine and grid copy,
// then picks the best in ascending column order. Every subtree is searched
// with a full alpha-beta window so its score is exact, which keeps the chosen
// column identical to NextMove. The first subtree to fail cancels the rest.
func NextMoveParallel(ctx context.Context, g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return SearchResult{}, err
	}

	score := BoardScore(g)
	if isTerminal(g, depth, score) {
		return SearchResult{Score: score}, nil
	}

	children := make([]*SearchResult, g.Columns())

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for column := 0; column < g.Columns(); column++ {
		next := g.Copy()
		if !next.Place(column) {
			continue
		}

		eg.Go(func() error {
			child, err := NextMoveAlphaBetaContext(egCtx, next, depth-1, !maximizing)
			if err != nil {
				return err
			}
			children[column] = &child
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return SearchResult{}, err
	}

	best := initialBest(maximizing)
	for column, child := range children {
		if child == nil {
			continue
		}
		if improves(best, child.Score, maximizing) {
			best = SearchResult{Column: column, HasMove: true, Score: child.Score}
		}
	}

	return best, nil
}
