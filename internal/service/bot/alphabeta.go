package bot

import (
	"context"
	"math"

	"github.com/iamasit07/findfour/internal/domain"
)

// NextMoveAlphaBeta is NextMove with alpha-beta pruning. Columns are still
// tried in ascending order and only strict improvements replace the best, so
// it picks the same column as NextMove while visiting fewer positions.
func NextMoveAlphaBeta(g *domain.Grid, depth int, maximizing bool) SearchResult {
	result, _ := NextMoveAlphaBetaContext(context.Background(), g, depth, maximizing)
	return result
}

func NextMoveAlphaBetaContext(ctx context.Context, g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
	return newSearcher(ctx).alphaBeta(g, depth, math.MinInt, math.MaxInt, maximizing)
}

func (s *searcher) alphaBeta(g *domain.Grid, depth, alpha, beta int, maximizing bool) (SearchResult, error) {
	if err := s.interrupted(); err != nil {
		return SearchResult{}, err
	}

	score := BoardScore(g)
	if isTerminal(g, depth, score) {
		return SearchResult{Score: score}, nil
	}

	best := initialBest(maximizing)
	for column := 0; column < g.Columns(); column++ {
		next := g.Copy()
		if !next.Place(column) {
			continue
		}

		child, err := s.alphaBeta(next, depth-1, alpha, beta, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		if improves(best, child.Score, maximizing) {
			best = SearchResult{Column: column, HasMove: true, Score: child.Score}
		}

		if maximizing {
			alpha = max(alpha, best.Score)
		} else {
			beta = min(beta, best.Score)
		}

		if alpha >= beta {
			break // cutoff
		}
	}

	return best, nil
}
