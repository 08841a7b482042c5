package bot

import (
	"context"

	"github.com/iamasit07/findfour/internal/domain"
)

type cacheKey struct {
	position   uint64
	depth      int
	maximizing bool
}

// NextMoveCached is plain minimax with a transposition table that lives for
// this call only. The result of a position depends only on its slots, turn,
// depth and side, so the answer matches NextMove exactly.
func NextMoveCached(g *domain.Grid, depth int, maximizing bool) SearchResult {
	result, _ := NextMoveCachedContext(context.Background(), g, depth, maximizing)
	return result
}

func NextMoveCachedContext(ctx context.Context, g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
	s := newSearcher(ctx)
	s.table = make(map[cacheKey]SearchResult)
	return s.cached(g, depth, maximizing)
}

func (s *searcher) cached(g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
	key := cacheKey{position: g.Key(), depth: depth, maximizing: maximizing}
	if hit, ok := s.table[key]; ok {
		return hit, nil
	}

	result, err := s.expand(g, depth, maximizing)
	if err != nil {
		return SearchResult{}, err
	}
	s.table[key] = result
	return result, nil
}

func (s *searcher) expand(g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
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

		child, err := s.cached(next, depth-1, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		if improves(best, child.Score, maximizing) {
			best = SearchResult{Column: column, HasMove: true, Score: child.Score}
		}
	}

	return best, nil
}
