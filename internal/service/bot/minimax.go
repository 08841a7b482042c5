package bot

import (
	"context"

	"github.com/iamasit07/findfour/internal/domain"
)

// SearchResult is the outcome of a search. HasMove is false only when the
// position was already terminal and there was no column to choose.
type SearchResult struct {
	Column  int  `json:"column"`
	HasMove bool `json:"has_move"`
	Score   int  `json:"score"`
}

// Move returns the chosen column, or false when there is none.
func (r SearchResult) Move() (int, bool) {
	return r.Column, r.HasMove
}

// checkEvery is how many nodes a search visits between context checks.
const checkEvery = 256

// searcher carries the state of one search call. It is owned by a single
// goroutine.
type searcher struct {
	ctx   context.Context
	nodes int
	table map[cacheKey]SearchResult
}

func newSearcher(ctx context.Context) *searcher {
	return &searcher{ctx: ctx}
}

// interrupted returns the context error, looking at it on the first node and
// then once every checkEvery nodes.
func (s *searcher) interrupted() error {
	n := s.nodes
	s.nodes++
	if n%checkEvery != 0 {
		return nil
	}
	return s.ctx.Err()
}

// isTerminal reports whether the search must stop at g and use its static score.
func isTerminal(g *domain.Grid, depth, score int) bool {
	return depth <= 0 || score == WinningScore || score == -WinningScore || g.IsFull()
}

func initialBest(maximizing bool) SearchResult {
	if maximizing {
		return SearchResult{Score: -BestScore}
	}
	return SearchResult{Score: BestScore}
}

// improves reports whether a candidate score replaces the current best. Only a
// strict improvement counts, so with ascending columns the leftmost of equal
// moves is kept.
func improves(best SearchResult, score int, maximizing bool) bool {
	if !best.HasMove {
		return true
	}
	if maximizing {
		return score > best.Score
	}
	return score < best.Score
}

// NextMove runs plain minimax to the given depth. Player2 is the maximizing
// side of BoardScore, so the computer searches with maximizing set.
func NextMove(g *domain.Grid, depth int, maximizing bool) SearchResult {
	result, _ := NextMoveContext(context.Background(), g, depth, maximizing)
	return result
}

// NextMoveContext is NextMove that gives up with ctx's error once ctx is done.
func NextMoveContext(ctx context.Context, g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
	return newSearcher(ctx).minimax(g, depth, maximizing)
}

func (s *searcher) minimax(g *domain.Grid, depth int, maximizing bool) (SearchResult, error) {
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

		child, err := s.minimax(next, depth-1, !maximizing)
		if err != nil {
			return SearchResult{}, err
		}
		if improves(best, child.Score, maximizing) {
			best = SearchResult{Column: column, HasMove: true, Score: child.Score}
		}
	}

	return best, nil
}
