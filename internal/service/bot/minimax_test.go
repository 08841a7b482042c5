package bot

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/findfour/internal/domain"
)

type searchFunc func(g *domain.Grid, depth int, maximizing bool) SearchResult

func parallelSearch(g *domain.Grid, depth int, maximizing bool) SearchResult {
	result, err := NextMoveParallel(context.Background(), g, depth, maximizing)
	if err != nil {
		panic(err)
	}
	return result
}

var searches = map[string]searchFunc{
	"minimax":   NextMove,
	"alphabeta": NextMoveAlphaBeta,
	"cached":    NextMoveCached,
	"parallel":  parallelSearch,
}

// randomPositions plays seeded random games and keeps every position where
// nobody has won yet.
func randomPositions(t *testing.T, games int) []*domain.Grid {
	t.Helper()
	rng := rand.New(rand.NewPCG(7, 11))

	positions := []*domain.Grid{}
	for i := 0; i < games; i++ {
		g := domain.NewDefaultGrid()
		for !g.IsFull() {
			moves := g.ValidMoves()
			column := moves[rng.IntN(len(moves))]
			require.True(t, g.Place(column))

			row, _ := g.LastRow()
			if domain.CheckWinPosition(g, row, column).Win {
				break
			}
			if rng.IntN(4) == 0 {
				positions = append(positions, g.Copy())
			}
		}
	}
	return positions
}

func TestNextMove_TakesWinningColumn(t *testing.T) {
	g := mustParse(t, domain.Player2, `
.......
.......
.......
.......
XX.....
OOO.X..`)

	for name, search := range searches {
		result := search(g, 1, true)
		column, ok := result.Move()
		require.True(t, ok, name)
		assert.Equal(t, 3, column, name)
		assert.Equal(t, WinningScore, result.Score, name)
	}
}

func TestNextMove_MinimizerTakesPlayer1Win(t *testing.T) {
	g := mustParse(t, domain.Player1, `
.......
.......
.......
.......
.......
.OXXX.O`)

	for name, search := range searches {
		result := search(g, 1, false)
		column, ok := result.Move()
		require.True(t, ok, name)
		assert.Equal(t, 5, column, name)
		assert.Equal(t, -WinningScore, result.Score, name)
	}
}

func TestNextMove_BlocksImmediateThreat(t *testing.T) {
	g := mustParse(t, domain.Player2, `
.......
.......
.......
.......
O.O....
XXX....`)

	for name, search := range searches {
		column, ok := search(g, 2, true).Move()
		require.True(t, ok, name)
		assert.Equal(t, 3, column, name)
	}
}

func TestNextMove_TerminalPositionsHaveNoMove(t *testing.T) {
	won := mustParse(t, domain.Player1, `
.......
.......
.......
.......
XXX....
OOOO...`)

	full, err := domain.ParseGrid(`
OOXXOOX
XXOOXXO
OOXXOOX
XXOOXXO
OOXXOOX
XXOOXXO`, domain.Player1)
	require.NoError(t, err)
	require.True(t, full.IsFull())

	for name, search := range searches {
		result := search(won, 4, false)
		_, ok := result.Move()
		assert.False(t, ok, name)
		assert.Equal(t, WinningScore, result.Score, name)

		result = search(full, 4, true)
		_, ok = result.Move()
		assert.False(t, ok, name)
		assert.Equal(t, BoardScore(full), result.Score, name)

		result = search(domain.NewDefaultGrid(), 0, true)
		_, ok = result.Move()
		assert.False(t, ok, name)
		assert.Equal(t, 0, result.Score, name)
	}
}

func TestNextMove_SkipsFullColumns(t *testing.T) {
	g := mustParse(t, domain.Player2, `
OOXXOO.
XXOOXX.
OOXXOO.
XXOOXX.
OOXXOO.
XXOOXX.`)

	for name, search := range searches {
		column, ok := search(g, 3, true).Move()
		require.True(t, ok, name)
		assert.Equal(t, 6, column, name)
	}
}

func TestNextMove_TiesPickLeftmost(t *testing.T) {
	// at one ply on 4x4, (0,0) and (0,3) each sit in three windows and the
	// middle columns in two
	g := mustParse(t, domain.Player2, `
....
....
....
....`)

	for name, search := range searches {
		result := search(g, 1, true)
		column, ok := result.Move()
		require.True(t, ok, name)
		assert.Equal(t, 0, column, name)
		assert.Equal(t, 3, result.Score, name)
	}
}

func TestNextMove_PrefersCentreOnEmptyBoard(t *testing.T) {
	g := domain.NewGrid(domain.Rows, domain.Columns, domain.Player2)

	for name, search := range searches {
		result := search(g, 1, true)
		column, ok := result.Move()
		require.True(t, ok, name)
		assert.Equal(t, 3, column, name)
		assert.Equal(t, 7, result.Score, name)
	}
}

func TestNextMove_DoesNotMutateInput(t *testing.T) {
	g := domain.NewDefaultGrid()
	for _, column := range []int{3, 3, 2, 4} {
		g.Place(column)
	}
	before := g.Copy()

	for name, search := range searches {
		search(g, 3, g.Turn() == domain.Player2)
		assert.True(t, g.Equal(before), name)
		assert.Equal(t, before.MoveCount(), g.MoveCount(), name)
	}
}

func TestSearches_AgreeOnRandomPositions(t *testing.T) {
	positions := randomPositions(t, 8)
	require.NotEmpty(t, positions)

	for i, g := range positions {
		maximizing := g.Turn() == domain.Player2
		for depth := 1; depth <= 4; depth++ {
			plain := NextMove(g, depth, maximizing)

			pruned := NextMoveAlphaBeta(g, depth, maximizing)
			assert.Equal(t, plain.HasMove, pruned.HasMove, "position %d depth %d:\n%s", i, depth, g)
			assert.Equal(t, plain.Column, pruned.Column, "position %d depth %d:\n%s", i, depth, g)

			cached := NextMoveCached(g, depth, maximizing)
			assert.Equal(t, plain, cached, "position %d depth %d:\n%s", i, depth, g)

			parallel, err := NextMoveParallel(context.Background(), g, depth, maximizing)
			require.NoError(t, err)
			assert.Equal(t, plain, parallel, "position %d depth %d:\n%s", i, depth, g)
		}
	}
}

func TestSearches_StopWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, strategy := range []Strategy{StrategyMinimax, StrategyAlphaBeta, StrategyCached, StrategyParallel} {
		_, err := NewEngine(strategy, 4).NextMove(ctx, domain.NewDefaultGrid())
		assert.ErrorIs(t, err, context.Canceled, strategy)
	}
}

func TestSearches_StopAtDeadline(t *testing.T) {
	// depth 12 from an empty board takes far longer than the deadline
	for _, strategy := range []Strategy{StrategyMinimax, StrategyAlphaBeta, StrategyCached, StrategyParallel} {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)

		started := time.Now()
		_, err := NewEngine(strategy, 12).NextMove(ctx, domain.NewDefaultGrid())
		elapsed := time.Since(started)
		cancel()

		assert.ErrorIs(t, err, context.DeadlineExceeded, strategy)
		assert.Less(t, elapsed, time.Second, strategy)
	}
}

func TestNextMoveAlphaBetaContext_MatchesWithoutDeadline(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, g := range randomPositions(t, 2) {
		want := NextMoveAlphaBeta(g, 3, true)
		got, err := NextMoveAlphaBetaContext(ctx, g, 3, true)
		require.NoError(t, err)
		assert.Equal(t, want, got, "\n%s", g)
	}
}
