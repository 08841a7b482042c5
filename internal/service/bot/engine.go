package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/iamasit07/findfour/internal/domain"
)

// Difficulty picks how many plies the computer looks ahead.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

var difficultyDepths = map[Difficulty]int{
	Easy:   4,
	Medium: 6,
	Hard:   8,
}

var botNames = map[Difficulty]string{
	Easy:   "Alice",
	Medium: "Bob",
	Hard:   "Charles",
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := difficultyDepths[d]; !ok {
		return "", fmt.Errorf("unknown difficulty %q", s)
	}
	return d, nil
}

// Depth falls back to the easy depth for unknown values.
func (d Difficulty) Depth() int {
	if depth, ok := difficultyDepths[d]; ok {
		return depth
	}
	return difficultyDepths[Easy]
}

func (d Difficulty) BotName() string {
	if name, ok := botNames[d]; ok {
		return name
	}
	return "BOT"
}

// Strategy selects the search implementation. All of them choose the same
// column; they differ only in how much work it takes.
type Strategy string

const (
	StrategyMinimax   Strategy = "minimax"
	StrategyAlphaBeta Strategy = "alphabeta"
	StrategyCached    Strategy = "cached"
	StrategyParallel  Strategy = "parallel"
)

func ParseStrategy(s string) (Strategy, error) {
	switch st := Strategy(strings.ToLower(strings.TrimSpace(s))); st {
	case StrategyMinimax, StrategyAlphaBeta, StrategyCached, StrategyParallel:
		return st, nil
	}
	return "", fmt.Errorf("unknown search strategy %q", s)
}

// Engine is a configured computer player.
type Engine struct {
	Strategy Strategy
	Depth    int
}

func NewEngine(strategy Strategy, depth int) *Engine {
	if depth <= 0 {
		depth = Easy.Depth()
	}
	if strategy == "" {
		strategy = StrategyAlphaBeta
	}
	return &Engine{Strategy: strategy, Depth: depth}
}

// NextMove searches for the player to move in g. Scores are always from
// Player2's side, so Player2 maximizes and Player1 minimizes. g is not modified.
// Once ctx is done the search stops and returns ctx's error.
func (e *Engine) NextMove(ctx context.Context, g *domain.Grid) (SearchResult, error) {
	maximizing := g.Turn() == domain.Player2

	switch e.Strategy {
	case StrategyMinimax:
		return NextMoveContext(ctx, g, e.Depth, maximizing)
	case StrategyCached:
		return NextMoveCachedContext(ctx, g, e.Depth, maximizing)
	case StrategyParallel:
		return NextMoveParallel(ctx, g, e.Depth, maximizing)
	default:
		return NextMoveAlphaBetaContext(ctx, g, e.Depth, maximizing)
	}
}
