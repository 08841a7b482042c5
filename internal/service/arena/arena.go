package arena

import (
	"context"
	"fmt"
	"log"

	"github.com/iamasit07/findfour/internal/domain"
	"github.com/iamasit07/findfour/internal/service/bot"
	"github.com/iamasit07/findfour/pkg/uid"
)

// Engine picks a column for the player to move in g.
type Engine interface {
	NextMove(ctx context.Context, g *domain.Grid) (bot.SearchResult, error)
}

// Contestant is one side of the arena.
type Contestant struct {
	Name   string
	Engine Engine
	Rating int
}

type Outcome string

const (
	OutcomeFirst  Outcome = "first"  // the first contestant won
	OutcomeSecond Outcome = "second" // the second contestant won
	OutcomeDraw   Outcome = "draw"
)

type MatchRecord struct {
	MatchID      string  `json:"match_id"`
	Player1      string  `json:"player1"` // name of whoever moved first
	Outcome      Outcome `json:"outcome"`
	Moves        int     `json:"moves"`
	FinalBoard   string  `json:"final_board"`
	FirstRating  int     `json:"first_rating"`
	SecondRating int     `json:"second_rating"`
}

type Config struct {
	Rows    int
	Columns int
	Games   int
}

// Arena plays two engines against each other and keeps Elo ratings.
type Arena struct {
	cfg    Config
	first  *Contestant
	second *Contestant
}

func New(cfg Config, first, second *Contestant) *Arena {
	if cfg.Games <= 0 {
		cfg.Games = 1
	}
	for _, c := range []*Contestant{first, second} {
		if c.Rating == 0 {
			c.Rating = domain.InitialRating
		}
	}
	return &Arena{cfg: cfg, first: first, second: second}
}

// Run plays the configured number of games, swapping who starts every game.
// Cancelling ctx stops before the next move; records so far are returned with
// the context error.
func (a *Arena) Run(ctx context.Context) ([]MatchRecord, error) {
	records := make([]MatchRecord, 0, a.cfg.Games)

	for i := 0; i < a.cfg.Games; i++ {
		starter, other := a.first, a.second
		if i%2 == 1 {
			starter, other = a.second, a.first
		}

		record, err := a.playGame(ctx, starter, other)
		if err != nil {
			return records, err
		}

		score := domain.ScoreDraw
		switch record.Outcome {
		case OutcomeFirst:
			score = domain.ScoreWin
		case OutcomeSecond:
			score = domain.ScoreLoss
		}
		a.first.Rating, a.second.Rating = domain.RateMatch(a.first.Rating, a.second.Rating, score)
		record.FirstRating, record.SecondRating = a.first.Rating, a.second.Rating

		log.Printf("[ARENA] Match %s (%s started): %s after %d moves, ratings %s=%d %s=%d",
			record.MatchID, record.Player1, record.Outcome, record.Moves,
			a.first.Name, a.first.Rating, a.second.Name, a.second.Rating)

		records = append(records, record)
	}

	return records, nil
}

func (a *Arena) playGame(ctx context.Context, player1, player2 *Contestant) (MatchRecord, error) {
	game := domain.NewGame(a.cfg.Rows, a.cfg.Columns)
	record := MatchRecord{MatchID: uid.GenerateMatchID(), Player1: player1.Name}

	for !game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return record, err
		}

		mover := player1
		if game.Grid.Turn() == domain.Player2 {
			mover = player2
		}

		result, err := mover.Engine.NextMove(ctx, game.Grid)
		if err != nil {
			return record, fmt.Errorf("%s search: %w", mover.Name, err)
		}

		// bot engines always have a column mid-game; any other engine
		// that comes back empty-handed ends the game as a draw
		column, ok := result.Move()
		if !ok {
			game.EndInDraw()
			break
		}

		if _, err := game.MakeMove(column); err != nil {
			return record, fmt.Errorf("%s played column %d: %w", mover.Name, column, err)
		}
	}

	record.Moves = game.Grid.MoveCount()
	record.FinalBoard = game.Grid.String()
	record.Outcome = OutcomeDraw
	if game.Status == domain.StatusWon {
		winner := player1
		if game.Winner == domain.Player2 {
			winner = player2
		}
		if winner == a.first {
			record.Outcome = OutcomeFirst
		} else {
			record.Outcome = OutcomeSecond
		}
	}

	return record, nil
}

func (a *Arena) Ratings() (first, second int) {
	return a.first.Rating, a.second.Rating
}
