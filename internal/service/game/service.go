package game

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/findfour/internal/domain"
	"github.com/iamasit07/findfour/internal/service/bot"
	"github.com/iamasit07/findfour/pkg/uid"
)

// Mode decides who plays Player2.
type Mode string

const (
	ModeMultiplayer Mode = "multiplayer"
	ModeComputer    Mode = "computer"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeMultiplayer, ModeComputer:
		return m, nil
	}
	return "", fmt.Errorf("unknown game mode %q", s)
}

// Mover picks a column for the player to move in g. *bot.Engine is the usual
// implementation.
type Mover interface {
	NextMove(ctx context.Context, g *domain.Grid) (bot.SearchResult, error)
}

// Presenter is whatever shows the game to people. It is told about every
// chip that lands and about the end of the game. Its methods run with the
// session lock held, so they must not call back into the Session.
type Presenter interface {
	ChipPlaced(move domain.MoveResult)
	GameOver(winner domain.PlayerID, winningSlots []domain.Coordinate, tie bool)
}

type SessionConfig struct {
	Rows          int
	Columns       int
	Mode          Mode
	Player1Name   string
	Player2Name   string
	Engine        Mover
	SearchTimeout time.Duration // zero means no deadline
}

type Session struct {
	GameID      string
	Mode        Mode
	Player1Name string
	Player2Name string
	Game        *domain.Game
	CreatedAt   time.Time
	FinishedAt  time.Time
	Reason      string

	cfg       SessionConfig
	engine    Mover
	presenter Presenter
	mu        sync.Mutex
}

func NewSession(cfg SessionConfig, presenter Presenter) *Session {
	if cfg.Mode == "" {
		cfg.Mode = ModeComputer
	}
	if cfg.Engine == nil {
		cfg.Engine = bot.NewEngine(bot.StrategyAlphaBeta, bot.Easy.Depth())
	}
	if cfg.Player1Name == "" {
		cfg.Player1Name = "Player 1"
	}
	if cfg.Player2Name == "" {
		cfg.Player2Name = "Player 2"
	}

	s := &Session{
		GameID:      uid.GenerateGameID(),
		Mode:        cfg.Mode,
		Player1Name: cfg.Player1Name,
		Player2Name: cfg.Player2Name,
		Game:        domain.NewGame(cfg.Rows, cfg.Columns),
		CreatedAt:   time.Now(),
		cfg:         cfg,
		engine:      cfg.Engine,
		presenter:   presenter,
	}

	log.Printf("[SESSION] Created session %s: %s vs %s (mode: %s)", s.GameID, s.Player1Name, s.Player2Name, s.Mode)
	return s
}

// IsComputerTurn reports whether the next chip belongs to the engine.
func (s *Session) IsComputerTurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.isComputerTurnLocked()
}

func (s *Session) isComputerTurnLocked() bool {
	return s.Mode == ModeComputer && !s.Game.IsFinished() && s.Game.Grid.Turn() == domain.Player2
}

// PlaceChip drops a chip for the human whose turn it is.
func (s *Session) PlaceChip(column int) (domain.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isComputerTurnLocked() {
		return domain.MoveResult{}, domain.ErrNotYourTurn
	}

	return s.applyMoveLocked(column)
}

// ComputerMove asks the engine for Player2's column and plays it. The bot
// engines only come back without a column on a finished or full grid, which
// is never the computer's turn, but a Mover that does so ends the game as a
// draw. A search that fails leaves the turn with the computer.
func (s *Session) ComputerMove(ctx context.Context) (domain.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isComputerTurnLocked() {
		return domain.MoveResult{}, domain.ErrNotYourTurn
	}

	if s.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SearchTimeout)
		defer cancel()
	}

	started := time.Now()
	result, err := s.engine.NextMove(ctx, s.Game.Grid)
	if err != nil {
		return domain.MoveResult{}, fmt.Errorf("computer search: %w", err)
	}

	column, ok := result.Move()
	if !ok {
		log.Printf("[BOT] No legal column in game %s, ending as a draw", s.GameID)
		s.Game.EndInDraw()
		s.finishLocked()
		return domain.MoveResult{Player: domain.Player2, Draw: true}, nil
	}

	log.Printf("[BOT] %s chose column %d (score %d) in %v",
		s.Player2Name, column, result.Score, time.Since(started))

	return s.applyMoveLocked(column)
}

// Reset starts a fresh game with the same settings.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Game = domain.NewGame(s.cfg.Rows, s.cfg.Columns)
	s.GameID = uid.GenerateGameID()
	s.CreatedAt = time.Now()
	s.FinishedAt = time.Time{}
	s.Reason = ""

	log.Printf("[SESSION] Reset, new game %s", s.GameID)
}

// IsFinished reports whether the current game has been won or drawn.
func (s *Session) IsFinished() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.IsFinished()
}

// Snapshot returns a copy of the grid that callers may freely modify.
func (s *Session) Snapshot() *domain.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Game.Grid.Copy()
}

func (s *Session) GetUsername(player domain.PlayerID) string {
	switch player {
	case domain.Player1:
		return s.Player1Name
	case domain.Player2:
		return s.Player2Name
	}
	return "draw"
}

func (s *Session) applyMoveLocked(column int) (domain.MoveResult, error) {
	move, err := s.Game.MakeMove(column)
	if err != nil {
		return domain.MoveResult{}, err
	}

	if s.presenter != nil {
		s.presenter.ChipPlaced(move)
	}

	if move.Win || move.Draw {
		s.finishLocked()
	}

	return move, nil
}

func (s *Session) finishLocked() {
	s.FinishedAt = time.Now()

	tie := s.Game.Status == domain.StatusDraw
	if tie {
		s.Reason = "draw"
	} else {
		s.Reason = "connect_four"
	}

	log.Printf("[GAME] Game %s over after %d moves: winner %s (%s)",
		s.GameID, s.Game.Grid.MoveCount(), s.GetUsername(s.Game.Winner), s.Reason)

	if s.presenter != nil {
		s.presenter.GameOver(s.Game.Winner, s.Game.WinningSlots, tie)
	}
}
