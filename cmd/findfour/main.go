package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/iamasit07/findfour/internal/config"
	"github.com/iamasit07/findfour/internal/domain"
	"github.com/iamasit07/findfour/internal/service/arena"
	"github.com/iamasit07/findfour/internal/service/bot"
	"github.com/iamasit07/findfour/internal/service/game"
	"github.com/joho/godotenv"
)

const usage = "usage: findfour [play|arena]"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.LoadConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	command := "play"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	var err error
	switch command {
	case "play":
		err = runPlay(ctx, cfg, os.Stdin, os.Stdout)
	case "arena":
		err = runArena(ctx, cfg, os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("findfour %s: %v", command, err)
	}
}

func engineFor(cfg *config.Config, difficultyName string) (*bot.Engine, bot.Difficulty, error) {
	difficulty, err := bot.ParseDifficulty(difficultyName)
	if err != nil {
		return nil, "", err
	}
	strategy, err := bot.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, "", err
	}

	depth := difficulty.Depth()
	if cfg.Depth > 0 {
		depth = cfg.Depth
	}
	return bot.NewEngine(strategy, depth), difficulty, nil
}

// terminalPresenter announces every chip and the result. It runs under the
// session lock, so the board itself is printed by runPlay.
type terminalPresenter struct {
	out     io.Writer
	session *game.Session
}

func (p *terminalPresenter) ChipPlaced(move domain.MoveResult) {
	fmt.Fprintf(p.out, "%s -> column %d\n", p.session.GetUsername(move.Player), move.Column+1)
}

func (p *terminalPresenter) GameOver(winner domain.PlayerID, slots []domain.Coordinate, tie bool) {
	if tie {
		fmt.Fprintln(p.out, "You tied!")
		return
	}
	fmt.Fprintf(p.out, "%s wins! winning slots: %v\n", p.session.GetUsername(winner), slots)
}

func runPlay(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	mode, err := game.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}
	engine, difficulty, err := engineFor(cfg, cfg.Difficulty)
	if err != nil {
		return err
	}

	player2 := "Player 2"
	if mode == game.ModeComputer {
		player2 = difficulty.BotName()
	}

	presenter := &terminalPresenter{out: out}
	session := game.NewSession(game.SessionConfig{
		Rows:          cfg.Rows,
		Columns:       cfg.Columns,
		Mode:          mode,
		Player1Name:   cfg.Player1Name,
		Player2Name:   player2,
		Engine:        engine,
		SearchTimeout: cfg.SearchTimeout,
	}, presenter)
	presenter.session = session

	fmt.Fprint(out, session.Snapshot().String())

	scanner := bufio.NewScanner(in)
	for !session.IsFinished() {
		if err := ctx.Err(); err != nil {
			return err
		}

		if session.IsComputerTurn() {
			if _, err := session.ComputerMove(ctx); err != nil {
				return err
			}
			fmt.Fprint(out, session.Snapshot().String())
			continue
		}

		grid := session.Snapshot()
		fmt.Fprintf(out, "%s, pick a column (1-%d): ", session.GetUsername(grid.Turn()), grid.Columns())
		if !scanner.Scan() {
			return scanner.Err()
		}

		column, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err != nil {
			fmt.Fprintln(out, "not a number")
			continue
		}
		if _, err := session.PlaceChip(column - 1); err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprint(out, session.Snapshot().String())
	}

	return nil
}

func runArena(ctx context.Context, cfg *config.Config, out io.Writer) error {
	firstEngine, firstDifficulty, err := engineFor(cfg, cfg.Difficulty)
	if err != nil {
		return err
	}
	secondEngine, secondDifficulty, err := engineFor(cfg, cfg.ArenaOpponent)
	if err != nil {
		return err
	}

	first := &arena.Contestant{Name: firstDifficulty.BotName(), Engine: firstEngine}
	second := &arena.Contestant{Name: secondDifficulty.BotName(), Engine: secondEngine}
	if first.Name == second.Name {
		second.Name += " (2)"
	}

	a := arena.New(arena.Config{Rows: cfg.Rows, Columns: cfg.Columns, Games: cfg.ArenaGames}, first, second)
	records, err := a.Run(ctx)

	for _, r := range records {
		fmt.Fprintf(out, "%s  %-10s started  %-6s  %2d moves\n", r.MatchID, r.Player1, r.Outcome, r.Moves)
	}
	firstRating, secondRating := a.Ratings()
	fmt.Fprintf(out, "%s: %d\n%s: %d\n", first.Name, firstRating, second.Name, secondRating)

	return err
}
