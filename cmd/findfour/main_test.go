package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamasit07/findfour/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Rows:          6,
		Columns:       7,
		Mode:          "multiplayer",
		Difficulty:    "easy",
		Depth:         1,
		Strategy:      "alphabeta",
		ArenaGames:    2,
		ArenaOpponent: "easy",
		Player1Name:   "ann",
	}
}

func TestRunPlay_Multiplayer(t *testing.T) {
	in := strings.NewReader("1\n2\nabc\n1\n9\n2\n1\n2\n1\n")
	var out bytes.Buffer

	err := runPlay(context.Background(), testConfig(), in, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "not a number")
	assert.Contains(t, text, "invalid move")
	assert.Contains(t, text, "ann wins!")
	// the board is printed after each chip, ending with the winning column
	assert.Contains(t, text, "X......\nXO.....\nXO.....\nXO.....\n")
}

func TestRunPlay_AgainstComputer(t *testing.T) {
	cfg := testConfig()
	cfg.Mode = "computer"

	// input runs out before the game ends
	var out bytes.Buffer
	err := runPlay(context.Background(), cfg, strings.NewReader("4\n4\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Alice -> column")
	assert.Contains(t, out.String(), "...X...\n")
}

func TestRunPlay_BadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Strategy = "guess"
	assert.Error(t, runPlay(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}))

	cfg = testConfig()
	cfg.Mode = "online"
	assert.Error(t, runPlay(context.Background(), cfg, strings.NewReader(""), &bytes.Buffer{}))
}

func TestRunArena(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runArena(context.Background(), testConfig(), &out))

	text := out.String()
	assert.Contains(t, text, "Alice:")
	assert.Contains(t, text, "Alice (2):")
}
