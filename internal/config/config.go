package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Rows          int
	Columns       int
	Mode          string
	Difficulty    string
	Depth         int // overrides the difficulty depth when > 0
	Strategy      string
	ArenaGames    int
	ArenaOpponent string
	SearchTimeout time.Duration
	Player1Name   string
}

func LoadConfig() *Config {
	rows := GetEnvAsInt("FINDFOUR_ROWS", 6)
	columns := GetEnvAsInt("FINDFOUR_COLUMNS", 7)
	if rows < 4 || columns < 4 {
		log.Printf("[CONFIG] Board %dx%d cannot hold four in a row, using 6x7", rows, columns)
		rows, columns = 6, 7
	}

	searchTimeoutSec := GetEnvAsInt("FINDFOUR_SEARCH_TIMEOUT_SECONDS", 0)

	return &Config{
		Rows:          rows,
		Columns:       columns,
		Mode:          GetEnv("FINDFOUR_MODE", "computer"),
		Difficulty:    GetEnv("FINDFOUR_DIFFICULTY", "easy"),
		Depth:         GetEnvAsInt("FINDFOUR_DEPTH", 0),
		Strategy:      GetEnv("FINDFOUR_STRATEGY", "alphabeta"),
		ArenaGames:    GetEnvAsInt("FINDFOUR_ARENA_GAMES", 10),
		ArenaOpponent: GetEnv("FINDFOUR_ARENA_OPPONENT", "medium"),
		SearchTimeout: time.Duration(searchTimeoutSec) * time.Second,
		Player1Name:   GetEnv("FINDFOUR_PLAYER_NAME", "You"),
	}
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
