package uid

import (
	"github.com/google/uuid"
)

// GenerateGameID returns a random (v4) UUID for a single game.
func GenerateGameID() string {
	return uuid.NewString()
}

// GenerateMatchID returns a time-ordered (v7) UUID so arena matches sort by
// creation. Falls back to a random one if the clock source fails.
func GenerateMatchID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
