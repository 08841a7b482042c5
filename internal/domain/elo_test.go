package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateElo(t *testing.T) {
	assert.Equal(t, 1216, CalculateElo(1200, 1200, ScoreWin))
	assert.Equal(t, 1184, CalculateElo(1200, 1200, ScoreLoss))
	assert.Equal(t, 1200, CalculateElo(1200, 1200, ScoreDraw))

	// an upset pays more than an expected win
	assert.Greater(t, CalculateElo(1000, 1400, ScoreWin)-1000, CalculateElo(1400, 1000, ScoreWin)-1400)

	assert.Equal(t, 0, CalculateElo(0, 2000, ScoreLoss))
}

func TestRateMatch(t *testing.T) {
	a, b := RateMatch(1200, 1200, ScoreWin)
	assert.Equal(t, 1216, a)
	assert.Equal(t, 1184, b)

	a, b = RateMatch(1300, 1100, ScoreDraw)
	assert.Less(t, a, 1300)
	assert.Greater(t, b, 1100)
	assert.InDelta(t, 2400, a+b, 1)
}

func TestExpectedScore(t *testing.T) {
	assert.InDelta(t, 0.5, ExpectedScore(1500, 1500), 1e-9)
	assert.InDelta(t, 1.0, ExpectedScore(1500, 1100)+ExpectedScore(1100, 1500), 1e-9)
}
