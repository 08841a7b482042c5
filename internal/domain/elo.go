package domain

import "math"

const (
	KFactor       = 32.0
	InitialRating = 1200
)

// match outcome from the first side's point of view
const (
	ScoreWin  = 1.0
	ScoreDraw = 0.5
	ScoreLoss = 0.0
)

// ExpectedScore is the probability-like expectation of A against B.
func ExpectedScore(ratingA, ratingB int) float64 {
	return 1.0 / (1.0 + math.Pow(10.0, float64(ratingB-ratingA)/400.0))
}

// CalculateElo returns the new rating for player A, never below zero.
func CalculateElo(ratingA, ratingB int, score float64) int {
	newRating := float64(ratingA) + KFactor*(score-ExpectedScore(ratingA, ratingB))
	if newRating < 0 {
		return 0
	}
	return int(math.Round(newRating))
}

// RateMatch updates both sides at once, using the ratings from before the match.
func RateMatch(ratingA, ratingB int, scoreA float64) (int, int) {
	return CalculateElo(ratingA, ratingB, scoreA), CalculateElo(ratingB, ratingA, 1.0-scoreA)
}
