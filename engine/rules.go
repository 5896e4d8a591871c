package engine

import "github.com/lixenwraith/path-of-all-things/constants"

// Rules are the tunable numbers of a run
type Rules struct {
	CardsPerRound   int `toml:"cards_per_round" env:"PATHGAME_CARDS_PER_ROUND"`
	FirstTryPoints  int `toml:"first_try_points" env:"PATHGAME_FIRST_TRY_POINTS"`
	PenaltyPerError int `toml:"penalty_per_error" env:"PATHGAME_PENALTY_PER_ERROR"`
	MaxErrors       int `toml:"max_errors" env:"PATHGAME_MAX_ERRORS"`
	StartingLives   int `toml:"starting_lives" env:"PATHGAME_STARTING_LIVES"`
}

// DefaultRules returns the standard rule set
func DefaultRules() Rules {
	return Rules{
		CardsPerRound:   constants.CardsPerRound,
		FirstTryPoints:  constants.PointsFirstTry,
		PenaltyPerError: constants.PenaltyPerError,
		MaxErrors:       constants.MaxErrorsPerLevel,
		StartingLives:   constants.StartingLives,
	}
}

// Points returns the score a correct answer earns after the given number of errors, floored at zero
func (r Rules) Points(errors int) int {
	return max(0, r.FirstTryPoints-errors*r.PenaltyPerError)
}

// normalized replaces non-positive values with defaults
func (r Rules) normalized() Rules {
	d := DefaultRules()
	if r.CardsPerRound <= 0 {
		r.CardsPerRound = d.CardsPerRound
	}
	if r.FirstTryPoints < 0 {
		r.FirstTryPoints = d.FirstTryPoints
	}
	if r.PenaltyPerError < 0 {
		r.PenaltyPerError = d.PenaltyPerError
	}
	if r.MaxErrors <= 0 {
		r.MaxErrors = d.MaxErrors
	}
	if r.StartingLives <= 0 {
		r.StartingLives = d.StartingLives
	}
	return r
}
