package engine

// GameState is the mutable state of a run, owned by a single Machine
type GameState struct {
	// Level is the index of the current level
	Level int

	// Score is cumulative over the run
	Score int

	// Errors is the current round's error count
	Errors int

	// Lives remaining, a lockout costs one
	Lives int

	// HighScore mirrors the persisted best score
	HighScore int

	// Revealed is set once the current round is locked and its solution shown
	Revealed bool
}

// newGameState returns the state at the start of a run
func newGameState(rules Rules, highScore int) GameState {
	return GameState{
		Lives:     rules.StartingLives,
		HighScore: highScore,
	}
}
