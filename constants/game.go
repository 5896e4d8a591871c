package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// EventQueueSize is the buffer size of the terminal event channel
	EventQueueSize = 256
)

// Round Rules
const (
	// CardsPerRound is the number of events sampled from a level pool
	CardsPerRound = 5

	// PointsFirstTry is the score for a round solved without errors
	PointsFirstTry = 5

	// PenaltyPerError is subtracted from PointsFirstTry for every recorded error
	PenaltyPerError = 1

	// MaxErrorsPerLevel is the error ceiling that triggers a lockout
	MaxErrorsPerLevel = 5

	// StartingLives is the number of lockouts a run can survive minus one
	StartingLives = 3
)
