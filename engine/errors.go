package engine

import "errors"

var (
	// ErrEmptyLevel is returned when a round is requested for a level without events
	ErrEmptyLevel = errors.New("level has no events")

	// ErrInvalidOrder is returned when a submitted order is not a permutation of the round's events
	ErrInvalidOrder = errors.New("order is not a permutation of the round")

	// ErrInvalidTransition is returned when an operation is not allowed in the current phase
	ErrInvalidTransition = errors.New("invalid phase transition")
)
