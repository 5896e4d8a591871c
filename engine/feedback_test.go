package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeedbackFor(t *testing.T) {
	tests := []struct {
		name  string
		v     Verdict
		lives int
		want  Feedback
	}{
		{"ignored", Verdict{Ignored: true}, 3, Feedback{}},
		{"perfect", Verdict{Correct: true, Delta: 5}, 3, Feedback{"Perfect clarity. +5", ToneMoss}},
		{"late", Verdict{Correct: true, Delta: 2, Errors: 3}, 3, Feedback{"The path reveals itself. +2", ToneMoss}},
		{"no reward", Verdict{Correct: true, Errors: 5}, 3, Feedback{"The path reveals itself, at last.", ToneMoss}},
		{"miss", Verdict{Errors: 1, PointsLeft: 4, AttemptsLeft: 4}, 3,
			Feedback{"Not quite. 4 points remaining. 4 attempts left.", ToneRust}},
		{"miss singular", Verdict{Errors: 4, PointsLeft: 1, AttemptsLeft: 1}, 3,
			Feedback{"Not quite. 1 point remaining. 1 attempt left.", ToneRust}},
		{"miss no points", Verdict{Errors: 4, PointsLeft: 0, AttemptsLeft: 2}, 3,
			Feedback{"No points remain. 2 attempts before the path reveals itself.", ToneRust}},
		{"lockout", Verdict{Lockout: true, Errors: 5}, 2,
			Feedback{"The path reveals itself, but a light fades.", ToneRust}},
		{"final lockout", Verdict{Lockout: true, Errors: 5}, 0,
			Feedback{"The path was beyond reach. A light fades.", ToneRust}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeedbackFor(tt.v, tt.lives))
		})
	}
}
