package engine

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/path-of-all-things/deck"
)

func newTestRound(t *testing.T) *Round {
	t.Helper()
	r, err := NewRound(0, testLevel("L", 50, 40, 30, 20, 10), 5, deck.NewRand(3))
	require.NoError(t, err)
	return r
}

// wrongOrder returns the solution with its first two cards swapped
func wrongOrder(r *Round) []int {
	o := r.CorrectOrder()
	o[0], o[1] = o[1], o[0]
	return o
}

func TestJudgeFirstTry(t *testing.T) {
	r := newTestRound(t)
	v, err := r.Judge(r.CorrectOrder(), DefaultRules())
	require.NoError(t, err)

	assert.True(t, v.Correct)
	assert.False(t, v.Lockout)
	assert.Equal(t, 5, v.Delta)
	assert.Zero(t, v.Errors)
	assert.True(t, r.Locked())
}

func TestJudgeMissesReduceReward(t *testing.T) {
	r := newTestRound(t)
	rules := DefaultRules()

	v, err := r.Judge(wrongOrder(r), rules)
	require.NoError(t, err)
	assert.False(t, v.Correct)
	assert.Equal(t, 1, v.Errors)
	assert.Equal(t, 4, v.PointsLeft)
	assert.Equal(t, 4, v.AttemptsLeft)
	assert.Equal(t, []int{0, 1}, v.Wrong)

	_, err = r.Judge(wrongOrder(r), rules)
	require.NoError(t, err)

	v, err = r.Judge(r.CorrectOrder(), rules)
	require.NoError(t, err)
	assert.True(t, v.Correct)
	assert.Equal(t, 3, v.Delta)
	assert.Equal(t, 2, v.Errors)
}

func TestJudgeLockoutAtMaxErrors(t *testing.T) {
	r := newTestRound(t)
	rules := DefaultRules()

	var v Verdict
	for i := 0; i < rules.MaxErrors; i++ {
		require.False(t, r.Locked(), "locked early at miss %d", i)
		var err error
		v, err = r.Judge(wrongOrder(r), rules)
		require.NoError(t, err)
	}

	assert.True(t, v.Lockout)
	assert.Equal(t, 5, v.Errors)
	assert.Zero(t, v.PointsLeft)
	assert.Zero(t, v.AttemptsLeft)
	assert.True(t, r.Locked())
}

func TestJudgeLockedRoundIgnored(t *testing.T) {
	r := newTestRound(t)
	_, err := r.Judge(r.CorrectOrder(), DefaultRules())
	require.NoError(t, err)

	v, err := r.Judge(wrongOrder(r), DefaultRules())
	require.NoError(t, err)
	assert.True(t, v.Ignored)
	assert.Zero(t, r.Errors())
}

func TestJudgeInvalidOrder(t *testing.T) {
	r := newTestRound(t)
	correct := r.CorrectOrder()

	tests := []struct {
		name  string
		order []int
	}{
		{"short", correct[:4]},
		{"duplicate", append(slices.Clone(correct[:4]), correct[0])},
		{"foreign id", append(slices.Clone(correct[:4]), 424242)},
		{"empty", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := r.Judge(tt.order, DefaultRules())
			assert.ErrorIs(t, err, ErrInvalidOrder)
			assert.Zero(t, r.Errors())
		})
	}
}

func TestRulesPoints(t *testing.T) {
	rules := DefaultRules()
	for errs, want := range []int{5, 4, 3, 2, 1, 0, 0} {
		assert.Equal(t, want, rules.Points(errs), "errors=%d", errs)
	}
}

func TestRulesNormalized(t *testing.T) {
	n := Rules{CardsPerRound: 0, FirstTryPoints: -1, PenaltyPerError: -2, MaxErrors: 0, StartingLives: -3}.normalized()
	assert.Equal(t, DefaultRules(), n)

	custom := Rules{CardsPerRound: 3, FirstTryPoints: 10, PenaltyPerError: 2, MaxErrors: 4, StartingLives: 1}
	assert.Equal(t, custom, custom.normalized())
}
