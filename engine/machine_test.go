package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/path-of-all-things/deck"
)

func newTestMachine(t *testing.T, levels, highScore int) *Machine {
	t.Helper()
	return NewMachine(testCatalog(levels), DefaultRules(), deck.NewRand(9), highScore)
}

func missUntilLockout(t *testing.T, m *Machine) Verdict {
	t.Helper()
	var v Verdict
	for !v.Lockout {
		var err error
		v, err = m.Submit(wrongOrder(m.Round()))
		require.NoError(t, err)
		require.False(t, v.Ignored)
	}
	return v
}

func TestMachinePerfectRound(t *testing.T) {
	m := newTestMachine(t, 3, 0)
	assert.Equal(t, PhaseAwaitingRound, m.Phase())

	r, err := m.StartRound()
	require.NoError(t, err)
	assert.Equal(t, PhaseRoundActive, m.Phase())
	assert.Equal(t, 5, r.Size())

	v, err := m.Submit(r.CorrectOrder())
	require.NoError(t, err)
	assert.Equal(t, "Perfect clarity. +5", FeedbackFor(v, m.State().Lives).Text)
	assert.Equal(t, PhaseRoundLocked, m.Phase())
	assert.Equal(t, 5, m.State().Score)
	assert.Equal(t, 3, m.State().Lives)
	assert.True(t, m.State().Revealed)

	next, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, PhaseLevelAdvance, next)

	require.NoError(t, m.Advance())
	assert.Equal(t, PhaseAwaitingRound, m.Phase())
	assert.Equal(t, 1, m.State().Level)
	assert.Nil(t, m.Round())
	assert.False(t, m.State().Revealed)
}

func TestMachineLockoutCostsLife(t *testing.T) {
	m := newTestMachine(t, 3, 0)
	_, err := m.StartRound()
	require.NoError(t, err)

	v := missUntilLockout(t, m)
	assert.Equal(t, 5, v.Errors)
	assert.Equal(t, PhaseRoundLocked, m.Phase())
	assert.Equal(t, 2, m.State().Lives)
	assert.Zero(t, m.State().Score)
	assert.Equal(t, "The path reveals itself, but a light fades.", FeedbackFor(v, m.State().Lives).Text)

	next, err := m.Resolve()
	require.NoError(t, err)
	assert.Equal(t, PhaseLevelAdvance, next)
}

func TestMachineGameOver(t *testing.T) {
	m := newTestMachine(t, 10, 0)

	for i := 0; i < 3; i++ {
		_, err := m.StartRound()
		require.NoError(t, err)
		v := missUntilLockout(t, m)

		next, err := m.Resolve()
		require.NoError(t, err)
		if i < 2 {
			require.Equal(t, PhaseLevelAdvance, next)
			require.NoError(t, m.Advance())
			continue
		}
		assert.Equal(t, PhaseGameOver, next)
		assert.Equal(t, "The path was beyond reach. A light fades.", FeedbackFor(v, m.State().Lives).Text)
	}

	assert.Zero(t, m.State().Lives)
	assert.True(t, m.Phase().Terminal())
	assert.False(t, m.CommitHighScore(), "zero score never sets a record")
}

func TestMachineGameComplete(t *testing.T) {
	m := newTestMachine(t, 2, 7)

	for level := 0; level < 2; level++ {
		r, err := m.StartRound()
		require.NoError(t, err)
		_, err = m.Submit(r.CorrectOrder())
		require.NoError(t, err)

		next, err := m.Resolve()
		require.NoError(t, err)
		if level == 0 {
			require.Equal(t, PhaseLevelAdvance, next)
			require.False(t, m.IsFinalLevel())
			require.NoError(t, m.Advance())
			continue
		}
		assert.True(t, m.IsFinalLevel())
		assert.Equal(t, PhaseGameComplete, next)
	}

	assert.Equal(t, 10, m.State().Score)
	assert.True(t, m.CommitHighScore())
	assert.Equal(t, 10, m.State().HighScore)
	assert.False(t, m.CommitHighScore(), "equal score is not a new record")
}

func TestMachineRestartKeepsHighScore(t *testing.T) {
	m := newTestMachine(t, 1, 0)
	r, err := m.StartRound()
	require.NoError(t, err)
	_, err = m.Submit(r.CorrectOrder())
	require.NoError(t, err)
	_, err = m.Resolve()
	require.NoError(t, err)
	require.Equal(t, PhaseGameComplete, m.Phase())
	require.True(t, m.CommitHighScore())

	require.NoError(t, m.Restart())
	s := m.State()
	assert.Equal(t, PhaseAwaitingRound, m.Phase())
	assert.Zero(t, s.Level)
	assert.Zero(t, s.Score)
	assert.Zero(t, s.Errors)
	assert.Equal(t, 3, s.Lives)
	assert.Equal(t, 5, s.HighScore)
}

func TestMachineRejectsOutOfPhaseOperations(t *testing.T) {
	m := newTestMachine(t, 2, 0)

	_, err := m.Resolve()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.ErrorIs(t, m.Advance(), ErrInvalidTransition)
	assert.ErrorIs(t, m.Restart(), ErrInvalidTransition)

	v, err := m.Submit([]int{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, v.Ignored)

	r, err := m.StartRound()
	require.NoError(t, err)
	_, err = m.StartRound()
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = m.Submit(r.CorrectOrder())
	require.NoError(t, err)
	v, err = m.Submit(r.CorrectOrder())
	require.NoError(t, err)
	assert.True(t, v.Ignored)
	assert.Equal(t, 5, m.State().Score, "locked round does not score twice")
}

func TestMachineTransitionListener(t *testing.T) {
	m := newTestMachine(t, 2, 0)

	var seen []string
	m.OnTransition(func(from, to Phase, _ GameState) {
		seen = append(seen, from.String()+">"+to.String())
	})

	r, err := m.StartRound()
	require.NoError(t, err)
	_, err = m.Submit(r.CorrectOrder())
	require.NoError(t, err)
	_, err = m.Resolve()
	require.NoError(t, err)
	require.NoError(t, m.Advance())

	assert.Equal(t, []string{
		"AwaitingRound>RoundActive",
		"RoundActive>RoundLocked",
		"RoundLocked>LevelAdvance",
		"LevelAdvance>AwaitingRound",
	}, seen)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.Equal(t, "Phase(42)", Phase(42).String())
}
