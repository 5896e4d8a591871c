package engine

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/path-of-all-things/content"
)

// Phase is a node of the progression state machine
type Phase int

const (
	PhaseAwaitingRound Phase = iota
	PhaseRoundActive
	PhaseRoundLocked
	PhaseLevelAdvance
	PhaseGameComplete
	PhaseGameOver
)

var phaseNames = [...]string{
	PhaseAwaitingRound: "AwaitingRound",
	PhaseRoundActive:   "RoundActive",
	PhaseRoundLocked:   "RoundLocked",
	PhaseLevelAdvance:  "LevelAdvance",
	PhaseGameComplete:  "GameComplete",
	PhaseGameOver:      "GameOver",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseNames) {
		return fmt.Sprintf("Phase(%d)", int(p))
	}
	return phaseNames[p]
}

// Terminal reports whether the run has ended
func (p Phase) Terminal() bool {
	return p == PhaseGameComplete || p == PhaseGameOver
}

// transitions lists the legal targets of each phase
var transitions = map[Phase][]Phase{
	PhaseAwaitingRound: {PhaseRoundActive},
	PhaseRoundActive:   {PhaseRoundLocked},
	PhaseRoundLocked:   {PhaseLevelAdvance, PhaseGameComplete, PhaseGameOver},
	PhaseLevelAdvance:  {PhaseAwaitingRound},
	PhaseGameComplete:  {PhaseAwaitingRound},
	PhaseGameOver:      {PhaseAwaitingRound},
}

// TransitionFunc observes a phase change, state is the state after the change
type TransitionFunc func(from, to Phase, state GameState)

// Machine drives a run: it owns the GameState and the active Round and is the
// only place either is mutated
type Machine struct {
	catalog *content.Catalog
	rules   Rules
	rng     *rand.Rand

	phase Phase
	state GameState
	round *Round

	listeners []TransitionFunc
}

// NewMachine creates a machine waiting for the first round of level 0
func NewMachine(catalog *content.Catalog, rules Rules, rng *rand.Rand, highScore int) *Machine {
	rules = rules.normalized()
	return &Machine{
		catalog: catalog,
		rules:   rules,
		rng:     rng,
		phase:   PhaseAwaitingRound,
		state:   newGameState(rules, highScore),
	}
}

// OnTransition registers a listener called after every phase change
func (m *Machine) OnTransition(fn TransitionFunc) {
	m.listeners = append(m.listeners, fn)
}

// Phase returns the current phase
func (m *Machine) Phase() Phase { return m.phase }

// State returns a snapshot of the game state
func (m *Machine) State() GameState { return m.state }

// Rules returns the normalized rules in effect
func (m *Machine) Rules() Rules { return m.rules }

// Round returns the current round, nil between levels
func (m *Machine) Round() *Round { return m.round }

// LevelCount returns the number of levels in the catalog
func (m *Machine) LevelCount() int { return len(m.catalog.Levels) }

// Level returns the current level
func (m *Machine) Level() content.Level {
	l, _ := m.catalog.Level(m.state.Level)
	return l
}

// IsFinalLevel reports whether the current level is the last one
func (m *Machine) IsFinalLevel() bool {
	return m.state.Level >= len(m.catalog.Levels)-1
}

// StartRound samples a round for the current level: AwaitingRound -> RoundActive
func (m *Machine) StartRound() (*Round, error) {
	if err := m.check(PhaseRoundActive); err != nil {
		return nil, err
	}

	level, ok := m.catalog.Level(m.state.Level)
	if !ok {
		return nil, fmt.Errorf("level index %d out of range", m.state.Level)
	}
	round, err := NewRound(m.state.Level, level, m.rules.CardsPerRound, m.rng)
	if err != nil {
		return nil, err
	}

	m.round = round
	m.state.Errors = 0
	m.state.Revealed = false
	m.transition(PhaseRoundActive)
	return round, nil
}

// Submit judges the player's order
// Correct adds the verdict delta to the score, a lockout costs one life, both lock the round
// Outside RoundActive the submission is ignored
func (m *Machine) Submit(order []int) (Verdict, error) {
	if m.phase != PhaseRoundActive || m.round == nil {
		return Verdict{Ignored: true, Errors: m.state.Errors}, nil
	}

	v, err := m.round.Judge(order, m.rules)
	if err != nil || v.Ignored {
		return v, err
	}

	m.state.Errors = v.Errors
	switch {
	case v.Correct:
		m.state.Score += v.Delta
		m.state.Revealed = true
		m.transition(PhaseRoundLocked)
	case v.Lockout:
		if m.state.Lives > 0 {
			m.state.Lives--
		}
		m.state.Revealed = true
		m.transition(PhaseRoundLocked)
	}

	slog.Debug("order judged",
		"level", m.state.Level,
		"correct", v.Correct,
		"lockout", v.Lockout,
		"errors", v.Errors,
		"score", m.state.Score,
		"lives", m.state.Lives,
	)
	return v, nil
}

// Resolve leaves a locked round: GameOver without lives, LevelAdvance when levels remain,
// GameComplete after the final level
func (m *Machine) Resolve() (Phase, error) {
	if m.phase != PhaseRoundLocked {
		return m.phase, fmt.Errorf("%w: resolve from %s", ErrInvalidTransition, m.phase)
	}

	next := PhaseLevelAdvance
	switch {
	case m.state.Lives <= 0:
		next = PhaseGameOver
	case m.IsFinalLevel():
		next = PhaseGameComplete
	}
	m.transition(next)
	return next, nil
}

// Advance moves to the next level: LevelAdvance -> AwaitingRound
func (m *Machine) Advance() error {
	if m.phase != PhaseLevelAdvance {
		return fmt.Errorf("%w: advance from %s", ErrInvalidTransition, m.phase)
	}

	m.state.Level++
	m.state.Errors = 0
	m.state.Revealed = false
	m.round = nil
	m.transition(PhaseAwaitingRound)
	return nil
}

// Restart resets level, score, lives and errors after a finished run, keeping the high score
func (m *Machine) Restart() error {
	if !m.phase.Terminal() {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, m.phase)
	}

	m.state = newGameState(m.rules, m.state.HighScore)
	m.round = nil
	m.transition(PhaseAwaitingRound)
	return nil
}

// CommitHighScore raises the in-memory high score when the run's score beats it
// A new record requires strictly exceeding the previous best
func (m *Machine) CommitHighScore() bool {
	if m.state.Score > m.state.HighScore {
		m.state.HighScore = m.state.Score
		return true
	}
	return false
}

func (m *Machine) check(to Phase) error {
	if !slices.Contains(transitions[m.phase], to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, m.phase, to)
	}
	return nil
}

func (m *Machine) transition(to Phase) {
	from := m.phase
	m.phase = to
	slog.Debug("phase transition", "from", from, "to", to, "level", m.state.Level, "score", m.state.Score, "lives", m.state.Lives)
	for _, fn := range m.listeners {
		fn(from, to, m.state)
	}
}
