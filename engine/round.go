package engine

import (
	"cmp"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lixenwraith/path-of-all-things/content"
	"github.com/lixenwraith/path-of-all-things/deck"
)

// Round is one sampled set of events from a level, from shuffle to lock
type Round struct {
	level   int
	events  []content.Event
	byID    map[int]content.Event
	display []int
	correct []int

	errors int
	locked bool
}

// NewRound samples min(len(pool), size) events from the level, shuffles a display order
// and derives the correct order: year ascending, ties by position in the pool
func NewRound(levelIndex int, level content.Level, size int, rng *rand.Rand) (*Round, error) {
	if len(level.Events) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyLevel, level.Name)
	}

	poolIdx := make([]int, len(level.Events))
	for i := range poolIdx {
		poolIdx[i] = i
	}
	sampled := deck.Sample(rng, poolIdx, size)

	r := &Round{
		level:  levelIndex,
		events: make([]content.Event, len(sampled)),
		byID:   make(map[int]content.Event, len(sampled)),
	}
	ids := make([]int, len(sampled))
	for i, pi := range sampled {
		e := level.Events[pi]
		r.events[i] = e
		r.byID[e.ID] = e
		ids[i] = e.ID
	}

	r.display = deck.Shuffle(rng, ids)

	order := slices.Clone(sampled)
	slices.SortFunc(order, func(a, b int) int {
		if c := cmp.Compare(level.Events[a].Year, level.Events[b].Year); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	r.correct = make([]int, len(order))
	for i, pi := range order {
		r.correct[i] = level.Events[pi].ID
	}

	return r, nil
}

// LevelIndex returns the index of the level this round was drawn from
func (r *Round) LevelIndex() int { return r.level }

// Size returns the number of events in the round
func (r *Round) Size() int { return len(r.events) }

// Events returns the sampled events in sampling order
func (r *Round) Events() []content.Event { return slices.Clone(r.events) }

// Event looks up a sampled event by ID
func (r *Round) Event(id int) (content.Event, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// DisplayOrder returns the initial shuffled order of event IDs
func (r *Round) DisplayOrder() []int { return slices.Clone(r.display) }

// CorrectOrder returns the solution, intended for reveal after the round locks
func (r *Round) CorrectOrder() []int { return slices.Clone(r.correct) }

// Errors returns the number of incorrect submissions so far
func (r *Round) Errors() int { return r.errors }

// Locked reports whether the round accepts no further submissions
func (r *Round) Locked() bool { return r.locked }

// validOrder reports whether order is a permutation of the round's IDs
func (r *Round) validOrder(order []int) bool {
	if len(order) != len(r.correct) {
		return false
	}
	seen := make(map[int]bool, len(order))
	for _, id := range order {
		if _, ok := r.byID[id]; !ok || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}
