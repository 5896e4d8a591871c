package engine

import (
	"slices"
	"strings"
	"time"
)

// stage is a named callback due at a point in time
type stage struct {
	name string
	due  time.Time
	seq  uint64
	fn   func()
}

// Timeline sequences delayed side effects as named, cancelable stages
// It is not safe for concurrent use: the owner calls Advance from its loop, which
// runs due stages on that goroutine
type Timeline struct {
	clock  Clock
	stages []*stage
	seq    uint64
}

// NewTimeline creates an empty timeline reading time from clock
func NewTimeline(clock Clock) *Timeline {
	return &Timeline{clock: clock}
}

// Schedule runs fn after delay, replacing any pending stage with the same name
func (t *Timeline) Schedule(name string, delay time.Duration, fn func()) {
	t.Cancel(name)
	t.seq++
	t.stages = append(t.stages, &stage{
		name: name,
		due:  t.clock.Now().Add(delay),
		seq:  t.seq,
		fn:   fn,
	})
}

// Cancel drops a pending stage, returns false if none was pending
func (t *Timeline) Cancel(name string) bool {
	i := slices.IndexFunc(t.stages, func(s *stage) bool { return s.name == name })
	if i < 0 {
		return false
	}
	t.stages = slices.Delete(t.stages, i, i+1)
	return true
}

// CancelPrefix drops every pending stage whose name starts with prefix
func (t *Timeline) CancelPrefix(prefix string) int {
	before := len(t.stages)
	t.stages = slices.DeleteFunc(t.stages, func(s *stage) bool {
		return strings.HasPrefix(s.name, prefix)
	})
	return before - len(t.stages)
}

// CancelAll drops every pending stage
func (t *Timeline) CancelAll() {
	t.stages = t.stages[:0]
}

// Pending reports whether a stage with the given name is scheduled
func (t *Timeline) Pending(name string) bool {
	return slices.ContainsFunc(t.stages, func(s *stage) bool { return s.name == name })
}

// Len returns the number of pending stages
func (t *Timeline) Len() int {
	return len(t.stages)
}

// Advance runs every stage due at now, earliest first, ties in scheduling order
// Stages scheduled while advancing wait for the next call
func (t *Timeline) Advance(now time.Time) int {
	limit := t.seq
	ran := 0
	for {
		i := t.nextDue(now, limit)
		if i < 0 {
			return ran
		}
		s := t.stages[i]
		t.stages = slices.Delete(t.stages, i, i+1)
		s.fn()
		ran++
	}
}

func (t *Timeline) nextDue(now time.Time, limit uint64) int {
	best := -1
	for i, s := range t.stages {
		if s.seq > limit || s.due.After(now) {
			continue
		}
		if best < 0 || s.due.Before(t.stages[best].due) ||
			(s.due.Equal(t.stages[best].due) && s.seq < t.stages[best].seq) {
			best = i
		}
	}
	return best
}
