package store

import (
	"context"
	"slices"
	"sync"
)

// Memory keeps everything in process, used for tests and when persistence is off
type Memory struct {
	mu   sync.RWMutex
	kv   map[string]string
	runs []Run
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{kv: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.kv[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.kv[key] = value
	return nil
}

func (m *Memory) AppendRun(_ context.Context, run Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.runs = append(m.runs, run)
	return nil
}

func (m *Memory) RecentRuns(_ context.Context, limit int) ([]Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return recent(m.runs, limit), nil
}

func (m *Memory) Close() error { return nil }

// recent sorts a copy of runs newest first and truncates it to limit, limit <= 0 means all
func recent(runs []Run, limit int) []Run {
	out := slices.Clone(runs)
	slices.SortStableFunc(out, func(a, b Run) int {
		return b.EndedAt.Compare(a.EndedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
