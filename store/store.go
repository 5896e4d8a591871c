// Package store persists small key/value preferences and a history of finished runs
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotFound is returned by Get for a key that was never set
var ErrNotFound = errors.New("key not found")

// Run is the record of one finished run
type Run struct {
	ID            string    `json:"id"`
	StartedAt     time.Time `json:"started_at"`
	EndedAt       time.Time `json:"ended_at"`
	Score         int       `json:"score"`
	Lives         int       `json:"lives"`
	LevelsCleared int       `json:"levels_cleared"`
	Outcome       string    `json:"outcome"`
}

// Store is a best-effort local persistence backend
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	AppendRun(ctx context.Context, run Run) error
	// RecentRuns returns up to limit runs, most recently ended first
	RecentRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}

// Backend names
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open creates the named backend, path is ignored by the memory backend
func Open(backend, path string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory, "":
		return NewMemory(), nil
	case BackendFile:
		return OpenFile(path)
	case BackendSQLite:
		return OpenSQLite(path)
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
