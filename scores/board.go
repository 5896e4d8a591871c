// Package scores keeps the best score and the music preference on top of a store
// Persistence is best effort: failures are logged and the game carries on with defaults
package scores

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/store"
)

// Board reads and writes player records
type Board struct {
	store store.Store
}

// NewBoard wraps s
func NewBoard(s store.Store) *Board {
	return &Board{store: s}
}

// HighScore returns the stored best, zero when absent or unreadable
func (b *Board) HighScore(ctx context.Context) int {
	v, err := b.store.Get(ctx, constants.HighScoreKey)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Debug("high score unavailable", "err", err)
		}
		return 0
	}

	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		slog.Debug("high score unreadable", "value", v, "err", err)
		return 0
	}
	return n
}

// Save stores score as the best
func (b *Board) Save(ctx context.Context, score int) {
	if err := b.store.Set(ctx, constants.HighScoreKey, strconv.Itoa(score)); err != nil {
		slog.Debug("high score not saved", "score", score, "err", err)
	}
}

// Record saves score only when it beats the stored best, reporting whether it did
func (b *Board) Record(ctx context.Context, score int) bool {
	if score <= b.HighScore(ctx) {
		return false
	}
	b.Save(ctx, score)
	return true
}

// MusicOn returns the saved preference, music is on unless explicitly muted
func (b *Board) MusicOn(ctx context.Context) bool {
	v, err := b.store.Get(ctx, constants.MusicPreferenceKey)
	if err != nil {
		return true
	}
	return v != constants.MusicPreferenceMuted
}

// SetMusic saves the preference
func (b *Board) SetMusic(ctx context.Context, on bool) {
	v := constants.MusicPreferenceMuted
	if on {
		v = constants.MusicPreferenceOn
	}
	if err := b.store.Set(ctx, constants.MusicPreferenceKey, v); err != nil {
		slog.Debug("music preference not saved", "err", err)
	}
}

// AddRun appends a finished run to the history
func (b *Board) AddRun(ctx context.Context, run store.Run) {
	if err := b.store.AppendRun(ctx, run); err != nil {
		slog.Debug("run not recorded", "id", run.ID, "err", err)
	}
}

// Recent returns up to limit past runs, newest first, nil on failure
func (b *Board) Recent(ctx context.Context, limit int) []store.Run {
	runs, err := b.store.RecentRuns(ctx, limit)
	if err != nil {
		slog.Debug("run history unavailable", "err", err)
		return nil
	}
	return runs
}
