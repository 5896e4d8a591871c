package scores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/store"
)

// brokenStore fails every operation
type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) Get(context.Context, string) (string, error)          { return "", errBroken }
func (brokenStore) Set(context.Context, string, string) error            { return errBroken }
func (brokenStore) AppendRun(context.Context, store.Run) error           { return errBroken }
func (brokenStore) RecentRuns(context.Context, int) ([]store.Run, error) { return nil, errBroken }
func (brokenStore) Close() error                                         { return nil }

func TestBoardHighScore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	b := NewBoard(mem)

	assert.Zero(t, b.HighScore(ctx))

	assert.True(t, b.Record(ctx, 12))
	assert.Equal(t, 12, b.HighScore(ctx))

	assert.False(t, b.Record(ctx, 12), "ties are not records")
	assert.False(t, b.Record(ctx, 3))
	assert.True(t, b.Record(ctx, 13))

	v, err := mem.Get(ctx, constants.HighScoreKey)
	require.NoError(t, err)
	assert.Equal(t, "13", v)
}

func TestBoardZeroScoreNeverRecords(t *testing.T) {
	b := NewBoard(store.NewMemory())
	assert.False(t, b.Record(context.Background(), 0))
}

func TestBoardGarbageHighScore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	require.NoError(t, mem.Set(ctx, constants.HighScoreKey, "lots"))

	assert.Zero(t, NewBoard(mem).HighScore(ctx))
}

func TestBoardMusicPreference(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()
	b := NewBoard(mem)

	assert.True(t, b.MusicOn(ctx), "music defaults on")

	b.SetMusic(ctx, false)
	assert.False(t, b.MusicOn(ctx))
	v, _ := mem.Get(ctx, constants.MusicPreferenceKey)
	assert.Equal(t, "muted", v)

	b.SetMusic(ctx, true)
	assert.True(t, b.MusicOn(ctx))
}

func TestBoardSwallowsStoreFailures(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(brokenStore{})

	assert.Zero(t, b.HighScore(ctx))
	assert.True(t, b.MusicOn(ctx))
	assert.Nil(t, b.Recent(ctx, 5))
	assert.NotPanics(t, func() {
		b.Save(ctx, 5)
		b.SetMusic(ctx, false)
		b.AddRun(ctx, store.Run{ID: "x"})
	})
}

func TestBoardRuns(t *testing.T) {
	ctx := context.Background()
	b := NewBoard(store.NewMemory())

	now := time.Now()
	b.AddRun(ctx, store.Run{ID: "a", EndedAt: now.Add(-time.Hour), Score: 1})
	b.AddRun(ctx, store.Run{ID: "b", EndedAt: now, Score: 2})

	runs := b.Recent(ctx, 10)
	require.Len(t, runs, 2)
	assert.Equal(t, "b", runs[0].ID)
}
