package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, 5, cfg.Rules.CardsPerRound)
	assert.Equal(t, 0.12, cfg.Audio.MusicVolume)
}

func TestLoadTOML(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "pathgame.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
content = "levels.json"
seed = 7

[store]
backend = "file"
path = "scores.json"

[audio]
enabled = false
sfx_volume = 0.3

[rules]
starting_lives = 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "levels.json", cfg.ContentPath)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "file", cfg.Store.Backend)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.3, cfg.Audio.SFXVolume)
	assert.Equal(t, 5, cfg.Rules.StartingLives)
	assert.Equal(t, 5, cfg.Rules.FirstTryPoints, "untouched keys keep defaults")
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "pathgame.toml")
	require.NoError(t, os.WriteFile(path, []byte("seed = 7\n"), 0o644))
	t.Setenv("PATHGAME_SEED", "99")
	t.Setenv("PATHGAME_STORE", "memory")
	t.Setenv("PATHGAME_MAX_ERRORS", "3")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(99), cfg.Seed)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, 3, cfg.Rules.MaxErrors)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("PATHGAME_PARTICLES=12\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("PATHGAME_PARTICLES") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Particles.Count)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("seed = [unclosed"), 0o644))
	_, err = Load(bad)
	assert.Error(t, err)

	t.Setenv("PATHGAME_SEED", "not-a-number")
	_, err = Load("")
	assert.Error(t, err)
}
