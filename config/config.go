// Package config assembles runtime settings from defaults, a TOML file, a .env file and
// PATHGAME_* environment variables, in that order of increasing precedence
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/path-of-all-things/audio"
	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/store"
)

// DotEnvFile is the optional dotenv file read from the working directory
const DotEnvFile = ".env"

// StoreConfig selects the persistence backend
type StoreConfig struct {
	Backend string `toml:"backend" env:"PATHGAME_STORE"`
	Path    string `toml:"path" env:"PATHGAME_STORE_PATH"`
}

// ParticleConfig tunes the ambient field
type ParticleConfig struct {
	Count int `toml:"count" env:"PATHGAME_PARTICLES"`
}

// Config is the full runtime configuration
type Config struct {
	// ContentPath is a YAML, JSON or TOML catalog, empty selects the built-in levels
	ContentPath string `toml:"content" env:"PATHGAME_CONTENT"`
	// ImageDir holds event artwork referenced by the info modal
	ImageDir string `toml:"image_dir" env:"PATHGAME_IMAGE_DIR"`

	Store     StoreConfig    `toml:"store"`
	Audio     audio.Config   `toml:"audio"`
	Rules     engine.Rules   `toml:"rules"`
	Particles ParticleConfig `toml:"particles"`

	// Seed fixes the shuffle sequence, zero seeds from the clock
	Seed   int64  `toml:"seed" env:"PATHGAME_SEED"`
	Debug  bool   `toml:"debug" env:"PATHGAME_DEBUG"`
	LogDir string `toml:"log_dir" env:"PATHGAME_LOG_DIR"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		ImageDir: "assets",
		Store: StoreConfig{
			Backend: store.BackendSQLite,
			Path:    "data/pathgame.db",
		},
		Audio:     audio.DefaultConfig(),
		Rules:     engine.DefaultRules(),
		Particles: ParticleConfig{Count: constants.ParticleCount},
		LogDir:    "logs",
	}
}

// Load builds the configuration, path may be empty to skip the TOML file
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		slog.Debug("config file loaded", "path", path)
	}

	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load %s: %w", DotEnvFile, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
