package audio

import "github.com/lixenwraith/path-of-all-things/constants"

// Config holds audio settings
type Config struct {
	Enabled      bool    `toml:"enabled" env:"PATHGAME_AUDIO_ENABLED"`
	AssetDir     string  `toml:"asset_dir" env:"PATHGAME_AUDIO_DIR"`
	MasterVolume float64 `toml:"master_volume" env:"PATHGAME_MASTER_VOLUME"`
	MusicVolume  float64 `toml:"music_volume" env:"PATHGAME_MUSIC_VOLUME"`
	SFXVolume    float64 `toml:"sfx_volume" env:"PATHGAME_SFX_VOLUME"`
	SampleRate   int     `toml:"sample_rate" env:"PATHGAME_SAMPLE_RATE"`
}

// DefaultConfig returns default audio configuration
func DefaultConfig() Config {
	return Config{
		Enabled:      true,
		AssetDir:     "assets/audio",
		MasterVolume: 1.0,
		MusicVolume:  constants.MusicVolume,
		SFXVolume:    constants.SFXVolume,
		SampleRate:   constants.DefaultSampleRate,
	}
}

// normalized clamps volumes to [0, 1] and restores a valid sample rate
func (c Config) normalized() Config {
	c.MasterVolume = clamp01(c.MasterVolume)
	c.MusicVolume = clamp01(c.MusicVolume)
	c.SFXVolume = clamp01(c.SFXVolume)
	if c.SampleRate <= 0 {
		c.SampleRate = constants.DefaultSampleRate
	}
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
