package constants

// Persisted Keys
const (
	// HighScoreKey holds the best score ever recorded
	HighScoreKey = "path-of-all-things-highscore"

	// MusicPreferenceKey holds "on" or "muted"
	MusicPreferenceKey = "path-of-all-things-music"

	MusicPreferenceOn    = "on"
	MusicPreferenceMuted = "muted"
)

// Run Outcomes
const (
	OutcomeComplete = "complete"
	OutcomeOver     = "over"
)
