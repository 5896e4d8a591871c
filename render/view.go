package render

import "github.com/lixenwraith/path-of-all-things/engine"

// Scene selects which screen is drawn
type Scene int

const (
	SceneStart Scene = iota
	SceneLevel
	SceneGameOver
	SceneComplete
)

// HUD is the status line shown above levels and final screens
type HUD struct {
	Score, Best     int
	Lives, MaxLives int
	Level, Levels   int
	MusicOn         bool
}

// Card is one event card as displayed
type Card struct {
	ID          int
	Title       string
	Description string
	// Year is only drawn once Revealed is set
	Year     string
	Revealed bool
	Wrong    bool
	Selected bool
	Grabbed  bool
}

// Modal is the event info overlay
type Modal struct {
	Title      string
	Year       string
	Image      string
	HasImage   bool
	Paragraphs []string
}

// Final is the summary of a finished run
type Final struct {
	Score     int
	Best      int
	Lives     int
	NewRecord bool
}

// View is everything the renderer needs for one frame
type View struct {
	Scene   Scene
	ShowHUD bool
	HUD     HUD

	Title    string
	Subtitle string
	Cards    []Card

	// Button is the label of the action button, empty hides it
	Button string

	Feedback string
	Tone     engine.Tone

	// MusicOn is the start screen toggle state
	MusicOn bool

	Final Final
	Modal *Modal

	// Fade blends content toward the background, 0 opaque to 1 gone
	Fade float64
	// Ink is the ink bleed coverage, 0 clear to 1 covered
	Ink float64
}
