package constants

import "time"

// Transition Timing
const (
	// RevealStagger is the delay between consecutive cards turning over
	RevealStagger = 200 * time.Millisecond

	// RevealButtonDelay is added after the last card before the button changes
	RevealButtonDelay = 400 * time.Millisecond

	// FeedbackFadeDelay is how long a miss message stays visible
	FeedbackFadeDelay = 3000 * time.Millisecond

	// WrongHighlightDuration is how long misplaced cards stay highlighted
	WrongHighlightDuration = 3700 * time.Millisecond

	// GameOverDelay lets the spent life register before the game over sequence
	GameOverDelay = 1200 * time.Millisecond

	// InkBleedDuration covers the screen before the next view is swapped in
	InkBleedDuration = 1200 * time.Millisecond

	// InkClearDelay uncovers the screen after the swap
	InkClearDelay = 300 * time.Millisecond

	// StartOverlayFade is the start screen fade out
	StartOverlayFade = 600 * time.Millisecond

	// ModalCloseDelay is the modal closing animation
	ModalCloseDelay = 300 * time.Millisecond
)

// Layout
const (
	// CardWidth is the maximum card width in cells
	CardWidth = 56

	// CardHeight is the number of rows a card occupies including the gap below it
	CardHeight = 3

	// ModalWidth is the maximum info modal width in cells
	ModalWidth = 72

	// HUDHeight is the number of rows reserved at the top
	HUDHeight = 2

	// MinWidth and MinHeight are the smallest terminal the level screen fits in
	MinWidth  = 40
	MinHeight = 20
)

// Glyphs
const (
	GlyphLifeAlive   = '◆'
	GlyphLifeSpent   = '◇'
	GlyphDotDone     = '●'
	GlyphDotActive   = '◉'
	GlyphDotPending  = '○'
	GlyphStart       = '◌'
	GlyphPlaceholder = '◌'
	GlyphStar        = '✦'
	GlyphMusicOn     = '♫'
	GlyphMusicOff    = '♬'
)

// Text
const (
	GameTitle       = "The Path of All Things"
	ArrangeHint     = "Arrange from earliest to latest"
	ButtonCheck     = "Contemplate"
	ButtonContinue  = "Continue"
	ButtonComplete  = "Complete"
	ButtonBegin     = "Begin"
	ButtonRestart   = "Begin Again"
	NoInfoAvailable = "No additional information available."
	PointsEarned    = "points earned"
	NewHighScore    = "New High Score"
	OverTitle       = "The Path Fades"
	CompleteTitle   = "The Path is Walked"
	CompleteCoda    = "13.8 billion years, contemplated"
	TooSmall        = "Enlarge the terminal to continue"
)

// Prose
var (
	StartLines = []string{
		"From the first light to the last silence,",
		"trace the thread that binds all things.",
		"Arrange the moments. Find the order.",
	}
	OverLines = []string{
		"All lights have dimmed. The thread slips from your hands,",
		"but the path remains, patient, for those who return.",
	}
	CompleteLines = []string{
		"From the first light to the last silence,",
		"you have traced the thread that binds all things.",
	}
)
