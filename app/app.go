// Package app is the interactive controller: it owns the game machine, the timeline of
// staged effects and the per-frame loop that feeds the renderer
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/path-of-all-things/audio"
	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/content"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/particle"
	"github.com/lixenwraith/path-of-all-things/render"
	"github.com/lixenwraith/path-of-all-things/scores"
)

// SoundPlayer is the audio surface the controller drives
type SoundPlayer interface {
	Play(s audio.Sound)
	PlayWithFadeOut(s audio.Sound, fade time.Duration, onDone func())
	FadeInMusic(d time.Duration)
	ToggleMusic() bool
	MusicPlaying() bool
	Update(now time.Time)
}

// Options wires the controller's collaborators
type Options struct {
	Catalog   *content.Catalog
	Rules     engine.Rules
	Rand      *rand.Rand
	Sound     SoundPlayer
	Board     *scores.Board
	Images    *content.Resolver
	Clock     engine.Clock
	Particles particle.Config

	// MuteMusic starts this session with music off without touching the saved preference
	MuteMusic bool
}

// App runs one interactive session
type App struct {
	ctx      context.Context
	screen   tcell.Screen
	renderer *render.Renderer
	machine  *engine.Machine
	timeline *engine.Timeline
	clock    engine.Clock
	sound    SoundPlayer
	board    *scores.Board
	images   *content.Resolver
	field    *particle.Field

	scene     render.Scene
	showHUD   bool
	busy      bool
	lastFrame time.Time

	musicPref bool
	// musicChanged is set once the player flips the start screen toggle
	musicChanged bool

	arr         arrangement
	revealed    int
	wrong       map[int]bool
	buttonReady bool
	button      string
	feedback    engine.Feedback
	drag        dragState
	mouseDown   bool

	modal        *render.Modal
	modalClosing bool

	fade       float64
	fading     bool
	ink        float64
	inkRising  bool
	inkFalling bool

	run   runRecord
	final render.Final
}

// New creates a controller showing the start screen
func New(ctx context.Context, screen tcell.Screen, opts Options) *App {
	if opts.Clock == nil {
		opts.Clock = engine.SystemClock{}
	}
	if opts.Images == nil {
		opts.Images = content.NewResolver(".")
	}

	a := &App{
		ctx:      ctx,
		screen:   screen,
		renderer: render.NewRenderer(screen),
		clock:    opts.Clock,
		timeline: engine.NewTimeline(opts.Clock),
		sound:    opts.Sound,
		board:    opts.Board,
		images:   opts.Images,
		field:    particle.New(opts.Particles, opts.Rand),
		scene:    render.SceneStart,
		wrong:    make(map[int]bool),
	}

	a.musicPref = a.board.MusicOn(ctx) && !opts.MuteMusic
	a.machine = engine.NewMachine(opts.Catalog, opts.Rules, opts.Rand, a.board.HighScore(ctx))

	w, h := screen.Size()
	a.field.Resize(w, h)
	a.lastFrame = a.clock.Now()
	return a
}

// Run polls input and draws frames until the player quits or ctx ends
func (a *App) Run() error {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			panic(r)
		}
	}()

	events := make(chan tcell.Event, constants.EventQueueSize)
	done := make(chan struct{})
	defer close(done)
	go a.poll(events, done)

	ticker := time.NewTicker(constants.FrameUpdateInterval)
	defer ticker.Stop()

	a.field.Start()
	a.tick(a.clock.Now())

	for {
		select {
		case <-a.ctx.Done():
			return nil
		case ev := <-events:
			if !a.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.tick(a.clock.Now())
		}
	}
}

// poll forwards terminal events until the screen closes or Run returns
func (a *App) poll(events chan<- tcell.Event, done <-chan struct{}) {
	defer func() {
		if r := recover(); r != nil {
			a.screen.Fini()
			fmt.Fprintf(os.Stderr, "\r\nINPUT POLL CRASHED: %v\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	for {
		ev := a.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// tick advances staged effects, audio fades and animations to now, then draws
func (a *App) tick(now time.Time) {
	dt := now.Sub(a.lastFrame).Seconds()
	a.lastFrame = now

	a.timeline.Advance(now)
	a.sound.Update(now)
	a.animate(dt)
	a.field.Update(dt)

	a.renderer.Draw(a.view(), a.field.Particles())
}

// animate steps the start fade and the ink bleed
func (a *App) animate(dt float64) {
	if dt <= 0 {
		return
	}
	if a.fading {
		a.fade = min(1, a.fade+dt/constants.StartOverlayFade.Seconds())
	}
	switch {
	case a.inkRising:
		a.ink = min(1, a.ink+dt/constants.InkBleedDuration.Seconds())
	case a.inkFalling:
		a.ink = max(0, a.ink-dt/constants.InkClearDelay.Seconds())
		if a.ink == 0 {
			a.inkFalling = false
		}
	}
}

func (a *App) bleed() {
	a.inkRising, a.inkFalling = true, false
}

func (a *App) clearInk() {
	a.inkRising, a.inkFalling = false, true
}

// layout returns the level layout for the current terminal size
func (a *App) layout() render.Layout {
	w, h := a.screen.Size()
	return render.ComputeLayout(w, h, len(a.arr.order))
}
