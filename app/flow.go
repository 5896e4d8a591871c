package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/path-of-all-things/audio"
	"github.com/lixenwraith/path-of-all-things/chrono"
	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/render"
	"github.com/lixenwraith/path-of-all-things/store"
)

// runRecord tracks the run in progress for the history
type runRecord struct {
	id      string
	started time.Time
}

func (a *App) newRun() {
	a.run = runRecord{id: uuid.NewString(), started: a.clock.Now()}
}

// begin leaves the start screen: the start chime plays and music fades in after it if wanted
func (a *App) begin() {
	if a.busy {
		return
	}
	a.busy = true
	if a.musicChanged {
		a.board.SetMusic(a.ctx, a.musicPref)
	}

	wantMusic := a.musicPref
	a.sound.PlayWithFadeOut(audio.GameStart, constants.SoundTailFade, func() {
		if wantMusic {
			a.sound.FadeInMusic(constants.MusicFadeInDuration)
		}
	})

	a.fading = true
	a.timeline.Schedule("start", constants.StartOverlayFade, func() {
		a.fading, a.fade = false, 0
		a.scene = render.SceneLevel
		a.showHUD = true
		a.newRun()
		a.enterRound()
		a.busy = false
	})
}

// enterRound samples a fresh round for the current level
func (a *App) enterRound() {
	a.closeModalNow()
	round, err := a.machine.StartRound()
	if err != nil {
		slog.Error("round not started", "err", err)
		return
	}

	a.arr = newArrangement(round.DisplayOrder())
	a.revealed = 0
	clear(a.wrong)
	a.buttonReady = false
	a.button = constants.ButtonCheck
	a.feedback = engine.Feedback{}
	a.drag = dragState{}
}

// check judges the current arrangement
func (a *App) check() {
	if a.busy || a.machine.Phase() != engine.PhaseRoundActive {
		return
	}
	a.arr.grabbed = false

	v, err := a.machine.Submit(a.arr.Order())
	if err != nil {
		slog.Error("order rejected", "err", err)
		return
	}
	if v.Ignored {
		return
	}

	fb := engine.FeedbackFor(v, a.machine.State().Lives)
	switch {
	case v.Correct:
		a.sound.Play(audio.Correct)
		a.reveal(fb)

	case v.Lockout:
		a.sound.Play(audio.Incorrect)
		a.reveal(fb)
		if a.machine.State().Lives <= 0 {
			a.busy = true
			a.timeline.Schedule("gameover", constants.GameOverDelay, a.finish)
		}

	default:
		a.sound.Play(audio.Incorrect)
		a.feedback = fb
		clear(a.wrong)
		order := a.arr.Order()
		for _, i := range v.Wrong {
			a.wrong[order[i]] = true
		}
		a.timeline.Schedule("feedback", constants.FeedbackFadeDelay, func() { a.feedback = engine.Feedback{} })
		a.timeline.Schedule("wrong", constants.WrongHighlightDuration, func() { clear(a.wrong) })
	}
}

// reveal sorts the cards into the solution and turns them over one by one
func (a *App) reveal(fb engine.Feedback) {
	a.timeline.Cancel("feedback")
	a.timeline.Cancel("wrong")
	clear(a.wrong)
	a.feedback = fb

	round := a.machine.Round()
	a.arr.set(round.CorrectOrder())
	a.drag = dragState{}

	n := round.Size()
	for i := 0; i < n; i++ {
		a.timeline.Schedule(fmt.Sprintf("reveal/%d", i), time.Duration(i)*constants.RevealStagger, func() {
			a.revealed = max(a.revealed, i+1)
		})
	}
	a.timeline.Schedule("button", time.Duration(n)*constants.RevealStagger+constants.RevealButtonDelay, func() {
		a.buttonReady = true
		if a.machine.IsFinalLevel() {
			a.button = constants.ButtonComplete
		} else {
			a.button = constants.ButtonContinue
		}
	})
}

// proceed leaves a revealed round toward the next level or the completion screen
func (a *App) proceed() {
	if a.busy || !a.buttonReady || a.machine.Phase() != engine.PhaseRoundLocked {
		return
	}

	next, err := a.machine.Resolve()
	if err != nil {
		slog.Error("resolve failed", "err", err)
		return
	}
	switch next {
	case engine.PhaseLevelAdvance:
		a.nextLevel()
	default:
		a.finish()
	}
}

// nextLevel covers the screen with ink, swaps in the next level and uncovers it
func (a *App) nextLevel() {
	a.busy = true
	a.closeModalNow()
	a.sound.Play(audio.NextLevel)
	a.bleed()

	a.timeline.Schedule("ink/swap", constants.InkBleedDuration, func() {
		if err := a.machine.Advance(); err != nil {
			slog.Error("advance failed", "err", err)
		}
		a.enterRound()
		a.timeline.Schedule("ink/clear", constants.InkClearDelay, func() {
			a.clearInk()
			a.busy = false
		})
	})
}

// finish ends the run: the score is committed and the final screen replaces the level
func (a *App) finish() {
	a.busy = true
	a.timeline.CancelPrefix("reveal/")
	a.timeline.Cancel("button")
	a.closeModalNow()

	if a.machine.Phase() == engine.PhaseRoundLocked {
		if _, err := a.machine.Resolve(); err != nil {
			slog.Error("resolve failed", "err", err)
		}
	}

	newRecord := a.machine.CommitHighScore()
	state := a.machine.State()
	if newRecord {
		a.board.Record(a.ctx, state.Score)
	}

	outcome, scene, cleared := constants.OutcomeComplete, render.SceneComplete, a.machine.LevelCount()
	if a.machine.Phase() == engine.PhaseGameOver {
		outcome, scene, cleared = constants.OutcomeOver, render.SceneGameOver, state.Level
	}
	a.board.AddRun(a.ctx, store.Run{
		ID:            a.run.id,
		StartedAt:     a.run.started,
		EndedAt:       a.clock.Now(),
		Score:         state.Score,
		Lives:         state.Lives,
		LevelsCleared: cleared,
		Outcome:       outcome,
	})
	slog.Info("run finished", "outcome", outcome, "score", state.Score, "record", newRecord)

	a.sound.PlayWithFadeOut(audio.FinishGame, constants.SoundTailFade, nil)
	a.bleed()
	a.timeline.Schedule("ink/swap", constants.InkBleedDuration, func() {
		a.scene = scene
		a.final = render.Final{
			Score:     state.Score,
			Best:      state.HighScore,
			Lives:     state.Lives,
			NewRecord: newRecord,
		}
		a.button = constants.ButtonRestart
		a.timeline.Schedule("ink/clear", constants.InkClearDelay, func() {
			a.clearInk()
			a.busy = false
		})
	})
}

// restart begins a new run from the final screen
func (a *App) restart() {
	if a.busy || !a.machine.Phase().Terminal() {
		return
	}
	a.busy = true
	a.sound.Play(audio.GameStart)
	a.bleed()

	a.timeline.Schedule("ink/swap", constants.InkBleedDuration, func() {
		if err := a.machine.Restart(); err != nil {
			slog.Error("restart failed", "err", err)
		}
		a.scene = render.SceneLevel
		a.newRun()
		a.enterRound()
		a.timeline.Schedule("ink/clear", constants.InkClearDelay, func() {
			a.clearInk()
			a.busy = false
		})
	})
}

// toggleMusic flips the start screen preference, or the playing music once in game
func (a *App) toggleMusic() {
	if a.scene == render.SceneStart {
		a.musicPref = !a.musicPref
		a.musicChanged = true
		return
	}
	on := a.sound.ToggleMusic()
	a.board.SetMusic(a.ctx, on)
}

// openInfo shows the modal for the card at index i once it has been turned over
func (a *App) openInfo(i int) {
	if a.busy || a.modal != nil || i < 0 || i >= a.revealed || i >= len(a.arr.order) {
		return
	}
	e, ok := a.machine.Round().Event(a.arr.order[i])
	if !ok {
		return
	}

	a.modal = &render.Modal{
		Title:      e.Title,
		Year:       chrono.Format(e.Year),
		Image:      a.images.Path(e),
		HasImage:   a.images.Exists(e),
		Paragraphs: e.Paragraphs(),
	}
	a.sound.Play(audio.ModalOpen)
}

func (a *App) closeModal() {
	if a.modal == nil || a.modalClosing {
		return
	}
	a.modalClosing = true
	a.sound.Play(audio.ModalOpen)
	a.timeline.Schedule("modal", constants.ModalCloseDelay, a.closeModalNow)
}

func (a *App) closeModalNow() {
	a.timeline.Cancel("modal")
	a.modal = nil
	a.modalClosing = false
}
