package app

import (
	"github.com/lixenwraith/path-of-all-things/chrono"
	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/render"
)

// view snapshots the controller into what the renderer draws this frame
func (a *App) view() render.View {
	state := a.machine.State()
	v := render.View{
		Scene:   a.scene,
		ShowHUD: a.showHUD,
		HUD: render.HUD{
			Score:    state.Score,
			Best:     state.HighScore,
			Lives:    state.Lives,
			MaxLives: a.machine.Rules().StartingLives,
			Level:    state.Level,
			Levels:   a.machine.LevelCount(),
			MusicOn:  a.sound.MusicPlaying(),
		},
		MusicOn: a.musicPref,
		Final:   a.final,
		Modal:   a.modal,
		Fade:    a.fade,
		Ink:     a.ink,
	}

	switch a.scene {
	case render.SceneStart:
		v.Button = constants.ButtonBegin
	case render.SceneGameOver, render.SceneComplete:
		v.Button = constants.ButtonRestart
	case render.SceneLevel:
		a.levelView(&v)
	}
	return v
}

func (a *App) levelView(v *render.View) {
	level := a.machine.Level()
	v.Title = level.Name
	v.Subtitle = level.Subtitle
	v.Feedback = a.feedback.Text
	v.Tone = a.feedback.Tone

	if a.machine.Phase() != engine.PhaseRoundLocked || a.buttonReady {
		v.Button = a.button
	}

	round := a.machine.Round()
	if round == nil {
		return
	}
	v.Cards = make([]render.Card, 0, len(a.arr.order))
	for i, id := range a.arr.order {
		e, ok := round.Event(id)
		if !ok {
			continue
		}
		v.Cards = append(v.Cards, render.Card{
			ID:          id,
			Title:       e.Title,
			Description: e.Description,
			Year:        chrono.Format(e.Year),
			Revealed:    i < a.revealed,
			Wrong:       a.wrong[id],
			Selected:    i == a.arr.cursor,
			Grabbed:     i == a.arr.cursor && (a.arr.grabbed || a.drag.active),
		})
	}
}
