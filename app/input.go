package app

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/path-of-all-things/audio"
	"github.com/lixenwraith/path-of-all-things/engine"
	"github.com/lixenwraith/path-of-all-things/render"
)

// dragState follows a mouse drag of one card
type dragState struct {
	active bool
	from   int
	moved  bool
}

// handleEvent applies one terminal event, false means quit
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.screen.Sync()
		w, h := ev.Size()
		a.field.Resize(w, h)
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyCtrlC {
		return false
	}

	if a.modal != nil {
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyEnter, ev.Rune() == 'i', ev.Rune() == 'q':
			a.closeModal()
		}
		return true
	}

	switch ev.Key() {
	case tcell.KeyUp:
		a.cursor(-1)
		return true
	case tcell.KeyDown:
		a.cursor(1)
		return true
	case tcell.KeyEnter:
		a.activate()
		return true
	case tcell.KeyEscape:
		if a.arr.grabbed {
			a.drop()
		}
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'k':
		a.cursor(-1)
	case 'j':
		a.cursor(1)
	case ' ':
		a.grab()
	case 'm':
		a.toggleMusic()
	case 'i':
		if a.scene == render.SceneLevel {
			a.openInfo(a.arr.cursor)
		}
	}
	return true
}

// activate presses the button of the current screen
func (a *App) activate() {
	switch a.scene {
	case render.SceneStart:
		a.begin()
	case render.SceneGameOver, render.SceneComplete:
		a.restart()
	case render.SceneLevel:
		if a.arr.grabbed {
			a.drop()
		}
		switch a.machine.Phase() {
		case engine.PhaseRoundActive:
			a.check()
		case engine.PhaseRoundLocked:
			a.proceed()
		}
	}
}

func (a *App) canArrange() bool {
	return a.scene == render.SceneLevel && !a.busy && a.machine.Phase() == engine.PhaseRoundActive
}

func (a *App) cursor(delta int) {
	if a.scene != render.SceneLevel {
		return
	}
	if a.arr.grabbed && !a.canArrange() {
		a.arr.grabbed = false
	}
	a.arr.step(delta)
}

// grab lifts the card under the cursor, or drops the one already lifted
func (a *App) grab() {
	if !a.canArrange() {
		return
	}
	if a.arr.grabbed {
		a.drop()
		return
	}
	a.arr.grabbed = true
}

func (a *App) drop() {
	a.arr.grabbed = false
	a.sound.Play(audio.CardMove)
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	l := a.layout()
	pressed := ev.Buttons()&tcell.Button1 != 0
	down := pressed && !a.mouseDown
	a.mouseDown = pressed

	if a.modal != nil {
		if down && !a.onModal(x, y) {
			a.closeModal()
		}
		return
	}

	switch {
	case down:
		a.press(l, x, y)
	case pressed && a.drag.active:
		if !a.canArrange() {
			a.drag = dragState{}
			return
		}
		to := l.SlotAt(y)
		if to != a.drag.from {
			a.arr.move(a.drag.from, to)
			a.drag.from, a.drag.moved = to, true
			a.arr.cursor = to
		}
	case !pressed && a.drag.active:
		if a.drag.moved {
			a.sound.Play(audio.CardMove)
		}
		a.drag = dragState{}
	}
}

// press handles the start of a left click
func (a *App) press(l render.Layout, x, y int) {
	if a.scene != render.SceneLevel {
		if a.scene == render.SceneStart && y == a.musicToggleRow() {
			a.toggleMusic()
			return
		}
		a.activate()
		return
	}

	if l.OnButton(x, y) {
		a.activate()
		return
	}

	i, ok := l.CardAt(x, y)
	if !ok {
		return
	}
	a.arr.cursor = i
	if i < a.revealed {
		a.openInfo(i)
		return
	}
	if a.canArrange() {
		a.drag = dragState{active: true, from: i}
	}
}

// onModal reports whether the cell lies inside the info modal box, its close mark excluded
func (a *App) onModal(x, y int) bool {
	w, h := a.screen.Size()
	box, ok := render.ModalBox(a.modal, w, h)
	if !ok {
		return false
	}
	if y == box.Y && x == box.X+box.W-3 {
		return false
	}
	return box.Contains(x, y)
}

func (a *App) musicToggleRow() int {
	_, h := a.screen.Size()
	return render.StartMusicRow(h)
}
