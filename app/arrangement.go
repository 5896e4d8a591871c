package app

import "slices"

// arrangement is the player's working order of cards plus the keyboard cursor
type arrangement struct {
	order   []int
	cursor  int
	grabbed bool
}

func newArrangement(order []int) arrangement {
	return arrangement{order: slices.Clone(order)}
}

// Order returns a copy of the current order
func (a *arrangement) Order() []int {
	return slices.Clone(a.order)
}

// set replaces the order, keeping the cursor in range
func (a *arrangement) set(order []int) {
	a.order = slices.Clone(order)
	a.grabbed = false
	a.clampCursor()
}

// step moves the cursor by delta, carrying the grabbed card along; reports whether the order changed
func (a *arrangement) step(delta int) bool {
	if len(a.order) == 0 {
		return false
	}
	to := max(0, min(len(a.order)-1, a.cursor+delta))
	if to == a.cursor {
		return false
	}
	if !a.grabbed {
		a.cursor = to
		return false
	}
	a.move(a.cursor, to)
	a.cursor = to
	return true
}

// move lifts the card at from and inserts it at to, shifting the cards between
func (a *arrangement) move(from, to int) {
	if from == to || from < 0 || to < 0 || from >= len(a.order) || to >= len(a.order) {
		return
	}
	id := a.order[from]
	a.order = slices.Delete(a.order, from, from+1)
	a.order = slices.Insert(a.order, to, id)
}

func (a *arrangement) clampCursor() {
	a.cursor = max(0, min(len(a.order)-1, a.cursor))
}
