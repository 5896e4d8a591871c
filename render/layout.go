package render

import "github.com/lixenwraith/path-of-all-things/constants"

// Layout places the level screen inside a w*h terminal
type Layout struct {
	Width, Height int

	TitleY    int
	SubtitleY int
	HintY     int

	CardX, CardW int
	CardsY       int
	Cards        int

	ButtonY   int
	FeedbackY int
}

// ComputeLayout stacks title, cards, button and feedback from the top, cards centered
func ComputeLayout(w, h, cards int) Layout {
	l := Layout{Width: w, Height: h, Cards: cards}

	l.TitleY = constants.HUDHeight
	l.SubtitleY = l.TitleY + 1
	l.HintY = l.SubtitleY + 1
	l.CardsY = l.HintY + 2

	l.CardW = min(constants.CardWidth, w-4)
	l.CardX = (w - l.CardW) / 2

	l.ButtonY = l.CardsY + cards*constants.CardHeight
	l.FeedbackY = l.ButtonY + 1
	return l
}

// CardRow returns the first row of card i
func (l Layout) CardRow(i int) int {
	return l.CardsY + i*constants.CardHeight
}

// CardAt returns the index of the card under (x, y), gap rows belong to the card above
func (l Layout) CardAt(x, y int) (int, bool) {
	if x < l.CardX || x >= l.CardX+l.CardW || y < l.CardsY {
		return 0, false
	}
	i := (y - l.CardsY) / constants.CardHeight
	if i >= l.Cards {
		return 0, false
	}
	return i, true
}

// SlotAt maps a row to the nearest card index, clamped, for dragging past the ends
func (l Layout) SlotAt(y int) int {
	if l.Cards == 0 {
		return 0
	}
	i := (y - l.CardsY) / constants.CardHeight
	if y < l.CardsY {
		i = 0
	}
	return max(0, min(l.Cards-1, i))
}

// OnButton reports whether (x, y) hits the action button row
func (l Layout) OnButton(x, y int) bool {
	return y == l.ButtonY && x >= l.CardX && x < l.CardX+l.CardW
}

// Fits reports whether the terminal can show every row
func (l Layout) Fits() bool {
	return l.Width >= constants.MinWidth && l.Height > l.FeedbackY
}
