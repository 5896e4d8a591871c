package render

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes s from (x, y), clipped at maxX, and returns the column after the last cell
func (r *Renderer) drawText(x, y, maxX int, s string, style tcell.Style) int {
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += w
	}
	return x
}

// drawCentered writes s centered on row y
func (r *Renderer) drawCentered(y int, s string, style tcell.Style) {
	w, _ := r.screen.Size()
	x := (w - runewidth.StringWidth(s)) / 2
	r.drawText(max(0, x), y, w, s, style)
}

// fill paints a rectangle with spaces
func (r *Renderer) fill(x, y, w, h int, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// truncate shortens s to width cells, marking the cut with an ellipsis
func truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}

// wrap breaks text into lines no wider than width, splitting on spaces
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
		lineW int
	)
	for _, word := range strings.Fields(text) {
		ww := runewidth.StringWidth(word)
		if lineW > 0 && lineW+1+ww > width {
			lines = append(lines, line.String())
			line.Reset()
			lineW = 0
		}
		if lineW > 0 {
			line.WriteByte(' ')
			lineW++
		}
		if ww > width {
			word = runewidth.Truncate(word, width, "…")
			ww = runewidth.StringWidth(word)
		}
		line.WriteString(word)
		lineW += ww
	}
	if lineW > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
