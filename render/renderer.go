// Package render draws game views onto a tcell screen
package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/path-of-all-things/constants"
	"github.com/lixenwraith/path-of-all-things/particle"
)

const (
	levelKeys = "↑↓ select · space grab · enter contemplate · i info · m music · q quit"
	startKeys = "enter begin · m music · q quit"
)

// Renderer draws a View and the ambient particle field every frame
type Renderer struct {
	screen tcell.Screen
	fade   float64
}

// NewRenderer creates a renderer for screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one complete frame
func (r *Renderer) Draw(v View, particles []particle.Particle) {
	w, h := r.screen.Size()
	r.fade = v.Fade
	r.screen.Fill(' ', r.bg())

	r.drawParticles(particles, w, h)

	if v.ShowHUD {
		r.drawHUD(v.HUD, w)
	}

	switch v.Scene {
	case SceneStart:
		r.drawStart(v, h)
	case SceneLevel:
		r.drawLevel(v, w, h)
	case SceneGameOver, SceneComplete:
		r.drawFinal(v, h)
	}

	r.fade = 0
	if v.Modal != nil {
		r.drawModal(v.Modal, w, h)
	}
	if v.Ink > 0 {
		r.drawInk(v.Ink, w, h)
	}

	r.screen.Show()
}

// bg is the plain background style
func (r *Renderer) bg() tcell.Style {
	return tcell.StyleDefault.Background(Color(RgbInk)).Foreground(Color(RgbParchment))
}

// fg returns a background style with fg blended toward ink by the current fade
func (r *Renderer) fg(c particle.RGB) tcell.Style {
	return r.bg().Foreground(Color(particle.Lerp(c, RgbInk, r.fade)))
}

func (r *Renderer) drawParticles(particles []particle.Particle, w, h int) {
	for i := range particles {
		p := &particles[i]
		x := int(math.Round(p.X()))
		y := int(math.Round(p.Y))
		if x < 0 || x >= w || y < 0 || y >= h || p.Alpha <= 0 {
			continue
		}

		glyph := '·'
		switch {
		case p.Size >= 2.5:
			glyph = '•'
		case p.Size >= 1.8:
			glyph = '∙'
		}
		color := particle.Lerp(RgbInk, p.Color, min(1, p.Alpha*2))
		r.screen.SetContent(x, y, glyph, nil, r.bg().Foreground(Color(color)))
	}
}

func (r *Renderer) drawHUD(hud HUD, w int) {
	score := fmt.Sprintf("Score %d", hud.Score)
	x := r.drawText(2, 0, w, score, r.fg(RgbGold).Bold(true))
	r.drawText(x+3, 0, w, fmt.Sprintf("Best %d", hud.Best), r.fg(RgbDimGold))

	if hud.Levels > 0 {
		var dots strings.Builder
		for i := 0; i < hud.Levels; i++ {
			switch {
			case i < hud.Level:
				dots.WriteRune(constants.GlyphDotDone)
			case i == hud.Level:
				dots.WriteRune(constants.GlyphDotActive)
			default:
				dots.WriteRune(constants.GlyphDotPending)
			}
			if i < hud.Levels-1 {
				dots.WriteByte(' ')
			}
		}
		r.drawCentered(0, dots.String(), r.fg(RgbDimGold))
	}

	right := w - 2 - hud.MaxLives*2 - 2
	for i := 0; i < hud.MaxLives; i++ {
		glyph, color := constants.GlyphLifeSpent, RgbFaint
		if i < hud.Lives {
			glyph, color = constants.GlyphLifeAlive, RgbGold
		}
		r.screen.SetContent(right+i*2, 0, glyph, nil, r.fg(color))
	}

	music, color := constants.GlyphMusicOff, RgbFaint
	if hud.MusicOn {
		music, color = constants.GlyphMusicOn, RgbGold
	}
	r.screen.SetContent(w-2, 0, music, nil, r.fg(color))
}

// startTop is the first row of the start screen block
func startTop(h int) int {
	lines := 3 + len(constants.StartLines) + 4
	return max(0, (h-lines)/2)
}

// StartMusicRow is the row of the start screen music toggle
func StartMusicRow(h int) int {
	return startTop(h) + 4 + len(constants.StartLines) + 1
}

func (r *Renderer) drawStart(v View, h int) {
	y := startTop(h)

	r.drawCentered(y, string(constants.GlyphStart), r.fg(RgbGold))
	r.drawCentered(y+1, constants.GameTitle, r.fg(RgbParchment).Bold(true))
	r.drawCentered(y+2, "───", r.fg(RgbDimGold))
	y += 4
	for _, line := range constants.StartLines {
		r.drawCentered(y, line, r.fg(RgbParchment).Italic(true))
		y++
	}

	state := "Off"
	if v.MusicOn {
		state = "On"
	}
	toggle := fmt.Sprintf("%c Music: %s", constants.GlyphMusicOn, state)
	if v.MusicOn {
		r.drawCentered(y+1, toggle, r.fg(RgbGold))
	} else {
		r.drawCentered(y+1, toggle, r.fg(RgbFaint))
	}
	r.drawCentered(y+3, button(v.Button), r.fg(RgbGold).Bold(true))

	if h > y+5 {
		r.drawCentered(h-1, startKeys, r.fg(RgbFaint))
	}
}

func (r *Renderer) drawLevel(v View, w, h int) {
	l := ComputeLayout(w, h, len(v.Cards))
	if !l.Fits() {
		r.drawCentered(h/2, constants.TooSmall, r.fg(RgbDimGold))
		return
	}

	r.drawCentered(l.TitleY, v.Title, r.fg(RgbParchment).Bold(true))
	r.drawCentered(l.SubtitleY, v.Subtitle, r.fg(RgbDimGold).Italic(true))
	r.drawCentered(l.HintY, strings.ToUpper(constants.ArrangeHint), r.fg(RgbFaint))

	for i, c := range v.Cards {
		r.drawCard(c, l.CardX, l.CardRow(i), l.CardW)
	}

	if v.Button != "" {
		r.drawCentered(l.ButtonY, button(v.Button), r.fg(RgbGold).Bold(true))
	}
	if v.Feedback != "" {
		r.drawCentered(l.FeedbackY, v.Feedback, r.fg(ToneColor(v.Tone)).Italic(true))
	}

	if h-1 > l.FeedbackY {
		r.drawCentered(h-1, truncate(levelKeys, w), r.fg(RgbFaint))
	}
}

func (r *Renderer) drawCard(c Card, x, y, width int) {
	base := r.bg()
	if c.Selected || c.Grabbed {
		base = base.Background(Color(RgbShadow))
		r.fill(x, y, width, 2, base)
	}

	accent, color := '▏', RgbFaint
	switch {
	case c.Grabbed:
		accent, color = '█', RgbParchment
	case c.Wrong:
		accent, color = '▌', RgbRust
	case c.Revealed:
		accent, color = '▌', RgbMoss
	case c.Selected:
		accent, color = '▌', RgbGold
	}
	blend := func(rgb particle.RGB) tcell.Style {
		return base.Foreground(Color(particle.Lerp(rgb, RgbInk, r.fade)))
	}
	r.screen.SetContent(x, y, accent, nil, blend(color))
	r.screen.SetContent(x, y+1, accent, nil, blend(color))

	textX := x + 2
	textW := width - 2
	yearW := 0
	if c.Revealed && c.Year != "" {
		yearW = runewidth.StringWidth(c.Year)
		r.drawText(x+width-yearW, y, x+width, c.Year, blend(RgbGold))
		yearW += 2
	}

	titleColor := RgbParchment
	if c.Wrong {
		titleColor = RgbRust
	}
	r.drawText(textX, y, textX+textW-yearW, truncate(c.Title, textW-yearW), blend(titleColor).Bold(true))
	r.drawText(textX, y+1, textX+textW, truncate(c.Description, textW), blend(RgbDimGold).Italic(true))
}

func (r *Renderer) drawFinal(v View, h int) {
	over := v.Scene == SceneGameOver
	title, lines, titleColor := constants.CompleteTitle, constants.CompleteLines, RgbParchment
	if over {
		title, lines, titleColor = constants.OverTitle, constants.OverLines, RgbRust
	}

	y := max(constants.HUDHeight, (h-(len(lines)+11))/2)
	r.drawCentered(y, title, r.fg(titleColor).Bold(true))
	y += 2
	for _, line := range lines {
		r.drawCentered(y, line, r.fg(RgbParchment).Italic(true))
		y++
	}

	y++
	r.drawCentered(y, fmt.Sprintf("%d", v.Final.Score), r.fg(RgbGold).Bold(true))
	r.drawCentered(y+1, strings.ToUpper(constants.PointsEarned), r.fg(RgbFaint))
	y += 2

	if !over {
		r.drawCentered(y, lightsRemaining(v.Final.Lives), r.fg(RgbFaint))
		y++
	}

	switch {
	case v.Final.NewRecord:
		star := string(constants.GlyphStar)
		r.drawCentered(y, star+" "+constants.NewHighScore+" "+star, r.fg(RgbMoss))
		y++
	case !over || v.Final.Best > 0:
		r.drawCentered(y, fmt.Sprintf("Best: %d", v.Final.Best), r.fg(RgbFaint))
		y++
	}

	if !over {
		y++
		r.drawCentered(y, strings.ToUpper(constants.CompleteCoda), r.fg(RgbFaint))
	}
	if v.Button != "" {
		r.drawCentered(y+2, button(v.Button), r.fg(RgbGold).Bold(true))
	}
}

func (r *Renderer) drawModal(m *Modal, w, h int) {
	lines := modalLines(m, w)
	b, ok := ModalBox(m, w, h)
	if !ok {
		return
	}
	x0, y0, mw, mh := b.X, b.Y, b.W, b.H
	inner := mw - 4

	box := r.bg().Background(Color(RgbShadow))
	r.fill(x0, y0, mw, mh, box)
	border := box.Foreground(Color(RgbDimGold))
	for x := x0 + 1; x < x0+mw-1; x++ {
		r.screen.SetContent(x, y0, '─', nil, border)
		r.screen.SetContent(x, y0+mh-1, '─', nil, border)
	}
	for y := y0 + 1; y < y0+mh-1; y++ {
		r.screen.SetContent(x0, y, '│', nil, border)
		r.screen.SetContent(x0+mw-1, y, '│', nil, border)
	}
	r.screen.SetContent(x0, y0, '┌', nil, border)
	r.screen.SetContent(x0+mw-1, y0, '┐', nil, border)
	r.screen.SetContent(x0, y0+mh-1, '└', nil, border)
	r.screen.SetContent(x0+mw-1, y0+mh-1, '┘', nil, border)
	r.screen.SetContent(x0+mw-3, y0, '×', nil, border)

	for i, line := range lines {
		y := y0 + 1 + i
		if y >= y0+mh-1 {
			break
		}
		style := box.Foreground(Color(line.color)).Bold(line.bold)
		r.drawText(x0+2, y, x0+2+inner, line.text, style)
	}
}

type modalLine struct {
	text  string
	color particle.RGB
	bold  bool
}

// Rect is a screen area in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell lies inside the area
func (b Rect) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// ModalBox returns the area the info modal occupies, false when the screen is too narrow to draw it
func ModalBox(m *Modal, w, h int) (Rect, bool) {
	mw := min(constants.ModalWidth, w-4)
	if mw-4 < 10 {
		return Rect{}, false
	}
	mh := min(len(modalLines(m, w))+2, h-2)
	return Rect{X: (w - mw) / 2, Y: (h - mh) / 2, W: mw, H: mh}, true
}

func modalLines(m *Modal, w int) []modalLine {
	inner := min(constants.ModalWidth, w-4) - 4
	if inner < 10 {
		return nil
	}

	lines := []modalLine{
		{text: m.Title, color: RgbParchment, bold: true},
		{text: m.Year, color: RgbGold},
		{text: strings.Repeat("─", inner), color: RgbFaint},
	}
	if m.HasImage {
		lines = append(lines, modalLine{text: "▣ " + m.Image, color: RgbDimGold})
	} else {
		lines = append(lines, modalLine{text: string(constants.GlyphPlaceholder), color: RgbFaint})
	}
	for _, p := range m.Paragraphs {
		lines = append(lines, modalLine{})
		for _, l := range wrap(p, inner) {
			lines = append(lines, modalLine{text: l, color: RgbParchment})
		}
	}
	return lines
}

// drawInk covers cells within coverage of the normalized distance from the center
func (r *Renderer) drawInk(coverage float64, w, h int) {
	cx, cy := float64(w-1)/2, float64(h-1)/2
	style := tcell.StyleDefault.Background(Color(RgbInk)).Foreground(Color(RgbInk))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := (float64(x) - cx) / max(cx, 1)
			dy := (float64(y) - cy) / max(cy, 1)
			if math.Hypot(dx, dy)/math.Sqrt2 <= coverage {
				r.screen.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

func button(label string) string {
	if label == "" {
		return ""
	}
	return "[ " + label + " ]"
}

func lightsRemaining(n int) string {
	if n == 1 {
		return "1 light remaining"
	}
	return fmt.Sprintf("%d lights remaining", n)
}
