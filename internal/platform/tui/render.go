package tui

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bubble-catch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorSalmon:  lipgloss.NewStyle().Foreground(lipgloss.Color("210")),
}

// Drawing glyphs.
const (
	bubbleRune = '●'
	paddleRune = '█'
)

// Smallest screen the field can be drawn on.
const (
	minScreenW = 40
	minScreenH = 12
	hudRows    = 2
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// viewport maps field units to screen cells. Terminal cells are about twice
// as tall as they are wide, so one row covers two columns worth of units.
type viewport struct {
	scale float64 // Field units per column
	cols  int
	rows  int
}

func newViewport(field core.Size, availW, availH int) viewport {
	scale := max(field.Width/float64(availW), field.Height/(2*float64(availH)))
	return viewport{
		scale: scale,
		cols:  min(int(math.Ceil(field.Width/scale)), availW),
		rows:  min(int(math.Ceil(field.Height/(2*scale))), availH),
	}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.scale))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y / (2 * v.scale)))
}

// fieldCanvas draws inside the field box, clipping to it.
type fieldCanvas struct {
	screen *core.Screen
	x, y   int
	view   viewport
}

func (c fieldCanvas) set(col, row int, r rune, color core.Color) {
	if col < 0 || col >= c.view.cols || row < 0 || row >= c.view.rows {
		return
	}
	c.screen.SetColored(c.x+col, c.y+row, r, color)
}

// DrawGame renders a snapshot: the HUD, the boxed field with bubbles and
// paddle, and the start, game over or win panel.
// It panics on a state it does not know how to draw.
func DrawGame(s *core.Screen, title string, snap core.Snapshot) {
	if !snap.State.Valid() {
		panic(fmt.Sprintf("tui: cannot draw game state %d", int(snap.State)))
	}
	s.Clear()

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawTextCentered(s.Height()/2, "Terminal too small")
		return
	}

	drawHUD(s, title, snap)

	view := newViewport(snap.Field, s.Width()-2, s.Height()-hudRows-2)
	boxX := (s.Width() - view.cols - 2) / 2
	s.DrawBox(boxX, hudRows, view.cols+2, view.rows+2)
	canvas := fieldCanvas{screen: s, x: boxX + 1, y: hudRows + 1, view: view}

	for _, b := range snap.Bubbles {
		canvas.set(view.col(b.Location.X), view.row(b.Location.Y), bubbleRune, core.BubbleColor(b.Color))
	}
	drawPaddle(canvas, snap.Player)

	switch snap.State {
	case core.StateInitialized:
		drawPanel(s, []string{
			"B U B B L E   C A T C H",
			"",
			"Catch the bubbles in color order.",
			"A wrong color ends the run.",
			"",
			"Press any key to start",
		})
	case core.StateStarted:
	case core.StateGameOver:
		drawPanel(s, []string{
			"GAME OVER",
			"",
			fmt.Sprintf("Score: %d  Level: %d/%d", snap.Score, snap.Level+1, len(snap.Levels)),
			fmt.Sprintf("Levels cleared: %d", snap.LevelsCleared()),
			"",
			"Enter: play again  Esc: back",
		})
	case core.StateWon:
		drawPanel(s, []string{
			"YOU WIN!",
			"",
			fmt.Sprintf("All %d levels cleared", snap.LevelsCleared()),
			fmt.Sprintf("Score: %d", snap.Score),
			"",
			"Enter: play again  Esc: back",
		})
	}
}

// drawHUD writes the title, level and score on the first row and the
// "Catch this" strip with the required color's name on the second.
func drawHUD(s *core.Screen, title string, snap core.Snapshot) {
	s.DrawText(1, 0, title)

	status := fmt.Sprintf("Level %d/%d  Score %d", snap.Level+1, len(snap.Levels), snap.Score)
	s.DrawText(s.Width()-utf8.RuneCountInString(status)-1, 0, status)

	if snap.State != core.StateStarted {
		return
	}

	label := "Catch this: "
	s.DrawText(1, 1, label)
	x := 1 + utf8.RuneCountInString(label)
	for i := 0; i < snap.LevelColors(); i++ {
		color := core.BubbleColor(i)
		if i == snap.CurrentColor {
			s.Set(x, 1, '[')
			s.SetColored(x+1, 1, bubbleRune, color)
			s.Set(x+2, 1, ']')
		} else {
			s.SetColored(x+1, 1, bubbleRune, color)
		}
		x += 3
	}
	s.DrawText(x+1, 1, fmt.Sprintf("%d/%d  next: %s", snap.Caught, snap.LevelColors(), core.BubbleColorName(snap.CurrentColor)))
}

// drawPaddle fills every cell the paddle rectangle touches, at least one.
// A paddle resting on the right wall keeps its last column inside the field.
func drawPaddle(c fieldCanvas, p core.PlayerView) {
	r := p.Rect()
	lastCol, lastRow := c.view.cols-1, c.view.rows-1
	c0 := core.Clamp(c.view.col(r.X), 0, lastCol)
	r0 := core.Clamp(c.view.row(r.Y), 0, lastRow)
	c1 := core.Clamp(int(math.Ceil(r.Right()/c.view.scale))-1, c0, lastCol)
	r1 := core.Clamp(int(math.Ceil(r.Bottom()/(2*c.view.scale)))-1, r0, lastRow)

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			c.set(col, row, paddleRune, core.ColorSalmon)
		}
	}
}

// drawPanel draws a boxed message in the middle of the screen.
func drawPanel(s *core.Screen, lines []string) {
	width := 0
	for _, l := range lines {
		width = max(width, utf8.RuneCountInString(l))
	}
	width += 4
	height := len(lines) + 2

	x := (s.Width() - width) / 2
	y := (s.Height() - height) / 2
	s.DrawRect(x, y, width, height, ' ', core.ColorDefault)
	s.DrawBox(x, y, width, height)

	for i, l := range lines {
		lx := x + (width-utf8.RuneCountInString(l))/2
		s.DrawText(lx, y+1+i, l)
	}
}
