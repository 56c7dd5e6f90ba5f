package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	tableLeft = 1
	tableTop  = 2

	glyphEmpty   = '·'
	glyphCenter  = '┆'
	glyphPuck    = '●'
	glyphStriker = '█'
	glyphBorder  = '─'
)

var (
	styleDefault  = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleZone     = tcell.StyleDefault.Foreground(tcell.ColorGray).Background(tcell.ColorDarkSlateGray)
	styleGoal     = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	stylePuck     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	stylePlayer1  = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	stylePlayer2  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHeadline = tcell.StyleDefault.Bold(true)
)

type canvas interface {
	Clear()
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Renderer draws the table on a terminal grid.
type Renderer struct {
	canvas canvas
}

func NewRenderer(canvas canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// RenderFrame - draws the score line, the table and both strikers with the puck.
// The 5-column window holding the puck is highlighted, and both goal zones are marked.
func (that *Renderer) RenderFrame(frame entity.Frame) {
	that.canvas.Clear()

	that.drawText(0, 0, styleHeadline, fmt.Sprintf("P2 %d : %d P1   game %d/%d   zone %d",
		frame.Score.Player2Wins, frame.Score.Player1Wins,
		frame.Score.GamesPlayed+1, frame.Score.GameCount, frame.Zone))

	width := frame.TableWidth
	that.drawBorder(tableTop-1, width)
	that.drawBorder(tableTop+entity.Rows, width)

	table := entity.NewTable(width)
	for y := range entity.Rows {
		for x := range width {
			glyph, style := glyphEmpty, styleDim
			if x == width/2 {
				glyph = glyphCenter
			}

			switch {
			case table.Zone(x) == frame.Zone:
				style = styleZone
			case table.IsGoalZone(entity.Player1, x) || table.IsGoalZone(entity.Player2, x):
				style = styleGoal
			}

			that.canvas.SetContent(tableLeft+x, tableTop+y, glyph, nil, style)
		}
	}

	that.canvas.SetContent(tableLeft+table.GoalColumn(entity.Player2), tableTop+frame.Striker2Row, glyphStriker, nil, stylePlayer2)
	that.canvas.SetContent(tableLeft+table.GoalColumn(entity.Player1), tableTop+frame.Striker1Row, glyphStriker, nil, stylePlayer1)

	if frame.PuckX >= 0 && frame.PuckX < width {
		that.canvas.SetContent(tableLeft+frame.PuckX, tableTop+frame.PuckY, glyphPuck, nil, stylePuck)
	}

	that.canvas.Show()
}

// RenderMenu - draws the value currently selected during setup.
func (that *Renderer) RenderMenu(menu entity.Menu) {
	that.canvas.Clear()

	var title string
	switch menu.Kind {
	case entity.MenuPlayerCount:
		title = "players"
	case entity.MenuGameCount:
		title = "games"
	default:
		title = string(menu.Kind)
	}

	that.drawText(0, 0, styleHeadline, "AIR HOCKEY")
	that.drawText(0, 2, styleDefault, fmt.Sprintf("%s: %d", title, menu.Value))
	that.drawText(0, 4, styleDim, "turn with up/down, strike to confirm, q to quit")

	that.canvas.Show()
}

func (that *Renderer) drawBorder(y, width int) {
	for x := range width {
		that.canvas.SetContent(tableLeft+x, y, glyphBorder, nil, styleDim)
	}
}

func (that *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		that.canvas.SetContent(x+i, y, r, nil, style)
	}
}
