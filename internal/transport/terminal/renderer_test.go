package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

type cell struct {
	glyph rune
	style tcell.Style
}

type fakeCanvas struct {
	cells map[[2]int]cell
	shown int
}

func newFakeCanvas() *fakeCanvas {
	return &fakeCanvas{cells: make(map[[2]int]cell)}
}

func (that *fakeCanvas) Clear() {
	that.cells = make(map[[2]int]cell)
}

func (that *fakeCanvas) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	that.cells[[2]int{x, y}] = cell{glyph: primary, style: style}
}

func (that *fakeCanvas) Show() {
	that.shown++
}

func (that *fakeCanvas) line(y, width int) string {
	var b strings.Builder
	for x := range width {
		if c, ok := that.cells[[2]int{x, y}]; ok {
			b.WriteRune(c.glyph)
		} else {
			b.WriteRune(' ')
		}
	}

	return strings.TrimRight(b.String(), " ")
}

func TestRenderer_RenderFrame(t *testing.T) {
	// Given: a frame with the puck in the last window
	canvas := newFakeCanvas()
	renderer := NewRenderer(canvas)

	frame := entity.Frame{
		Striker1Row: 1,
		Striker2Row: 4,
		PuckX:       17,
		PuckY:       3,
		Zone:        3,
		TableWidth:  20,
		Score:       entity.Score{GamesPlayed: 1, GameCount: 3, Player1Wins: 1},
	}

	// When: it is rendered
	renderer.RenderFrame(frame)

	// Then: strikers and puck are drawn on their cells and the frame is shown once
	require.Equal(t, 1, canvas.shown)
	assert.Equal(t, glyphStriker, canvas.cells[[2]int{tableLeft + 19, tableTop + 1}].glyph)
	assert.Equal(t, stylePlayer1, canvas.cells[[2]int{tableLeft + 19, tableTop + 1}].style)
	assert.Equal(t, glyphStriker, canvas.cells[[2]int{tableLeft, tableTop + 4}].glyph)
	assert.Equal(t, glyphPuck, canvas.cells[[2]int{tableLeft + 17, tableTop + 3}].glyph)
	assert.Equal(t, glyphCenter, canvas.cells[[2]int{tableLeft + 10, tableTop}].glyph)

	// Then: the puck's window is highlighted and the rest is not
	assert.Equal(t, styleZone, canvas.cells[[2]int{tableLeft + 15, tableTop}].style)
	assert.Equal(t, styleDim, canvas.cells[[2]int{tableLeft + 14, tableTop}].style)

	// Then: the goal zone outside the window is marked
	assert.Equal(t, styleGoal, canvas.cells[[2]int{tableLeft + 1, tableTop + 2}].style)
	assert.Equal(t, styleDim, canvas.cells[[2]int{tableLeft + 5, tableTop + 2}].style)

	assert.Equal(t, "P2 0 : 1 P1   game 2/3   zone 3", canvas.line(0, 60))
}

func TestRenderer_RenderMenu(t *testing.T) {
	canvas := newFakeCanvas()
	renderer := NewRenderer(canvas)

	renderer.RenderMenu(entity.Menu{Kind: entity.MenuGameCount, Value: 5})

	assert.Equal(t, "AIR HOCKEY", canvas.line(0, 40))
	assert.Equal(t, "games: 5", canvas.line(2, 40))
	assert.Equal(t, 1, canvas.shown)
}
