package terminal

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	knobStep = 30
	knobMax  = 90
	fullTurn = 360
)

// Input emulates the two rotary sensors and the buttons with the keyboard.
// Player 1 turns its knob with the arrow keys, player 2 with w/s; space or enter strikes; q, esc or ctrl-c quits.
type Input struct {
	mu     sync.Mutex
	angles [2]int
	strike bool
	quit   bool
}

func NewInput() *Input {
	return &Input{}
}

// HandleEvent - applies one terminal event to the knob and button state.
func (that *Input) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	that.mu.Lock()
	defer that.mu.Unlock()

	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		that.quit = true
	case tcell.KeyEnter:
		that.strike = true
	case tcell.KeyUp:
		that.turn(entity.Player1, knobStep)
	case tcell.KeyDown:
		that.turn(entity.Player1, -knobStep)
	case tcell.KeyRune:
		switch key.Rune() {
		case 'q', 'Q':
			that.quit = true
		case ' ':
			that.strike = true
		// player 2's sensor is mounted the other way round, so "up" turns it negative
		case 'w', 'W':
			that.turn(entity.Player2, -knobStep)
		case 's', 'S':
			that.turn(entity.Player2, knobStep)
		}
	}
}

func (that *Input) turn(player entity.Player, delta int) {
	i := knobIndex(player)

	angle := that.angles[i] + delta
	angle = max(-knobMax, min(knobMax, angle))
	that.angles[i] = angle
}

// StrikerAngle - returns the knob position as a raw reading in [0, 360).
func (that *Input) StrikerAngle(player entity.Player) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return (that.angles[knobIndex(player)] + fullTurn) % fullTurn
}

// IsQuitPressed - quit stays asserted once pressed.
func (that *Input) IsQuitPressed() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.quit
}

// IsStrikePressed - reports a strike press since the last call.
func (that *Input) IsStrikePressed() bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	pressed := that.strike
	that.strike = false

	return pressed
}

func knobIndex(player entity.Player) int {
	if player == entity.Player2 {
		return 1
	}

	return 0
}
