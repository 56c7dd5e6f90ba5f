// Package terminal plays the game in a text terminal: the keyboard stands in for the sensors and buttons.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Screen owns the terminal for the lifetime of a session.
type Screen struct {
	tcell.Screen
}

func NewScreen() (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}

	if err = screen.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}

	screen.HideCursor()
	screen.Clear()

	return &Screen{Screen: screen}, nil
}

// Listen - feeds terminal events to the input until the screen is finalized.
func (that *Screen) Listen(input *Input) {
	go func() {
		for {
			ev := that.PollEvent()
			if ev == nil {
				return
			}

			input.HandleEvent(ev)
		}
	}()
}

func (that *Screen) Close() {
	that.Fini()
}
