// Package transport holds the collaborators that carry frames and tones out of the game.
package transport

import "github.com/rocketscienceinc/airhockey/internal/entity"

type Renderer interface {
	RenderFrame(frame entity.Frame)
	RenderMenu(menu entity.Menu)
}

type TonePlayer interface {
	PlayTone(tone entity.Tone)
}

// Renderers - fans every frame out to all renderers in order.
type Renderers []Renderer

func (that Renderers) RenderFrame(frame entity.Frame) {
	for _, r := range that {
		r.RenderFrame(frame)
	}
}

func (that Renderers) RenderMenu(menu entity.Menu) {
	for _, r := range that {
		r.RenderMenu(menu)
	}
}

// TonePlayers - fans every tone out to all players in order.
type TonePlayers []TonePlayer

func (that TonePlayers) PlayTone(tone entity.Tone) {
	for _, p := range that {
		p.PlayTone(tone)
	}
}
