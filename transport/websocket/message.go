package websocket

import "github.com/rocketscienceinc/airhockey/internal/entity"

const (
	TypeFrame = "frame"
	TypeMenu  = "menu"
	TypeTone  = "tone"
)

// Message is one event pushed to spectators.
type Message struct {
	Type  string        `json:"type"`
	Frame *entity.Frame `json:"frame,omitempty"`
	Menu  *entity.Menu  `json:"menu,omitempty"`
	Tone  *entity.Tone  `json:"tone,omitempty"`
}
