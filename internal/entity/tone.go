package entity

import "time"

// Tone is a beep handed to the sound collaborator. Pause is how long play waits after it.
type Tone struct {
	Frequency int           `json:"frequency"`
	Duration  time.Duration `json:"duration"`
	Pause     time.Duration `json:"pause,omitempty"`
}

var (
	StrikeTone  = Tone{Frequency: 1000, Duration: 100 * time.Millisecond}
	ConfirmTone = Tone{Frequency: 1000, Duration: 200 * time.Millisecond}

	LossTones = []Tone{
		{Frequency: 400, Duration: 200 * time.Millisecond, Pause: 300 * time.Millisecond},
		{Frequency: 200, Duration: 200 * time.Millisecond, Pause: 300 * time.Millisecond},
	}
)

// BlockTone - returns the cue played when the player's striker turns the puck away.
func BlockTone(player Player) Tone {
	if player == Player1 {
		return Tone{Frequency: 500, Duration: 100 * time.Millisecond}
	}

	return Tone{Frequency: 700, Duration: 100 * time.Millisecond}
}
