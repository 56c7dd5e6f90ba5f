// Package audio plays the game's beeps through the system speaker.
package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

const (
	sampleRate = beep.SampleRate(44100)
	bufferSize = 100 * time.Millisecond
)

// Player turns tones into sine beeps. Until Initialize succeeds it stays silent.
type Player struct {
	logger *slog.Logger

	mu          sync.Mutex
	initialized bool
}

func NewPlayer(logger *slog.Logger) *Player {
	return &Player{logger: logger.With("component", "audio")}
}

// Initialize - opens the speaker.
func (that *Player) Initialize() error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(bufferSize)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	that.initialized = true

	return nil
}

// PlayTone - starts the beep and returns at once.
func (that *Player) PlayTone(tone entity.Tone) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	streamer, err := toneStreamer(sampleRate, tone)
	if err != nil {
		that.logger.Error("could not build tone", "frequency", tone.Frequency, "error", err)
		return
	}

	speaker.Play(streamer)
}

func (that *Player) Close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if !that.initialized {
		return
	}

	speaker.Clear()
	speaker.Close()
	that.initialized = false
}

func toneStreamer(rate beep.SampleRate, tone entity.Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, float64(tone.Frequency))
	if err != nil {
		return nil, err
	}

	return beep.Take(rate.N(tone.Duration), sine), nil
}
