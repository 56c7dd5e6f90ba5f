package audio

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/airhockey/internal/entity"
)

func TestToneStreamer(t *testing.T) {
	// Given: a 100ms strike tone
	rate := beep.SampleRate(8000)

	// When: it is turned into a stream
	streamer, err := toneStreamer(rate, entity.StrikeTone)
	require.NoError(t, err)

	// Then: it yields exactly the samples of its duration, all within [-1, 1]
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := streamer.Stream(buf)
		for _, sample := range buf[:n] {
			assert.LessOrEqual(t, sample[0], 1.0)
			assert.GreaterOrEqual(t, sample[0], -1.0)
		}
		total += n

		if !ok || n == 0 {
			break
		}
	}

	assert.Equal(t, rate.N(100*time.Millisecond), total)
}

func TestToneStreamer_AboveNyquist(t *testing.T) {
	_, err := toneStreamer(beep.SampleRate(1000), entity.Tone{Frequency: 700, Duration: time.Millisecond})

	require.Error(t, err)
}

func TestPlayer_SilentUntilInitialized(t *testing.T) {
	player := NewPlayer(slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.NotPanics(t, func() {
		player.PlayTone(entity.StrikeTone)
		player.Close()
	})
}
