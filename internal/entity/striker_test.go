package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStriker_Track(t *testing.T) {
	table := NewTable(20)

	t.Run("Player 1 maps a 50 degree reading to the top row", func(t *testing.T) {
		striker := NewStriker(table, Player1)
		assert.Equal(t, CenterRow, striker.Row())

		assert.Equal(t, 0, striker.Track(50))
		assert.Equal(t, 0, striker.Row())
		assert.Equal(t, 19, striker.Column)
	})

	t.Run("Player 2 is mirrored", func(t *testing.T) {
		striker := NewStriker(table, Player2)

		assert.Equal(t, 4, striker.Track(50))
		assert.Equal(t, 0, striker.Column)
	})
}
