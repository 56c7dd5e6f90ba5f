package entity

import "github.com/rocketscienceinc/airhockey/internal/sensor"

// Striker is a player's paddle. Its column is fixed; its row follows the player's position sensor.
type Striker struct {
	Player Player
	Column int
	row    int
}

// NewStriker - creates the player's striker on its goal column, resting on the center row.
func NewStriker(table Table, player Player) *Striker {
	return &Striker{
		Player: player,
		Column: table.GoalColumn(player),
		row:    CenterRow,
	}
}

// IsPlayer1 - reports whether the striker's sensor uses the unmirrored row mapping.
func (that *Striker) IsPlayer1() bool {
	return that.Player == Player1
}

func (that *Striker) Row() int {
	return that.row
}

// Track - updates the row from a raw sensor angle and returns it.
func (that *Striker) Track(angle int) int {
	that.row = sensor.Row(angle, !that.IsPlayer1())

	return that.row
}
