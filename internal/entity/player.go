package entity

import "fmt"

// Player identifies one side of the table.
type Player uint8

const (
	PlayerNone Player = iota
	Player1
	Player2
)

// Opponent - returns the player on the other side of the table.
func (that Player) Opponent() Player {
	switch that {
	case Player1:
		return Player2
	case Player2:
		return Player1
	default:
		return PlayerNone
	}
}

func (that Player) String() string {
	switch that {
	case PlayerNone:
		return "none"
	case Player1:
		return "player1"
	case Player2:
		return "player2"
	default:
		return fmt.Sprintf("player(%d)", uint8(that))
	}
}
