package entity

import "fmt"

// Direction is one of the seven unit headings a puck can travel in.
type Direction uint8

const (
	Neutral Direction = iota
	UpLeft
	Left
	DownLeft
	UpRight
	Right
	DownRight
)

// Vector is a unit step on the grid.
type Vector struct {
	DX, DY int
}

var directionVectors = [...]Vector{
	Neutral:   {0, 0},
	UpLeft:    {-1, -1},
	Left:      {-1, 0},
	DownLeft:  {-1, 1},
	UpRight:   {1, -1},
	Right:     {1, 0},
	DownRight: {1, 1},
}

var (
	LeftwardDirections  = [3]Direction{UpLeft, Left, DownLeft}
	RightwardDirections = [3]Direction{UpRight, Right, DownRight}
)

// Vector - returns the unit step of the direction.
func (that Direction) Vector() Vector {
	if int(that) >= len(directionVectors) {
		return Vector{}
	}

	return directionVectors[that]
}

// IsLeftward - reports whether the direction heads towards column 0.
func (that Direction) IsLeftward() bool {
	return that.Vector().DX < 0
}

// IsRightward - reports whether the direction heads towards the last column.
func (that Direction) IsRightward() bool {
	return that.Vector().DX > 0
}

// Reflect - returns the direction after bouncing off the rail at row y.
// Only the vertical component flips; the heading towards a goal is kept.
func (that Direction) Reflect(y int) Direction {
	switch {
	case y == TopRow && that == UpLeft:
		return DownLeft
	case y == TopRow && that == UpRight:
		return DownRight
	case y == BottomRow && that == DownLeft:
		return UpLeft
	case y == BottomRow && that == DownRight:
		return UpRight
	default:
		return that
	}
}

// OutwardDirections - returns the three headings a player hits the puck with.
// Player 1 defends the last column, so its shots travel leftward; player 2 shoots rightward.
func OutwardDirections(player Player) [3]Direction {
	if player == Player1 {
		return LeftwardDirections
	}

	return RightwardDirections
}

func (that Direction) String() string {
	switch that {
	case Neutral:
		return "neutral"
	case UpLeft:
		return "up-left"
	case Left:
		return "left"
	case DownLeft:
		return "down-left"
	case UpRight:
		return "up-right"
	case Right:
		return "right"
	case DownRight:
		return "down-right"
	default:
		return fmt.Sprintf("direction(%d)", uint8(that))
	}
}
