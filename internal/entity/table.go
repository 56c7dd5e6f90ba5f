package entity

const (
	Rows      = 5
	TopRow    = 0
	CenterRow = 2
	BottomRow = Rows - 1

	// ZoneWidth is the number of columns one 5x5 display window shows.
	ZoneWidth = 5

	MinTableWidth     = ZoneWidth
	DefaultTableWidth = 20
)

// Table is the fixed grid the puck travels on.
type Table struct {
	Width int
}

func NewTable(width int) Table {
	return Table{Width: width}
}

// GoalColumn - returns the column the given player defends.
func (that Table) GoalColumn(player Player) int {
	if player == Player1 {
		return that.Width - 1
	}

	return 0
}

// ServeColumn - returns the column one step in from the player's goal, where a served puck starts.
func (that Table) ServeColumn(player Player) int {
	if player == Player1 {
		return that.Width - 2
	}

	return 1
}

// Zone - returns the index of the 5-column display window that holds column x.
func (that Table) Zone(x int) int {
	return x / ZoneWidth
}

// IsGoalZone - reports whether column x lies in the given player's goal zone.
func (that Table) IsGoalZone(player Player, x int) bool {
	if player == Player1 {
		return x >= that.Width-ZoneWidth
	}

	return x < ZoneWidth
}

// ClampRow - keeps a row inside the table's rails.
func ClampRow(y int) int {
	switch {
	case y < TopRow:
		return TopRow
	case y > BottomRow:
		return BottomRow
	default:
		return y
	}
}
