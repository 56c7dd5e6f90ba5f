package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPuck_Move(t *testing.T) {
	t.Run("Neutral puck stays put", func(t *testing.T) {
		// Given: a docked puck
		puck := &Puck{X: 3, Y: 2, Direction: Neutral}

		// When: it moves
		puck.Move()

		// Then: nothing changes
		require.Equal(t, &Puck{X: 3, Y: 2, Direction: Neutral}, puck)
	})

	t.Run("Every heading steps by its vector and stays inside the rails", func(t *testing.T) {
		for _, dir := range []Direction{UpLeft, Left, DownLeft, UpRight, Right, DownRight} {
			for y := TopRow; y <= BottomRow; y++ {
				// Given: a free puck on row y
				puck := &Puck{X: 10, Y: y, Direction: dir}

				// When: it moves once
				puck.Move()

				// Then: x moved by dx and y by dy, clamped to the table
				step := dir.Vector()
				assert.Equal(t, 10+step.DX, puck.X, "dir %s y %d", dir, y)
				assert.Equal(t, ClampRow(y+step.DY), puck.Y, "dir %s y %d", dir, y)
				assert.GreaterOrEqual(t, puck.Y, TopRow)
				assert.LessOrEqual(t, puck.Y, BottomRow)
			}
		}
	})

	t.Run("Moving into the top rail bounces downward", func(t *testing.T) {
		// Given: a puck one row below the top rail heading up-left
		puck := &Puck{X: 5, Y: 1, Direction: UpLeft}

		// When: it reaches the rail
		puck.Move()

		// Then: it keeps heading left but now downward
		assert.Equal(t, 4, puck.X)
		assert.Equal(t, 0, puck.Y)
		assert.Equal(t, DownLeft, puck.Direction)
	})

	t.Run("Up-left on the top rail bounces to down-left", func(t *testing.T) {
		// Given: a puck on the top rail heading up-left
		puck := &Puck{X: 5, Y: 0, Direction: UpLeft}

		// When: it moves
		puck.Move()

		// Then: the row is clamped and the heading is reflected
		assert.Equal(t, 0, puck.Y)
		assert.Equal(t, DownLeft, puck.Direction)
	})

	t.Run("Down-right on the bottom rail bounces to up-right", func(t *testing.T) {
		// Given: a puck on the bottom rail heading down-right
		puck := &Puck{X: 5, Y: 4, Direction: DownRight}

		// When: it moves
		puck.Move()

		// Then: the heading is reflected upward
		assert.Equal(t, 6, puck.X)
		assert.Equal(t, 4, puck.Y)
		assert.Equal(t, UpRight, puck.Direction)
	})

	t.Run("Straight headings never bounce", func(t *testing.T) {
		for _, dir := range []Direction{Left, Right} {
			for _, y := range []int{TopRow, CenterRow, BottomRow} {
				puck := &Puck{X: 8, Y: y, Direction: dir}

				puck.Move()

				assert.Equal(t, dir, puck.Direction)
				assert.Equal(t, y, puck.Y)
			}
		}
	})

	t.Run("Up-right near the goal without touching a rail", func(t *testing.T) {
		// Given: a 20 wide table and a puck at (18, 2) heading up-right
		puck := &Puck{X: 18, Y: 2, Direction: UpRight}

		// When: it moves
		puck.Move()

		// Then: it sits at (19, 1) and still heads up-right
		assert.Equal(t, &Puck{X: 19, Y: 1, Direction: UpRight}, puck)
	})
}

func TestPuck_PredictNextY(t *testing.T) {
	cases := []struct {
		name string
		y    int
		dir  Direction
		want int
	}{
		{name: "left keeps row", y: 3, dir: Left, want: 3},
		{name: "up-left rises", y: 2, dir: UpLeft, want: 1},
		{name: "down-left falls", y: 2, dir: DownLeft, want: 3},
		{name: "down-left from top rail", y: 0, dir: DownLeft, want: 1},
		{name: "up-left from bottom rail", y: 4, dir: UpLeft, want: 3},
		{name: "clamped at the top", y: 0, dir: UpLeft, want: 0},
		{name: "clamped at the bottom", y: 4, dir: DownRight, want: 4},
		{name: "neutral keeps row", y: 1, dir: Neutral, want: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			puck := &Puck{X: 1, Y: tc.y, Direction: tc.dir}

			got := puck.PredictNextY()

			// Then: the prediction matches and the puck is untouched
			assert.Equal(t, tc.want, got)
			assert.Equal(t, &Puck{X: 1, Y: tc.y, Direction: tc.dir}, puck)
		})
	}
}

func TestPuck_Follow(t *testing.T) {
	t.Run("Attached puck tracks its striker", func(t *testing.T) {
		// Given: a puck docked to player 2
		puck := NewServedPuck(NewTable(20), Player2)
		rows := map[Player]int{Player1: 0, Player2: 4}

		// When: the striker moves
		puck.Follow(func(p Player) int { return rows[p] })

		// Then: the puck sits on player 2's row and is held still
		assert.Equal(t, 4, puck.Y)
		assert.Equal(t, Neutral, puck.Direction)
		assert.Equal(t, 1, puck.X)
	})

	t.Run("Free puck is not touched", func(t *testing.T) {
		puck := &Puck{X: 7, Y: 1, Direction: Right}

		puck.Follow(func(Player) int { return 4 })

		assert.Equal(t, &Puck{X: 7, Y: 1, Direction: Right}, puck)
	})
}

func TestPuck_Release(t *testing.T) {
	// Given: a puck served by player 1
	puck := NewServedPuck(NewTable(20), Player1)
	require.True(t, puck.IsAttached())
	assert.Equal(t, 18, puck.X)
	assert.Equal(t, CenterRow, puck.Y)

	// When: it is released
	puck.Release(UpLeft)

	// Then: it is free and heading out
	assert.False(t, puck.IsAttached())
	assert.Equal(t, UpLeft, puck.Direction)

	player, attached := puck.Attachment.Player()
	assert.False(t, attached)
	assert.Equal(t, PlayerNone, player)
}
