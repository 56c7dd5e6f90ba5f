// Package sensor maps rotary position readings onto table rows.
package sensor

import "math"

const (
	fullTurn = 360
	halfTurn = 180

	rowCount = 5
)

// bucket covers the inclusive angle range [lower, upper].
type bucket struct {
	lower, upper int
	row          int
}

// buckets is ordered from the top rail to the bottom rail and covers every angle.
var buckets = [...]bucket{
	{lower: 46, upper: math.MaxInt, row: 0},
	{lower: 16, upper: 45, row: 1},
	{lower: -15, upper: 15, row: 2},
	{lower: -45, upper: -16, row: 3},
	{lower: math.MinInt, upper: -46, row: 4},
}

// Normalize - folds a raw reading in [0, 360) onto (-180, 180].
func Normalize(raw int) int {
	if raw > halfTurn {
		return raw - fullTurn
	}

	return raw
}

// Row - returns the table row for a raw sensor angle.
// Player 2's sensor faces the opposite way, so its rows are mirrored around the center line.
func Row(raw int, mirrored bool) int {
	angle := Normalize(raw)

	row := 0
	for _, b := range buckets {
		if angle >= b.lower && angle <= b.upper {
			row = b.row
			break
		}
	}

	if mirrored {
		return rowCount - 1 - row
	}

	return row
}
