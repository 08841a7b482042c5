package domain

// Coordinate locates a single slot.
type Coordinate struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// WinCheckResult is recomputed per query and never stored.
type WinCheckResult struct {
	Win   bool
	Slots []Coordinate
}

// one delta per axis: vertical, horizontal, diagonal / and diagonal \
var checkDeltas = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

// each axis is walked forwards and then backwards from the placed slot
var deltaMultipliers = [2]int{1, -1}

// CheckWinPosition reports whether the chip at (row, column) completes a line
// of ToWin. On a win Slots holds the ToWin-1 matching neighbours found on the
// winning axis followed by the origin itself.
func CheckWinPosition(g *Grid, row, column int) WinCheckResult {
	searchValue := g.Get(row, column)
	if searchValue == Empty {
		return WinCheckResult{Slots: []Coordinate{}}
	}

	for _, delta := range checkDeltas {
		consecutive := 1
		slots := make([]Coordinate, 0, ToWin)

		for _, multiplier := range deltaMultipliers {
			deltaRow, deltaColumn := delta[0]*multiplier, delta[1]*multiplier
			nextRow, nextColumn := row+deltaRow, column+deltaColumn

			for g.IsValid(nextRow, nextColumn) && g.Get(nextRow, nextColumn) == searchValue {
				consecutive++
				slots = append(slots, Coordinate{Row: nextRow, Column: nextColumn})

				if consecutive == ToWin {
					slots = append(slots, Coordinate{Row: row, Column: column})
					return WinCheckResult{Win: true, Slots: slots}
				}

				nextRow += deltaRow
				nextColumn += deltaColumn
			}
		}
	}

	return WinCheckResult{Slots: []Coordinate{}}
}
