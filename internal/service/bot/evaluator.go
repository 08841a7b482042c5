package bot

import (
	"github.com/iamasit07/findfour/internal/domain"
)

const (
	// WinningScore marks a decided position: positive when Player2 has four
	// in a row, negative when Player1 has.
	WinningScore = 100000
	// BestScore seeds the running best before any column is tried.
	BestScore = 99999
)

// Window is a run of ToWin collinear slots starting at (Row, Column).
type Window struct {
	Row         int
	Column      int
	DeltaRow    int
	DeltaColumn int
}

// Slots expands the window into its coordinates.
func (w Window) Slots() []domain.Coordinate {
	slots := make([]domain.Coordinate, domain.ToWin)
	for i := range slots {
		slots[i] = domain.Coordinate{Row: w.Row + i*w.DeltaRow, Column: w.Column + i*w.DeltaColumn}
	}
	return slots
}

// windowAxes drives the enumeration: every window starts on a row within
// [minRow, rows-1] and a column within [minColumn, columns-1-columnTrim], then
// walks (deltaRow, deltaColumn). Start rows are scanned from the top down.
var windowAxes = []struct {
	minRow, minColumn, columnTrim int
	deltaRow, deltaColumn         int
}{
	{domain.ToWin - 1, 0, 0, -1, 0},                 // vertical
	{0, 0, domain.ToWin - 1, 0, 1},                  // horizontal
	{domain.ToWin - 1, domain.ToWin - 1, 0, -1, -1}, // diagonal going down-left
	{domain.ToWin - 1, 0, domain.ToWin - 1, -1, 1},  // diagonal going down-right
}

// forEachWindow visits every window exactly once. Returning false stops it.
func forEachWindow(rows, columns int, visit func(Window) bool) {
	for _, axis := range windowAxes {
		for row := rows - 1; row >= axis.minRow; row-- {
			for column := axis.minColumn; column <= columns-1-axis.columnTrim; column++ {
				w := Window{Row: row, Column: column, DeltaRow: axis.deltaRow, DeltaColumn: axis.deltaColumn}
				if !visit(w) {
					return
				}
			}
		}
	}
}

// Windows lists every window on a rows x columns grid.
func Windows(rows, columns int) []Window {
	windows := []Window{}
	forEachWindow(rows, columns, func(w Window) bool {
		windows = append(windows, w)
		return true
	})
	return windows
}

// BoardScore is the static heuristic, from Player2's point of view.
//
// Any complete window ends the scan straight away with +/-WinningScore.
// Otherwise each window adds the number of Player2 chips it holds. Player1's
// partial lines are not subtracted: the computer plays for its own lines and
// only reacts to the opponent through the search.
func BoardScore(g *domain.Grid) int {
	points := 0
	decided := 0

	forEachWindow(g.Rows(), g.Columns(), func(w Window) bool {
		score := scoreWindow(g, w)
		if score == WinningScore || score == -WinningScore {
			decided = score
			return false
		}
		points += score
		return true
	})

	if decided != 0 {
		return decided
	}
	return points
}

func scoreWindow(g *domain.Grid, w Window) int {
	humanPoints, computerPoints := 0, 0

	row, column := w.Row, w.Column
	for i := 0; i < domain.ToWin; i++ {
		switch g.Get(row, column) {
		case domain.Player1:
			humanPoints++
		case domain.Player2:
			computerPoints++
		}
		row += w.DeltaRow
		column += w.DeltaColumn
	}

	if humanPoints == domain.ToWin {
		return -WinningScore
	}
	if computerPoints == domain.ToWin {
		return WinningScore
	}
	return computerPoints
}
