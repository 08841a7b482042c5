package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Grid is the slot matrix plus whose turn it is.
// Row 0 is the bottom row, chips stack upwards from there.
type Grid struct {
	rows    int
	columns int
	turn    PlayerID
	lastRow int
	moves   int
	cells   [][]PlayerID
}

// NewGrid allocates an empty grid. Non-positive dimensions fall back to the
// standard 6x7 board and an unknown starting player falls back to Player1.
func NewGrid(rows, columns int, starting PlayerID) *Grid {
	if rows <= 0 {
		rows = Rows
	}
	if columns <= 0 {
		columns = Columns
	}
	if starting != Player1 && starting != Player2 {
		starting = Player1
	}

	cells := make([][]PlayerID, rows)
	for i := range cells {
		cells[i] = make([]PlayerID, columns)
	}

	return &Grid{
		rows:    rows,
		columns: columns,
		turn:    starting,
		lastRow: -1,
		cells:   cells,
	}
}

func NewDefaultGrid() *Grid {
	return NewGrid(Rows, Columns, Player1)
}

func (g *Grid) Rows() int      { return g.rows }
func (g *Grid) Columns() int   { return g.columns }
func (g *Grid) Turn() PlayerID { return g.turn }
func (g *Grid) MoveCount() int { return g.moves }

// LastRow reports the row of the most recent successful placement.
func (g *Grid) LastRow() (int, bool) {
	if g.lastRow < 0 {
		return 0, false
	}
	return g.lastRow, true
}

// Place drops a chip for the player to move into column. It returns false and
// leaves the grid untouched when the column does not exist or is full.
func (g *Grid) Place(column int) bool {
	if column < 0 || column >= g.columns {
		return false
	}

	// the chip falls to the lowest empty slot
	for row := 0; row < g.rows; row++ {
		if g.cells[row][column] == Empty {
			g.cells[row][column] = g.turn
			g.lastRow = row
			g.moves++
			g.turn = g.turn.Opponent()
			return true
		}
	}

	return false
}

// Get never fails: anything outside the grid reads as Empty.
func (g *Grid) Get(row, column int) PlayerID {
	if !g.IsValid(row, column) {
		return Empty
	}
	return g.cells[row][column]
}

func (g *Grid) IsValid(row, column int) bool {
	return row >= 0 && row < g.rows && column >= 0 && column < g.columns
}

// IsFull only needs the top row since chips always stack from the bottom.
func (g *Grid) IsFull() bool {
	top := g.cells[g.rows-1]
	for _, slot := range top {
		if slot == Empty {
			return false
		}
	}
	return true
}

// this creates a deep copy of the grid
func (g *Grid) Copy() *Grid {
	cells := make([][]PlayerID, len(g.cells))
	for i := range g.cells {
		cells[i] = make([]PlayerID, len(g.cells[i]))
		copy(cells[i], g.cells[i])
	}

	return &Grid{
		rows:    g.rows,
		columns: g.columns,
		turn:    g.turn,
		lastRow: g.lastRow,
		moves:   g.moves,
		cells:   cells,
	}
}

// ValidMoves lists the columns that can still take a chip, in ascending order.
func (g *Grid) ValidMoves() []int {
	validMoves := []int{}
	top := g.cells[g.rows-1]
	for col := 0; col < g.columns; col++ {
		if top[col] == Empty {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Equal compares dimensions, turn and slot contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.columns != other.columns || g.turn != other.turn {
		return false
	}
	for r := range g.cells {
		for c := range g.cells[r] {
			if g.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}

// Key hashes the turn and every slot. Two grids with the same Key are treated
// as the same position by the search cache.
func (g *Grid) Key() uint64 {
	buf := make([]byte, 0, 1+g.rows*g.columns)
	buf = append(buf, byte(g.turn))
	for _, row := range g.cells {
		for _, slot := range row {
			buf = append(buf, byte(slot))
		}
	}
	return xxhash.Sum64(buf)
}

// String dumps the grid top row first, X for Player1 and O for Player2.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := g.rows - 1; r >= 0; r-- {
		for c := 0; c < g.columns; c++ {
			switch g.cells[r][c] {
			case Player1:
				sb.WriteByte('X')
			case Player2:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseGrid is the inverse of String: rows top first, one line each, using
// '.', 'X' and 'O'. Chips are taken as given, gravity is not checked.
func ParseGrid(text string, turn PlayerID) (*Grid, error) {
	lines := strings.Fields(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("empty grid")
	}

	g := NewGrid(len(lines), len(lines[0]), turn)
	for i, line := range lines {
		if len(line) != g.columns {
			return nil, fmt.Errorf("row %d has %d slots, want %d", i, len(line), g.columns)
		}
		row := g.rows - 1 - i
		for column, ch := range line {
			switch ch {
			case 'X':
				g.cells[row][column] = Player1
			case 'O':
				g.cells[row][column] = Player2
			case '.':
				continue
			default:
				return nil, fmt.Errorf("unexpected %q at row %d column %d", ch, i, column)
			}
			g.moves++
		}
	}
	return g, nil
}
