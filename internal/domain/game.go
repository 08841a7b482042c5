package domain

// Game ties a grid to the rules: who won, and whether it ended in a tie.
type Game struct {
	Grid         *Grid
	Status       GameStatus
	Winner       PlayerID
	WinningSlots []Coordinate
}

// MoveResult describes one successful drop.
type MoveResult struct {
	Player       PlayerID     `json:"player"`
	Row          int          `json:"row"`
	Column       int          `json:"column"`
	Win          bool         `json:"win"`
	WinningSlots []Coordinate `json:"winning_slots,omitempty"`
	Draw         bool         `json:"draw"`
}

func NewGame(rows, columns int) *Game {
	return &Game{
		Grid:   NewGrid(rows, columns, Player1),
		Status: StatusActive,
		Winner: Empty,
	}
}

func (g *Game) MakeMove(column int) (MoveResult, error) {
	if g.Status != StatusActive {
		return MoveResult{}, ErrGameOver
	}

	if column < 0 || column >= g.Grid.Columns() {
		return MoveResult{}, ErrInvalidMove
	}

	player := g.Grid.Turn()
	if !g.Grid.Place(column) {
		return MoveResult{}, ErrColumnFull
	}
	row, _ := g.Grid.LastRow()

	result := MoveResult{Player: player, Row: row, Column: column}

	// a winning last chip beats a full board
	if check := CheckWinPosition(g.Grid, row, column); check.Win {
		g.Status = StatusWon
		g.Winner = player
		g.WinningSlots = check.Slots
		result.Win = true
		result.WinningSlots = check.Slots
		return result, nil
	}

	if g.Grid.IsFull() {
		g.Status = StatusDraw
		result.Draw = true
	}

	return result, nil
}

// EndInDraw finishes the game as a tie, for when no legal move is left.
func (g *Game) EndInDraw() {
	if g.Status == StatusActive {
		g.Status = StatusDraw
	}
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
