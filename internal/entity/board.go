package entity

// Cell is the content of a single board square.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

const BoardSize = 3

func (that Cell) String() string {
	switch that {
	case CellX:
		return "X"
	case CellO:
		return "O"
	default:
		return " "
	}
}

// Player - reports which side occupies the cell, ok is false for an empty cell.
func (that Cell) Player() (Player, bool) {
	if that == EmptyCell {
		return 0, false
	}
	return Player(that), true
}

// Position addresses a cell by row and column, both in 0..2.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board is a plain value: copying it copies the whole grid.
type Board [BoardSize][BoardSize]Cell

func NewBoard() Board {
	return Board{}
}

func (that *Board) IsValid(pos Position) bool {
	return pos.Row >= 0 && pos.Row < BoardSize && pos.Col >= 0 && pos.Col < BoardSize
}

func (that *Board) Get(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, cell Cell) {
	that[pos.Row][pos.Col] = cell
}

// Count - number of cells holding the player's mark.
func (that *Board) Count(player Player) int {
	count := 0
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == player.Cell() {
				count++
			}
		}
	}
	return count
}

// EmptyCells - returns free cells in row-major order. The order drives the search tie-break.
func (that *Board) EmptyCells() []Position {
	cells := make([]Position, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				cells = append(cells, Position{Row: row, Col: col})
			}
		}
	}
	return cells
}

// Outcome - derives the result from cell contents only: rows, columns, diagonals, then draw.
func (that *Board) Outcome() Outcome {
	for row := range BoardSize {
		if winner, ok := that.line(Position{row, 0}, Position{row, 1}, Position{row, 2}); ok {
			return Win(winner)
		}
	}

	for col := range BoardSize {
		if winner, ok := that.line(Position{0, col}, Position{1, col}, Position{2, col}); ok {
			return Win(winner)
		}
	}

	if winner, ok := that.line(Position{0, 0}, Position{1, 1}, Position{2, 2}); ok {
		return Win(winner)
	}
	if winner, ok := that.line(Position{0, 2}, Position{1, 1}, Position{2, 0}); ok {
		return Win(winner)
	}

	for row := range BoardSize {
		for col := range BoardSize {
			if that[row][col] == EmptyCell {
				return InProgress()
			}
		}
	}

	return Draw()
}

func (that *Board) line(a, b, c Position) (Player, bool) {
	first := that.Get(a)
	if first == EmptyCell || first != that.Get(b) || first != that.Get(c) {
		return 0, false
	}
	return first.Player()
}
