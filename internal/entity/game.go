package entity

import "fmt"

const BoardSize = 3

const (
	StatusInProgress Status = iota
	StatusWon
	StatusTied
)

// Status is the terminal state of a game.
type Status uint8

func (that Status) String() string {
	switch that {
	case StatusWon:
		return "won"
	case StatusTied:
		return "tied"
	default:
		return "in progress"
	}
}

// Position addresses a cell by row and column.
type Position struct {
	Row int
	Col int
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Lines - the 8 winning triples: 3 rows, 3 columns and 2 diagonals.
var Lines = [8][3]Position{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. The zero value is an empty board.
type Board [BoardSize][BoardSize]Cell

// At returns the cell at pos. The position must be in bounds.
func (that Board) At(pos Position) Cell {
	return that[pos.Row][pos.Col]
}

func (that *Board) Set(pos Position, cell Cell) {
	that[pos.Row][pos.Col] = cell
}

// HasLine reports whether token occupies a complete line. Always false for EmptyCell.
func (that Board) HasLine(token Cell) bool {
	if !token.IsPlayer() {
		return false
	}

	for _, line := range Lines {
		if that.At(line[0]) == token && that.At(line[1]) == token && that.At(line[2]) == token {
			return true
		}
	}

	return false
}

func (that Board) IsFull() bool {
	return that.Count(EmptyCell) == 0
}

func (that Board) Count(cell Cell) int {
	count := 0
	for _, row := range that {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}

	return count
}

// Outcome is the game's terminal state. Winner is set only when Status is StatusWon.
type Outcome struct {
	Status Status
	Winner Cell
}

func InProgress() Outcome {
	return Outcome{Status: StatusInProgress}
}

func Win(player Cell) Outcome {
	return Outcome{Status: StatusWon, Winner: player}
}

func Tie() Outcome {
	return Outcome{Status: StatusTied}
}

func (that Outcome) IsTerminal() bool {
	return that.Status != StatusInProgress
}

func (that Outcome) String() string {
	if that.Status == StatusWon {
		return fmt.Sprintf("won by %s", that.Winner)
	}

	return that.Status.String()
}
