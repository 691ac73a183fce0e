package entity

// Cell is the content of one square of the board. The zero value is EmptyCell.
type Cell uint8

const (
	EmptyCell Cell = iota
	PlayerX
	PlayerO
)

func (that Cell) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return ""
	}
}

// Valid reports whether the value is one of the three cell states.
func (that Cell) Valid() bool {
	return that <= PlayerO
}

// IsPlayer reports whether the cell holds a player token.
func (that Cell) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's token. EmptyCell has no opponent.
func (that Cell) Opponent() Cell {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}
