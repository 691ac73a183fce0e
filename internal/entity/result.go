package entity

const (
	ResultRejected ResultKind = iota
	ResultContinued
	ResultWon
	ResultTied
)

// ResultKind tags the result of a single move.
type ResultKind uint8

func (that ResultKind) String() string {
	switch that {
	case ResultContinued:
		return "continued"
	case ResultWon:
		return "won"
	case ResultTied:
		return "tied"
	default:
		return "rejected"
	}
}

// Result describes what a move did. Mover is the player who placed the token,
// captured before the turn passes.
type Result struct {
	Kind     ResultKind
	Mover    Cell
	Position Position
}

func (that Result) Accepted() bool {
	return that.Kind != ResultRejected
}

func (that Result) IsTerminal() bool {
	return that.Kind == ResultWon || that.Kind == ResultTied
}

// Winner returns the mover for a winning move and EmptyCell otherwise.
func (that Result) Winner() Cell {
	if that.Kind == ResultWon {
		return that.Mover
	}

	return EmptyCell
}

// Turn is a move as seen by the presentation layer.
type Turn struct {
	RoundID string
	Result  Result
	// Board is the board right after the move, before any reset.
	Board Board
	// Next is the player to move now.
	Next Cell
}

// Snapshot is the current state of a session's round.
type Snapshot struct {
	RoundID string
	Board   Board
	Turn    Cell
	Outcome Outcome
}

// Score is the running tally of finished rounds in the current process.
type Score struct {
	XWins  int
	OWins  int
	Ties   int
	Rounds int
}

func (that *Score) Record(result Result) {
	switch result.Kind {
	case ResultWon:
		if result.Mover == PlayerX {
			that.XWins++
		} else {
			that.OWins++
		}
	case ResultTied:
		that.Ties++
	default:
		return
	}

	that.Rounds++
}
