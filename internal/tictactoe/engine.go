package tictactoe

import (
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

// Engine owns the board, the player to move and the cached outcome of one game.
// It is not safe for concurrent use.
type Engine struct {
	board   entity.Board
	current entity.Cell
	outcome entity.Outcome
}

// NewEngine - returns an engine with an empty board and X to move.
func NewEngine() *Engine {
	engine := &Engine{}
	engine.ResetGame()

	return engine
}

// IsLegal reports whether (row, col) is on the board and empty. Any int is accepted.
func (that *Engine) IsLegal(row, col int) bool {
	pos := entity.Position{Row: row, Col: col}
	if !pos.InBounds() {
		return false
	}

	return that.board.At(pos) == entity.EmptyCell
}

// MakeMove places the current player's token at (row, col) and reports whether it did.
// An illegal target leaves the engine untouched. The turn does not pass.
func (that *Engine) MakeMove(row, col int) bool {
	if !that.IsLegal(row, col) {
		return false
	}

	that.board.Set(entity.Position{Row: row, Col: col}, that.current)

	// a terminal outcome sticks until ResetGame
	if !that.outcome.IsTerminal() {
		that.outcome = that.evaluate()
	}

	return true
}

// CheckWin reports whether the current player occupies a complete line.
func (that *Engine) CheckWin() bool {
	return that.board.HasLine(that.current)
}

// IsTie reports whether the board is full and the current player has no line.
func (that *Engine) IsTie() bool {
	return that.board.IsFull() && !that.CheckWin()
}

func (that *Engine) ChangePlayer() {
	that.current = that.current.Opponent()
}

func (that *Engine) ResetGame() {
	that.board = entity.Board{}
	that.current = entity.PlayerX
	that.outcome = entity.InProgress()
}

func (that *Engine) CurrentPlayer() entity.Cell {
	return that.current
}

// Board returns a copy of the grid.
func (that *Engine) Board() entity.Board {
	return that.board
}

func (that *Engine) Outcome() entity.Outcome {
	return that.outcome
}

// Play performs a whole turn: place, check for a win, then a tie, then pass the turn.
// The mover is captured before any player change, so a win is always credited to
// the player who completed the line. A finished game rejects moves until ResetGame.
func (that *Engine) Play(row, col int) entity.Result {
	mover := that.current
	result := entity.Result{
		Kind:     entity.ResultRejected,
		Mover:    mover,
		Position: entity.Position{Row: row, Col: col},
	}

	if that.outcome.IsTerminal() || !that.MakeMove(row, col) {
		return result
	}

	switch {
	case that.CheckWin():
		result.Kind = entity.ResultWon
	case that.IsTie():
		result.Kind = entity.ResultTied
	default:
		that.ChangePlayer()
		result.Kind = entity.ResultContinued
	}

	return result
}

// evaluate - recomputes the outcome for the player who just moved.
func (that *Engine) evaluate() entity.Outcome {
	switch {
	case that.CheckWin():
		return entity.Win(that.current)
	case that.IsTie():
		return entity.Tie()
	default:
		return entity.InProgress()
	}
}
