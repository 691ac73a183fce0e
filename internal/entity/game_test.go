package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	t.Run("Zero value is an empty cell", func(t *testing.T) {
		// Given: a zero cell
		var cell Cell

		// Then: it should be empty and not a player
		assert.Equal(t, EmptyCell, cell)
		assert.False(t, cell.IsPlayer())
		assert.Equal(t, "", cell.String())
	})

	t.Run("Opponent toggles between players", func(t *testing.T) {
		assert.Equal(t, PlayerO, PlayerX.Opponent())
		assert.Equal(t, PlayerX, PlayerO.Opponent())
		assert.Equal(t, EmptyCell, EmptyCell.Opponent())
	})

	t.Run("Valid accepts only the three states", func(t *testing.T) {
		assert.True(t, EmptyCell.Valid())
		assert.True(t, PlayerX.Valid())
		assert.True(t, PlayerO.Valid())
		assert.False(t, Cell(7).Valid())
	})
}

func TestPosition_InBounds(t *testing.T) {
	t.Run("All in-range positions are in bounds", func(t *testing.T) {
		for row := 0; row < BoardSize; row++ {
			for col := 0; col < BoardSize; col++ {
				assert.True(t, Position{row, col}.InBounds(), "row %d col %d", row, col)
			}
		}
	})

	t.Run("Out of range positions are not in bounds", func(t *testing.T) {
		for _, pos := range []Position{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-100, 100}} {
			assert.False(t, pos.InBounds(), "position %s", pos)
		}
	})
}

func TestBoard_HasLine(t *testing.T) {
	t.Run("Every fixed line wins", func(t *testing.T) {
		for _, line := range Lines {
			// Given: a board with only this line filled by X
			var board Board
			for _, pos := range line {
				board.Set(pos, PlayerX)
			}

			// Then: X has a line and O does not
			assert.True(t, board.HasLine(PlayerX), "line %v", line)
			assert.False(t, board.HasLine(PlayerO), "line %v", line)
		}
	})

	t.Run("Empty board has no line even for EmptyCell", func(t *testing.T) {
		var board Board

		assert.False(t, board.HasLine(EmptyCell))
		assert.False(t, board.HasLine(PlayerX))
	})

	t.Run("Full board without a line", func(t *testing.T) {
		// Given: a drawn board
		board := Board{
			{PlayerX, PlayerO, PlayerX},
			{PlayerX, PlayerO, PlayerO},
			{PlayerO, PlayerX, PlayerX},
		}

		// Then: nobody has a line and the board is full
		assert.False(t, board.HasLine(PlayerX))
		assert.False(t, board.HasLine(PlayerO))
		assert.True(t, board.IsFull())
	})
}

func TestBoard_Count(t *testing.T) {
	// Given: a board with two X and one O
	var board Board
	board.Set(Position{0, 0}, PlayerX)
	board.Set(Position{2, 2}, PlayerX)
	board.Set(Position{1, 1}, PlayerO)

	// Then: counts match
	require.Equal(t, 2, board.Count(PlayerX))
	require.Equal(t, 1, board.Count(PlayerO))
	require.Equal(t, 6, board.Count(EmptyCell))
	require.False(t, board.IsFull())
}

func TestOutcome(t *testing.T) {
	assert.False(t, InProgress().IsTerminal())
	assert.True(t, Win(PlayerO).IsTerminal())
	assert.True(t, Tie().IsTerminal())
	assert.Equal(t, PlayerO, Win(PlayerO).Winner)
	assert.Equal(t, EmptyCell, Tie().Winner)
	assert.Equal(t, "won by X", Win(PlayerX).String())
}

func TestScore_Record(t *testing.T) {
	t.Run("Counts terminal results only", func(t *testing.T) {
		// Given: an empty score
		var score Score

		// When: recording a mix of results
		score.Record(Result{Kind: ResultWon, Mover: PlayerX})
		score.Record(Result{Kind: ResultWon, Mover: PlayerO})
		score.Record(Result{Kind: ResultTied, Mover: PlayerX})
		score.Record(Result{Kind: ResultContinued, Mover: PlayerO})
		score.Record(Result{Kind: ResultRejected})

		// Then: only finished rounds are counted
		assert.Equal(t, Score{XWins: 1, OWins: 1, Ties: 1, Rounds: 3}, score)
	})
}

func TestResult_Winner(t *testing.T) {
	assert.Equal(t, PlayerO, Result{Kind: ResultWon, Mover: PlayerO}.Winner())
	assert.Equal(t, EmptyCell, Result{Kind: ResultTied, Mover: PlayerO}.Winner())
	assert.False(t, Result{Kind: ResultRejected}.Accepted())
	assert.True(t, Result{Kind: ResultTied}.IsTerminal())
}
