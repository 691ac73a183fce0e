package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/rocketscienceinc/tictactoe/internal/entity"
	"golang.org/x/term"
)

// Terminal color codes
const (
	reset  = "\033[0m"
	red    = "\033[31m"
	green  = "\033[32m"
	yellow = "\033[33m"
	blue   = "\033[34m"
	cyan   = "\033[36m"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

const helpText = `Commands:
  <row> <col>   place your mark, e.g. "0 2" or "0,2"
  <1-9>         place your mark by cell number, left to right, top to bottom
  board, b      show the board
  score, s      show the session score
  reset, r      start the round over
  help, ?       show this help
  quit, q       leave the game
`

// ColorEnabled resolves a color mode for the terminal behind fd.
func ColorEnabled(mode string, fd int) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(fd)
	}
}

// Display writes the board and game messages.
type Display struct {
	out   io.Writer
	color bool
}

func NewDisplay(out io.Writer, color bool) *Display {
	return &Display{
		out:   out,
		color: color,
	}
}

func (that *Display) Welcome() {
	that.println(that.paint(cyan, "Tic-tac-toe") + " - X moves first. Type 'help' for commands.")
}

func (that *Display) Help() {
	that.print(helpText)
}

func (that *Display) Board(board entity.Board) {
	var sb strings.Builder

	sb.WriteString("    0   1   2\n")

	for row := 0; row < entity.BoardSize; row++ {
		cells := make([]string, entity.BoardSize)
		for col := range cells {
			cells[col] = that.cell(board[row][col])
		}

		fmt.Fprintf(&sb, "%d   %s\n", row, strings.Join(cells, " | "))

		if row < entity.BoardSize-1 {
			sb.WriteString("   ---+---+---\n")
		}
	}

	that.print(sb.String())
}

// Turn shows the board after a move and announces a finished round.
func (that *Display) Turn(turn *entity.Turn) {
	that.Board(turn.Board)

	switch turn.Result.Kind {
	case entity.ResultWon:
		that.println(that.paint(green, fmt.Sprintf("Player %s wins!", turn.Result.Mover)))
	case entity.ResultTied:
		that.println(that.paint(green, "It's a tie!"))
	default:
		return
	}

	that.println("Board cleared, X starts the next round.")
}

func (that *Display) Score(score entity.Score) {
	that.println(fmt.Sprintf("X wins: %d  O wins: %d  ties: %d  rounds: %d", score.XWins, score.OWins, score.Ties, score.Rounds))
}

func (that *Display) Notice(message string) {
	that.println(message)
}

func (that *Display) Error(err error) {
	that.println(that.paint(red, "error: "+err.Error()))
}

// Prompt returns the prompt for the player to move.
func (that *Display) Prompt(base string, player entity.Cell) string {
	return that.paint(yellow, base+" [") + that.cell(player) + that.paint(yellow, "] > ")
}

func (that *Display) cell(cell entity.Cell) string {
	switch cell {
	case entity.PlayerX:
		return that.paint(blue, "X")
	case entity.PlayerO:
		return that.paint(red, "O")
	default:
		return " "
	}
}

func (that *Display) paint(color, text string) string {
	if !that.color {
		return text
	}

	return color + text + reset
}

func (that *Display) print(text string) {
	_, _ = io.WriteString(that.out, text)
}

func (that *Display) println(text string) {
	that.print(text + "\n")
}
