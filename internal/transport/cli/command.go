package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe/internal/apperror"
	"github.com/rocketscienceinc/tictactoe/internal/entity"
)

const (
	CmdNone CommandType = iota
	CmdMove
	CmdHelp
	CmdBoard
	CmdScore
	CmdReset
	CmdQuit
)

// offBoard stands in for coordinates that do not fit in an int.
const offBoard = -1

type CommandType uint8

// Command is one parsed input line. Row and Col are set for CmdMove only.
type Command struct {
	Type CommandType
	Row  int
	Col  int
}

var keywords = map[string]CommandType{
	"help":  CmdHelp,
	"?":     CmdHelp,
	"h":     CmdHelp,
	"board": CmdBoard,
	"b":     CmdBoard,
	"score": CmdScore,
	"s":     CmdScore,
	"reset": CmdReset,
	"r":     CmdReset,
	"new":   CmdReset,
	"quit":  CmdQuit,
	"exit":  CmdQuit,
	"q":     CmdQuit,
}

// ParseCommand reads a keyword or a move. A move is either "row col", "row,col"
// or a single cell number 1-9 counted left to right, top to bottom.
func ParseCommand(line string) (Command, error) {
	fields := strings.FieldsFunc(strings.ToLower(line), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	switch len(fields) {
	case 0:
		return Command{Type: CmdNone}, nil
	case 1:
		if cmdType, ok := keywords[fields[0]]; ok {
			return Command{Type: cmdType}, nil
		}

		return parseCellNumber(fields[0])
	case 2:
		row, err := parseCoordinate(fields[0])
		if err != nil {
			return Command{}, err
		}

		col, err := parseCoordinate(fields[1])
		if err != nil {
			return Command{}, err
		}

		return Command{Type: CmdMove, Row: row, Col: col}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, line)
	}
}

func parseCellNumber(field string) (Command, error) {
	number, err := parseCoordinate(field)
	if err != nil {
		return Command{}, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, field)
	}

	if number < 1 || number > entity.BoardSize*entity.BoardSize {
		return Command{Type: CmdMove, Row: offBoard, Col: offBoard}, nil
	}

	index := number - 1

	return Command{Type: CmdMove, Row: index / entity.BoardSize, Col: index % entity.BoardSize}, nil
}

// parseCoordinate - converts a field to an int. Numbers too large for an int map to offBoard.
func parseCoordinate(field string) (int, error) {
	value, err := strconv.Atoi(field)
	if errors.Is(err, strconv.ErrRange) {
		return offBoard, nil
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrInvalidInput, field)
	}

	return value, nil
}
